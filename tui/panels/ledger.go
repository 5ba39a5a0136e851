package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/goldencross/internal/strategy"
	"github.com/zappabad/goldencross/tui/styles"
)

// LedgerPanel displays the day-by-day ledger of a run in a scrollable
// viewport. BUY and SELL rows are colored; HOLD rows stay muted.
type LedgerPanel struct {
	ledger   []strategy.LedgerRecord
	viewport viewport.Model
	focused  bool
	width    int
	height   int
}

// NewLedgerPanel creates a new ledger panel for the given ledger.
func NewLedgerPanel(ledger []strategy.LedgerRecord) *LedgerPanel {
	p := &LedgerPanel{
		ledger:   ledger,
		viewport: viewport.New(0, 0),
	}
	p.viewport.SetContent(p.renderRows())
	return p
}

// Init initializes the panel.
func (p *LedgerPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel. Scrolling keys only apply while
// the panel is focused.
func (p *LedgerPanel) Update(msg tea.Msg) (*LedgerPanel, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok && !p.focused {
		return p, nil
	}
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// View renders the panel.
func (p *LedgerPanel) View() string {
	header := styles.HeaderStyle.Render(fmt.Sprintf("%-5s %12s %12s %12s %-6s %15s %12s %15s",
		"Day", "Price", "SMA 7", "SMA 30", "Action", "Portfolio", "Holdings", "Cash"))

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("Ledger", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, header, p.viewport.View())
	return panelStyle.Width(p.width - 2).Render(panel)
}

func (p *LedgerPanel) renderRows() string {
	var content strings.Builder
	for i, entry := range p.ledger {
		row := fmt.Sprintf("%-5d %12.2f %12s %12s %-6s %15.2f %12.4f %15.2f",
			entry.Day,
			entry.Price,
			smaCell(entry.SMA7, entry.SMA7OK),
			smaCell(entry.SMA30, entry.SMA30OK),
			entry.Action,
			entry.PortfolioValue,
			entry.Holdings,
			entry.Cash,
		)

		style := styles.HoldStyle
		switch entry.Action {
		case strategy.ActionBuy:
			style = styles.BuyStyle
		case strategy.ActionSell:
			style = styles.SellStyle
		}
		content.WriteString(style.Render(row))
		if i < len(p.ledger)-1 {
			content.WriteString("\n")
		}
	}
	return content.String()
}

// SetFocus sets the focus state of the panel.
func (p *LedgerPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *LedgerPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
	// Border, title and header rows eat into the viewport.
	p.viewport.Width = width - 4
	p.viewport.Height = height - 5
}

func smaCell(v float64, ok bool) string {
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%.2f", v)
}
