package panels

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/goldencross/internal/report"
	"github.com/zappabad/goldencross/internal/sim"
	"github.com/zappabad/goldencross/tui/styles"
)

// SummaryPanel displays the run configuration and the final performance
// figures. It is read-only and never takes focus.
type SummaryPanel struct {
	cfg    sim.Config
	result *sim.Result
	width  int
	height int
}

// NewSummaryPanel creates a new summary panel.
func NewSummaryPanel(cfg sim.Config, result *sim.Result) *SummaryPanel {
	return &SummaryPanel{cfg: cfg, result: result}
}

// Init initializes the panel.
func (p *SummaryPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *SummaryPanel) Update(msg tea.Msg) (*SummaryPanel, tea.Cmd) {
	return p, nil
}

// View renders the panel.
func (p *SummaryPanel) View() string {
	pct := report.ReturnPct(p.result.InitialCash, p.result.FinalValue)

	pctStyle := styles.HoldStyle
	if pct > 0 {
		pctStyle = styles.BuyStyle
	} else if pct < 0 {
		pctStyle = styles.SellStyle
	}

	lines := []string{
		styles.RowStyle.Render(fmt.Sprintf("Days: %d  Seed: %d", p.cfg.Days, p.cfg.Seed)),
		styles.RowStyle.Render(fmt.Sprintf("Mu: %g  Sigma: %g", p.cfg.Mu, p.cfg.Sigma)),
		styles.RowStyle.Render(fmt.Sprintf("Initial: $%.2f", p.result.InitialCash)),
		styles.RowStyle.Render(fmt.Sprintf("Final:   $%.2f", p.result.FinalValue)),
		pctStyle.Render(fmt.Sprintf("Return:  %.2f%%", pct)),
	}

	title := styles.RenderTitle("Summary", false)
	panel := lipgloss.JoinVertical(lipgloss.Left, append([]string{title}, lines...)...)
	return styles.PanelStyle.Width(p.width - 2).Render(panel)
}

// SetSize sets the panel dimensions.
func (p *SummaryPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}
