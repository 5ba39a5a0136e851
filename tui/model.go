// Package tui is an interactive viewer for a finished simulation run.
// It renders state computed upstream and never touches the pipeline.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/goldencross/internal/sim"
	"github.com/zappabad/goldencross/tui/panels"
	"github.com/zappabad/goldencross/tui/styles"
)

// Model is the main TUI application model.
type Model struct {
	ledgerPanel  *panels.LedgerPanel
	summaryPanel *panels.SummaryPanel

	width  int
	height int
	ready  bool
}

// NewModel creates a new TUI model for a finished run.
func NewModel(cfg sim.Config, result *sim.Result) *Model {
	return &Model{
		ledgerPanel:  panels.NewLedgerPanel(result.Ledger),
		summaryPanel: panels.NewSummaryPanel(cfg, result),
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.ledgerPanel.Init(), m.summaryPanel.Init())
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updatePanelSizes()
		m.ready = true
	}

	var cmd tea.Cmd
	m.ledgerPanel, cmd = m.ledgerPanel.Update(msg)
	return m, cmd
}

func (m *Model) updatePanelSizes() {
	summaryHeight := 9
	m.ledgerPanel.SetSize(m.width, m.height-summaryHeight-1)
	m.summaryPanel.SetSize(m.width, summaryHeight)
}

// View renders the UI.
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	m.ledgerPanel.SetFocus(true)

	status := styles.StatusBarStyle.Render("j/k scroll • q quit")
	return lipgloss.JoinVertical(lipgloss.Left,
		m.ledgerPanel.View(),
		m.summaryPanel.View(),
		status,
	)
}

// Run starts the TUI program and blocks until it exits.
func Run(cfg sim.Config, result *sim.Result) error {
	p := tea.NewProgram(NewModel(cfg, result), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
