package ui

import (
	"github.com/atomicstack/grid-menu/internal/backend"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForTick(t *backend.Ticker) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-t.Events()
		if !ok {
			return tickDoneMsg{}
		}
		return tickMsg{event: evt}
	}
}

type tickMsg struct {
	event backend.Event
}

type tickDoneMsg struct{}

// handleTickMsg re-renders every open session so dynamic icons stay current.
func (m *Model) handleTickMsg(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tickMsg); !ok {
		return nil
	}
	m.registry.RefreshAll()
	if m.ticker == nil {
		return nil
	}
	return waitForTick(m.ticker)
}

func (m *Model) handleTickDoneMsg(tea.Msg) tea.Cmd {
	m.ticker = nil
	return nil
}
