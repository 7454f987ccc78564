package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/karpador/trombone/internal/backend"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent hands the event to the data dispatcher and keeps the
// cursor and content in step with the rows. A failed fetch is applied as
// absence; its error text stays in the status line until the source
// recovers.
func (m *Model) applyBackendEvent(evt backend.Event) {
	if m.backendState == nil {
		m.backendState = make(map[backend.Kind]error)
	}
	m.backendState[evt.Kind] = evt.Err
	if evt.Err != nil {
		m.backendLastErr = evt.Err.Error()
	}

	res := m.dispatcher.Handle(evt)

	if evt.Kind == backend.KindBadges {
		badges, _ := evt.Data.(map[string]uint64)
		m.followRequests = 0
		if evt.Err == nil {
			m.followRequests = badges[backend.FollowRequestsKey]
		}
	}

	if res.ListsUpdated {
		m.rows.SetLen(m.sidebar.Len())
		if i := m.sidebar.CurrentIndex(); i < 0 {
			// The list being shown went away.
			m.showPlace(m.sidebar.Items()[0].Place)
		}
		m.rows.EnsureVisible(m.maxVisibleRows())
	}

	if warn, _ := m.hasBackendIssue(); !warn {
		m.backendLastErr = ""
	}
}

func (m *Model) hasBackendIssue() (bool, string) {
	for _, err := range m.backendState {
		if err != nil {
			msg := m.backendLastErr
			if msg == "" {
				msg = err.Error()
			}
			return true, msg
		}
	}
	return false, ""
}
