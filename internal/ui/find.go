package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/karpador/trombone/internal/logging/events"
	uistate "github.com/karpador/trombone/internal/ui/state"
)

func newFindInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "find place"
	ti.CharLimit = 64
	ti.Cursor.SetMode(cursor.CursorStatic)
	if styles.FindPrompt != nil {
		ti.PromptStyle = *styles.FindPrompt
	}
	if styles.FindPlaceholder != nil {
		ti.PlaceholderStyle = *styles.FindPlaceholder
	}
	return ti
}

func (m *Model) openFind() tea.Cmd {
	m.findOrigin = m.rows.Index
	m.find.SetValue("")
	m.setMode(ModeFind)
	return m.find.Focus()
}

func (m *Model) closeFind() {
	m.find.Blur()
	m.find.SetValue("")
	m.setMode(ModeSidebar)
}

func (m *Model) handleFindKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.rows.Set(m.findOrigin)
		m.rows.EnsureVisible(m.maxVisibleRows())
		m.closeFind()
		events.Find.Cancel()
		return nil
	case msg.Type == tea.KeyEnter:
		query := m.find.Value()
		idx := m.findMatch(query)
		m.closeFind()
		if idx < 0 {
			if strings.TrimSpace(query) != "" {
				m.errMsg = fmt.Sprintf("No place matches %q", query)
			}
			return nil
		}
		m.activateRow(idx)
		return nil
	}
	var cmd tea.Cmd
	m.find, cmd = m.find.Update(msg)
	m.previewFind()
	return cmd
}

// previewFind moves the sidebar cursor to the best match for the current
// query, or back to where the prompt was opened.
func (m *Model) previewFind() {
	query := m.find.Value()
	idx := m.findMatch(query)
	events.Find.Query(query, idx)
	if idx < 0 {
		idx = m.findOrigin
	}
	m.rows.Set(idx)
	m.rows.EnsureVisible(m.maxVisibleRows())
}

func (m *Model) findMatch(query string) int {
	if strings.TrimSpace(query) == "" {
		return -1
	}
	return uistate.BestMatchIndex(m.findEntries(), query)
}

func (m *Model) findEntries() []uistate.Entry {
	items := m.sidebar.Items()
	entries := make([]uistate.Entry, len(items))
	for i, item := range items {
		entries[i] = uistate.Entry{Key: item.Place.Key(), Label: item.Place.Title()}
	}
	return entries
}
