// Package resultspanel renders catalog search results with cursor navigation.
package resultspanel

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Bimbok/Harmonix/internal/catalog"
	"github.com/Bimbok/Harmonix/internal/ui"
	"github.com/Bimbok/Harmonix/internal/ui/cursor"
)

// PlayResultMsg is sent when the user picks a result to play immediately.
type PlayResultMsg struct {
	Track catalog.Track
}

// EnqueueResultMsg is sent when the user appends a result to the queue.
type EnqueueResultMsg struct {
	Track catalog.Track
}

// Model holds the current search results.
type Model struct {
	ui.Base
	cursor cursor.Cursor

	query     string
	results   []catalog.Track
	searching bool
	err       error
}

// New creates an empty results panel.
func New() Model {
	return Model{cursor: cursor.New(ui.ScrollMargin)}
}

// SetSearching marks a search as in flight for the given query.
func (m *Model) SetSearching(query string) {
	m.query = query
	m.searching = true
	m.err = nil
}

// SetResults replaces the result list after a search completes.
func (m *Model) SetResults(query string, results []catalog.Track) {
	m.query = query
	m.results = results
	m.searching = false
	m.err = nil
	m.cursor.Reset()
}

// SetError records a failed search.
func (m *Model) SetError(query string, err error) {
	m.query = query
	m.results = nil
	m.searching = false
	m.err = err
	m.cursor.Reset()
}

// Selected returns the track under the cursor, or nil when there is none.
func (m Model) Selected() *catalog.Track {
	if len(m.results) == 0 {
		return nil
	}
	t := m.results[m.cursor.Pos()]
	return &t
}

// Update handles key messages when the panel is focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.IsFocused() {
		return m, nil
	}

	key := keyMsg.String()
	if m.cursor.HandleKey(key, len(m.results), m.listHeight()) {
		return m, nil
	}

	switch key {
	case "enter":
		if t := m.Selected(); t != nil {
			track := *t
			return m, func() tea.Msg { return PlayResultMsg{Track: track} }
		}
	case "a":
		if t := m.Selected(); t != nil {
			track := *t
			return m, func() tea.Msg { return EnqueueResultMsg{Track: track} }
		}
	}

	return m, nil
}

func (m Model) listHeight() int {
	return m.ListHeight(ui.PanelOverhead)
}
