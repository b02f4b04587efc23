// Package lyricspanel displays plain-text lyrics for the current track in a
// scrollable overlay.
package lyricspanel

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Bimbok/Harmonix/internal/ui"
)

// CloseMsg is sent when the user dismisses the lyrics overlay.
type CloseMsg struct{}

// State represents what the panel currently shows.
type State int

const (
	StateLoading State = iota
	StateLoaded
	StateNotFound
	StateError
)

// Model holds the lyrics overlay state.
type Model struct {
	ui.Base

	trackID     string
	trackTitle  string
	trackArtist string

	state        State
	lines        []string
	errorMsg     string
	scrollOffset int
}

// New creates an empty lyrics panel.
func New() Model {
	return Model{state: StateLoading}
}

// TrackID returns the id of the track the panel is showing, used by the app
// layer to drop stale fetch results.
func (m Model) TrackID() string {
	return m.trackID
}

// SetLoading resets the panel for a new track while its lyrics are fetched.
func (m *Model) SetLoading(trackID, title, artist string) {
	m.trackID = trackID
	m.trackTitle = title
	m.trackArtist = artist
	m.state = StateLoading
	m.lines = nil
	m.errorMsg = ""
	m.scrollOffset = 0
}

// SetLyrics displays the fetched lyrics text.
func (m *Model) SetLyrics(text string) {
	m.state = StateLoaded
	m.lines = strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	m.scrollOffset = 0
}

// SetNotFound marks the track as having no lyrics.
func (m *Model) SetNotFound() {
	m.state = StateNotFound
	m.lines = nil
}

// SetError records a failed fetch.
func (m *Model) SetError(err error) {
	m.state = StateError
	m.errorMsg = err.Error()
	m.lines = nil
}

// Update handles key messages while the overlay is open.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "q", "l":
		return m, func() tea.Msg { return CloseMsg{} }
	case "j", "down":
		if m.scrollOffset < m.maxScroll() {
			m.scrollOffset++
		}
	case "k", "up":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	case "ctrl+d":
		m.scrollOffset = min(m.scrollOffset+m.visibleHeight()/2, m.maxScroll())
	case "ctrl+u":
		m.scrollOffset = max(m.scrollOffset-m.visibleHeight()/2, 0)
	case "g":
		m.scrollOffset = 0
	case "G":
		m.scrollOffset = m.maxScroll()
	}

	return m, nil
}

func (m Model) visibleHeight() int {
	return max(m.Height()-ui.PanelOverhead-2, 1) // header, separator, footer
}

func (m Model) maxScroll() int {
	wrapped := len(m.wrappedLines())
	visible := m.visibleHeight()
	if wrapped <= visible {
		return 0
	}
	return wrapped - visible
}
