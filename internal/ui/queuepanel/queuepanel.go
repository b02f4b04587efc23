// Package queuepanel renders the playing queue with cursor navigation.
package queuepanel

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Bimbok/Harmonix/internal/playback"
	"github.com/Bimbok/Harmonix/internal/playlist"
	"github.com/Bimbok/Harmonix/internal/ui"
	"github.com/Bimbok/Harmonix/internal/ui/cursor"
)

// PlayTrackMsg is sent when the user selects a queue entry to play.
type PlayTrackMsg struct {
	Index int
}

// RemoveTrackMsg is sent when the user removes a queue entry.
type RemoveTrackMsg struct {
	Index int
}

// MoveTrackMsg is sent when the user reorders the queue.
type MoveTrackMsg struct {
	From int
	To   int
}

// Model renders a snapshot of the playing queue. It never touches the
// playback service directly; the app layer feeds it fresh snapshots on
// queue events and translates its messages into service calls.
type Model struct {
	ui.Base
	cursor cursor.Cursor

	tracks       []playback.Track
	playingIndex int
	repeatMode   playlist.RepeatMode
	shuffle      bool
}

// New creates an empty queue panel.
func New() Model {
	return Model{
		cursor:       cursor.New(ui.ScrollMargin),
		playingIndex: -1,
	}
}

// SetTracks replaces the rendered queue snapshot.
func (m *Model) SetTracks(tracks []playback.Track, playingIndex int) {
	m.tracks = tracks
	m.playingIndex = playingIndex
	m.cursor.ClampToBounds(len(tracks))
	m.cursor.EnsureVisible(len(tracks), m.listHeight())
}

// SetModes updates the repeat/shuffle indicators in the header.
func (m *Model) SetModes(repeat playlist.RepeatMode, shuffle bool) {
	m.repeatMode = repeat
	m.shuffle = shuffle
}

// CursorIndex returns the index under the cursor, or -1 when the queue is
// empty.
func (m Model) CursorIndex() int {
	if len(m.tracks) == 0 {
		return -1
	}
	return m.cursor.Pos()
}

// JumpToPlaying moves the cursor to the currently playing track.
func (m *Model) JumpToPlaying() {
	if m.playingIndex < 0 {
		return
	}
	m.cursor.Jump(m.playingIndex, len(m.tracks), m.listHeight())
}

// Update handles key messages when the panel is focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.IsFocused() {
		return m, nil
	}

	key := keyMsg.String()
	if m.cursor.HandleKey(key, len(m.tracks), m.listHeight()) {
		return m, nil
	}

	switch key {
	case "enter":
		if idx := m.CursorIndex(); idx >= 0 {
			return m, func() tea.Msg { return PlayTrackMsg{Index: idx} }
		}
	case "d", "delete":
		if idx := m.CursorIndex(); idx >= 0 {
			return m, func() tea.Msg { return RemoveTrackMsg{Index: idx} }
		}
	case "J", "shift+down":
		if idx := m.CursorIndex(); idx >= 0 && idx < len(m.tracks)-1 {
			m.cursor.Move(1, len(m.tracks), m.listHeight())
			from, to := idx, idx+1
			return m, func() tea.Msg { return MoveTrackMsg{From: from, To: to} }
		}
	case "K", "shift+up":
		if idx := m.CursorIndex(); idx > 0 {
			m.cursor.Move(-1, len(m.tracks), m.listHeight())
			from, to := idx, idx-1
			return m, func() tea.Msg { return MoveTrackMsg{From: from, To: to} }
		}
	}

	return m, nil
}

func (m Model) listHeight() int {
	return m.ListHeight(ui.PanelOverhead)
}
