package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Bimbok/Harmonix/internal/ui/lyricspanel"
	"github.com/Bimbok/Harmonix/internal/ui/queuepanel"
	"github.com/Bimbok/Harmonix/internal/ui/resultspanel"
)

// Update handles messages and returns the updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case TickMsg:
		// Progress redraw only; position comes from the service on View.
		// The tick stops while nothing is playing and is restarted by the
		// state-change handler.
		if m.playback.IsPlaying() {
			return m, TickCmd()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case PlaybackMessage:
		return m.handlePlaybackMessage(msg)

	case SearchResultMsg:
		return m.handleSearchResult(msg)

	case LyricsFetchedMsg:
		return m.handleLyricsFetched(msg)

	case resultspanel.PlayResultMsg:
		return m.handlePlayResult(msg)

	case resultspanel.EnqueueResultMsg:
		m.playback.AddTracks(trackFromCatalog(msg.Track))
		return m, nil

	case queuepanel.PlayTrackMsg:
		if err := m.playback.PlayIndex(msg.Index); err != nil {
			m.ErrorMsg = err.Error()
		}
		return m, nil

	case queuepanel.RemoveTrackMsg:
		if err := m.playback.RemoveTrack(msg.Index); err != nil {
			m.ErrorMsg = err.Error()
		}
		return m, nil

	case queuepanel.MoveTrackMsg:
		if err := m.playback.MoveTrack(msg.From, msg.To); err != nil {
			m.ErrorMsg = err.Error()
		}
		return m, nil

	case lyricspanel.CloseMsg:
		m.LyricsVisible = false
		return m, nil
	}

	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.resizeComponents()
	return m, nil
}

func (m Model) handleSearchResult(msg SearchResultMsg) (tea.Model, tea.Cmd) {
	if msg.Version != m.searchVersion {
		// A newer search is in flight; drop this result.
		return m, nil
	}
	if msg.Err != nil {
		m.ResultsPanel.SetError(msg.Query, msg.Err)
		return m, nil
	}
	m.ResultsPanel.SetResults(msg.Query, msg.Tracks)
	return m, nil
}

func (m Model) handlePlayResult(msg resultspanel.PlayResultMsg) (tea.Model, tea.Cmd) {
	m.playback.AddTracks(trackFromCatalog(msg.Track))
	if err := m.playback.PlayIndex(m.playback.QueueLen() - 1); err != nil {
		m.ErrorMsg = err.Error()
	}
	return m, nil
}
