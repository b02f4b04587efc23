package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"
)

// handleKey routes key messages depending on the current input mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.SearchMode {
		return m.handleSearchModeKey(msg)
	}
	if m.LyricsVisible {
		var cmd tea.Cmd
		m.LyricsPanel, cmd = m.LyricsPanel.Update(msg)
		return m, cmd
	}
	return m.handleGlobalKey(msg)
}

// handleSearchModeKey handles keys while the search input is open.
func (m Model) handleSearchModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.SearchMode = false
		m.SearchInput.Blur()
		m.SearchInput.Reset()
		return m, nil
	case "enter":
		query := strings.TrimSpace(m.SearchInput.Value())
		m.SearchMode = false
		m.SearchInput.Blur()
		m.SearchInput.Reset()
		if query == "" {
			return m, nil
		}
		m.searchVersion++
		m.ResultsPanel.SetSearching(query)
		m.setFocus(FocusResults)
		return m, m.SearchCmd(m.searchVersion, query)
	}

	var cmd tea.Cmd
	m.SearchInput, cmd = m.SearchInput.Update(msg)
	return m, cmd
}

// handleGlobalKey handles application-wide keys, then defers to the focused
// panel.
func (m Model) handleGlobalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.ErrorMsg = ""

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "/":
		m.SearchMode = true
		m.SearchInput.Focus()
		return m, textinput.Blink

	case "tab":
		if m.Focus == FocusResults {
			m.setFocus(FocusQueue)
		} else {
			m.setFocus(FocusResults)
		}
		return m, nil

	case " ", "space":
		if err := m.playback.Toggle(); err != nil {
			m.ErrorMsg = err.Error()
		}
		return m, nil

	case "x":
		if err := m.playback.Stop(); err != nil {
			m.ErrorMsg = err.Error()
		}
		return m, nil

	case "n", "pgdown":
		if err := m.playback.Next(); err != nil {
			m.ErrorMsg = err.Error()
		}
		return m, nil

	case "p", "pgup":
		if err := m.playback.Previous(); err != nil {
			m.ErrorMsg = err.Error()
		}
		return m, nil

	case "left", "shift+left":
		if err := m.playback.Seek(-m.cfg.SeekStepDuration()); err != nil {
			m.ErrorMsg = err.Error()
		}
		return m, nil

	case "right", "shift+right":
		if err := m.playback.Seek(m.cfg.SeekStepDuration()); err != nil {
			m.ErrorMsg = err.Error()
		}
		return m, nil

	case "+", "=":
		m.playback.SetVolume(m.playback.Volume() + m.cfg.VolumeStep)
		return m, nil

	case "-":
		m.playback.SetVolume(m.playback.Volume() - m.cfg.VolumeStep)
		return m, nil

	case "r":
		m.playback.CycleRepeatMode()
		return m, nil

	case "s":
		m.playback.ToggleShuffle()
		return m, nil

	case "c":
		m.playback.ClearQueue()
		return m, nil

	case "l":
		return m.openLyrics()
	}

	return m.updateFocusedPanel(msg)
}

// openLyrics opens the lyrics overlay for the current track.
func (m Model) openLyrics() (tea.Model, tea.Cmd) {
	track := m.playback.CurrentTrack()
	if track == nil {
		return m, nil
	}
	m.LyricsVisible = true
	m.lyricsVersion++
	m.LyricsPanel.SetLoading(track.ID, track.Title, track.Artist)
	m.resizeComponents()
	return m, m.FetchLyricsCmd(m.lyricsVersion, track.ID)
}

func (m Model) updateFocusedPanel(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.Focus {
	case FocusResults:
		m.ResultsPanel, cmd = m.ResultsPanel.Update(msg)
	case FocusQueue:
		m.QueuePanel, cmd = m.QueuePanel.Update(msg)
	}
	return m, cmd
}
