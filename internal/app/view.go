package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Bimbok/Harmonix/internal/ui/playerbar"
	"github.com/Bimbok/Harmonix/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	var b strings.Builder

	if m.SearchMode {
		b.WriteString(m.SearchInput.View())
		b.WriteString("\n")
	}

	if m.LyricsVisible {
		b.WriteString(m.LyricsPanel.View())
	} else {
		b.WriteString(lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.ResultsPanel.View(),
			m.QueuePanel.View(),
		))
	}

	if bar := playerbar.Render(playerbar.NewState(m.playback.Status()), m.Width); bar != "" {
		b.WriteString("\n")
		b.WriteString(bar)
	}

	if m.ErrorMsg != "" {
		b.WriteString("\n")
		b.WriteString(styles.T().S().Error.Render(m.ErrorMsg))
	}

	return b.String()
}

// resizeComponents recomputes panel sizes from the window dimensions.
func (m *Model) resizeComponents() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	mainHeight := m.Height - playerbar.Height()
	if m.SearchMode {
		mainHeight--
	}
	if mainHeight < 3 {
		mainHeight = 3
	}

	if m.LyricsVisible {
		m.LyricsPanel.SetSize(m.Width, mainHeight)
	}

	resultsWidth := m.Width / 2
	queueWidth := m.Width - resultsWidth
	m.ResultsPanel.SetSize(resultsWidth, mainHeight)
	m.QueuePanel.SetSize(queueWidth, mainHeight)
	m.SearchInput.Width = m.Width - 4
}
