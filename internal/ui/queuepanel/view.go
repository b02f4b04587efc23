package queuepanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Bimbok/Harmonix/internal/icons"
	"github.com/Bimbok/Harmonix/internal/playback"
	"github.com/Bimbok/Harmonix/internal/playlist"
	"github.com/Bimbok/Harmonix/internal/ui"
	"github.com/Bimbok/Harmonix/internal/ui/render"
	"github.com/Bimbok/Harmonix/internal/ui/styles"
)

// View renders the queue panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	innerWidth := m.Width() - ui.BorderHeight
	listHeight := m.listHeight()

	header := m.renderHeader(innerWidth)
	separator := render.Separator(innerWidth)
	trackList := m.renderTrackList(innerWidth, listHeight)

	content := header + "\n" + separator + "\n" + trackList

	return styles.PanelStyle(m.IsFocused()).
		Width(innerWidth).
		Render(content)
}

// renderHeader renders the queue header with position count and mode icons.
func (m Model) renderHeader(innerWidth int) string {
	pos := m.playingIndex + 1
	if pos < 1 {
		pos = 0
	}
	left := fmt.Sprintf("Queue (%d/%d)", pos, len(m.tracks))

	modeIcons, modeIconsWidth := m.renderModeIcons()

	left = render.TruncateAndPad(left, innerWidth-modeIconsWidth)

	return styles.T().S().Title.Render(left) + modeIcons
}

// renderModeIcons returns the styled mode icons and their display width.
func (m Model) renderModeIcons() (styled string, width int) {
	var parts []string

	if m.shuffle {
		parts = append(parts, icons.Shuffle())
	}

	switch m.repeatMode {
	case playlist.RepeatOff:
	case playlist.RepeatAll:
		parts = append(parts, icons.RepeatAll())
	case playlist.RepeatOne:
		parts = append(parts, icons.RepeatOne())
	}

	if len(parts) == 0 {
		return "", 0
	}

	raw := strings.Join(parts, "  ")
	width = lipgloss.Width(raw) + 1
	styled = styles.T().S().Playing.Render(raw) + " "
	return styled, width
}

func (m Model) renderTrackList(innerWidth, listHeight int) string {
	lines := make([]string, 0, listHeight)
	for i := range listHeight {
		idx := i + m.cursor.Offset()
		if idx >= len(m.tracks) {
			lines = append(lines, render.EmptyLine(innerWidth))
			continue
		}
		lines = append(lines, m.renderTrackLine(m.tracks[idx], idx, innerWidth))
	}
	return strings.Join(lines, "\n")
}

// renderTrackLine renders one queue entry: playing marker, title, artist.
func (m Model) renderTrackLine(track playback.Track, idx, width int) string {
	prefix := "  "
	if idx == m.playingIndex {
		prefix = icons.Playing() + " "
	}

	contentWidth := width - len(prefix)
	titleWidth := contentWidth / 2
	artistWidth := contentWidth - titleWidth

	title := render.TruncateAndPad(track.Title, titleWidth)
	artist := render.TruncateAndPad(track.Artist, artistWidth)

	return m.trackStyle(idx).Render(prefix + title + artist)
}

func (m Model) trackStyle(idx int) lipgloss.Style {
	s := styles.T().S()
	isCursor := idx == m.cursor.Pos() && m.IsFocused()
	isPlaying := idx == m.playingIndex
	isPlayed := m.playingIndex >= 0 && idx < m.playingIndex

	switch {
	case isCursor && isPlaying:
		return s.Cursor.Inherit(s.Playing)
	case isCursor && isPlayed:
		return s.Cursor.Inherit(s.Subtle)
	case isCursor:
		return s.Cursor
	case isPlaying:
		return s.Playing
	case isPlayed:
		return s.Subtle
	default:
		return s.Base
	}
}
