// Package playerbar renders the now-playing bar at the bottom of the screen.
package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Bimbok/Harmonix/internal/icons"
	"github.com/Bimbok/Harmonix/internal/playback"
	"github.com/Bimbok/Harmonix/internal/playlist"
	"github.com/Bimbok/Harmonix/internal/ui"
	"github.com/Bimbok/Harmonix/internal/ui/render"
)

// State holds everything needed to render the player bar.
type State struct {
	Playing    bool
	Paused     bool
	Title      string
	Artist     string
	Album      string
	Position   time.Duration
	Duration   time.Duration
	Volume     int
	RepeatMode playlist.RepeatMode
	Shuffle    bool
	QueueIndex int // 0-based, -1 when nothing current
	QueueLen   int
}

// Height returns the total height of the player bar including borders.
func Height() int {
	return 3
}

// NewState builds a renderable State from a playback status snapshot.
func NewState(st playback.Status) State {
	s := State{
		Playing:    st.State == playback.StatePlaying,
		Paused:     st.State == playback.StatePaused,
		Position:   st.Position,
		Duration:   st.Duration,
		Volume:     st.Volume,
		RepeatMode: st.RepeatMode,
		Shuffle:    st.Shuffle,
		QueueIndex: st.Index,
		QueueLen:   st.QueueLen,
	}
	if st.Track != nil {
		s.Title = st.Track.Title
		s.Artist = st.Track.Artist
		s.Album = st.Track.Album
		if s.Duration == 0 {
			// Backend has not reported a duration yet; fall back to
			// the catalog's.
			s.Duration = st.Track.Duration
		}
	}
	return s
}

// Render returns the player bar string for the given width.
// Returns an empty string when stopped.
func Render(s State, width int) string {
	if !s.Playing && !s.Paused {
		return ""
	}

	innerWidth := max(width-6, 0)

	status := icons.Playing()
	if s.Paused {
		status = icons.Paused()
	}

	title := s.Title
	if title == "" {
		title = "Unknown Track"
	}

	var infoParts []string
	if s.Artist != "" {
		infoParts = append(infoParts, s.Artist)
	}
	if s.Album != "" {
		infoParts = append(infoParts, s.Album)
	}
	info := strings.Join(infoParts, " · ")

	var queuePos string
	if s.QueueIndex >= 0 && s.QueueLen > 0 {
		queuePos = fmt.Sprintf("%d/%d", s.QueueIndex+1, s.QueueLen)
	}

	timeStr := fmt.Sprintf("%s / %s", formatDuration(s.Position), formatDuration(s.Duration))
	volStr := fmt.Sprintf("%3d%%", s.Volume)
	modes := modeIndicator(s)

	separator := "   "
	sepWidth := lipgloss.Width(separator)

	// Fixed-width right side: status, bar, time, volume, mode icons.
	fixed := lipgloss.Width(status+"  ") + lipgloss.Width(timeStr) + lipgloss.Width(volStr) + sepWidth*3
	if modes != "" {
		fixed += lipgloss.Width(modes) + sepWidth
	}
	queuePosSpace := 0
	if queuePos != "" {
		queuePosSpace = lipgloss.Width(queuePos) + sepWidth
	}

	availableForContent := innerWidth - fixed - queuePosSpace - ui.MinProgressBarWidth

	titleWidth := lipgloss.Width(title)
	infoWidth := lipgloss.Width(info)

	var styledTitle, styledInfo string
	var usedContentWidth int
	switch {
	case titleWidth+sepWidth+infoWidth <= availableForContent:
		styledTitle = titleStyle().Render(title)
		styledInfo = artistStyle().Render(info)
		usedContentWidth = titleWidth + sepWidth + infoWidth
	case titleWidth+sepWidth < availableForContent && info != "":
		maxInfo := availableForContent - titleWidth - sepWidth
		styledTitle = titleStyle().Render(title)
		styledInfo = artistStyle().Render(render.TruncateEllipsis(info, maxInfo))
		usedContentWidth = availableForContent
	default:
		maxTitle := max(availableForContent, 10)
		styledTitle = titleStyle().Render(render.TruncateEllipsis(title, maxTitle))
		usedContentWidth = min(titleWidth, maxTitle)
	}

	barWidth := max(innerWidth-usedContentWidth-queuePosSpace-fixed, ui.MinProgressBarWidth)

	var ratio float64
	if s.Duration > 0 {
		ratio = float64(s.Position) / float64(s.Duration)
	}
	filled := min(int(float64(barWidth)*ratio), barWidth)
	bar := progressFilledStyle().Render(strings.Repeat("━", filled)) +
		progressEmptyStyle().Render(strings.Repeat("─", barWidth-filled))

	var content strings.Builder
	content.WriteString(styledTitle)
	if styledInfo != "" {
		content.WriteString(separator)
		content.WriteString(styledInfo)
	}
	if queuePos != "" {
		content.WriteString(separator)
		content.WriteString(metaStyle().Render(queuePos))
	}
	content.WriteString(separator)
	content.WriteString(status)
	content.WriteString("  ")
	content.WriteString(bar)
	content.WriteString(separator)
	content.WriteString(timeStyle().Render(timeStr))
	content.WriteString(separator)
	content.WriteString(metaStyle().Render(volStr))
	if modes != "" {
		content.WriteString(separator)
		content.WriteString(metaStyle().Render(modes))
	}

	return barStyle().Padding(0, 2).Width(width - 2).Render(content.String())
}

// modeIndicator returns the repeat/shuffle markers, e.g. "⇌ 🔁".
func modeIndicator(s State) string {
	var parts []string
	if s.Shuffle {
		parts = append(parts, icons.Shuffle())
	}
	switch s.RepeatMode {
	case playlist.RepeatOff:
	case playlist.RepeatAll:
		parts = append(parts, icons.RepeatAll())
	case playlist.RepeatOne:
		parts = append(parts, icons.RepeatOne())
	}
	return strings.Join(parts, " ")
}

func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
