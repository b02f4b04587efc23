package resultspanel

import (
	"fmt"
	"strings"
	"time"

	"github.com/Bimbok/Harmonix/internal/catalog"
	"github.com/Bimbok/Harmonix/internal/ui"
	"github.com/Bimbok/Harmonix/internal/ui/render"
	"github.com/Bimbok/Harmonix/internal/ui/styles"
)

const durationColWidth = 7 // " 12:34 "

// View renders the results panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	innerWidth := m.Width() - ui.BorderHeight
	listHeight := m.listHeight()

	header := styles.T().S().Title.Render(render.TruncateAndPad(m.headerText(), innerWidth))
	separator := render.Separator(innerWidth)
	body := m.renderBody(innerWidth, listHeight)

	content := header + "\n" + separator + "\n" + body

	return styles.PanelStyle(m.IsFocused()).
		Width(innerWidth).
		Render(content)
}

func (m Model) headerText() string {
	switch {
	case m.query == "":
		return "Search"
	case m.searching:
		return fmt.Sprintf("Searching %q…", m.query)
	default:
		return fmt.Sprintf("Results for %q (%d)", m.query, len(m.results))
	}
}

func (m Model) renderBody(innerWidth, listHeight int) string {
	if msg := m.placeholder(); msg != "" {
		lines := make([]string, 0, listHeight)
		lines = append(lines, styles.T().S().Muted.Render(render.TruncateAndPad(msg, innerWidth)))
		for range listHeight - 1 {
			lines = append(lines, render.EmptyLine(innerWidth))
		}
		return strings.Join(lines, "\n")
	}

	lines := make([]string, 0, listHeight)
	for i := range listHeight {
		idx := i + m.cursor.Offset()
		if idx >= len(m.results) {
			lines = append(lines, render.EmptyLine(innerWidth))
			continue
		}
		lines = append(lines, m.renderResultLine(m.results[idx], idx, innerWidth))
	}
	return strings.Join(lines, "\n")
}

// placeholder returns the message to show instead of a result list, or "".
func (m Model) placeholder() string {
	switch {
	case m.err != nil:
		return "Search failed: " + m.err.Error()
	case m.searching:
		return "Searching…"
	case m.query == "":
		return "Press / to search the catalog"
	case len(m.results) == 0:
		return "No results"
	default:
		return ""
	}
}

func (m Model) renderResultLine(track catalog.Track, idx, width int) string {
	duration := formatDuration(track.Duration)

	contentWidth := width - durationColWidth
	titleWidth := contentWidth / 2
	artistWidth := contentWidth - titleWidth

	title := render.TruncateAndPad(track.Title, titleWidth)
	artist := render.TruncateAndPad(track.Artist, artistWidth)
	line := title + artist + fmt.Sprintf("%*s", durationColWidth, duration)

	if idx == m.cursor.Pos() && m.IsFocused() {
		return styles.T().S().Cursor.Render(line)
	}
	return styles.T().S().Base.Render(line)
}

func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "--:--"
	}
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}
