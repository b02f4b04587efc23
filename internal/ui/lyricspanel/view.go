package lyricspanel

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/Bimbok/Harmonix/internal/ui"
	"github.com/Bimbok/Harmonix/internal/ui/render"
	"github.com/Bimbok/Harmonix/internal/ui/styles"
)

// View renders the lyrics overlay.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	innerWidth := m.Width() - ui.BorderHeight
	visible := m.visibleHeight()

	header := styles.T().S().Title.Render(render.TruncateAndPad(m.headerText(), innerWidth))
	separator := render.Separator(innerWidth)
	body := m.renderBody(innerWidth, visible)
	footer := styles.T().S().Subtle.Render(render.TruncateAndPad(m.footerText(), innerWidth))

	content := header + "\n" + separator + "\n" + body + "\n" + footer

	return styles.PanelStyle(true).
		Width(innerWidth).
		Render(content)
}

func (m Model) headerText() string {
	title := m.trackTitle
	if title == "" {
		title = "Lyrics"
	}
	if m.trackArtist != "" {
		title += " — " + m.trackArtist
	}
	return title
}

func (m Model) footerText() string {
	parts := []string{"esc close"}
	if m.maxScroll() > 0 {
		parts = append([]string{"j/k scroll"}, parts...)
	}
	return strings.Join(parts, " · ")
}

func (m Model) renderBody(innerWidth, visible int) string {
	var body []string

	switch m.state {
	case StateLoading:
		body = []string{"Loading lyrics…"}
	case StateNotFound:
		body = []string{"No lyrics found"}
	case StateError:
		body = []string{"Could not fetch lyrics: " + m.errorMsg}
	case StateLoaded:
		wrapped := m.wrappedLines()
		start := min(m.scrollOffset, len(wrapped))
		end := min(start+visible, len(wrapped))
		body = wrapped[start:end]
	}

	lines := make([]string, 0, visible)
	for i := range visible {
		if i < len(body) {
			lines = append(lines, styles.T().S().Base.Render(render.TruncateAndPad(body[i], innerWidth)))
		} else {
			lines = append(lines, render.EmptyLine(innerWidth))
		}
	}
	return strings.Join(lines, "\n")
}

// wrappedLines word-wraps the lyrics to the panel width.
func (m Model) wrappedLines() []string {
	width := m.Width() - ui.BorderHeight
	if width <= 0 || len(m.lines) == 0 {
		return m.lines
	}

	var out []string
	for _, line := range m.lines {
		out = append(out, wrapLine(line, width)...)
	}
	return out
}

func wrapLine(line string, width int) []string {
	if runewidth.StringWidth(line) <= width {
		return []string{line}
	}

	var out []string
	var current string
	for _, word := range strings.Fields(line) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if runewidth.StringWidth(candidate) > width && current != "" {
			out = append(out, current)
			current = word
			continue
		}
		current = candidate
	}
	if current != "" {
		out = append(out, current)
	}
	return out
}
