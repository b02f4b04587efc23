// Package render provides text helpers for fixed-width panel output.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Sanitize strips control characters that would corrupt the layout.
// Catalog metadata is untrusted and occasionally carries newlines or tabs.
func Sanitize(s string) string {
	if !strings.ContainsFunc(s, isControl) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isControl(r) {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f
}

// Truncate cuts s to at most maxWidth display cells.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxWidth, "")
}

// TruncateEllipsis cuts s to at most maxWidth cells, ending with "…" when
// something was cut.
func TruncateEllipsis(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// Pad extends s with spaces to exactly width cells.
func Pad(s string, width int) string {
	if gap := width - runewidth.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// TruncateAndPad returns s at exactly width cells, truncating or padding as
// needed. Input is sanitized first.
func TruncateAndPad(s string, width int) string {
	return Pad(Truncate(Sanitize(s), width), width)
}

// Separator returns a horizontal rule of the given width.
func Separator(width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Render(strings.Repeat("─", width))
}

// EmptyLine returns a blank line of the given width.
func EmptyLine(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat(" ", width)
}
