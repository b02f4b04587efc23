// Package styles defines the color theme and shared panel styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme is the application color palette.
type Theme struct {
	Primary   lipgloss.Color // accent for the playing track and focused chrome
	Secondary lipgloss.Color

	// Text hierarchy, brightest to dimmest.
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgCursor lipgloss.Color

	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style // default text
	Muted   lipgloss.Style // secondary text
	Subtle  lipgloss.Style // tertiary text, already-played tracks
	Title   lipgloss.Style // panel headers
	Playing lipgloss.Style // currently playing track
	Cursor  lipgloss.Style // selection highlight
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#7dd3a8"),
	Secondary: lipgloss.Color("#e8b45b"),

	FgBase:   lipgloss.Color("#c8c8c8"),
	FgMuted:  lipgloss.Color("#878787"),
	FgSubtle: lipgloss.Color("#5c5c5c"),

	BgCursor: lipgloss.Color("#2d2d2d"),

	Border:      lipgloss.Color("#5c5c5c"),
	BorderFocus: lipgloss.Color("#7dd3a8"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#e05f5f"),
	Warning: lipgloss.Color("#e8b45b"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		base := lipgloss.NewStyle().Foreground(t.FgBase)
		t.styles = &Styles{
			Base:    base,
			Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
			Subtle:  lipgloss.NewStyle().Foreground(t.FgSubtle),
			Title:   base.Bold(true),
			Playing: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
			Cursor:  lipgloss.NewStyle().Background(t.BgCursor).Foreground(t.FgBase),
			Success: lipgloss.NewStyle().Foreground(t.Success),
			Error:   lipgloss.NewStyle().Foreground(t.Error),
			Warning: lipgloss.NewStyle().Foreground(t.Warning),
		}
	}
	return t.styles
}
