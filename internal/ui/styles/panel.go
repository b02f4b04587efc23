package styles

import "github.com/charmbracelet/lipgloss"

var (
	unfocusedPanel = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(defaultTheme.Border)

	focusedPanel = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(defaultTheme.BorderFocus)
)

// PanelStyle returns the bordered panel style for the given focus state.
func PanelStyle(focused bool) lipgloss.Style {
	if focused {
		return focusedPanel
	}
	return unfocusedPanel
}
