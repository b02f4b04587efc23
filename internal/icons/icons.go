// Package icons provides display symbols for playback state and modes.
// The style is chosen once at startup from configuration; callers use the
// accessor functions.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Playing   string
	Paused    string
	Shuffle   string
	RepeatAll string
	RepeatOne string
}

var (
	nerdIcons = Icons{
		Playing:   "", // nf-fa-play
		Paused:    "", // nf-fa-pause
		Shuffle:   "󰒟",      // nf-md-shuffle
		RepeatAll: "󰑖",      // nf-md-repeat
		RepeatOne: "󰑘",      // nf-md-repeat_once
	}

	unicodeIcons = Icons{
		Playing:   "▶",
		Paused:    "⏸",
		Shuffle:   "⇌",
		RepeatAll: "🔁",
		RepeatOne: "🔂",
	}

	noneIcons = Icons{
		Playing:   ">",
		Paused:    "||",
		Shuffle:   "[S]",
		RepeatAll: "[R]",
		RepeatOne: "[1]",
	}

	// current holds the active icon set
	current = unicodeIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = unicodeIcons
	}
}

// Current returns the active icon set.
func Current() Icons {
	return current
}

func Playing() string   { return current.Playing }
func Paused() string    { return current.Paused }
func Shuffle() string   { return current.Shuffle }
func RepeatAll() string { return current.RepeatAll }
func RepeatOne() string { return current.RepeatOne }
