package app

// KeyBinding describes a single key binding for documentation.
type KeyBinding struct {
	Keys        []string
	Description string
	Context     string // "global", "playback", "results", "queue", "lyrics"
}

// KeyMap contains all key bindings for help generation.
var KeyMap = []KeyBinding{
	// Global
	{[]string{"q", "ctrl+c"}, "Quit application", "global"},
	{[]string{"tab"}, "Switch focus", "global"},
	{[]string{"/"}, "Search the catalog", "global"},
	{[]string{"l"}, "Show lyrics", "global"},

	// Playback
	{[]string{"space"}, "Play/pause", "playback"},
	{[]string{"x"}, "Stop", "playback"},
	{[]string{"n", "pgdown"}, "Next track", "playback"},
	{[]string{"p", "pgup"}, "Previous track", "playback"},
	{[]string{"left"}, "Seek backward", "playback"},
	{[]string{"right"}, "Seek forward", "playback"},
	{[]string{"+"}, "Volume up", "playback"},
	{[]string{"-"}, "Volume down", "playback"},
	{[]string{"r"}, "Cycle repeat mode", "playback"},
	{[]string{"s"}, "Toggle shuffle", "playback"},
	{[]string{"c"}, "Clear queue", "playback"},

	// Results
	{[]string{"j", "down"}, "Move down", "results"},
	{[]string{"k", "up"}, "Move up", "results"},
	{[]string{"enter"}, "Play now", "results"},
	{[]string{"a"}, "Add to queue", "results"},

	// Queue
	{[]string{"j", "down"}, "Move down", "queue"},
	{[]string{"k", "up"}, "Move up", "queue"},
	{[]string{"enter"}, "Play track", "queue"},
	{[]string{"d", "delete"}, "Remove track", "queue"},
	{[]string{"J"}, "Move track down", "queue"},
	{[]string{"K"}, "Move track up", "queue"},

	// Lyrics
	{[]string{"j", "k"}, "Scroll", "lyrics"},
	{[]string{"esc", "q"}, "Close", "lyrics"},
}

// KeysByContext returns key bindings filtered by context.
func KeysByContext(context string) []KeyBinding {
	var result []KeyBinding
	for _, kb := range KeyMap {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
