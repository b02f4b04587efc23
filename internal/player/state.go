package player

// State is the backend playback state.
//
// Transitions: Stopped→Playing via Play; Playing↔Paused via Pause/Resume;
// any state →Stopped via Stop. Everything else is a no-op, so callers don't
// need to guard their calls.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive reports whether a track is loaded (playing or paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}

// CanPause reports whether Pause would have an effect.
func (s State) CanPause() bool {
	return s == Playing
}

// CanResume reports whether Resume would have an effect.
func (s State) CanResume() bool {
	return s == Paused
}
