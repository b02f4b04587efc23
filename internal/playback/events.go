package playback

import (
	"time"

	"github.com/Bimbok/Harmonix/internal/playlist"
)

// StateChange is emitted when playback state changes.
type StateChange struct {
	Previous State
	Current  State
}

// TrackChange is emitted when playback starts on a different track.
//
// Emitted by:
//   - Play/PlayIndex: when the track being played differs from the last played track
//   - Next/Previous: when navigating with playback active
//   - the end-of-track watcher: when a track ends and advances automatically
//
// NOT emitted by:
//   - Pause/Stop: state changes do not emit TrackChange
//
// The app should handle all track-related side effects (notifications,
// lyrics, MPRIS metadata) in response to this event.
type TrackChange struct {
	Previous      *Track
	Current       *Track
	PreviousIndex int
	Index         int
}

// QueueChange is emitted when the queue contents change.
type QueueChange struct {
	Tracks []Track
	Index  int
}

// ModeChange is emitted when repeat or shuffle mode changes.
type ModeChange struct {
	RepeatMode playlist.RepeatMode
	Shuffle    bool
}

// PositionChange is emitted when a seek occurs.
type PositionChange struct {
	Position time.Duration
}

// VolumeChange is emitted when the volume level changes.
type VolumeChange struct {
	Volume int
}

// ErrorEvent is emitted when an error occurs during playback.
type ErrorEvent struct {
	Operation string // e.g., "play", "auto-advance"
	TrackID   string // track ID if applicable
	Err       error
}
