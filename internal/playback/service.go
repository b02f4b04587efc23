package playback

import (
	"time"

	"github.com/Bimbok/Harmonix/internal/playlist"
)

// Resolver turns a catalog track ID into a URI the backend can load.
type Resolver interface {
	StreamURL(trackID string) string
}

// Service defines the playback service contract. All mutation of the queue
// and the backend goes through it; transitions are serialized internally.
type Service interface {
	// Playback control
	Play() error           // start at the current queue position, or resume
	PlayIndex(index int) error
	Pause() error
	Resume() error
	Toggle() error
	Stop() error
	Next() error
	Previous() error
	Seek(delta time.Duration) error
	SeekTo(position time.Duration) error
	SetVolume(level int)

	// Queue manipulation
	AddTracks(tracks ...Track)
	RemoveTrack(index int) error
	MoveTrack(from, to int) error
	ClearQueue()

	// State queries
	State() State
	IsPlaying() bool
	IsStopped() bool
	IsPaused() bool
	Position() time.Duration
	Duration() time.Duration
	Volume() int
	CurrentTrack() *Track
	Status() Status

	// Queue queries
	QueueTracks() []Track
	QueueCurrentIndex() int
	QueueLen() int
	QueueIsEmpty() bool
	QueueHasNext() bool

	// Mode control
	RepeatMode() playlist.RepeatMode
	SetRepeatMode(mode playlist.RepeatMode)
	CycleRepeatMode() playlist.RepeatMode
	Shuffle() bool
	SetShuffle(enabled bool)
	ToggleShuffle() bool

	// Event subscription
	Subscribe() *Subscription

	// Lifecycle
	Close() error
}

// Status is a consistent read-only snapshot of the now-playing state for the
// presentation layer.
type Status struct {
	State      State
	Track      *Track // nil when nothing is current
	Index      int    // -1 when nothing is current
	Position   time.Duration
	Duration   time.Duration
	Volume     int
	RepeatMode playlist.RepeatMode
	Shuffle    bool
	QueueLen   int
}
