package playlist

import "errors"

// Errors returned by queue navigation and mutation.
var (
	// ErrOutOfRange is returned for an index outside the queue bounds.
	ErrOutOfRange = errors.New("queue index out of range")
	// ErrEndOfQueue is returned when there is no next or previous track
	// under the current repeat mode.
	ErrEndOfQueue = errors.New("end of queue")
)

// RepeatMode defines the repeat behavior.
type RepeatMode int

const (
	RepeatOff RepeatMode = iota
	RepeatAll
	RepeatOne
)

// String returns the repeat mode name.
func (m RepeatMode) String() string {
	switch m {
	case RepeatOff:
		return "Off"
	case RepeatAll:
		return "All"
	case RepeatOne:
		return "One"
	default:
		return "Unknown"
	}
}

// Cycle returns the next mode in the Off -> All -> One -> Off rotation.
func (m RepeatMode) Cycle() RepeatMode {
	switch m {
	case RepeatOff:
		return RepeatAll
	case RepeatAll:
		return RepeatOne
	default:
		return RepeatOff
	}
}
