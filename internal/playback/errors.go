package playback

import (
	"errors"
	"fmt"
)

// ErrEmptyQueue is returned when a playback verb is called with no tracks
// queued. No backend call is made.
var ErrEmptyQueue = errors.New("queue is empty")

// LoadError reports that the backend could not start a track.
// The controller falls back to Stopped; the caller may retry or skip.
type LoadError struct {
	TrackID string
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load track %s: %v", e.TrackID, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
