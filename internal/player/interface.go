// internal/player/interface.go
package player

import "time"

// Interface defines the playback backend contract for dependency injection
// and testing. The concrete implementation drives an external media process;
// the controller is its only caller.
type Interface interface {
	Play(uri string) error
	Stop()
	Pause()
	Resume()
	Toggle()
	State() State
	Position() time.Duration
	Duration() time.Duration
	Seek(delta time.Duration)
	SetVolume(percent int)
	Volume() int
	FinishedChan() <-chan struct{}
	Close() error
}

// Verify MPV implements Interface at compile time.
var _ Interface = (*MPV)(nil)
