// internal/player/mock.go
package player

import "time"

// Mock is a test double for the playback backend.
type Mock struct {
	state       State
	position    time.Duration
	duration    time.Duration
	volume      int
	playErr     error
	playCalls   []string
	seekCalls   []time.Duration
	volumeCalls []int
	finishedCh  chan struct{}
}

// NewMock creates a new mock backend for testing.
func NewMock() *Mock {
	return &Mock{
		state:      Stopped,
		volume:     100,
		finishedCh: make(chan struct{}, 1),
	}
}

func (m *Mock) Play(uri string) error {
	m.playCalls = append(m.playCalls, uri)
	if m.playErr != nil {
		return m.playErr
	}
	m.state = Playing
	m.position = 0
	return nil
}

func (m *Mock) Stop() {
	m.state = Stopped
	m.position = 0
}

func (m *Mock) Pause() {
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Resume() {
	if m.state == Paused {
		m.state = Playing
	}
}

func (m *Mock) Toggle() {
	switch m.state {
	case Playing:
		m.Pause()
	case Paused:
		m.Resume()
	case Stopped:
		// Nothing to toggle when stopped
	}
}

func (m *Mock) State() State { return m.state }

func (m *Mock) Position() time.Duration { return m.position }

func (m *Mock) Duration() time.Duration { return m.duration }

func (m *Mock) Seek(d time.Duration) {
	m.seekCalls = append(m.seekCalls, d)
	m.position += d
}

func (m *Mock) SetVolume(percent int) {
	m.volumeCalls = append(m.volumeCalls, percent)
	m.volume = percent
}

func (m *Mock) Volume() int { return m.volume }

func (m *Mock) FinishedChan() <-chan struct{} {
	return m.finishedCh
}

func (m *Mock) Close() error { return nil }

// Test helpers

func (m *Mock) SetState(s State) { m.state = s }

func (m *Mock) SetPlayError(err error) { m.playErr = err }

func (m *Mock) PlayCalls() []string { return m.playCalls }

func (m *Mock) SeekCalls() []time.Duration { return m.seekCalls }

func (m *Mock) VolumeCalls() []int { return m.volumeCalls }

func (m *Mock) SetDuration(d time.Duration) { m.duration = d }

func (m *Mock) SetPosition(d time.Duration) { m.position = d }

// SimulateFinished simulates a track finishing.
func (m *Mock) SimulateFinished() {
	select {
	case m.finishedCh <- struct{}{}:
	default:
	}
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
