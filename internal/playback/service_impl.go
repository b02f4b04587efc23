// internal/playback/service_impl.go
package playback

import (
	"errors"
	"sync"
	"time"

	"github.com/Bimbok/Harmonix/internal/player"
	"github.com/Bimbok/Harmonix/internal/playlist"
)

// Restarting the current track instead of jumping back: Previous() within the
// first few seconds goes to the previous track, after that it rewinds.
const restartThreshold = 3 * time.Second

// Verify serviceImpl implements Service at compile time.
var _ Service = (*serviceImpl)(nil)

type serviceImpl struct {
	mu sync.RWMutex

	player   player.Interface
	queue    *playlist.PlayingQueue
	resolver Resolver

	subs   []*Subscription
	subsMu sync.RWMutex

	done   chan struct{}
	closed bool
}

// New creates a new playback service and starts the end-of-track watcher.
func New(p player.Interface, q *playlist.PlayingQueue, r Resolver) Service {
	s := &serviceImpl{
		player:   p,
		queue:    q,
		resolver: r,
		done:     make(chan struct{}),
	}
	go s.watchFinished()
	return s
}

// --- Playback control ---

// Play starts playback at the current queue position, resuming when paused.
func (s *serviceImpl) Play() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.stateLocked() {
	case StatePlaying:
		return nil
	case StatePaused:
		return s.resumeLocked()
	case StateStopped:
	}

	if s.queue.IsEmpty() {
		return ErrEmptyQueue
	}
	if s.queue.Current() == nil {
		// Nothing current yet: start at the head of the play order.
		if _, err := s.queue.Next(); err != nil {
			return ErrEmptyQueue
		}
	}
	return s.playCurrentLocked()
}

// PlayIndex jumps to the given queue index and starts playback there.
func (s *serviceImpl) PlayIndex(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.queue.IsEmpty() {
		return ErrEmptyQueue
	}
	if s.queue.JumpTo(index) == nil {
		return playlist.ErrOutOfRange
	}
	return s.playCurrentLocked()
}

// Pause pauses playback.
func (s *serviceImpl) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.stateLocked()
	if prev != StatePlaying {
		return nil
	}
	s.player.Pause()
	s.emitState(prev, StatePaused)
	return nil
}

// Resume resumes paused playback.
func (s *serviceImpl) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resumeLocked()
}

func (s *serviceImpl) resumeLocked() error {
	prev := s.stateLocked()
	if prev != StatePaused {
		return nil
	}
	s.player.Resume()
	s.emitState(prev, StatePlaying)
	return nil
}

// Toggle toggles between playing and paused, starting playback when stopped.
func (s *serviceImpl) Toggle() error {
	switch s.State() {
	case StatePlaying:
		return s.Pause()
	case StatePaused:
		return s.Resume()
	default:
		return s.Play()
	}
}

// Stop stops playback. The queue position is kept.
func (s *serviceImpl) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	return nil
}

func (s *serviceImpl) stopLocked() {
	prev := s.stateLocked()
	if prev == StateStopped {
		return
	}
	s.player.Stop()
	s.emitState(prev, StateStopped)
}

// Next advances to the next track under the current modes.
// When stopped, only the queue position moves.
func (s *serviceImpl) Next() error {
	return s.navigate(func() (*playlist.Track, error) { return s.queue.Next() })
}

// Previous moves to the previous track, or restarts the current one when
// more than a few seconds in.
func (s *serviceImpl) Previous() error {
	s.mu.Lock()
	if s.stateLocked().IsActive() && s.player.Position() > restartThreshold {
		pos := s.player.Position()
		s.player.Seek(-pos)
		s.emitPosition(0)
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()
	return s.navigate(func() (*playlist.Track, error) { return s.queue.Previous() })
}

// navigate applies a queue move and starts the new track when playback is
// active. ErrEndOfQueue stops playback.
func (s *serviceImpl) navigate(move func() (*playlist.Track, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.queue.IsEmpty() {
		return ErrEmptyQueue
	}

	wasActive := s.stateLocked().IsActive()
	prevTrack := s.currentTrackLocked()
	prevIndex := s.queue.CurrentIndex()

	if _, err := move(); err != nil {
		if errors.Is(err, playlist.ErrEndOfQueue) {
			s.stopLocked()
		}
		return err
	}

	if !wasActive {
		s.emitQueue()
		return nil
	}
	return s.playCurrentFromLocked(prevTrack, prevIndex)
}

// Seek moves the position by delta, clamped to the track bounds.
func (s *serviceImpl) Seek(delta time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.stateLocked().IsActive() {
		return nil
	}
	s.seekToLocked(s.player.Position() + delta)
	return nil
}

// SeekTo moves to an absolute position, clamped to the track bounds.
func (s *serviceImpl) SeekTo(position time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.stateLocked().IsActive() {
		return nil
	}
	s.seekToLocked(position)
	return nil
}

func (s *serviceImpl) seekToLocked(target time.Duration) {
	pos := s.player.Position()
	dur := s.player.Duration()

	if target < 0 {
		target = 0
	}
	if dur > 0 && target > dur {
		target = dur
	}
	s.player.Seek(target - pos)
	s.emitPosition(target)
}

// SetVolume sets the volume, clamped to [0,100].
func (s *serviceImpl) SetVolume(level int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if level < 0 {
		level = 0
	}
	if level > 100 {
		level = 100
	}
	s.player.SetVolume(level)
	s.emitVolume(level)
}

// --- Queue manipulation ---

// AddTracks appends tracks to the queue without changing playback.
func (s *serviceImpl) AddTracks(tracks ...Track) {
	if len(tracks) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue.Add(toPlaylist(tracks)...)
	s.emitQueue()
}

// RemoveTrack removes the entry at index. Removing the currently playing
// entry stops playback.
func (s *serviceImpl) RemoveTrack(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	removedCurrent, err := s.queue.RemoveAt(index)
	if err != nil {
		return err
	}
	if removedCurrent {
		s.stopLocked()
	}
	s.emitQueue()
	return nil
}

// MoveTrack moves a queue entry from one index to another.
func (s *serviceImpl) MoveTrack(from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.queue.Move(from, to); err != nil {
		return err
	}
	s.emitQueue()
	return nil
}

// ClearQueue empties the queue and stops playback.
func (s *serviceImpl) ClearQueue() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.queue.Clear()
	s.emitQueue()
}

// --- State queries ---

// State returns the current playback state.
func (s *serviceImpl) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stateLocked()
}

func (s *serviceImpl) stateLocked() State {
	switch s.player.State() {
	case player.Playing:
		return StatePlaying
	case player.Paused:
		return StatePaused
	default:
		return StateStopped
	}
}

// IsPlaying returns true if currently playing.
func (s *serviceImpl) IsPlaying() bool { return s.State() == StatePlaying }

// IsStopped returns true if currently stopped.
func (s *serviceImpl) IsStopped() bool { return s.State() == StateStopped }

// IsPaused returns true if currently paused.
func (s *serviceImpl) IsPaused() bool { return s.State() == StatePaused }

// Position returns the current playback position.
func (s *serviceImpl) Position() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.player.Position()
}

// Duration returns the current track duration.
func (s *serviceImpl) Duration() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.player.Duration()
}

// Volume returns the current volume level.
func (s *serviceImpl) Volume() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.player.Volume()
}

// CurrentTrack returns the current track, or nil if none.
func (s *serviceImpl) CurrentTrack() *Track {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentTrackLocked()
}

func (s *serviceImpl) currentTrackLocked() *Track {
	t := s.queue.Current()
	if t == nil {
		return nil
	}
	track := Track(*t)
	return &track
}

// Status returns a consistent snapshot of the now-playing state.
func (s *serviceImpl) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Status{
		State:      s.stateLocked(),
		Track:      s.currentTrackLocked(),
		Index:      s.queue.CurrentIndex(),
		Position:   s.player.Position(),
		Duration:   s.player.Duration(),
		Volume:     s.player.Volume(),
		RepeatMode: s.queue.RepeatMode(),
		Shuffle:    s.queue.Shuffle(),
		QueueLen:   s.queue.Len(),
	}
}

// --- Queue queries ---

// QueueTracks returns a copy of all tracks in the queue.
func (s *serviceImpl) QueueTracks() []Track {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return TracksFromPlaylist(s.queue.Tracks())
}

// QueueCurrentIndex returns the current queue index (-1 if none).
func (s *serviceImpl) QueueCurrentIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.CurrentIndex()
}

// QueueLen returns the number of tracks in the queue.
func (s *serviceImpl) QueueLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.Len()
}

// QueueIsEmpty returns true if the queue has no tracks.
func (s *serviceImpl) QueueIsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.IsEmpty()
}

// QueueHasNext reports whether a manual Next has somewhere to go.
func (s *serviceImpl) QueueHasNext() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.HasNext()
}

// --- Mode control ---

// RepeatMode returns the current repeat mode.
func (s *serviceImpl) RepeatMode() playlist.RepeatMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.RepeatMode()
}

// SetRepeatMode sets the repeat mode.
func (s *serviceImpl) SetRepeatMode(mode playlist.RepeatMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue.SetRepeatMode(mode)
	s.emitMode()
}

// CycleRepeatMode advances the repeat mode and returns the new one.
func (s *serviceImpl) CycleRepeatMode() playlist.RepeatMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	mode := s.queue.CycleRepeatMode()
	s.emitMode()
	return mode
}

// Shuffle returns whether shuffle is enabled.
func (s *serviceImpl) Shuffle() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.Shuffle()
}

// SetShuffle enables or disables shuffle.
func (s *serviceImpl) SetShuffle(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue.SetShuffle(enabled)
	s.emitMode()
}

// ToggleShuffle flips the shuffle state and returns the new value.
func (s *serviceImpl) ToggleShuffle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	enabled := s.queue.ToggleShuffle()
	s.emitMode()
	return enabled
}

// --- Events ---

// Subscribe creates a new event subscription.
func (s *serviceImpl) Subscribe() *Subscription {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	sub := newSubscription()
	s.subs = append(s.subs, sub)
	return sub
}

// Close shuts down the service and the backend.
func (s *serviceImpl) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.done)
	s.player.Stop()
	err := s.player.Close()
	s.mu.Unlock()

	s.subsMu.Lock()
	for _, sub := range s.subs {
		sub.close()
	}
	s.subs = nil
	s.subsMu.Unlock()

	return err
}

// --- Internals ---

// playCurrentLocked loads and starts the current queue track.
// A backend load failure leaves the controller Stopped with the queue intact.
func (s *serviceImpl) playCurrentLocked() error {
	return s.playCurrentFromLocked(nil, -1)
}

func (s *serviceImpl) playCurrentFromLocked(prevTrack *Track, prevIndex int) error {
	track := s.queue.Current()
	if track == nil {
		return ErrEmptyQueue
	}

	prevState := s.stateLocked()
	uri := s.resolver.StreamURL(track.ID)
	if err := s.player.Play(uri); err != nil {
		// The backend may still be playing the previous track after a
		// failed load; force it down so state queries agree with the
		// Stopped event.
		s.player.Stop()
		loadErr := &LoadError{TrackID: track.ID, Err: err}
		s.emitError(ErrorEvent{Operation: "play", TrackID: track.ID, Err: loadErr})
		if prevState != StateStopped {
			s.emitState(prevState, StateStopped)
		}
		return loadErr
	}

	s.emitState(prevState, StatePlaying)
	current := Track(*track)
	s.emitTrack(TrackChange{
		Previous:      prevTrack,
		Current:       &current,
		PreviousIndex: prevIndex,
		Index:         s.queue.CurrentIndex(),
	})
	return nil
}

// watchFinished consumes end-of-track signals and auto-advances, applying
// the RepeatOne replay rule.
func (s *serviceImpl) watchFinished() {
	for {
		select {
		case <-s.done:
			return
		case <-s.player.FinishedChan():
			s.handleTrackFinished()
		}
	}
}

func (s *serviceImpl) handleTrackFinished() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	prevTrack := s.currentTrackLocked()
	prevIndex := s.queue.CurrentIndex()

	if _, err := s.queue.AutoAdvance(); err != nil {
		// End of queue: the backend already went idle, report Stopped.
		s.emitState(StatePlaying, StateStopped)
		return
	}

	// playCurrentFromLocked reports its own failure to subscribers.
	_ = s.playCurrentFromLocked(prevTrack, prevIndex)
}

// Event fan-out. Sends are non-blocking; slow subscribers drop events.

func (s *serviceImpl) forEachSub(fn func(*Subscription)) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		fn(sub)
	}
}

func (s *serviceImpl) emitState(prev, cur State) {
	if prev == cur {
		return
	}
	s.forEachSub(func(sub *Subscription) { sub.sendState(StateChange{Previous: prev, Current: cur}) })
}

func (s *serviceImpl) emitTrack(e TrackChange) {
	s.forEachSub(func(sub *Subscription) { sub.sendTrack(e) })
}

func (s *serviceImpl) emitPosition(pos time.Duration) {
	s.forEachSub(func(sub *Subscription) { sub.sendPosition(pos) })
}

func (s *serviceImpl) emitQueue() {
	e := QueueChange{
		Tracks: TracksFromPlaylist(s.queue.Tracks()),
		Index:  s.queue.CurrentIndex(),
	}
	s.forEachSub(func(sub *Subscription) { sub.sendQueue(e) })
}

func (s *serviceImpl) emitMode() {
	e := ModeChange{RepeatMode: s.queue.RepeatMode(), Shuffle: s.queue.Shuffle()}
	s.forEachSub(func(sub *Subscription) { sub.sendMode(e) })
}

func (s *serviceImpl) emitVolume(level int) {
	s.forEachSub(func(sub *Subscription) { sub.sendVolume(VolumeChange{Volume: level}) })
}

func (s *serviceImpl) emitError(e ErrorEvent) {
	s.forEachSub(func(sub *Subscription) { sub.sendError(e) })
}
