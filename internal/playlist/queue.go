package playlist

// PlayingQueue wraps a Playlist with playback position, repeat mode and
// shuffle state.
type PlayingQueue struct {
	playlist     *Playlist
	currentIndex int // -1 if nothing playing
	repeatMode   RepeatMode
	shuffle      bool
	shuffleOrder []int // permutation of queue indices, valid while shuffle is on
}

// NewQueue creates a new empty playing queue.
func NewQueue() *PlayingQueue {
	return &PlayingQueue{
		playlist:     NewPlaylist(),
		currentIndex: -1,
	}
}

// Current returns the currently playing track, or nil if none.
func (q *PlayingQueue) Current() *Track {
	if q.currentIndex < 0 || q.currentIndex >= q.playlist.Len() {
		return nil
	}
	return q.playlist.Track(q.currentIndex)
}

// CurrentIndex returns the index of the currently playing track (-1 if none).
func (q *PlayingQueue) CurrentIndex() int {
	return q.currentIndex
}

// JumpTo sets the current index to the specified position.
// Returns the track at that position, or nil if invalid.
func (q *PlayingQueue) JumpTo(index int) *Track {
	if index < 0 || index >= q.playlist.Len() {
		return nil
	}
	q.currentIndex = index
	return q.Current()
}

// Add appends tracks to the queue without changing the current position.
// While shuffle is active, each new index is spliced into the not-yet-played
// portion of the shuffle order at a random slot.
func (q *PlayingQueue) Add(tracks ...Track) {
	for _, t := range tracks {
		q.playlist.Add(t)
		if q.shuffle {
			q.spliceIntoShuffleOrder(q.playlist.Len() - 1)
		}
	}
}

// RemoveAt removes the track at the given index.
// It reports whether the removed track was the one currently playing; when it
// was and the queue is now empty the caller must stop playback.
func (q *PlayingQueue) RemoveAt(index int) (removedCurrent bool, err error) {
	if index < 0 || index >= q.playlist.Len() {
		return false, ErrOutOfRange
	}

	removedCurrent = index == q.currentIndex
	q.playlist.Remove(index)

	switch {
	case q.playlist.Len() == 0:
		q.currentIndex = -1
	case q.currentIndex > index:
		q.currentIndex--
	case removedCurrent && q.currentIndex >= q.playlist.Len():
		// Removed the current track from the tail: clamp to the new last entry.
		q.currentIndex = q.playlist.Len() - 1
	}

	if q.shuffle {
		q.regenerateShuffleOrder()
	}
	return removedCurrent, nil
}

// Move moves the track at fromIndex to toIndex, keeping the current track
// current.
func (q *PlayingQueue) Move(fromIndex, toIndex int) error {
	if fromIndex < 0 || fromIndex >= q.playlist.Len() ||
		toIndex < 0 || toIndex >= q.playlist.Len() {
		return ErrOutOfRange
	}
	if !q.playlist.Move(fromIndex, toIndex) {
		return ErrOutOfRange
	}

	switch {
	case fromIndex == q.currentIndex:
		q.currentIndex = toIndex
	case fromIndex < q.currentIndex && q.currentIndex <= toIndex:
		q.currentIndex--
	case toIndex <= q.currentIndex && q.currentIndex < fromIndex:
		q.currentIndex++
	}

	if q.shuffle {
		q.regenerateShuffleOrder()
	}
	return nil
}

// Clear removes all tracks and resets playback position and shuffle order.
func (q *PlayingQueue) Clear() {
	q.playlist.Clear()
	q.currentIndex = -1
	q.shuffleOrder = nil
}

// Tracks returns all tracks in the queue.
func (q *PlayingQueue) Tracks() []Track {
	return q.playlist.Tracks()
}

// Len returns the number of tracks in the queue.
func (q *PlayingQueue) Len() int {
	return q.playlist.Len()
}

// IsEmpty returns true if the queue has no tracks.
func (q *PlayingQueue) IsEmpty() bool {
	return q.playlist.Len() == 0
}

// RepeatMode returns the current repeat mode.
func (q *PlayingQueue) RepeatMode() RepeatMode {
	return q.repeatMode
}

// SetRepeatMode sets the repeat mode. Pure state change, no side effects.
func (q *PlayingQueue) SetRepeatMode(mode RepeatMode) {
	q.repeatMode = mode
}

// CycleRepeatMode advances Off -> All -> One -> Off and returns the new mode.
func (q *PlayingQueue) CycleRepeatMode() RepeatMode {
	q.repeatMode = q.repeatMode.Cycle()
	return q.repeatMode
}

// Next advances to the next track for manual navigation.
// RepeatOne does not replay on a manual advance; use AutoAdvance for the
// end-of-track path.
func (q *PlayingQueue) Next() (*Track, error) {
	return q.advance(1)
}

// Previous moves to the previous track for manual navigation.
func (q *PlayingQueue) Previous() (*Track, error) {
	return q.advance(-1)
}

// HasNext reports whether a manual Next has somewhere to go, without
// moving the position.
func (q *PlayingQueue) HasNext() bool {
	n := q.playlist.Len()
	switch {
	case n == 0:
		return false
	case q.currentIndex < 0:
		return true
	case q.repeatMode == RepeatAll:
		return true
	case q.shuffle:
		return q.orderPos(q.currentIndex) < len(q.shuffleOrder)-1
	default:
		return q.currentIndex < n-1
	}
}

// AutoAdvance advances after a track finished on its own.
// Under RepeatOne the current track is replayed; otherwise it behaves like
// Next.
func (q *PlayingQueue) AutoAdvance() (*Track, error) {
	if q.IsEmpty() {
		return nil, ErrEndOfQueue
	}
	if q.repeatMode == RepeatOne && q.currentIndex >= 0 {
		return q.Current(), nil
	}
	return q.advance(1)
}

// advance moves one step in the given direction (+1 next, -1 previous),
// wrapping only under RepeatAll.
func (q *PlayingQueue) advance(step int) (*Track, error) {
	n := q.playlist.Len()
	if n == 0 {
		return nil, ErrEndOfQueue
	}
	if q.currentIndex < 0 {
		// Nothing current yet: start at the first track in play order.
		return q.startOfOrder(step), nil
	}

	if q.shuffle {
		return q.advanceShuffled(step)
	}

	next := q.currentIndex + step
	switch {
	case next >= n:
		if q.repeatMode != RepeatAll {
			return nil, ErrEndOfQueue
		}
		next = 0
	case next < 0:
		if q.repeatMode != RepeatAll {
			return nil, ErrEndOfQueue
		}
		next = n - 1
	}
	q.currentIndex = next
	return q.Current(), nil
}

// startOfOrder picks the first track when nothing is current: the head of the
// shuffle order when shuffled, otherwise index 0 (or the last index when
// stepping backwards).
func (q *PlayingQueue) startOfOrder(step int) *Track {
	if q.shuffle && len(q.shuffleOrder) > 0 {
		q.currentIndex = q.shuffleOrder[0]
	} else if step < 0 {
		q.currentIndex = q.playlist.Len() - 1
	} else {
		q.currentIndex = 0
	}
	return q.Current()
}
