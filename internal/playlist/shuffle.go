package playlist

import "math/rand/v2"

// Shuffle returns whether shuffle is enabled.
func (q *PlayingQueue) Shuffle() bool {
	return q.shuffle
}

// SetShuffle enables or disables shuffle.
// Enabling builds a fresh random permutation of all indices with the current
// track pinned at the front, so the playing track keeps playing and is not
// replayed until the whole queue has been visited. Disabling keeps the
// current index unchanged.
func (q *PlayingQueue) SetShuffle(enabled bool) {
	if q.shuffle == enabled {
		return
	}
	q.shuffle = enabled
	if enabled {
		q.regenerateShuffleOrder()
	} else {
		q.shuffleOrder = nil
	}
}

// ToggleShuffle flips the shuffle state and returns the new value.
func (q *PlayingQueue) ToggleShuffle() bool {
	q.SetShuffle(!q.shuffle)
	return q.shuffle
}

// ShuffleOrder returns a copy of the active shuffle order, or nil when
// shuffle is off.
func (q *PlayingQueue) ShuffleOrder() []int {
	if !q.shuffle {
		return nil
	}
	order := make([]int, len(q.shuffleOrder))
	copy(order, q.shuffleOrder)
	return order
}

// regenerateShuffleOrder rebuilds the permutation from the current queue
// contents. The current track, if any, stays at the front.
func (q *PlayingQueue) regenerateShuffleOrder() {
	n := q.playlist.Len()
	if n == 0 {
		q.shuffleOrder = nil
		return
	}

	rest := make([]int, 0, n)
	for i := range n {
		if i != q.currentIndex {
			rest = append(rest, i)
		}
	}
	rand.Shuffle(len(rest), func(i, j int) {
		rest[i], rest[j] = rest[j], rest[i]
	})

	if q.currentIndex >= 0 && q.currentIndex < n {
		q.shuffleOrder = append([]int{q.currentIndex}, rest...)
	} else {
		q.shuffleOrder = rest
	}
}

// spliceIntoShuffleOrder inserts a newly appended queue index into the
// not-yet-played remainder of the shuffle order at a uniformly random slot.
// The slot directly after the current track is excluded whenever another slot
// exists, so an added track is not guaranteed to play next.
func (q *PlayingQueue) spliceIntoShuffleOrder(index int) {
	pos := q.orderPos(q.currentIndex)
	lo := pos + 1 // first slot in the unplayed remainder
	remaining := len(q.shuffleOrder) + 1 - lo

	var slot int
	if remaining <= 1 {
		slot = len(q.shuffleOrder)
	} else {
		// Uniform over (lo, len], skipping the immediate-next slot.
		slot = lo + 1 + rand.IntN(remaining-1)
	}

	q.shuffleOrder = append(q.shuffleOrder, 0)
	copy(q.shuffleOrder[slot+1:], q.shuffleOrder[slot:])
	q.shuffleOrder[slot] = index
}

// advanceShuffled walks the shuffle order one step, wrapping only under
// RepeatAll.
func (q *PlayingQueue) advanceShuffled(step int) (*Track, error) {
	if len(q.shuffleOrder) == 0 {
		q.regenerateShuffleOrder()
	}

	pos := q.orderPos(q.currentIndex)
	next := pos + step
	switch {
	case next >= len(q.shuffleOrder):
		if q.repeatMode != RepeatAll {
			return nil, ErrEndOfQueue
		}
		next = 0
	case next < 0:
		if q.repeatMode != RepeatAll {
			return nil, ErrEndOfQueue
		}
		next = len(q.shuffleOrder) - 1
	}

	q.currentIndex = q.shuffleOrder[next]
	return q.Current(), nil
}

// orderPos returns the position of a queue index within the shuffle order,
// or -1 if not present.
func (q *PlayingQueue) orderPos(index int) int {
	for pos, idx := range q.shuffleOrder {
		if idx == index {
			return pos
		}
	}
	return -1
}
