package playlist

import (
	"errors"
	"fmt"
	"testing"
)

func newQueueWithTracks(n int) *PlayingQueue {
	q := NewQueue()
	for i := range n {
		q.Add(Track{ID: fmt.Sprintf("t%d", i)})
	}
	return q
}

func TestQueue_ToggleShuffle(t *testing.T) {
	q := newQueueWithTracks(3)

	if q.Shuffle() {
		t.Error("initial Shuffle() should be false")
	}

	got := q.ToggleShuffle()
	if !got || !q.Shuffle() {
		t.Error("ToggleShuffle() should enable shuffle")
	}

	got = q.ToggleShuffle()
	if got || q.Shuffle() {
		t.Error("ToggleShuffle() should disable shuffle")
	}
	if q.ShuffleOrder() != nil {
		t.Error("ShuffleOrder() should be nil when shuffle is off")
	}
}

func TestQueue_ShuffleOrder_IsPermutation(t *testing.T) {
	q := newQueueWithTracks(8)
	q.JumpTo(3)

	q.SetShuffle(true)

	order := q.ShuffleOrder()
	if len(order) != 8 {
		t.Fatalf("len(order) = %d, want 8", len(order))
	}
	// Current track is pinned at the front so it keeps playing.
	if order[0] != 3 {
		t.Errorf("order[0] = %d, want 3 (current track)", order[0])
	}
	seen := make(map[int]bool)
	for _, idx := range order {
		if idx < 0 || idx >= 8 {
			t.Errorf("order contains invalid index %d", idx)
		}
		if seen[idx] {
			t.Errorf("order contains duplicate index %d", idx)
		}
		seen[idx] = true
	}
}

func TestQueue_SmartShuffle_VisitsAllOnce(t *testing.T) {
	// Enabling shuffle on N tracks and advancing N-1 times visits every
	// track exactly once.
	const n = 10
	q := newQueueWithTracks(n)
	q.JumpTo(0)
	q.SetShuffle(true)

	visited := map[int]bool{q.CurrentIndex(): true}
	for range n - 1 {
		if _, err := q.Next(); err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		idx := q.CurrentIndex()
		if visited[idx] {
			t.Fatalf("track %d visited twice before the queue was exhausted", idx)
		}
		visited[idx] = true
	}
	if len(visited) != n {
		t.Errorf("visited %d tracks, want %d", len(visited), n)
	}

	// One more advance with repeat off falls off the end.
	if _, err := q.Next(); !errors.Is(err, ErrEndOfQueue) {
		t.Errorf("Next() after full pass error = %v, want ErrEndOfQueue", err)
	}
}

func TestQueue_Shuffle_RepeatAllWraps(t *testing.T) {
	q := newQueueWithTracks(4)
	q.JumpTo(0)
	q.SetShuffle(true)
	q.SetRepeatMode(RepeatAll)

	for range 3 {
		if _, err := q.Next(); err != nil {
			t.Fatalf("Next() error = %v", err)
		}
	}

	// Wrapping restarts the same pass at the current track.
	track, err := q.Next()
	if err != nil {
		t.Fatalf("Next() with RepeatAll error = %v", err)
	}
	if track.ID != "t0" {
		t.Errorf("wrapped to %q, want t0 (head of shuffle order)", track.ID)
	}
}

func TestQueue_Shuffle_PreviousWalksOrderBackwards(t *testing.T) {
	q := newQueueWithTracks(5)
	q.JumpTo(2)
	q.SetShuffle(true)

	first := q.CurrentIndex()
	if _, err := q.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if _, err := q.Previous(); err != nil {
		t.Fatalf("Previous() error = %v", err)
	}
	if q.CurrentIndex() != first {
		t.Errorf("Previous() landed on %d, want %d", q.CurrentIndex(), first)
	}
}

func TestQueue_Shuffle_AddSplicesIntoRemainder(t *testing.T) {
	q := newQueueWithTracks(3)
	q.JumpTo(0)
	q.SetShuffle(true)

	q.Add(Track{ID: "new"})

	order := q.ShuffleOrder()
	if len(order) != 4 {
		t.Fatalf("len(order) = %d, want 4", len(order))
	}
	pos := -1
	for i, idx := range order {
		if idx == 3 {
			pos = i
		}
	}
	if pos == -1 {
		t.Fatal("new index missing from shuffle order")
	}
	// Never the slot right after the current track when other slots exist.
	if pos <= 1 {
		t.Errorf("new index at order position %d, want > 1", pos)
	}
}

func TestQueue_Shuffle_AddToTinyQueue(t *testing.T) {
	q := newQueueWithTracks(1)
	q.JumpTo(0)
	q.SetShuffle(true)

	// Only one possible slot: directly after the current track.
	q.Add(Track{ID: "new"})

	order := q.ShuffleOrder()
	if len(order) != 2 || order[1] != 1 {
		t.Errorf("order = %v, want [0 1]", order)
	}
}

func TestQueue_Shuffle_RemoveRebuildsOrder(t *testing.T) {
	q := newQueueWithTracks(5)
	q.JumpTo(2)
	q.SetShuffle(true)

	if _, err := q.RemoveAt(4); err != nil {
		t.Fatalf("RemoveAt error = %v", err)
	}

	order := q.ShuffleOrder()
	if len(order) != 4 {
		t.Fatalf("len(order) = %d, want 4", len(order))
	}
	seen := make(map[int]bool)
	for _, idx := range order {
		if idx < 0 || idx >= 4 {
			t.Errorf("order contains stale index %d", idx)
		}
		seen[idx] = true
	}
	if len(seen) != 4 {
		t.Errorf("order is not a permutation: %v", order)
	}
	// Current track stays current after the rebuild.
	if q.Current().ID != "t2" {
		t.Errorf("Current().ID = %q, want t2", q.Current().ID)
	}
}

func TestQueue_Shuffle_NothingCurrentStartsAtOrderHead(t *testing.T) {
	q := newQueueWithTracks(4)
	q.SetShuffle(true)

	order := q.ShuffleOrder()
	track, err := q.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if q.CurrentIndex() != order[0] {
		t.Errorf("started at %d, want head of order %d", q.CurrentIndex(), order[0])
	}
	if track == nil {
		t.Fatal("Next() returned nil track")
	}
}
