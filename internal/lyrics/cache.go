// Package lyrics caches lyrics lookups for the lifetime of the session.
package lyrics

import (
	"context"
	"errors"
	"sync"

	"github.com/Bimbok/Harmonix/internal/catalog"
)

// Fetcher retrieves lyrics for a track id. *catalog.Client satisfies it.
type Fetcher interface {
	Lyrics(ctx context.Context, trackID string) (string, error)
}

type entry struct {
	text  string
	found bool
}

// Cache is a get-or-fetch lyrics store keyed by track id. Entries are
// immutable once written and live for the process lifetime; "no lyrics"
// is cached too so a track without lyrics is only looked up once.
type Cache struct {
	mu      sync.RWMutex
	fetcher Fetcher
	entries map[string]entry
}

// NewCache creates a lyrics cache backed by the given fetcher.
func NewCache(f Fetcher) *Cache {
	return &Cache{
		fetcher: f,
		entries: make(map[string]entry),
	}
}

// GetOrFetch returns the lyrics for a track id, fetching on a miss.
// A catalog.ErrNotFound result is remembered and returned without
// another remote call; catalog.ErrUnavailable is transient and is not
// cached, so a later call retries. Concurrent fetches for the same id
// may each hit the fetcher; the first write wins.
func (c *Cache) GetOrFetch(ctx context.Context, trackID string) (string, error) {
	c.mu.RLock()
	e, ok := c.entries[trackID]
	c.mu.RUnlock()
	if ok {
		if !e.found {
			return "", catalog.ErrNotFound
		}
		return e.text, nil
	}

	text, err := c.fetcher.Lyrics(ctx, trackID)
	switch {
	case err == nil:
		c.store(trackID, entry{text: text, found: true})
		return text, nil
	case errors.Is(err, catalog.ErrNotFound):
		c.store(trackID, entry{found: false})
		return "", catalog.ErrNotFound
	default:
		return "", err
	}
}

// Cached reports whether an entry exists for the track id, without
// triggering a fetch.
func (c *Cache) Cached(trackID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[trackID]
	return ok
}

// store inserts an entry if absent. Ties between concurrent fetches go
// to whoever got here first.
func (c *Cache) store(trackID string, e entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[trackID]; ok {
		return
	}
	c.entries[trackID] = e
}
