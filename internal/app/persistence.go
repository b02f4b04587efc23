package app

import (
	"github.com/Bimbok/Harmonix/internal/catalog"
	"github.com/Bimbok/Harmonix/internal/playback"
	"github.com/Bimbok/Harmonix/internal/state"
)

// SaveQueueState persists the current queue, modes and volume. Writes are
// debounced by the state manager, so calling this on every event is cheap.
func (m *Model) SaveQueueState() {
	tracks := m.playback.QueueTracks()
	queueTracks := make([]state.QueueTrack, len(tracks))
	for i, t := range tracks {
		queueTracks[i] = state.QueueTrack{
			TrackID:  t.ID,
			Title:    t.Title,
			Artist:   t.Artist,
			Album:    t.Album,
			Duration: t.Duration,
		}
	}
	m.stateMgr.SaveQueue(state.QueueState{
		CurrentIndex: m.playback.QueueCurrentIndex(),
		RepeatMode:   int(m.playback.RepeatMode()),
		Shuffle:      m.playback.Shuffle(),
		Volume:       m.playback.Volume(),
		Tracks:       queueTracks,
	})
}

// trackFromCatalog converts a catalog search result into a queue track.
func trackFromCatalog(t catalog.Track) playback.Track {
	return playback.Track{
		ID:       t.ID,
		Title:    t.Title,
		Artist:   t.Artist,
		Album:    t.Album,
		Duration: t.Duration,
	}
}
