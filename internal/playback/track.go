package playback

import (
	"time"

	"github.com/Bimbok/Harmonix/internal/playlist"
)

// Track represents a track in the queue.
// This is a copy of the data, not a reference to playlist.Track.
type Track struct {
	ID       string
	Title    string
	Artist   string
	Album    string
	Duration time.Duration
}

// TracksFromPlaylist converts playlist tracks to playback tracks.
func TracksFromPlaylist(tracks []playlist.Track) []Track {
	result := make([]Track, len(tracks))
	for i, t := range tracks {
		result[i] = Track(t)
	}
	return result
}

// toPlaylist converts playback tracks to playlist tracks.
func toPlaylist(tracks []Track) []playlist.Track {
	result := make([]playlist.Track, len(tracks))
	for i, t := range tracks {
		result[i] = playlist.Track(t)
	}
	return result
}
