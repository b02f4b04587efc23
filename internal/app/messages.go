package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Bimbok/Harmonix/internal/catalog"
	"github.com/Bimbok/Harmonix/internal/playback"
	"github.com/Bimbok/Harmonix/internal/playlist"
)

// Message category interfaces for type-based routing in Update().
// External messages (from other packages) cannot implement these interfaces,
// so they are handled separately in the Update() switch.

// PlaybackMessage is implemented by messages related to playback state.
type PlaybackMessage interface {
	tea.Msg
	playbackMessage()
}

// CatalogMessage is implemented by messages carrying async catalog results.
type CatalogMessage interface {
	tea.Msg
	catalogMessage()
}

// TickMsg is sent every second to refresh the progress display.
type TickMsg time.Time

func (TickMsg) playbackMessage() {}

// SearchResultMsg carries the outcome of an async catalog search.
// Version identifies the request; stale results are discarded.
type SearchResultMsg struct {
	Version int
	Query   string
	Tracks  []catalog.Track
	Err     error
}

func (SearchResultMsg) catalogMessage() {}

// LyricsFetchedMsg carries the outcome of an async lyrics fetch.
type LyricsFetchedMsg struct {
	Version int
	TrackID string
	Text    string
	Err     error
}

func (LyricsFetchedMsg) catalogMessage() {}

// ServiceStateChangedMsg is sent when the playback service state changes.
type ServiceStateChangedMsg struct {
	Previous playback.State
	Current  playback.State
}

func (ServiceStateChangedMsg) playbackMessage() {}

// ServiceTrackChangedMsg is sent when the current track changes.
type ServiceTrackChangedMsg struct {
	Track *playback.Track
	Index int
}

func (ServiceTrackChangedMsg) playbackMessage() {}

// ServiceQueueChangedMsg is sent when the queue contents change.
type ServiceQueueChangedMsg struct {
	Tracks []playback.Track
	Index  int
}

func (ServiceQueueChangedMsg) playbackMessage() {}

// ServiceModeChangedMsg is sent when repeat or shuffle mode changes.
type ServiceModeChangedMsg struct {
	RepeatMode playlist.RepeatMode
	Shuffle    bool
}

func (ServiceModeChangedMsg) playbackMessage() {}

// ServiceVolumeChangedMsg is sent when the volume level changes.
type ServiceVolumeChangedMsg struct {
	Volume int
}

func (ServiceVolumeChangedMsg) playbackMessage() {}

// ServicePositionChangedMsg is sent after a seek.
type ServicePositionChangedMsg struct {
	Position time.Duration
}

func (ServicePositionChangedMsg) playbackMessage() {}

// ServiceErrorMsg is sent when an error occurs in the playback service.
type ServiceErrorMsg struct {
	Operation string
	TrackID   string
	Err       error
}

func (ServiceErrorMsg) playbackMessage() {}

// ServiceClosedMsg is sent when the playback service shuts down.
type ServiceClosedMsg struct{}

func (ServiceClosedMsg) playbackMessage() {}
