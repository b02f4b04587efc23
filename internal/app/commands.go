package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const requestTimeout = 10 * time.Second

// TickCmd returns a command that sends TickMsg after 1 second.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// WatchServiceEvents returns a command that waits for the next playback
// service event. It must be re-issued after each received message.
func (m Model) WatchServiceEvents() tea.Cmd {
	if m.playbackSub == nil {
		return nil
	}
	sub := m.playbackSub
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return ServiceStateChangedMsg{Previous: e.Previous, Current: e.Current}
		case e := <-sub.TrackChanged:
			return ServiceTrackChangedMsg{Track: e.Current, Index: e.Index}
		case e := <-sub.QueueChanged:
			return ServiceQueueChangedMsg{Tracks: e.Tracks, Index: e.Index}
		case e := <-sub.ModeChanged:
			return ServiceModeChangedMsg{RepeatMode: e.RepeatMode, Shuffle: e.Shuffle}
		case e := <-sub.VolumeChanged:
			return ServiceVolumeChangedMsg{Volume: e.Volume}
		case e := <-sub.PositionChanged:
			return ServicePositionChangedMsg{Position: e.Position}
		case e := <-sub.Error:
			return ServiceErrorMsg{Operation: e.Operation, TrackID: e.TrackID, Err: e.Err}
		case <-sub.Done:
			return ServiceClosedMsg{}
		}
	}
}

// SearchCmd runs a catalog search in the background. The version is echoed
// back so the handler can drop results that a newer search superseded.
func (m Model) SearchCmd(version int, query string) tea.Cmd {
	client := m.catalog
	limit := m.cfg.Catalog.SearchLimit
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		tracks, err := client.Search(ctx, query, limit)
		return SearchResultMsg{Version: version, Query: query, Tracks: tracks, Err: err}
	}
}

// FetchLyricsCmd fetches lyrics for a track through the cache.
func (m Model) FetchLyricsCmd(version int, trackID string) tea.Cmd {
	cache := m.lyrics
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		text, err := cache.GetOrFetch(ctx, trackID)
		return LyricsFetchedMsg{Version: version, TrackID: trackID, Text: text, Err: err}
	}
}
