package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Bimbok/Harmonix/internal/catalog"
	"github.com/Bimbok/Harmonix/internal/errmsg"
	"github.com/Bimbok/Harmonix/internal/notify"
)

// handlePlaybackMessage reacts to events forwarded from the playback
// service subscription. Each handler re-arms the watcher.
func (m Model) handlePlaybackMessage(msg PlaybackMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ServiceStateChangedMsg:
		// The player bar reads state straight from the service; beyond a
		// redraw, only the position tick needs restarting.
		if m.playback.IsPlaying() {
			return m, tea.Batch(TickCmd(), m.WatchServiceEvents())
		}
		return m, m.WatchServiceEvents()

	case ServiceTrackChangedMsg:
		return m.handleTrackChanged(msg)

	case ServiceQueueChangedMsg:
		m.QueuePanel.SetTracks(msg.Tracks, msg.Index)
		m.SaveQueueState()
		return m, m.WatchServiceEvents()

	case ServiceModeChangedMsg:
		m.QueuePanel.SetModes(msg.RepeatMode, msg.Shuffle)
		m.SaveQueueState()
		return m, m.WatchServiceEvents()

	case ServiceVolumeChangedMsg:
		m.SaveQueueState()
		return m, m.WatchServiceEvents()

	case ServicePositionChangedMsg:
		return m, m.WatchServiceEvents()

	case ServiceErrorMsg:
		op := errmsg.Op(msg.Operation)
		if op == "" {
			op = errmsg.OpPlaybackStart
		}
		m.ErrorMsg = errmsg.FormatWith(op, msg.TrackID, msg.Err)
		return m, m.WatchServiceEvents()

	case ServiceClosedMsg:
		return m, nil
	}

	return m, m.WatchServiceEvents()
}

func (m Model) handleTrackChanged(msg ServiceTrackChangedMsg) (tea.Model, tea.Cmd) {
	m.syncQueuePanel()
	m.SaveQueueState()

	cmds := []tea.Cmd{m.WatchServiceEvents()}

	if msg.Track != nil {
		m.sendTrackNotification(msg.Track.Title, msg.Track.Artist, msg.Track.Album)

		// Follow the playing track while the lyrics overlay is open.
		if m.LyricsVisible && m.LyricsPanel.TrackID() != msg.Track.ID {
			m.lyricsVersion++
			m.LyricsPanel.SetLoading(msg.Track.ID, msg.Track.Title, msg.Track.Artist)
			cmds = append(cmds, m.FetchLyricsCmd(m.lyricsVersion, msg.Track.ID))
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleLyricsFetched(msg LyricsFetchedMsg) (tea.Model, tea.Cmd) {
	if msg.Version != m.lyricsVersion || msg.TrackID != m.LyricsPanel.TrackID() {
		return m, nil
	}
	switch {
	case errors.Is(msg.Err, catalog.ErrNotFound):
		m.LyricsPanel.SetNotFound()
	case msg.Err != nil:
		m.LyricsPanel.SetError(msg.Err)
	default:
		m.LyricsPanel.SetLyrics(msg.Text)
	}
	return m, nil
}

// sendTrackNotification shows a desktop notification for a track change,
// replacing the previous one so rapid skips don't stack up.
func (m *Model) sendTrackNotification(title, artist, album string) {
	if m.notifier == nil || !m.cfg.Notifications {
		return
	}

	body := artist
	if album != "" {
		body = fmt.Sprintf("%s — %s", artist, album)
	}

	id, err := m.notifier.Notify(notify.Notification{
		Title:      title,
		Body:       body,
		ReplacesID: m.notificationID,
		Timeout:    5000,
		Urgency:    notify.UrgencyLow,
	})
	if err == nil && id != 0 {
		m.notificationID = id
	}
}
