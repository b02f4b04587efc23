package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Bimbok/Harmonix/internal/app"
	"github.com/Bimbok/Harmonix/internal/catalog"
	"github.com/Bimbok/Harmonix/internal/config"
	"github.com/Bimbok/Harmonix/internal/errmsg"
	"github.com/Bimbok/Harmonix/internal/icons"
	"github.com/Bimbok/Harmonix/internal/lyrics"
	"github.com/Bimbok/Harmonix/internal/mpris"
	"github.com/Bimbok/Harmonix/internal/notify"
	"github.com/Bimbok/Harmonix/internal/playback"
	"github.com/Bimbok/Harmonix/internal/player"
	"github.com/Bimbok/Harmonix/internal/playlist"
	"github.com/Bimbok/Harmonix/internal/state"
)

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpInitialize, err)
	}

	icons.Init(cfg.Icons)

	stateMgr, err := state.Open()
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpInitialize, err)
	}
	defer stateMgr.Close()

	backend, err := player.NewMPV(player.MPVOptions{
		Binary:    cfg.MPV.Binary,
		SocketDir: cfg.MPV.SocketDir,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpBackendStart, err)
	}

	client := catalog.New(catalog.Options{
		BaseURL:    cfg.Catalog.URL,
		StreamBase: cfg.Catalog.StreamURL,
	})

	queue := playlist.NewQueue()
	volume := 100
	if saved, err := stateMgr.GetQueue(); err == nil && saved != nil {
		restoreQueue(queue, saved)
		volume = saved.Volume
	}

	svc := playback.New(backend, queue, client)
	defer svc.Close()
	svc.SetVolume(volume)

	// Best effort: desktop integration is optional.
	var notifier notify.Notifier
	if cfg.Notifications {
		if n, err := notify.New(); err == nil {
			notifier = n
		}
	}
	if adapter, err := mpris.New(svc); err == nil {
		defer adapter.Close()
	}

	m := app.New(app.Deps{
		Config:   cfg,
		Playback: svc,
		Catalog:  client,
		Lyrics:   lyrics.NewCache(client),
		StateMgr: stateMgr,
		Notifier: notifier,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// restoreQueue rebuilds the playing queue from the saved session.
func restoreQueue(queue *playlist.PlayingQueue, saved *state.QueueState) {
	for _, t := range saved.Tracks {
		queue.Add(playlist.Track{
			ID:       t.TrackID,
			Title:    t.Title,
			Artist:   t.Artist,
			Album:    t.Album,
			Duration: t.Duration,
		})
	}
	if saved.CurrentIndex >= 0 && saved.CurrentIndex < queue.Len() {
		queue.JumpTo(saved.CurrentIndex)
	}
	queue.SetRepeatMode(playlist.RepeatMode(saved.RepeatMode))
	queue.SetShuffle(saved.Shuffle)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "harmonix: %v\n", err)
		os.Exit(1)
	}
}
