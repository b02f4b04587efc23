package app

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Bimbok/Harmonix/internal/catalog"
	"github.com/Bimbok/Harmonix/internal/config"
	"github.com/Bimbok/Harmonix/internal/lyrics"
	"github.com/Bimbok/Harmonix/internal/playback"
	"github.com/Bimbok/Harmonix/internal/player"
	"github.com/Bimbok/Harmonix/internal/playlist"
	"github.com/Bimbok/Harmonix/internal/state"
)

type stubResolver struct{}

func (stubResolver) StreamURL(trackID string) string { return "stream://" + trackID }

// newTestModel builds a model on mock infrastructure: mock player, in-memory
// state, and a catalog client pointed at nothing (search is never invoked).
func newTestModel() (Model, *player.Mock, *state.Mock) {
	p := player.NewMock()
	q := playlist.NewQueue()
	svc := playback.New(p, q, stubResolver{})
	client := catalog.New(catalog.Options{BaseURL: "http://127.0.0.1:0", StreamBase: "stream://"})
	stateMock := state.NewMock()

	cfg := &config.Config{
		SeekStep:      5,
		VolumeStep:    5,
		Notifications: false,
		Catalog:       config.CatalogConfig{SearchLimit: 30},
	}

	m := New(Deps{
		Config:   cfg,
		Playback: svc,
		Catalog:  client,
		Lyrics:   lyrics.NewCache(client),
		StateMgr: stateMock,
	})
	m.Width = 120
	m.Height = 40
	m.resizeComponents()
	return m, p, stateMock
}

func queueTracks(titles ...string) []playback.Track {
	tracks := make([]playback.Track, 0, len(titles))
	for _, title := range titles {
		tracks = append(tracks, playback.Track{ID: "id-" + title, Title: title, Artist: "A"})
	}
	return tracks
}

func asModel(t *testing.T, tm tea.Model) Model {
	t.Helper()
	m, ok := tm.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", tm)
	}
	return m
}

func TestUpdate_WindowSizeResizesComponents(t *testing.T) {
	m, _, _ := newTestModel()

	result := asModel(t, first(m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})))
	if result.Width != 100 || result.Height != 30 {
		t.Errorf("size = %dx%d, want 100x30", result.Width, result.Height)
	}
}

func TestUpdate_QuitKey(t *testing.T) {
	m, _, _ := newTestModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should produce a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", cmd())
	}
}

func TestUpdate_TabSwitchesFocus(t *testing.T) {
	m, _, _ := newTestModel()

	if m.Focus != FocusResults {
		t.Fatalf("initial focus = %v, want FocusResults", m.Focus)
	}
	m = asModel(t, first(m.Update(tea.KeyMsg{Type: tea.KeyTab})))
	if m.Focus != FocusQueue {
		t.Errorf("focus after tab = %v, want FocusQueue", m.Focus)
	}
	m = asModel(t, first(m.Update(tea.KeyMsg{Type: tea.KeyTab})))
	if m.Focus != FocusResults {
		t.Errorf("focus after second tab = %v, want FocusResults", m.Focus)
	}
}

func TestUpdate_SpaceTogglesPlayback(t *testing.T) {
	m, p, _ := newTestModel()
	m.playback.AddTracks(queueTracks("One")...)

	m = asModel(t, first(m.Update(tea.KeyMsg{Type: tea.KeySpace})))
	if !m.playback.IsPlaying() {
		t.Fatal("space on stopped player with queue should start playback")
	}
	if len(p.PlayCalls()) != 1 {
		t.Fatalf("PlayCalls = %v, want one call", p.PlayCalls())
	}

	m = asModel(t, first(m.Update(tea.KeyMsg{Type: tea.KeySpace})))
	if !m.playback.IsPaused() {
		t.Error("space while playing should pause")
	}
}

func TestUpdate_TickContinuesWhilePlaying(t *testing.T) {
	m, _, _ := newTestModel()
	m.playback.AddTracks(queueTracks("One")...)
	if err := m.playback.Play(); err != nil {
		t.Fatalf("Play() error = %v", err)
	}

	_, cmd := m.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick while playing should re-arm")
	}
}

func TestUpdate_TickStopsWhenNotPlaying(t *testing.T) {
	m, _, _ := newTestModel()

	_, cmd := m.Update(TickMsg(time.Now()))
	if cmd != nil {
		t.Error("tick while stopped should not re-arm")
	}
}

func TestUpdate_StateChangeToPlayingRestartsTick(t *testing.T) {
	m, _, _ := newTestModel()
	m.playback.AddTracks(queueTracks("One")...)
	if err := m.playback.Play(); err != nil {
		t.Fatalf("Play() error = %v", err)
	}

	_, cmd := m.Update(ServiceStateChangedMsg{
		Previous: playback.StateStopped,
		Current:  playback.StatePlaying,
	})
	if cmd == nil {
		t.Error("state change to playing should restart the tick")
	}
}

func TestUpdate_SlashOpensSearch(t *testing.T) {
	m, _, _ := newTestModel()

	m = asModel(t, first(m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})))
	if !m.SearchMode {
		t.Fatal("/ should enter search mode")
	}

	// Playback keys must go to the input, not the global handler.
	m = asModel(t, first(m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})))
	if m.playback.State() != playback.StateStopped {
		t.Error("typing in search mode should not hit playback bindings")
	}
	if m.SearchInput.Value() != "s" {
		t.Errorf("input value = %q, want %q", m.SearchInput.Value(), "s")
	}

	m = asModel(t, first(m.Update(tea.KeyMsg{Type: tea.KeyEsc})))
	if m.SearchMode {
		t.Error("esc should leave search mode")
	}
}

func TestUpdate_SearchSubmitBumpsVersion(t *testing.T) {
	m, _, _ := newTestModel()

	m = asModel(t, first(m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})))
	m = asModel(t, first(m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abba")})))

	newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = asModel(t, newModel)
	if m.SearchMode {
		t.Error("enter should close the search input")
	}
	if m.searchVersion != 1 {
		t.Errorf("searchVersion = %d, want 1", m.searchVersion)
	}
	if cmd == nil {
		t.Error("enter with a query should start a search command")
	}
}

func TestUpdate_StaleSearchResultDiscarded(t *testing.T) {
	m, _, _ := newTestModel()
	m.searchVersion = 2

	result := SearchResultMsg{
		Version: 1,
		Query:   "old",
		Tracks:  []catalog.Track{{ID: "x", Title: "Old Song"}},
	}
	m = asModel(t, first(m.Update(result)))

	if sel := m.ResultsPanel.Selected(); sel != nil {
		t.Errorf("stale result should be dropped, but panel has %q", sel.Title)
	}
}

func TestUpdate_CurrentSearchResultApplied(t *testing.T) {
	m, _, _ := newTestModel()
	m.searchVersion = 2

	result := SearchResultMsg{
		Version: 2,
		Query:   "new",
		Tracks:  []catalog.Track{{ID: "x", Title: "New Song"}},
	}
	m = asModel(t, first(m.Update(result)))

	sel := m.ResultsPanel.Selected()
	if sel == nil || sel.Title != "New Song" {
		t.Errorf("expected panel to hold the fresh result, got %v", sel)
	}
}

func TestUpdate_ServiceQueueChangedPersists(t *testing.T) {
	m, _, stateMock := newTestModel()
	m.playback.AddTracks(queueTracks("One", "Two")...)

	msg := ServiceQueueChangedMsg{Tracks: m.playback.QueueTracks(), Index: -1}
	_, cmd := m.Update(msg)
	if cmd == nil {
		t.Error("queue change should re-arm the event watcher")
	}

	saved := stateMock.SavedQueues()
	if len(saved) == 0 {
		t.Fatal("queue change should persist state")
	}
	last := saved[len(saved)-1]
	if len(last.Tracks) != 2 || last.Tracks[0].TrackID != "id-One" {
		t.Errorf("persisted queue = %+v", last.Tracks)
	}
}

func TestUpdate_VolumeKeysUseConfigStep(t *testing.T) {
	m, _, _ := newTestModel()
	m.playback.SetVolume(50)

	m = asModel(t, first(m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("+")})))
	if got := m.playback.Volume(); got != 55 {
		t.Errorf("volume after + = %d, want 55", got)
	}
	m = asModel(t, first(m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("-")})))
	if got := m.playback.Volume(); got != 50 {
		t.Errorf("volume after - = %d, want 50", got)
	}
}

func TestUpdate_LyricsStaleVersionDiscarded(t *testing.T) {
	m, _, _ := newTestModel()
	m.LyricsVisible = true
	m.lyricsVersion = 3
	m.LyricsPanel.SetLoading("t1", "T", "A")
	m.LyricsPanel.SetSize(60, 20)

	m = asModel(t, first(m.Update(LyricsFetchedMsg{Version: 2, TrackID: "t1", Text: "stale words"})))
	if strings.Contains(m.LyricsPanel.View(), "stale words") {
		t.Error("stale lyrics result should be dropped")
	}

	m = asModel(t, first(m.Update(LyricsFetchedMsg{Version: 3, TrackID: "t1", Text: "fresh words"})))
	if !strings.Contains(m.LyricsPanel.View(), "fresh words") {
		t.Error("current-version lyrics should be displayed")
	}
}

func TestUpdate_LyricsNotFound(t *testing.T) {
	m, _, _ := newTestModel()
	m.LyricsVisible = true
	m.lyricsVersion = 1
	m.LyricsPanel.SetLoading("t1", "T", "A")
	m.LyricsPanel.SetSize(60, 20)

	m = asModel(t, first(m.Update(LyricsFetchedMsg{Version: 1, TrackID: "t1", Err: catalog.ErrNotFound})))

	if got := m.LyricsPanel.View(); got == "" {
		t.Fatal("expected rendered panel")
	}
}

func TestUpdate_ServiceErrorSetsMessage(t *testing.T) {
	m, _, _ := newTestModel()

	msg := ServiceErrorMsg{Operation: "start playback", TrackID: "t1", Err: errors.New("boom")}
	m = asModel(t, first(m.Update(msg)))

	if m.ErrorMsg == "" {
		t.Error("service error should surface a message")
	}
}

// first discards the command from Update for tests that only check the model.
func first(m tea.Model, _ tea.Cmd) tea.Model {
	return m
}
