package playerbar

import (
	"strings"
	"testing"
	"time"

	"github.com/Bimbok/Harmonix/internal/icons"
	"github.com/Bimbok/Harmonix/internal/playback"
	"github.com/Bimbok/Harmonix/internal/playlist"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{in: 0, want: "0:00"},
		{in: 59 * time.Second, want: "0:59"},
		{in: 61 * time.Second, want: "1:01"},
		{in: 10*time.Minute + 5*time.Second, want: "10:05"},
		{in: -3 * time.Second, want: "0:00"},
	}

	for _, tt := range tests {
		if got := formatDuration(tt.in); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRender_EmptyWhenStopped(t *testing.T) {
	s := NewState(playback.Status{State: playback.StateStopped})

	if got := Render(s, 120); got != "" {
		t.Errorf("Render() of stopped state = %q, want empty", got)
	}
}

func TestRender_ShowsTrackInfo(t *testing.T) {
	s := NewState(playback.Status{
		State:    playback.StatePlaying,
		Track:    &playback.Track{Title: "One More Time", Artist: "Daft Punk"},
		Index:    0,
		QueueLen: 3,
		Position: 30 * time.Second,
		Duration: 3 * time.Minute,
		Volume:   80,
	})

	out := Render(s, 120)
	if !strings.Contains(out, "One More Time") {
		t.Errorf("Render() missing title:\n%s", out)
	}
	if !strings.Contains(out, "Daft Punk") {
		t.Errorf("Render() missing artist:\n%s", out)
	}
	if !strings.Contains(out, "1/3") {
		t.Errorf("Render() missing queue position:\n%s", out)
	}
	if !strings.Contains(out, "0:30 / 3:00") {
		t.Errorf("Render() missing time display:\n%s", out)
	}
	if !strings.Contains(out, "80%") {
		t.Errorf("Render() missing volume:\n%s", out)
	}
}

func TestRender_PauseSymbol(t *testing.T) {
	s := NewState(playback.Status{
		State: playback.StatePaused,
		Track: &playback.Track{Title: "T"},
	})

	out := Render(s, 80)
	if !strings.Contains(out, icons.Paused()) {
		t.Errorf("Render() of paused state missing %q:\n%s", icons.Paused(), out)
	}
}

func TestNewState_FallsBackToCatalogDuration(t *testing.T) {
	s := NewState(playback.Status{
		State: playback.StatePlaying,
		Track: &playback.Track{Title: "T", Duration: 2 * time.Minute},
	})

	if s.Duration != 2*time.Minute {
		t.Errorf("Duration = %v, want 2m (catalog fallback)", s.Duration)
	}
}

func TestModeIndicator(t *testing.T) {
	tests := []struct {
		name string
		s    State
		want string
	}{
		{name: "none", s: State{}, want: ""},
		{name: "shuffle", s: State{Shuffle: true}, want: icons.Shuffle()},
		{name: "repeat all", s: State{RepeatMode: playlist.RepeatAll}, want: icons.RepeatAll()},
		{name: "repeat one", s: State{RepeatMode: playlist.RepeatOne}, want: icons.RepeatOne()},
		{name: "both", s: State{Shuffle: true, RepeatMode: playlist.RepeatAll}, want: icons.Shuffle() + " " + icons.RepeatAll()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := modeIndicator(tt.s); got != tt.want {
				t.Errorf("modeIndicator() = %q, want %q", got, tt.want)
			}
		})
	}
}
