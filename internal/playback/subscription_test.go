package playback

import (
	"testing"
	"testing/synctest"
	"time"

	"github.com/Bimbok/Harmonix/internal/playlist"
)

func TestNewSubscription_ChannelsReadable(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		sub := newSubscription()

		sub.sendState(StateChange{Previous: StateStopped, Current: StatePlaying})
		sub.sendTrack(TrackChange{Index: 1})
		sub.sendPosition(30 * time.Second)
		sub.sendQueue(QueueChange{Index: 2, Tracks: []Track{{ID: "t1", Title: "Queued"}}})
		sub.sendMode(ModeChange{RepeatMode: playlist.RepeatAll, Shuffle: true})
		sub.sendVolume(VolumeChange{Volume: 40})

		e := <-sub.StateChanged
		if e.Current != StatePlaying {
			t.Errorf("StateChanged.Current = %v, want Playing", e.Current)
		}

		tr := <-sub.TrackChanged
		if tr.Index != 1 {
			t.Errorf("TrackChanged.Index = %d, want 1", tr.Index)
		}

		pos := <-sub.PositionChanged
		if pos.Position != 30*time.Second {
			t.Errorf("PositionChanged.Position = %v, want 30s", pos.Position)
		}

		q := <-sub.QueueChanged
		if q.Index != 2 {
			t.Errorf("QueueChanged.Index = %d, want 2", q.Index)
		}
		if len(q.Tracks) != 1 || q.Tracks[0].ID != "t1" {
			t.Errorf("QueueChanged.Tracks = %v, want [{ID: t1}]", q.Tracks)
		}

		m := <-sub.ModeChanged
		if m.RepeatMode != playlist.RepeatAll {
			t.Errorf("ModeChanged.RepeatMode = %v, want RepeatAll", m.RepeatMode)
		}

		v := <-sub.VolumeChanged
		if v.Volume != 40 {
			t.Errorf("VolumeChanged.Volume = %d, want 40", v.Volume)
		}
	})
}

func TestSubscription_Close_SignalsDone(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		sub := newSubscription()
		sub.close()
		<-sub.Done
	})
}

func TestSubscription_NonBlocking_DropsWhenFull(t *testing.T) {
	sub := newSubscription()

	// Fill buffer
	for range eventBufferSize + 5 {
		sub.sendState(StateChange{})
	}

	// Should not block or panic - count what we got
	count := 0
	for {
		select {
		case <-sub.StateChanged:
			count++
		default:
			goto done
		}
	}
done:
	if count != eventBufferSize {
		t.Errorf("received %d events, want %d (buffer size)", count, eventBufferSize)
	}
}
