package state

import (
	"database/sql"
	"errors"
	"time"

	dbutil "github.com/Bimbok/Harmonix/internal/db"
)

// QueueTrack represents a track in the saved queue.
type QueueTrack struct {
	TrackID  string
	Title    string
	Artist   string
	Album    string
	Duration time.Duration
}

// QueueState represents the saved queue and playback modes.
type QueueState struct {
	CurrentIndex int
	RepeatMode   int
	Shuffle      bool
	Volume       int
	Tracks       []QueueTrack
}

func getQueue(db *sql.DB) (*QueueState, error) {
	var currentIndex, repeatMode, volume int
	var shuffle bool
	row := db.QueryRow(`SELECT current_index, repeat_mode, shuffle, volume FROM queue_state WHERE id = 1`)
	err := row.Scan(&currentIndex, &repeatMode, &shuffle, &volume)
	if errors.Is(err, sql.ErrNoRows) {
		return &QueueState{CurrentIndex: -1, Volume: 100}, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT track_id, title, artist, album, duration_seconds
		FROM queue_tracks
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tracks []QueueTrack
	for rows.Next() {
		var t QueueTrack
		var artist, album sql.NullString
		var durationSec sql.NullInt64

		if err := rows.Scan(&t.TrackID, &t.Title, &artist, &album, &durationSec); err != nil {
			return nil, err
		}

		t.Artist = dbutil.NullStringValue(artist)
		t.Album = dbutil.NullStringValue(album)
		t.Duration = time.Duration(dbutil.NullInt64Value(durationSec)) * time.Second
		tracks = append(tracks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &QueueState{
		CurrentIndex: currentIndex,
		RepeatMode:   repeatMode,
		Shuffle:      shuffle,
		Volume:       volume,
		Tracks:       tracks,
	}, nil
}

func saveQueue(sqlDB *sql.DB, state QueueState) error {
	return dbutil.WithTx(sqlDB, func(tx *sql.Tx) error {
		// Clear existing queue
		_, err := tx.Exec(`DELETE FROM queue_tracks`)
		if err != nil {
			return err
		}

		_, err = tx.Exec(`
			INSERT INTO queue_state (id, current_index, repeat_mode, shuffle, volume)
			VALUES (1, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				current_index = excluded.current_index,
				repeat_mode = excluded.repeat_mode,
				shuffle = excluded.shuffle,
				volume = excluded.volume
		`, state.CurrentIndex, state.RepeatMode, state.Shuffle, state.Volume)
		if err != nil {
			return err
		}

		stmt, err := tx.Prepare(`
			INSERT INTO queue_tracks (position, track_id, title, artist, album, duration_seconds)
			VALUES (?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, t := range state.Tracks {
			_, err = stmt.Exec(i, t.TrackID, t.Title, t.Artist, t.Album, int64(t.Duration/time.Second))
			if err != nil {
				return err
			}
		}
		return nil
	})
}
