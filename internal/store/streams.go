package store

import (
	"context"
	"fmt"
)

// StreamEntry is one recorded play: a song name and its primary artist.
type StreamEntry struct {
	SongName   string
	ArtistName string
}

// LogStream appends one play event for (user, song). There is deliberately
// no duplicate prevention: each call is one play.
func (s *Store) LogStream(ctx context.Context, songName, artistName, username string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	userID, err := s.userIDByName(ctx, tx, username)
	if err != nil {
		return err
	}

	songID, err := s.songIDByArtist(ctx, tx, songName, artistName)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO streams (user_id, song_id)
		VALUES ($1, $2)
	`, userID, songID); err != nil {
		return fmt.Errorf("insert stream: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return nil
}

// StreamsByUser returns every play logged by the user, duplicates included
// (one entry per play event).
func (s *Store) StreamsByUser(ctx context.Context, username string) ([]StreamEntry, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	userID, err := s.userIDByName(ctx, tx, username)
	if err != nil {
		return nil, err
	}

	rows, err := tx.QueryContext(ctx, `
		SELECT song.song_name, artist.artist_name
		FROM streams
		JOIN song ON streams.song_id = song.song_id
		JOIN artist ON artist.id = song.artist_id
		WHERE streams.user_id = $1
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("select streams: %w", err)
	}
	defer rows.Close()

	var entries []StreamEntry
	for rows.Next() {
		var e StreamEntry
		if err := rows.Scan(&e.SongName, &e.ArtistName); err != nil {
			return nil, fmt.Errorf("scan stream: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate streams: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return entries, nil
}

// StreamsByUserAndArtist returns the song names of every play the user
// logged for one artist.
func (s *Store) StreamsByUserAndArtist(ctx context.Context, username, artistName string) ([]string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	userID, err := s.userIDByName(ctx, tx, username)
	if err != nil {
		return nil, err
	}

	artistID, err := s.artistIDByName(ctx, tx, artistName)
	if err != nil {
		return nil, err
	}

	rows, err := tx.QueryContext(ctx, `
		SELECT song.song_name
		FROM streams
		JOIN song ON streams.song_id = song.song_id
		WHERE streams.user_id = $1 AND song.artist_id = $2
	`, userID, artistID)
	if err != nil {
		return nil, fmt.Errorf("select streams: %w", err)
	}
	defer rows.Close()

	var songs []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan stream: %w", err)
		}
		songs = append(songs, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate streams: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return songs, nil
}
