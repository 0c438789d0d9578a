package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SongDetails is the metadata view of a single song.
type SongDetails struct {
	Name           string
	FeaturedArtist string
	ExplicitRating float64
	Length         int
}

// SongIDByArtist resolves the (song_name, artist_name) pair to a song id.
// If an artist has duplicate song names the first match wins.
func (s *Store) SongIDByArtist(ctx context.Context, songName, artistName string) (int64, error) {
	return s.songIDByArtist(ctx, s.db, songName, artistName)
}

func (s *Store) songIDByArtist(ctx context.Context, q queryer, songName, artistName string) (int64, error) {
	var songID int64
	err := q.QueryRowContext(ctx, `
		SELECT song_id
		FROM song
		JOIN artist ON artist.id = song.artist_id
		WHERE song_name = $1 AND artist_name = $2
	`, songName, artistName).Scan(&songID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrSongNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("lookup song: %w", err)
	}
	return songID, nil
}

// songIDByName resolves a song by name alone, ignoring artist and album.
func (s *Store) songIDByName(ctx context.Context, q queryer, songName string) (int64, error) {
	var songID int64
	err := q.QueryRowContext(ctx, `
		SELECT song_id
		FROM song
		WHERE song_name = $1
	`, songName).Scan(&songID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrSongNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("lookup song: %w", err)
	}
	return songID, nil
}

// SongInfo returns the metadata for the song resolved by (name, artist).
func (s *Store) SongInfo(ctx context.Context, songName, artistName string) ([]SongDetails, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	songID, err := s.songIDByArtist(ctx, tx, songName, artistName)
	if err != nil {
		return nil, err
	}

	rows, err := tx.QueryContext(ctx, `
		SELECT song_name, featured_artist, explicit_rating, length
		FROM song
		WHERE song_id = $1
	`, songID)
	if err != nil {
		return nil, fmt.Errorf("select song info: %w", err)
	}
	defer rows.Close()

	var details []SongDetails
	for rows.Next() {
		var d SongDetails
		if err := rows.Scan(&d.Name, &d.FeaturedArtist, &d.ExplicitRating, &d.Length); err != nil {
			return nil, fmt.Errorf("scan song info: %w", err)
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate song info: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return details, nil
}
