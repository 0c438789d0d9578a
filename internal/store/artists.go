package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// CreateArtist inserts a new artist and returns its id.
func (s *Store) CreateArtist(ctx context.Context, artistName string) (int64, error) {
	artistName = strings.TrimSpace(artistName)
	if artistName == "" {
		return 0, fmt.Errorf("artist name is required")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	var existing int64
	err = tx.QueryRowContext(ctx, `
		SELECT id
		FROM artist
		WHERE artist_name = $1
	`, artistName).Scan(&existing)
	if err == nil {
		return 0, ErrArtistExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("check artist: %w", err)
	}

	var artistID int64
	if err := tx.QueryRowContext(ctx, `
		INSERT INTO artist (artist_name)
		VALUES ($1)
		RETURNING id
	`, artistName).Scan(&artistID); err != nil {
		if isUniqueViolation(err) {
			return 0, ErrArtistExists
		}
		return 0, fmt.Errorf("insert artist: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return artistID, nil
}

// ArtistIDByName resolves an artist name to its id.
func (s *Store) ArtistIDByName(ctx context.Context, artistName string) (int64, error) {
	return s.artistIDByName(ctx, s.db, artistName)
}

func (s *Store) artistIDByName(ctx context.Context, q queryer, artistName string) (int64, error) {
	var artistID int64
	err := q.QueryRowContext(ctx, `
		SELECT id
		FROM artist
		WHERE artist_name = $1
	`, artistName).Scan(&artistID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrArtistNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("lookup artist: %w", err)
	}
	return artistID, nil
}

// ArtistAlbums returns the names of every album by the given artist.
func (s *Store) ArtistAlbums(ctx context.Context, artistName string) ([]string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	artistID, err := s.artistIDByName(ctx, tx, artistName)
	if err != nil {
		return nil, err
	}

	rows, err := tx.QueryContext(ctx, `
		SELECT album_name
		FROM album
		WHERE artist_id = $1
	`, artistID)
	if err != nil {
		return nil, fmt.Errorf("select albums: %w", err)
	}
	defer rows.Close()

	var albums []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan album: %w", err)
		}
		albums = append(albums, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate albums: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return albums, nil
}
