package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SongUpload is one track of an album upload.
type SongUpload struct {
	SongName       string
	FeaturedArtist string
	ExplicitRating float64
	Length         int
}

// AlbumUpload is the full payload for publishing an album with its tracks.
type AlbumUpload struct {
	AlbumName      string
	ArtistName     string
	Genre          string
	ExplicitRating int
	Label          string
	ReleaseDate    string
	Songs          []SongUpload
}

// AlbumDetails is the metadata view of an album joined with its artist.
type AlbumDetails struct {
	Artist         string
	AlbumName      string
	Genre          string
	ExplicitRating int
	Label          string
	ReleaseDate    string
}

// UploadAlbum inserts an album and all of its songs in one transaction. The
// song rows take the album's artist id, even though the schema allows a song
// to carry a different artist than its album.
func (s *Store) UploadAlbum(ctx context.Context, upload AlbumUpload) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	var existing int64
	err = tx.QueryRowContext(ctx, `
		SELECT id
		FROM album
		WHERE album_name = $1
	`, upload.AlbumName).Scan(&existing)
	if err == nil {
		return ErrAlbumExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("check album: %w", err)
	}

	artistID, err := s.artistIDByName(ctx, tx, upload.ArtistName)
	if err != nil {
		return err
	}

	var albumID int64
	if err := tx.QueryRowContext(ctx, `
		INSERT INTO album (album_name, artist_id, genre, explicit_rating, label, release_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, upload.AlbumName, artistID, upload.Genre, upload.ExplicitRating, upload.Label, upload.ReleaseDate).Scan(&albumID); err != nil {
		if isUniqueViolation(err) {
			return ErrAlbumExists
		}
		return fmt.Errorf("insert album: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO song (song_name, artist_id, featured_artist, explicit_rating, length, album_id)
		VALUES ($1, $2, $3, $4, $5, $6)
	`)
	if err != nil {
		return fmt.Errorf("prepare insert song: %w", err)
	}
	defer stmt.Close()

	for _, song := range upload.Songs {
		if _, err := stmt.ExecContext(ctx,
			song.SongName,
			artistID,
			song.FeaturedArtist,
			song.ExplicitRating,
			song.Length,
			albumID,
		); err != nil {
			return fmt.Errorf("insert song: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return nil
}

// AlbumIDByName resolves an album name to its id.
func (s *Store) AlbumIDByName(ctx context.Context, albumName string) (int64, error) {
	return s.albumIDByName(ctx, s.db, albumName)
}

func (s *Store) albumIDByName(ctx context.Context, q queryer, albumName string) (int64, error) {
	var albumID int64
	err := q.QueryRowContext(ctx, `
		SELECT id
		FROM album
		WHERE album_name = $1
	`, albumName).Scan(&albumID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrAlbumNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("lookup album: %w", err)
	}
	return albumID, nil
}

// AlbumSongs returns the names of every song on the given album.
func (s *Store) AlbumSongs(ctx context.Context, albumName string) ([]string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	albumID, err := s.albumIDByName(ctx, tx, albumName)
	if err != nil {
		return nil, err
	}

	rows, err := tx.QueryContext(ctx, `
		SELECT song_name
		FROM song
		WHERE album_id = $1
	`, albumID)
	if err != nil {
		return nil, fmt.Errorf("select songs: %w", err)
	}
	defer rows.Close()

	var songs []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan song: %w", err)
		}
		songs = append(songs, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate songs: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return songs, nil
}

// AlbumInfo returns the full metadata for the given album.
func (s *Store) AlbumInfo(ctx context.Context, albumName string) ([]AlbumDetails, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	albumID, err := s.albumIDByName(ctx, tx, albumName)
	if err != nil {
		return nil, err
	}

	rows, err := tx.QueryContext(ctx, `
		SELECT artist_name, album_name, genre, explicit_rating, label, release_date
		FROM album
		JOIN artist ON artist.id = album.artist_id
		WHERE album.id = $1
	`, albumID)
	if err != nil {
		return nil, fmt.Errorf("select album info: %w", err)
	}
	defer rows.Close()

	var details []AlbumDetails
	for rows.Next() {
		var d AlbumDetails
		if err := rows.Scan(&d.Artist, &d.AlbumName, &d.Genre, &d.ExplicitRating, &d.Label, &d.ReleaseDate); err != nil {
			return nil, fmt.Errorf("scan album info: %w", err)
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate album info: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return details, nil
}
