package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// CreatePlaylist inserts a playlist scoped to the given user. Uniqueness is
// per (user, playlist_name). The insert resolves the user inline; an unknown
// username inserts nothing and is not treated as an error.
func (s *Store) CreatePlaylist(ctx context.Context, playlistName, username string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	var existing string
	err = tx.QueryRowContext(ctx, `
		SELECT playlist_name
		FROM user_playlist
		JOIN users ON users.user_id = user_playlist.user_id
		WHERE playlist_name = $1 AND users.username = $2
	`, playlistName, username).Scan(&existing)
	if err == nil {
		return ErrPlaylistExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("check playlist: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO user_playlist (playlist_name, user_id)
		SELECT $1, user_id
		FROM users
		WHERE username = $2
	`, playlistName, username); err != nil {
		if isUniqueViolation(err) {
			return ErrPlaylistExists
		}
		return fmt.Errorf("insert playlist: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return nil
}

// AddSongToPlaylist adds one membership row. The song existence guard checks
// song_name alone, while the insert resolves the song against (song_name,
// album_name); a guard-passing song absent from the named album inserts zero
// rows and still succeeds.
func (s *Store) AddSongToPlaylist(ctx context.Context, songName, albumName, playlistName, username string) error {
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

	if _, err := s.albumIDByName(ctx, tx, albumName); err != nil {
		return err
	}

	playlistID, err := s.playlistIDByUser(ctx, tx, userID, playlistName)
	if err != nil {
		return err
	}

	if _, err := s.songIDByName(ctx, tx, songName); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO song_playlist (playlist_id, song_id)
		SELECT $1, song.song_id
		FROM song
		JOIN album ON album.id = song.album_id
		WHERE song.song_name = $2 AND album.album_name = $3
	`, playlistID, songName, albumName); err != nil {
		return fmt.Errorf("insert membership: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return nil
}

// RemoveSongFromPlaylist deletes membership rows matching the song name in
// the named playlist. Resolution is by name only, not scoped to a user or
// album: every same-named song variant in the playlist is removed.
func (s *Store) RemoveSongFromPlaylist(ctx context.Context, songName, playlistName string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err := s.songIDByName(ctx, tx, songName); err != nil {
		return err
	}

	playlistID, err := s.playlistIDByName(ctx, tx, playlistName)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM song_playlist
		USING song
		WHERE song_playlist.playlist_id = $1
		  AND song_playlist.song_id = song.song_id
		  AND song.song_name = $2
	`, playlistID, songName); err != nil {
		return fmt.Errorf("delete membership: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return nil
}

// PlaylistSongs returns the song names in the user's playlist.
func (s *Store) PlaylistSongs(ctx context.Context, playlistName, username string) ([]string, error) {
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

	playlistID, err := s.playlistIDByUser(ctx, tx, userID, playlistName)
	if err != nil {
		return nil, err
	}

	songs, err := s.membershipSongNames(ctx, tx, playlistID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return songs, nil
}

// CleanSongs returns the playlist's song names. Despite the name there is no
// predicate on explicit_rating; the listing is unfiltered.
func (s *Store) CleanSongs(ctx context.Context, playlistName string) ([]string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	playlistID, err := s.playlistIDByName(ctx, tx, playlistName)
	if err != nil {
		return nil, err
	}

	songs, err := s.membershipSongNames(ctx, tx, playlistID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return songs, nil
}

func (s *Store) playlistIDByUser(ctx context.Context, q queryer, userID int64, playlistName string) (int64, error) {
	var playlistID int64
	err := q.QueryRowContext(ctx, `
		SELECT playlist_id
		FROM user_playlist
		WHERE user_id = $1 AND playlist_name = $2
	`, userID, playlistName).Scan(&playlistID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrPlaylistNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("lookup playlist: %w", err)
	}
	return playlistID, nil
}

func (s *Store) playlistIDByName(ctx context.Context, q queryer, playlistName string) (int64, error) {
	var playlistID int64
	err := q.QueryRowContext(ctx, `
		SELECT playlist_id
		FROM user_playlist
		WHERE playlist_name = $1
	`, playlistName).Scan(&playlistID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrPlaylistNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("lookup playlist: %w", err)
	}
	return playlistID, nil
}

func (s *Store) membershipSongNames(ctx context.Context, q queryer, playlistID int64) ([]string, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT song.song_name
		FROM song_playlist
		JOIN song ON song.song_id = song_playlist.song_id
		WHERE song_playlist.playlist_id = $1
	`, playlistID)
	if err != nil {
		return nil, fmt.Errorf("select playlist songs: %w", err)
	}
	defer rows.Close()

	var songs []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan playlist song: %w", err)
		}
		songs = append(songs, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate playlist songs: %w", err)
	}
	return songs, nil
}
