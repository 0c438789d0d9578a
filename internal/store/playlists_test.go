package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

const userByNameQuery = `
		SELECT user_id
		FROM users
		WHERE username = $1
	`

const albumByNameQuery = `
		SELECT id
		FROM album
		WHERE album_name = $1
	`

const playlistByUserQuery = `
		SELECT playlist_id
		FROM user_playlist
		WHERE user_id = $1 AND playlist_name = $2
	`

const songByNameQuery = `
		SELECT song_id
		FROM song
		WHERE song_name = $1
	`

func TestCreatePlaylistSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT playlist_name
		FROM user_playlist
		JOIN users ON users.user_id = user_playlist.user_id
		WHERE playlist_name = $1 AND users.username = $2
	`)).
		WithArgs("morning", "sam").
		WillReturnRows(sqlmock.NewRows([]string{"playlist_name"}))
	mock.ExpectExec(regexp.QuoteMeta(`
		INSERT INTO user_playlist (playlist_name, user_id)
		SELECT $1, user_id
		FROM users
		WHERE username = $2
	`)).
		WithArgs("morning", "sam").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	if err := s.CreatePlaylist(context.Background(), "morning", "sam"); err != nil {
		t.Fatalf("CreatePlaylist error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreatePlaylistDuplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT playlist_name
		FROM user_playlist
		JOIN users ON users.user_id = user_playlist.user_id
		WHERE playlist_name = $1 AND users.username = $2
	`)).
		WithArgs("morning", "sam").
		WillReturnRows(sqlmock.NewRows([]string{"playlist_name"}).AddRow("morning"))
	mock.ExpectRollback()

	err = s.CreatePlaylist(context.Background(), "morning", "sam")
	if !errors.Is(err, ErrPlaylistExists) {
		t.Fatalf("expected ErrPlaylistExists, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAddSongToPlaylistSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(userByNameQuery)).
		WithArgs("sam").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(4)))
	mock.ExpectQuery(regexp.QuoteMeta(albumByNameQuery)).
		WithArgs("First Album").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(8)))
	mock.ExpectQuery(regexp.QuoteMeta(playlistByUserQuery)).
		WithArgs(int64(4), "morning").
		WillReturnRows(sqlmock.NewRows([]string{"playlist_id"}).AddRow(int64(3)))
	mock.ExpectQuery(regexp.QuoteMeta(songByNameQuery)).
		WithArgs("Alpha").
		WillReturnRows(sqlmock.NewRows([]string{"song_id"}).AddRow(int64(11)))
	mock.ExpectExec(regexp.QuoteMeta(`
		INSERT INTO song_playlist (playlist_id, song_id)
		SELECT $1, song.song_id
		FROM song
		JOIN album ON album.id = song.album_id
		WHERE song.song_name = $2 AND album.album_name = $3
	`)).
		WithArgs(int64(3), "Alpha", "First Album").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := s.AddSongToPlaylist(context.Background(), "Alpha", "First Album", "morning", "sam"); err != nil {
		t.Fatalf("AddSongToPlaylist error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAddSongToPlaylistUnknownSong(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(userByNameQuery)).
		WithArgs("sam").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(4)))
	mock.ExpectQuery(regexp.QuoteMeta(albumByNameQuery)).
		WithArgs("First Album").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(8)))
	mock.ExpectQuery(regexp.QuoteMeta(playlistByUserQuery)).
		WithArgs(int64(4), "morning").
		WillReturnRows(sqlmock.NewRows([]string{"playlist_id"}).AddRow(int64(3)))
	mock.ExpectQuery(regexp.QuoteMeta(songByNameQuery)).
		WithArgs("Nope").
		WillReturnRows(sqlmock.NewRows([]string{"song_id"}))
	mock.ExpectRollback()

	err = s.AddSongToPlaylist(context.Background(), "Nope", "First Album", "morning", "sam")
	if !errors.Is(err, ErrSongNotFound) {
		t.Fatalf("expected ErrSongNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRemoveSongFromPlaylistScopedToPlaylist(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(songByNameQuery)).
		WithArgs("Alpha").
		WillReturnRows(sqlmock.NewRows([]string{"song_id"}).AddRow(int64(11)))
	mock.ExpectQuery(regexp.QuoteMeta(playlistByNameQuery)).
		WithArgs("morning").
		WillReturnRows(sqlmock.NewRows([]string{"playlist_id"}).AddRow(int64(3)))
	mock.ExpectExec(regexp.QuoteMeta(`
		DELETE FROM song_playlist
		USING song
		WHERE song_playlist.playlist_id = $1
		  AND song_playlist.song_id = song.song_id
		  AND song.song_name = $2
	`)).
		WithArgs(int64(3), "Alpha").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := s.RemoveSongFromPlaylist(context.Background(), "Alpha", "morning"); err != nil {
		t.Fatalf("RemoveSongFromPlaylist error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
