package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

const songByArtistQuery = `
		SELECT song_id
		FROM song
		JOIN artist ON artist.id = song.artist_id
		WHERE song_name = $1 AND artist_name = $2
	`

func TestLogStreamSuccess(t *testing.T) {
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
	mock.ExpectQuery(regexp.QuoteMeta(songByArtistQuery)).
		WithArgs("Alpha", "Artist A").
		WillReturnRows(sqlmock.NewRows([]string{"song_id"}).AddRow(int64(11)))
	mock.ExpectExec(regexp.QuoteMeta(`
		INSERT INTO streams (user_id, song_id)
		VALUES ($1, $2)
	`)).
		WithArgs(int64(4), int64(11)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	if err := s.LogStream(context.Background(), "Alpha", "Artist A", "sam"); err != nil {
		t.Fatalf("LogStream error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLogStreamUnknownUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(userByNameQuery)).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))
	mock.ExpectRollback()

	err = s.LogStream(context.Background(), "Alpha", "Artist A", "ghost")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStreamsByUserKeepsDuplicates(t *testing.T) {
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
	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT song.song_name, artist.artist_name
		FROM streams
		JOIN song ON streams.song_id = song.song_id
		JOIN artist ON artist.id = song.artist_id
		WHERE streams.user_id = $1
	`)).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"song_name", "artist_name"}).
			AddRow("Alpha", "Artist A").
			AddRow("Alpha", "Artist A").
			AddRow("Beta", "Artist B"))
	mock.ExpectCommit()

	entries, err := s.StreamsByUser(context.Background(), "sam")
	if err != nil {
		t.Fatalf("StreamsByUser error: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("expected 3 entries (one per play), got %d", len(entries))
	}
	if entries[0] != entries[1] {
		t.Fatalf("expected duplicate plays to be preserved, got %+v and %+v", entries[0], entries[1])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
