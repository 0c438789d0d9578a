package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

const artistByNameQuery = `
		SELECT id
		FROM artist
		WHERE artist_name = $1
	`

const insertAlbumQuery = `
		INSERT INTO album (album_name, artist_id, genre, explicit_rating, label, release_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

const insertSongQuery = `
		INSERT INTO song (song_name, artist_id, featured_artist, explicit_rating, length, album_id)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

func demoUpload() AlbumUpload {
	return AlbumUpload{
		AlbumName:      "First Album",
		ArtistName:     "Artist A",
		Genre:          "Electronic",
		ExplicitRating: 1,
		Label:          "Indie",
		ReleaseDate:    "2021-05-01",
		Songs: []SongUpload{
			{SongName: "Alpha", FeaturedArtist: "", ExplicitRating: 0.2, Length: 180},
			{SongName: "Beta", FeaturedArtist: "Artist B", ExplicitRating: 0.8, Length: 210},
		},
	}
}

func TestUploadAlbumSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(albumByNameQuery)).
		WithArgs("First Album").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(regexp.QuoteMeta(artistByNameQuery)).
		WithArgs("Artist A").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(2)))
	mock.ExpectQuery(regexp.QuoteMeta(insertAlbumQuery)).
		WithArgs("First Album", int64(2), "Electronic", 1, "Indie", "2021-05-01").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(8)))
	mock.ExpectPrepare(regexp.QuoteMeta(insertSongQuery))
	mock.ExpectExec(regexp.QuoteMeta(insertSongQuery)).
		WithArgs("Alpha", int64(2), "", 0.2, 180, int64(8)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(insertSongQuery)).
		WithArgs("Beta", int64(2), "Artist B", 0.8, 210, int64(8)).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	if err := s.UploadAlbum(context.Background(), demoUpload()); err != nil {
		t.Fatalf("UploadAlbum error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUploadAlbumDuplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(albumByNameQuery)).
		WithArgs("First Album").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(8)))
	mock.ExpectRollback()

	err = s.UploadAlbum(context.Background(), demoUpload())
	if !errors.Is(err, ErrAlbumExists) {
		t.Fatalf("expected ErrAlbumExists, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// A fault while inserting songs must roll the album row back with it.
func TestUploadAlbumRollsBackOnSongFault(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(albumByNameQuery)).
		WithArgs("First Album").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(regexp.QuoteMeta(artistByNameQuery)).
		WithArgs("Artist A").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(2)))
	mock.ExpectQuery(regexp.QuoteMeta(insertAlbumQuery)).
		WithArgs("First Album", int64(2), "Electronic", 1, "Indie", "2021-05-01").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(8)))
	mock.ExpectPrepare(regexp.QuoteMeta(insertSongQuery))
	mock.ExpectExec(regexp.QuoteMeta(insertSongQuery)).
		WithArgs("Alpha", int64(2), "", 0.2, 180, int64(8)).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	if err := s.UploadAlbum(context.Background(), demoUpload()); err == nil {
		t.Fatal("expected error but got nil")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUploadAlbumUnknownArtist(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(albumByNameQuery)).
		WithArgs("First Album").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(regexp.QuoteMeta(artistByNameQuery)).
		WithArgs("Artist A").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err = s.UploadAlbum(context.Background(), demoUpload())
	if !errors.Is(err, ErrArtistNotFound) {
		t.Fatalf("expected ErrArtistNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
