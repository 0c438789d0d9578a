package store

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors for expected misses. Handlers branch on these and turn
// them into descriptive results; they are never surfaced as server faults.
var (
	ErrUserExists       = errors.New("user already exists")
	ErrUserNotFound     = errors.New("user not found")
	ErrArtistExists     = errors.New("artist already exists")
	ErrArtistNotFound   = errors.New("artist not found")
	ErrAlbumExists      = errors.New("album already exists")
	ErrAlbumNotFound    = errors.New("album not found")
	ErrSongNotFound     = errors.New("song not found")
	ErrPlaylistExists   = errors.New("playlist already exists for user")
	ErrPlaylistNotFound = errors.New("playlist not found")
)

// Store provides persistence backed by Postgres. Every exported method runs
// inside a single transaction: guard lookups first, then the effectful
// statement or read, then commit. A failure anywhere rolls the call back.
type Store struct {
	db *sql.DB
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation. The schema constraints back up the read-then-write existence
// checks, so a racing duplicate insert maps to the same already-exists
// result the pre-check produces.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
