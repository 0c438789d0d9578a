package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// CreateUser registers a new user by username.
func (s *Store) CreateUser(ctx context.Context, username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("username is required")
	}

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
		SELECT user_id
		FROM users
		WHERE username = $1
	`, username).Scan(&existing)
	if err == nil {
		return ErrUserExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("check user: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO users (username)
		VALUES ($1)
	`, username); err != nil {
		if isUniqueViolation(err) {
			return ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return nil
}

// userIDByName resolves a username to its surrogate key.
func (s *Store) userIDByName(ctx context.Context, q queryer, username string) (int64, error) {
	var userID int64
	err := q.QueryRowContext(ctx, `
		SELECT user_id
		FROM users
		WHERE username = $1
	`, username).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrUserNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("lookup user: %w", err)
	}
	return userID, nil
}

// queryer is satisfied by both *sql.DB and *sql.Tx so the natural-key
// resolvers can run inside or outside an explicit transaction.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}
