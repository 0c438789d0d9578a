package store

import (
	"context"
	"fmt"
)

// SubmitRating appends one explicit-content submission for the named song.
// Submissions are append-only; nothing aggregates them here. The guard
// resolves by song name only, matching the submission insert predicate.
func (s *Store) SubmitRating(ctx context.Context, songName string, rating int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	songID, err := s.songIDByName(ctx, tx, songName)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO explicit_submissions (song_id, exbool)
		VALUES ($1, $2)
	`, songID, rating); err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return nil
}
