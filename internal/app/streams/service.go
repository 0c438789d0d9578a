package streams

import (
	"context"

	"crescendo/internal/store"
)

// Store captures the persistence needs of the stream ledger.
type Store interface {
	LogStream(ctx context.Context, songName, artistName, username string) error
	StreamsByUser(ctx context.Context, username string) ([]store.StreamEntry, error)
	StreamsByUserAndArtist(ctx context.Context, username, artistName string) ([]string, error)
}

// Service records play events and answers historical queries.
type Service interface {
	Log(ctx context.Context, songName, artistName, username string) error
	ByUser(ctx context.Context, username string) ([]store.StreamEntry, error)
	ByUserAndArtist(ctx context.Context, username, artistName string) ([]string, error)
}

type service struct {
	store Store
}

// New constructs a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Log(ctx context.Context, songName, artistName, username string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.LogStream(ctx, songName, artistName, username)
}

func (s *service) ByUser(ctx context.Context, username string) ([]store.StreamEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.StreamsByUser(ctx, username)
}

func (s *service) ByUserAndArtist(ctx context.Context, username, artistName string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.StreamsByUserAndArtist(ctx, username, artistName)
}
