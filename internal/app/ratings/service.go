package ratings

import "context"

// Store captures the persistence needs for rating submissions.
type Store interface {
	SubmitRating(ctx context.Context, songName string, rating int) error
}

// Service accepts user explicit-content submissions for songs.
type Service interface {
	Submit(ctx context.Context, songName string, rating int) error
}

type service struct {
	store Store
}

// New constructs a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Submit(ctx context.Context, songName string, rating int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.SubmitRating(ctx, songName, rating)
}
