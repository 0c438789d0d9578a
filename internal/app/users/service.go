package users

import "context"

// Store describes the persistence operations required by the user service.
type Store interface {
	CreateUser(ctx context.Context, username string) error
}

// Service exposes user-related workflows in an extensible manner.
type Service interface {
	Create(ctx context.Context, username string) error
}

type service struct {
	store Store
}

// New wires a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Create(ctx context.Context, username string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.CreateUser(ctx, username)
}
