package recommend

import (
	"context"
	"errors"
	"fmt"

	"crescendo/internal/genai"
	"crescendo/internal/store"
)

// ErrGenreDisabled signals that no text-generation backend is configured.
var ErrGenreDisabled = errors.New("genre recommendation is not configured")

// Store captures the persistence needs of the recommendation engine.
type Store interface {
	TopStreams(ctx context.Context) ([]store.RankedStream, error)
	RecommendForPlaylist(ctx context.Context, playlistName string) ([]store.Recommendation, error)
}

// Service exposes the two relational recommendation queries plus the
// genre-based delegation to an external text generator.
type Service interface {
	TopStreams(ctx context.Context) ([]store.RankedStream, error)
	ForPlaylist(ctx context.Context, playlistName string) ([]store.Recommendation, error)
	ByGenre(ctx context.Context, genre string) (string, error)
}

type service struct {
	store     Store
	generator genai.Generator
}

// New constructs a Service backed by the provided Store and text generator.
// A nil generator disables genre recommendations.
func New(store Store, generator genai.Generator) Service {
	return &service{store: store, generator: generator}
}

func (s *service) TopStreams(ctx context.Context) ([]store.RankedStream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.TopStreams(ctx)
}

func (s *service) ForPlaylist(ctx context.Context, playlistName string) ([]store.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.RecommendForPlaylist(ctx, playlistName)
}

// ByGenre forwards the genre to the text-generation collaborator and relays
// its answer verbatim.
func (s *service) ByGenre(ctx context.Context, genre string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.generator == nil {
		return "", ErrGenreDisabled
	}
	prompt := fmt.Sprintf("You are a Music Recommendation assistant. I will give you a genre name or lead, "+
		"and you will recommend one song based on that. Say only the song name and artist, nothing else. "+
		"Recommend me a song that is %s.", genre)
	return s.generator.Generate(ctx, prompt)
}
