package playlists

import "context"

// Store captures the persistence needs for playlist workflows.
type Store interface {
	CreatePlaylist(ctx context.Context, playlistName, username string) error
	AddSongToPlaylist(ctx context.Context, songName, albumName, playlistName, username string) error
	RemoveSongFromPlaylist(ctx context.Context, songName, playlistName string) error
	PlaylistSongs(ctx context.Context, playlistName, username string) ([]string, error)
	CleanSongs(ctx context.Context, playlistName string) ([]string, error)
}

// Service coordinates playlist-related operations.
type Service interface {
	Create(ctx context.Context, playlistName, username string) error
	AddSong(ctx context.Context, songName, albumName, playlistName, username string) error
	RemoveSong(ctx context.Context, songName, playlistName string) error
	View(ctx context.Context, playlistName, username string) ([]string, error)
	CleanSongs(ctx context.Context, playlistName string) ([]string, error)
}

type service struct {
	store Store
}

// New constructs a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Create(ctx context.Context, playlistName, username string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.CreatePlaylist(ctx, playlistName, username)
}

func (s *service) AddSong(ctx context.Context, songName, albumName, playlistName, username string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.AddSongToPlaylist(ctx, songName, albumName, playlistName, username)
}

func (s *service) RemoveSong(ctx context.Context, songName, playlistName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.RemoveSongFromPlaylist(ctx, songName, playlistName)
}

func (s *service) View(ctx context.Context, playlistName, username string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.PlaylistSongs(ctx, playlistName, username)
}

func (s *service) CleanSongs(ctx context.Context, playlistName string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.CleanSongs(ctx, playlistName)
}
