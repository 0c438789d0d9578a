package catalog

import (
	"context"

	"crescendo/internal/store"
)

// Store captures the persistence needs for catalog workflows.
type Store interface {
	CreateArtist(ctx context.Context, artistName string) (int64, error)
	ArtistIDByName(ctx context.Context, artistName string) (int64, error)
	ArtistAlbums(ctx context.Context, artistName string) ([]string, error)
	UploadAlbum(ctx context.Context, upload store.AlbumUpload) error
	AlbumIDByName(ctx context.Context, albumName string) (int64, error)
	AlbumSongs(ctx context.Context, albumName string) ([]string, error)
	AlbumInfo(ctx context.Context, albumName string) ([]store.AlbumDetails, error)
	SongIDByArtist(ctx context.Context, songName, artistName string) (int64, error)
	SongInfo(ctx context.Context, songName, artistName string) ([]store.SongDetails, error)
}

// Service coordinates artist, album and song catalog operations.
type Service interface {
	CreateArtist(ctx context.Context, artistName string) (int64, error)
	UploadAlbum(ctx context.Context, upload store.AlbumUpload) error
	SearchSong(ctx context.Context, songName, artistName string) error
	SearchArtist(ctx context.Context, artistName string) error
	SearchAlbum(ctx context.Context, albumName string) error
	ArtistAlbums(ctx context.Context, artistName string) ([]string, error)
	AlbumSongs(ctx context.Context, albumName string) ([]string, error)
	SongInfo(ctx context.Context, songName, artistName string) ([]store.SongDetails, error)
	AlbumInfo(ctx context.Context, albumName string) ([]store.AlbumDetails, error)
}

type service struct {
	store Store
}

// New constructs a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) CreateArtist(ctx context.Context, artistName string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.store.CreateArtist(ctx, artistName)
}

func (s *service) UploadAlbum(ctx context.Context, upload store.AlbumUpload) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.UploadAlbum(ctx, upload)
}

// SearchSong reports existence of (song, artist); a miss surfaces as
// store.ErrSongNotFound.
func (s *service) SearchSong(ctx context.Context, songName, artistName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := s.store.SongIDByArtist(ctx, songName, artistName)
	return err
}

func (s *service) SearchArtist(ctx context.Context, artistName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := s.store.ArtistIDByName(ctx, artistName)
	return err
}

func (s *service) SearchAlbum(ctx context.Context, albumName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := s.store.AlbumIDByName(ctx, albumName)
	return err
}

func (s *service) ArtistAlbums(ctx context.Context, artistName string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ArtistAlbums(ctx, artistName)
}

func (s *service) AlbumSongs(ctx context.Context, albumName string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.AlbumSongs(ctx, albumName)
}

func (s *service) SongInfo(ctx context.Context, songName, artistName string) ([]store.SongDetails, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.SongInfo(ctx, songName, artistName)
}

func (s *service) AlbumInfo(ctx context.Context, albumName string) ([]store.AlbumDetails, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.AlbumInfo(ctx, albumName)
}
