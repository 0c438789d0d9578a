// Package httpapi wires the HTTP JSON endpoints to the underlying services.
//
// Expected misses (not-found, already-exists) are ordinary 200 responses
// carrying a descriptive message; callers branch on content. Store faults
// are 500 responses carrying the underlying cause.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"crescendo/internal/store"
)

// UserService captures the user-facing operations needed by the handlers.
type UserService interface {
	Create(ctx context.Context, username string) error
}

// CatalogService exposes artist, album and song catalog workflows.
type CatalogService interface {
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

// StreamService records play events and answers historical stream queries.
type StreamService interface {
	Log(ctx context.Context, songName, artistName, username string) error
	ByUser(ctx context.Context, username string) ([]store.StreamEntry, error)
	ByUserAndArtist(ctx context.Context, username, artistName string) ([]string, error)
}

// PlaylistService coordinates playlist-related operations.
type PlaylistService interface {
	Create(ctx context.Context, playlistName, username string) error
	AddSong(ctx context.Context, songName, albumName, playlistName, username string) error
	RemoveSong(ctx context.Context, songName, playlistName string) error
	View(ctx context.Context, playlistName, username string) ([]string, error)
	CleanSongs(ctx context.Context, playlistName string) ([]string, error)
}

// RatingService accepts explicit-content submissions.
type RatingService interface {
	Submit(ctx context.Context, songName string, rating int) error
}

// RecommendService exposes the recommendation engine.
type RecommendService interface {
	TopStreams(ctx context.Context) ([]store.RankedStream, error)
	ForPlaylist(ctx context.Context, playlistName string) ([]store.Recommendation, error)
	ByGenre(ctx context.Context, genre string) (string, error)
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	users     UserService
	catalog   CatalogService
	streams   StreamService
	playlists PlaylistService
	ratings   RatingService
	recommend RecommendService
	validate  *validator.Validate
}

// New configures a Server with the given service implementations.
func New(
	users UserService,
	catalog CatalogService,
	streams StreamService,
	playlists PlaylistService,
	ratings RatingService,
	recommend RecommendService,
) *Server {
	return &Server{
		users:     users,
		catalog:   catalog,
		streams:   streams,
		playlists: playlists,
		ratings:   ratings,
		recommend: recommend,
		validate:  validator.New(),
	}
}

// Routes exposes the HTTP handlers.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("POST /api/v1/users", s.handleAddUser)

	mux.HandleFunc("POST /api/v1/artists", s.handleCreateArtist)
	mux.HandleFunc("POST /api/v1/albums", s.handleUploadAlbum)

	mux.HandleFunc("POST /api/v1/search/songs", s.handleSearchSong)
	mux.HandleFunc("POST /api/v1/search/artists", s.handleSearchArtist)
	mux.HandleFunc("POST /api/v1/search/albums", s.handleSearchAlbum)
	mux.HandleFunc("POST /api/v1/artists/albums", s.handleArtistAlbums)
	mux.HandleFunc("POST /api/v1/albums/songs", s.handleAlbumSongs)
	mux.HandleFunc("POST /api/v1/songs/info", s.handleSongInfo)
	mux.HandleFunc("POST /api/v1/albums/info", s.handleAlbumInfo)

	mux.HandleFunc("POST /api/v1/streams", s.handleLogStream)
	mux.HandleFunc("POST /api/v1/streams/user", s.handleStreamsByUser)
	mux.HandleFunc("POST /api/v1/streams/artist", s.handleStreamsByArtist)

	mux.HandleFunc("POST /api/v1/playlists", s.handleCreatePlaylist)
	mux.HandleFunc("POST /api/v1/playlists/songs", s.handleAddSongToPlaylist)
	mux.HandleFunc("DELETE /api/v1/playlists/songs", s.handleRemoveSongFromPlaylist)
	mux.HandleFunc("POST /api/v1/playlists/view", s.handleViewPlaylist)
	mux.HandleFunc("POST /api/v1/playlists/clean", s.handleCleanSongs)

	mux.HandleFunc("POST /api/v1/songs/rating", s.handleSubmitRating)

	mux.HandleFunc("GET /api/v1/streams/top", s.handleTopStreams)
	mux.HandleFunc("POST /api/v1/playlists/recommend", s.handleRecommendPlaylist)
	mux.HandleFunc("POST /api/v1/songs/recommend", s.handleRecommendByGenre)

	return mux
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, messageResponse{Message: message})
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return false
	}
	return true
}
