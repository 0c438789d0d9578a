package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"crescendo/internal/store"
)

type createPlaylistRequest struct {
	PlaylistName string `json:"playlist_name" validate:"required"`
	Username     string `json:"username" validate:"required"`
}

func (s *Server) handleCreatePlaylist(w http.ResponseWriter, r *http.Request) {
	var req createPlaylistRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	err := s.playlists.Create(r.Context(), req.PlaylistName, req.Username)
	switch {
	case err == nil:
		writeMessage(w, fmt.Sprintf("Playlist: %s Created!", req.PlaylistName))
	case errors.Is(err, store.ErrPlaylistExists):
		writeMessage(w, "playlist name already exists for that user")
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}

type addSongToPlaylistRequest struct {
	SongName     string `json:"song_name" validate:"required"`
	AlbumName    string `json:"album_name" validate:"required"`
	PlaylistName string `json:"playlist_name" validate:"required"`
	Username     string `json:"username" validate:"required"`
}

func (s *Server) handleAddSongToPlaylist(w http.ResponseWriter, r *http.Request) {
	var req addSongToPlaylistRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	err := s.playlists.AddSong(r.Context(), req.SongName, req.AlbumName, req.PlaylistName, req.Username)
	switch {
	case err == nil:
		writeMessage(w, fmt.Sprintf("Song: %s Added to Playlist: %s", req.SongName, req.PlaylistName))
	case errors.Is(err, store.ErrUserNotFound):
		writeMessage(w, "User doesn't exist")
	case errors.Is(err, store.ErrAlbumNotFound):
		writeMessage(w, "Album doesn't exist")
	case errors.Is(err, store.ErrPlaylistNotFound):
		writeMessage(w, "Playlist doesn't exist")
	case errors.Is(err, store.ErrSongNotFound):
		writeMessage(w, "Song Addition Error: Song does not exist")
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}

type removeSongFromPlaylistRequest struct {
	SongName     string `json:"song_name" validate:"required"`
	PlaylistName string `json:"playlist_name" validate:"required"`
}

func (s *Server) handleRemoveSongFromPlaylist(w http.ResponseWriter, r *http.Request) {
	var req removeSongFromPlaylistRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	err := s.playlists.RemoveSong(r.Context(), req.SongName, req.PlaylistName)
	switch {
	case err == nil:
		writeMessage(w, "SUCCESS")
	case errors.Is(err, store.ErrSongNotFound):
		writeMessage(w, "Song doesn't exist")
	case errors.Is(err, store.ErrPlaylistNotFound):
		writeMessage(w, "Playlist doesn't exist")
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}

type viewPlaylistRequest struct {
	PlaylistName string `json:"playlist_name" validate:"required"`
	Username     string `json:"username" validate:"required"`
}

func (s *Server) handleViewPlaylist(w http.ResponseWriter, r *http.Request) {
	var req viewPlaylistRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	songs, err := s.playlists.View(r.Context(), req.PlaylistName, req.Username)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, songListResponse{Songs: songs})
	case errors.Is(err, store.ErrUserNotFound):
		writeMessage(w, "User does not exist!")
	case errors.Is(err, store.ErrPlaylistNotFound):
		writeMessage(w, "Playlist does not exist!")
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}

type playlistLookupRequest struct {
	PlaylistName string `json:"playlist_name" validate:"required"`
}

func (s *Server) handleCleanSongs(w http.ResponseWriter, r *http.Request) {
	var req playlistLookupRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	songs, err := s.playlists.CleanSongs(r.Context(), req.PlaylistName)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, songListResponse{Songs: songs})
	case errors.Is(err, store.ErrPlaylistNotFound):
		writeMessage(w, "Playlist doesn't exist")
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}

type submitRatingRequest struct {
	SongName string `json:"song_name" validate:"required"`
	Rating   int    `json:"rating"`
}

func (s *Server) handleSubmitRating(w http.ResponseWriter, r *http.Request) {
	var req submitRatingRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	err := s.ratings.Submit(r.Context(), req.SongName, req.Rating)
	switch {
	case err == nil:
		writeMessage(w, "Rating Submitted")
	case errors.Is(err, store.ErrSongNotFound):
		writeMessage(w, "Song doesn't exist")
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}
