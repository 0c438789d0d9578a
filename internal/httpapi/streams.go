package httpapi

import (
	"errors"
	"net/http"

	"crescendo/internal/store"
)

type logStreamRequest struct {
	SongName   string `json:"song_name" validate:"required"`
	ArtistName string `json:"artist_name" validate:"required"`
	Username   string `json:"username" validate:"required"`
}

func (s *Server) handleLogStream(w http.ResponseWriter, r *http.Request) {
	var req logStreamRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	err := s.streams.Log(r.Context(), req.SongName, req.ArtistName, req.Username)
	switch {
	case err == nil:
		writeMessage(w, "Song streamed!")
	case errors.Is(err, store.ErrUserNotFound):
		writeMessage(w, "User does not exist!")
	case errors.Is(err, store.ErrSongNotFound):
		writeMessage(w, "Song does not exist by this Artist!")
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}

type userLookupRequest struct {
	Username string `json:"username" validate:"required"`
}

type streamHistoryResponse struct {
	Streams []streamHistoryEntry `json:"streams"`
}

type streamHistoryEntry struct {
	SongName   string `json:"song_name"`
	ArtistName string `json:"artist_name"`
}

func (s *Server) handleStreamsByUser(w http.ResponseWriter, r *http.Request) {
	var req userLookupRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	entries, err := s.streams.ByUser(r.Context(), req.Username)
	switch {
	case err == nil:
		resp := streamHistoryResponse{Streams: make([]streamHistoryEntry, 0, len(entries))}
		for _, e := range entries {
			resp.Streams = append(resp.Streams, streamHistoryEntry{
				SongName:   e.SongName,
				ArtistName: e.ArtistName,
			})
		}
		writeJSON(w, http.StatusOK, resp)
	case errors.Is(err, store.ErrUserNotFound):
		writeMessage(w, "User does not exist!")
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}

type streamsByArtistRequest struct {
	Username   string `json:"username" validate:"required"`
	ArtistName string `json:"artist_name" validate:"required"`
}

func (s *Server) handleStreamsByArtist(w http.ResponseWriter, r *http.Request) {
	var req streamsByArtistRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	songs, err := s.streams.ByUserAndArtist(r.Context(), req.Username, req.ArtistName)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, songListResponse{Songs: songs})
	case errors.Is(err, store.ErrUserNotFound):
		writeMessage(w, "User doesn't exist!")
	case errors.Is(err, store.ErrArtistNotFound):
		writeMessage(w, "Artist doesn't exist!")
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}
