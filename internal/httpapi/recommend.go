package httpapi

import (
	"errors"
	"net/http"

	"crescendo/internal/app/recommend"
	"crescendo/internal/store"
)

type topStreamsResponse struct {
	Top []topStreamEntry `json:"top"`
}

type topStreamEntry struct {
	Position int    `json:"position"`
	Song     string `json:"song"`
	Artist   string `json:"artist"`
	Streams  int    `json:"streams"`
}

func (s *Server) handleTopStreams(w http.ResponseWriter, r *http.Request) {
	ranking, err := s.recommend.TopStreams(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	resp := topStreamsResponse{Top: make([]topStreamEntry, 0, len(ranking))}
	for _, entry := range ranking {
		resp.Top = append(resp.Top, topStreamEntry{
			Position: entry.Position,
			Song:     entry.Song,
			Artist:   entry.Artist,
			Streams:  entry.Streams,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

type recommendPlaylistResponse struct {
	Recommendations []recommendationEntry `json:"recommendations"`
}

type recommendationEntry struct {
	SongID     int64  `json:"song_id"`
	SongName   string `json:"song_name"`
	AlbumName  string `json:"album_name"`
	ArtistName string `json:"artist_name"`
}

func (s *Server) handleRecommendPlaylist(w http.ResponseWriter, r *http.Request) {
	var req playlistLookupRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	recs, err := s.recommend.ForPlaylist(r.Context(), req.PlaylistName)
	switch {
	case err == nil:
		resp := recommendPlaylistResponse{Recommendations: make([]recommendationEntry, 0, len(recs))}
		for _, rec := range recs {
			resp.Recommendations = append(resp.Recommendations, recommendationEntry{
				SongID:     rec.SongID,
				SongName:   rec.SongName,
				AlbumName:  rec.AlbumName,
				ArtistName: rec.ArtistName,
			})
		}
		writeJSON(w, http.StatusOK, resp)
	case errors.Is(err, store.ErrPlaylistNotFound):
		writeMessage(w, "Playlist doesn't exist")
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}

type recommendByGenreRequest struct {
	Genre string `json:"genre" validate:"required"`
}

type recommendByGenreResponse struct {
	Recommendation string `json:"recommendation"`
}

func (s *Server) handleRecommendByGenre(w http.ResponseWriter, r *http.Request) {
	var req recommendByGenreRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	text, err := s.recommend.ByGenre(r.Context(), req.Genre)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, recommendByGenreResponse{Recommendation: text})
	case errors.Is(err, recommend.ErrGenreDisabled):
		writeMessage(w, "Genre recommendation is not configured")
	default:
		writeError(w, http.StatusBadGateway, err)
	}
}
