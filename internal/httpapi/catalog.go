package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"crescendo/internal/store"
)

type createArtistRequest struct {
	ArtistName string `json:"artist_name" validate:"required"`
}

type artistCreatedResponse struct {
	ArtistID int64 `json:"artist_id"`
}

func (s *Server) handleCreateArtist(w http.ResponseWriter, r *http.Request) {
	var req createArtistRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	artistID, err := s.catalog.CreateArtist(r.Context(), req.ArtistName)
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, artistCreatedResponse{ArtistID: artistID})
	case errors.Is(err, store.ErrArtistExists):
		writeMessage(w, "Artist Creation Error: Artist already exists")
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}

type uploadSongRequest struct {
	SongName       string  `json:"song_name" validate:"required"`
	FeaturedArtist string  `json:"featured_artist"`
	ExplicitRating float64 `json:"explicit_rating"`
	Length         int     `json:"length"`
}

type uploadAlbumRequest struct {
	AlbumName      string              `json:"album_name" validate:"required"`
	ArtistName     string              `json:"artist_name" validate:"required"`
	Genre          string              `json:"genre"`
	ExplicitRating int                 `json:"explicit_rating"`
	Label          string              `json:"label"`
	ReleaseDate    string              `json:"release_date"`
	Songs          []uploadSongRequest `json:"songs" validate:"dive"`
}

func (s *Server) handleUploadAlbum(w http.ResponseWriter, r *http.Request) {
	var req uploadAlbumRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	upload := store.AlbumUpload{
		AlbumName:      req.AlbumName,
		ArtistName:     req.ArtistName,
		Genre:          req.Genre,
		ExplicitRating: req.ExplicitRating,
		Label:          req.Label,
		ReleaseDate:    req.ReleaseDate,
	}
	for _, song := range req.Songs {
		upload.Songs = append(upload.Songs, store.SongUpload{
			SongName:       song.SongName,
			FeaturedArtist: song.FeaturedArtist,
			ExplicitRating: song.ExplicitRating,
			Length:         song.Length,
		})
	}

	err := s.catalog.UploadAlbum(r.Context(), upload)
	switch {
	case err == nil:
		writeMessage(w, fmt.Sprintf("Album: %s uploaded!", req.AlbumName))
	case errors.Is(err, store.ErrAlbumExists):
		writeMessage(w, "Upload Error: Album already exists")
	case errors.Is(err, store.ErrArtistNotFound):
		writeMessage(w, "Artist does not exist!")
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}

type songLookupRequest struct {
	SongName   string `json:"song_name" validate:"required"`
	ArtistName string `json:"artist_name" validate:"required"`
}

func (s *Server) handleSearchSong(w http.ResponseWriter, r *http.Request) {
	var req songLookupRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	err := s.catalog.SearchSong(r.Context(), req.SongName, req.ArtistName)
	switch {
	case err == nil:
		writeMessage(w, fmt.Sprintf("Song: %s by %s exists!", req.SongName, req.ArtistName))
	case errors.Is(err, store.ErrSongNotFound):
		writeMessage(w, fmt.Sprintf("Song: %s does not exist by the Artist: %s", req.SongName, req.ArtistName))
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}

type artistLookupRequest struct {
	ArtistName string `json:"artist_name" validate:"required"`
}

func (s *Server) handleSearchArtist(w http.ResponseWriter, r *http.Request) {
	var req artistLookupRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	err := s.catalog.SearchArtist(r.Context(), req.ArtistName)
	switch {
	case err == nil:
		writeMessage(w, fmt.Sprintf("Artist: %s exists!", req.ArtistName))
	case errors.Is(err, store.ErrArtistNotFound):
		writeMessage(w, fmt.Sprintf("Artist: %s does not exist", req.ArtistName))
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}

type albumLookupRequest struct {
	AlbumName string `json:"album_name" validate:"required"`
}

func (s *Server) handleSearchAlbum(w http.ResponseWriter, r *http.Request) {
	var req albumLookupRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	err := s.catalog.SearchAlbum(r.Context(), req.AlbumName)
	switch {
	case err == nil:
		writeMessage(w, fmt.Sprintf("Album: %s exists!", req.AlbumName))
	case errors.Is(err, store.ErrAlbumNotFound):
		writeMessage(w, fmt.Sprintf("Album: %s does not exist", req.AlbumName))
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}

type albumListResponse struct {
	Albums []string `json:"albums"`
}

func (s *Server) handleArtistAlbums(w http.ResponseWriter, r *http.Request) {
	var req artistLookupRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	albums, err := s.catalog.ArtistAlbums(r.Context(), req.ArtistName)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, albumListResponse{Albums: albums})
	case errors.Is(err, store.ErrArtistNotFound):
		writeMessage(w, "Artist does not exist!")
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}

type songListResponse struct {
	Songs []string `json:"songs"`
}

func (s *Server) handleAlbumSongs(w http.ResponseWriter, r *http.Request) {
	var req albumLookupRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	songs, err := s.catalog.AlbumSongs(r.Context(), req.AlbumName)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, songListResponse{Songs: songs})
	case errors.Is(err, store.ErrAlbumNotFound):
		writeMessage(w, "Album does not exist!")
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}

type songInfoResponse struct {
	Songs []songInfoEntry `json:"songs"`
}

type songInfoEntry struct {
	Name           string  `json:"name"`
	FeaturedArtist string  `json:"featured_artist"`
	ExplicitRating float64 `json:"explicit_rating"`
	Length         int     `json:"length"`
}

func (s *Server) handleSongInfo(w http.ResponseWriter, r *http.Request) {
	var req songLookupRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	details, err := s.catalog.SongInfo(r.Context(), req.SongName, req.ArtistName)
	switch {
	case err == nil:
		resp := songInfoResponse{Songs: make([]songInfoEntry, 0, len(details))}
		for _, d := range details {
			resp.Songs = append(resp.Songs, songInfoEntry{
				Name:           d.Name,
				FeaturedArtist: d.FeaturedArtist,
				ExplicitRating: d.ExplicitRating,
				Length:         d.Length,
			})
		}
		writeJSON(w, http.StatusOK, resp)
	case errors.Is(err, store.ErrSongNotFound):
		writeMessage(w, "Song does not exist by this Artist!")
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}

type albumInfoResponse struct {
	Albums []albumInfoEntry `json:"albums"`
}

type albumInfoEntry struct {
	Artist         string `json:"artist"`
	AlbumName      string `json:"album_name"`
	Genre          string `json:"genre"`
	ExplicitRating int    `json:"explicit_rating"`
	Label          string `json:"label"`
	ReleaseDate    string `json:"release_date"`
}

func (s *Server) handleAlbumInfo(w http.ResponseWriter, r *http.Request) {
	var req albumLookupRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	details, err := s.catalog.AlbumInfo(r.Context(), req.AlbumName)
	switch {
	case err == nil:
		resp := albumInfoResponse{Albums: make([]albumInfoEntry, 0, len(details))}
		for _, d := range details {
			resp.Albums = append(resp.Albums, albumInfoEntry{
				Artist:         d.Artist,
				AlbumName:      d.AlbumName,
				Genre:          d.Genre,
				ExplicitRating: d.ExplicitRating,
				Label:          d.Label,
				ReleaseDate:    d.ReleaseDate,
			})
		}
		writeJSON(w, http.StatusOK, resp)
	case errors.Is(err, store.ErrAlbumNotFound):
		writeMessage(w, "Album does not exist!")
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}
