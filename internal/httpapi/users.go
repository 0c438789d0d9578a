package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"crescendo/internal/store"
)

type addUserRequest struct {
	Username string `json:"username" validate:"required"`
}

func (s *Server) handleAddUser(w http.ResponseWriter, r *http.Request) {
	var req addUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	err := s.users.Create(r.Context(), req.Username)
	switch {
	case err == nil:
		writeMessage(w, fmt.Sprintf("User: %s added!", req.Username))
	case errors.Is(err, store.ErrUserExists):
		writeMessage(w, "User already exists!")
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}
