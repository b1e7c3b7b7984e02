package server

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/nhdinhdev03/nhdinh-profile-sub001/internal/errors"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

// respondServiceError maps domain errors onto HTTP statuses. Anything
// unrecognised becomes a plain 500 with no internal detail leaked.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "invalid credentials")
	case apperrors.Is(err, apperrors.ErrUnauthorized):
		respondError(w, http.StatusUnauthorized, "unauthorized")
	case apperrors.Is(err, apperrors.ErrDuplicateIdentifier):
		respondError(w, http.StatusConflict, "already exists")
	case apperrors.Is(err, apperrors.ErrNotFound):
		respondError(w, http.StatusNotFound, "not found")
	default:
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
