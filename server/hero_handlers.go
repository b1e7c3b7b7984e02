package server

import (
	"net/http"
	"time"

	"github.com/nhdinhdev03/nhdinh-profile-sub001/hero"
)

// GetHeroHandler serves the landing-page hero section.
func (s *Server) GetHeroHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h, err := s.repos.Hero.Get(r.Context())
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, h)
	}
}

// UpsertHeroHandler replaces the hero section.
func (s *Server) UpsertHeroHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var h hero.Hero
		if err := decodeJSON(r, &h); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if h.Heading == "" {
			respondError(w, http.StatusBadRequest, "heading is required")
			return
		}
		h.UpdatedAt = time.Now()

		if err := s.repos.Hero.Upsert(r.Context(), &h); err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, &h)
	}
}
