package server

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/nhdinhdev03/nhdinh-profile-sub001/skills"
)

func (s *Server) ListSkillsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := s.repos.Skills.List(r.Context())
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, list)
	}
}

func (s *Server) CreateSkillHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sk skills.Skill
		if err := decodeJSON(r, &sk); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if sk.Name == "" {
			respondError(w, http.StatusBadRequest, "name is required")
			return
		}

		sk.ID = uuid.New().String()
		if err := s.repos.Skills.Create(r.Context(), &sk); err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, &sk)
	}
}

func (s *Server) UpdateSkillHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sk skills.Skill
		if err := decodeJSON(r, &sk); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if sk.Name == "" {
			respondError(w, http.StatusBadRequest, "name is required")
			return
		}

		sk.ID = r.PathValue("id")
		if err := s.repos.Skills.Update(r.Context(), &sk); err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, &sk)
	}
}

func (s *Server) DeleteSkillHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.repos.Skills.Delete(r.Context(), r.PathValue("id")); err != nil {
			respondServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
