package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/nhdinhdev03/nhdinh-profile-sub001/projects"
)

func (s *Server) ListProjectsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, limit := pagination(r)
		resp, err := s.repos.Projects.List(r.Context(), offset, limit)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

func (s *Server) GetProjectHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := s.repos.Projects.Get(r.Context(), r.PathValue("id"))
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, p)
	}
}

func (s *Server) CreateProjectHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p projects.Project
		if err := decodeJSON(r, &p); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if p.Title == "" {
			respondError(w, http.StatusBadRequest, "title is required")
			return
		}

		p.ID = uuid.New().String()
		p.CreatedAt = time.Now()
		p.UpdatedAt = p.CreatedAt

		if err := s.repos.Projects.Create(r.Context(), &p); err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, &p)
	}
}

func (s *Server) UpdateProjectHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p projects.Project
		if err := decodeJSON(r, &p); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if p.Title == "" {
			respondError(w, http.StatusBadRequest, "title is required")
			return
		}

		p.ID = r.PathValue("id")
		p.UpdatedAt = time.Now()

		if err := s.repos.Projects.Update(r.Context(), &p); err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, &p)
	}
}

func (s *Server) DeleteProjectHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.repos.Projects.Delete(r.Context(), r.PathValue("id")); err != nil {
			respondServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type replaceTagsRequest struct {
	Tags []string `json:"tags"`
}

// ReplaceProjectTagsHandler swaps a project's ordered tag list; sending
// the same tags in a new order is how the admin UI reorders them.
func (s *Server) ReplaceProjectTagsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req replaceTagsRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		projectID := r.PathValue("id")
		if _, err := s.repos.Projects.Get(r.Context(), projectID); err != nil {
			respondServiceError(w, err)
			return
		}

		if err := s.repos.Projects.ReplaceTags(r.Context(), projectID, req.Tags); err != nil {
			respondServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
