package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nhdinhdev03/nhdinh-profile-sub001/contact"
)

// SubmitContactHandler accepts a message from the public contact form.
func (s *Server) SubmitContactHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var m contact.Message
		if err := decodeJSON(r, &m); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if m.Name == "" || m.Body == "" {
			respondError(w, http.StatusBadRequest, "name and message are required")
			return
		}
		if m.Email != "" && !strings.Contains(m.Email, "@") {
			respondError(w, http.StatusBadRequest, "invalid email address")
			return
		}

		m.ID = uuid.New().String()
		m.CreatedAt = time.Now()

		if err := s.repos.Contact.Create(r.Context(), &m); err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, &m)
	}
}

func (s *Server) ListContactHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, limit := pagination(r)

		resp, err := s.repos.Contact.List(r.Context(), offset, limit)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

func (s *Server) DeleteContactHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.repos.Contact.Delete(r.Context(), r.PathValue("id")); err != nil {
			respondServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
