package server

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/nhdinhdev03/nhdinh-profile-sub001/auth"
	apperrors "github.com/nhdinhdev03/nhdinh-profile-sub001/internal/errors"
	"github.com/nhdinhdev03/nhdinh-profile-sub001/token"
)

type registerRequest struct {
	Phone    string `json:"phone"`
	Username string `json:"username,omitempty"`
	FullName string `json:"fullName,omitempty"`
	Password string `json:"password"`
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// loginResponse carries the issued bearer token plus the subject
// attributes the client may cache for display.
type loginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
	ExpiresIn int    `json:"expiresIn"` // seconds
	Subject   string `json:"subject"`
	Phone     string `json:"phone,omitempty"`
	Username  string `json:"username,omitempty"`
	FullName  string `json:"fullName,omitempty"`
}

// RegisterHandler creates the administrator identity.
func (s *Server) RegisterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		id, err := s.authenticator.Register(r.Context(), auth.RegistrationParams{
			PhoneNumber: req.Phone,
			Username:    req.Username,
			FullName:    req.FullName,
			Password:    req.Password,
		})
		if err != nil {
			if apperrors.Is(err, apperrors.ErrDuplicateIdentifier) {
				respondError(w, http.StatusConflict, "identifier already registered")
				return
			}
			// Validation failures (missing phone, weak password) are client
			// errors; the message never echoes the password itself.
			respondError(w, http.StatusBadRequest, "invalid registration")
			return
		}

		respondJSON(w, http.StatusCreated, id)
	}
}

// LoginHandler verifies credentials and issues a session token. All
// failures produce the same generic 401 so callers cannot tell an
// unknown identifier from a wrong password or a deactivated account.
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		id, err := s.authenticator.Authenticate(r.Context(), req.Identifier, req.Password)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		signed, err := s.codec.Issue(id.ID, token.Attributes{
			Phone:    id.PhoneNumber,
			Username: id.Username,
			FullName: id.FullName,
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to issue token")
			respondError(w, http.StatusInternalServerError, "internal error")
			return
		}

		respondJSON(w, http.StatusOK, loginResponse{
			Token:     signed,
			TokenType: "Bearer",
			ExpiresIn: int(s.codec.Lifetime().Seconds()),
			Subject:   id.ID,
			Phone:     id.PhoneNumber,
			Username:  id.Username,
			FullName:  id.FullName,
		})
	}
}

// LogoutHandler exists for client symmetry only. Tokens are stateless
// and cannot be invalidated server-side; the client discards its copy.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}
}

type meResponse struct {
	Subject  string `json:"subject"`
	Phone    string `json:"phone,omitempty"`
	Username string `json:"username,omitempty"`
	FullName string `json:"fullName,omitempty"`
}

// MeHandler returns the claims of the authenticated context. The
// attributes come straight from the token: they reflect the identity as
// it was at login and are not re-read from the store.
func (s *Server) MeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		respondJSON(w, http.StatusOK, meResponse{
			Subject:  claims.Subject,
			Phone:    claims.Phone,
			Username: claims.Username,
			FullName: claims.FullName,
		})
	}
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePasswordHandler re-verifies the current password before storing
// a re-hash of the new one.
func (s *Server) ChangePasswordHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req changePasswordRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		err := s.authenticator.ChangePassword(r.Context(), claims.Subject, req.CurrentPassword, req.NewPassword)
		if err != nil {
			if apperrors.Is(err, apperrors.ErrInvalidCredentials) {
				respondError(w, http.StatusUnauthorized, "invalid credentials")
				return
			}
			respondError(w, http.StatusBadRequest, "invalid password change")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
