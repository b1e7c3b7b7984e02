// Package server wires the HTTP surface of the portfolio API: public
// content reads, the contact form, and the authenticated admin mutations.
package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/nhdinhdev03/nhdinh-profile-sub001/auth"
	"github.com/nhdinhdev03/nhdinh-profile-sub001/blog"
	"github.com/nhdinhdev03/nhdinh-profile-sub001/contact"
	"github.com/nhdinhdev03/nhdinh-profile-sub001/hero"
	"github.com/nhdinhdev03/nhdinh-profile-sub001/identity"
	"github.com/nhdinhdev03/nhdinh-profile-sub001/internal/config"
	"github.com/nhdinhdev03/nhdinh-profile-sub001/projects"
	"github.com/nhdinhdev03/nhdinh-profile-sub001/skills"
	"github.com/nhdinhdev03/nhdinh-profile-sub001/token"
)

// Repos holds all repository dependencies for the Server.
type Repos struct {
	Identities identity.Repo
	Hero       hero.Repo
	Projects   projects.Repo
	Skills     skills.Repo
	Blog       blog.Repo
	Contact    contact.Repo
}

type Server struct {
	env    string
	mux    *http.ServeMux
	routes []string
	config config.Config
	repos  Repos

	authenticator *auth.Authenticator
	codec         *token.Codec
}

func New(cfg config.Config, repos Repos, codec *token.Codec) (*Server, error) {
	if repos.Identities == nil {
		return nil, fmt.Errorf("[Server New] identity repo is required")
	}
	if codec == nil {
		return nil, fmt.Errorf("[Server New] token codec is required")
	}

	hasher := identity.NewHasher(cfg.GetBcryptCost())
	authenticator, err := auth.NewAuthenticator(repos.Identities, hasher)
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to create authenticator: %w", err)
	}

	s := &Server{
		mux:           http.NewServeMux(),
		config:        cfg,
		repos:         repos,
		authenticator: authenticator,
		codec:         codec,
	}
	s.env = cfg.GetEnv()

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Info().Msgf("[%-19s] %s", displayMethod, path)
}
