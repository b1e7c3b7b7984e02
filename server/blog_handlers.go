package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/nhdinhdev03/nhdinh-profile-sub001/blog"
)

// ListPostsHandler lists posts. Anonymous callers see published posts
// only; an authenticated admin also sees drafts.
func (s *Server) ListPostsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, authenticated := ClaimsFromContext(r.Context())
		offset, limit := pagination(r)

		resp, err := s.repos.Blog.ListPosts(r.Context(), authenticated, offset, limit)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

func (s *Server) GetPostHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, authenticated := ClaimsFromContext(r.Context())

		p, err := s.repos.Blog.GetBySlug(r.Context(), r.PathValue("slug"), authenticated)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, p)
	}
}

func (s *Server) CreatePostHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p blog.Post
		if err := decodeJSON(r, &p); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if p.Slug == "" || p.Title == "" {
			respondError(w, http.StatusBadRequest, "slug and title are required")
			return
		}

		p.ID = uuid.New().String()
		p.CreatedAt = time.Now()
		p.UpdatedAt = p.CreatedAt

		if err := s.repos.Blog.CreatePost(r.Context(), &p); err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, &p)
	}
}

func (s *Server) UpdatePostHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p blog.Post
		if err := decodeJSON(r, &p); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if p.Slug == "" || p.Title == "" {
			respondError(w, http.StatusBadRequest, "slug and title are required")
			return
		}

		p.ID = r.PathValue("id")
		p.UpdatedAt = time.Now()

		if err := s.repos.Blog.UpdatePost(r.Context(), &p); err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, &p)
	}
}

func (s *Server) DeletePostHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.repos.Blog.DeletePost(r.Context(), r.PathValue("id")); err != nil {
			respondServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type replacePostTagsRequest struct {
	TagIDs []string `json:"tagIds"`
}

// ReplacePostTagsHandler swaps a post's ordered tag mapping.
func (s *Server) ReplacePostTagsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req replacePostTagsRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		postID := r.PathValue("id")
		if _, err := s.repos.Blog.GetByID(r.Context(), postID); err != nil {
			respondServiceError(w, err)
			return
		}

		if err := s.repos.Blog.ReplacePostTags(r.Context(), postID, req.TagIDs); err != nil {
			respondServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) ListTagsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tags, err := s.repos.Blog.ListTags(r.Context())
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, tags)
	}
}

func (s *Server) CreateTagHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var t blog.Tag
		if err := decodeJSON(r, &t); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if t.Name == "" {
			respondError(w, http.StatusBadRequest, "name is required")
			return
		}

		t.ID = uuid.New().String()
		if err := s.repos.Blog.CreateTag(r.Context(), &t); err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, &t)
	}
}

func (s *Server) DeleteTagHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.repos.Blog.DeleteTag(r.Context(), r.PathValue("id")); err != nil {
			respondServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
