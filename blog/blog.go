// Package blog manages blog posts and their tag taxonomy.
package blog

import (
	"context"
	"time"
)

type Post struct {
	ID        string    `json:"id,omitempty"`
	Slug      string    `json:"slug"` // unique URL key
	Title     string    `json:"title"`
	Summary   string    `json:"summary,omitempty"`
	Content   string    `json:"content,omitempty"`
	Published bool      `json:"published"`
	Tags      []Tag     `json:"tags,omitempty"` // ordered
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

type Tag struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

type ListResponse struct {
	Posts  []*Post `json:"posts"`
	Total  int     `json:"total"`
	Offset int     `json:"offset"`
	Limit  int     `json:"limit"`
}

// Repo stores posts, tags and the ordered post-tag mapping. When
// includeDrafts is false only published posts are visible; anonymous
// readers never see drafts.
type Repo interface {
	ListPosts(ctx context.Context, includeDrafts bool, offset, limit int) (ListResponse, error)
	GetBySlug(ctx context.Context, slug string, includeDrafts bool) (*Post, error)
	GetByID(ctx context.Context, id string) (*Post, error)
	CreatePost(ctx context.Context, p *Post) error
	UpdatePost(ctx context.Context, p *Post) error
	DeletePost(ctx context.Context, id string) error

	ListTags(ctx context.Context) ([]Tag, error)
	CreateTag(ctx context.Context, t *Tag) error
	DeleteTag(ctx context.Context, id string) error
	// ReplacePostTags swaps a post's ordered tag list; it is also the
	// reorder operation.
	ReplacePostTags(ctx context.Context, postID string, tagIDs []string) error
}
