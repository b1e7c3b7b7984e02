// Package projects manages the portfolio project showcase.
package projects

import (
	"context"
	"time"
)

type Project struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	DemoURL     string    `json:"demoUrl,omitempty"`
	SourceURL   string    `json:"sourceUrl,omitempty"`
	SortOrder   int       `json:"sortOrder"`
	Tags        []string  `json:"tags,omitempty"` // ordered technology tags
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

type ListResponse struct {
	Projects []*Project `json:"projects"`
	Total    int        `json:"total"`
	Offset   int        `json:"offset"`
	Limit    int        `json:"limit"`
}

// Repo stores projects and their ordered tag mapping. ReplaceTags swaps
// the whole mapping in one operation, which doubles as the reorder helper.
type Repo interface {
	List(ctx context.Context, offset, limit int) (ListResponse, error)
	Get(ctx context.Context, id string) (*Project, error)
	Create(ctx context.Context, p *Project) error
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id string) error
	ReplaceTags(ctx context.Context, projectID string, tags []string) error
}
