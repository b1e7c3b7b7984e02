// Package skills manages the skills grid shown on the portfolio.
package skills

import "context"

type Skill struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Category  string `json:"category,omitempty"` // e.g. "backend", "frontend", "tools"
	Level     int    `json:"level,omitempty"`    // 1..5 proficiency shown as bars
	SortOrder int    `json:"sortOrder"`
}

// Repo stores skills. List returns every skill ordered by category then
// sort order; the set is small enough that pagination would be noise.
type Repo interface {
	List(ctx context.Context) ([]*Skill, error)
	Create(ctx context.Context, s *Skill) error
	Update(ctx context.Context, s *Skill) error
	Delete(ctx context.Context, id string) error
}
