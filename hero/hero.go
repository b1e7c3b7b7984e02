// Package hero holds the single landing-page hero section.
package hero

import (
	"context"
	"time"
)

type Hero struct {
	Heading    string    `json:"heading"`
	SubHeading string    `json:"subHeading,omitempty"`
	Intro      string    `json:"intro,omitempty"`
	UpdatedAt  time.Time `json:"updatedAt,omitempty"`
}

// Repo stores the hero section. There is exactly one; Upsert replaces it.
type Repo interface {
	Get(ctx context.Context) (*Hero, error)
	Upsert(ctx context.Context, h *Hero) error
}
