// Package contact stores messages submitted through the public contact
// form.
package contact

import (
	"context"
	"time"
)

type Message struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Body      string    `json:"message"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

type ListResponse struct {
	Messages []*Message `json:"messages"`
	Total    int        `json:"total"`
	Offset   int        `json:"offset"`
	Limit    int        `json:"limit"`
}

type Repo interface {
	Create(ctx context.Context, m *Message) error
	List(ctx context.Context, offset, limit int) (ListResponse, error)
	Delete(ctx context.Context, id string) error
}
