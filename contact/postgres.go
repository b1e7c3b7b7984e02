package contact

import (
	"context"
	"database/sql"
	"fmt"

	apperrors "github.com/nhdinhdev03/nhdinh-profile-sub001/internal/errors"
)

type PostgresRepo struct {
	db *sql.DB
}

var _ Repo = (*PostgresRepo)(nil)

func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) Create(ctx context.Context, m *Message) error {
	query := `INSERT INTO contact_messages (id, name, email, body, created_at)
	          VALUES ($1, $2, $3, $4, $5)`

	if _, err := r.db.ExecContext(ctx, query, m.ID, m.Name, m.Email, m.Body, m.CreatedAt); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

func (r *PostgresRepo) List(ctx context.Context, offset, limit int) (ListResponse, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&total); err != nil {
		return ListResponse{}, fmt.Errorf("error performing sql request: %w", err)
	}

	query := `SELECT id, name, email, body, created_at
	          FROM contact_messages
	          ORDER BY created_at DESC
	          OFFSET $1 LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return ListResponse{}, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	messages := make([]*Message, 0)
	for rows.Next() {
		m := &Message{}
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Body, &m.CreatedAt); err != nil {
			return ListResponse{}, fmt.Errorf("error scanning row: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return ListResponse{}, err
	}

	return ListResponse{Messages: messages, Total: total, Offset: offset, Limit: limit}, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
