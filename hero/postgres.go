package hero

import (
	"context"
	"database/sql"
	"errors"
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

func (r *PostgresRepo) Get(ctx context.Context) (*Hero, error) {
	query := `SELECT heading, COALESCE(sub_heading, ''), COALESCE(intro, ''), updated_at
	          FROM hero WHERE id = 1`

	h := &Hero{}
	err := r.db.QueryRowContext(ctx, query).Scan(&h.Heading, &h.SubHeading, &h.Intro, &h.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	return h, nil
}

func (r *PostgresRepo) Upsert(ctx context.Context, h *Hero) error {
	query := `INSERT INTO hero (id, heading, sub_heading, intro, updated_at)
	          VALUES (1, $1, NULLIF($2, ''), NULLIF($3, ''), $4)
	          ON CONFLICT (id) DO UPDATE
	          SET heading = EXCLUDED.heading,
	              sub_heading = EXCLUDED.sub_heading,
	              intro = EXCLUDED.intro,
	              updated_at = EXCLUDED.updated_at`

	if _, err := r.db.ExecContext(ctx, query, h.Heading, h.SubHeading, h.Intro, h.UpdatedAt); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}
