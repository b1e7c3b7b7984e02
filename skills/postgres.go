package skills

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

func (r *PostgresRepo) List(ctx context.Context) ([]*Skill, error) {
	query := `SELECT id, name, COALESCE(category, ''), level, sort_order
	          FROM skills
	          ORDER BY category, sort_order, name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	list := make([]*Skill, 0)
	for rows.Next() {
		s := &Skill{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Level, &s.SortOrder); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *PostgresRepo) Create(ctx context.Context, s *Skill) error {
	query := `INSERT INTO skills (id, name, category, level, sort_order)
	          VALUES ($1, $2, NULLIF($3, ''), $4, $5)`

	if _, err := r.db.ExecContext(ctx, query, s.ID, s.Name, s.Category, s.Level, s.SortOrder); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

func (r *PostgresRepo) Update(ctx context.Context, s *Skill) error {
	query := `UPDATE skills SET name = $2, category = NULLIF($3, ''), level = $4, sort_order = $5 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, s.ID, s.Name, s.Category, s.Level, s.SortOrder)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
