package projects

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

func (r *PostgresRepo) List(ctx context.Context, offset, limit int) (ListResponse, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&total); err != nil {
		return ListResponse{}, fmt.Errorf("error performing sql request: %w", err)
	}

	query := `SELECT id, title, COALESCE(description, ''), COALESCE(image_url, ''),
	                 COALESCE(demo_url, ''), COALESCE(source_url, ''), sort_order, created_at, updated_at
	          FROM projects
	          ORDER BY sort_order, created_at
	          OFFSET $1 LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return ListResponse{}, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	list := make([]*Project, 0)
	for rows.Next() {
		p := &Project{}
		err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL,
			&p.DemoURL, &p.SourceURL, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return ListResponse{}, fmt.Errorf("error scanning row: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return ListResponse{}, err
	}

	for _, p := range list {
		if p.Tags, err = r.tagsFor(ctx, p.ID); err != nil {
			return ListResponse{}, err
		}
	}

	return ListResponse{Projects: list, Total: total, Offset: offset, Limit: limit}, nil
}

func (r *PostgresRepo) Get(ctx context.Context, id string) (*Project, error) {
	query := `SELECT id, title, COALESCE(description, ''), COALESCE(image_url, ''),
	                 COALESCE(demo_url, ''), COALESCE(source_url, ''), sort_order, created_at, updated_at
	          FROM projects WHERE id = $1`

	p := &Project{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL,
		&p.DemoURL, &p.SourceURL, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	if p.Tags, err = r.tagsFor(ctx, p.ID); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostgresRepo) Create(ctx context.Context, p *Project) error {
	query := `INSERT INTO projects (id, title, description, image_url, demo_url, source_url, sort_order, created_at, updated_at)
	          VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query, p.ID, p.Title, p.Description, p.ImageURL,
		p.DemoURL, p.SourceURL, p.SortOrder, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	if len(p.Tags) > 0 {
		return r.ReplaceTags(ctx, p.ID, p.Tags)
	}
	return nil
}

func (r *PostgresRepo) Update(ctx context.Context, p *Project) error {
	query := `UPDATE projects
	          SET title = $2, description = NULLIF($3, ''), image_url = NULLIF($4, ''),
	              demo_url = NULLIF($5, ''), source_url = NULLIF($6, ''), sort_order = $7, updated_at = $8
	          WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, p.ID, p.Title, p.Description, p.ImageURL,
		p.DemoURL, p.SourceURL, p.SortOrder, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ReplaceTags swaps the ordered tag mapping of a project inside one
// transaction so readers never observe a half-written list.
func (r *PostgresRepo) ReplaceTags(ctx context.Context, projectID string, tags []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM project_tags WHERE project_id = $1`, projectID); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	for i, tag := range tags {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO project_tags (project_id, tag, sort_order) VALUES ($1, $2, $3)`,
			projectID, tag, i)
		if err != nil {
			return fmt.Errorf("error performing sql request: %w", err)
		}
	}

	return tx.Commit()
}

func (r *PostgresRepo) tagsFor(ctx context.Context, projectID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT tag FROM project_tags WHERE project_id = $1 ORDER BY sort_order`, projectID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}
