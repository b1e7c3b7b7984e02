package blog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	apperrors "github.com/nhdinhdev03/nhdinh-profile-sub001/internal/errors"
)

const pgUniqueViolation = "23505"

type PostgresRepo struct {
	db *sql.DB
}

var _ Repo = (*PostgresRepo)(nil)

func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

const postColumns = `id, slug, title, COALESCE(summary, ''), COALESCE(content, ''), published, created_at, updated_at`

func (r *PostgresRepo) ListPosts(ctx context.Context, includeDrafts bool, offset, limit int) (ListResponse, error) {
	var total int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM blog_posts WHERE published OR $1`, includeDrafts).Scan(&total)
	if err != nil {
		return ListResponse{}, fmt.Errorf("error performing sql request: %w", err)
	}

	query := `SELECT ` + postColumns + `
	          FROM blog_posts
	          WHERE published OR $1
	          ORDER BY created_at DESC
	          OFFSET $2 LIMIT $3`

	rows, err := r.db.QueryContext(ctx, query, includeDrafts, offset, limit)
	if err != nil {
		return ListResponse{}, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	posts := make([]*Post, 0)
	for rows.Next() {
		p := &Post{}
		if err := scanPost(rows, p); err != nil {
			return ListResponse{}, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return ListResponse{}, err
	}

	for _, p := range posts {
		if p.Tags, err = r.tagsFor(ctx, p.ID); err != nil {
			return ListResponse{}, err
		}
	}

	return ListResponse{Posts: posts, Total: total, Offset: offset, Limit: limit}, nil
}

func (r *PostgresRepo) GetBySlug(ctx context.Context, slug string, includeDrafts bool) (*Post, error) {
	query := `SELECT ` + postColumns + ` FROM blog_posts WHERE slug = $1 AND (published OR $2)`
	return r.getOne(ctx, query, slug, includeDrafts)
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (*Post, error) {
	query := `SELECT ` + postColumns + ` FROM blog_posts WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *PostgresRepo) CreatePost(ctx context.Context, p *Post) error {
	query := `INSERT INTO blog_posts (id, slug, title, summary, content, published, created_at, updated_at)
	          VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Slug, p.Title, p.Summary, p.Content, p.Published, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.ErrDuplicateIdentifier
		}
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

func (r *PostgresRepo) UpdatePost(ctx context.Context, p *Post) error {
	query := `UPDATE blog_posts
	          SET slug = $2, title = $3, summary = NULLIF($4, ''), content = NULLIF($5, ''),
	              published = $6, updated_at = $7
	          WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, p.ID, p.Slug, p.Title, p.Summary, p.Content, p.Published, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) DeletePost(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) ListTags(ctx context.Context) ([]Tag, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM blog_tags ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	tags := make([]Tag, 0)
	for rows.Next() {
		var t Tag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

func (r *PostgresRepo) CreateTag(ctx context.Context, t *Tag) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO blog_tags (id, name) VALUES ($1, $2)`, t.ID, t.Name)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.ErrDuplicateIdentifier
		}
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

func (r *PostgresRepo) DeleteTag(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM blog_tags WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) ReplacePostTags(ctx context.Context, postID string, tagIDs []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM blog_post_tags WHERE post_id = $1`, postID); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	for i, tagID := range tagIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO blog_post_tags (post_id, tag_id, sort_order) VALUES ($1, $2, $3)`,
			postID, tagID, i)
		if err != nil {
			return fmt.Errorf("error performing sql request: %w", err)
		}
	}

	return tx.Commit()
}

func (r *PostgresRepo) getOne(ctx context.Context, query string, args ...any) (*Post, error) {
	p := &Post{}
	if err := scanPost(r.db.QueryRowContext(ctx, query, args...), p); err != nil {
		return nil, err
	}

	var err error
	if p.Tags, err = r.tagsFor(ctx, p.ID); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostgresRepo) tagsFor(ctx context.Context, postID string) ([]Tag, error) {
	query := `SELECT t.id, t.name
	          FROM blog_post_tags pt
	          JOIN blog_tags t ON t.id = pt.tag_id
	          WHERE pt.post_id = $1
	          ORDER BY pt.sort_order`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var tags []Tag
	for rows.Next() {
		var t Tag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPost(row scanner, p *Post) error {
	err := row.Scan(&p.ID, &p.Slug, &p.Title, &p.Summary, &p.Content, &p.Published, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("error scanning row: %w", err)
	}
	return nil
}
