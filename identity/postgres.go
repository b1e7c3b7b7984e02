package identity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	apperrors "github.com/nhdinhdev03/nhdinh-profile-sub001/internal/errors"
)

const pgUniqueViolation = "23505"

// PostgresRepo is the production identity store backed by the identities
// table.
type PostgresRepo struct {
	db *sql.DB
}

var _ Repo = (*PostgresRepo)(nil)

func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) Create(ctx context.Context, id *Identity) error {
	query := `INSERT INTO identities (id, phone_number, username, credential_hash, full_name, active, created_at)
	          VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		id.ID, id.PhoneNumber, id.Username, id.CredentialHash, id.FullName, id.Active, id.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.ErrDuplicateIdentifier
		}
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

func (r *PostgresRepo) FindByIdentifier(ctx context.Context, identifier string) (*Identity, error) {
	query := `SELECT id, phone_number, COALESCE(username, ''), credential_hash, COALESCE(full_name, ''), active, created_at
	          FROM identities
	          WHERE phone_number = $1 OR username = $1`

	return r.scanOne(r.db.QueryRowContext(ctx, query, identifier))
}

func (r *PostgresRepo) ExistsByIdentifier(ctx context.Context, identifier string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM identities WHERE phone_number = $1 OR username = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, identifier).Scan(&exists); err != nil {
		return false, fmt.Errorf("error performing sql request: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (*Identity, error) {
	query := `SELECT id, phone_number, COALESCE(username, ''), credential_hash, COALESCE(full_name, ''), active, created_at
	          FROM identities
	          WHERE id = $1`

	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepo) UpdateCredentialHash(ctx context.Context, id string, hash string) error {
	return r.exec(ctx, `UPDATE identities SET credential_hash = $2 WHERE id = $1`, id, hash)
}

func (r *PostgresRepo) SetActive(ctx context.Context, id string, active bool) error {
	return r.exec(ctx, `UPDATE identities SET active = $2 WHERE id = $1`, id, active)
}

func (r *PostgresRepo) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) scanOne(row *sql.Row) (*Identity, error) {
	id := &Identity{}
	err := row.Scan(&id.ID, &id.PhoneNumber, &id.Username, &id.CredentialHash, &id.FullName, &id.Active, &id.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	return id, nil
}
