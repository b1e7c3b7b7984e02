// Package database opens the PostgreSQL connection and vends the
// production repository set, applying embedded goose migrations on
// startup.
package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/nhdinhdev03/nhdinh-profile-sub001/blog"
	"github.com/nhdinhdev03/nhdinh-profile-sub001/contact"
	"github.com/nhdinhdev03/nhdinh-profile-sub001/hero"
	"github.com/nhdinhdev03/nhdinh-profile-sub001/identity"
	"github.com/nhdinhdev03/nhdinh-profile-sub001/migrations"
	"github.com/nhdinhdev03/nhdinh-profile-sub001/projects"
	"github.com/nhdinhdev03/nhdinh-profile-sub001/skills"
)

// RepositoryManager bundles the PostgreSQL-backed repositories behind one
// connection.
type RepositoryManager struct {
	db *sql.DB

	identities identity.Repo
	hero       hero.Repo
	projects   projects.Repo
	skills     skills.Repo
	blog       blog.Repo
	contact    contact.Repo
}

func (m *RepositoryManager) Conn() *sql.DB             { return m.db }
func (m *RepositoryManager) Identities() identity.Repo { return m.identities }
func (m *RepositoryManager) Hero() hero.Repo           { return m.hero }
func (m *RepositoryManager) Projects() projects.Repo   { return m.projects }
func (m *RepositoryManager) Skills() skills.Repo       { return m.skills }
func (m *RepositoryManager) Blog() blog.Repo           { return m.blog }
func (m *RepositoryManager) Contact() contact.Repo     { return m.contact }

func (m *RepositoryManager) Close() error {
	return m.db.Close()
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the database.
func (m *RepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("goose dialect error: %w", err)
	}
	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}
	return nil
}

// NewRepositoryManager opens the database and applies migrations.
func NewRepositoryManager(ctx context.Context, dsn string) (*RepositoryManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &RepositoryManager{
		db:         db,
		identities: identity.NewPostgresRepo(db),
		hero:       hero.NewPostgresRepo(db),
		projects:   projects.NewPostgresRepo(db),
		skills:     skills.NewPostgresRepo(db),
		blog:       blog.NewPostgresRepo(db),
		contact:    contact.NewPostgresRepo(db),
	}

	if err := m.RunMigrations(ctx); err != nil {
		return nil, err
	}

	return m, nil
}
