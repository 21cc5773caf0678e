// Package migrations embeds the schema of the users and posts services for
// both supported SQL dialects and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/pressly/goose/v3"
)

//go:embed users posts
var embedMigrations embed.FS

// Service selects the schema to migrate.
type Service string

const (
	ServiceUsers Service = "users"
	ServicePosts Service = "posts"
)

// Dialect selects the SQL flavour of the schema.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

var gooseDialects = map[Dialect]goose.Dialect{
	DialectPostgres: goose.DialectPostgres,
	DialectSQLite:   goose.DialectSQLite3,
}

// Migrate applies all pending migrations of service to db.
func Migrate(ctx context.Context, db *sql.DB, dialect Dialect, service Service) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	provider, err := newProvider(db, dialect, service)
	if err != nil {
		return err
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func newProvider(db *sql.DB, dialect Dialect, service Service) (*goose.Provider, error) {
	gooseDialect, ok := gooseDialects[dialect]
	if !ok {
		return nil, fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	fsys, err := fs.Sub(embedMigrations, path.Join(string(service), string(dialect)))
	if err != nil {
		return nil, fmt.Errorf("migration error: no migrations for %s/%s: %w", service, dialect, err)
	}

	provider, err := goose.NewProvider(gooseDialect, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("migration error creating provider: %w", err)
	}

	return provider, nil
}
