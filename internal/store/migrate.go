package store

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const createMigrationsTable = `
    CREATE TABLE IF NOT EXISTS schema_migrations (
        version    TEXT PRIMARY KEY,
        applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
    )
`

// Migrator is the subset of a pgx connection or pool needed to apply migrations.
type Migrator interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Migrate applies the pending migrations on the store's pool.
func (s *Store) Migrate(ctx context.Context, migrations fs.FS) error {
	if s == nil || s.pool == nil {
		return fmt.Errorf("store not initialized")
	}
	applied, err := Migrate(ctx, s.pool, migrations, s.logger)
	if err != nil {
		return err
	}
	s.logger.Info("schema up to date", "applied", applied)
	return nil
}

// Migrate runs every migrations/*.up.sql file in lexical order that is not yet
// recorded in schema_migrations. Each file runs in its own transaction together
// with its bookkeeping row. It returns the versions applied by this call.
func Migrate(ctx context.Context, db Migrator, migrations fs.FS, logger *slog.Logger) ([]string, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if _, err := db.Exec(ctx, createMigrationsTable); err != nil {
		return nil, fmt.Errorf("create schema_migrations: %w", err)
	}

	files, err := fs.Glob(migrations, "migrations/*.up.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	applied := make([]string, 0, len(files))
	for _, file := range files {
		version := strings.TrimSuffix(path.Base(file), ".up.sql")
		payload, err := fs.ReadFile(migrations, file)
		if err != nil {
			return applied, fmt.Errorf("read migration %s: %w", file, err)
		}

		ran := false
		err = pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
			tag, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1) ON CONFLICT DO NOTHING`, version)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return nil
			}
			if _, err := tx.Exec(ctx, string(payload)); err != nil {
				return err
			}
			ran = true
			return nil
		})
		if err != nil {
			return applied, fmt.Errorf("apply migration %s: %w", version, err)
		}
		if ran {
			logger.Info("applied migration", "version", version)
			applied = append(applied, version)
		}
	}
	return applied, nil
}
