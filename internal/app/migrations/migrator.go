package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yigit/feedbackd/internal/pkg/logger"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Migrator applies the embedded schema files once each, tracked in schema_migrations
type Migrator struct {
	db    *pgxpool.Pool
	files fs.FS
}

// NewMigrator creates a new migrator over the embedded schema
func NewMigrator(db *pgxpool.Pool) *Migrator {
	return &Migrator{
		db:    db,
		files: schemaFS,
	}
}

func (m *Migrator) ensureMigrationTableExists(ctx context.Context) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := m.db.Exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

func (m *Migrator) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1);`
	if err := m.db.QueryRow(ctx, query, version).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return exists, nil
}

// Versions lists the embedded schema versions in apply order ("001_init.sql" => "001")
func (m *Migrator) Versions() ([]string, error) {
	names, err := m.sqlFiles()
	if err != nil {
		return nil, err
	}
	versions := make([]string, 0, len(names))
	for _, name := range names {
		versions = append(versions, versionOf(name))
	}
	return versions, nil
}

// Up applies every embedded schema file that has not been recorded yet
func (m *Migrator) Up(ctx context.Context) error {
	if err := m.ensureMigrationTableExists(ctx); err != nil {
		return err
	}

	names, err := m.sqlFiles()
	if err != nil {
		return err
	}

	for _, name := range names {
		if err := m.apply(ctx, name); err != nil {
			return err
		}
	}
	return nil
}

func (m *Migrator) apply(ctx context.Context, name string) error {
	version := versionOf(name)
	log := logger.Component("migrations").With().Str("file", name).Logger()

	applied, err := m.isMigrationApplied(ctx, version)
	if err != nil {
		return err
	}
	if applied {
		log.Debug().Msg("Schema already applied, skipping")
		return nil
	}

	content, err := fs.ReadFile(m.files, path.Join("schema", name))
	if err != nil {
		return fmt.Errorf("failed to read schema file %s: %w", name, err)
	}

	err = pgx.BeginFunc(ctx, m.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("error occurred during schema execution: %w", err)
		}
		if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, version); err != nil {
			return fmt.Errorf("failed to record schema version: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("schema %s: %w", name, err)
	}

	log.Info().Str("version", version).Msg("Schema applied")
	return nil
}

func (m *Migrator) sqlFiles() ([]string, error) {
	entries, err := fs.ReadDir(m.files, "schema")
	if err != nil {
		return nil, fmt.Errorf("failed to read schema directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func versionOf(name string) string {
	return strings.SplitN(name, "_", 2)[0]
}
