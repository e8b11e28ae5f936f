package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/Veraticus/the-flavor-must-flow/internal/common"
)

// ExpectedSchemaVersion is the latest schema version that the application expects.
// If the database cannot be migrated to this version, it's a fatal error.
const ExpectedSchemaVersion = 3

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial movie library schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS movies (
					imdb_id TEXT PRIMARY KEY,
					tmdb_id INTEGER NOT NULL DEFAULT 0,
					title TEXT NOT NULL,
					year INTEGER NOT NULL DEFAULT 0,
					runtime INTEGER NOT NULL DEFAULT 0,
					genres TEXT NOT NULL DEFAULT '[]',
					keywords TEXT NOT NULL DEFAULT '[]',
					flavors TEXT NOT NULL DEFAULT '[]',
					actors TEXT NOT NULL DEFAULT '[]',
					crew TEXT NOT NULL DEFAULT '[]',
					plot TEXT NOT NULL DEFAULT '',
					tagline TEXT NOT NULL DEFAULT '',
					poster_url TEXT NOT NULL DEFAULT '',
					backdrop_url TEXT NOT NULL DEFAULT '',
					fetched_at DATETIME NOT NULL,
					classified_at DATETIME
				)`,
				`CREATE INDEX idx_movies_fetched_at ON movies(fetched_at)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Add alternate posters",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`ALTER TABLE movies ADD COLUMN alt_posters TEXT NOT NULL DEFAULT '[]'`)
			return err
		},
	},
	{
		Version:     3,
		Description: "Index movies by year",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`CREATE INDEX IF NOT EXISTS idx_movies_year ON movies(year)`)
			return err
		},
	},
}

// SchemaVersion returns the database's current schema version.
func (s *SQLiteStorage) SchemaVersion(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return version, nil
}

// Migrate applies all pending database migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	currentVersion, err := s.SchemaVersion(ctx)
	if err != nil {
		return err
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	finalVersion, err := s.SchemaVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}
	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("%w: database schema version mismatch: expected %d, got %d",
			common.ErrDatabaseCorrupted, ExpectedSchemaVersion, finalVersion)
	}

	return nil
}
