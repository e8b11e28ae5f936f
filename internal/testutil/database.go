// Package testutil provides shared test helpers: an isolated movie database
// and a fluent builder for movie fixtures.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/the-flavor-must-flow/internal/model"
	"github.com/Veraticus/the-flavor-must-flow/internal/storage"
)

// TestDB is a migrated in-memory movie library.
type TestDB struct {
	Storage *storage.SQLiteStorage
	t       *testing.T
}

// SetupTestDB creates a new in-memory test database seeded with movies.
// It automatically handles migrations and cleanup.
//
// Example:
//
//	db := testutil.SetupTestDB(t, testutil.Library()...)
func SetupTestDB(t *testing.T, movies ...model.Movie) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	for i := range movies {
		m := movies[i]
		if err := store.SaveMovie(ctx, &m); err != nil {
			_ = store.Close()
			t.Fatalf("failed to seed movie %q: %v", m.IMDbID, err)
		}
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return &TestDB{Storage: store, t: t}
}

// MustGetMovie returns the stored movie or fails the test.
func (db *TestDB) MustGetMovie(imdbID string) *model.Movie {
	db.t.Helper()
	m, err := db.Storage.GetMovie(context.Background(), imdbID)
	if err != nil {
		db.t.Fatalf("failed to get movie %q: %v", imdbID, err)
	}
	return m
}
