package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotCreateListDelete(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, store.SaveMovie(ctx, createTestMovie("tt0133093", "The Matrix", 1999)))

	mgr, err := store.NewSnapshotManager()
	require.NoError(t, err)

	info, err := mgr.Create(ctx, "before-import", "manual")
	require.NoError(t, err)
	assert.Equal(t, "before-import", info.ID)
	assert.Equal(t, 1, info.Movies)
	assert.Equal(t, ExpectedSchemaVersion, info.SchemaVersion)
	assert.Positive(t, info.FileSize)

	_, err = mgr.Create(ctx, "before-import", "again")
	assert.ErrorIs(t, err, ErrSnapshotExists)

	list, err := mgr.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "manual", list[0].Description)

	require.NoError(t, mgr.Delete(ctx, "before-import"))
	assert.ErrorIs(t, mgr.Delete(ctx, "before-import"), ErrSnapshotNotFound)
}

func TestSnapshotRestore(t *testing.T) {
	store, _ := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveMovie(ctx, createTestMovie("tt0000001", "Kept", 2001)))
	mgr, err := store.NewSnapshotManager()
	require.NoError(t, err)
	_, err = mgr.Create(ctx, "one-movie", "")
	require.NoError(t, err)

	require.NoError(t, store.SaveMovie(ctx, createTestMovie("tt0000002", "Added later", 2002)))
	require.NoError(t, mgr.Restore(ctx, "one-movie"))

	reopened, err := NewSQLiteStorage(store.Path())
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	n, err := reopened.CountMovies(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSnapshotIDValidation(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	mgr, err := store.NewSnapshotManager()
	require.NoError(t, err)

	for _, id := range []string{"../escape", "a/b", `x'y`} {
		_, err := mgr.Create(context.Background(), id, "")
		assert.ErrorIs(t, err, ErrInvalidSnapshotID, id)
	}
	assert.ErrorIs(t, mgr.Restore(context.Background(), "missing"), ErrSnapshotNotFound)
}

func TestAutoSnapshotPrunes(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()
	mgr, err := store.NewSnapshotManager()
	require.NoError(t, err)

	for _, tag := range []string{"a1", "a2", "a3", "a4", "a5", "a6"} {
		_, err := mgr.create(ctx, tag, "", true)
		require.NoError(t, err)
	}
	_, err = mgr.Create(ctx, "manual", "")
	require.NoError(t, err)

	_, err = mgr.AutoSnapshot(ctx, "reclassify")
	require.NoError(t, err)

	list, err := mgr.List(ctx)
	require.NoError(t, err)
	auto := 0
	for _, s := range list {
		if s.IsAuto {
			auto++
		}
	}
	assert.Equal(t, maxAutoSnapshots, auto)
	assert.Len(t, list, maxAutoSnapshots+1)
}

func TestAutoSnapshotsInSameSecond(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()
	mgr, err := store.NewSnapshotManager()
	require.NoError(t, err)

	seen := make(map[string]bool)
	for range 3 {
		info, err := mgr.AutoSnapshot(ctx, "reclassify")
		require.NoError(t, err)
		assert.False(t, seen[info.ID], "duplicate id %s", info.ID)
		seen[info.ID] = true
	}

	list, err := mgr.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestRestoreLeavesSnapshotFilesClean(t *testing.T) {
	store, _ := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveMovie(ctx, createTestMovie("tt0000001", "Kept", 2001)))
	mgr, err := store.NewSnapshotManager()
	require.NoError(t, err)
	_, err = mgr.Create(ctx, "clean", "")
	require.NoError(t, err)
	require.NoError(t, mgr.Restore(ctx, "clean"))

	entries, err := os.ReadDir(filepath.Join(filepath.Dir(store.Path()), "snapshots"))
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), "-wal") || strings.HasSuffix(e.Name(), "-shm"),
			"unexpected journal file %s", e.Name())
	}
}

func TestVerifyIntegrityRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.db")
	require.NoError(t, os.WriteFile(path, []byte("not a database at all, just some bytes"), 0o600))
	assert.Error(t, verifyIntegrity(path))
}

func TestSnapshotsNeedFileDatabase(t *testing.T) {
	store, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	_, err = store.NewSnapshotManager()
	assert.Error(t, err)
}
