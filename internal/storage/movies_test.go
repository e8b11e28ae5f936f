package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/the-flavor-must-flow/internal/common"
	"github.com/Veraticus/the-flavor-must-flow/internal/model"
)

func TestSaveAndGetMovie(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	movie := createTestMovie("tt0133093", "The Matrix", 1999)
	movie.Plot = "A hacker learns the truth."
	movie.AltPosters = []string{"https://img/a.jpg"}
	require.NoError(t, store.SaveMovie(ctx, movie))

	got, err := store.GetMovie(ctx, "tt0133093")
	require.NoError(t, err)

	assert.Equal(t, movie.Title, got.Title)
	assert.Equal(t, movie.Year, got.Year)
	assert.Equal(t, movie.Genres, got.Genres)
	assert.Equal(t, movie.Keywords, got.Keywords)
	assert.Equal(t, []string{"Cyberpunk", "Artificial Intelligence"}, got.Flavors, "flavors keep ranked order")
	assert.Equal(t, movie.AltPosters, got.AltPosters)
	assert.Equal(t, movie.Plot, got.Plot)
	assert.WithinDuration(t, movie.FetchedAt, got.FetchedAt, time.Second)
	assert.Nil(t, got.ClassifiedAt)
}

func TestSaveMovieUpserts(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	movie := createTestMovie("tt0133093", "The Matrix", 1999)
	require.NoError(t, store.SaveMovie(ctx, movie))

	movie.Title = "The Matrix (1999)"
	movie.Flavors = nil
	require.NoError(t, store.SaveMovie(ctx, movie))

	got, err := store.GetMovie(ctx, "tt0133093")
	require.NoError(t, err)
	assert.Equal(t, "The Matrix (1999)", got.Title)
	assert.Equal(t, []string{}, got.Flavors)

	n, err := store.CountMovies(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSavePlaceholderMovie(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	placeholder := model.PlaceholderMovie("tt9999999")
	require.NoError(t, store.SaveMovie(ctx, &placeholder))
	assert.False(t, placeholder.FetchedAt.IsZero(), "fetch time defaults to now")

	got, err := store.GetMovie(ctx, "tt9999999")
	require.NoError(t, err)
	assert.True(t, got.IsPlaceholder())
}

func TestGetMovieNotFound(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	_, err := store.GetMovie(context.Background(), "tt0000001")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetMoviesPreservesRequestOrder(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, store.SaveMovie(ctx, createTestMovie("tt0000001", "One", 2001)))
	require.NoError(t, store.SaveMovie(ctx, createTestMovie("tt0000002", "Two", 2002)))
	require.NoError(t, store.SaveMovie(ctx, createTestMovie("tt0000003", "Three", 2003)))

	got, err := store.GetMovies(ctx, []string{"tt0000003", "tt0000404", "tt0000001", "tt0000003"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Three", got[0].Title)
	assert.Equal(t, "One", got[1].Title)

	empty, err := store.GetMovies(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestListAndDeleteMovies(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, store.SaveMovie(ctx, createTestMovie("tt0000002", "Two", 2002)))
	require.NoError(t, store.SaveMovie(ctx, createTestMovie("tt0000001", "One", 2001)))

	all, err := store.ListMovies(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "tt0000001", all[0].IMDbID)

	require.NoError(t, store.DeleteMovie(ctx, "tt0000001"))
	assert.ErrorIs(t, store.DeleteMovie(ctx, "tt0000001"), common.ErrNotFound)

	all, err = store.ListMovies(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUpdateMovieFlavors(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, store.SaveMovie(ctx, createTestMovie("tt0133093", "The Matrix", 1999)))

	now := time.Now()
	require.NoError(t, store.UpdateMovieFlavors(ctx, "tt0133093", []string{"Heist", "Caper"}, now))

	got, err := store.GetMovie(ctx, "tt0133093")
	require.NoError(t, err)
	assert.Equal(t, []string{"Heist", "Caper"}, got.Flavors)
	require.NotNil(t, got.ClassifiedAt)
	assert.WithinDuration(t, now, *got.ClassifiedAt, time.Second)

	err = store.UpdateMovieFlavors(ctx, "tt0000404", nil, now)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestIsFresh(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	recent := createTestMovie("tt0000001", "Recent", 2001)
	recent.FetchedAt = time.Now().Add(-10 * time.Minute)
	stale := createTestMovie("tt0000002", "Stale", 2002)
	stale.FetchedAt = time.Now().Add(-2 * time.Hour)
	require.NoError(t, store.SaveMovie(ctx, recent))
	require.NoError(t, store.SaveMovie(ctx, stale))

	tests := []struct {
		name     string
		id       string
		ttl      time.Duration
		expected bool
	}{
		{"recent within ttl", "tt0000001", time.Hour, true},
		{"stale past ttl", "tt0000002", time.Hour, false},
		{"missing", "tt0000404", time.Hour, false},
		{"zero ttl", "tt0000001", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fresh, err := store.IsFresh(ctx, tt.id, tt.ttl)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, fresh)
		})
	}
}

func TestSaveMovieValidation(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	err := store.SaveMovie(context.Background(), &model.Movie{IMDbID: "nope", Title: "x"})
	assert.ErrorIs(t, err, ErrInvalidMovie)
	assert.ErrorIs(t, store.SaveMovie(context.Background(), nil), ErrNilParameter)
}
