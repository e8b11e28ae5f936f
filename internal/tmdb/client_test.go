package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/the-flavor-must-flow/internal/common"
	"github.com/Veraticus/the-flavor-must-flow/internal/config"
	"github.com/Veraticus/the-flavor-must-flow/internal/service"
)

const matrixDetails = `{
	"id": 603,
	"title": "The Matrix",
	"release_date": "1999-03-30",
	"runtime": 136,
	"overview": "Set in the 22nd century...",
	"tagline": "Welcome to the Real World.",
	"poster_path": "/poster.jpg",
	"backdrop_path": "",
	"genres": [{"name": "Action"}, {"name": "Science Fiction"}],
	"keywords": {"keywords": [
		{"name": " Artificial Intelligence "},
		{"name": "hacker"},
		{"name": "artificial intelligence"},
		{"name": ""}
	]},
	"credits": {
		"cast": [
			{"name": "Keanu Reeves"}, {"name": "Laurence Fishburne"}, {"name": "Carrie-Anne Moss"},
			{"name": "Hugo Weaving"}, {"name": "Gloria Foster"}, {"name": "Joe Pantoliano"},
			{"name": "Marcus Chong"}, {"name": "Julian Arahanga"}, {"name": "Matt Doran"},
			{"name": "Belinda McClory"}, {"name": "Anthony Ray Parker"}
		],
		"crew": [
			{"name": "Lana Wachowski", "job": "Director"},
			{"name": "Lana Wachowski", "job": "Writer"},
			{"name": "Lilly Wachowski", "job": "Director"},
			{"name": "Bill Pope", "job": "Director of Photography"}
		]
	}
}`

func fastRetry() Option {
	return WithRetryOptions(service.RetryOptions{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2,
	})
}

func newTestClient(t *testing.T, handler http.Handler, key string) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := NewClient(config.TMDBConfig{
		APIKey:       key,
		BaseURL:      server.URL,
		ImageBaseURL: "https://img.test/w500/",
		RateLimit:    1000,
	}, fastRetry(), WithClock(func() time.Time {
		return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	}))
	require.NoError(t, err)
	return c
}

func TestMovieByIMDbID(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/find/tt0133093", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "imdb_id", r.URL.Query().Get("external_source"))
		assert.Equal(t, "secret", r.URL.Query().Get("api_key"))
		_, _ = w.Write([]byte(`{"movie_results": [{"id": 603}]}`))
	})
	mux.HandleFunc("/movie/603", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "credits,keywords", r.URL.Query().Get("append_to_response"))
		_, _ = w.Write([]byte(matrixDetails))
	})

	c := newTestClient(t, mux, "secret")
	m, err := c.MovieByIMDbID(context.Background(), "tt0133093")
	require.NoError(t, err)

	assert.Equal(t, "tt0133093", m.IMDbID)
	assert.Equal(t, 603, m.TMDbID)
	assert.Equal(t, "The Matrix", m.Title)
	assert.Equal(t, 1999, m.Year)
	assert.Equal(t, 136, m.Runtime)
	assert.Equal(t, []string{"Action", "Science Fiction"}, m.Genres)
	assert.Equal(t, []string{"artificial intelligence", "hacker"}, m.Keywords)
	assert.Len(t, m.Actors, 10)
	assert.Equal(t, "Keanu Reeves", m.Actors[0])
	assert.Equal(t, []string{"Lana Wachowski", "Lilly Wachowski"}, m.Crew)
	assert.Equal(t, "https://img.test/w500/poster.jpg", m.PosterURL)
	assert.Empty(t, m.BackdropURL)
	assert.Equal(t, "Welcome to the Real World.", m.Tagline)
	assert.Empty(t, m.Flavors)
	assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), m.FetchedAt)
}

func TestMovieByIMDbIDNoMatch(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"movie_results": []}`))
	}), "secret")

	_, err := c.MovieByIMDbID(context.Background(), "tt0000404")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestBearerTokenAuth(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer eyJtoken", r.Header.Get("Authorization"))
		assert.Empty(t, r.URL.Query().Get("api_key"))
		_, _ = w.Write([]byte(`{"movie_results": []}`))
	}), "eyJtoken")

	_, err := c.MovieByIMDbID(context.Background(), "tt0000404")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestRetryOnServerErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		failures int32
		wantErr  error
		calls    int32
	}{
		{"recovers after 503", http.StatusServiceUnavailable, 2, nil, 3},
		{"recovers after 429", http.StatusTooManyRequests, 1, nil, 2},
		{"gives up after max attempts", http.StatusBadGateway, 5, common.ErrMaxRetries, 3},
		{"401 is not retried", http.StatusUnauthorized, 5, common.ErrProviderRejected, 1},
		{"404 is not retried", http.StatusNotFound, 5, common.ErrNotFound, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				if calls.Add(1) <= tt.failures {
					w.WriteHeader(tt.status)
					_, _ = w.Write([]byte(`{"status_code": 7, "status_message": "nope"}`))
					return
				}
				_, _ = w.Write([]byte(`{"movie_results": []}`))
			}), "secret")

			_, err := c.MovieByIMDbID(context.Background(), "tt0133093")
			if tt.wantErr == nil {
				assert.ErrorIs(t, err, common.ErrNotFound, "recovered request reaches the empty find result")
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Equal(t, tt.calls, calls.Load())
		})
	}
}

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient(config.TMDBConfig{})
	assert.ErrorIs(t, err, common.ErrMissingConfig)
}

func TestCanceledContext(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}), "secret")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.MovieByIMDbID(ctx, "tt0133093")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReleaseYear(t *testing.T) {
	assert.Equal(t, 1999, releaseYear("1999-03-30"))
	assert.Equal(t, 0, releaseYear(""))
	assert.Equal(t, 0, releaseYear("TBA"))
}
