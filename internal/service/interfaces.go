// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/Veraticus/the-flavor-must-flow/internal/model"
)

// MovieStore defines the contract for the movie library cache.
type MovieStore interface {
	// Movie operations
	SaveMovie(ctx context.Context, movie *model.Movie) error
	GetMovie(ctx context.Context, imdbID string) (*model.Movie, error)
	GetMovies(ctx context.Context, imdbIDs []string) ([]model.Movie, error)
	ListMovies(ctx context.Context) ([]model.Movie, error)
	DeleteMovie(ctx context.Context, imdbID string) error
	UpdateMovieFlavors(ctx context.Context, imdbID string, flavors []string, classifiedAt time.Time) error
	IsFresh(ctx context.Context, imdbID string, ttl time.Duration) (bool, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// MetadataProvider fetches movie metadata from an upstream source.
// Implementations return common.ErrNotFound when no movie matches the id.
type MetadataProvider interface {
	MovieByIMDbID(ctx context.Context, imdbID string) (*model.Movie, error)
}

// Classifier maps raw genre and keyword lists to an ordered flavor list.
type Classifier interface {
	Classify(genres, keywords []string) []string
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
