// Package engine imports movies into the library and keeps their flavors current.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Veraticus/the-flavor-must-flow/internal/common"
	"github.com/Veraticus/the-flavor-must-flow/internal/model"
	"github.com/Veraticus/the-flavor-must-flow/internal/service"
	"github.com/Veraticus/the-flavor-must-flow/internal/storage"
)

// Config holds configuration options for the importer.
type Config struct {
	CacheTTL    time.Duration
	Concurrency int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		CacheTTL:    time.Hour,
		Concurrency: 4,
	}
}

// Importer fetches, classifies and stores movies.
type Importer struct {
	store      service.MovieStore
	provider   service.MetadataProvider
	classifier service.Classifier
	progress   Progress
	now        func() time.Time
	config     Config
}

// New creates an importer with the default configuration.
func New(store service.MovieStore, provider service.MetadataProvider, classifier service.Classifier) *Importer {
	return NewWithConfig(store, provider, classifier, DefaultConfig())
}

// NewWithConfig creates an importer with custom configuration.
func NewWithConfig(store service.MovieStore, provider service.MetadataProvider, classifier service.Classifier, config Config) *Importer {
	if config.Concurrency < 1 {
		config.Concurrency = 1
	}
	return &Importer{
		store:      store,
		provider:   provider,
		classifier: classifier,
		progress:   NopProgress{},
		now:        time.Now,
		config:     config,
	}
}

// SetProgress sets the progress reporter. A nil reporter disables reporting.
func (i *Importer) SetProgress(p Progress) {
	if p == nil {
		p = NopProgress{}
	}
	i.progress = p
}

// Status is the outcome of importing one id.
type Status string

// Import statuses.
const (
	StatusCached      Status = "cached"
	StatusFetched     Status = "fetched"
	StatusPlaceholder Status = "placeholder"
	StatusFailed      Status = "failed"
)

// Outcome records what happened to one requested id.
type Outcome struct {
	Err    error
	Movie  *model.Movie
	IMDbID string
	Status Status
}

// ImportResult holds one outcome per distinct requested id, in request order.
type ImportResult struct {
	Outcomes []Outcome
}

// Count returns how many outcomes have status s.
func (r *ImportResult) Count(s Status) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == s {
			n++
		}
	}
	return n
}

// Err joins the per-id failures, or returns nil when every id succeeded.
func (r *ImportResult) Err() error {
	var errs []error
	for _, o := range r.Outcomes {
		if o.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", o.IMDbID, o.Err))
		}
	}
	return errors.Join(errs...)
}

// Movies returns the successfully imported movies in request order.
func (r *ImportResult) Movies() []model.Movie {
	out := make([]model.Movie, 0, len(r.Outcomes))
	for _, o := range r.Outcomes {
		if o.Movie != nil {
			out = append(out, *o.Movie)
		}
	}
	return out
}

// Import loads each id into the library. Fresh cached records are reused;
// others are fetched, classified and saved. Ids with no upstream match are
// stored as placeholders. Per-id failures are recorded in the result; only
// context cancellation aborts the import.
func (i *Importer) Import(ctx context.Context, ids []string) (*ImportResult, error) {
	ids = dedupeIDs(ids)
	result := &ImportResult{Outcomes: make([]Outcome, len(ids))}

	slog.Info("Starting import", "ids", len(ids), "concurrency", i.config.Concurrency)
	i.progress.Start("Importing", len(ids))
	defer i.progress.Finish()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(i.config.Concurrency)

	for idx, id := range ids {
		g.Go(func() error {
			outcome := i.importOne(gctx, id)
			if gctx.Err() != nil {
				return gctx.Err()
			}
			result.Outcomes[idx] = outcome
			i.progress.Advance(id, outcome.Err)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("import canceled: %w", err)
	}

	slog.Info("Import complete",
		"cached", result.Count(StatusCached),
		"fetched", result.Count(StatusFetched),
		"placeholder", result.Count(StatusPlaceholder),
		"failed", result.Count(StatusFailed))
	return result, nil
}

func (i *Importer) importOne(ctx context.Context, id string) Outcome {
	failed := func(err error) Outcome {
		slog.Warn("Failed to import movie", "imdb_id", id, "error", err)
		return Outcome{IMDbID: id, Status: StatusFailed, Err: err}
	}

	if err := storage.ValidateIMDbID(id); err != nil {
		return failed(err)
	}

	fresh, err := i.store.IsFresh(ctx, id, i.config.CacheTTL)
	if err != nil {
		return failed(err)
	}
	if fresh {
		movie, err := i.store.GetMovie(ctx, id)
		if err == nil {
			return Outcome{IMDbID: id, Status: StatusCached, Movie: movie}
		}
		if !errors.Is(err, common.ErrNotFound) {
			return failed(err)
		}
	}

	status := StatusFetched
	movie, err := i.provider.MovieByIMDbID(ctx, id)
	switch {
	case errors.Is(err, common.ErrNotFound):
		placeholder := model.PlaceholderMovie(id)
		placeholder.FetchedAt = i.now()
		movie, status = &placeholder, StatusPlaceholder
	case err != nil:
		return failed(err)
	}

	i.classify(movie)
	if err := i.store.SaveMovie(ctx, movie); err != nil {
		return failed(err)
	}
	slog.Debug("Imported movie", "imdb_id", id, "status", status, "flavors", len(movie.Flavors))
	return Outcome{IMDbID: id, Status: status, Movie: movie}
}

func (i *Importer) classify(movie *model.Movie) {
	movie.Flavors = i.classifier.Classify(movie.Genres, movie.Keywords)
	if movie.Flavors == nil {
		movie.Flavors = []string{}
	}
	at := i.now()
	movie.ClassifiedAt = &at
}

// dedupeIDs trims ids and drops blanks and repeats, preserving first-seen order.
func dedupeIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
