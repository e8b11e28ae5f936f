package engine

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Change records a movie whose flavors changed on reclassification.
type Change struct {
	IMDbID string
	Title  string
	Before []string
	After  []string
}

// ReclassifyResult summarizes a reclassification pass.
type ReclassifyResult struct {
	Changes []Change
	Total   int
}

// Reclassify re-runs the classifier over every stored movie and updates the
// flavors of movies whose ordered flavor list changed.
func (i *Importer) Reclassify(ctx context.Context) (*ReclassifyResult, error) {
	movies, err := i.store.ListMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}

	i.progress.Start("Reclassifying", len(movies))
	defer i.progress.Finish()

	var mu sync.Mutex
	result := &ReclassifyResult{Total: len(movies)}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(i.config.Concurrency)

	for _, m := range movies {
		g.Go(func() error {
			after := i.classifier.Classify(m.Genres, m.Keywords)
			if after == nil {
				after = []string{}
			}
			if slices.Equal(after, m.Flavors) {
				i.progress.Advance(m.IMDbID, nil)
				return nil
			}
			if err := i.store.UpdateMovieFlavors(gctx, m.IMDbID, after, i.now()); err != nil {
				return fmt.Errorf("failed to update %s: %w", m.IMDbID, err)
			}
			i.progress.Advance(m.IMDbID, nil)

			mu.Lock()
			result.Changes = append(result.Changes, Change{
				IMDbID: m.IMDbID,
				Title:  m.Title,
				Before: m.Flavors,
				After:  after,
			})
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(result.Changes, func(a, b Change) int {
		return strings.Compare(a.IMDbID, b.IMDbID)
	})

	slog.Info("Reclassification complete", "movies", result.Total, "changed", len(result.Changes))
	return result, nil
}
