package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/the-flavor-must-flow/internal/common"
	"github.com/Veraticus/the-flavor-must-flow/internal/model"
)

const movieColumns = `imdb_id, tmdb_id, title, year, runtime, genres, keywords, flavors,
	actors, crew, alt_posters, plot, tagline, poster_url, backdrop_url, fetched_at, classified_at`

// SaveMovie inserts or replaces a movie record.
func (s *SQLiteStorage) SaveMovie(ctx context.Context, movie *model.Movie) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateMovie(movie); err != nil {
		return err
	}
	return s.saveMovieTx(ctx, s.db, movie)
}

func (s *SQLiteStorage) saveMovieTx(ctx context.Context, q queryable, movie *model.Movie) error {
	if movie.FetchedAt.IsZero() {
		movie.FetchedAt = time.Now()
	}

	lists, err := encodeLists(movie.Genres, movie.Keywords, movie.Flavors, movie.Actors, movie.Crew, movie.AltPosters)
	if err != nil {
		return fmt.Errorf("failed to encode movie %s: %w", movie.IMDbID, err)
	}

	var classifiedAt sql.NullTime
	if movie.ClassifiedAt != nil {
		classifiedAt = sql.NullTime{Time: *movie.ClassifiedAt, Valid: true}
	}

	_, err = q.ExecContext(ctx, `
		INSERT INTO movies (`+movieColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(imdb_id) DO UPDATE SET
			tmdb_id = excluded.tmdb_id,
			title = excluded.title,
			year = excluded.year,
			runtime = excluded.runtime,
			genres = excluded.genres,
			keywords = excluded.keywords,
			flavors = excluded.flavors,
			actors = excluded.actors,
			crew = excluded.crew,
			alt_posters = excluded.alt_posters,
			plot = excluded.plot,
			tagline = excluded.tagline,
			poster_url = excluded.poster_url,
			backdrop_url = excluded.backdrop_url,
			fetched_at = excluded.fetched_at,
			classified_at = excluded.classified_at
	`,
		movie.IMDbID, movie.TMDbID, movie.Title, movie.Year, movie.Runtime,
		lists[0], lists[1], lists[2], lists[3], lists[4], lists[5],
		movie.Plot, movie.Tagline, movie.PosterURL, movie.BackdropURL,
		movie.FetchedAt, classifiedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save movie: %w", err)
	}
	return nil
}

// GetMovie retrieves a movie by IMDb id. Missing ids return common.ErrNotFound.
func (s *SQLiteStorage) GetMovie(ctx context.Context, imdbID string) (*model.Movie, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(imdbID, "imdbID"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `SELECT `+movieColumns+` FROM movies WHERE imdb_id = ?`, imdbID)
	movie, err := scanMovie(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("movie %s: %w", imdbID, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}
	return movie, nil
}

// GetMovies retrieves the stored movies among imdbIDs in the order requested.
// Ids with no record are skipped.
func (s *SQLiteStorage) GetMovies(ctx context.Context, imdbIDs []string) ([]model.Movie, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if len(imdbIDs) == 0 {
		return []model.Movie{}, nil
	}
	if err := validateIDs(imdbIDs); err != nil {
		return nil, err
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(imdbIDs)), ",")
	args := make([]any, len(imdbIDs))
	for i, id := range imdbIDs {
		args[i] = id
	}

	byID, err := s.queryMovies(ctx, `SELECT `+movieColumns+` FROM movies WHERE imdb_id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, err
	}

	index := make(map[string]model.Movie, len(byID))
	for _, m := range byID {
		index[m.IMDbID] = m
	}
	out := make([]model.Movie, 0, len(byID))
	seen := make(map[string]struct{}, len(imdbIDs))
	for _, id := range imdbIDs {
		m, ok := index[id]
		if _, dup := seen[id]; !ok || dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, m)
	}
	return out, nil
}

// ListMovies returns every stored movie ordered by IMDb id.
func (s *SQLiteStorage) ListMovies(ctx context.Context) ([]model.Movie, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	return s.queryMovies(ctx, `SELECT `+movieColumns+` FROM movies ORDER BY imdb_id`)
}

// DeleteMovie removes a movie. Missing ids return common.ErrNotFound.
func (s *SQLiteStorage) DeleteMovie(ctx context.Context, imdbID string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(imdbID, "imdbID"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM movies WHERE imdb_id = ?`, imdbID)
	if err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}
	return requireAffected(result, imdbID)
}

// UpdateMovieFlavors replaces the stored flavor list of one movie.
func (s *SQLiteStorage) UpdateMovieFlavors(ctx context.Context, imdbID string, flavors []string, classifiedAt time.Time) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(imdbID, "imdbID"); err != nil {
		return err
	}
	if flavors == nil {
		flavors = []string{}
	}

	encoded, err := json.Marshal(flavors)
	if err != nil {
		return fmt.Errorf("failed to encode flavors: %w", err)
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE movies SET flavors = ?, classified_at = ? WHERE imdb_id = ?
	`, string(encoded), classifiedAt, imdbID)
	if err != nil {
		return fmt.Errorf("failed to update flavors: %w", err)
	}
	return requireAffected(result, imdbID)
}

// IsFresh reports whether the movie was fetched less than ttl ago.
// A missing movie or a non-positive ttl is never fresh.
func (s *SQLiteStorage) IsFresh(ctx context.Context, imdbID string, ttl time.Duration) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}
	if ttl <= 0 {
		return false, nil
	}

	var fetchedAt time.Time
	err := s.db.QueryRowContext(ctx, `SELECT fetched_at FROM movies WHERE imdb_id = ?`, imdbID).Scan(&fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check freshness: %w", err)
	}
	return time.Since(fetchedAt) < ttl, nil
}

// CountMovies returns the number of stored movies.
func (s *SQLiteStorage) CountMovies(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM movies`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}
	return n, nil
}

func (s *SQLiteStorage) queryMovies(ctx context.Context, query string, args ...any) ([]model.Movie, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}
	defer func() { _ = rows.Close() }()

	movies := []model.Movie{}
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, *movie)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate movies: %w", err)
	}
	return movies, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMovie(row scanner) (*model.Movie, error) {
	var movie model.Movie
	var genres, keywords, flavors, actors, crew, posters string
	var classifiedAt sql.NullTime
	err := row.Scan(
		&movie.IMDbID, &movie.TMDbID, &movie.Title, &movie.Year, &movie.Runtime,
		&genres, &keywords, &flavors, &actors, &crew, &posters,
		&movie.Plot, &movie.Tagline, &movie.PosterURL, &movie.BackdropURL,
		&movie.FetchedAt, &classifiedAt,
	)
	if err != nil {
		return nil, err
	}

	targets := []*[]string{&movie.Genres, &movie.Keywords, &movie.Flavors, &movie.Actors, &movie.Crew, &movie.AltPosters}
	for i, raw := range []string{genres, keywords, flavors, actors, crew, posters} {
		if err := decodeList(raw, targets[i]); err != nil {
			return nil, fmt.Errorf("%w: movie %s: %w", common.ErrDatabaseCorrupted, movie.IMDbID, err)
		}
	}
	if classifiedAt.Valid {
		t := classifiedAt.Time
		movie.ClassifiedAt = &t
	}
	return &movie, nil
}

func encodeLists(lists ...[]string) ([]string, error) {
	out := make([]string, len(lists))
	for i, l := range lists {
		if l == nil {
			l = []string{}
		}
		b, err := json.Marshal(l)
		if err != nil {
			return nil, err
		}
		out[i] = string(b)
	}
	return out, nil
}

func decodeList(raw string, dst *[]string) error {
	*dst = []string{}
	if raw == "" {
		return nil
	}
	return json.Unmarshal([]byte(raw), dst)
}

func requireAffected(result sql.Result, imdbID string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("movie %s: %w", imdbID, common.ErrNotFound)
	}
	return nil
}
