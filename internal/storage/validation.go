package storage

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Veraticus/the-flavor-must-flow/internal/model"
)

// Validation errors.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrNilParameter = errors.New("parameter cannot be nil")
	ErrInvalidMovie = errors.New("invalid movie")
	ErrInvalidID    = errors.New("invalid IMDb id")
)

var imdbIDPattern = regexp.MustCompile(`^tt\d{7,}$`)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// ValidateIMDbID checks the tt-prefixed IMDb id form.
func ValidateIMDbID(id string) error {
	if err := validateString(id, "imdbID"); err != nil {
		return err
	}
	if !imdbIDPattern.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}

// validateIDs validates a slice of IMDb ids.
func validateIDs(ids []string) error {
	if ids == nil {
		return fmt.Errorf("%w: imdbIDs", ErrNilParameter)
	}
	for i, id := range ids {
		if err := ValidateIMDbID(id); err != nil {
			return fmt.Errorf("id at index %d: %w", i, err)
		}
	}
	return nil
}

// validateMovie validates a movie record.
func validateMovie(movie *model.Movie) error {
	if movie == nil {
		return fmt.Errorf("%w: movie", ErrNilParameter)
	}
	if err := ValidateIMDbID(movie.IMDbID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMovie, err)
	}
	if strings.TrimSpace(movie.Title) == "" {
		return fmt.Errorf("%w: missing title", ErrInvalidMovie)
	}
	if movie.Year < 0 {
		return fmt.Errorf("%w: negative year", ErrInvalidMovie)
	}
	if movie.Runtime < 0 {
		return fmt.Errorf("%w: negative runtime", ErrInvalidMovie)
	}
	return nil
}
