package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/Veraticus/the-flavor-must-flow/internal/model"
)

func TestValidateContext(t *testing.T) {
	tests := []struct {
		ctx     context.Context
		name    string
		wantErr bool
	}{
		{
			name:    "valid context",
			ctx:     context.Background(),
			wantErr: false,
		},
		{
			name:    "nil context",
			ctx:     nil,
			wantErr: true,
		},
		{
			name: "canceled context still valid",
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			}(),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateContext(tt.ctx)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateContext() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateIMDbID(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		id      string
	}{
		{name: "seven digits", id: "tt0133093"},
		{name: "eight digits", id: "tt10872600"},
		{name: "empty", id: "", wantErr: ErrEmptyString},
		{name: "whitespace", id: "   ", wantErr: ErrEmptyString},
		{name: "missing prefix", id: "0133093", wantErr: ErrInvalidID},
		{name: "too short", id: "tt12345", wantErr: ErrInvalidID},
		{name: "trailing text", id: "tt0133093x", wantErr: ErrInvalidID},
		{name: "uppercase prefix", id: "TT0133093", wantErr: ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIMDbID(tt.id)
			if tt.wantErr == nil && err != nil {
				t.Errorf("ValidateIMDbID(%q) unexpected error: %v", tt.id, err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateIMDbID(%q) error = %v, want %v", tt.id, err, tt.wantErr)
			}
		})
	}
}

func TestValidateMovie(t *testing.T) {
	tests := []struct {
		movie   *model.Movie
		wantErr error
		name    string
	}{
		{
			name:  "valid",
			movie: &model.Movie{IMDbID: "tt0133093", Title: "The Matrix", Year: 1999},
		},
		{
			name:    "nil movie",
			movie:   nil,
			wantErr: ErrNilParameter,
		},
		{
			name:    "bad id",
			movie:   &model.Movie{IMDbID: "matrix", Title: "The Matrix"},
			wantErr: ErrInvalidMovie,
		},
		{
			name:    "missing title",
			movie:   &model.Movie{IMDbID: "tt0133093", Title: " "},
			wantErr: ErrInvalidMovie,
		},
		{
			name:    "negative runtime",
			movie:   &model.Movie{IMDbID: "tt0133093", Title: "The Matrix", Runtime: -1},
			wantErr: ErrInvalidMovie,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateMovie(tt.movie)
			if tt.wantErr == nil && err != nil {
				t.Errorf("validateMovie() unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("validateMovie() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateIDs(t *testing.T) {
	if err := validateIDs(nil); !errors.Is(err, ErrNilParameter) {
		t.Errorf("validateIDs(nil) error = %v, want %v", err, ErrNilParameter)
	}
	if err := validateIDs([]string{"tt0133093", "bogus"}); !errors.Is(err, ErrInvalidID) {
		t.Errorf("validateIDs() error = %v, want %v", err, ErrInvalidID)
	}
	if err := validateIDs([]string{}); err != nil {
		t.Errorf("validateIDs(empty) unexpected error: %v", err)
	}
}
