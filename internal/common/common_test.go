package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/the-flavor-must-flow/internal/service"
)

func fastRetry(attempts int) service.RetryOptions {
	return service.RetryOptions{
		MaxAttempts:  attempts,
		InitialDelay: time.Millisecond,
		MaxDelay:     2 * time.Millisecond,
		Multiplier:   2,
	}
}

func TestWithRetry(t *testing.T) {
	errTransient := errors.New("transient")

	tests := []struct {
		name      string
		failures  int
		err       error
		wantCalls int
		wantErr   error
	}{
		{"succeeds first time", 0, errTransient, 1, nil},
		{"succeeds after retries", 2, errTransient, 3, nil},
		{"exhausts attempts", 5, errTransient, 3, ErrMaxRetries},
		{"non-retryable stops at once", 5, &RetryableError{Err: ErrProviderRejected}, 1, ErrProviderRejected},
		{"rate limit retries", 1, &RetryableError{Err: ErrRateLimit, Retryable: true}, 2, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := WithRetry(context.Background(), func() error {
				calls++
				if calls <= tt.failures {
					return tt.err
				}
				return nil
			}, fastRetry(3))

			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestWithRetryWrapsLastError(t *testing.T) {
	err := WithRetry(context.Background(), func() error {
		return &RetryableError{Err: ErrProviderUnavailable, Retryable: true}
	}, fastRetry(2))

	assert.ErrorIs(t, err, ErrMaxRetries)
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestWithRetryCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WithRetry(ctx, func() error { return errors.New("boom") }, fastRetry(3))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUserError(t *testing.T) {
	err := NewUserError("TMDB is not configured", ErrMissingConfig)
	assert.Equal(t, "TMDB is not configured: missing configuration", err.Error())
	assert.ErrorIs(t, err, ErrMissingConfig)
	assert.Equal(t, "plain", NewUserError("plain", nil).Error())
}

func TestCompileWordPattern(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		match   bool
	}{
		{"heist", "bank heist", true},
		{"heist", "heisting", false},
		{"ghost|haunt", "haunted", false},
		{"ghost|haunt", "the haunt", true},
		{"ghost|haunt", "ghostly", false},
		{"time travel", "TIME TRAVEL", true},
	}
	for _, tt := range tests {
		re, err := CompileWordPattern(tt.pattern)
		require.NoError(t, err)
		assert.Equal(t, tt.match, re.MatchString(tt.input), "%q on %q", tt.pattern, tt.input)
	}

	_, err := CompileWordPattern("")
	assert.ErrorIs(t, err, ErrEmptyPattern)
	_, err = CompileWordPattern("(")
	assert.Error(t, err)
}
