package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/Veraticus/the-flavor-must-flow/internal/common"
	"github.com/Veraticus/the-flavor-must-flow/internal/config"
	"github.com/Veraticus/the-flavor-must-flow/internal/service"
)

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 4 << 10

var _ service.MetadataProvider = (*Client)(nil)

// Client talks to the TMDB v3 API.
type Client struct {
	httpClient   *http.Client
	limiter      *rate.Limiter
	now          func() time.Time
	apiKey       string
	baseURL      string
	imageBaseURL string
	retry        service.RetryOptions
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRetryOptions replaces the retry policy.
func WithRetryOptions(opts service.RetryOptions) Option {
	return func(c *Client) { c.retry = opts }
}

// WithClock replaces the time source used for FetchedAt.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// NewClient creates a client from the TMDB configuration.
// A missing API key returns common.ErrMissingConfig.
func NewClient(cfg config.TMDBConfig, opts ...Option) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: tmdb api key", common.ErrMissingConfig)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = config.DefaultTMDBBaseURL
	}
	if cfg.ImageBaseURL == "" {
		cfg.ImageBaseURL = config.DefaultTMDBImageBaseURL
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = config.DefaultTMDBRateLimit
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = config.DefaultTMDBTimeout
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = config.DefaultTMDBMaxRetries
	}

	burst := int(cfg.RateLimit)
	if burst < 1 {
		burst = 1
	}

	c := &Client{
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		limiter:      rate.NewLimiter(rate.Limit(cfg.RateLimit), burst),
		now:          time.Now,
		apiKey:       cfg.APIKey,
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		imageBaseURL: strings.TrimRight(cfg.ImageBaseURL, "/"),
		retry: service.RetryOptions{
			MaxAttempts:  cfg.MaxRetries,
			InitialDelay: 500 * time.Millisecond,
			MaxDelay:     10 * time.Second,
			Multiplier:   2.0,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// getJSON performs a paced GET with retries and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	if !c.bearerAuth() {
		params.Set("api_key", c.apiKey)
	}
	endpoint := c.baseURL + path + "?" + params.Encode()

	return common.WithRetry(ctx, func() error {
		if err := c.limiter.Wait(ctx); err != nil {
			return &common.RetryableError{Err: fmt.Errorf("rate limit: %w", err), Retryable: false}
		}
		return c.do(ctx, path, endpoint, out)
	}, c.retry)
}

func (c *Client) do(ctx context.Context, path, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &common.RetryableError{Err: fmt.Errorf("create request: %w", err), Retryable: false}
	}
	req.Header.Set("Accept", "application/json")
	if c.bearerAuth() {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	slog.Debug("TMDB request", "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return &common.RetryableError{Err: ctx.Err(), Retryable: false}
		}
		return &common.RetryableError{Err: fmt.Errorf("%w: %v", common.ErrProviderUnavailable, err), Retryable: true}
	}
	defer func() { _ = resp.Body.Close() }()

	if err := statusError(resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &common.RetryableError{Err: fmt.Errorf("parse response: %w", err), Retryable: false}
	}
	return nil
}

// statusError classifies non-2xx responses. 429 and 5xx are retryable.
func statusError(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	msg := http.StatusText(resp.StatusCode)
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var apiErr errorResponse
	if json.Unmarshal(body, &apiErr) == nil && apiErr.StatusMessage != "" {
		msg = apiErr.StatusMessage
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return &common.RetryableError{Err: fmt.Errorf("%w: %s", common.ErrRateLimit, msg), Retryable: true}
	case resp.StatusCode >= 500:
		return &common.RetryableError{
			Err:       fmt.Errorf("%w: status %d: %s", common.ErrProviderUnavailable, resp.StatusCode, msg),
			Retryable: true,
		}
	case resp.StatusCode == http.StatusNotFound:
		return &common.RetryableError{Err: fmt.Errorf("%w: %s", common.ErrNotFound, msg), Retryable: false}
	default:
		return &common.RetryableError{
			Err:       fmt.Errorf("%w: status %d: %s", common.ErrProviderRejected, resp.StatusCode, msg),
			Retryable: false,
		}
	}
}

// bearerAuth reports whether the key is a v4 read access token rather than a v3 api key.
func (c *Client) bearerAuth() bool {
	return strings.HasPrefix(c.apiKey, "eyJ")
}
