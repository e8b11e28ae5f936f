package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Veraticus/the-flavor-must-flow/internal/common"
)

// Defaults used when neither the config file nor the environment sets a value.
const (
	DefaultTMDBBaseURL      = "https://api.themoviedb.org/3"
	DefaultTMDBImageBaseURL = "https://image.tmdb.org/t/p/w500"
	DefaultTMDBRateLimit    = 20.0
	DefaultTMDBTimeout      = 10 * time.Second
	DefaultTMDBMaxRetries   = 3
	DefaultCacheTTL         = time.Hour
	DefaultConcurrency      = 4
)

// Config is the resolved application configuration.
type Config struct {
	Logging  LoggingConfig
	Database DatabaseConfig
	Signals  SignalsConfig
	TMDB     TMDBConfig
	Cache    CacheConfig
	Import   ImportConfig
}

// DatabaseConfig locates the movie library database.
type DatabaseConfig struct {
	Path string
}

// SignalsConfig optionally overrides the embedded signal table.
type SignalsConfig struct {
	Path string
}

// TMDBConfig configures the metadata client.
type TMDBConfig struct {
	APIKey       string
	BaseURL      string
	ImageBaseURL string
	RateLimit    float64
	Timeout      time.Duration
	MaxRetries   int
}

// CacheConfig controls how long fetched movies are reused.
type CacheConfig struct {
	TTL time.Duration
}

// ImportConfig controls import parallelism.
type ImportConfig struct {
	Concurrency int
}

// LoggingConfig selects the slog level and handler.
type LoggingConfig struct {
	Level  string
	Format string
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("database.path", defaultDatabasePath())
	v.SetDefault("tmdb.base_url", DefaultTMDBBaseURL)
	v.SetDefault("tmdb.image_base_url", DefaultTMDBImageBaseURL)
	v.SetDefault("tmdb.rate_limit", DefaultTMDBRateLimit)
	v.SetDefault("tmdb.timeout", DefaultTMDBTimeout)
	v.SetDefault("tmdb.max_retries", DefaultTMDBMaxRetries)
	v.SetDefault("cache.ttl", DefaultCacheTTL)
	v.SetDefault("import.concurrency", DefaultConcurrency)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Load resolves the configuration from v. It follows this precedence:
// 1. Viper configuration (from config file or FLAVOR_ env vars)
// 2. Direct environment variables (TMDB_API_KEY)
// 3. Default values
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	cfg := &Config{
		Database: DatabaseConfig{Path: ExpandPath(v.GetString("database.path"))},
		Signals:  SignalsConfig{Path: ExpandPath(v.GetString("signals.path"))},
		TMDB: TMDBConfig{
			APIKey:       v.GetString("tmdb.api_key"),
			BaseURL:      strings.TrimRight(v.GetString("tmdb.base_url"), "/"),
			ImageBaseURL: strings.TrimRight(v.GetString("tmdb.image_base_url"), "/"),
			RateLimit:    v.GetFloat64("tmdb.rate_limit"),
			Timeout:      v.GetDuration("tmdb.timeout"),
			MaxRetries:   v.GetInt("tmdb.max_retries"),
		},
		Cache:  CacheConfig{TTL: v.GetDuration("cache.ttl")},
		Import: ImportConfig{Concurrency: v.GetInt("import.concurrency")},
		Logging: LoggingConfig{
			Level:  strings.ToLower(v.GetString("logging.level")),
			Format: strings.ToLower(v.GetString("logging.format")),
		},
	}

	if cfg.TMDB.APIKey == "" {
		cfg.TMDB.APIKey = os.Getenv("TMDB_API_KEY")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges. A missing TMDB key is not an error here;
// commands that fetch metadata check for it themselves.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("%w: database.path is required", common.ErrInvalidConfig)
	}
	if c.TMDB.RateLimit <= 0 {
		return fmt.Errorf("%w: tmdb.rate_limit must be positive, got %v", common.ErrInvalidConfig, c.TMDB.RateLimit)
	}
	if c.TMDB.Timeout <= 0 {
		return fmt.Errorf("%w: tmdb.timeout must be positive, got %v", common.ErrInvalidConfig, c.TMDB.Timeout)
	}
	if c.TMDB.MaxRetries < 1 {
		return fmt.Errorf("%w: tmdb.max_retries must be at least 1, got %d", common.ErrInvalidConfig, c.TMDB.MaxRetries)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("%w: cache.ttl cannot be negative", common.ErrInvalidConfig)
	}
	if c.Import.Concurrency < 1 {
		return fmt.Errorf("%w: import.concurrency must be at least 1, got %d", common.ErrInvalidConfig, c.Import.Concurrency)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: invalid log level: %s", common.ErrInvalidConfig, c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: invalid log format: %s", common.ErrInvalidConfig, c.Logging.Format)
	}
	return nil
}

// RequireTMDB reports common.ErrMissingConfig when no API key is configured.
func (c *Config) RequireTMDB() error {
	if c.TMDB.APIKey == "" {
		return fmt.Errorf("%w: set tmdb.api_key, FLAVOR_TMDB_API_KEY or TMDB_API_KEY", common.ErrMissingConfig)
	}
	return nil
}

func defaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "flavor.db")
	}
	return filepath.Join(home, ".local", "share", "flavor", "flavor.db")
}
