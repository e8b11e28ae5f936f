package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/Veraticus/the-flavor-must-flow/internal/config"
	"github.com/Veraticus/the-flavor-must-flow/internal/flavor"
	"github.com/Veraticus/the-flavor-must-flow/internal/model"
	"github.com/Veraticus/the-flavor-must-flow/internal/signal"
	"github.com/Veraticus/the-flavor-must-flow/internal/storage"
)

// loadConfig resolves the configuration from the global viper instance.
func loadConfig() (*config.Config, error) {
	return config.Load(viper.GetViper())
}

// openStorage opens the library database and brings its schema up to date.
func openStorage(ctx context.Context, cfg *config.Config) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := store.Migrate(ctx); err != nil {
		closeStorage(store)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return store, nil
}

func closeStorage(store *storage.SQLiteStorage) {
	if err := store.Close(); err != nil {
		slog.Error("Failed to close database", "error", err)
	}
}

// loadSignalTable returns the configured artifact, or the embedded one.
func loadSignalTable(cfg *config.Config) (*signal.Table, error) {
	if cfg.Signals.Path == "" {
		return signal.Default()
	}
	table, err := signal.LoadFile(cfg.Signals.Path)
	if err != nil {
		return nil, err
	}
	slog.Debug("Loaded signal table", "path", cfg.Signals.Path, "keywords", table.Len())
	return table, nil
}

// loadEngine builds the default rules over the configured signal table.
func loadEngine(cfg *config.Config) (*flavor.Engine, error) {
	table, err := loadSignalTable(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load signal table: %w", err)
	}
	return flavor.NewEngine(flavor.DefaultRules(), table)
}

// familyOf adapts the engine's catalog for flavor chips.
func familyOf(e *flavor.Engine) func(string) string {
	return func(f string) string {
		name, _ := e.Catalog().FamilyOf(model.Flavor(f))
		return name
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// join renders a list of string-typed values, or a dash when empty.
func join[T ~string](items []T) string {
	if len(items) == 0 {
		return "-"
	}
	parts := make([]string, len(items))
	for i, s := range items {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

// confirm asks a yes/no question on in and defaults to no.
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s (y/N) ", question)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "y")
}
