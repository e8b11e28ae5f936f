package signal

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"sync"

	"github.com/Veraticus/the-flavor-must-flow/internal/common"
	"github.com/Veraticus/the-flavor-must-flow/internal/model"
	"github.com/Veraticus/the-flavor-must-flow/internal/normalize"
)

// ArtifactVersion is the artifact schema version written by Write.
const ArtifactVersion = 1

//go:embed data/keyword_signals.json
var defaultArtifact []byte

// Artifact is the on-disk form of a Table.
type Artifact struct {
	Keywords  map[string][]string `json:"keywords"`
	Signals   []string            `json:"signals"`
	Heuristic []string            `json:"heuristic,omitempty"`
	Version   int                 `json:"version"`
}

var loadDefault = sync.OnceValues(func() (*Table, error) {
	return Load(bytes.NewReader(defaultArtifact))
})

// Default returns the table built from the embedded artifact.
func Default() (*Table, error) {
	return loadDefault()
}

// LoadFile reads an artifact from path.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open signal table: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			slog.Warn("Failed to close signal table", "path", path, "error", cerr)
		}
	}()

	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Load decodes an artifact. Keys that are not in canonical keyword form are
// skipped so lookups stay fail-closed; a malformed document is an error.
func Load(r io.Reader) (*Table, error) {
	var a Artifact
	if err := json.NewDecoder(r).Decode(&a); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidTable, err)
	}
	if a.Version != 0 && a.Version != ArtifactVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", common.ErrInvalidTable, a.Version)
	}
	if a.Keywords == nil {
		return nil, fmt.Errorf("%w: missing keywords", common.ErrInvalidTable)
	}

	entries := make(map[string][]model.Signal, len(a.Keywords))
	skipped := 0
	for kw, names := range a.Keywords {
		if kw == "" || normalize.Keyword(kw) != kw {
			skipped++
			continue
		}
		signals := make([]model.Signal, 0, len(names))
		for _, n := range names {
			signals = append(signals, model.Signal(n))
		}
		entries[kw] = signals
	}
	if skipped > 0 {
		slog.Warn("Skipped non-canonical signal table keys", "count", skipped)
	}

	declared := make([]model.Signal, 0, len(a.Signals))
	for _, n := range a.Signals {
		declared = append(declared, model.Signal(n))
	}

	t := newTable(entries, a.Heuristic, declared)
	slog.Debug("Loaded signal table",
		"keywords", t.Len(),
		"heuristic", t.HeuristicLen(),
		"signals", len(t.vocabulary))
	return t, nil
}

// ToArtifact converts a table to its serializable form.
func (t *Table) ToArtifact() Artifact {
	a := Artifact{
		Version:  ArtifactVersion,
		Keywords: make(map[string][]string, t.Len()),
		Signals:  make([]string, 0, len(t.Vocabulary())),
	}
	if t == nil {
		return a
	}
	for kw, signals := range t.entries {
		names := make([]string, len(signals))
		for i, s := range signals {
			names[i] = string(s)
		}
		a.Keywords[kw] = names
	}
	for _, s := range t.vocabulary {
		a.Signals = append(a.Signals, string(s))
	}
	for kw := range t.heuristic {
		a.Heuristic = append(a.Heuristic, kw)
	}
	sort.Strings(a.Heuristic)
	return a
}

// Write encodes the table as an indented artifact. Map keys are emitted
// in sorted order by encoding/json, so output is stable.
func Write(w io.Writer, t *Table) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(t.ToArtifact()); err != nil {
		return fmt.Errorf("failed to encode signal table: %w", err)
	}
	return nil
}
