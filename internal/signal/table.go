// Package signal holds the keyword to signal lookup table and the offline
// builder that produces it.
package signal

import (
	"sort"

	"github.com/Veraticus/the-flavor-must-flow/internal/model"
)

// Stage records which build pass produced a keyword's signals.
type Stage string

// Build stages.
const (
	StagePrimary   Stage = "primary"
	StageHeuristic Stage = "heuristic"
)

// Table is an immutable keyword to signal mapping.
// Keys are canonical keywords; values are sorted and deduplicated.
// A Table is safe for concurrent use.
type Table struct {
	entries    map[string][]model.Signal
	heuristic  map[string]struct{}
	vocabulary []model.Signal
}

// NewTable builds a Table from raw entries. Entries are copied; empty signal
// names are dropped and each value list is sorted and deduplicated.
// Keywords listed in heuristic are marked as produced by the heuristic stage.
func NewTable(entries map[string][]model.Signal, heuristic []string) *Table {
	return newTable(entries, heuristic, nil)
}

// newTable also declares vocabulary signals that no keyword currently carries.
func newTable(entries map[string][]model.Signal, heuristic []string, declared []model.Signal) *Table {
	t := &Table{
		entries:   make(map[string][]model.Signal, len(entries)),
		heuristic: make(map[string]struct{}, len(heuristic)),
	}

	vocab := make(map[model.Signal]struct{})
	for _, s := range declared {
		if s != "" {
			vocab[s] = struct{}{}
		}
	}
	for kw, signals := range entries {
		if kw == "" {
			continue
		}
		clean := uniqueSignals(signals)
		if len(clean) == 0 {
			continue
		}
		t.entries[kw] = clean
		for _, s := range clean {
			vocab[s] = struct{}{}
		}
	}

	for _, kw := range heuristic {
		if _, ok := t.entries[kw]; ok {
			t.heuristic[kw] = struct{}{}
		}
	}

	t.vocabulary = make([]model.Signal, 0, len(vocab))
	for s := range vocab {
		t.vocabulary = append(t.vocabulary, s)
	}
	sortSignals(t.vocabulary)

	return t
}

// Empty returns a table with no entries.
func Empty() *Table {
	return NewTable(nil, nil)
}

// Lookup returns the signals for a canonical keyword. Unknown or
// un-normalized keywords yield nil. The returned slice must not be modified.
func (t *Table) Lookup(keyword string) []model.Signal {
	if t == nil {
		return nil
	}
	return t.entries[keyword]
}

// Provenance reports which stage produced the keyword's signals.
func (t *Table) Provenance(keyword string) (Stage, bool) {
	if t == nil {
		return "", false
	}
	if _, ok := t.entries[keyword]; !ok {
		return "", false
	}
	if _, ok := t.heuristic[keyword]; ok {
		return StageHeuristic, true
	}
	return StagePrimary, true
}

// Len returns the number of keywords in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// HeuristicLen returns the number of keywords produced by the heuristic stage.
func (t *Table) HeuristicLen() int {
	if t == nil {
		return 0
	}
	return len(t.heuristic)
}

// Vocabulary returns the sorted distinct signals the table declares,
// including declared signals that no keyword carries.
func (t *Table) Vocabulary() []model.Signal {
	if t == nil {
		return nil
	}
	out := make([]model.Signal, len(t.vocabulary))
	copy(out, t.vocabulary)
	return out
}

// Keywords returns the table keys in sorted order.
func (t *Table) Keywords() []string {
	if t == nil {
		return nil
	}
	out := make([]string, 0, len(t.entries))
	for kw := range t.entries {
		out = append(out, kw)
	}
	sort.Strings(out)
	return out
}

// Merge returns a new table holding the union of both tables.
// Where both define a keyword the signal sets are unioned. A keyword is
// heuristic in the result only if no primary entry exists for it in either table.
func (t *Table) Merge(other *Table) *Table {
	entries := make(map[string][]model.Signal, t.Len()+other.Len())
	primary := make(map[string]struct{})
	var heuristic []string
	declared := append(t.Vocabulary(), other.Vocabulary()...)

	for _, src := range []*Table{t, other} {
		if src == nil {
			continue
		}
		for kw, signals := range src.entries {
			entries[kw] = append(entries[kw], signals...)
			if _, h := src.heuristic[kw]; !h {
				primary[kw] = struct{}{}
			}
		}
	}

	for _, src := range []*Table{t, other} {
		if src == nil {
			continue
		}
		for kw := range src.heuristic {
			if _, p := primary[kw]; !p {
				heuristic = append(heuristic, kw)
			}
		}
	}

	return newTable(entries, heuristic, declared)
}

func uniqueSignals(in []model.Signal) []model.Signal {
	seen := make(map[model.Signal]struct{}, len(in))
	out := make([]model.Signal, 0, len(in))
	for _, s := range in {
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sortSignals(out)
	return out
}

func sortSignals(s []model.Signal) {
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
}
