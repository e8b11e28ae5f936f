package signal

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"

	"github.com/Veraticus/the-flavor-must-flow/internal/common"
	"github.com/Veraticus/the-flavor-must-flow/internal/model"
	"github.com/Veraticus/the-flavor-must-flow/internal/normalize"
)

type compiledRule struct {
	exact   map[string]struct{}
	signal  model.Signal
	regexes []*regexp.Regexp
}

type compiledHeuristic struct {
	regex  *regexp.Regexp
	signal model.Signal
}

// Builder compiles signal rules and produces Tables from keyword corpora.
// Building runs two separate passes: every keyword is matched against the
// primary rules first, then only keywords with no primary match are offered
// to the heuristic rules.
type Builder struct {
	primary   []compiledRule
	heuristic []compiledHeuristic
}

// BuildStats summarizes a build.
type BuildStats struct {
	PerSignal map[model.Signal]int
	Names     int
	Distinct  int
	Stopped   int
	Primary   int
	Heuristic int
	Unmatched int
}

// Coverage returns the share of distinct keywords that received any signal.
func (s BuildStats) Coverage() float64 {
	if s.Distinct == 0 {
		return 0
	}
	return float64(s.Primary+s.Heuristic) / float64(s.Distinct)
}

// NewDefaultBuilder returns a builder for the default rule sets.
func NewDefaultBuilder() (*Builder, error) {
	return NewBuilder(DefaultRules(), DefaultHeuristics())
}

// NewBuilder compiles the given rules. Any invalid pattern fails the whole build.
func NewBuilder(rules []Rule, heuristics []HeuristicRule) (*Builder, error) {
	b := &Builder{
		primary:   make([]compiledRule, 0, len(rules)),
		heuristic: make([]compiledHeuristic, 0, len(heuristics)),
	}

	for i, r := range rules {
		if r.Signal == "" {
			return nil, fmt.Errorf("%w: signal rule %d has no signal", common.ErrInvalidRule, i)
		}
		if len(r.Patterns) == 0 && len(r.Exact) == 0 {
			return nil, fmt.Errorf("%w: signal rule %q has no patterns", common.ErrInvalidRule, r.Signal)
		}

		cr := compiledRule{
			signal: r.Signal,
			exact:  make(map[string]struct{}, len(r.Exact)),
		}
		for _, p := range r.Patterns {
			re, err := common.CompileWordPattern(p)
			if err != nil {
				return nil, fmt.Errorf("%w: signal %q: %v", common.ErrInvalidRule, r.Signal, err)
			}
			cr.regexes = append(cr.regexes, re)
		}
		for _, e := range r.Exact {
			if k := normalize.Keyword(e); k != "" {
				cr.exact[k] = struct{}{}
			}
		}
		b.primary = append(b.primary, cr)
	}

	for _, h := range heuristics {
		if h.Signal == "" {
			return nil, fmt.Errorf("%w: heuristic rule has no signal", common.ErrInvalidRule)
		}
		re, err := common.CompileWordPattern(h.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: heuristic %q: %v", common.ErrInvalidRule, h.Signal, err)
		}
		b.heuristic = append(b.heuristic, compiledHeuristic{signal: h.Signal, regex: re})
	}

	return b, nil
}

// Vocabulary returns every signal any rule can produce.
func (b *Builder) Vocabulary() []model.Signal {
	all := make([]model.Signal, 0, len(b.primary)+len(b.heuristic))
	for _, r := range b.primary {
		all = append(all, r.signal)
	}
	for _, h := range b.heuristic {
		all = append(all, h.signal)
	}
	return uniqueSignals(all)
}

// Match runs a single canonical keyword through both stages.
// It reports the stage that produced the signals, or "" when none matched.
func (b *Builder) Match(keyword string) ([]model.Signal, Stage) {
	if signals := b.matchPrimary(keyword); len(signals) > 0 {
		return signals, StagePrimary
	}
	if signals := b.matchHeuristic(keyword); len(signals) > 0 {
		return signals, StageHeuristic
	}
	return nil, ""
}

// Build canonicalizes the corpus names and produces a table.
func (b *Builder) Build(names []string) (*Table, BuildStats) {
	stats := BuildStats{
		Names:     len(names),
		PerSignal: make(map[model.Signal]int),
	}

	keywords := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		k := normalize.Keyword(name)
		if k == "" {
			continue
		}
		if _, stop := stopwords[k]; stop {
			stats.Stopped++
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keywords = append(keywords, k)
	}
	stats.Distinct = len(keywords)

	entries := make(map[string][]model.Signal, len(keywords))

	// Primary pass.
	var unmatched []string
	for _, k := range keywords {
		signals := b.matchPrimary(k)
		if len(signals) == 0 {
			unmatched = append(unmatched, k)
			continue
		}
		entries[k] = signals
	}
	stats.Primary = len(entries)

	// Heuristic pass, restricted to keywords the primary pass left empty.
	var heuristic []string
	for _, k := range unmatched {
		signals := b.matchHeuristic(k)
		if len(signals) == 0 {
			stats.Unmatched++
			continue
		}
		entries[k] = signals
		heuristic = append(heuristic, k)
	}
	stats.Heuristic = len(heuristic)

	for _, signals := range entries {
		for _, s := range signals {
			stats.PerSignal[s]++
		}
	}

	return newTable(entries, heuristic, b.Vocabulary()), stats
}

func (b *Builder) matchPrimary(keyword string) []model.Signal {
	var out []model.Signal
	for _, r := range b.primary {
		if _, ok := r.exact[keyword]; ok {
			out = append(out, r.signal)
			continue
		}
		for _, re := range r.regexes {
			if re.MatchString(keyword) {
				out = append(out, r.signal)
				break
			}
		}
	}
	return uniqueSignals(out)
}

func (b *Builder) matchHeuristic(keyword string) []model.Signal {
	var out []model.Signal
	for _, h := range b.heuristic {
		if h.regex.MatchString(keyword) {
			out = append(out, h.signal)
		}
	}
	return uniqueSignals(out)
}

// ReadCorpus decodes a JSON array of keyword names. Items may be plain
// strings or objects carrying a "name" field.
func ReadCorpus(r io.Reader) ([]string, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode corpus: %w", err)
	}

	names := make([]string, 0, len(raw))
	for i, item := range raw {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			names = append(names, s)
			continue
		}
		var obj struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(item, &obj); err != nil {
			return nil, fmt.Errorf("corpus item %d is neither a string nor an object: %w", i, err)
		}
		names = append(names, obj.Name)
	}
	return names, nil
}
