// Package flavor classifies movies into flavor tags from their genres and keywords.
//
// Classification runs a fixed pipeline: build a Context from the normalized
// inputs and the signal table, accumulate scores from every rule that fires,
// apply guardrails once, then rank. An Engine holds only immutable tables and
// is safe for concurrent use.
package flavor

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/the-flavor-must-flow/internal/model"
	"github.com/Veraticus/the-flavor-must-flow/internal/signal"
)

// Engine evaluates a rule set against a signal table.
type Engine struct {
	table      *signal.Table
	catalog    *Catalog
	rules      []Rule
	guardrails []Guardrail
}

// Option configures an Engine.
type Option func(*Engine)

// WithGuardrails replaces the default guardrails.
func WithGuardrails(g ...Guardrail) Option {
	return func(e *Engine) {
		e.guardrails = append([]Guardrail(nil), g...)
	}
}

// WithCatalog sets the catalog used to validate rule flavors.
func WithCatalog(c *Catalog) Option {
	return func(e *Engine) {
		e.catalog = c
	}
}

// NewEngine validates rules and returns an engine over them.
// Error-severity issues fail construction; warnings are logged.
func NewEngine(rules RuleSet, table *signal.Table, opts ...Option) (*Engine, error) {
	if table == nil {
		table = signal.Empty()
	}
	e := &Engine{
		table:      table,
		catalog:    DefaultCatalog(),
		rules:      rules.Rules(),
		guardrails: DefaultGuardrails(),
	}
	for _, opt := range opts {
		opt(e)
	}

	issues := rules.Validate(e.catalog, table.Vocabulary())
	if err := issuesError(issues); err != nil {
		return nil, err
	}
	for _, i := range issues {
		slog.Warn("Rule table issue", "rule", i.Rule, "index", i.Index, "issue", i.Message)
	}

	slog.Debug("Flavor engine ready",
		"rules", len(e.rules),
		"guardrails", len(e.guardrails),
		"keywords", table.Len())
	return e, nil
}

// NewDefaultEngine builds an engine from the default rules and the embedded signal table.
func NewDefaultEngine() (*Engine, error) {
	table, err := signal.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load signal table: %w", err)
	}
	return NewEngine(DefaultRules(), table)
}

// Table returns the engine's signal table.
func (e *Engine) Table() *signal.Table {
	return e.table
}

// Rules returns the engine's rule set.
func (e *Engine) Rules() RuleSet {
	return NewRuleSet(e.rules...)
}

// Catalog returns the engine's flavor catalog.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Context builds the classification context for raw inputs.
func (e *Engine) Context(genres, keywords []string) *Context {
	return NewContext(genres, keywords, e.table)
}

// Evaluate accumulates rule scores and applies guardrails. The returned map
// belongs to the caller.
func (e *Engine) Evaluate(c *Context) Scores {
	scores := make(Scores)
	e.evaluate(c, scores, nil)
	e.applyGuardrails(c, scores)
	return scores
}

// Classify returns the ranked flavors for raw genres and keywords.
// It never fails; empty or unrecognized input yields an empty list.
func (e *Engine) Classify(genres, keywords []string) []string {
	ranked := e.ClassifyFlavors(genres, keywords)
	out := make([]string, len(ranked))
	for i, f := range ranked {
		out[i] = string(f)
	}
	return out
}

// ClassifyFlavors is Classify returning typed flavors.
func (e *Engine) ClassifyFlavors(genres, keywords []string) []model.Flavor {
	return Rank(e.Evaluate(e.Context(genres, keywords)))
}

// FiredRule records one rule that contributed to the scores.
type FiredRule struct {
	Name          string         `json:"name"`
	Flavors       []model.Flavor `json:"flavors"`
	Index         int            `json:"index"`
	Contribution  int            `json:"contribution"`
	BonusPanicked bool           `json:"bonus_panicked,omitempty"`
}

// Explanation describes how a classification was reached.
type Explanation struct {
	Genres     []model.Genre  `json:"genres"`
	Keywords   []string       `json:"keywords"`
	Signals    []model.Signal `json:"signals"`
	Fired      []FiredRule    `json:"fired"`
	Guardrails []string       `json:"guardrails"`
	Ranked     []Ranking      `json:"ranked"`
}

// Flavors returns the ranked flavor names, identical to Classify's output.
func (x Explanation) Flavors() []string {
	out := make([]string, len(x.Ranked))
	for i, r := range x.Ranked {
		out[i] = string(r.Flavor)
	}
	return out
}

// Explain classifies and records every fired rule and acting guardrail.
func (e *Engine) Explain(genres, keywords []string) Explanation {
	c := e.Context(genres, keywords)
	scores := make(Scores)

	x := Explanation{
		Genres:   c.Genres(),
		Keywords: c.Keywords(),
		Signals:  c.Signals(),
	}
	e.evaluate(c, scores, func(fr FiredRule) {
		x.Fired = append(x.Fired, fr)
	})
	x.Guardrails = e.applyGuardrails(c, scores)
	x.Ranked = Ranked(scores)
	return x
}

// evaluate adds every firing rule's contribution to scores. Rules are
// independent; none observes another's outcome.
func (e *Engine) evaluate(c *Context, scores Scores, record func(FiredRule)) {
	for i, r := range e.rules {
		if !r.Passes(c) {
			continue
		}
		n, panicked := r.contribution(c)
		if panicked {
			slog.Debug("Rule bonus panicked; counting zero bonus", "rule", r.Name)
		}
		for _, f := range r.Flavors {
			scores.Add(f, n)
		}
		if record != nil {
			record(FiredRule{
				Index:         i,
				Name:          r.Name,
				Flavors:       append([]model.Flavor(nil), r.Flavors...),
				Contribution:  n,
				BonusPanicked: panicked,
			})
		}
	}
}

func (e *Engine) applyGuardrails(c *Context, scores Scores) []string {
	var acted []string
	for _, g := range e.guardrails {
		if g.Apply(c, scores) {
			acted = append(acted, g.Name())
		}
	}
	return acted
}
