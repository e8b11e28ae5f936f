package flavor

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Veraticus/the-flavor-must-flow/internal/common"
	"github.com/Veraticus/the-flavor-must-flow/internal/model"
)

// DefaultScore is the base weight of a rule that sets no Score.
const DefaultScore = 10

// Rule votes for one or more flavors when its predicates hold.
//
// Every predicate in When must pass. If any predicate in Unless passes the
// rule contributes nothing. A rule with an empty When is global and fires
// for every context that no Unless predicate excludes.
type Rule struct {
	// Bonus adds to Score when the rule fires. A panicking Bonus counts as zero.
	Bonus   func(c *Context) int
	Name    string
	Flavors []model.Flavor
	When    []Predicate
	Unless  []Predicate
	Score   int
}

// Weight returns the base score, applying DefaultScore when unset.
func (r Rule) Weight() int {
	if r.Score == 0 {
		return DefaultScore
	}
	return r.Score
}

// Excluded reports whether any Unless predicate matches.
func (r Rule) Excluded(c *Context) bool {
	for _, p := range r.Unless {
		if p.Match(c) {
			return true
		}
	}
	return false
}

// Passes reports whether the rule fires for c. Excludes are checked first.
func (r Rule) Passes(c *Context) bool {
	if r.Excluded(c) {
		return false
	}
	for _, p := range r.When {
		if !p.Match(c) {
			return false
		}
	}
	return true
}

// IsGlobal reports whether the rule has no positive predicates.
func (r Rule) IsGlobal() bool {
	return len(r.When) == 0
}

// contribution returns Weight plus the bonus. A panicking bonus is reported and counts as zero.
func (r Rule) contribution(c *Context) (total int, bonusPanicked bool) {
	bonus, panicked := safeBonus(r.Bonus, c)
	return r.Weight() + bonus, panicked
}

func safeBonus(fn func(*Context) int, c *Context) (bonus int, panicked bool) {
	if fn == nil {
		return 0, false
	}
	defer func() {
		if recover() != nil {
			bonus, panicked = 0, true
		}
	}()
	return fn(c), false
}

// RuleSet is an immutable ordered rule table.
type RuleSet struct {
	rules []Rule
}

// NewRuleSet returns a rule set holding a copy of rules.
func NewRuleSet(rules ...Rule) RuleSet {
	return RuleSet{rules: append([]Rule(nil), rules...)}
}

// Rules returns a copy of the rules in table order.
func (rs RuleSet) Rules() []Rule {
	return append([]Rule(nil), rs.rules...)
}

// Len returns the number of rules.
func (rs RuleSet) Len() int {
	return len(rs.rules)
}

// With returns a new rule set with rules appended. The receiver is unchanged.
func (rs RuleSet) With(rules ...Rule) RuleSet {
	out := make([]Rule, 0, len(rs.rules)+len(rules))
	out = append(out, rs.rules...)
	out = append(out, rules...)
	return RuleSet{rules: out}
}

// Without returns a new rule set without the named rules.
func (rs RuleSet) Without(names ...string) RuleSet {
	drop := make(map[string]struct{}, len(names))
	for _, n := range names {
		drop[n] = struct{}{}
	}
	out := make([]Rule, 0, len(rs.rules))
	for _, r := range rs.rules {
		if _, ok := drop[r.Name]; !ok {
			out = append(out, r)
		}
	}
	return RuleSet{rules: out}
}

// Flavors returns every flavor some rule can vote for, sorted.
func (rs RuleSet) Flavors() []model.Flavor {
	seen := make(map[model.Flavor]struct{})
	for _, r := range rs.rules {
		for _, f := range r.Flavors {
			seen[f] = struct{}{}
		}
	}
	out := make([]model.Flavor, 0, len(seen))
	for f := range seen {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Signals returns every signal referenced by a rule predicate, sorted.
func (rs RuleSet) Signals() []model.Signal {
	seen := make(map[model.Signal]struct{})
	for _, r := range rs.rules {
		for _, p := range append(append([]Predicate(nil), r.When...), r.Unless...) {
			for _, s := range predicateSignals(p) {
				seen[s] = struct{}{}
			}
		}
	}
	out := make([]model.Signal, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Severity grades a rule table issue.
type Severity string

// Issue severities. Errors prevent an engine from being built.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is a problem found while validating a rule set.
type Issue struct {
	Rule     string
	Message  string
	Severity Severity
	Index    int
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: rule %d (%s): %s", i.Severity, i.Index, i.Rule, i.Message)
}

// Validate checks the rule set. Structural problems are errors; flavors
// outside catalog and signals outside vocabulary are warnings, since both
// vocabularies are extensible. A nil catalog or vocabulary skips that check.
func (rs RuleSet) Validate(catalog *Catalog, vocabulary []model.Signal) []Issue {
	var issues []Issue
	add := func(idx int, r Rule, sev Severity, format string, args ...any) {
		issues = append(issues, Issue{
			Index:    idx,
			Rule:     r.Name,
			Severity: sev,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	var vocab map[model.Signal]struct{}
	if vocabulary != nil {
		vocab = make(map[model.Signal]struct{}, len(vocabulary))
		for _, s := range vocabulary {
			vocab[s] = struct{}{}
		}
	}

	names := make(map[string]int, len(rs.rules))
	for i, r := range rs.rules {
		if r.Name == "" {
			add(i, r, SeverityError, "missing name")
		} else if prev, dup := names[r.Name]; dup {
			add(i, r, SeverityError, "duplicate name, first used by rule %d", prev)
		} else {
			names[r.Name] = i
		}

		if len(r.Flavors) == 0 {
			add(i, r, SeverityError, "votes for no flavors")
		}
		if r.Score < 0 {
			add(i, r, SeverityError, "negative score %d", r.Score)
		}
		if r.IsGlobal() {
			add(i, r, SeverityWarning, "no positive predicates; rule fires for every movie")
		}

		seenFlavor := make(map[model.Flavor]struct{}, len(r.Flavors))
		for _, f := range r.Flavors {
			if f == "" {
				add(i, r, SeverityError, "empty flavor")
				continue
			}
			if _, dup := seenFlavor[f]; dup {
				add(i, r, SeverityError, "flavor %q listed twice", f)
			}
			seenFlavor[f] = struct{}{}
			if catalog != nil && !catalog.Contains(f) {
				add(i, r, SeverityWarning, "flavor %q is not in the catalog", f)
			}
		}

		for _, p := range append(append([]Predicate(nil), r.When...), r.Unless...) {
			if p == nil {
				add(i, r, SeverityError, "nil predicate")
				continue
			}
			if predicateSize(p) == 0 {
				add(i, r, SeverityError, "empty predicate %s", p)
			}
			for _, g := range predicateGenres(p) {
				if !g.IsValid() {
					add(i, r, SeverityError, "unknown genre %q", g)
				}
			}
			if vocab == nil {
				continue
			}
			for _, s := range predicateSignals(p) {
				if _, ok := vocab[s]; !ok {
					add(i, r, SeverityWarning, "signal %q is not in the signal vocabulary", s)
				}
			}
		}
	}
	return issues
}

// issuesError joins error-severity issues into one error wrapping common.ErrInvalidRule.
func issuesError(issues []Issue) error {
	var errs []error
	for _, i := range issues {
		if i.Severity == SeverityError {
			errs = append(errs, fmt.Errorf("%w: %s", common.ErrInvalidRule, i))
		}
	}
	return errors.Join(errs...)
}
