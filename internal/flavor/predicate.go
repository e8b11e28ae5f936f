package flavor

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Veraticus/the-flavor-must-flow/internal/common"
	"github.com/Veraticus/the-flavor-must-flow/internal/model"
)

// Predicate is one condition a rule tests against a Context.
// The concrete kinds below are the only implementations.
type Predicate interface {
	Match(c *Context) bool
	String() string
	isPredicate()
}

// AnyGenres passes when at least one listed genre is present. An empty list never passes.
type AnyGenres []model.Genre

// AllGenres passes when every listed genre is present.
type AllGenres []model.Genre

// AnySignals passes when at least one listed signal is present. An empty list never passes.
type AnySignals []model.Signal

// AllSignals passes when every listed signal is present.
type AllSignals []model.Signal

// AnyKeywords passes when at least one listed keyword is present. An empty list never passes.
type AnyKeywords []string

// AllKeywords passes when every listed keyword is present.
type AllKeywords []string

// KeywordPattern passes when any normalized keyword matches a word-boundary anchored pattern.
type KeywordPattern struct {
	re     *regexp.Regexp
	source string
}

// NewKeywordPattern compiles a keyword pattern.
func NewKeywordPattern(pattern string) (KeywordPattern, error) {
	re, err := common.CompileWordPattern(pattern)
	if err != nil {
		return KeywordPattern{}, fmt.Errorf("%w: %v", common.ErrInvalidRule, err)
	}
	return KeywordPattern{re: re, source: pattern}, nil
}

// MustKeywordPattern is NewKeywordPattern for static rule tables; it panics on a bad pattern.
func MustKeywordPattern(pattern string) KeywordPattern {
	p, err := NewKeywordPattern(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// Match implements Predicate.
func (p AnyGenres) Match(c *Context) bool { return c.HasAnyGenre(p...) }

// Match implements Predicate.
func (p AllGenres) Match(c *Context) bool {
	for _, g := range p {
		if !c.HasGenre(g) {
			return false
		}
	}
	return true
}

// Match implements Predicate.
func (p AnySignals) Match(c *Context) bool { return c.HasAnySignal(p...) }

// Match implements Predicate.
func (p AllSignals) Match(c *Context) bool {
	for _, s := range p {
		if !c.HasSignal(s) {
			return false
		}
	}
	return true
}

// Match implements Predicate.
func (p AnyKeywords) Match(c *Context) bool { return c.HasAnyKeyword(p...) }

// Match implements Predicate.
func (p AllKeywords) Match(c *Context) bool {
	for _, k := range p {
		if !c.HasKeyword(k) {
			return false
		}
	}
	return true
}

// Match implements Predicate.
func (p KeywordPattern) Match(c *Context) bool { return c.Match(p.re) }

func (p AnyGenres) String() string   { return "any genre " + joinGenres(p) }
func (p AllGenres) String() string   { return "all genres " + joinGenres(p) }
func (p AnySignals) String() string  { return "any signal " + joinSignals(p) }
func (p AllSignals) String() string  { return "all signals " + joinSignals(p) }
func (p AnyKeywords) String() string { return "any keyword " + joinList(p) }
func (p AllKeywords) String() string { return "all keywords " + joinList(p) }

// String returns the pattern source.
func (p KeywordPattern) String() string { return "keyword matches /" + p.source + "/" }

func (AnyGenres) isPredicate()      {}
func (AllGenres) isPredicate()      {}
func (AnySignals) isPredicate()     {}
func (AllSignals) isPredicate()     {}
func (AnyKeywords) isPredicate()    {}
func (AllKeywords) isPredicate()    {}
func (KeywordPattern) isPredicate() {}

// predicateSignals returns the signals a predicate references.
func predicateSignals(p Predicate) []model.Signal {
	switch v := p.(type) {
	case AnySignals:
		return v
	case AllSignals:
		return v
	default:
		return nil
	}
}

// predicateGenres returns the genres a predicate references.
func predicateGenres(p Predicate) []model.Genre {
	switch v := p.(type) {
	case AnyGenres:
		return v
	case AllGenres:
		return v
	default:
		return nil
	}
}

// predicateSize returns the number of values a predicate lists, or -1 for patterns.
func predicateSize(p Predicate) int {
	switch v := p.(type) {
	case AnyGenres:
		return len(v)
	case AllGenres:
		return len(v)
	case AnySignals:
		return len(v)
	case AllSignals:
		return len(v)
	case AnyKeywords:
		return len(v)
	case AllKeywords:
		return len(v)
	case KeywordPattern:
		if v.re == nil {
			return 0
		}
		return -1
	default:
		return 0
	}
}

func joinGenres(gs []model.Genre) string {
	parts := make([]string, len(gs))
	for i, g := range gs {
		parts[i] = string(g)
	}
	return joinList(parts)
}

func joinSignals(ss []model.Signal) string {
	parts := make([]string, len(ss))
	for i, s := range ss {
		parts[i] = string(s)
	}
	return joinList(parts)
}

func joinList(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}
