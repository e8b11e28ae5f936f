package flavor

import (
	"regexp"
	"sort"

	"github.com/Veraticus/the-flavor-must-flow/internal/model"
	"github.com/Veraticus/the-flavor-must-flow/internal/normalize"
	"github.com/Veraticus/the-flavor-must-flow/internal/signal"
)

// Context is the normalized view of one movie's genres and keywords.
// It is built once per classification call and never mutated afterwards.
type Context struct {
	genres   map[model.Genre]struct{}
	keywords map[string]struct{}
	signals  map[model.Signal]struct{}

	// sorted copies for deterministic iteration
	genreList   []model.Genre
	keywordList []string
	signalList  []model.Signal
}

// NewContext normalizes the raw lists and derives the signal set from table.
// Unknown genres are dropped; keywords without table entries carry no signals.
func NewContext(genres, keywords []string, table *signal.Table) *Context {
	c := &Context{
		genres:   make(map[model.Genre]struct{}, len(genres)),
		keywords: make(map[string]struct{}, len(keywords)),
		signals:  make(map[model.Signal]struct{}),
	}

	for _, g := range normalize.Genres(genres) {
		c.genres[g] = struct{}{}
		c.genreList = append(c.genreList, g)
	}

	for _, k := range normalize.Keywords(keywords) {
		c.keywords[k] = struct{}{}
		c.keywordList = append(c.keywordList, k)
		for _, s := range table.Lookup(k) {
			if _, seen := c.signals[s]; seen {
				continue
			}
			c.signals[s] = struct{}{}
			c.signalList = append(c.signalList, s)
		}
	}

	sort.Slice(c.genreList, func(i, j int) bool { return c.genreList[i] < c.genreList[j] })
	sort.Strings(c.keywordList)
	sort.Slice(c.signalList, func(i, j int) bool { return c.signalList[i] < c.signalList[j] })

	return c
}

// HasGenre reports genre membership.
func (c *Context) HasGenre(g model.Genre) bool {
	_, ok := c.genres[g]
	return ok
}

// HasAnyGenre reports whether any of gs is present.
func (c *Context) HasAnyGenre(gs ...model.Genre) bool {
	for _, g := range gs {
		if c.HasGenre(g) {
			return true
		}
	}
	return false
}

// HasSignal reports signal membership.
func (c *Context) HasSignal(s model.Signal) bool {
	_, ok := c.signals[s]
	return ok
}

// HasAnySignal reports whether any of ss is present.
func (c *Context) HasAnySignal(ss ...model.Signal) bool {
	for _, s := range ss {
		if c.HasSignal(s) {
			return true
		}
	}
	return false
}

// HasKeyword reports keyword membership. The argument is canonicalized first,
// so rule authors may write keywords in any casing or alias form.
func (c *Context) HasKeyword(k string) bool {
	_, ok := c.keywords[normalize.Keyword(k)]
	return ok
}

// HasAnyKeyword reports whether any of ks is present.
func (c *Context) HasAnyKeyword(ks ...string) bool {
	for _, k := range ks {
		if c.HasKeyword(k) {
			return true
		}
	}
	return false
}

// Match reports whether any normalized keyword matches re.
func (c *Context) Match(re *regexp.Regexp) bool {
	if re == nil {
		return false
	}
	for _, k := range c.keywordList {
		if re.MatchString(k) {
			return true
		}
	}
	return false
}

// Genres returns the normalized genres in sorted order.
func (c *Context) Genres() []model.Genre {
	return append([]model.Genre(nil), c.genreList...)
}

// Keywords returns the normalized keywords in sorted order.
func (c *Context) Keywords() []string {
	return append([]string(nil), c.keywordList...)
}

// Signals returns the derived signals in sorted order.
func (c *Context) Signals() []model.Signal {
	return append([]model.Signal(nil), c.signalList...)
}

// IsEmpty reports whether the context has neither genres nor keywords.
func (c *Context) IsEmpty() bool {
	return len(c.genres) == 0 && len(c.keywords) == 0
}
