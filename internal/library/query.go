// Package library filters, searches and sorts the stored movie library.
package library

import (
	"fmt"
	"strings"
)

// SortKey selects the ordering of query results.
type SortKey string

// Sort keys.
const (
	SortAlpha   SortKey = "alpha"
	SortYear    SortKey = "year"
	SortRuntime SortKey = "runtime"
	SortAdded   SortKey = "added"
)

// ParseSortKey validates a sort key name. An empty name means SortAlpha.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return SortAlpha, nil
	case SortAlpha, SortYear, SortRuntime, SortAdded:
		return k, nil
	default:
		return "", fmt.Errorf("unknown sort key %q (want alpha, year, runtime or added)", s)
	}
}

// Facet is one multi-valued movie attribute that can be filtered on.
type Facet string

// Facets.
const (
	FacetGenre   Facet = "genre"
	FacetFlavor  Facet = "flavor"
	FacetKeyword Facet = "keyword"
	FacetCast    Facet = "cast"
	FacetCrew    Facet = "crew"
)

// Facets lists every facet in display order.
func Facets() []Facet {
	return []Facet{FacetGenre, FacetFlavor, FacetKeyword, FacetCast, FacetCrew}
}

// ParseFacet validates a facet name. Plural forms are accepted.
func ParseFacet(s string) (Facet, error) {
	f := Facet(strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s"))
	for _, known := range Facets() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown facet %q (want genre, flavor, keyword, cast or crew)", s)
}

// Query selects and orders movies. Within a facet any selected value
// matches; across facets every non-empty selection must match.
type Query struct {
	Term       string
	Sort       SortKey
	Genres     []string
	Flavors    []string
	Keywords   []string
	Cast       []string
	Crew       []string
	Descending bool
}

// Selected returns the query's selection for a facet.
func (q Query) Selected(f Facet) []string {
	switch f {
	case FacetGenre:
		return q.Genres
	case FacetFlavor:
		return q.Flavors
	case FacetKeyword:
		return q.Keywords
	case FacetCast:
		return q.Cast
	case FacetCrew:
		return q.Crew
	default:
		return nil
	}
}

// Without returns a copy of q with the selection for f cleared.
func (q Query) Without(f Facet) Query {
	switch f {
	case FacetGenre:
		q.Genres = nil
	case FacetFlavor:
		q.Flavors = nil
	case FacetKeyword:
		q.Keywords = nil
	case FacetCast:
		q.Cast = nil
	case FacetCrew:
		q.Crew = nil
	}
	return q
}
