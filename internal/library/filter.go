package library

import (
	"slices"
	"strings"

	"github.com/Veraticus/the-flavor-must-flow/internal/model"
)

// Values returns a movie's values for a facet.
func Values(m *model.Movie, f Facet) []string {
	switch f {
	case FacetGenre:
		return m.Genres
	case FacetFlavor:
		return m.Flavors
	case FacetKeyword:
		return m.Keywords
	case FacetCast:
		return m.Actors
	case FacetCrew:
		return m.Crew
	default:
		return nil
	}
}

// Matches reports whether m satisfies every facet selection and the term.
func (q Query) Matches(m *model.Movie) bool {
	for _, f := range Facets() {
		selected := q.Selected(f)
		if len(selected) > 0 && !containsAny(Values(m, f), selected) {
			return false
		}
	}
	return MatchesTerm(m, q.Term)
}

// Filter returns the movies matching q in their original order.
func Filter(movies []model.Movie, q Query) []model.Movie {
	out := make([]model.Movie, 0, len(movies))
	for i := range movies {
		if q.Matches(&movies[i]) {
			out = append(out, movies[i])
		}
	}
	return out
}

// MatchesTerm reports whether the case-insensitive term occurs in the title
// or in any genre, flavor, keyword, actor or crew name. A blank term matches.
func MatchesTerm(m *model.Movie, term string) bool {
	t := strings.ToLower(strings.TrimSpace(term))
	if t == "" {
		return true
	}
	if strings.Contains(strings.ToLower(m.Title), t) {
		return true
	}
	for _, f := range Facets() {
		for _, v := range Values(m, f) {
			if strings.Contains(strings.ToLower(v), t) {
				return true
			}
		}
	}
	return false
}

func containsAny(values, selected []string) bool {
	for _, v := range values {
		if slices.Contains(selected, v) {
			return true
		}
	}
	return false
}
