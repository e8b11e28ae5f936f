package library

import (
	"sort"
	"strings"

	"github.com/Veraticus/the-flavor-must-flow/internal/model"
)

// Options returns the distinct values of facet f across the movies that
// match every other facet selection and the term. The facet's own
// selection is ignored so choosing one value never hides its siblings.
func Options(movies []model.Movie, f Facet, q Query) []string {
	pool := q.Without(f)
	seen := make(map[string]struct{})
	var out []string
	for i := range movies {
		if !pool.Matches(&movies[i]) {
			continue
		}
		for _, v := range Values(&movies[i], f) {
			if v == "" {
				continue
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}

	c := newCollator()
	sort.Slice(out, func(i, j int) bool {
		if n := c.CompareString(out[i], out[j]); n != 0 {
			return n < 0
		}
		return strings.Compare(out[i], out[j]) < 0
	})
	if out == nil {
		out = []string{}
	}
	return out
}

// OptionCount pairs a facet value with the number of matching movies carrying it.
type OptionCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Counts is Options with per-value movie counts, in the same order.
func Counts(movies []model.Movie, f Facet, q Query) []OptionCount {
	values := Options(movies, f, q)
	counts := make(map[string]int, len(values))
	pool := q.Without(f)
	for i := range movies {
		if !pool.Matches(&movies[i]) {
			continue
		}
		seen := make(map[string]struct{})
		for _, v := range Values(&movies[i], f) {
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			counts[v]++
		}
	}
	out := make([]OptionCount, len(values))
	for i, v := range values {
		out[i] = OptionCount{Value: v, Count: counts[v]}
	}
	return out
}
