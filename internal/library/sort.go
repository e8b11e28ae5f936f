package library

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Veraticus/the-flavor-must-flow/internal/model"
)

var leadingArticle = regexp.MustCompile(`(?i)^(?:the|a|an)\s+`)

// SortTitle strips a leading English article for ordering.
func SortTitle(title string) string {
	return strings.TrimSpace(leadingArticle.ReplaceAllString(strings.TrimSpace(title), ""))
}

// newCollator returns a case- and diacritic-insensitive collator that orders
// digit runs numerically. Collators are not safe for concurrent use.
func newCollator() *collate.Collator {
	return collate.New(language.Und, collate.Loose, collate.Numeric)
}

// Sort returns a sorted copy of movies. Year, runtime and added orderings
// put unknown values last in either direction and break ties by title
// ascending.
func Sort(movies []model.Movie, key SortKey, descending bool) []model.Movie {
	c := newCollator()

	// Titles are kept per element; ids may repeat or be empty.
	type entry struct {
		movie *model.Movie
		title string
	}
	entries := make([]entry, len(movies))
	for i := range movies {
		entries[i] = entry{movie: &movies[i], title: SortTitle(movies[i].Title)}
	}
	byTitle := func(a, b *entry) int {
		if n := c.CompareString(a.title, b.title); n != 0 {
			return n
		}
		return strings.Compare(a.movie.IMDbID, b.movie.IMDbID)
	}

	dir := 1
	if descending {
		dir = -1
	}

	numeric := func(value func(*model.Movie) int64) func(i, j int) bool {
		return func(i, j int) bool {
			a, b := &entries[i], &entries[j]
			va, vb := value(a.movie), value(b.movie)
			switch {
			case va == vb:
				return byTitle(a, b) < 0
			case va == 0:
				return false
			case vb == 0:
				return true
			case va < vb:
				return dir > 0
			default:
				return dir < 0
			}
		}
	}

	switch key {
	case SortYear:
		sort.SliceStable(entries, numeric(func(m *model.Movie) int64 { return int64(m.Year) }))
	case SortRuntime:
		sort.SliceStable(entries, numeric(func(m *model.Movie) int64 { return int64(m.Runtime) }))
	case SortAdded:
		sort.SliceStable(entries, numeric(func(m *model.Movie) int64 {
			if m.FetchedAt.IsZero() {
				return 0
			}
			return m.FetchedAt.UnixNano()
		}))
	default:
		sort.SliceStable(entries, func(i, j int) bool {
			return dir*byTitle(&entries[i], &entries[j]) < 0
		})
	}

	out := make([]model.Movie, len(entries))
	for i, e := range entries {
		out[i] = *e.movie
	}
	return out
}

// Run filters movies by q and sorts the result.
func Run(movies []model.Movie, q Query) []model.Movie {
	return Sort(Filter(movies, q), q.Sort, q.Descending)
}
