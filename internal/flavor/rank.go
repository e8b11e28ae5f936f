package flavor

import (
	"sort"
	"strings"

	"github.com/Veraticus/the-flavor-must-flow/internal/model"
)

// Scores accumulates per-flavor weight for one classification call.
type Scores map[model.Flavor]int

// Add accumulates n onto f, creating the entry when absent.
func (s Scores) Add(f model.Flavor, n int) {
	s[f] += n
}

// Ranking is one ranked flavor with its final score.
type Ranking struct {
	Flavor model.Flavor `json:"flavor"`
	Score  int          `json:"score"`
}

// Ranked orders scores descending, breaking ties by ordinal flavor comparison.
// Every key is kept, including scores at or below zero.
func Ranked(scores Scores) []Ranking {
	out := make([]Ranking, 0, len(scores))
	for f, n := range scores {
		out = append(out, Ranking{Flavor: f, Score: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return strings.Compare(string(out[i].Flavor), string(out[j].Flavor)) < 0
	})
	return out
}

// Rank returns the flavors of scores in ranked order.
func Rank(scores Scores) []model.Flavor {
	ranked := Ranked(scores)
	out := make([]model.Flavor, len(ranked))
	for i, r := range ranked {
		out[i] = r.Flavor
	}
	return out
}
