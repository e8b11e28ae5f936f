package flavor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/the-flavor-must-flow/internal/common"
	"github.com/Veraticus/the-flavor-must-flow/internal/model"
)

func TestPredicates(t *testing.T) {
	c := NewContext(
		[]string{"Horror", "sci-fi"},
		[]string{"Zombie", "bank robbery", "neo-noir"},
		testTable(),
	)

	tests := []struct {
		name      string
		predicate Predicate
		expected  bool
	}{
		{"any genres hit", AnyGenres{model.GenreComedy, model.GenreHorror}, true},
		{"any genres miss", AnyGenres{model.GenreComedy}, false},
		{"any genres empty", AnyGenres{}, false},
		{"all genres hit", AllGenres{model.GenreHorror, model.GenreScienceFiction}, true},
		{"all genres partial", AllGenres{model.GenreHorror, model.GenreComedy}, false},
		{"all genres empty", AllGenres{}, true},
		{"any signals hit", AnySignals{"vampire", "robbery"}, true},
		{"any signals miss", AnySignals{"vampire"}, false},
		{"all signals hit", AllSignals{"heist", "robbery", "zombie"}, true},
		{"all signals partial", AllSignals{"heist", "space"}, false},
		{"any keywords normalizes", AnyKeywords{"  ZOMBIE "}, true},
		{"any keywords alias", AnyKeywords{"Neo Noir"}, true},
		{"all keywords", AllKeywords{"zombie", "bank robbery"}, true},
		{"all keywords partial", AllKeywords{"zombie", "heist"}, false},
		{"pattern hit", MustKeywordPattern(`robbery|burglary`), true},
		{"pattern needs word boundary", MustKeywordPattern(`rob`), false},
		{"pattern every alternative anchored", MustKeywordPattern(`xyz|noir`), true},
		{"zero pattern", KeywordPattern{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.predicate.Match(c))
		})
	}
}

func TestNewKeywordPattern(t *testing.T) {
	_, err := NewKeywordPattern(`(broken`)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidRule)

	_, err = NewKeywordPattern("")
	require.Error(t, err)

	assert.Panics(t, func() { MustKeywordPattern(`[`) })

	p, err := NewKeywordPattern(`time (?:loop|travel)`)
	require.NoError(t, err)
	assert.Equal(t, "keyword matches /time (?:loop|travel)/", p.String())
}

func TestPredicateStrings(t *testing.T) {
	assert.Equal(t, "any genre [horror, war]", AnyGenres{"horror", "war"}.String())
	assert.Equal(t, "all signals [heist]", AllSignals{"heist"}.String())
	assert.Equal(t, "any keyword [cgi, computer animation]", AnyKeywords{"cgi", "computer animation"}.String())
}
