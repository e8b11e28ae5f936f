package flavor

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Veraticus/the-flavor-must-flow/internal/model"
)

func TestNewContext(t *testing.T) {
	c := NewContext(
		[]string{"Science-Fiction", "sci fi", "TV Movie", "", "Horror"},
		[]string{"Spaceship", " spaceship ", "Unknown Thing", "", "ZOMBIE"},
		testTable(),
	)

	assert.Equal(t, []model.Genre{model.GenreHorror, model.GenreScienceFiction}, c.Genres())
	assert.Equal(t, []string{"spaceship", "unknown thing", "zombie"}, c.Keywords())
	assert.Equal(t, []model.Signal{"space", "spaceship", "zombie"}, c.Signals())
	assert.False(t, c.IsEmpty())

	assert.True(t, c.HasGenre(model.GenreScienceFiction))
	assert.False(t, c.HasGenre("tv movie"))
	assert.True(t, c.HasAnyGenre(model.GenreWar, model.GenreHorror))
	assert.False(t, c.HasAnyGenre())
	assert.True(t, c.HasSignal("space"))
	assert.False(t, c.HasAnySignal("heist", "robbery"))
	assert.True(t, c.HasKeyword("Unknown  Thing"))
	assert.True(t, c.Match(regexp.MustCompile(`^unknown`)))
	assert.False(t, c.Match(nil))
}

func TestContextAccessorsReturnCopies(t *testing.T) {
	c := NewContext([]string{"horror"}, []string{"zombie"}, testTable())

	c.Genres()[0] = model.GenreComedy
	c.Keywords()[0] = "heist"
	c.Signals()[0] = "heist"

	assert.True(t, c.HasGenre(model.GenreHorror))
	assert.Equal(t, []string{"zombie"}, c.Keywords())
	assert.Equal(t, []model.Signal{"zombie"}, c.Signals())
}

func TestEmptyContext(t *testing.T) {
	c := NewContext(nil, nil, nil)
	assert.True(t, c.IsEmpty())
	assert.Empty(t, c.Signals())
}
