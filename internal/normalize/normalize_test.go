package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/Veraticus/the-flavor-must-flow/internal/model"
)

func TestText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"whitespace only", "   \t\n ", ""},
		{"trim and lowercase", "  Time Travel  ", "time travel"},
		{"collapse whitespace", "haunted \t\n  house", "haunted house"},
		{"curly apostrophe", "Director’s Cut", "director's cut"},
		{"left quote", "‘quoted'", "'quoted'"},
		{"en dash", "coming–of–age", "coming-of-age"},
		{"em dash", "post—apocalyptic", "post-apocalyptic"},
		{"non-breaking space", "found\u00a0footage", "found footage"},
		{"keeps other punctuation", "A.I.", "a.i."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Text(tt.input))
		})
	}
}

func TestKeyword(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"AI", "artificial intelligence"},
		{"a.i.", "artificial intelligence"},
		{" A.I. ", "artificial intelligence"},
		{"Neo Noir", "neo-noir"},
		{"serial-killer", "serial killer"},
		{"VR", "virtual reality"},
		{"Sci Fi", "science fiction"},
		{"vampire", "vampire"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Keyword(tt.input))
		})
	}
}

func TestGenre(t *testing.T) {
	tests := []struct {
		input    string
		expected model.Genre
		ok       bool
	}{
		{"Science Fiction", model.GenreScienceFiction, true},
		{"sci fi", model.GenreScienceFiction, true},
		{"Sci-Fi", model.GenreScienceFiction, true},
		{"science–fiction", model.GenreScienceFiction, true},
		{"Historical", model.GenreHistory, true},
		{"HORROR", model.GenreHorror, true},
		{"TV Movie", "", false},
		{"", "", false},
		// keyword aliases never leak into genres
		{"ai", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			g, ok := Genre(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, g)
		})
	}
}

func TestGenreAliasesNotAppliedToKeywords(t *testing.T) {
	assert.Equal(t, "historical", Keyword("Historical"))
	assert.Equal(t, "animated", Keyword("animated"))
}

func TestKeywordsAndGenresDedup(t *testing.T) {
	kws := Keywords([]string{"AI", "artificial intelligence", "", "  ", "Robot", "robot"})
	assert.Equal(t, []string{"artificial intelligence", "robot"}, kws)

	genres := Genres([]string{"Sci-Fi", "science fiction", "Western", "Reality", ""})
	assert.Equal(t, []model.Genre{model.GenreScienceFiction, model.GenreWestern}, genres)
}

func TestAliasTablesAreFixedPoints(t *testing.T) {
	for _, table := range []map[string]string{GenreAliases(), KeywordAliases()} {
		for key, value := range table {
			require.Equal(t, key, Text(key), "alias key %q must already be folded", key)
			require.Equal(t, value, Text(value), "alias value %q must already be folded", value)
			_, chained := table[value]
			require.False(t, chained, "alias value %q must not itself be an alias", value)
		}
	}
}

func TestGenreAliasesResolveToKnownGenres(t *testing.T) {
	for key, value := range GenreAliases() {
		_, ok := model.ParseGenre(value)
		assert.True(t, ok, "alias %q points at unknown genre %q", key, value)
	}
}

func TestNormalizationIsIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.OneOf(
			rapid.String(),
			rapid.SampledFrom([]string{"Sci Fi", " A.I. ", "coming—of—age", "Director’s  Cut", "VR"}),
		).Draw(t, "s")

		once := Text(s)
		if Text(once) != once {
			t.Fatalf("Text not idempotent: %q -> %q -> %q", s, once, Text(once))
		}
		kw := Keyword(s)
		if Keyword(kw) != kw {
			t.Fatalf("Keyword not idempotent: %q -> %q -> %q", s, kw, Keyword(kw))
		}
		gn := GenreName(s)
		if GenreName(gn) != gn {
			t.Fatalf("GenreName not idempotent: %q -> %q -> %q", s, gn, GenreName(gn))
		}
	})
}
