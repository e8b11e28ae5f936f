// Package model defines the core domain models used throughout the application.
package model

import "sort"

// Genre is one of the closed set of high-level movie categories.
type Genre string

// Genre constants. Any other value is dropped during normalization.
const (
	GenreAction         Genre = "action"
	GenreAdventure      Genre = "adventure"
	GenreAnimation      Genre = "animation"
	GenreComedy         Genre = "comedy"
	GenreCrime          Genre = "crime"
	GenreDrama          Genre = "drama"
	GenreFamily         Genre = "family"
	GenreFantasy        Genre = "fantasy"
	GenreHistory        Genre = "history"
	GenreHorror         Genre = "horror"
	GenreMusic          Genre = "music"
	GenreMystery        Genre = "mystery"
	GenreRomance        Genre = "romance"
	GenreScienceFiction Genre = "science fiction"
	GenreThriller       Genre = "thriller"
	GenreWar            Genre = "war"
	GenreWestern        Genre = "western"
	GenreDocumentary    Genre = "documentary"
)

var allGenres = map[Genre]struct{}{
	GenreAction: {}, GenreAdventure: {}, GenreAnimation: {}, GenreComedy: {},
	GenreCrime: {}, GenreDrama: {}, GenreFamily: {}, GenreFantasy: {},
	GenreHistory: {}, GenreHorror: {}, GenreMusic: {}, GenreMystery: {},
	GenreRomance: {}, GenreScienceFiction: {}, GenreThriller: {}, GenreWar: {},
	GenreWestern: {}, GenreDocumentary: {},
}

// ParseGenre validates an already-normalized genre string.
// It reports false for anything outside the closed set.
func ParseGenre(s string) (Genre, bool) {
	g := Genre(s)
	if _, ok := allGenres[g]; !ok {
		return "", false
	}
	return g, true
}

// IsValid reports whether g belongs to the closed genre set.
func (g Genre) IsValid() bool {
	_, ok := allGenres[g]
	return ok
}

// AllGenres returns every genre in ascending order.
func AllGenres() []Genre {
	out := make([]Genre, 0, len(allGenres))
	for g := range allGenres {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Signal is a coarse thematic token derived from keywords, e.g. "vampire".
// Signals are never supplied by callers; they only come out of a signal table.
type Signal string

// Flavor is an output sub-genre tag such as "Cyberpunk" or "Heist".
type Flavor string
