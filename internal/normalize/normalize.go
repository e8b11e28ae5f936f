// Package normalize canonicalizes free-text genre and keyword strings.
//
// Genre and keyword tokens share the same text folding but resolve through
// separate alias tables; a keyword alias is never applied to a genre and vice versa.
package normalize

import (
	"strings"

	"github.com/Veraticus/the-flavor-must-flow/internal/model"
)

var punctuation = strings.NewReplacer(
	"‘", "'", // left single quotation mark
	"’", "'", // right single quotation mark
	"‚", "'", // single low-9 quotation mark
	"‛", "'", // single high-reversed-9 quotation mark
	"′", "'", // prime
	"–", "-", // en dash
	"—", "-", // em dash
)

// Text folds a raw string: trim, lowercase, unify quotes and dashes,
// collapse whitespace runs to a single space. Empty input yields "".
func Text(raw string) string {
	if raw == "" {
		return ""
	}
	s := strings.ToLower(strings.TrimSpace(raw))
	s = punctuation.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// Keyword folds a keyword and resolves keyword aliases.
// The result is the form used as a key in the signal table.
func Keyword(raw string) string {
	n := Text(raw)
	if canonical, ok := keywordAliases[n]; ok {
		return canonical
	}
	return n
}

// GenreName folds a genre and resolves genre aliases without validating it.
func GenreName(raw string) string {
	n := Text(raw)
	if canonical, ok := genreAliases[n]; ok {
		return canonical
	}
	return n
}

// Genre resolves a raw genre into the closed genre set.
// Unknown or empty genres report false and are meant to be dropped silently.
func Genre(raw string) (model.Genre, bool) {
	return model.ParseGenre(GenreName(raw))
}

// Keywords canonicalizes a list, dropping empties and duplicates, preserving first-seen order.
func Keywords(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, r := range raw {
		k := Keyword(r)
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// Genres resolves a list into known genres, dropping unknowns and duplicates.
func Genres(raw []string) []model.Genre {
	out := make([]model.Genre, 0, len(raw))
	seen := make(map[model.Genre]struct{}, len(raw))
	for _, r := range raw {
		g, ok := Genre(r)
		if !ok {
			continue
		}
		if _, dup := seen[g]; dup {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	return out
}
