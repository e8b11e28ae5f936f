package normalize

// genreAliases maps folded genre spellings to a canonical genre name.
// Values must already be folded and must not themselves be keys.
//
//nolint:gochecknoglobals // Static lookup table
var genreAliases = map[string]string{
	"sci fi":          "science fiction",
	"sci-fi":          "science fiction",
	"scifi":           "science fiction",
	"science-fiction": "science fiction",
	"historical":      "history",
	"animated":        "animation",
	"musical":         "music",
	"documentaries":   "documentary",
}

// keywordAliases maps folded keyword spellings to the canonical keyword.
// The signal table build uses the same table, so runtime lookups line up with its keys.
//
//nolint:gochecknoglobals // Static lookup table
var keywordAliases = map[string]string{
	"ai":                   "artificial intelligence",
	"a.i.":                 "artificial intelligence",
	"a.i":                  "artificial intelligence",
	"neo noir":             "neo-noir",
	"hand drawn":           "hand-drawn",
	"hand drawn animation": "hand-drawn animation",
	"one man army":         "one-man army",
	"gun-fu":               "gun fu",
	"serial-killer":        "serial killer",
	"body-swap":            "body swap",
	"vr":                   "virtual reality",
	"docu series":          "docuseries",
	"docu-series":          "docuseries",
	"sci fi":               "science fiction",
	"sci-fi":               "science fiction",
}

// GenreAliases returns a copy of the genre alias table.
func GenreAliases() map[string]string {
	return copyTable(genreAliases)
}

// KeywordAliases returns a copy of the keyword alias table.
func KeywordAliases() map[string]string {
	return copyTable(keywordAliases)
}

func copyTable(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
