package model

import "time"

// Movie is a cached movie record as stored in the library.
// Flavors holds the classifier output verbatim, in ranked order.
type Movie struct {
	FetchedAt    time.Time  `json:"fetched_at"`
	ClassifiedAt *time.Time `json:"classified_at,omitempty"`
	IMDbID       string     `json:"imdb_id"`
	Title        string     `json:"title"`
	Plot         string     `json:"plot"`
	Tagline      string     `json:"tagline"`
	PosterURL    string     `json:"poster_url"`
	BackdropURL  string     `json:"backdrop_url"`
	Genres       []string   `json:"genres"`
	Keywords     []string   `json:"keywords"`
	Flavors      []string   `json:"flavors"`
	Actors       []string   `json:"actors"`
	Crew         []string   `json:"crew"`
	AltPosters   []string   `json:"alt_posters"`
	TMDbID       int        `json:"tmdb_id"`
	Year         int        `json:"year"`
	Runtime      int        `json:"runtime"`
}

// PlaceholderMovie returns the record stored when no metadata exists for an id.
func PlaceholderMovie(imdbID string) Movie {
	return Movie{
		IMDbID:     imdbID,
		Title:      imdbID,
		Genres:     []string{},
		Keywords:   []string{},
		Flavors:    []string{},
		Actors:     []string{},
		Crew:       []string{},
		AltPosters: []string{},
	}
}

// IsPlaceholder reports whether the record carries no fetched metadata.
func (m Movie) IsPlaceholder() bool {
	return m.TMDbID == 0 && m.Title == m.IMDbID && len(m.Genres) == 0 && len(m.Keywords) == 0
}
