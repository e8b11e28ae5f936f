package testutil

import (
	"time"

	"github.com/Veraticus/the-flavor-must-flow/internal/model"
)

// MovieBuilder assembles a model.Movie for tests.
//
// Example:
//
//	m := testutil.NewMovie("tt0133093").
//		Title("The Matrix").
//		Year(1999).
//		Genres("Science Fiction", "Action").
//		Build()
type MovieBuilder struct {
	movie model.Movie
}

// NewMovie starts a movie with empty lists and a fresh fetch time.
func NewMovie(imdbID string) *MovieBuilder {
	m := model.PlaceholderMovie(imdbID)
	m.FetchedAt = time.Now()
	return &MovieBuilder{movie: m}
}

// Title sets the title.
func (b *MovieBuilder) Title(title string) *MovieBuilder {
	b.movie.Title = title
	return b
}

// Year sets the release year.
func (b *MovieBuilder) Year(year int) *MovieBuilder {
	b.movie.Year = year
	return b
}

// Runtime sets the runtime in minutes.
func (b *MovieBuilder) Runtime(minutes int) *MovieBuilder {
	b.movie.Runtime = minutes
	return b
}

// TMDbID sets the upstream id.
func (b *MovieBuilder) TMDbID(id int) *MovieBuilder {
	b.movie.TMDbID = id
	return b
}

// Genres sets the raw genre names.
func (b *MovieBuilder) Genres(genres ...string) *MovieBuilder {
	b.movie.Genres = genres
	return b
}

// Keywords sets the raw keywords.
func (b *MovieBuilder) Keywords(keywords ...string) *MovieBuilder {
	b.movie.Keywords = keywords
	return b
}

// Flavors sets the stored classification.
func (b *MovieBuilder) Flavors(flavors ...string) *MovieBuilder {
	b.movie.Flavors = flavors
	return b
}

// Actors sets the cast names.
func (b *MovieBuilder) Actors(actors ...string) *MovieBuilder {
	b.movie.Actors = actors
	return b
}

// Crew sets the crew names.
func (b *MovieBuilder) Crew(crew ...string) *MovieBuilder {
	b.movie.Crew = crew
	return b
}

// FetchedAt sets the fetch time.
func (b *MovieBuilder) FetchedAt(t time.Time) *MovieBuilder {
	b.movie.FetchedAt = t
	return b
}

// Build returns the movie.
func (b *MovieBuilder) Build() model.Movie {
	return b.movie
}

// Library returns a small library covering distinct genres, years and runtimes.
func Library() []model.Movie {
	return []model.Movie{
		NewMovie("tt0133093").Title("The Matrix").Year(1999).Runtime(136).TMDbID(603).
			Genres("Action", "Science Fiction").
			Keywords("artificial intelligence", "simulated reality", "dystopia", "hacker").
			Flavors("Cyberpunk", "Artificial Intelligence", "Dystopian Future").
			Actors("Keanu Reeves", "Carrie-Anne Moss").Crew("Lana Wachowski", "Lilly Wachowski").
			Build(),
		NewMovie("tt0082971").Title("Raiders of the Lost Ark").Year(1981).Runtime(115).TMDbID(85).
			Genres("Adventure", "Action").
			Keywords("archaeologist", "treasure hunt", "nazi").
			Flavors("Quest Adventure", "Jungle Adventure").
			Actors("Harrison Ford", "Karen Allen").Crew("Steven Spielberg").
			Build(),
		NewMovie("tt0081505").Title("The Shining").Year(1980).Runtime(146).TMDbID(694).
			Genres("Horror", "Thriller").
			Keywords("hotel", "isolation", "haunted house", "writer").
			Flavors("Haunted House", "Psychological Horror", "Isolation Madness").
			Actors("Jack Nicholson", "Shelley Duvall").Crew("Stanley Kubrick").
			Build(),
		NewMovie("tt0119217").Title("Good Will Hunting").Year(1997).Runtime(126).TMDbID(489).
			Genres("Drama").
			Keywords("mathematician", "therapist", "boston").
			Flavors("Coming Of Age", "Psychological Character Study").
			Actors("Matt Damon", "Robin Williams").Crew("Gus Van Sant").
			Build(),
		NewMovie("tt0266543").Title("Finding Nemo").Year(2003).Runtime(100).TMDbID(12).
			Genres("Animation", "Family").
			Keywords("clownfish", "ocean", "father son relationship").
			Flavors("Computer Animation", "Sea Adventure").
			Actors("Albert Brooks", "Ellen DeGeneres").Crew("Andrew Stanton").
			Build(),
		NewMovie("tt0000404").Build(),
	}
}
