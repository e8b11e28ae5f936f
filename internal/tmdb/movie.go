package tmdb

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/Veraticus/the-flavor-must-flow/internal/common"
	"github.com/Veraticus/the-flavor-must-flow/internal/model"
)

// maxActors is how many billed cast members are kept.
const maxActors = 10

// crewJobs are the crew credits kept on a movie.
var crewJobs = map[string]struct{}{
	"Director":   {},
	"Screenplay": {},
	"Writer":     {},
}

// MovieByIMDbID resolves an IMDb id to a TMDB movie and fetches its details,
// credits and keywords. Unknown ids return common.ErrNotFound.
func (c *Client) MovieByIMDbID(ctx context.Context, imdbID string) (*model.Movie, error) {
	tmdbID, err := c.findMovieID(ctx, imdbID)
	if err != nil {
		return nil, err
	}

	var details movieDetails
	params := url.Values{}
	params.Set("append_to_response", "credits,keywords")
	if err := c.getJSON(ctx, "/movie/"+strconv.Itoa(tmdbID), params, &details); err != nil {
		return nil, fmt.Errorf("movie details for %s: %w", imdbID, err)
	}

	movie := c.toMovie(imdbID, &details)
	return &movie, nil
}

func (c *Client) findMovieID(ctx context.Context, imdbID string) (int, error) {
	var found findResponse
	params := url.Values{}
	params.Set("external_source", "imdb_id")
	if err := c.getJSON(ctx, "/find/"+url.PathEscape(imdbID), params, &found); err != nil {
		return 0, fmt.Errorf("find %s: %w", imdbID, err)
	}
	if len(found.MovieResults) == 0 || found.MovieResults[0].ID == 0 {
		return 0, fmt.Errorf("find %s: %w", imdbID, common.ErrNotFound)
	}
	return found.MovieResults[0].ID, nil
}

func (c *Client) toMovie(imdbID string, d *movieDetails) model.Movie {
	m := model.PlaceholderMovie(imdbID)
	m.FetchedAt = c.now()
	m.TMDbID = d.ID
	if t := strings.TrimSpace(d.Title); t != "" {
		m.Title = t
	}
	m.Year = releaseYear(d.ReleaseDate)
	m.Runtime = d.Runtime
	m.Plot = d.Overview
	m.Tagline = d.Tagline
	m.PosterURL = c.imageURL(d.PosterPath)
	m.BackdropURL = c.imageURL(d.BackdropPath)

	for _, g := range d.Genres {
		if g.Name != "" {
			m.Genres = append(m.Genres, g.Name)
		}
	}

	seen := make(map[string]struct{}, len(d.Keywords.Keywords))
	for _, k := range d.Keywords.Keywords {
		name := strings.ToLower(strings.TrimSpace(k.Name))
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		m.Keywords = append(m.Keywords, name)
	}

	for _, cast := range d.Credits.Cast {
		if len(m.Actors) == maxActors {
			break
		}
		if cast.Name != "" {
			m.Actors = append(m.Actors, cast.Name)
		}
	}

	crew := make(map[string]struct{})
	for _, member := range d.Credits.Crew {
		if _, ok := crewJobs[member.Job]; !ok || member.Name == "" {
			continue
		}
		if _, dup := crew[member.Name]; dup {
			continue
		}
		crew[member.Name] = struct{}{}
		m.Crew = append(m.Crew, member.Name)
	}

	return m
}

func (c *Client) imageURL(path string) string {
	if path == "" {
		return ""
	}
	return c.imageBaseURL + path
}

// releaseYear extracts the year from a YYYY-MM-DD date, or 0 when absent.
func releaseYear(date string) int {
	if len(date) < 4 {
		return 0
	}
	y, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return y
}
