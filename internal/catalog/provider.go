package catalog

import (
	"context"
	"sort"

	"github.com/vmunix/mediamatch/pkg/medianame"
	"github.com/vmunix/mediamatch/pkg/mediainfo"
)

// searchFloor is the minimum name similarity for a catalog entry to
// count as a search hit. Loose on purpose: the matcher's own acceptance
// ladder does the real filtering.
const searchFloor = 0.5

// SeriesProvider answers series lookups from the catalog.
type SeriesProvider struct {
	c *Catalog
}

// SeriesProvider returns the catalog's series lookup port.
func (c *Catalog) SeriesProvider() *SeriesProvider { return &SeriesProvider{c: c} }

func (p *SeriesProvider) Name() string { return "catalog" }

// Search returns catalog series whose names resemble the query, best
// score first.
func (p *SeriesProvider) Search(ctx context.Context, query, locale string) ([]mediainfo.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type hit struct {
		result mediainfo.SearchResult
		score  float64
	}
	var hits []hit
	for _, s := range p.c.Series {
		names := append([]string{s.Name}, s.Aliases...)
		score := medianame.BestScore(query, names)
		if score < searchFloor {
			continue
		}
		hits = append(hits, hit{
			result: mediainfo.SearchResult{ID: s.ID, Name: s.Name, Aliases: s.Aliases, Year: s.Year},
			score:  score,
		})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	results := make([]mediainfo.SearchResult, len(hits))
	for i, h := range hits {
		results[i] = h.result
	}
	return results, nil
}

// Episodes returns the stored episode list of a series. The catalog
// carries a single numbering, so the requested order only tags the
// attached series info.
func (p *SeriesProvider) Episodes(ctx context.Context, series mediainfo.SearchResult, order mediainfo.SortOrder, locale string) ([]*mediainfo.Episode, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, s := range p.c.Series {
		if s.ID != series.ID {
			continue
		}
		info := &mediainfo.SeriesInfo{ID: s.ID, Name: s.Name, Year: s.Year, Order: order}
		eps := make([]*mediainfo.Episode, len(s.Episodes))
		for i, e := range s.Episodes {
			eps[i] = &mediainfo.Episode{
				ID:       e.ID,
				Title:    e.Title,
				Season:   e.Season,
				Episode:  e.Episode,
				Absolute: e.Absolute,
				AirDate:  e.AirDate,
				Series:   info,
			}
		}
		return eps, nil
	}
	return nil, nil
}

// MovieProvider answers movie lookups from the catalog.
type MovieProvider struct {
	c *Catalog
}

// MovieProvider returns the catalog's movie lookup port.
func (c *Catalog) MovieProvider() *MovieProvider { return &MovieProvider{c: c} }

func (p *MovieProvider) Name() string { return "catalog" }

// Search returns catalog movies whose names resemble the query, best
// score first. A non-zero year keeps only entries of that year.
func (p *MovieProvider) Search(ctx context.Context, query string, year int, locale string) ([]*mediainfo.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type hit struct {
		movie *mediainfo.Movie
		score float64
	}
	var hits []hit
	for _, e := range p.c.Movies {
		if year > 0 && e.Year > 0 && e.Year != year {
			continue
		}
		names := append([]string{e.Name}, e.Aliases...)
		score := medianame.BestScore(query, names)
		if score < searchFloor {
			continue
		}
		hits = append(hits, hit{movie: e.record(), score: score})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	movies := make([]*mediainfo.Movie, len(hits))
	for i, h := range hits {
		movies[i] = h.movie
	}
	return movies, nil
}

// Lookup finds a movie by IMDb identifier.
func (p *MovieProvider) Lookup(ctx context.Context, imdbID string) (*mediainfo.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, e := range p.c.Movies {
		if e.IMDBID == imdbID {
			return e.record(), nil
		}
	}
	return nil, nil
}

func (e MovieEntry) record() *mediainfo.Movie {
	return &mediainfo.Movie{
		Name:    e.Name,
		Year:    e.Year,
		IMDBID:  e.IMDBID,
		Aliases: append([]string(nil), e.Aliases...),
	}
}
