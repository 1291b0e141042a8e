// Package mediainfo defines the metadata records produced by
// identification providers: series episodes, movies, and music tracks.
package mediainfo

import "time"

// SortOrder selects the episode numbering scheme used when fetching
// episode lists.
type SortOrder int

const (
	OrderAirdate SortOrder = iota
	OrderDVD
	OrderAbsolute
)

func (o SortOrder) String() string {
	switch o {
	case OrderDVD:
		return "dvd"
	case OrderAbsolute:
		return "absolute"
	default:
		return "airdate"
	}
}

// Record is any metadata record that can be paired with a file.
type Record interface {
	// RecordID returns a stable provider-scoped identifier, or "" when
	// the provider did not supply one.
	RecordID() string
	// RecordName returns the primary display name.
	RecordName() string
}

// SearchResult is a provider search hit, prior to fetching details.
type SearchResult struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Aliases []string `json:"aliases,omitempty"`
	Year    int      `json:"year,omitempty"`
}

// Names returns the primary name followed by all aliases.
func (r SearchResult) Names() []string {
	names := make([]string, 0, len(r.Aliases)+1)
	names = append(names, r.Name)
	names = append(names, r.Aliases...)
	return names
}

// SeriesInfo describes the series an episode belongs to.
type SeriesInfo struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Year    int       `json:"year,omitempty"`
	Order   SortOrder `json:"order"`
	Network string    `json:"network,omitempty"`
}

// Episode is a single episode of a series.
type Episode struct {
	ID       string      `json:"id"`
	Title    string      `json:"title"`
	Season   int         `json:"season"`
	Episode  int         `json:"episode"`
	Absolute int         `json:"absolute,omitempty"`
	Special  int         `json:"special,omitempty"`
	AirDate  time.Time   `json:"air_date,omitempty"`
	Series   *SeriesInfo `json:"series,omitempty"`
}

func (e *Episode) RecordID() string   { return e.ID }
func (e *Episode) RecordName() string { return e.Title }

// SeriesName returns the name of the owning series, or "".
func (e *Episode) SeriesName() string {
	if e.Series == nil {
		return ""
	}
	return e.Series.Name
}

// Clone returns an independent deep copy.
func (e *Episode) Clone() *Episode {
	c := *e
	if e.Series != nil {
		s := *e.Series
		c.Series = &s
	}
	return &c
}

// Movie is a single movie, optionally tagged as one part of a
// multi-disc release.
type Movie struct {
	Name      string   `json:"name"`
	Year      int      `json:"year,omitempty"`
	IMDBID    string   `json:"imdb_id,omitempty"`
	TMDBID    int      `json:"tmdb_id,omitempty"`
	Aliases   []string `json:"aliases,omitempty"`
	PartIndex int      `json:"part_index,omitempty"`
	PartCount int      `json:"part_count,omitempty"`
}

func (m *Movie) RecordID() string {
	if m.IMDBID != "" {
		return m.IMDBID
	}
	return ""
}

func (m *Movie) RecordName() string { return m.Name }

// Names returns the primary name followed by all aliases.
func (m *Movie) Names() []string {
	names := make([]string, 0, len(m.Aliases)+1)
	names = append(names, m.Name)
	names = append(names, m.Aliases...)
	return names
}

// Clone returns an independent deep copy.
func (m *Movie) Clone() *Movie {
	c := *m
	if len(m.Aliases) > 0 {
		c.Aliases = append([]string(nil), m.Aliases...)
	}
	return &c
}

// WithPart returns a copy tagged as part i of n.
func (m *Movie) WithPart(i, n int) *Movie {
	c := m.Clone()
	c.PartIndex = i
	c.PartCount = n
	return c
}

// AudioTrack is a single music track.
type AudioTrack struct {
	ID     string `json:"id"`
	Artist string `json:"artist"`
	Title  string `json:"title"`
	Album  string `json:"album,omitempty"`
	Track  int    `json:"track,omitempty"`
}

func (t *AudioTrack) RecordID() string   { return t.ID }
func (t *AudioTrack) RecordName() string { return t.Title }

// Clone returns an independent copy.
func (t *AudioTrack) Clone() *AudioTrack {
	c := *t
	return &c
}

// Equal reports whether two records identify the same metadata entity.
// Records with stable IDs compare by ID; otherwise comparison falls
// back to structural identity of name-bearing fields.
func Equal(a, b Record) bool {
	if a == nil || b == nil {
		return a == b
	}
	if id := a.RecordID(); id != "" && id == b.RecordID() {
		return true
	}
	am, aok := a.(*Movie)
	bm, bok := b.(*Movie)
	if aok && bok {
		return am.Name == bm.Name && am.Year == bm.Year
	}
	ae, aok := a.(*Episode)
	be, bok := b.(*Episode)
	if aok && bok {
		return ae.SeriesName() == be.SeriesName() &&
			ae.Season == be.Season && ae.Episode == be.Episode &&
			ae.Special == be.Special
	}
	return false
}
