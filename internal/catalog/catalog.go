// Package catalog serves identification lookups from a local TOML
// catalog file, for offline runs and dry runs without network
// providers.
package catalog

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Catalog is the parsed catalog file.
type Catalog struct {
	Series []Series     `toml:"series"`
	Movies []MovieEntry `toml:"movies"`
}

// Series is one known series with its episode list.
type Series struct {
	ID       string         `toml:"id"`
	Name     string         `toml:"name"`
	Aliases  []string       `toml:"aliases"`
	Year     int            `toml:"year"`
	Episodes []EpisodeEntry `toml:"episodes"`
}

// EpisodeEntry is one known episode.
type EpisodeEntry struct {
	ID       string    `toml:"id"`
	Title    string    `toml:"title"`
	Season   int       `toml:"season"`
	Episode  int       `toml:"episode"`
	Absolute int       `toml:"absolute"`
	AirDate  time.Time `toml:"air_date"`
}

// MovieEntry is one known movie.
type MovieEntry struct {
	Name    string   `toml:"name"`
	Year    int      `toml:"year"`
	IMDBID  string   `toml:"imdb_id"`
	Aliases []string `toml:"aliases"`
}

// Load reads and parses a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return Parse(string(data))
}

// Parse parses catalog content.
func Parse(content string) (*Catalog, error) {
	var c Catalog
	if _, err := toml.Decode(content, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return &c, nil
}
