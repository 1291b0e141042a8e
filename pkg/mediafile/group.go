package mediafile

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/vmunix/mediamatch/pkg/medianame"
)

// Type is a plausible content type of a file group.
type Type int

const (
	TypeUnknown Type = iota
	TypeMovie
	TypeSeries
	TypeAnime
	TypeMusic
)

func (t Type) String() string {
	switch t {
	case TypeMovie:
		return "movie"
	case TypeSeries:
		return "series"
	case TypeAnime:
		return "anime"
	case TypeMusic:
		return "music"
	default:
		return "unknown"
	}
}

// Group is a partition of the input file set tagged with the content
// types it plausibly belongs to. A group is unambiguous iff it carries
// exactly one type.
type Group struct {
	Types []Type
	Files []string
}

// Unambiguous reports whether the group carries exactly one type.
func (g Group) Unambiguous() bool { return len(g.Types) == 1 }

// Type returns the single type of an unambiguous group.
func (g Group) Type() Type {
	if len(g.Types) == 1 {
		return g.Types[0]
	}
	return TypeUnknown
}

var animeMarkers = []string{"[sub", "[dub", "bdrip 10bit", "[1080p]", "[720p]"}

// detectTypes returns the plausible content types of a single file.
func detectTypes(path string) []Type {
	switch ClassOf(path) {
	case ClassAudio:
		return []Type{TypeMusic}
	case ClassVideo, ClassSubtitle:
	default:
		return []Type{TypeUnknown}
	}

	name := filepath.Base(path)
	info, hasEpisode := medianame.ParseEpisode(name)

	if hasEpisode {
		if info.HasNumbers() || !info.AirDate.IsZero() {
			return []Type{TypeSeries}
		}
		// Absolute-only numbering is the anime convention, but plain
		// sequels ("Movie - 02") look the same, so keep both in play
		// unless a bracket tag tips the scale.
		if info.Absolute > 0 {
			if hasAnimeMarker(name) {
				return []Type{TypeAnime}
			}
			return []Type{TypeAnime, TypeMovie}
		}
	}

	if medianame.Year(name) > 0 {
		return []Type{TypeMovie}
	}
	return []Type{TypeMovie, TypeSeries}
}

func hasAnimeMarker(name string) bool {
	lower := strings.ToLower(name)
	// Fansub group tag at the very start: "[Group] Show - 01"
	if strings.HasPrefix(lower, "[") {
		return true
	}
	for _, m := range animeMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// GroupByType partitions files into type-tagged groups using name
// heuristics. Files in the same folder with the same detected type set
// are grouped together; group order follows first appearance in the
// input.
func GroupByType(files []string) []Group {
	type key struct {
		dir   string
		types string
	}
	index := make(map[key]int)
	var groups []Group

	for _, f := range files {
		types := detectTypes(f)
		k := key{dir: filepath.Dir(f), types: typesKey(types)}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Types: types})
		}
		groups[i].Files = append(groups[i].Files, f)
	}
	return groups
}

func typesKey(types []Type) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}
