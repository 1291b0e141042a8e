// Package medianame parses and compares noisy media filenames.
package medianame

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Episode numbering patterns, most explicit first.
var (
	// S01E02, s01e02e03, S01E05-E07
	seasonEpisodeRegex = regexp.MustCompile(`(?i)\bS(\d{1,2})[ ._-]?E(\d{1,3})((?:[ ._-]?E\d{1,3})*|(?:-E?\d{1,3})?)\b`)
	// 1x02, 01x02-03
	crossEpisodeRegex = regexp.MustCompile(`(?i)\b(\d{1,2})x(\d{1,3})(?:-(\d{1,3}))?\b`)
	// Daily shows: 2020.01.16, 2020-01-16
	airdateRegex = regexp.MustCompile(`\b(19|20)(\d{2})[ ._-](\d{2})[ ._-](\d{2})\b`)
	// Anime absolute numbering: "Show - 012", "Show - 012v2"
	absoluteRegex = regexp.MustCompile(`(?i)[ ._]-[ ._](\d{2,3})(?:v\d)?\b`)

	yearRegex = regexp.MustCompile(`\b(19|20)\d{2}\b`)

	// Multi-disc markers: CD1, cd 2, disc3, disk 1, part2, pt.1
	partRegex = regexp.MustCompile(`(?i)\b(?:cd|dis[ck]|part|pt)[ ._-]?(\d{1,2})\b`)

	// Release tokens that terminate a title when no year is present.
	releaseTokenRegex = regexp.MustCompile(`(?i)\b(2160p|1080p|720p|480p|4k|uhd|bluray|blu-ray|bdrip|brrip|remux|web-?dl|web-?rip|hdtv|dvdrip|dvd|x264|x265|h\.?264|h\.?265|hevc|xvid|aac|ac3|eac3|dts|truehd|atmos|flac|proper|repack|internal|limited|extended|unrated|multi|dubbed|subbed)\b`)
)

// EpisodeInfo holds episode numbering parsed from a single filename.
type EpisodeInfo struct {
	Season   int
	Episodes []int     // all episodes referenced by the name, in order
	Absolute int       // anime-style absolute number, 0 if none
	AirDate  time.Time // daily-show date, zero if none
}

// HasNumbers reports whether an explicit season/episode pair was found.
// Absolute numbers and airdates alone do not qualify.
func (e EpisodeInfo) HasNumbers() bool {
	return e.Season > 0 && len(e.Episodes) > 0
}

// ParseEpisode extracts episode numbering from a filename.
// Returns ok=false when the name carries no recognizable numbering.
func ParseEpisode(name string) (EpisodeInfo, bool) {
	base := stripExt(name)
	var info EpisodeInfo

	if m := seasonEpisodeRegex.FindStringSubmatch(base); m != nil {
		info.Season, _ = strconv.Atoi(m[1])
		first, _ := strconv.Atoi(m[2])
		info.Episodes = append(info.Episodes, first)
		extras := extraEpisodeDigits(m[3])
		if strings.HasPrefix(m[3], "-") && len(extras) == 1 && extras[0] > first {
			// Dash form is a range: S01E05-E07 covers 5 through 7.
			for ep := first + 1; ep <= extras[0]; ep++ {
				info.Episodes = append(info.Episodes, ep)
			}
		} else {
			for _, extra := range extras {
				if extra != first {
					info.Episodes = append(info.Episodes, extra)
				}
			}
		}
		return info, true
	}

	if m := crossEpisodeRegex.FindStringSubmatch(base); m != nil {
		info.Season, _ = strconv.Atoi(m[1])
		first, _ := strconv.Atoi(m[2])
		info.Episodes = append(info.Episodes, first)
		if m[3] != "" {
			last, _ := strconv.Atoi(m[3])
			for ep := first + 1; ep <= last; ep++ {
				info.Episodes = append(info.Episodes, ep)
			}
		}
		return info, true
	}

	if m := airdateRegex.FindStringSubmatch(base); m != nil {
		year, _ := strconv.Atoi(m[1] + m[2])
		month, _ := strconv.Atoi(m[3])
		day, _ := strconv.Atoi(m[4])
		if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			info.AirDate = time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
			return info, true
		}
	}

	if m := absoluteRegex.FindStringSubmatch(base); m != nil {
		info.Absolute, _ = strconv.Atoi(m[1])
		return info, true
	}

	return info, false
}

var digitsRegex = regexp.MustCompile(`\d{1,3}`)

func extraEpisodeDigits(s string) []int {
	var eps []int
	for _, m := range digitsRegex.FindAllString(s, -1) {
		n, _ := strconv.Atoi(m)
		eps = append(eps, n)
	}
	return eps
}

// SeriesName derives a series name from the part of the filename
// preceding its episode numbering. Returns "" when the name has no
// numbering or no usable prefix.
func SeriesName(name string) string {
	base := stripExt(name)

	idx := -1
	if loc := seasonEpisodeRegex.FindStringIndex(base); loc != nil {
		idx = loc[0]
	} else if loc := crossEpisodeRegex.FindStringIndex(base); loc != nil {
		idx = loc[0]
	} else if loc := airdateRegex.FindStringIndex(base); loc != nil {
		idx = loc[0]
	} else if loc := absoluteRegex.FindStringIndex(base); loc != nil {
		idx = loc[0]
	}
	if idx <= 0 {
		return ""
	}

	return Normalize(base[:idx])
}

// Year extracts a release year from a filename, or 0.
// When several candidates appear (e.g., "2001.A.Space.Odyssey.1968"),
// the last one wins, since titles lead and release years trail.
func Year(name string) int {
	matches := yearRegex.FindAllString(stripExt(name), -1)
	if len(matches) == 0 {
		return 0
	}
	y, _ := strconv.Atoi(matches[len(matches)-1])
	return y
}

// PartIndex extracts a multi-disc part number (CD1, part 2, ...), or 0.
func PartIndex(name string) int {
	m := partRegex.FindStringSubmatch(stripExt(name))
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

// MovieQuery derives a search query and year from a movie filename.
// The title is everything up to the release year; without a year, the
// title ends at the first release token.
func MovieQuery(name string) (query string, year int) {
	base := stripExt(name)
	year = Year(base)

	if year > 0 {
		if loc := yearRegex.FindAllStringIndex(base, -1); loc != nil {
			base = base[:loc[len(loc)-1][0]]
		}
	} else if loc := releaseTokenRegex.FindStringIndex(base); loc != nil {
		base = base[:loc[0]]
	}

	base = partRegex.ReplaceAllString(base, "")
	return Normalize(base), year
}

var digitRegex = regexp.MustCompile(`\d`)

func stripExt(name string) string {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	// Keep dotted names like "Show.Name.S01E02" intact; only strip
	// plausible file extensions.
	if len(ext) >= 2 && len(ext) <= 5 && !digitRegex.MatchString(ext[1:]) {
		return base[:len(base)-len(ext)]
	}
	return base
}
