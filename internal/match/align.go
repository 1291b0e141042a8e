package match

import (
	"path/filepath"

	"github.com/vmunix/mediamatch/pkg/medianame"
	"github.com/vmunix/mediamatch/pkg/mediainfo"
)

// NumericAligner aligns files to episodes by parsed numbering: explicit
// season/episode pairs first, then airdates, then absolute numbers,
// with a title-similarity pass for whatever is left. Each episode is
// assigned at most once.
type NumericAligner struct{}

func (NumericAligner) Align(files []string, episodes []*mediainfo.Episode) map[string]*mediainfo.Episode {
	aligned := make(map[string]*mediainfo.Episode, len(files))
	taken := make(map[*mediainfo.Episode]bool, len(episodes))

	var leftover []string
	for _, f := range files {
		ep := alignByNumbers(f, episodes, taken)
		if ep == nil {
			leftover = append(leftover, f)
			continue
		}
		aligned[f] = ep
		taken[ep] = true
	}

	// Similarity fallback for files without usable numbering.
	for _, f := range leftover {
		base := filepath.Base(f)
		var best *mediainfo.Episode
		bestScore := 0.0
		for _, ep := range episodes {
			if taken[ep] {
				continue
			}
			if s := medianame.Similarity(base, ep.Title); s > bestScore {
				best, bestScore = ep, s
			}
		}
		if best != nil && bestScore >= 0.5 {
			aligned[f] = best
			taken[best] = true
		}
	}

	return aligned
}

func alignByNumbers(file string, episodes []*mediainfo.Episode, taken map[*mediainfo.Episode]bool) *mediainfo.Episode {
	info, ok := medianame.ParseEpisode(filepath.Base(file))
	if !ok {
		return nil
	}

	for _, ep := range episodes {
		if taken[ep] {
			continue
		}
		switch {
		case info.HasNumbers():
			// Multi-episode files align to the first episode in range.
			if ep.Season == info.Season && ep.Episode == info.Episodes[0] {
				return ep
			}
		case !info.AirDate.IsZero():
			if !ep.AirDate.IsZero() && ep.AirDate.Equal(info.AirDate) {
				return ep
			}
		case info.Absolute > 0:
			if ep.Absolute == info.Absolute {
				return ep
			}
		}
	}
	return nil
}

// agreesWithFile reports whether an alignment is consistent with the
// episode numbers embedded in the filename. Used as the strict-mode
// sanity check over pluggable aligners.
func agreesWithFile(file string, ep *mediainfo.Episode) bool {
	info, ok := medianame.ParseEpisode(filepath.Base(file))
	if !ok || !info.HasNumbers() {
		return false
	}
	return ep.Season == info.Season && ep.Episode == info.Episodes[0]
}
