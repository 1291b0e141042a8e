package match

import (
	"context"
	"log/slog"

	"github.com/vmunix/mediamatch/pkg/mediafile"
)

// MusicMatcher resolves audio files by iterating identification
// providers in priority order. There is no interactive step: a file
// either resolves or remains unmatched.
type MusicMatcher struct {
	providers []MusicProvider
	log       *slog.Logger
}

// NewMusicMatcher creates a music matcher over providers in priority
// order.
func NewMusicMatcher(providers []MusicProvider, log *slog.Logger) *MusicMatcher {
	if log == nil {
		log = slog.Default()
	}
	return &MusicMatcher{providers: providers, log: log.With("component", "music")}
}

// Match asks each provider to resolve as many of the still-unresolved
// files as it can in one batch call, stopping early once the pool is
// empty. Provider failures are logged and skipped.
func (m *MusicMatcher) Match(ctx context.Context, files []string, opts Options) ([]Match, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvider
	}

	var remaining []string
	for _, f := range files {
		if mediafile.IsAudio(f) || mediafile.IsVideo(f) {
			remaining = append(remaining, f)
		}
	}

	var matches []Match
	for _, p := range m.providers {
		if len(remaining) == 0 {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		tracks, err := p.Identify(ctx, remaining)
		if err != nil {
			if isCancel(err) {
				return nil, err
			}
			m.log.Warn("music lookup failed", "provider", p.Name(), "files", len(remaining), "error", err)
			continue
		}

		var unresolved []string
		for _, f := range remaining {
			if track, ok := tracks[f]; ok && track != nil {
				matches = append(matches, Match{File: f, Record: track.Clone()})
			} else {
				unresolved = append(unresolved, f)
			}
		}
		remaining = unresolved
	}

	SortByInput(matches, files)
	return matches, nil
}
