// Package match implements the matching pipeline that pairs local
// media files with metadata records from identification providers.
package match

import (
	"context"
	"runtime"

	"github.com/vmunix/mediamatch/pkg/mediafile"
	"github.com/vmunix/mediamatch/pkg/mediainfo"
)

//go:generate mockgen -package mocks -destination mocks/match.go . EpisodeProvider,MovieProvider,MusicProvider,Prompter

// DefaultAcceptThreshold is the name-similarity score above which a
// single surviving candidate is auto-accepted. Tunable, not exact.
const DefaultAcceptThreshold = 0.9

// Match pairs a file with a metadata record. An empty File is an
// unmatched record placeholder; a nil Record is an unmatched file.
type Match struct {
	File   string
	Record mediainfo.Record
}

// Resolved reports whether both sides of the pair are present.
func (m Match) Resolved() bool { return m.File != "" && m.Record != nil }

// Options controls a matching run.
type Options struct {
	// Strict accepts only high-confidence, pattern-explicit matches and
	// never prompts.
	Strict bool
	// SortOrder selects the episode numbering scheme.
	SortOrder mediainfo.SortOrder
	// Locale is passed through to providers.
	Locale string
	// Autodetect enables clutter stripping and the persistent
	// selection memory.
	Autodetect bool
	// Concurrency bounds the worker pool per run. Zero means
	// runtime.NumCPU.
	Concurrency int
	// AcceptThreshold overrides DefaultAcceptThreshold when > 0.
	AcceptThreshold float64
}

func (o Options) concurrency() int {
	if o.Concurrency > 0 {
		return o.Concurrency
	}
	return runtime.NumCPU()
}

func (o Options) threshold() float64 {
	if o.AcceptThreshold > 0 {
		return o.AcceptThreshold
	}
	return DefaultAcceptThreshold
}

// Matcher resolves a set of files against one metadata domain.
type Matcher interface {
	Match(ctx context.Context, files []string, opts Options) ([]Match, error)
}

// EpisodeProvider identifies TV series and fetches their episode lists.
// Implementations must be safe for concurrent use.
type EpisodeProvider interface {
	Name() string
	Search(ctx context.Context, query, locale string) ([]mediainfo.SearchResult, error)
	Episodes(ctx context.Context, series mediainfo.SearchResult, order mediainfo.SortOrder, locale string) ([]*mediainfo.Episode, error)
}

// MovieProvider identifies movies by free-text query or external ID.
// Implementations must be safe for concurrent use.
type MovieProvider interface {
	Name() string
	Search(ctx context.Context, query string, year int, locale string) ([]*mediainfo.Movie, error)
	Lookup(ctx context.Context, imdbID string) (*mediainfo.Movie, error)
}

// MusicProvider resolves audio files to tracks in one batch call.
type MusicProvider interface {
	Name() string
	Identify(ctx context.Context, files []string) (map[string]*mediainfo.AudioTrack, error)
}

// Selection is the outcome of an interactive prompt.
type Selection struct {
	// Index into the presented options; negative means skip.
	Index int
	// Repeat applies this decision to every remaining prompt of the
	// run (and, under autodetection, to future runs).
	Repeat bool
}

// Prompter is the interactive disambiguation port. At most one prompt
// is ever in flight; the matchers serialize calls.
type Prompter interface {
	// SelectCandidate asks the user to choose among options for query.
	// A cancelled prompt returns ErrPromptCancelled.
	SelectCandidate(ctx context.Context, query string, options []string) (Selection, error)
	// RequestInput asks for one or more free-text queries, seeded with
	// a suggestion.
	RequestInput(ctx context.Context, suggestion string) ([]string, error)
}

// Grouper partitions input files into type-tagged groups.
type Grouper interface {
	Group(files []string) []mediafile.Group
}

// GrouperFunc adapts a function to the Grouper interface.
type GrouperFunc func(files []string) []mediafile.Group

func (f GrouperFunc) Group(files []string) []mediafile.Group { return f(files) }

// Aligner produces a best-effort one-to-one alignment between files
// and fetched episodes.
type Aligner interface {
	Align(files []string, episodes []*mediainfo.Episode) map[string]*mediainfo.Episode
}
