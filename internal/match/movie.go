package match

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/vmunix/mediamatch/internal/memory"
	"github.com/vmunix/mediamatch/pkg/mediafile"
	"github.com/vmunix/mediamatch/pkg/medianame"
	"github.com/vmunix/mediamatch/pkg/mediainfo"
	"golang.org/x/sync/errgroup"
)

var imdbIDRegex = regexp.MustCompile(`\btt\d{7,8}\b`)

type repeatMode int

const (
	repeatNone repeatMode = iota
	repeatFirst
	repeatSkip
)

// MovieMatcher pairs video files, folders, and sidecars with movies.
// A single instance owns one run's selection memory; create a fresh
// matcher per run.
type MovieMatcher struct {
	provider MovieProvider
	prompter Prompter      // nil disables interactive fallback
	store    *memory.Store // nil disables persistent memory
	log      *slog.Logger

	selection *memory.Cache[*mediainfo.Movie] // query key -> chosen movie, nil = skip

	promptMu sync.Mutex
	mu       sync.Mutex
	repeat   repeatMode
}

// NewMovieMatcher creates a movie matcher. prompter and store may be nil.
func NewMovieMatcher(provider MovieProvider, prompter Prompter, store *memory.Store, log *slog.Logger) *MovieMatcher {
	if log == nil {
		log = slog.Default()
	}
	return &MovieMatcher{
		provider:  provider,
		prompter:  prompter,
		store:     store,
		log:       log.With("component", "movies"),
		selection: memory.NewCache[*mediainfo.Movie](),
	}
}

// Match resolves files against the movie provider.
func (m *MovieMatcher) Match(ctx context.Context, files []string, opts Options) ([]Match, error) {
	if m.provider == nil {
		return nil, ErrNoProvider
	}

	var movieFiles, nfoFiles, folders, subtitles, sidecars []string
	for _, f := range files {
		switch {
		case mediafile.IsNFO(f):
			nfoFiles = append(nfoFiles, f)
		case mediafile.IsVideo(f):
			if opts.Autodetect && mediafile.IsClutter(f) {
				continue
			}
			movieFiles = append(movieFiles, f)
		case mediafile.ClassOf(f) == mediafile.ClassFolder:
			folders = append(folders, f)
		case mediafile.IsSubtitle(f):
			subtitles = append(subtitles, f)
		default:
			sidecars = append(sidecars, f)
		}
	}

	// Derived sidecars attach to their sibling movie file and leave
	// the individual-matching pool.
	derivedOf := make(map[string]string)
	for _, sc := range sidecars {
		for _, mf := range movieFiles {
			if mediafile.IsDerived(sc, mf) {
				derivedOf[sc] = mf
				break
			}
		}
	}

	resolved := make(map[string]*mediainfo.Movie)
	m.scanNFOs(ctx, nfoFiles, movieFiles, folders, resolved)

	var pending []string
	for _, f := range append(append(append(append([]string{}, movieFiles...), nfoFiles...), folders...), subtitles...) {
		if resolved[f] == nil {
			pending = append(pending, f)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.concurrency())

	var mu sync.Mutex
	for _, f := range pending {
		f := f
		g.Go(func() error {
			movie, err := m.identify(gctx, f, opts)
			if err != nil {
				if errors.Is(err, ErrPromptCancelled) {
					// Dismissed prompt: the file stays unmatched.
					return nil
				}
				if isCancel(err) {
					return err
				}
				m.log.Warn("movie lookup failed", "file", f, "error", err)
				return nil
			}
			if movie != nil {
				mu.Lock()
				resolved[f] = movie
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	matches := buildPartMatches(resolved)

	// Derived sidecars receive a clone of their primary's movie.
	for sc, primary := range derivedOf {
		if movie := resolved[primary]; movie != nil {
			matches = append(matches, Match{File: sc, Record: movie.Clone()})
		}
	}

	SortByInput(matches, files)
	return matches, nil
}

// scanNFOs reads .nfo files (selected ones, plus any found alongside
// selected movie files or folders) for an embedded IMDb identifier and
// assigns the identified movie to the nfo's folder or to prefix-named
// sibling movie files.
func (m *MovieMatcher) scanNFOs(ctx context.Context, nfoFiles, movieFiles, folders []string, resolved map[string]*mediainfo.Movie) {
	folderSet := make(map[string]bool, len(folders))
	for _, d := range folders {
		folderSet[d] = true
	}

	nfoSet := make(map[string]bool)
	for _, f := range nfoFiles {
		nfoSet[f] = true
	}
	for _, dir := range siblingDirs(movieFiles, folders) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue // unreadable folder: no candidate, not an error
		}
		for _, e := range entries {
			if !e.IsDir() && mediafile.IsNFO(e.Name()) {
				nfoSet[filepath.Join(dir, e.Name())] = true
			}
		}
	}

	for nfo := range nfoSet {
		id := scanIMDBID(nfo)
		if id == "" {
			continue
		}
		movie, err := m.provider.Lookup(ctx, id)
		if err != nil {
			m.log.Warn("nfo lookup failed", "file", nfo, "imdb", id, "error", err)
			continue
		}
		if movie == nil {
			continue
		}

		dir := filepath.Dir(nfo)
		if folderSet[dir] {
			// Disk-folder case: the identity belongs to the folder.
			resolved[dir] = movie
			resolved[nfo] = movie.Clone()
			continue
		}
		resolved[nfo] = movie
		nfoBase := normalizedBase(nfo)
		for _, mf := range movieFiles {
			if filepath.Dir(mf) == dir && strings.HasPrefix(normalizedBase(mf), nfoBase) {
				resolved[mf] = movie.Clone()
			}
		}
	}
}

func siblingDirs(movieFiles, folders []string) []string {
	seen := make(map[string]bool)
	var dirs []string
	for _, f := range movieFiles {
		d := filepath.Dir(f)
		if !seen[d] {
			seen[d] = true
			dirs = append(dirs, d)
		}
	}
	for _, d := range folders {
		if !seen[d] {
			seen[d] = true
			dirs = append(dirs, d)
		}
	}
	return dirs
}

func scanIMDBID(nfo string) string {
	data, err := os.ReadFile(nfo)
	if err != nil {
		return ""
	}
	return imdbIDRegex.FindString(string(data))
}

func normalizedBase(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return medianame.Normalize(base)
}

// identify resolves one file to a movie via the memoized selection.
func (m *MovieMatcher) identify(ctx context.Context, file string, opts Options) (*mediainfo.Movie, error) {
	query, year := medianame.MovieQuery(filepath.Base(file))
	if query == "" {
		return nil, nil
	}
	if opts.Strict && year == 0 {
		// Strict mode requires a year; the file is dropped outright.
		return nil, nil
	}

	key := query
	if year > 0 {
		key = fmt.Sprintf("%s %d", query, year)
	}

	movie, err := m.selection.Resolve(key, func() (*mediainfo.Movie, error) {
		if opts.Autodetect && m.store != nil {
			if raw, ok := m.store.Get(ctx, m.provider.Name(), key); ok {
				return decodeStoredMovie(raw), nil
			}
		}
		candidates, err := m.provider.Search(ctx, query, year, opts.Locale)
		if err != nil {
			return nil, fmt.Errorf("search %q: %w", query, err)
		}
		return m.selectMovie(ctx, key, query, year, candidates, opts)
	})
	if err != nil || movie == nil {
		return nil, err
	}
	return movie.Clone(), nil
}

func decodeStoredMovie(raw []byte) *mediainfo.Movie {
	if len(raw) == 0 {
		return nil // remembered skip
	}
	var mv mediainfo.Movie
	if err := json.Unmarshal(raw, &mv); err != nil {
		return nil
	}
	return &mv
}

// selectMovie runs the candidate decision ladder: singleton, exact
// prefix, unique similarity above threshold, strict rejection, then
// interactive prompt with auto-repeat.
func (m *MovieMatcher) selectMovie(ctx context.Context, key, query string, year int, candidates []*mediainfo.Movie, opts Options) (*mediainfo.Movie, error) {
	if len(candidates) == 0 {
		return nil, nil
	}
	if len(candidates) == 1 {
		return candidates[0], nil
	}

	for _, c := range candidates {
		if medianame.IsPrefixMatch(query, c.Name) {
			return c, nil
		}
	}

	var accepted []*mediainfo.Movie
	for _, c := range candidates {
		if medianame.BestScore(scoreQuery(query, year, opts.Strict), nameVariants(c, opts.Strict)) >= opts.threshold() {
			accepted = append(accepted, c)
		}
	}
	if len(accepted) == 1 {
		return accepted[0], nil
	}
	if opts.Strict || m.prompter == nil {
		return nil, nil
	}

	m.promptMu.Lock()
	defer m.promptMu.Unlock()

	// Checked only under the prompt lock: a worker that lost the race
	// must see the winner's repeat-all answer instead of opening a
	// second prompt.
	switch m.repeatState() {
	case repeatFirst:
		return candidates[0], nil
	case repeatSkip:
		return nil, nil
	}

	options := make([]string, len(candidates))
	for i, c := range candidates {
		options[i] = candidateLabel(c.Name, c.Year)
	}
	sel, err := m.prompter.SelectCandidate(ctx, key, options)
	if err != nil {
		return nil, err
	}

	var choice *mediainfo.Movie
	if sel.Index >= 0 && sel.Index < len(candidates) {
		choice = candidates[sel.Index]
	}
	if sel.Repeat {
		m.setRepeat(choice != nil)
		if opts.Autodetect && m.store != nil {
			raw := []byte{}
			if choice != nil {
				raw, _ = json.Marshal(choice)
			}
			if err := m.store.Put(ctx, m.provider.Name(), key, raw); err != nil {
				m.log.Warn("persist selection failed", "query", key, "error", err)
			}
		}
	}
	return choice, nil
}

// scoreQuery includes the year in strict mode so only year-qualified
// names clear the threshold.
func scoreQuery(query string, year int, strict bool) string {
	if strict && year > 0 {
		return fmt.Sprintf("%s %d", query, year)
	}
	return query
}

func nameVariants(movie *mediainfo.Movie, strict bool) []string {
	names := movie.Names()
	if !strict {
		return names
	}
	variants := make([]string, 0, len(names))
	for _, n := range names {
		if movie.Year > 0 {
			variants = append(variants, fmt.Sprintf("%s %d", n, movie.Year))
		} else {
			variants = append(variants, n)
		}
	}
	return variants
}

func (m *MovieMatcher) repeatState() repeatMode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.repeat
}

func (m *MovieMatcher) setRepeat(first bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if first {
		m.repeat = repeatFirst
	} else {
		m.repeat = repeatSkip
	}
}

// buildPartMatches turns the resolved file set into matches, tagging
// multi-disc releases. Files resolving to the same movie identity and
// sharing a folder and extension are numbered as parts 1..N; every
// match receives an independent copy.
func buildPartMatches(resolved map[string]*mediainfo.Movie) []Match {
	type slot struct {
		file  string
		movie *mediainfo.Movie
	}

	files := make([]string, 0, len(resolved))
	for f, movie := range resolved {
		if movie != nil {
			files = append(files, f)
		}
	}
	sort.Strings(files)

	var groups [][]slot
	for _, f := range files {
		movie := resolved[f]
		placed := false
		for i := range groups {
			if mediainfo.Equal(movie, groups[i][0].movie) {
				groups[i] = append(groups[i], slot{file: f, movie: movie})
				placed = true
				break
			}
		}
		if !placed {
			groups = append(groups, []slot{{file: f, movie: movie}})
		}
	}

	var matches []Match
	for _, slots := range groups {

		// Shared-characteristics sub-grouping: same folder, same
		// extension class.
		bySub := make(map[string][]slot)
		var subs []string
		for _, s := range slots {
			k := filepath.Dir(s.file) + "|" + mediafile.ClassOf(s.file).String()
			if _, ok := bySub[k]; !ok {
				subs = append(subs, k)
			}
			bySub[k] = append(bySub[k], s)
		}
		sort.Strings(subs)

		for _, k := range subs {
			group := bySub[k]
			if len(group) < 2 || !mediafile.IsVideo(group[0].file) {
				for _, s := range group {
					matches = append(matches, Match{File: s.file, Record: s.movie.Clone()})
				}
				continue
			}
			sort.Slice(group, func(i, j int) bool {
				pi, pj := medianame.PartIndex(group[i].file), medianame.PartIndex(group[j].file)
				if pi != pj {
					return pi < pj
				}
				return group[i].file < group[j].file
			})
			n := len(group)
			for i, s := range group {
				matches = append(matches, Match{File: s.file, Record: s.movie.WithPart(i+1, n)})
			}
		}
	}
	return matches
}
