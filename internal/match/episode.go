package match

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/vmunix/mediamatch/internal/memory"
	"github.com/vmunix/mediamatch/pkg/mediafile"
	"github.com/vmunix/mediamatch/pkg/medianame"
	"github.com/vmunix/mediamatch/pkg/mediainfo"
	"golang.org/x/sync/errgroup"
)

// EpisodeMatcher pairs video and subtitle files with TV episodes.
// A single instance owns one run's selection memory; create a fresh
// matcher per run.
type EpisodeMatcher struct {
	provider EpisodeProvider
	prompter Prompter      // nil disables interactive fallback
	store    *memory.Store // nil disables persistent memory
	aligner  Aligner
	log      *slog.Logger

	series   *memory.Cache[*mediainfo.SearchResult] // query key -> chosen series, nil = skip
	episodes *memory.Cache[[]*mediainfo.Episode]    // series/order -> episode list
	inputs   *memory.Cache[[]string]                // suggestion -> prompted queries

	promptMu sync.Mutex
}

// NewEpisodeMatcher creates an episode matcher. prompter and store may
// be nil; aligner nil selects the numeric aligner.
func NewEpisodeMatcher(provider EpisodeProvider, prompter Prompter, store *memory.Store, aligner Aligner, log *slog.Logger) *EpisodeMatcher {
	if aligner == nil {
		aligner = NumericAligner{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &EpisodeMatcher{
		provider: provider,
		prompter: prompter,
		store:    store,
		aligner:  aligner,
		log:      log.With("component", "episodes"),
		series:   memory.NewCache[*mediainfo.SearchResult](),
		episodes: memory.NewCache[[]*mediainfo.Episode](),
		inputs:   memory.NewCache[[]string](),
	}
}

type episodeBatch struct {
	files      []string
	queries    []string
	suggestion string // prompt seed when queries come up empty
}

// Match resolves files against the episode provider. With no input
// files the matcher degrades to fetch-by-query mode: it prompts for
// series names and returns unmatched episode placeholders.
func (m *EpisodeMatcher) Match(ctx context.Context, files []string, opts Options) ([]Match, error) {
	if m.provider == nil {
		return nil, ErrNoProvider
	}
	if len(files) == 0 {
		return m.matchByQuery(ctx, opts)
	}

	var primary, sidecars []string
	for _, f := range files {
		switch mediafile.ClassOf(f) {
		case mediafile.ClassVideo, mediafile.ClassSubtitle:
			if opts.Autodetect && mediafile.IsClutter(f) {
				continue
			}
			primary = append(primary, f)
		case mediafile.ClassSidecar, mediafile.ClassOther:
			sidecars = append(sidecars, f)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.concurrency())

	var mu sync.Mutex
	var matches []Match

	for _, batch := range m.batch(primary, opts) {
		batch := batch
		g.Go(func() error {
			res, err := m.matchEpisodeSet(gctx, batch, opts)
			if err != nil {
				if errors.Is(err, ErrPromptCancelled) {
					// Dismissed prompt: this batch contributes nothing.
					return nil
				}
				if isCancel(err) {
					return err
				}
				m.log.Warn("episode batch failed",
					"queries", batch.queries, "files", len(batch.files), "error", err)
				return nil
			}
			mu.Lock()
			matches = append(matches, res...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	matches = append(matches, associateDerivedEpisodes(matches, sidecars)...)
	SortByInput(matches, files)
	return matches, nil
}

// batch splits files into fetch sessions. Strict mode works file by
// file and only admits files with explicit season/episode numbering.
// Otherwise files are batched by detected series name, and files with
// no detectable name fall back to one batch per containing folder.
func (m *EpisodeMatcher) batch(files []string, opts Options) []episodeBatch {
	if opts.Strict {
		var batches []episodeBatch
		for _, f := range files {
			info, ok := medianame.ParseEpisode(filepath.Base(f))
			if !ok || !info.HasNumbers() {
				continue
			}
			b := episodeBatch{files: []string{f}}
			if name := medianame.SeriesName(filepath.Base(f)); name != "" {
				b.queries = []string{name}
			}
			batches = append(batches, b)
		}
		return batches
	}

	byName := make(map[string]*episodeBatch)
	var order []string
	var nameless []string
	for _, f := range files {
		name := medianame.SeriesName(filepath.Base(f))
		if name == "" {
			nameless = append(nameless, f)
			continue
		}
		b, ok := byName[name]
		if !ok {
			b = &episodeBatch{queries: []string{name}, suggestion: name}
			byName[name] = b
			order = append(order, name)
		}
		b.files = append(b.files, f)
	}

	var batches []episodeBatch
	for _, name := range order {
		batches = append(batches, *byName[name])
	}
	for dir, group := range mediafile.GroupByFolder(nameless) {
		batches = append(batches, episodeBatch{
			files:      group,
			suggestion: medianame.Normalize(filepath.Base(dir)),
		})
	}
	return batches
}

func (m *EpisodeMatcher) matchEpisodeSet(ctx context.Context, batch episodeBatch, opts Options) ([]Match, error) {
	episodes, err := m.episodesForQueries(ctx, batch.queries, opts)
	if err != nil {
		return nil, err
	}

	// Interactive fallback: ask for series names once per suggestion.
	if len(episodes) == 0 && !opts.Strict && m.prompter != nil {
		suggestion := batch.suggestion
		if suggestion == "" && len(batch.files) > 0 {
			suggestion = medianame.Normalize(filepath.Base(batch.files[0]))
		}
		queries, err := m.inputs.Resolve(suggestion, func() ([]string, error) {
			m.promptMu.Lock()
			defer m.promptMu.Unlock()
			return m.prompter.RequestInput(ctx, suggestion)
		})
		if err != nil {
			return nil, err
		}
		if episodes, err = m.episodesForQueries(ctx, queries, opts); err != nil {
			return nil, err
		}
	}
	if len(episodes) == 0 {
		return nil, nil
	}

	var matches []Match
	for _, group := range groupByClass(batch.files) {
		for f, ep := range m.aligner.Align(group, episodes) {
			if opts.Strict && !agreesWithFile(f, ep) {
				continue
			}
			matches = append(matches, Match{File: f, Record: ep.Clone()})
		}
	}
	return matches, nil
}

// episodesForQueries resolves each distinct query to a series and
// unions the episode lists, order-preserving and de-duplicated.
func (m *EpisodeMatcher) episodesForQueries(ctx context.Context, queries []string, opts Options) ([]*mediainfo.Episode, error) {
	var union []*mediainfo.Episode
	seenQuery := make(map[string]bool)
	seenEp := make(map[string]bool)

	for _, q := range queries {
		key := medianame.Normalize(q)
		if key == "" || seenQuery[key] {
			continue
		}
		seenQuery[key] = true

		series, err := m.resolveSeries(ctx, q, opts)
		if err != nil {
			return nil, err
		}
		if series == nil {
			continue
		}

		eps, err := m.episodesFor(ctx, *series, opts)
		if err != nil {
			return nil, err
		}
		for _, ep := range eps {
			id := ep.ID
			if id == "" {
				id = fmt.Sprintf("%s/%dx%d", ep.SeriesName(), ep.Season, ep.Episode)
			}
			if seenEp[id] {
				continue
			}
			seenEp[id] = true
			union = append(union, ep)
		}
	}
	return union, nil
}

// resolveSeries maps a query to a series choice, at most once per key.
func (m *EpisodeMatcher) resolveSeries(ctx context.Context, query string, opts Options) (*mediainfo.SearchResult, error) {
	key := medianame.Normalize(query)
	if key == "" {
		return nil, nil
	}
	return m.series.Resolve(key, func() (*mediainfo.SearchResult, error) {
		if opts.Autodetect && m.store != nil {
			if raw, ok := m.store.Get(ctx, m.provider.Name(), key); ok {
				return decodeStoredSeries(raw), nil
			}
		}
		results, err := m.provider.Search(ctx, query, opts.Locale)
		if err != nil {
			return nil, fmt.Errorf("search %q: %w", query, err)
		}
		return m.selectSeries(ctx, key, results, opts)
	})
}

func decodeStoredSeries(raw []byte) *mediainfo.SearchResult {
	if len(raw) == 0 {
		return nil // remembered skip
	}
	var sr mediainfo.SearchResult
	if err := json.Unmarshal(raw, &sr); err != nil {
		return nil
	}
	return &sr
}

func (m *EpisodeMatcher) selectSeries(ctx context.Context, key string, results []mediainfo.SearchResult, opts Options) (*mediainfo.SearchResult, error) {
	switch len(results) {
	case 0:
		return nil, nil
	case 1:
		return &results[0], nil
	}

	var accepted []*mediainfo.SearchResult
	for i := range results {
		if medianame.BestScore(key, results[i].Names()) >= opts.threshold() {
			accepted = append(accepted, &results[i])
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

	options := make([]string, len(results))
	for i, r := range results {
		options[i] = candidateLabel(r.Name, r.Year)
	}
	sel, err := m.prompter.SelectCandidate(ctx, key, options)
	if err != nil {
		return nil, err
	}

	var choice *mediainfo.SearchResult
	if sel.Index >= 0 && sel.Index < len(results) {
		choice = &results[sel.Index]
	}
	if sel.Repeat && opts.Autodetect && m.store != nil {
		raw := []byte{}
		if choice != nil {
			raw, _ = json.Marshal(choice)
		}
		if err := m.store.Put(ctx, m.provider.Name(), key, raw); err != nil {
			m.log.Warn("persist selection failed", "query", key, "error", err)
		}
	}
	return choice, nil
}

// episodesFor fetches a series' episode list at most once per run.
func (m *EpisodeMatcher) episodesFor(ctx context.Context, series mediainfo.SearchResult, opts Options) ([]*mediainfo.Episode, error) {
	key := series.ID + "/" + opts.SortOrder.String()
	return m.episodes.Resolve(key, func() ([]*mediainfo.Episode, error) {
		eps, err := m.provider.Episodes(ctx, series, opts.SortOrder, opts.Locale)
		if err != nil {
			return nil, fmt.Errorf("episodes for %q: %w", series.Name, err)
		}
		return eps, nil
	})
}

// matchByQuery is the empty-input mode: prompt for series names and
// return unmatched episode placeholders.
func (m *EpisodeMatcher) matchByQuery(ctx context.Context, opts Options) ([]Match, error) {
	if m.prompter == nil {
		return nil, nil
	}
	m.promptMu.Lock()
	queries, err := m.prompter.RequestInput(ctx, "")
	m.promptMu.Unlock()
	if err != nil {
		return nil, err
	}

	episodes, err := m.episodesForQueries(ctx, queries, opts)
	if err != nil {
		return nil, err
	}
	matches := make([]Match, 0, len(episodes))
	for _, ep := range episodes {
		matches = append(matches, Match{Record: ep.Clone()})
	}
	return matches, nil
}

// groupByClass splits a batch into per-extension-class sub-groups so
// videos and subtitles align against the episode set independently.
func groupByClass(files []string) [][]string {
	byClass := make(map[mediafile.Class][]string)
	var order []mediafile.Class
	for _, f := range files {
		c := mediafile.ClassOf(f)
		if _, ok := byClass[c]; !ok {
			order = append(order, c)
		}
		byClass[c] = append(byClass[c], f)
	}
	groups := make([][]string, 0, len(order))
	for _, c := range order {
		groups = append(groups, byClass[c])
	}
	return groups
}

// associateDerivedEpisodes pairs sidecar files with the episode of the
// matched video file they derive from. First match wins.
func associateDerivedEpisodes(matches []Match, sidecars []string) []Match {
	var out []Match
	for _, sc := range sidecars {
		for _, pm := range matches {
			if pm.File == "" || pm.Record == nil || !mediafile.IsVideo(pm.File) {
				continue
			}
			if !mediafile.IsDerived(sc, pm.File) {
				continue
			}
			if ep, ok := pm.Record.(*mediainfo.Episode); ok {
				out = append(out, Match{File: sc, Record: ep.Clone()})
			}
			break
		}
	}
	return out
}

func candidateLabel(name string, year int) string {
	if year > 0 {
		return fmt.Sprintf("%s (%d)", name, year)
	}
	return name
}
