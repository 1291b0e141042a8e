package match

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/vmunix/mediamatch/pkg/mediafile"
	"golang.org/x/sync/errgroup"
)

// Dispatcher classifies input files into typed groups and routes each
// unambiguous group to the matcher registered for its type.
type Dispatcher struct {
	grouper  Grouper
	matchers map[mediafile.Type]Matcher
	log      *slog.Logger
}

// NewDispatcher creates a dispatcher. A nil grouper uses the built-in
// name-heuristic grouping.
func NewDispatcher(grouper Grouper, log *slog.Logger) *Dispatcher {
	if grouper == nil {
		grouper = GrouperFunc(mediafile.GroupByType)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Dispatcher{
		grouper:  grouper,
		matchers: make(map[mediafile.Type]Matcher),
		log:      log.With("component", "dispatcher"),
	}
}

// Register wires a matcher for a content type.
func (d *Dispatcher) Register(t mediafile.Type, m Matcher) {
	d.matchers[t] = m
}

// Match groups files, runs the per-type matchers concurrently, and
// returns all matches in the original input order. Input files no
// matcher claimed are passed through as unmatched orphan pairs.
//
// A failing group contributes zero matches and does not abort its
// siblings; cancellation aborts the whole call with the context error.
func (d *Dispatcher) Match(ctx context.Context, files []string, opts Options) ([]Match, error) {
	groups := d.grouper.Group(files)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.concurrency())

	var mu sync.Mutex
	var all []Match

	for _, grp := range groups {
		if !grp.Unambiguous() {
			d.log.Debug("skipping ambiguous group", "types", len(grp.Types), "files", len(grp.Files))
			continue
		}
		m, ok := d.matchers[grp.Type()]
		if !ok {
			d.log.Debug("no matcher for group", "type", grp.Type().String(), "files", len(grp.Files))
			continue
		}

		grp := grp
		g.Go(func() error {
			res, err := m.Match(gctx, grp.Files, opts)
			if err != nil {
				if errors.Is(err, ErrPromptCancelled) {
					// Dismissed prompt: this group contributes nothing.
					return nil
				}
				if isCancel(err) {
					return err
				}
				d.log.Warn("group match failed",
					"type", grp.Type().String(), "files", len(grp.Files), "error", err)
				return nil
			}
			mu.Lock()
			all = append(all, res...)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	all = appendOrphans(all, files)
	SortByInput(all, files)
	return all, nil
}

// appendOrphans adds an unmatched pair for every input file that no
// matcher claimed, so the output projects onto the full input set.
func appendOrphans(matches []Match, input []string) []Match {
	claimed := make(map[string]bool, len(matches))
	for _, m := range matches {
		if m.File != "" {
			claimed[m.File] = true
		}
	}
	for _, f := range input {
		if !claimed[f] {
			matches = append(matches, Match{File: f})
			claimed[f] = true
		}
	}
	return matches
}
