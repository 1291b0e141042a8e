package match_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/vmunix/mediamatch/internal/match"
)

// testLogger returns a discard logger for tests.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// matcherFunc adapts a function to the match.Matcher interface.
type matcherFunc func(ctx context.Context, files []string, opts match.Options) ([]match.Match, error)

func (f matcherFunc) Match(ctx context.Context, files []string, opts match.Options) ([]match.Match, error) {
	return f(ctx, files, opts)
}
