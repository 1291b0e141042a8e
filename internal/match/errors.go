package match

import (
	"context"
	"errors"
)

var (
	// ErrPromptCancelled indicates the user dismissed an interactive
	// prompt. The dismissed group or batch contributes no matches;
	// sibling work continues.
	ErrPromptCancelled = errors.New("prompt cancelled")

	// ErrNoProvider indicates a matcher was constructed without its
	// required identification provider. Programmer error.
	ErrNoProvider = errors.New("no identification provider configured")
)

// isCancel reports whether err is a run-level cancellation signal.
// Only context cancellation aborts a whole call; a dismissed prompt
// does not.
func isCancel(err error) bool {
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
