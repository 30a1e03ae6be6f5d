// Package summarizer provides the external text-summarization dependency.
package summarizer

import "context"

// Summarizer turns a text corpus into a short summary.
//
// Implementations must honour ctx cancellation and return an error wrapping
// apperr.ErrSummarizerUnavailable on provider or transport failures, so that
// callers can degrade instead of failing the whole request.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}
