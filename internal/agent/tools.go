package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/starford/ansuz/internal/apperr"
	"github.com/starford/ansuz/internal/models"
	"github.com/starford/ansuz/internal/notestore"
	"github.com/starford/ansuz/internal/summarizer"
)

// Tool names as reported in tools_used.
const (
	ToolListNotes = "list_notes_tool"
	ToolSummarize = "summarize_tool"
)

// NoNotesToSummarize is returned by the summarize tool when the store is
// empty; the external summarizer is not called in that case.
const NoNotesToSummarize = "No notes available to summarize."

// tools bundles the two operations the agent may invoke. Both are read-only
// with respect to the note store.
type tools struct {
	store notestore.Store
	sum   summarizer.Summarizer
}

// listNotes reads all notes from the store. Store errors are surfaced as
// ErrStoreUnavailable and are fatal for the request.
func (t *tools) listNotes(ctx context.Context) ([]models.Note, error) {
	notes, err := t.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("agent: list notes: %w: %w", apperr.ErrStoreUnavailable, err)
	}
	slog.Debug("list_notes_tool executed", slog.Int("count", len(notes)))
	return notes, nil
}

// summarize produces a summary of the given note snapshot. An empty snapshot
// short-circuits without calling the external provider. onExternalCall is
// invoked immediately before the provider call and may abort it by returning
// false (streaming consumer gone).
func (t *tools) summarize(ctx context.Context, notes []models.Note, onExternalCall func() bool) (string, error) {
	if len(notes) == 0 {
		return NoNotesToSummarize, nil
	}
	if onExternalCall != nil && !onExternalCall() {
		return "", ctx.Err()
	}
	summary, err := t.sum.Summarize(ctx, formatCorpus(notes))
	if err != nil {
		return "", fmt.Errorf("agent: summarize: %w", err)
	}
	return summary, nil
}

// formatCorpus joins all notes into one blob with recoverable boundaries.
func formatCorpus(notes []models.Note) string {
	blocks := make([]string, len(notes))
	for i, n := range notes {
		blocks[i] = fmt.Sprintf("Note %d: %s\n%s", i+1, n.Title, n.Content)
	}
	return strings.Join(blocks, "\n\n")
}
