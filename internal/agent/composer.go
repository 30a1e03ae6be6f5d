package agent

import (
	"fmt"
	"strings"

	"github.com/starford/ansuz/internal/models"
)

// Fixed answer fragments. The composer output is deterministic per intent
// combination, and the summary section always precedes the list section.
const (
	// DefaultAnswer is returned when no intent matched the query.
	DefaultAnswer = "I can help you list or summarize your notes. " +
		"Try asking me to 'list all notes' or 'summarize my notes'."

	// EmptyStoreAnswer is the list rendering of an empty store.
	EmptyStoreAnswer = "You don't have any notes yet."

	// DegradedSummary replaces the summary when the external summarizer fails.
	DegradedSummary = "Sorry, I couldn't reach the summarizer right now. Please try again later."

	summaryLabel     = "Summary of your notes:"
	listLabel        = "List of all your notes:"
	listOnlyLabel    = "Here are all your notes:"
	sectionSeparator = "\n\n---\n\n"

	excerptLimit = 120
)

// composeAnswer merges tool outputs into the final answer text per the fired
// intents. summary is ignored unless the summarize intent fired.
func composeAnswer(intent Intent, notes []models.Note, summary string) string {
	switch {
	case intent.List && intent.Summarize:
		return summaryLabel + "\n\n" + summary +
			sectionSeparator +
			listLabel + "\n\n" + renderNoteList(notes)
	case intent.Summarize:
		return summaryLabel + "\n\n" + summary
	case intent.List:
		if len(notes) == 0 {
			return EmptyStoreAnswer
		}
		return listOnlyLabel + "\n\n" + renderNoteList(notes)
	default:
		return DefaultAnswer
	}
}

// renderNoteList renders one bullet per note, in store order.
func renderNoteList(notes []models.Note) string {
	if len(notes) == 0 {
		return EmptyStoreAnswer
	}
	lines := make([]string, len(notes))
	for i, n := range notes {
		lines[i] = fmt.Sprintf("• %s\n  %s", n.Title, excerpt(n.Content))
	}
	return strings.Join(lines, "\n")
}

// excerpt returns the first line of content, truncated to excerptLimit runes.
func excerpt(content string) string {
	line := content
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	runes := []rune(line)
	if len(runes) <= excerptLimit {
		return line
	}
	return string(runes[:excerptLimit]) + "…"
}
