package agent

import "strings"

// Intent is the set of tool-invocation intents detected in a query.
type Intent struct {
	List      bool
	Summarize bool
}

// None reports whether no intent was detected.
func (i Intent) None() bool {
	return !i.List && !i.Summarize
}

func (i Intent) describe() string {
	switch {
	case i.List && i.Summarize:
		return "Detected list and summarize intents."
	case i.Summarize:
		return "Detected summarize intent."
	case i.List:
		return "Detected list intent."
	default:
		return "No matching intent detected, falling back to the default response."
	}
}

// Classifier maps a free-text query to tool-invocation intents.
//
// The keyword classifier below is deliberately simple; anything smarter
// (a learned model, an LLM call) just needs to produce the same Intent.
type Classifier interface {
	Classify(query string) Intent
}

// KeywordClassifier detects intents by case-insensitive substring match.
type KeywordClassifier struct{}

// Classify returns the intents triggered by the "list" and "summarize"
// keywords. Empty or whitespace-only queries match nothing.
func (KeywordClassifier) Classify(query string) Intent {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Intent{}
	}
	return Intent{
		List:      strings.Contains(q, "list"),
		Summarize: strings.Contains(q, "summarize"),
	}
}

var _ Classifier = KeywordClassifier{}
