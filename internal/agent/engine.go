// Package agent implements the query-to-tool orchestration core: routing a
// free-text query to tools, composing tool outputs into one answer, and
// delivering it either buffered or as a stream of progress events.
package agent

import (
	"context"
	"log/slog"

	"github.com/starford/ansuz/internal/notestore"
	"github.com/starford/ansuz/internal/summarizer"
)

// StreamFailureAnswer terminates a stream whose underlying store read failed.
// The buffered path surfaces the same condition as an error instead.
const StreamFailureAnswer = "Sorry, I couldn't read your notes right now. Please try again later."

// Result is the outcome of one query. Immutable once constructed.
type Result struct {
	ToolsUsed []string `json:"tools_used"`
	Answer    string   `json:"answer"`
}

// Service drives Router → tools → Composer for both execution modes.
type Service struct {
	tools      tools
	classifier Classifier
}

// Option is a functional option for configuring the Service.
type Option func(*Service)

// WithClassifier replaces the default keyword classifier.
func WithClassifier(c Classifier) Option {
	return func(s *Service) {
		s.classifier = c
	}
}

// New creates an agent service over the given store and summarizer.
func New(store notestore.Store, sum summarizer.Summarizer, opts ...Option) *Service {
	s := &Service{
		tools:      tools{store: store, sum: sum},
		classifier: KeywordClassifier{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ask runs a query to completion and returns the composed result.
// Summarizer failures degrade into the answer; a store failure is returned
// as an error and fails the request.
func (s *Service) Ask(ctx context.Context, query string) (*Result, error) {
	return s.run(ctx, query, nil)
}

// AskStream runs a query as a lazy event sequence. The returned channel
// yields thought and tool events as execution progresses and is closed after
// exactly one final event. If ctx is cancelled the producer stops without
// doing further work.
func (s *Service) AskStream(ctx context.Context, query string) <-chan Event {
	ch := make(chan Event)
	go func() {
		defer close(ch)
		emit := func(ev Event) bool {
			select {
			case ch <- ev:
				return true
			case <-ctx.Done():
				return false
			}
		}
		res, err := s.run(ctx, query, emit)
		if err != nil {
			if ctx.Err() != nil {
				return // consumer gone, nobody is reading
			}
			slog.Error("streamed query failed", slog.String("error", err.Error()))
			emit(Event{Kind: EventFinal, Text: StreamFailureAnswer})
			return
		}
		emit(Event{Kind: EventFinal, Text: res.Answer})
	}()
	return ch
}

// run is the single execution path shared by both modes, so that a buffered
// answer always equals the streamed final payload for the same query and
// store state. emit is nil in buffered mode; in streaming mode it reports
// whether the consumer is still listening.
func (s *Service) run(ctx context.Context, query string, emit func(Event) bool) (*Result, error) {
	if emit == nil {
		emit = func(Event) bool { return true }
	}

	if !emit(Event{Kind: EventThought, Text: "Reading the query."}) {
		return nil, ctx.Err()
	}
	intent := s.classifier.Classify(query)
	slog.Info("query routed",
		slog.Bool("list", intent.List),
		slog.Bool("summarize", intent.Summarize))
	if !emit(Event{Kind: EventThought, Text: intent.describe()}) {
		return nil, ctx.Err()
	}

	if intent.None() {
		return &Result{ToolsUsed: []string{}, Answer: DefaultAnswer}, nil
	}

	// The list tool is announced only when the list intent fired; a pure
	// summarize query fetches notes as an internal dependency.
	if intent.List {
		if !emit(Event{Kind: EventTool, Text: "invoking " + ToolListNotes}) {
			return nil, ctx.Err()
		}
	}
	notes, err := s.tools.listNotes(ctx)
	if err != nil {
		return nil, err
	}
	toolsUsed := []string{ToolListNotes}

	var summary string
	if intent.Summarize {
		if !emit(Event{Kind: EventTool, Text: "invoking " + ToolSummarize}) {
			return nil, ctx.Err()
		}
		toolsUsed = append(toolsUsed, ToolSummarize)

		onExternalCall := func() bool {
			return emit(Event{Kind: EventTool, Text: "calling external summarizer"})
		}
		summary, err = s.tools.summarize(ctx, notes, onExternalCall)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			// Non-fatal: degrade to an apologetic answer segment.
			slog.Warn("summarization degraded", slog.String("error", err.Error()))
			summary = DegradedSummary
		}
	}

	return &Result{
		ToolsUsed: toolsUsed,
		Answer:    composeAnswer(intent, notes, summary),
	}, nil
}
