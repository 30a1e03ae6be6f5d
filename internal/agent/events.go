package agent

// EventKind tags a stream event.
type EventKind string

// Stream event kinds, in the order they may appear: any number of thought
// and tool events, then exactly one final event.
const (
	EventThought EventKind = "thought"
	EventTool    EventKind = "tool"
	EventFinal   EventKind = "final"
)

// Event is one progress update produced while handling a streamed query.
// Events are transient: they are transmitted, never stored.
type Event struct {
	Kind EventKind `json:"type"`
	Text string    `json:"content"`
}
