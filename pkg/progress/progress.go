// Package progress is a best-effort sink for pipeline progress events.
// Emission never blocks and dropped events do not affect correctness.
package progress

// Event is one progress update from a long-running pipeline stage.
type Event struct {
	Stage      string `json:"stage"`
	Percentage int    `json:"percentage"`
	Detail     string `json:"detail,omitempty"`
}

// Sink receives progress events.
type Sink interface {
	Emit(e Event)
}

// Nop discards all events.
type Nop struct{}

// Emit implements Sink.
func (Nop) Emit(Event) {}
