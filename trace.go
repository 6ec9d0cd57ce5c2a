// Package eep is an embeddable in-process tracing library: application
// code records events and start/stop intervals into a sink, most commonly
// a fixed-capacity ring buffer of packed entries, for later iteration and
// serialization.
package eep

// TraceKind distinguishes the three shapes of entry a sink records.
type TraceKind uint8

const (
	// Event marks a point-in-time occurrence.
	Event TraceKind = iota
	// Start marks the beginning of an interval; paired with a later Stop.
	Start
	// Stop marks the end of an interval begun by a prior Start.
	Stop
)

// String renders the kind's name, matching the serialization shape.
func (k TraceKind) String() string {
	switch k {
	case Event:
		return "Event"
	case Start:
		return "Start"
	case Stop:
		return "Stop"
	default:
		return "Unknown"
	}
}

// Trace is the descriptor contract a caller's own trace enumeration must
// satisfy. Implementations should be small, comparable value types; an
// entry records only the value's Tag, never the value itself.
type Trace interface {
	// Tag returns the small integer identifying this trace's kind.
	Tag() uint32
	// Label maps a tag to its human-readable name. Label must be total
	// over every tag value the application ever produces; an unknown tag
	// is a programmer error and the implementation is expected to abort
	// loudly rather than return a placeholder.
	Label(tag uint32) string
}
