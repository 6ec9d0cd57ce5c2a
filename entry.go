package eep

import "github.com/fitzgen/eep/internal/logging"

// Timestamp is a monotonic-ish nanosecond count from an unspecified
// epoch. Values are comparable only for ordering, and only meaningfully
// within a single process.
type Timestamp uint64

// Why is the optional reference to a causing trace id, carried on Event
// and Start entries. Present is false when the caller passed a nil why.
type Why struct {
	Present       bool
	ThreadPresent bool
	Thread        ThreadID
	ID            uint32
}

// Entry is one record produced by a sink: an event, or one half of a
// start/stop pair. Entries are value copies — iterating a RingBuffer
// never hands out a reference into its storage.
type Entry[T Trace] struct {
	Why       Why
	Thread    ThreadID
	HasThread bool
	ID        uint32
	Tag       uint32
	Timestamp Timestamp
	Kind      TraceKind
}

// Label maps this entry's tag to its human-readable name via T's zero
// value, matching the source's treatment of Trace.label as a pure,
// effectively static function of the tag.
func (e Entry[T]) Label() string {
	var zero T
	defer func() {
		if r := recover(); r != nil {
			logging.Error("label lookup panicked on unknown tag", "tag", e.Tag)
			panic(r)
		}
	}()
	return zero.Label(e.Tag)
}

func whyFromID(why TraceID) Why {
	if why == nil {
		return Why{}
	}
	w := Why{Present: true, ID: why.U32()}
	if t, ok := why.Thread(); ok {
		w.ThreadPresent = true
		w.Thread = t
	}
	return w
}
