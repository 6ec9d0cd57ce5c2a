package eep

// TraceSink is the capability a sink must implement to accept recordings
// of a given trace type T. why is the nil TraceID when the caller has no
// parent to attribute.
//
// All three operations mutate the sink. Sinks are single-writer;
// concurrent callers must provide their own external serialization (see
// LockedSink) or use one sink per thread.
type TraceSink[T Trace] interface {
	// Event records a point-in-time occurrence and returns its id.
	Event(t T, why TraceID) TraceID
	// Start records the beginning of an interval and returns an id the
	// caller must later pass to Stop.
	Start(t T, why TraceID) TraceID
	// Stop records the end of the interval begun with id.
	Stop(id TraceID, t T)
}
