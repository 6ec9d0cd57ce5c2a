package eep

import "sync"

// LockedSink wraps a sink with a mutex, for the externally-serialized
// multi-writer configuration the source explicitly contemplates
// (RingBuffer itself is single-writer only).
type LockedSink[T Trace] struct {
	mu    sync.Mutex
	inner TraceSink[T]
}

// NewLockedSink wraps inner with a mutex guarding every operation.
func NewLockedSink[T Trace](inner TraceSink[T]) *LockedSink[T] {
	return &LockedSink[T]{inner: inner}
}

func (l *LockedSink[T]) Event(t T, why TraceID) TraceID {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Event(t, why)
}

func (l *LockedSink[T]) Start(t T, why TraceID) TraceID {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Start(t, why)
}

func (l *LockedSink[T]) Stop(id TraceID, t T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.inner.Stop(id, t)
}
