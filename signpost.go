package eep

import "github.com/fitzgen/eep/internal/signpost"

// Signpost is a sink with no storage of its own: every operation
// forwards to the host OS tracing facility, and Event and Start allocate
// a fresh id, which is never itself forwarded — the host facility is
// addressed by tag alone.
type Signpost[T Trace] struct {
	host  signpost.Host
	alloc IDAllocator
}

// NewSignpost returns a Signpost bound to the platform's default host
// binding (a real os_signpost bridge on Darwin with cgo, a no-op stub
// everywhere else).
func NewSignpost[T Trace]() *Signpost[T] {
	return &Signpost[T]{host: signpost.Default(), alloc: GlobalAllocator}
}

// SignpostAvailable reports whether the current platform has a real
// signpost facility wired in, as opposed to the no-op stub.
func SignpostAvailable() bool {
	return signpost.Available()
}

func (s *Signpost[T]) Event(t T, _ TraceID) TraceID {
	id := s.alloc()
	s.host.Event(t.Tag(), [4]uintptr{})
	return id
}

func (s *Signpost[T]) Start(t T, _ TraceID) TraceID {
	id := s.alloc()
	s.host.Start(t.Tag(), [4]uintptr{})
	return id
}

func (s *Signpost[T]) Stop(_ TraceID, t T) {
	s.host.End(t.Tag(), [4]uintptr{})
}
