package eep

import "sync/atomic"

// ToggleSink wraps a sink and gates whether it actually records, without
// disturbing id allocation: Event and Start always return a fresh, valid
// id, recorded or not, so a caller's start/stop pairing never
// desynchronizes when tracing is switched off mid-flight.
type ToggleSink[T Trace] struct {
	inner   TraceSink[T]
	enabled atomic.Bool
	alloc   IDAllocator
}

// NewToggleSink wraps inner, starting either enabled or disabled. Ids
// allocated while disabled are drawn from alloc (GlobalAllocator if nil).
func NewToggleSink[T Trace](inner TraceSink[T], enabled bool, alloc IDAllocator) *ToggleSink[T] {
	if alloc == nil {
		alloc = GlobalAllocator
	}
	t := &ToggleSink[T]{inner: inner, alloc: alloc}
	t.enabled.Store(enabled)
	return t
}

// NewEnabledToggleSink wraps inner, starting enabled.
func NewEnabledToggleSink[T Trace](inner TraceSink[T]) *ToggleSink[T] {
	return NewToggleSink[T](inner, true, nil)
}

// NewDisabledToggleSink wraps inner, starting disabled.
func NewDisabledToggleSink[T Trace](inner TraceSink[T]) *ToggleSink[T] {
	return NewToggleSink[T](inner, false, nil)
}

// Enable turns tracing on.
func (t *ToggleSink[T]) Enable() { t.enabled.Store(true) }

// Disable turns tracing off.
func (t *ToggleSink[T]) Disable() { t.enabled.Store(false) }

// IsEnabled reports whether the sink is currently recording.
func (t *ToggleSink[T]) IsEnabled() bool { return t.enabled.Load() }

// Inner returns the wrapped sink.
func (t *ToggleSink[T]) Inner() TraceSink[T] { return t.inner }

func (t *ToggleSink[T]) Event(trace T, why TraceID) TraceID {
	if !t.enabled.Load() {
		return t.alloc()
	}
	return t.inner.Event(trace, why)
}

func (t *ToggleSink[T]) Start(trace T, why TraceID) TraceID {
	if !t.enabled.Load() {
		return t.alloc()
	}
	return t.inner.Start(trace, why)
}

func (t *ToggleSink[T]) Stop(id TraceID, trace T) {
	if !t.enabled.Load() {
		return
	}
	t.inner.Stop(id, trace)
}
