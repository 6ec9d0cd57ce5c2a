package eep

import (
	"sync/atomic"
	"time"
)

// Metrics tracks throughput and lifecycle statistics for a RingBuffer.
// It is purely observational: nothing in the insertion/iteration
// algorithm depends on it.
type Metrics struct {
	EventsRecorded atomic.Uint64
	StartsRecorded atomic.Uint64
	StopsRecorded  atomic.Uint64
	Evictions      atomic.Uint64
	BytesWritten   atomic.Uint64

	StartTime atomic.Int64 // UnixNano
	StopTime  atomic.Int64 // UnixNano
}

// NewMetrics creates a new metrics instance.
func NewMetrics() *Metrics {
	m := &Metrics{}
	m.StartTime.Store(time.Now().UnixNano())
	return m
}

// Stop marks the metrics instance as stopped.
func (m *Metrics) Stop() {
	m.StopTime.Store(time.Now().UnixNano())
}

// MetricsSnapshot is a point-in-time copy of Metrics' counters plus
// derived statistics.
type MetricsSnapshot struct {
	EventsRecorded uint64
	StartsRecorded uint64
	StopsRecorded  uint64
	Evictions      uint64
	BytesWritten   uint64
	TotalWrites    uint64
	UptimeNs       uint64
	WritesPerSec   float64
}

// Snapshot creates a point-in-time snapshot of the metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	snap := MetricsSnapshot{
		EventsRecorded: m.EventsRecorded.Load(),
		StartsRecorded: m.StartsRecorded.Load(),
		StopsRecorded:  m.StopsRecorded.Load(),
		Evictions:      m.Evictions.Load(),
		BytesWritten:   m.BytesWritten.Load(),
	}
	snap.TotalWrites = snap.EventsRecorded + snap.StartsRecorded + snap.StopsRecorded

	startTime := m.StartTime.Load()
	stopTime := m.StopTime.Load()
	if stopTime > 0 {
		snap.UptimeNs = uint64(stopTime - startTime)
	} else {
		snap.UptimeNs = uint64(time.Now().UnixNano() - startTime)
	}

	if snap.UptimeNs > 0 {
		snap.WritesPerSec = float64(snap.TotalWrites) / (float64(snap.UptimeNs) / 1e9)
	}

	return snap
}

// Reset zeroes all counters (useful for testing).
func (m *Metrics) Reset() {
	m.EventsRecorded.Store(0)
	m.StartsRecorded.Store(0)
	m.StopsRecorded.Store(0)
	m.Evictions.Store(0)
	m.BytesWritten.Store(0)
	m.StartTime.Store(time.Now().UnixNano())
	m.StopTime.Store(0)
}

// Observer allows pluggable collection of RingBuffer write activity.
type Observer interface {
	ObserveEvent()
	ObserveStart()
	ObserveStop()
	ObserveEviction()
	// ObserveBytes reports n bytes copied into the buffer by a single
	// write, in addition to whichever Observe{Event,Start,Stop} call
	// covers that same write.
	ObserveBytes(n int)
}

// NoOpObserver is a no-op Observer, the default for a RingBuffer that
// hasn't been given one via WithObserver.
type NoOpObserver struct{}

func (NoOpObserver) ObserveEvent()    {}
func (NoOpObserver) ObserveStart()    {}
func (NoOpObserver) ObserveStop()     {}
func (NoOpObserver) ObserveEviction() {}
func (NoOpObserver) ObserveBytes(int) {}

// MetricsObserver implements Observer by recording into a *Metrics.
type MetricsObserver struct {
	metrics *Metrics
}

// NewMetricsObserver creates an observer that records to m.
func NewMetricsObserver(m *Metrics) *MetricsObserver {
	return &MetricsObserver{metrics: m}
}

func (o *MetricsObserver) ObserveEvent()    { o.metrics.EventsRecorded.Add(1) }
func (o *MetricsObserver) ObserveStart()    { o.metrics.StartsRecorded.Add(1) }
func (o *MetricsObserver) ObserveStop()     { o.metrics.StopsRecorded.Add(1) }
func (o *MetricsObserver) ObserveEviction() { o.metrics.Evictions.Add(1) }
func (o *MetricsObserver) ObserveBytes(n int) {
	o.metrics.BytesWritten.Add(uint64(n))
}

var (
	_ Observer = (*MetricsObserver)(nil)
	_ Observer = NoOpObserver{}
)
