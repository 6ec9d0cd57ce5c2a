package eep

import (
	"sync/atomic"

	"github.com/fitzgen/eep/internal/localcounter"
)

// TraceID is the runtime identifier attached to an event or start/stop,
// used to pair a stop with its start and to attribute why a causing
// trace occurred. The pair (Thread, U32) is unique over the ~2^32 id
// space for the lifetime of the allocator that produced it; wrap-around
// is tolerated.
type TraceID interface {
	// U32 is the numeric part of the id.
	U32() uint32
	// Thread is the disambiguating thread identity, if the allocator
	// tracks one.
	Thread() (ThreadID, bool)
}

// globalCounter is the process-wide atomic counter backing GlobalTraceID.
var globalCounter atomic.Uint32

// GlobalTraceID is a TraceID drawn from a single process-wide atomic
// counter. It carries no thread field and is safe to allocate
// concurrently from any number of goroutines.
type GlobalTraceID struct {
	id uint32
}

// NewGlobalTraceID allocates a fresh id from the global counter.
func NewGlobalTraceID() GlobalTraceID {
	return GlobalTraceID{id: globalCounter.Add(1)}
}

func (g GlobalTraceID) U32() uint32 { return g.id }

func (g GlobalTraceID) Thread() (ThreadID, bool) { return 0, false }

// ThreadedTraceID pairs the calling goroutine's thread identity with a
// counter kept separately for that thread (see internal/threadid for the
// goroutine-identity approximation). The per-thread counters live in one
// RWMutex-guarded map shared by all threads, so allocation still takes a
// lock that unrelated threads contend on.
type ThreadedTraceID struct {
	thread ThreadID
	id     uint32
}

var threadCounters = localcounter.NewCounters()

// NewThreadedTraceID allocates a fresh id from the calling goroutine's
// local counter.
func NewThreadedTraceID() ThreadedTraceID {
	t := CurrentThread()
	return ThreadedTraceID{
		thread: t,
		id:     threadCounters.Next(uint64(t)),
	}
}

func (t ThreadedTraceID) U32() uint32 { return t.id }

func (t ThreadedTraceID) Thread() (ThreadID, bool) { return t.thread, true }
