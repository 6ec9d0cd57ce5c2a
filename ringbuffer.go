package eep

import (
	"fmt"

	"github.com/fitzgen/eep/internal/clock"
	"github.com/fitzgen/eep/internal/wire"
)

// DefaultCapacity is the recommended default RingBuffer capacity in bytes.
const DefaultCapacity = 4096

// IDAllocator produces a fresh TraceID. The two built-ins,
// GlobalAllocator and ThreadedAllocator, correspond to the source's two
// TraceId strategies; Go has no associated-type mechanism to bind one to
// a Trace implementation at compile time, so a RingBuffer takes its
// allocator as an explicit, swappable dependency instead (see
// WithIDAllocator).
type IDAllocator func() TraceID

// GlobalAllocator allocates ids from the process-wide atomic counter.
func GlobalAllocator() TraceID { return NewGlobalTraceID() }

// ThreadedAllocator allocates ids from the calling goroutine's local
// counter, paired with its thread identity.
func ThreadedAllocator() TraceID { return NewThreadedTraceID() }

// RingBuffer is the primary sink: a fixed-capacity byte array holding
// packed, fixed-size entries in FIFO order. It is NOT thread-safe;
// concurrent writers must externally serialize (see LockedSink) or use
// one buffer per thread.
type RingBuffer[T Trace] struct {
	data     []byte
	begin    int
	length   int
	idAlloc  IDAllocator
	observer Observer
	now      func() uint64
}

// NewRingBuffer creates a buffer with the given capacity in bytes. It
// panics if capacity does not exceed the fixed per-entry size — this is
// a programmer error, not a runtime condition.
func NewRingBuffer[T Trace](capacity int) *RingBuffer[T] {
	if capacity <= wire.EntrySize {
		panic(fmt.Sprintf("eep: RingBuffer capacity %d must exceed entry size %d", capacity, wire.EntrySize))
	}
	return &RingBuffer[T]{
		data:     make([]byte, capacity),
		idAlloc:  GlobalAllocator,
		observer: NoOpObserver{},
		now:      clock.NowNanos,
	}
}

// DefaultRingBuffer creates a buffer at DefaultCapacity.
func DefaultRingBuffer[T Trace]() *RingBuffer[T] {
	return NewRingBuffer[T](DefaultCapacity)
}

// WithIDAllocator swaps the buffer's id allocation strategy and returns
// the buffer for chaining.
func (b *RingBuffer[T]) WithIDAllocator(alloc IDAllocator) *RingBuffer[T] {
	b.idAlloc = alloc
	return b
}

// WithClock swaps the buffer's timestamp source, primarily for
// deterministic tests (see FixedClock).
func (b *RingBuffer[T]) WithClock(now func() uint64) *RingBuffer[T] {
	if now == nil {
		now = clock.NowNanos
	}
	b.now = now
	return b
}

// WithObserver attaches an Observer that is notified of every successful
// write and eviction. It never affects the insertion or iteration
// algorithm.
func (b *RingBuffer[T]) WithObserver(o Observer) *RingBuffer[T] {
	if o == nil {
		o = NoOpObserver{}
	}
	b.observer = o
	return b
}

// Len returns the number of entries currently held.
func (b *RingBuffer[T]) Len() int {
	return b.length / wire.EntrySize
}

// Capacity returns the buffer's fixed byte capacity.
func (b *RingBuffer[T]) Capacity() int {
	return len(b.data)
}

func (b *RingBuffer[T]) end() int {
	return (b.begin + b.length) % len(b.data)
}

// write performs the insertion algorithm: evict-if-full, then copy the
// entry's bytes in (straddling the seam if necessary).
func (b *RingBuffer[T]) write(entry [wire.EntrySize]byte) {
	const E = wire.EntrySize
	capacity := len(b.data)
	end := b.end()

	if capacity-b.length < E {
		b.begin = (b.begin + E) % capacity
		b.length -= E
		b.observer.ObserveEviction()
	}

	if end+E > capacity {
		middle := capacity - end
		copy(b.data[end:capacity], entry[:middle])
		copy(b.data[0:E-middle], entry[middle:])
	} else {
		copy(b.data[end:end+E], entry[:])
	}

	b.length += E
	if b.length > capacity {
		panic("eep: RingBuffer length exceeded capacity")
	}
	b.observer.ObserveBytes(E)
}

// Event records a point-in-time occurrence and returns its id.
func (b *RingBuffer[T]) Event(t T, why TraceID) TraceID {
	id := b.idAlloc()
	b.insert(t, id, why, Event)
	b.observer.ObserveEvent()
	return id
}

// Start records the beginning of an interval and returns an id the
// caller must later pass to Stop.
func (b *RingBuffer[T]) Start(t T, why TraceID) TraceID {
	id := b.idAlloc()
	b.insert(t, id, why, Start)
	b.observer.ObserveStart()
	return id
}

// Stop records the end of the interval begun with id. why is never
// carried on a Stop entry.
func (b *RingBuffer[T]) Stop(id TraceID, t T) {
	b.insert(t, id, nil, Stop)
	b.observer.ObserveStop()
}

func (b *RingBuffer[T]) insert(t T, id TraceID, why TraceID, kind TraceKind) {
	w := wire.Entry{
		Tag:       t.Tag(),
		Timestamp: b.now(),
		ID:        id.U32(),
		Kind:      uint8(kind),
	}

	if thread, ok := id.Thread(); ok {
		w.HasThread = true
		w.Thread = uint64(thread)
	}

	if kind != Stop {
		if whyRef := whyFromID(why); whyRef.Present {
			w.HasWhy = true
			w.WhyID = whyRef.ID
			if whyRef.ThreadPresent {
				w.HasWhyThread = true
				w.WhyThread = uint64(whyRef.Thread)
			}
		}
	}

	b.write(wire.Encode(w))
}

// Iter returns the buffer's entries in FIFO (insertion) order, oldest
// first. It does not mutate the buffer.
func (b *RingBuffer[T]) Iter() []Entry[T] {
	if b.length == 0 {
		return nil
	}

	entries := make([]Entry[T], 0, b.Len())
	capacity := len(b.data)
	end := b.end()
	const E = wire.EntrySize

	for idx := b.begin; ; {
		var raw wire.Entry
		if idx+E > capacity {
			var tmp [E]byte
			middle := capacity - idx
			copy(tmp[:middle], b.data[idx:])
			copy(tmp[middle:], b.data[:E-middle])
			raw = wire.Decode(tmp[:])
		} else {
			raw = wire.Decode(b.data[idx : idx+E])
		}

		entries = append(entries, entryFromWire[T](raw))

		idx = (idx + E) % capacity
		if idx == end {
			break
		}
	}

	return entries
}

func entryFromWire[T Trace](raw wire.Entry) Entry[T] {
	e := Entry[T]{
		ID:        raw.ID,
		Tag:       raw.Tag,
		Timestamp: Timestamp(raw.Timestamp),
		Kind:      TraceKind(raw.Kind),
		HasThread: raw.HasThread,
		Thread:    ThreadID(raw.Thread),
	}
	if raw.HasWhy {
		e.Why = Why{
			Present:       true,
			ThreadPresent: raw.HasWhyThread,
			Thread:        ThreadID(raw.WhyThread),
			ID:            raw.WhyID,
		}
	}
	return e
}
