package eep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kindsOf(entries []Entry[SimpleTrace]) []TraceKind {
	out := make([]TraceKind, len(entries))
	for i, e := range entries {
		out[i] = e.Kind
	}
	return out
}

func tagsOf(entries []Entry[SimpleTrace]) []uint32 {
	out := make([]uint32, len(entries))
	for i, e := range entries {
		out[i] = e.Tag
	}
	return out
}

func insertSixSample(b *RingBuffer[SimpleTrace]) (thingID, anotherID TraceID) {
	b.Event(FooEvent, nil)
	thingID = b.Start(OperationThing, nil)
	anotherID = b.Start(OperationAnother, nil)
	b.Event(FooEvent, nil)
	b.Stop(thingID, OperationThing)
	b.Stop(anotherID, OperationAnother)
	return
}

func TestNoRollOver(t *testing.T) {
	b := NewRingBuffer[SimpleTrace](100 * EntrySize)
	insertSixSample(b)

	entries := b.Iter()
	require.Len(t, entries, 6)
	assert.Equal(t, []TraceKind{Event, Start, Start, Event, Stop, Stop}, kindsOf(entries))
	assert.Equal(t, []uint32{0, 1, 2, 0, 1, 2}, tagsOf(entries))
	assert.Equal(t, "Foo", entries[0].Label())
	assert.Equal(t, "Thing", entries[1].Label())
	assert.Equal(t, "Another", entries[2].Label())
}

func TestRollOverEven(t *testing.T) {
	b := NewRingBuffer[SimpleTrace](5 * EntrySize)
	insertSixSample(b)

	entries := b.Iter()
	require.Len(t, entries, 5)
	assert.Equal(t, []TraceKind{Start, Start, Event, Stop, Stop}, kindsOf(entries))
	assert.Equal(t, []uint32{1, 2, 0, 1, 2}, tagsOf(entries))
}

func TestRollOverNonAligned(t *testing.T) {
	b := NewRingBuffer[SimpleTrace](3*EntrySize + 1)
	insertSixSample(b)

	entries := b.Iter()
	require.Len(t, entries, 3)
	assert.Equal(t, []TraceKind{Event, Stop, Stop}, kindsOf(entries))
	assert.Equal(t, []uint32{0, 1, 2}, tagsOf(entries))
}

func TestWhyThreading(t *testing.T) {
	b := DefaultRingBuffer[SimpleTrace]()

	parent := b.Event(FooEvent, nil)
	c1 := b.Start(OperationThing, parent)
	b.Stop(c1, OperationThing)
	c2 := b.Start(OperationThing, nil)
	b.Stop(c2, OperationThing)

	entries := b.Iter()
	require.Len(t, entries, 5)

	parentThread, parentHasThread := parent.Thread()
	assert.True(t, entries[1].Why.Present)
	assert.Equal(t, parentHasThread, entries[1].Why.ThreadPresent)
	assert.Equal(t, parentThread, entries[1].Why.Thread)
	assert.Equal(t, parent.U32(), entries[1].Why.ID)

	assert.False(t, entries[2].Why.Present)
	assert.False(t, entries[3].Why.Present)
	assert.False(t, entries[4].Why.Present)
}

func TestToggleDisabled(t *testing.T) {
	buf := DefaultRingBuffer[SimpleTrace]()
	toggle := NewDisabledToggleSink[SimpleTrace](buf)

	id := toggle.Event(FooEvent, nil)
	assert.NotNil(t, id)
	assert.Empty(t, buf.Iter())
}

func TestToggleReEnabled(t *testing.T) {
	buf := DefaultRingBuffer[SimpleTrace]()
	toggle := NewDisabledToggleSink[SimpleTrace](buf)
	toggle.Enable()

	toggle.Event(FooEvent, nil)

	entries := buf.Iter()
	require.Len(t, entries, 1)
	assert.Equal(t, uint32(0), entries[0].Tag)
	assert.Equal(t, Event, entries[0].Kind)
}

func TestEmptyBufferIterationYieldsNothing(t *testing.T) {
	b := DefaultRingBuffer[SimpleTrace]()
	assert.Empty(t, b.Iter())
}

func TestCapacityEqualsEntrySizePlusOneActsAsOneEntryBuffer(t *testing.T) {
	b := NewRingBuffer[SimpleTrace](EntrySize + 1)
	b.Event(FooEvent, nil)
	b.Event(FooEvent, nil)
	id := b.Event(FooEvent, nil)

	entries := b.Iter()
	require.Len(t, entries, 1)
	assert.Equal(t, id.U32(), entries[0].ID)
}

func TestConstructionPanicsOnTooSmallCapacity(t *testing.T) {
	assert.Panics(t, func() {
		NewRingBuffer[SimpleTrace](EntrySize)
	})
	assert.Panics(t, func() {
		NewRingBuffer[SimpleTrace](EntrySize - 1)
	})
}

func TestIterationCountMatchesLengthInvariant(t *testing.T) {
	b := NewRingBuffer[SimpleTrace](5 * EntrySize)
	for i := 0; i < 11; i++ {
		b.Event(FooEvent, nil)
	}
	entries := b.Iter()
	assert.Equal(t, 5, len(entries))
	assert.Equal(t, 5, b.Len())
}

func TestThreadedTraceIDsUniquePerThread(t *testing.T) {
	b := NewRingBuffer[SimpleTrace](100 * EntrySize).WithIDAllocator(ThreadedAllocator)
	seen := make(map[uint32]bool)
	for i := 0; i < 10; i++ {
		id := b.Event(FooEvent, nil)
		assert.False(t, seen[id.U32()])
		seen[id.U32()] = true
		thread, ok := id.Thread()
		assert.True(t, ok)
		assert.Equal(t, CurrentThread(), thread)
	}
}

func TestStopDoesNotCarryWhy(t *testing.T) {
	b := DefaultRingBuffer[SimpleTrace]()
	parent := b.Event(FooEvent, nil)
	id := b.Start(OperationThing, parent)
	b.Stop(id, OperationThing)

	entries := b.Iter()
	require.Len(t, entries, 3)
	assert.False(t, entries[2].Why.Present)
}
