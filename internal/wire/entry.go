// Package wire defines the fixed-width binary layout of a trace entry and
// encodes/decodes it field-by-field, in the manner of a hand-rolled
// C-struct marshaler rather than an unsafe memory reinterpretation.
package wire

import "encoding/binary"

// EntrySize is the constant, fixed width of one encoded entry, in bytes.
//
// Layout (little-endian), offsets in bytes:
//
//	0      flags byte: bit0 why-present, bit1 why-thread-present, bit2 thread-present
//	1..9   why thread id   (uint64, meaningful only if bit1 set)
//	9..13  why trace id    (uint32, meaningful only if bit0 set)
//	13..21 thread id       (uint64, meaningful only if bit2 set)
//	21..25 trace id        (uint32)
//	25..29 tag             (uint32)
//	29..37 timestamp       (uint64, nanoseconds)
//	37..38 kind            (uint8)
const EntrySize = 38

const (
	flagWhyPresent       = 1 << 0
	flagWhyThreadPresent = 1 << 1
	flagThreadPresent    = 1 << 2
)

// Entry is the flat, language-agnostic shape of one packed trace record.
// Optionality is carried out-of-band via Has* booleans rather than Go's
// nil, since the encoded form has no pointers.
type Entry struct {
	HasWhy       bool
	HasWhyThread bool
	WhyThread    uint64
	WhyID        uint32
	HasThread    bool
	Thread       uint64
	ID           uint32
	Tag          uint32
	Timestamp    uint64
	Kind         uint8
}

// Encode writes e into a freshly allocated EntrySize-byte buffer.
func Encode(e Entry) [EntrySize]byte {
	var buf [EntrySize]byte

	var flags byte
	if e.HasWhy {
		flags |= flagWhyPresent
	}
	if e.HasWhyThread {
		flags |= flagWhyThreadPresent
	}
	if e.HasThread {
		flags |= flagThreadPresent
	}
	buf[0] = flags

	binary.LittleEndian.PutUint64(buf[1:9], e.WhyThread)
	binary.LittleEndian.PutUint32(buf[9:13], e.WhyID)
	binary.LittleEndian.PutUint64(buf[13:21], e.Thread)
	binary.LittleEndian.PutUint32(buf[21:25], e.ID)
	binary.LittleEndian.PutUint32(buf[25:29], e.Tag)
	binary.LittleEndian.PutUint64(buf[29:37], e.Timestamp)
	buf[37] = e.Kind

	return buf
}

// Decode reconstructs an Entry from an EntrySize-byte slice. The caller
// must supply a slice of exactly EntrySize bytes; a split-seam read must
// already have been reassembled into a contiguous temporary before
// calling Decode.
func Decode(buf []byte) Entry {
	flags := buf[0]
	return Entry{
		HasWhy:       flags&flagWhyPresent != 0,
		HasWhyThread: flags&flagWhyThreadPresent != 0,
		WhyThread:    binary.LittleEndian.Uint64(buf[1:9]),
		WhyID:        binary.LittleEndian.Uint32(buf[9:13]),
		HasThread:    flags&flagThreadPresent != 0,
		Thread:       binary.LittleEndian.Uint64(buf[13:21]),
		ID:           binary.LittleEndian.Uint32(buf[21:25]),
		Tag:          binary.LittleEndian.Uint32(buf[25:29]),
		Timestamp:    binary.LittleEndian.Uint64(buf[29:37]),
		Kind:         buf[37],
	}
}
