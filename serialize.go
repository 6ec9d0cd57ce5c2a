package eep

import (
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

// jsonAPI is the structured-value encoder named as an external
// collaborator in SPEC_FULL.md §6: a drop-in, faster alternative to
// encoding/json that still honors json.Marshaler, so every MarshalJSON
// method below works whether invoked through this package or through the
// standard library directly.
var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalJSON renders t as its newtype-wrapped numeric value.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return jsonAPI.Marshal(uint64(t))
}

// MarshalJSON renders id as its newtype-wrapped numeric value.
func (id ThreadID) MarshalJSON() ([]byte, error) {
	return jsonAPI.Marshal(uint64(id))
}

// MarshalJSON renders k as its unit-variant name.
func (k TraceKind) MarshalJSON() ([]byte, error) {
	return jsonAPI.Marshal(k.String())
}

// MarshalJSON renders why as Option<(Option<ThreadId>, u32)>: null when
// absent, else a two-element array of [threadOrNull, id].
func (w Why) MarshalJSON() ([]byte, error) {
	if !w.Present {
		return []byte("null"), nil
	}
	var thread interface{}
	if w.ThreadPresent {
		thread = w.Thread
	}
	return jsonAPI.Marshal([2]interface{}{thread, w.ID})
}

// entryJSON mirrors Entry's six fields in the exact order SPEC_FULL.md
// §4.4 mandates: why, thread, id, tag, timestamp, kind.
type entryJSON struct {
	Why       Why       `json:"why"`
	Thread    *ThreadID `json:"thread"`
	ID        uint32    `json:"id"`
	Tag       uint32    `json:"tag"`
	Timestamp Timestamp `json:"timestamp"`
	Kind      TraceKind `json:"kind"`
}

// MarshalJSON renders e as the six-field structure §4.4 specifies.
func (e Entry[T]) MarshalJSON() ([]byte, error) {
	j := entryJSON{
		Why:       e.Why,
		ID:        e.ID,
		Tag:       e.Tag,
		Timestamp: e.Timestamp,
		Kind:      e.Kind,
	}
	if e.HasThread {
		j.Thread = &e.Thread
	}
	data, err := jsonAPI.Marshal(j)
	if err != nil {
		return nil, WrapError("Serialize", ErrCodeSerialize, err)
	}
	return data, nil
}

// ringBufferJSON mirrors the two-field structure §4.4 mandates:
// {"labels": {...}, "entries": [...]}.
type ringBufferJSON[T Trace] struct {
	Labels  map[string]string `json:"labels"`
	Entries []Entry[T]        `json:"entries"`
}

// MarshalJSON renders b's labels map (every tag observed, mapped to its
// label) and its entries in FIFO order.
func (b *RingBuffer[T]) MarshalJSON() ([]byte, error) {
	entries := b.Iter()

	labels := make(map[string]string)
	for _, e := range entries {
		key := strconv.FormatUint(uint64(e.Tag), 10)
		if _, ok := labels[key]; !ok {
			labels[key] = e.Label()
		}
	}

	j := ringBufferJSON[T]{Labels: labels, Entries: entries}
	data, err := jsonAPI.Marshal(j)
	if err != nil {
		return nil, WrapError("Serialize", ErrCodeSerialize, err)
	}
	return data, nil
}
