package eep

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeShapeAndLabels(t *testing.T) {
	b := DefaultRingBuffer[SimpleTrace]()
	b.Event(FooEvent, nil)
	id := b.Start(OperationThing, nil)
	b.Stop(id, OperationThing)

	data, err := b.MarshalJSON()
	require.NoError(t, err)

	var decoded struct {
		Labels  map[string]string `json:"labels"`
		Entries []json.RawMessage `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, map[string]string{"0": "Foo", "1": "Thing"}, decoded.Labels)
	assert.Len(t, decoded.Entries, 3)
}

func TestSerializeEntryFieldOrderAndKindName(t *testing.T) {
	b := DefaultRingBuffer[SimpleTrace]()
	b.Event(FooEvent, nil)

	entries := b.Iter()
	require.Len(t, entries, 1)

	data, err := entries[0].MarshalJSON()
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &fields))
	prev := -1
	for _, key := range []string{"why", "thread", "id", "tag", "timestamp", "kind"} {
		_, ok := fields[key]
		assert.True(t, ok, "missing field %q", key)
		pos := strings.Index(string(data), `"`+key+`":`)
		assert.Greater(t, pos, prev, "field %q out of order", key)
		prev = pos
	}

	var kind string
	require.NoError(t, json.Unmarshal(fields["kind"], &kind))
	assert.Equal(t, "Event", kind)

	var why interface{}
	require.NoError(t, json.Unmarshal(fields["why"], &why))
	assert.Nil(t, why)
}

func TestSerializeWhyIsTwoElementArrayWhenPresent(t *testing.T) {
	b := DefaultRingBuffer[SimpleTrace]()
	parent := b.Event(FooEvent, nil)
	b.Start(OperationThing, parent)

	entries := b.Iter()
	require.Len(t, entries, 2)

	data, err := entries[1].MarshalJSON()
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &fields))

	var why []json.RawMessage
	require.NoError(t, json.Unmarshal(fields["why"], &why))
	assert.Len(t, why, 2)
}

func TestSerializeEmptyBufferHasEmptyLabelsAndEntries(t *testing.T) {
	b := DefaultRingBuffer[SimpleTrace]()
	data, err := b.MarshalJSON()
	require.NoError(t, err)

	var decoded struct {
		Labels  map[string]string `json:"labels"`
		Entries []json.RawMessage `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Empty(t, decoded.Labels)
	assert.Empty(t, decoded.Entries)
}
