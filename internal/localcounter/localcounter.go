// Package localcounter approximates a thread-local wrapping counter.
//
// The source implementation keys a per-OS-thread counter cell off
// thread_local!. Since Go goroutines have no equivalent storage, each
// distinct caller-supplied identity (normally a goroutine id) gets its own
// lazily-created atomic counter, looked up on every call. This preserves
// per-thread independence and the accepted wrap-around behavior without
// requiring real TLS.
package localcounter

import (
	"sync"
	"sync/atomic"
)

// Counters maps an opaque identity to an independent wrapping uint32 counter.
type Counters struct {
	mu    sync.RWMutex
	byKey map[uint64]*atomic.Uint32
}

// NewCounters creates an empty set of per-identity counters.
func NewCounters() *Counters {
	return &Counters{byKey: make(map[uint64]*atomic.Uint32)}
}

// Next returns the next value (starting at 1, wrapping at 2^32) for the
// counter associated with key, creating it if necessary.
func (c *Counters) Next(key uint64) uint32 {
	c.mu.RLock()
	ctr, ok := c.byKey[key]
	c.mu.RUnlock()

	if !ok {
		c.mu.Lock()
		ctr, ok = c.byKey[key]
		if !ok {
			ctr = &atomic.Uint32{}
			c.byKey[key] = ctr
		}
		c.mu.Unlock()
	}

	return ctr.Add(1)
}
