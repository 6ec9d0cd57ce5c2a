package eep

import "github.com/fitzgen/eep/internal/threadid"

// ThreadID is an opaque numeric identifier for a thread of execution.
// Two entries carrying the same ThreadID were produced on the same
// goroutine.
type ThreadID uint64

// CurrentThread returns the identity of the calling goroutine.
func CurrentThread() ThreadID {
	return ThreadID(threadid.Current())
}
