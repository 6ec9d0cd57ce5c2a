// Package threadid resolves the numeric identity of the calling goroutine.
//
// Go has no OS-thread-local storage that stays meaningful across a
// goroutine's lifetime: the runtime may migrate a goroutine between OS
// threads at any blocking point. github.com/petermattis/goid exposes the
// id the runtime itself assigns to a goroutine, which is stable for as
// long as the goroutine runs and is the closest analogue to "the current
// thread's numeric identifier" available without cgo.
package threadid

import "github.com/petermattis/goid"

// Current returns the numeric identity of the calling goroutine.
func Current() uint64 {
	return uint64(goid.Get())
}
