//go:build !linux

package clock

import "time"

// nowNanos falls back to time.Now(), which is monotonic-backed on every
// platform Go supports, just not exposed as a raw CLOCK_MONOTONIC read.
func nowNanos() uint64 {
	return nowNanosFallback()
}
