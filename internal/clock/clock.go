// Package clock resolves the host monotonic clock reading used to
// timestamp trace entries.
package clock

// NowNanos returns a monotonic nanosecond count from an unspecified
// epoch. Values are comparable only for ordering, never across processes.
func NowNanos() uint64 {
	return nowNanos()
}
