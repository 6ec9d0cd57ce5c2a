package clock

import "time"

var epoch = time.Now()

// nowNanosFallback measures elapsed monotonic time since package init via
// time.Since, which uses the runtime's monotonic clock reading.
func nowNanosFallback() uint64 {
	return uint64(time.Since(epoch).Nanoseconds())
}
