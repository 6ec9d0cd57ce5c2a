//go:build darwin && cgo

package signpost

/*
#include <os/signpost.h>
#include <os/log.h>
#include <stdint.h>

static os_log_t eep_log(void) {
    static os_log_t log;
    static int initialized;
    if (!initialized) {
        log = os_log_create("eep", "trace");
        initialized = 1;
    }
    return log;
}

static void eep_signpost_event(uint32_t tag) {
    os_signpost_event_emit(eep_log(), OS_SIGNPOST_ID_EXCLUSIVE, "trace", "%u", tag);
}

static void eep_signpost_start(uint32_t tag) {
    os_signpost_interval_begin(eep_log(), OS_SIGNPOST_ID_EXCLUSIVE, "trace", "%u", tag);
}

static void eep_signpost_end(uint32_t tag) {
    os_signpost_interval_end(eep_log(), OS_SIGNPOST_ID_EXCLUSIVE, "trace", "%u", tag);
}
*/
import "C"

type darwinHost struct{}

func (darwinHost) Event(tag uint32, _ [4]uintptr) {
	C.eep_signpost_event(C.uint32_t(tag))
}

func (darwinHost) Start(tag uint32, _ [4]uintptr) {
	C.eep_signpost_start(C.uint32_t(tag))
}

func (darwinHost) End(tag uint32, _ [4]uintptr) {
	C.eep_signpost_end(C.uint32_t(tag))
}

var (
	defaultHost Host = darwinHost{}
	available        = true
)
