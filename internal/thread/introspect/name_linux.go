//go:build linux

package introspect

import (
	"bytes"
	"unsafe"

	"golang.org/x/sys/unix"
)

// nameBufferSize is the kernel's comm buffer: 16 bytes including the
// terminating NUL.
const nameBufferSize = 16

// setCurrentThreadName names the calling thread via prctl(PR_SET_NAME).
// The name has been truncated by the caller, so the kernel never rejects it
// for length the way pthread_setname_np silently would.
func setCurrentThreadName(name string) error {
	var buf [nameBufferSize]byte
	copy(buf[:nameBufferSize-1], name)
	return unix.Prctl(unix.PR_SET_NAME, uintptr(unsafe.Pointer(&buf[0])), 0, 0, 0)
}

// currentThreadName reads the calling thread's comm name back via
// prctl(PR_GET_NAME).
func currentThreadName() (string, bool) {
	var buf [nameBufferSize]byte
	if err := unix.Prctl(unix.PR_GET_NAME, uintptr(unsafe.Pointer(&buf[0])), 0, 0, 0); err != nil {
		return "", false
	}
	if i := bytes.IndexByte(buf[:], 0); i >= 0 {
		return string(buf[:i]), true
	}
	return string(buf[:]), true
}
