//go:build windows

package spawn

import (
	"golang.org/x/sys/windows"
)

var (
	modkernel32           = windows.NewLazySystemDLL("kernel32.dll")
	procSetThreadPriority = modkernel32.NewProc("SetThreadPriority")
)

// setCurrentPriority applies a Win32 thread priority to the calling thread
// via SetThreadPriority on the current-thread pseudo handle. priority is one
// of the THREAD_PRIORITY_* values; the API rejects anything else, which the
// trampoline escalates to a fatal diagnostic.
func setCurrentPriority(priority int) error {
	r1, _, err := procSetThreadPriority.Call(
		uintptr(windows.CurrentThread()),
		uintptr(priority),
	)
	if r1 == 0 {
		return err
	}
	return nil
}
