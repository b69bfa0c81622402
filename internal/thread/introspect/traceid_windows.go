//go:build windows

package introspect

import "golang.org/x/sys/windows"

// currentTraceID is the Win32 thread id of the calling thread.
func currentTraceID() int64 {
	return int64(windows.GetCurrentThreadId())
}
