//go:build linux

package introspect

import "golang.org/x/sys/unix"

// currentTraceID is the kernel task id of the calling thread. Meaningful
// only while the goroutine stays locked to its thread, which holds for
// every worker this module spawns.
func currentTraceID() int64 {
	return int64(unix.Gettid())
}
