//go:build !linux && !windows

package introspect

import "github.com/kolkov/osthread/internal/thread/goid"

// No cheap native thread id is reachable from pure Go on these targets.
// The goroutine id is a faithful substitute for workers this module spawns,
// since those goroutines stay locked to one OS thread for life.
func currentTraceID() int64 {
	return goid.Current()
}
