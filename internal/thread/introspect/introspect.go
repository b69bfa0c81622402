// Package introspect answers questions about the calling OS thread: its
// stack bounds, its OS-visible name, and a lightweight identifier suitable
// for external trace correlation.
//
// Everything here is platform-conditional behind one contract, selected at
// build time: each concern has per-target files plus a pure-Go fallback, and
// no code branches on the platform identity at runtime.
package introspect

// MaxNameLen is the number of visible characters an OS thread name is
// guaranteed to keep. Linux caps comm names at 16 bytes including the
// terminating NUL; every target truncates to this bound so a name renders
// identically everywhere.
const MaxNameLen = 15

// TruncateName returns name cut to the platform-portable limit.
func TruncateName(name string) string {
	if len(name) > MaxNameLen {
		return name[:MaxNameLen]
	}
	return name
}

// CurrentStackBounds reports the calling thread's stack range as
// [lo, hi), with lo < hi when ok.
//
// ok=false is a valid outcome, not an error: some build targets cannot
// report bounds, and callers with stack heuristics must keep a fallback.
// The range is valid at the moment of the call; the Go runtime may move a
// goroutine stack when it grows, so bounds should be re-queried rather than
// cached across deep call chains.
func CurrentStackBounds() (lo, hi uintptr, ok bool) {
	return currentStackBounds()
}

// CurrentThreadName returns the OS-visible name of the calling thread.
// ok=false means the platform offers no retrieval, mirroring targets where
// names can be set but never read back.
func CurrentThreadName() (string, bool) {
	return currentThreadName()
}

// SetCurrentThreadName names the calling OS thread, truncated to the
// platform limit. Callers that need the name to stick must have locked the
// goroutine to its thread first. On targets without a naming facility this
// is a no-op.
func SetCurrentThreadName(name string) error {
	return setCurrentThreadName(TruncateName(name))
}

// CurrentTraceID returns a lightweight identifier for the calling thread,
// suited for correlating externally captured traces. It is distinct from
// the join identifier: a trace id may be read any number of times by anyone
// and never represents a joinable handle.
func CurrentTraceID() int64 {
	return currentTraceID()
}
