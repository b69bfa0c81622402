//go:build !linux

package spawn

// The profiler-signal inheritance hazard is specific to targets where the
// substrate manipulates pthread-style signal masks; everywhere else the
// step is a no-op.
func unblockProfilerSignal() {}
