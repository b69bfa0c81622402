// Package flags holds the process-wide configuration consumed by the thread
// substrate.
//
// Configuration is deliberately minimal: an optional OS scheduling priority
// for newly spawned worker threads, and a cap on concurrently live workers.
// Values are sourced from environment variables at startup (the same
// convention the detector runtime uses for GORACE-style knobs) and may be
// overridden programmatically before threads are spawned.
//
// The priority uses a distinguished sentinel meaning "do not override"; an
// absent or malformed environment value behaves identically to the sentinel.
package flags

import (
	"math"
	"os"
	"strconv"
	"sync/atomic"
)

// PriorityUnset is the sentinel priority meaning "leave the OS default".
// It is outside every platform's valid priority range.
const PriorityUnset = math.MinInt32

// Environment variables read once at package init.
const (
	// EnvWorkerPriority configures the OS priority applied to each worker
	// thread right after it starts. Platform-specific range (niceness on
	// Linux, thread priority class offsets on Windows).
	EnvWorkerPriority = "OSTHREAD_WORKER_PRIORITY"

	// EnvMaxThreads caps the number of concurrently live worker threads.
	// Zero or absent means unlimited.
	EnvMaxThreads = "OSTHREAD_MAX_THREADS"
)

var (
	// workerPriority stores the configured priority, PriorityUnset if none.
	workerPriority atomic.Int64

	// maxThreads stores the live-thread cap, 0 for unlimited.
	maxThreads atomic.Int64
)

func init() {
	workerPriority.Store(PriorityUnset)
	maxThreads.Store(0)

	if v, ok := parseEnvInt(EnvWorkerPriority); ok {
		workerPriority.Store(v)
	}
	if v, ok := parseEnvInt(EnvMaxThreads); ok && v >= 0 {
		maxThreads.Store(v)
	}
}

// parseEnvInt reads an integer environment variable. A missing or malformed
// value reports ok=false and the caller keeps its default, so misconfiguration
// degrades to "unconfigured" rather than crashing before the logger exists.
func parseEnvInt(key string) (int64, bool) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// WorkerPriority returns the configured worker-thread priority override,
// or PriorityUnset when no override is configured.
func WorkerPriority() int {
	return int(workerPriority.Load())
}

// SetWorkerPriority overrides the worker-thread priority for threads spawned
// after the call. Pass PriorityUnset to clear the override.
func SetWorkerPriority(priority int) {
	workerPriority.Store(int64(priority))
}

// MaxThreads returns the live-thread cap, 0 meaning unlimited.
func MaxThreads() int {
	return int(maxThreads.Load())
}

// SetMaxThreads sets the live-thread cap. Negative values are treated as 0
// (unlimited).
func SetMaxThreads(n int) {
	if n < 0 {
		n = 0
	}
	maxThreads.Store(int64(n))
}
