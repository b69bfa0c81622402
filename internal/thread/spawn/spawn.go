// Package spawn creates and tracks the module's worker threads.
//
// A worker is a goroutine locked to its OS thread for its entire life. The
// trampoline is the goroutine's literal entry point: it adapts the Go
// runtime's "run this function on a fresh goroutine" contract into the
// substrate's thread-start contract: lock the thread, apply the configured
// priority override, set the OS-visible name, construct the per-thread
// bookkeeping object and publish it through thread-local storage, unblock
// the profiling signal, and only then invoke the caller's start function.
//
// Because the goroutine is never unlocked, the OS thread is destroyed when
// the trampoline returns; the deferred destructor sweep that runs just
// before that is the thread-exit notification the TLS layer relies on.
package spawn

import (
	"errors"
	"runtime"
	"strconv"

	"github.com/kolkov/osthread/internal/thread/flags"
	"github.com/kolkov/osthread/internal/thread/introspect"
	"github.com/kolkov/osthread/internal/thread/syslog"
	"github.com/kolkov/osthread/internal/thread/tls"
)

// StartFunc is the caller-supplied thread body. It receives the opaque
// parameter passed to Start and must not panic past its own boundary; any
// failure inside it is the caller's responsibility.
type StartFunc func(param any)

// ErrNilStartFunction is returned by Start when no thread body is supplied.
// It is the only creation failure a caller can see: once the goroutine is
// handed to the runtime there is no partial-success state.
var ErrNilStartFunction = errors.New("spawn: nil start function")

// startContext carries the spawn arguments across the thread-creation
// boundary. It is created by the spawning side, exclusively owned by the
// trampoline until consumed on the new thread, and never mutated after
// construction.
type startContext struct {
	name  string
	fn    StartFunc
	param any
}

// consume copies the fields out and clears them, completing the ownership
// handoff. The context must not be touched afterwards.
func (c *startContext) consume() (name string, fn StartFunc, param any) {
	name, fn, param = c.name, c.fn, c.param
	c.name, c.fn, c.param = "", nil, nil
	return name, fn, param
}

// applyPriority is the platform priority implementation. It is a variable so
// fatal-path tests can substitute a failing implementation without depending
// on host scheduling permissions.
var applyPriority = setCurrentPriority

// MaxStackSize is the stack budget a worker thread is sized for:
// 128 x word-size KiB, the same figure native runtimes pass to the thread
// attribute. The Go runtime grows goroutine stacks on demand, so here the
// value is advisory, a heuristic bound for callers that partition work by
// stack depth.
func MaxStackSize() int {
	const wordSize = strconv.IntSize / 8
	return 128 * wordSize * 1024
}

// Start spawns a worker thread running fn(param).
//
// name is a short human-readable label; only the first 15 characters are
// guaranteed to survive platform truncation. The returned error is nil once
// the thread is on its way: either the new thread ends up fully running the
// user function, or the attempt is reported failed here and no thread
// exists.
func Start(name string, fn StartFunc, param any) error {
	if fn == nil {
		return ErrNilStartFunction
	}
	ctx := &startContext{name: name, fn: fn, param: param}
	go trampoline(ctx)
	return nil
}

// trampoline is the worker thread's entry point. See the package comment
// for the adaptation steps; their order matches the native trampoline:
// priority, context consumption, name, bookkeeping, signal mask, user code.
func trampoline(ctx *startContext) {
	runtime.LockOSThread()
	// Deliberately not unlocked: a locked goroutine that returns takes its
	// OS thread down with it, which is exactly the lifetime a worker
	// thread needs.

	// A configured priority that cannot be applied is fatal. A silently
	// wrong priority would corrupt scheduling assumptions elsewhere, and
	// no retry can fix a rejected scheduling request.
	if priority := flags.WorkerPriority(); priority != flags.PriorityUnset {
		if err := applyPriority(priority); err != nil {
			syslog.Fatalf("setting thread priority to %d failed: %v", priority, err)
			return
		}
	}

	name, fn, param := ctx.consume()
	name = introspect.TruncateName(name)

	// The OS refusing a (pre-truncated) name is not worth dying over; the
	// thread simply keeps its default name.
	_ = introspect.SetCurrentThreadName(name)

	th := attachCurrent(name)
	if th == nil {
		// At capacity. The user function is skipped entirely rather than
		// invoked with missing bookkeeping; the thread just unwinds.
		return
	}
	defer th.exit()
	defer tls.RunDestructorsForCurrentThread()

	unblockProfilerSignal()

	syslog.Debugf("thread %q started trace_id=%d token=%s",
		th.Name(), th.TraceID(), th.Token())

	fn(param)

	syslog.Debugf("thread %q exiting trace_id=%d token=%s",
		th.Name(), th.TraceID(), th.Token())
}
