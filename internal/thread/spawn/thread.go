package spawn

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/kolkov/osthread/internal/thread/flags"
	"github.com/kolkov/osthread/internal/thread/goid"
	"github.com/kolkov/osthread/internal/thread/introspect"
	"github.com/kolkov/osthread/internal/thread/syslog"
	"github.com/kolkov/osthread/internal/thread/tls"
)

// Thread is the per-thread bookkeeping object constructed by the trampoline
// before the user function runs. It is owned by the thread it describes and
// published to other code through thread-local storage; only the join/detach
// handshake ever hands a piece of it (the done channel) to another thread.
type Thread struct {
	name  string
	gid   int64
	trace int64

	// token correlates this thread's log records with externally captured
	// traces. Unlike the trace id it is globally unique, not reused by the
	// kernel after thread exit.
	token uuid.UUID

	// done is closed when the thread has fully terminated: user function
	// returned and TLS destructors swept. Join blocks on it.
	done chan struct{}

	// joinProduced flips when the thread mints its join id; a second
	// request is a contract violation.
	joinProduced atomic.Bool

	// releaseOnce makes detachment idempotent: the trampoline's deferred
	// exit and the TLS key destructor both try it.
	releaseOnce sync.Once
}

// Name returns the thread's label, already truncated to the platform limit.
func (t *Thread) Name() string { return t.name }

// TraceID returns the thread's trace-correlation identifier.
func (t *Thread) TraceID() int64 { return t.trace }

// Token returns the thread's globally unique correlation token.
func (t *Thread) Token() uuid.UUID { return t.token }

// release drops the thread from the live count. Safe to call more than once.
func (t *Thread) release() {
	t.releaseOnce.Do(func() {
		liveThreads.Add(-1)
	})
}

// exit finishes the thread's bookkeeping: release, then signal full
// termination to any joiner.
func (t *Thread) exit() {
	t.release()
	close(t.done)
}

var (
	// liveThreads counts workers between attach and release.
	liveThreads atomic.Int64

	// currentKey is the reserved TLS key under which each worker publishes
	// its Thread. Its destructor detaches the thread during the exit-time
	// sweep; the trampoline's own deferred exit covers threads that run
	// outside the registry's Init window.
	currentKey     tls.Key
	currentKeyOnce sync.Once
)

func threadKey() tls.Key {
	currentKeyOnce.Do(func() {
		currentKey = tls.CreateKey(func(value any) {
			if th, ok := value.(*Thread); ok {
				th.release()
			}
		})
	})
	return currentKey
}

// Current returns the calling thread's bookkeeping object, or nil when the
// caller is not a worker spawned by this package.
func Current() *Thread {
	th, _ := tls.Get(threadKey()).(*Thread)
	return th
}

// LiveThreads returns the number of currently attached workers.
func LiveThreads() int {
	return int(liveThreads.Load())
}

// attachCurrent constructs the calling thread's bookkeeping object, counts
// it against the live-thread cap, and publishes it via TLS. Returns nil when
// the runtime is at capacity; the caller must then skip the user function.
func attachCurrent(name string) *Thread {
	if max := flags.MaxThreads(); max > 0 {
		if liveThreads.Add(1) > int64(max) {
			liveThreads.Add(-1)
			syslog.Errorf("thread %q not attached: %d live threads at capacity", name, max)
			return nil
		}
	} else {
		liveThreads.Add(1)
	}

	th := &Thread{
		name:  name,
		gid:   goid.Current(),
		trace: introspect.CurrentTraceID(),
		token: uuid.New(),
		done:  make(chan struct{}),
	}
	tls.Set(threadKey(), th)
	return th
}
