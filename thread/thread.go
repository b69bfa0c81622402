// Package thread is the public API; the implementation lives under
// internal/thread. See doc.go for detailed documentation and examples.
package thread

import (
	"github.com/kolkov/osthread/internal/thread/flags"
	"github.com/kolkov/osthread/internal/thread/introspect"
	"github.com/kolkov/osthread/internal/thread/spawn"
	"github.com/kolkov/osthread/internal/thread/syslog"
	"github.com/kolkov/osthread/internal/thread/tls"
)

// StartFunc is a thread body. It receives the opaque parameter given to
// Start and must not panic past its own boundary.
type StartFunc func(param any)

// Destructor is a per-key TLS cleanup callback. It runs at thread exit with
// the exiting thread's last-set value for the key (nil if never set), while
// the registry lock is held: it must be short and must not call back into
// CreateLocal or DeleteLocal.
type Destructor func(value any)

// Key addresses one process-wide thread-local storage slot.
type Key uint32

// KeyUnset is the distinguished sentinel; it is never a valid key.
const KeyUnset Key = Key(tls.KeyUnset)

// JoinID is an opaque handle for a thread in a joinable state, valid until
// consumed by Join or Detach.
type JoinID = spawn.JoinID

// InvalidJoinID is never produced for a live thread.
const InvalidJoinID = spawn.InvalidJoinID

// PriorityUnset means "do not override the OS default priority".
const PriorityUnset = flags.PriorityUnset

// ErrNilStartFunction is returned by Start when no thread body is supplied.
var ErrNilStartFunction = spawn.ErrNilStartFunction

// Init opens the TLS destructor registry. It must run before the first
// CreateLocal with a destructor; registrations attempted earlier do not
// persist. Safe to call multiple times (subsequent calls are no-ops).
func Init() {
	tls.Init()
}

// Fini tears the registry down. It must run after the last worker using
// destructor-bearing keys has exited; workers exiting later are swept as a
// safe no-op.
func Fini() {
	tls.Cleanup()
}

// Start spawns a worker thread named name running fn(param).
//
// Only the first 15 characters of name survive platform truncation. On
// success the new thread, before invoking fn, applies any configured
// worker-priority override (fatal if the platform rejects it), names
// itself, publishes its bookkeeping through TLS, and unblocks the profiling
// signal where applicable. There is no partial success: a non-nil error
// means no thread exists.
func Start(name string, fn StartFunc, param any) error {
	return spawn.Start(name, spawn.StartFunc(fn), param)
}

// SetWorkerPriority configures the OS priority applied to workers spawned
// after the call, or PriorityUnset to clear the override. Also configurable
// via the OSTHREAD_WORKER_PRIORITY environment variable.
func SetWorkerPriority(priority int) {
	flags.SetWorkerPriority(priority)
}

// SetMaxThreads caps concurrently live workers; 0 means unlimited. A worker
// spawned at the cap skips its body entirely and unwinds.
func SetMaxThreads(n int) {
	flags.SetMaxThreads(n)
}

// LiveThreads returns the number of currently live workers.
func LiveThreads() int {
	return spawn.LiveThreads()
}

// MaxStackSize returns the advisory per-worker stack budget
// (128 x word-size KiB).
func MaxStackSize() int {
	return spawn.MaxStackSize()
}

// SetDebugLogging toggles worker lifecycle tracing on the process log sink.
func SetDebugLogging(enabled bool) {
	syslog.SetDebug(enabled)
}

// CreateLocal allocates a TLS key. A non-nil destructor registers the key
// for the exit-time sweep. Key-space exhaustion is fatal.
func CreateLocal(destructor Destructor) Key {
	return Key(tls.CreateKey(tls.Destructor(destructor)))
}

// DeleteLocal frees a key and removes any registered destructor, so a
// subsequent thread exit no longer invokes it. Using a key after deletion
// is undefined behavior by contract.
func DeleteLocal(key Key) {
	tls.DeleteKey(tls.Key(key))
}

// SetLocal stores value under key for the calling thread.
func SetLocal(key Key, value any) {
	tls.Set(tls.Key(key), value)
}

// GetLocal returns the calling thread's value for key, nil when never set.
func GetLocal(key Key) any {
	return tls.Get(tls.Key(key))
}

// CurrentJoinID mints the calling worker's join id. Must be invoked by a
// worker about itself, at most once; violations are fatal.
func CurrentJoinID() JoinID {
	return spawn.CurrentJoinID()
}

// Join blocks until the thread behind id has fully terminated (body
// returned and TLS destructors swept) and reclaims the handle. Joining a
// consumed or unknown id is fatal.
func Join(id JoinID) {
	spawn.Join(id)
}

// Detach reclaims the handle behind id without waiting.
func Detach(id JoinID) {
	spawn.Detach(id)
}

// CurrentStackBounds reports the calling thread's stack range [lo, hi).
// ok=false means the build target cannot report bounds; callers must treat
// that as a valid outcome.
func CurrentStackBounds() (lo, hi uintptr, ok bool) {
	return introspect.CurrentStackBounds()
}

// CurrentName returns the calling thread's OS-visible name; ok=false means
// the platform does not support retrieval.
func CurrentName() (name string, ok bool) {
	return introspect.CurrentThreadName()
}

// CurrentTraceID returns a lightweight identifier for the calling thread,
// suited for external trace correlation and distinct from the join id.
func CurrentTraceID() int64 {
	return introspect.CurrentTraceID()
}
