// Package thread provides a uniform, cross-platform abstraction for
// OS-level worker threads: spawning, naming, priority control, stack-bounds
// introspection, join/detach semantics, and thread-local storage with
// guaranteed destructor invocation on thread exit.
//
// It is the substrate a managed runtime uses to create and track its own
// worker threads without depending on any single platform's threading
// model. Workers are goroutines permanently locked to their OS thread, so
// per-thread OS state (name, priority, signal mask) is real and stable for
// the worker's lifetime, and the OS thread is destroyed when the worker
// returns.
//
// # Quick Start
//
//	package main
//
//	import "github.com/kolkov/osthread/thread"
//
//	func main() {
//		thread.Init()
//		defer thread.Fini()
//
//		done := make(chan struct{})
//		key := thread.CreateLocal(func(value any) {
//			// Runs on the worker, at thread exit, with the last-set value.
//			value.(interface{ Close() error }).Close()
//		})
//
//		thread.Start("worker", func(param any) {
//			defer close(done)
//			thread.SetLocal(key, openSomething(param))
//			// ... thread body ...
//		}, 42)
//		<-done
//	}
//
// # TLS Destructors
//
// Keys created with a non-nil destructor are tracked in a process-wide
// registry. When a worker exits, every registered destructor runs against
// that worker's last-set value, exactly once, whether or not the worker
// cleaned up explicitly. The registry is active between [Init] and [Fini];
// a worker that starts or finishes outside that window is swept as a safe
// no-op. Destructors run under the registry lock and must not create or
// delete keys.
//
// # Join and Detach
//
// A worker that wants to be waited on mints its own join id with
// [CurrentJoinID] and hands it to whoever will wait. The id is consumed
// exactly once, by [Join] (block until full termination) or [Detach]
// (release without waiting). Workers that never mint an id are implicitly
// detached.
//
// # Error Model
//
// Conditions a caller can act on (creation failure, unavailable stack
// bounds, unsupported name retrieval) surface as return values. Platform
// contract violations such as a configured priority the OS rejects, a
// signal mask that cannot be restored, key-space exhaustion, or join
// misuse terminate the process with a diagnostic: retry cannot fix a
// broken host environment.
package thread
