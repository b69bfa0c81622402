// Package tls emulates POSIX-style thread-local storage with destructors.
//
// Go exposes no native per-thread storage key, let alone one with an
// exit-time destructor, so every target uses the emulated path: a
// process-wide registry of (key, destructor) pairs guarded by one mutex,
// plus a per-thread slot store addressed by the calling goroutine's id.
// Worker threads spawned by this module are goroutines locked to their OS
// thread for life, which makes the goroutine id a faithful thread address.
//
// The registry is notified that a thread is exiting by the spawn trampoline
// (the synthetic stand-in for a loader-level thread-detach callback); it then
// runs every registered destructor against that thread's per-key values.
package tls

import (
	"sync"

	"github.com/kolkov/osthread/internal/thread/goid"
)

// Destructor is a per-key cleanup callback invoked with the exiting thread's
// last-set value for the key (nil if the thread never set one).
//
// Destructors run while the registry lock is held. They must be short and
// must not call back into key registration or removal; doing so deadlocks.
type Destructor func(value any)

// entry pairs a key with its destructor. Entries exist only for keys
// registered with a non-nil destructor.
type entry struct {
	key  Key
	dtor Destructor
}

var (
	// registryMu guards entries. Registration, removal and the exit-time
	// sweep all serialize on it.
	registryMu sync.Mutex

	// entries is the ordered destructor registry. nil means the subsystem
	// is outside its Init/Cleanup window: no entries, registration
	// impossible. A thread may legitimately start or finish while the
	// registry is in that state, so nothing here treats it as an error.
	entries []entry
)

// Init opens the registry window. Must run before the first registration.
// Calling Init twice is a no-op.
func Init() {
	registryMu.Lock()
	defer registryMu.Unlock()
	if entries == nil {
		entries = make([]entry, 0, 8)
	}
}

// Cleanup closes the registry window and releases all entries. Must run
// after the last thread using destructor-bearing keys has exited.
func Cleanup() {
	registryMu.Lock()
	defer registryMu.Unlock()
	entries = nil
}

// addEntry records (key, destructor). A nil destructor creates no entry:
// the registry only tracks keys that need exit-time cleanup.
func addEntry(key Key, dtor Destructor) {
	if dtor == nil {
		return
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if entries == nil {
		// Outside the Init/Cleanup window registration is impossible
		// by contract, not a crash.
		return
	}
	entries = append(entries, entry{key: key, dtor: dtor})
}

// removeEntry drops the entry for key, if any. Removing an absent key is a
// no-op, consistent with "no entries means nothing to clean".
func removeEntry(key Key) {
	registryMu.Lock()
	defer registryMu.Unlock()
	for i := range entries {
		if entries[i].key == key {
			entries = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}

// RegisteredDestructors returns the number of live registry entries.
func RegisteredDestructors() int {
	registryMu.Lock()
	defer registryMu.Unlock()
	return len(entries)
}

// RunDestructorsForCurrentThread runs every registered destructor against
// the calling thread's values and releases the thread's slot storage.
//
// It is invoked exactly once per thread, at the moment the thread is
// exiting; the spawn trampoline owns that contract. Ordering across entries
// is insertion order, which callers must not rely on.
//
// The sweep holds the registry lock while invoking destructors, so a sweep
// on thread A serializes with registration from thread B and always sees a
// consistent snapshot. The cost is that a slow destructor delays other
// threads' registrations for that window; destructors are required to be
// small per-key cleanup callbacks.
func RunDestructorsForCurrentThread() {
	tid := goid.Current()

	registryMu.Lock()
	defer registryMu.Unlock()
	if entries == nil {
		// The thread outlived Cleanup, or started before Init. Nothing
		// to clean.
		dropSlots(tid)
		return
	}
	for _, e := range entries {
		// We access the exiting thread's value here and hand it to the
		// destructor, set or not.
		e.dtor(slotValue(tid, e.key))
	}
	dropSlots(tid)
}
