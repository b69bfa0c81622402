package tls

import (
	"sync"
	"sync/atomic"

	"github.com/kolkov/osthread/internal/thread/goid"
	"github.com/kolkov/osthread/internal/thread/syslog"
)

// Key addresses one process-wide thread-local storage slot. Keys are
// allocated by CreateKey and freed by DeleteKey; using a key after deletion
// is undefined behavior by contract and is not guarded.
type Key uint32

// KeyUnset is the distinguished sentinel; it is never a valid key.
const KeyUnset Key = 0

// nextKey allocates keys monotonically, starting at 1 so the zero value is
// always the sentinel. Keys are never reused, which keeps a stale key from
// aliasing a fresh slot.
var nextKey atomic.Uint32

// threadSlots holds one thread's key→value map. Each thread's map is only
// ever written by that thread, but the sweep and DeleteKey read and prune it
// from other threads, hence the per-thread mutex.
type threadSlots struct {
	mu     sync.Mutex
	values map[Key]any
}

// slots maps goroutine id → *threadSlots for every thread that has set at
// least one thread-local value.
var slots sync.Map

// CreateKey allocates a fresh key and, when dtor is non-nil, registers it
// for the exit-time destructor sweep. Key-space exhaustion is fatal: it
// means the process has leaked keys at a scale no retry can fix.
func CreateKey(dtor Destructor) Key {
	k := nextKey.Add(1)
	if Key(k) == KeyUnset {
		syslog.Fatalf("thread-local key space exhausted")
	}
	key := Key(k)
	addEntry(key, dtor)
	return key
}

// DeleteKey frees the key: its registry entry is removed so a subsequent
// thread exit no longer invokes the destructor, and any per-thread values
// stored under it are dropped.
func DeleteKey(key Key) {
	if key == KeyUnset {
		syslog.Fatalf("DeleteKey called with the unset sentinel key")
	}
	removeEntry(key)
	slots.Range(func(_, v any) bool {
		ts := v.(*threadSlots)
		ts.mu.Lock()
		delete(ts.values, key)
		ts.mu.Unlock()
		return true
	})
}

// Set stores value under key for the calling thread.
func Set(key Key, value any) {
	if key == KeyUnset {
		syslog.Fatalf("Set called with the unset sentinel key")
	}
	ts := slotsFor(goid.Current())
	ts.mu.Lock()
	ts.values[key] = value
	ts.mu.Unlock()
}

// Get returns the calling thread's value for key, nil when never set.
func Get(key Key) any {
	if key == KeyUnset {
		syslog.Fatalf("Get called with the unset sentinel key")
	}
	return slotValue(goid.Current(), key)
}

// slotsFor returns the slot map for tid, creating it on first use.
func slotsFor(tid int64) *threadSlots {
	if v, ok := slots.Load(tid); ok {
		return v.(*threadSlots)
	}
	v, _ := slots.LoadOrStore(tid, &threadSlots{values: make(map[Key]any)})
	return v.(*threadSlots)
}

// slotValue reads tid's value for key without creating slot storage.
func slotValue(tid int64, key Key) any {
	v, ok := slots.Load(tid)
	if !ok {
		return nil
	}
	ts := v.(*threadSlots)
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.values[key]
}

// dropSlots releases tid's slot storage once its destructors have run.
func dropSlots(tid int64) {
	slots.Delete(tid)
}
