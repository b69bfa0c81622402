package tls

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// resetRegistry gives each test a fresh, initialized registry and restores
// an initialized registry afterwards so test order does not matter.
func resetRegistry(t *testing.T) {
	t.Helper()
	Cleanup()
	Init()
	t.Cleanup(func() {
		Cleanup()
		Init()
	})
}

// runOnThread executes fn on its own goroutine and, before the goroutine
// returns, runs the exit-time destructor sweep, the same sequence the spawn
// trampoline performs for a real worker thread.
func runOnThread(t *testing.T, fn func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer RunDestructorsForCurrentThread()
		fn()
	}()
	<-done
}

// TestDestructorRunsOnceWithLastValue verifies the core TLS contract:
// set a value, exit the thread, destructor fires exactly once with the
// last-set value.
func TestDestructorRunsOnceWithLastValue(t *testing.T) {
	resetRegistry(t)

	var (
		mu    sync.Mutex
		calls []any
	)
	key := CreateKey(func(value any) {
		mu.Lock()
		calls = append(calls, value)
		mu.Unlock()
	})
	defer DeleteKey(key)

	runOnThread(t, func() {
		Set(key, "first")
		Set(key, "last")
	})

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, calls, 1, "destructor must run exactly once")
	require.Equal(t, "last", calls[0], "destructor must see the last-set value")
}

// TestNilDestructorCreatesNoEntry verifies registration with a nil
// destructor is a no-op on the registry.
func TestNilDestructorCreatesNoEntry(t *testing.T) {
	resetRegistry(t)

	before := RegisteredDestructors()
	key := CreateKey(nil)
	require.NotEqual(t, KeyUnset, key)
	require.Equal(t, before, RegisteredDestructors(), "nil destructor must not add an entry")

	// The key itself is still usable for plain storage.
	runOnThread(t, func() {
		Set(key, 42)
		require.Equal(t, 42, Get(key))
	})
}

// TestDeleteKeyPreventsDestructor verifies deleting a key removes it from
// the registry so a later thread exit does not invoke its destructor, even
// when the value was set before deletion.
func TestDeleteKeyPreventsDestructor(t *testing.T) {
	resetRegistry(t)

	fired := false
	key := CreateKey(func(any) { fired = true })

	runOnThread(t, func() {
		Set(key, "doomed")
		DeleteKey(key)
	})

	require.False(t, fired, "destructor must not run for a deleted key")
}

// TestDestructorSeesNilWhenNeverSet verifies the sweep hands the destructor
// a nil value for threads that never stored one under the key.
func TestDestructorSeesNilWhenNeverSet(t *testing.T) {
	resetRegistry(t)

	var got any = "sentinel"
	key := CreateKey(func(value any) { got = value })
	defer DeleteKey(key)

	runOnThread(t, func() {})

	require.Nil(t, got, "unset slot must sweep as nil")
}

// TestSweepOutsideInitWindow verifies the sweep is a safe no-op before Init
// and after Cleanup: a thread may start or finish outside the registry's
// active window.
func TestSweepOutsideInitWindow(t *testing.T) {
	resetRegistry(t)

	fired := false
	key := CreateKey(func(any) { fired = true })

	Cleanup()

	runOnThread(t, func() {
		Set(key, "late")
	})
	require.False(t, fired, "sweep after Cleanup must not invoke destructors")

	// Registration while the window is closed is impossible by contract.
	CreateKey(func(any) { fired = true })
	Init()
	require.Zero(t, RegisteredDestructors(), "registration outside the window must not persist")
	runOnThread(t, func() {})
	require.False(t, fired)
}

// TestRemoveAbsentKeyIsNoOp verifies removal of an unregistered key leaves
// the registry untouched.
func TestRemoveAbsentKeyIsNoOp(t *testing.T) {
	resetRegistry(t)

	key := CreateKey(func(any) {})
	require.Equal(t, 1, RegisteredDestructors())

	// A key that only ever did plain storage has no entry to remove.
	plain := CreateKey(nil)
	DeleteKey(plain)
	require.Equal(t, 1, RegisteredDestructors())

	DeleteKey(key)
	require.Zero(t, RegisteredDestructors())
}

// TestConcurrentRegistration stresses registration/removal of distinct keys
// from many goroutines and checks the registry holds exactly the net count,
// with no lost or duplicated entries.
func TestConcurrentRegistration(t *testing.T) {
	resetRegistry(t)

	const (
		workers       = 16
		keysPerWorker = 64
	)

	var wg sync.WaitGroup
	kept := make([][]Key, workers)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < keysPerWorker; i++ {
				key := CreateKey(func(any) {})
				if i%2 == 0 {
					// Half the keys are removed again immediately.
					DeleteKey(key)
				} else {
					kept[w] = append(kept[w], key)
				}
			}
		}(w)
	}
	wg.Wait()

	want := workers * keysPerWorker / 2
	require.Equal(t, want, RegisteredDestructors(), "net registry size after concurrent churn")

	// Distinct keys only: removing every kept key empties the registry.
	seen := make(map[Key]struct{})
	for _, ks := range kept {
		for _, k := range ks {
			_, dup := seen[k]
			require.False(t, dup, "key %d allocated twice", k)
			seen[k] = struct{}{}
			DeleteKey(k)
		}
	}
	require.Zero(t, RegisteredDestructors())
}

// TestSweepInsertionOrder pins the sweep's iteration order to insertion
// order. The order is not a behavioral guarantee to callers, but the
// implementation keeps it deterministic.
func TestSweepInsertionOrder(t *testing.T) {
	resetRegistry(t)

	var order []int
	k1 := CreateKey(func(any) { order = append(order, 1) })
	k2 := CreateKey(func(any) { order = append(order, 2) })
	k3 := CreateKey(func(any) { order = append(order, 3) })
	defer func() {
		DeleteKey(k1)
		DeleteKey(k2)
		DeleteKey(k3)
	}()

	runOnThread(t, func() {})

	require.Equal(t, []int{1, 2, 3}, order)
}
