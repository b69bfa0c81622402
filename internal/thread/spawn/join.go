package spawn

import (
	"sync"
	"sync/atomic"

	"github.com/kolkov/osthread/internal/thread/syslog"
)

// JoinID is an opaque handle representing a thread in a joinable state. It
// is produced exactly once, by the thread itself, and consumed exactly once
// by Join or Detach. It is deliberately distinct from the thread's trace id.
type JoinID int64

// InvalidJoinID is never produced for a live thread.
const InvalidJoinID JoinID = 0

var (
	joinMu      sync.Mutex
	joinHandles = make(map[JoinID]chan struct{})
	nextJoinID  atomic.Int64
)

// CurrentJoinID mints the join id for the calling thread.
//
// It must be invoked by a worker about itself, at most once; both a caller
// that is not a worker and a second request are contract violations and
// fatal. Joinability is opt-in: a worker whose id is never requested is
// implicitly detached and holds no join bookkeeping.
func CurrentJoinID() JoinID {
	th := Current()
	if th == nil {
		syslog.Fatalf("CurrentJoinID called outside a spawned worker thread")
		return InvalidJoinID
	}
	if !th.joinProduced.CompareAndSwap(false, true) {
		syslog.Fatalf("join id for thread %q requested twice", th.Name())
		return InvalidJoinID
	}

	id := JoinID(nextJoinID.Add(1))
	joinMu.Lock()
	joinHandles[id] = th.done
	joinMu.Unlock()
	return id
}

// Join blocks the calling thread until the target has fully terminated
// (user function returned and TLS destructors swept) and releases the
// bookkeeping associated with id. Joining an unknown or already-consumed id
// is a programming error and fatal: join targets are always threads this
// runtime created itself.
func Join(id JoinID) {
	<-consumeHandle(id, "Join")
}

// Detach releases the bookkeeping for id without waiting. Permissible only
// when the caller will never join.
func Detach(id JoinID) {
	consumeHandle(id, "Detach")
}

// consumeHandle removes and returns the done channel for id. The handle is
// gone afterwards; a second consumption of the same id is fatal.
func consumeHandle(id JoinID, op string) chan struct{} {
	joinMu.Lock()
	defer joinMu.Unlock()
	ch, ok := joinHandles[id]
	if !ok {
		syslog.Fatalf("%s on invalid or already-consumed join id %d", op, id)
		// Reached only under a test exit hook; yield something safe to
		// wait on.
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	delete(joinHandles, id)
	return ch
}

// joinHandleCount reports outstanding join handles; tests use it to verify
// join and detach reclaim bookkeeping.
func joinHandleCount() int {
	joinMu.Lock()
	defer joinMu.Unlock()
	return len(joinHandles)
}
