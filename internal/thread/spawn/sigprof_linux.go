//go:build linux

package spawn

import (
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/kolkov/osthread/internal/thread/syslog"
)

// sigsetWordBits is the width of one Sigset_t word. 32-bit targets lay the
// set out as uint32 words, 64-bit targets as uint64 words.
const sigsetWordBits = uint(unsafe.Sizeof(unix.Sigset_t{}.Val[0])) * 8

// sigmaskBit returns the word index and the bit position within that word
// addressing sig in a Sigset_t. Signal numbers are 1-based.
func sigmaskBit(sig unix.Signal) (word int, bit uint) {
	pos := uint(sig) - 1
	return int(pos / sigsetWordBits), pos % sigsetWordBits
}

// unblockProfilerSignal explicitly unblocks SIGPROF on the calling thread.
//
// Signal masks are inherited across thread creation, and a spawner that was
// blocking SIGPROF would otherwise hand every worker a mask that silently
// stops the profiler from sampling it. Failure to unblock, or a mask that
// still shows SIGPROF blocked afterwards, indicates a broken host
// environment and is fatal.
func unblockProfilerSignal() {
	word, bit := sigmaskBit(unix.SIGPROF)

	var set unix.Sigset_t
	set.Val[word] = 1 << bit
	if err := unix.PthreadSigmask(unix.SIG_UNBLOCK, &set, nil); err != nil {
		syslog.Fatalf("unblocking SIGPROF failed: %v", err)
		return
	}

	// Read the mask back and verify the unblock took effect.
	var current unix.Sigset_t
	if err := unix.PthreadSigmask(unix.SIG_BLOCK, &unix.Sigset_t{}, &current); err != nil {
		syslog.Fatalf("reading signal mask failed: %v", err)
		return
	}
	if current.Val[word]&(1<<bit) != 0 {
		syslog.Fatalf("SIGPROF still blocked after unblock")
	}
}
