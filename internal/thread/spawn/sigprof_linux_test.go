//go:build linux

package spawn

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// TestSigmaskBitLayout verifies the word/bit decomposition holds for the
// platform's sigset word width, including a realtime signal past the first
// 32-bit word.
func TestSigmaskBitLayout(t *testing.T) {
	signals := []unix.Signal{
		unix.SIGHUP,
		unix.SIGPROF,
		unix.Signal(33),
		unix.Signal(64),
	}
	for _, sig := range signals {
		word, bit := sigmaskBit(sig)
		require.Less(t, bit, sigsetWordBits, "bit position overflows a sigset word for signal %d", sig)
		require.Less(t, word, len(unix.Sigset_t{}.Val), "word index out of range for signal %d", sig)
		require.Equal(t, uint(sig)-1, uint(word)*sigsetWordBits+bit, "decomposition does not reconstruct signal %d", sig)
	}
}

// TestUnblockProfilerSignal blocks SIGPROF on the calling thread and then
// verifies unblockProfilerSignal clears it from the thread's mask.
func TestUnblockProfilerSignal(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	word, bit := sigmaskBit(unix.SIGPROF)

	var set unix.Sigset_t
	set.Val[word] = 1 << bit
	require.NoError(t, unix.PthreadSigmask(unix.SIG_BLOCK, &set, nil))

	unblockProfilerSignal()

	var current unix.Sigset_t
	require.NoError(t, unix.PthreadSigmask(unix.SIG_BLOCK, &unix.Sigset_t{}, &current))
	require.Zero(t, current.Val[word]&(1<<bit), "SIGPROF still present in the thread mask")
}
