//go:build darwin

package spawn

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// TestDarwinThreadWhichValue pins the Apple-specific setpriority target to
// the value <sys/resource.h> defines for PRIO_DARWIN_THREAD.
func TestDarwinThreadWhichValue(t *testing.T) {
	require.EqualValues(t, 3, prioDarwinThread)
}

// TestSetCurrentPriorityReapplies reads the calling thread's current
// priority back through the same which value and re-applies it. Setting a
// thread's own priority to its current value is always permitted, so any
// error here means the which value does not address the calling thread.
func TestSetCurrentPriorityReapplies(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	current, err := unix.Getpriority(prioDarwinThread, 0)
	require.NoError(t, err)
	require.NoError(t, setCurrentPriority(current))
}
