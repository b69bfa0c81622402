//go:build linux

package spawn

import "golang.org/x/sys/unix"

// setCurrentPriority adjusts the calling thread's niceness. On Linux,
// setpriority with PRIO_PROCESS and a task id addresses that single thread,
// which is exactly the scope a worker-priority override wants.
//
// Must run on the locked worker thread: the task id is read here, not
// passed in.
func setCurrentPriority(priority int) error {
	return unix.Setpriority(unix.PRIO_PROCESS, unix.Gettid(), priority)
}
