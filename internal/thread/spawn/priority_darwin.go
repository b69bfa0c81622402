//go:build darwin

package spawn

import "golang.org/x/sys/unix"

// prioDarwinThread is PRIO_DARWIN_THREAD from <sys/resource.h>. x/sys only
// exposes the POSIX which values (PRIO_PROCESS, PRIO_PGRP, PRIO_USER), so
// the Apple extension is defined here.
const prioDarwinThread = 3

// setCurrentPriority adjusts the calling thread's scheduling priority.
// Darwin scopes setpriority to a single thread via PRIO_DARWIN_THREAD;
// who == 0 addresses the calling thread, so this must run on the locked
// worker thread.
func setCurrentPriority(priority int) error {
	return unix.Setpriority(prioDarwinThread, 0, priority)
}
