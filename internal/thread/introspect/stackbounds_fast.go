// Copyright 2025 The osthread Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (amd64 || arm64) && go1.23 && !go1.27

// Stack-bounds retrieval via the runtime's g struct.
//
// The current goroutine's stack range lives in the first field of runtime.g:
//
//	Field          Size    Offset
//	-----          ----    ------
//	stack.lo       8       0    <- TARGET
//	stack.hi       8       8    <- TARGET
//	stackguard0    8       16
//	stackguard1    8       24
//	...
//
// The g pointer is fetched by a tiny assembly stub (getg_amd64.s uses the
// TLS slot, getg_arm64.s the dedicated g register) and the two leading
// words are read directly. The stack field has been the first field of g
// since the contiguous-stack runtime landed; the build tags still pin the
// verified Go version range so a future layout change degrades to the
// fallback build instead of reading garbage.

package introspect

import "unsafe"

// Byte offsets of stack.lo and stack.hi within runtime.g.
const (
	stackLoOffset = 0
	stackHiOffset = unsafe.Sizeof(uintptr(0))
)

// getg returns the current goroutine's g struct pointer.
// Implemented in assembly (getg_amd64.s or getg_arm64.s).
//
//go:noescape
func getg() uintptr

// currentStackBounds reads [stack.lo, stack.hi) for the calling goroutine.
//
//go:nosplit
//go:nocheckptr
func currentStackBounds() (lo, hi uintptr, ok bool) {
	gp := getg()
	if gp == 0 {
		return 0, 0, false
	}

	//nolint:gosec // Intentional unsafe pointer arithmetic for runtime access.
	lo = *(*uintptr)(unsafe.Pointer(gp + stackLoOffset))
	//nolint:gosec // Intentional unsafe pointer arithmetic for runtime access.
	hi = *(*uintptr)(unsafe.Pointer(gp + stackHiOffset))

	if lo == 0 || hi <= lo {
		return 0, 0, false
	}
	return lo, hi, true
}
