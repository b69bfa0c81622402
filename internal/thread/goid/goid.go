// Copyright 2025 The osthread Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package goid identifies the goroutine that is currently executing.
//
// Threads spawned by this module are goroutines permanently locked to an OS
// thread, so "which goroutine am I" and "which thread am I" coincide for the
// lifetime of a worker. The goroutine id is therefore used as the per-thread
// slot address by the TLS emulation layer, and as the trace-id fallback on
// platforms that expose no cheap native thread id.
//
// Extraction parses the first line of runtime.Stack output:
//
//	"goroutine 123 [running]:\n..."
//
// Performance: ~1500ns per call (dominated by runtime.Stack). That is
// acceptable here because the callers are TLS slot operations and thread
// bookkeeping, not a per-memory-access hot path.
package goid

import "runtime"

// Current returns the id of the calling goroutine.
//
// Returns 0 only if the runtime.Stack header format changes, which would be
// a Go runtime incompatibility rather than a runtime condition.
func Current() int64 {
	// Allocate buffer for stack trace.
	// We only need the first line, so 64 bytes is sufficient.
	// Format: "goroutine 123 [running]:\n..."
	var buf [64]byte

	// Get stack trace for current goroutine only (all=false).
	n := runtime.Stack(buf[:], false)

	return parseGID(buf[:n])
}

// parseGID extracts the goroutine id from stack trace bytes.
//
// Expected format: "goroutine 123 [running]:..."
// Returns the numeric id (123 in this example) or 0 if parsing fails.
//
// Optimized for minimal allocations: no string conversion of the full
// buffer, no regex, direct byte parsing.
func parseGID(buf []byte) int64 {
	// Expected prefix: "goroutine "
	const prefix = "goroutine "
	const prefixLen = 10 // len("goroutine ")

	if len(buf) < prefixLen {
		return 0
	}

	// Fast prefix check (uses string conversion but avoids regex).
	// Safe: we already verified len(buf) >= prefixLen above.
	if string(buf[:prefixLen]) != prefix {
		return 0
	}

	// Parse numeric goroutine id.
	// Format after prefix: "123 [running]:..."
	var gid int64
	for i := prefixLen; i < len(buf); i++ {
		c := buf[i]
		if c >= '0' && c <= '9' {
			gid = gid*10 + int64(c-'0')
		} else {
			// Non-digit terminates the id (usually space before "[running]").
			break
		}
	}

	return gid
}
