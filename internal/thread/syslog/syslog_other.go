//go:build !unix

package syslog

import "io"

// platformWriter reports no native log facility. The console stream is the
// only sink on these targets.
func platformWriter() (io.Writer, bool) {
	return nil, false
}
