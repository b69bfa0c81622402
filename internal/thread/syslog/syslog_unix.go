//go:build unix

package syslog

import (
	"io"
	gosyslog "log/syslog"

	"github.com/rs/zerolog"
)

// facilityWriter adapts a syslog-style writer so each record is delivered
// through the severity-matched facility call.
func facilityWriter(w zerolog.SyslogWriter) io.Writer {
	return zerolog.SyslogLevelWriter(w)
}

// platformWriter connects to the local syslog daemon. Failure to connect is
// not fatal: the console stream still carries every message, so the sink
// simply reports that no platform facility is available.
func platformWriter() (io.Writer, bool) {
	w, err := gosyslog.New(gosyslog.LOG_INFO|gosyslog.LOG_USER, tag)
	if err != nil {
		return nil, false
	}
	return facilityWriter(w), true
}
