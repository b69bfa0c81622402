// Package syslog is the process-wide logging sink for the thread substrate.
//
// Messages are duplicated to a console stream and, where the platform offers
// one, to the native log facility. Both targets always receive every message;
// the sink never picks one over the other, so operators watching either the
// terminal or the system journal see the same diagnostics.
//
// Fatal diagnostics terminate the process. The exit step is routed through an
// overridable hook so fatal code paths can be exercised by tests without
// killing the test binary.
package syslog

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// tag identifies this subsystem in structured output, the way the original
// facility tags every record with the runtime's name.
const tag = "osthread"

var (
	logger atomic.Pointer[zerolog.Logger]

	// exitFn is invoked by Fatalf after the diagnostic has been written.
	// Tests replace it to observe fatal paths.
	exitFn atomic.Pointer[func(code int)]
)

func init() {
	setExitFunc(os.Exit)
	rebuild(os.Stdout)
}

// platformSink resolves the platform half of the sink. A package variable
// so tests can substitute a recording writer for the real facility.
var platformSink = platformWriter

// rebuild constructs the sink around the given console stream plus the
// platform facility, if any.
func rebuild(console io.Writer) {
	writers := []io.Writer{zerolog.ConsoleWriter{Out: console, NoColor: true}}
	if pw, ok := platformSink(); ok {
		writers = append(writers, pw)
	}

	l := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Str("tag", tag).
		Logger()
	logger.Store(&l)
}

// SetOutput redirects the console half of the sink. Intended for tests; the
// platform facility, when present, keeps receiving messages.
func SetOutput(console io.Writer) {
	rebuild(console)
}

// SetDebug toggles debug-level output. Lifecycle tracing from the spawn path
// is emitted at debug level and suppressed by default.
func SetDebug(enabled bool) {
	level := zerolog.InfoLevel
	if enabled {
		level = zerolog.DebugLevel
	}
	l := logger.Load().Level(level)
	logger.Store(&l)
}

func setExitFunc(fn func(code int)) {
	exitFn.Store(&fn)
}

// SetExitFunc replaces the process-exit hook used by Fatalf and returns the
// previous hook. Tests use it to assert that a code path is fatal.
func SetExitFunc(fn func(code int)) (previous func(code int)) {
	previous = *exitFn.Load()
	setExitFunc(fn)
	return previous
}

// Debugf logs a formatted debug message to all sinks.
func Debugf(format string, args ...any) {
	logger.Load().Debug().Msgf(format, args...)
}

// Infof logs a formatted informational message to all sinks.
func Infof(format string, args ...any) {
	logger.Load().Info().Msgf(format, args...)
}

// Errorf logs a formatted error message to all sinks.
func Errorf(format string, args ...any) {
	logger.Load().Error().Msgf(format, args...)
}

// Fatalf logs a formatted fatal diagnostic to all sinks and terminates the
// process. Used for platform contract violations that cannot be retried:
// failed priority application, failed signal unmask, key exhaustion, join
// misuse. It does not return unless the exit hook has been replaced.
func Fatalf(format string, args ...any) {
	logger.Load().WithLevel(zerolog.FatalLevel).Msgf(format, args...)
	(*exitFn.Load())(1)
}
