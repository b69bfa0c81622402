//go:build !linux && !windows

package introspect

// Naming a thread from pure Go needs either prctl or the Win32 description
// API. Other targets accept the name silently and report retrieval as
// unsupported, matching the "name may be set but never read back" contract.

func setCurrentThreadName(string) error {
	return nil
}

func currentThreadName() (string, bool) {
	return "", false
}
