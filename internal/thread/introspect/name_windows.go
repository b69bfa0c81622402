//go:build windows

package introspect

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// Thread description APIs, available since Windows 10 1607. Resolved lazily
// so older hosts degrade to "naming unsupported" instead of failing to load.
var (
	modkernel32              = windows.NewLazySystemDLL("kernel32.dll")
	procSetThreadDescription = modkernel32.NewProc("SetThreadDescription")
	procGetThreadDescription = modkernel32.NewProc("GetThreadDescription")
)

// setCurrentThreadName applies the name to the calling thread via
// SetThreadDescription. Hosts without the API keep the thread unnamed.
func setCurrentThreadName(name string) error {
	if err := procSetThreadDescription.Find(); err != nil {
		return nil
	}
	p, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return err
	}
	hr, _, _ := procSetThreadDescription.Call(
		uintptr(windows.CurrentThread()),
		uintptr(unsafe.Pointer(p)),
	)
	// SetThreadDescription returns an HRESULT; negative values signal failure.
	if int32(hr) < 0 {
		return windows.Errno(hr)
	}
	return nil
}

// currentThreadName reads the calling thread's description back.
func currentThreadName() (string, bool) {
	if err := procGetThreadDescription.Find(); err != nil {
		return "", false
	}
	var p *uint16
	hr, _, _ := procGetThreadDescription.Call(
		uintptr(windows.CurrentThread()),
		uintptr(unsafe.Pointer(&p)),
	)
	if int32(hr) < 0 || p == nil {
		return "", false
	}
	name := windows.UTF16PtrToString(p)
	_, _ = windows.LocalFree(windows.Handle(unsafe.Pointer(p)))
	return name, true
}
