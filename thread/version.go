package thread

import "runtime"

// Version information for the OS thread substrate.
const (
	// Version is the current version of the substrate.
	Version = "0.1.0"

	// VersionMajor is the major version number.
	VersionMajor = 0

	// VersionMinor is the minor version number.
	VersionMinor = 1

	// VersionPatch is the patch version number.
	VersionPatch = 0
)

// Info provides runtime information about the thread substrate.
type Info struct {
	// Version is the substrate version string.
	Version string

	// Platform is the build target the platform-conditional code was
	// selected for.
	Platform string

	// StackBounds indicates whether this build can report stack bounds.
	StackBounds bool
}

// GetInfo returns information about the thread substrate.
//
// Example:
//
//	info := thread.GetInfo()
//	fmt.Printf("osthread %s (%s)\n", info.Version, info.Platform)
func GetInfo() Info {
	_, _, ok := CurrentStackBounds()
	return Info{
		Version:     Version,
		Platform:    runtime.GOOS + "/" + runtime.GOARCH,
		StackBounds: ok,
	}
}
