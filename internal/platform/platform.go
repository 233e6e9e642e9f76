// Package platform maps the host operating system and CPU onto the canonical
// identifiers the download URLs are keyed by.
package platform

import (
	"errors"
	"fmt"
	"runtime"
)

// Canonical OS names.
const (
	OSWindows = "windows"
	OSMacOS   = "macos"
	OSLinux   = "linux"
)

// Canonical architecture names.
const (
	ArchX8664   = "x86_64"
	ArchAarch64 = "aarch64"
	ArchX86     = "x86"
)

var (
	// ErrUnsupportedOS is returned for operating systems outside the known set.
	ErrUnsupportedOS = errors.New("unsupported operating system")
	// ErrUnsupportedArch is returned for architectures outside the known set.
	ErrUnsupportedArch = errors.New("unsupported architecture")
)

// Info is the canonical (os, arch) pair derived once per run.
type Info struct {
	OS   string
	Arch string
}

// String returns "os (arch)" for display.
func (i Info) String() string {
	return fmt.Sprintf("%s (%s)", i.OS, i.Arch)
}

// Detect returns the platform pair for the running host.
func Detect() (Info, error) {
	return detectFrom(runtime.GOOS, runtime.GOARCH)
}

// detectFrom is the pure mapping from Go's runtime identifiers. Kept separate
// so every supported and unsupported pair can be exercised in tests.
func detectFrom(goos, goarch string) (Info, error) {
	var info Info

	switch goos {
	case "darwin":
		info.OS = OSMacOS
	case "windows":
		info.OS = OSWindows
	case "linux":
		info.OS = OSLinux
	default:
		return Info{}, fmt.Errorf("%w: %s", ErrUnsupportedOS, goos)
	}

	switch goarch {
	case "amd64":
		info.Arch = ArchX8664
	case "arm64":
		info.Arch = ArchAarch64
	case "386":
		info.Arch = ArchX86
	default:
		return Info{}, fmt.Errorf("%w: %s", ErrUnsupportedArch, goarch)
	}

	return info, nil
}
