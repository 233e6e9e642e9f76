// Package release knows which CPython versions this tool installs and where
// their distribution archives live.
package release

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/Rahulkumar010/python-noadmin/internal/platform"
)

const (
	// DefaultVersion is installed when the user does not pick one.
	DefaultVersion = "3.12.8"

	// standaloneTag is the python-build-standalone release the Unix archives
	// are pinned to. Archives for a given CPython version only exist under
	// the tag they were built in, so the pair moves together.
	standaloneTag     = "20241206"
	standaloneBaseURL = "https://github.com/indygreg/python-build-standalone/releases/download"

	pythonOrgBaseURL = "https://www.python.org/ftp/python"

	// GetPipURL is the pip bootstrap script published by PyPA.
	GetPipURL = "https://bootstrap.pypa.io/get-pip.py"
)

// Versions is the tested allow-list, newest first.
var Versions = []string{
	"3.12.8",
	"3.12.7",
	"3.11.9",
	"3.11.8",
	"3.10.14",
	"3.10.13",
}

// Validate checks that a version string is a dotted numeric identifier.
// Versions off the allow-list are accepted; they feed straight into URL
// construction and simply 404 if upstream never built them.
func Validate(version string) error {
	if _, err := semver.StrictNewVersion(version); err != nil {
		return fmt.Errorf("invalid version %q: %w", version, err)
	}
	return nil
}

// Known reports whether version is on the tested allow-list.
func Known(version string) bool {
	for _, v := range Versions {
		if v == version {
			return true
		}
	}
	return false
}

// DistributionURL returns the python-build-standalone archive URL for a Unix
// platform. Windows is served by EmbedURL instead.
func DistributionURL(version string, info platform.Info) (string, error) {
	var target string
	switch info.OS {
	case platform.OSMacOS:
		target = fmt.Sprintf("%s-apple-darwin", info.Arch)
	case platform.OSLinux:
		target = fmt.Sprintf("%s-unknown-linux-gnu", info.Arch)
	default:
		return "", fmt.Errorf("no standalone distribution for %s", info.OS)
	}

	filename := fmt.Sprintf("cpython-%s+%s-%s-install_only.tar.gz", version, standaloneTag, target)
	return fmt.Sprintf("%s/%s/%s", standaloneBaseURL, standaloneTag, filename), nil
}

// EmbedURL returns the python.org embeddable package URL for Windows.
func EmbedURL(version, arch string) (string, error) {
	var suffix string
	switch arch {
	case platform.ArchX8664:
		suffix = "amd64"
	case platform.ArchX86:
		suffix = "win32"
	case platform.ArchAarch64:
		suffix = "arm64"
	default:
		return "", fmt.Errorf("unknown Windows architecture: %s", arch)
	}

	return fmt.Sprintf("%s/%s/python-%s-embed-%s.zip", pythonOrgBaseURL, version, version, suffix), nil
}
