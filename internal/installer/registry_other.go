//go:build !windows

package installer

import "errors"

// The Windows installer is only ever selected on Windows hosts; these stubs
// exist so the package compiles everywhere, matching the build-tag layout the
// registry access requires.

func readUserPath() (string, error) {
	return "", errors.New("registry unavailable on this platform")
}

func writeUserPath(string) error {
	return errors.New("registry unavailable on this platform")
}
