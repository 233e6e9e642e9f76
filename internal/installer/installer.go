// Package installer turns a downloaded archive into a working Python
// installation under the user's home directory. The per-OS behavior lives
// behind the Installer interface so the rest of the program never branches on
// the platform itself.
package installer

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/Rahulkumar010/python-noadmin/internal/download"
	"github.com/Rahulkumar010/python-noadmin/internal/platform"
)

// DirName is the single well-known directory under the user's home that holds
// the installation. Its existence is the only persisted state this tool
// tracks.
const DirName = ".python-nonadmin"

// Dir returns the installation directory path.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	return filepath.Join(home, DirName), nil
}

// Status classifies the outcome of best-effort steps so callers can tell a
// clean success from a degraded-but-usable install.
type Status int

const (
	StatusOK Status = iota
	// StatusDegraded means the step failed but the installation is still
	// usable; Message and ManualSteps describe how to finish by hand.
	StatusDegraded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusDegraded:
		return "degraded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// PathResult reports how PATH configuration went.
type PathResult struct {
	Status  Status
	Message string
	// ManualSteps lists directories or lines the user must add by hand when
	// Status is StatusDegraded.
	ManualSteps []string
}

// Installer provisions a runtime and makes it discoverable in new shells.
// Implementations are selected once at startup from the detected platform.
type Installer interface {
	// Install downloads and unpacks the given version, returning the path
	// to the interpreter binary. It does not verify that the binary runs;
	// that check belongs to the caller.
	Install(ctx context.Context, version string) (string, error)

	// InterpreterPath returns the fixed relative interpreter location under
	// an install directory, whether or not anything is installed there.
	InterpreterPath(installDir string) string

	// ConfigurePath makes installDir discoverable in new shells. Failures
	// degrade to manual instructions; they never abort an install.
	ConfigurePath(installDir string) PathResult
}

// ForPlatform returns the installer implementation for the detected platform.
func ForPlatform(info platform.Info, dl *download.Client, installDir string) Installer {
	if info.OS == platform.OSWindows {
		return newWindowsInstaller(info, dl, installDir)
	}
	return newUnixInstaller(info, dl, installDir)
}

// versionOutput runs the interpreter's --version query. Seam for tests.
var versionOutput = func(ctx context.Context, exe string) (string, error) {
	out, err := exec.CommandContext(ctx, exe, "--version").CombinedOutput()
	return strings.TrimSpace(string(out)), err
}

// VerifyInterpreter confirms the interpreter exists and answers a version
// query, returning the reported version string.
func VerifyInterpreter(ctx context.Context, exe string) (string, error) {
	if _, err := os.Stat(exe); err != nil {
		return "", fmt.Errorf("interpreter not found at %s: installation failed verification", exe)
	}
	out, err := versionOutput(ctx, exe)
	if err != nil {
		return "", fmt.Errorf("interpreter failed version check: %w", err)
	}
	return out, nil
}

func removeExisting(installDir string) (bool, error) {
	if _, err := os.Stat(installDir); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if err := os.RemoveAll(installDir); err != nil {
		return false, fmt.Errorf("remove existing installation: %w", err)
	}
	return true, nil
}
