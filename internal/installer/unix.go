package installer

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/Rahulkumar010/python-noadmin/internal/archive"
	"github.com/Rahulkumar010/python-noadmin/internal/download"
	"github.com/Rahulkumar010/python-noadmin/internal/platform"
	"github.com/Rahulkumar010/python-noadmin/internal/release"
	"github.com/charmbracelet/log"
)

// unixInstaller installs python-build-standalone distributions on Linux and
// macOS.
type unixInstaller struct {
	platform   platform.Info
	dl         *download.Client
	installDir string

	// resolve maps a version to its archive URL. Seam for tests.
	resolve func(version string) (string, error)
}

func newUnixInstaller(info platform.Info, dl *download.Client, installDir string) *unixInstaller {
	u := &unixInstaller{platform: info, dl: dl, installDir: installDir}
	u.resolve = func(version string) (string, error) {
		return release.DistributionURL(version, u.platform)
	}
	return u
}

func (u *unixInstaller) InterpreterPath(installDir string) string {
	return filepath.Join(installDir, "bin", "python3")
}

func (u *unixInstaller) Install(ctx context.Context, version string) (string, error) {
	url, err := u.resolve(version)
	if err != nil {
		return "", err
	}

	tmpDir, err := os.MkdirTemp("", "python-noadmin-*")
	if err != nil {
		return "", fmt.Errorf("create temp directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	tarball := filepath.Join(tmpDir, "python.tar.gz")
	log.Info("Downloading Python "+version, "url", url)
	if err := u.dl.Fetch(ctx, url, tarball); err != nil {
		return "", err
	}

	removed, err := removeExisting(u.installDir)
	if err != nil {
		return "", err
	}
	if removed {
		log.Warn("Removed existing installation")
	}

	log.Info("Extracting", "dest", u.installDir)
	// The upstream archive wraps everything in a single "python/" directory.
	if err := archive.Extract(tarball, u.installDir, 1); err != nil {
		return "", err
	}

	if u.platform.OS == platform.OSMacOS {
		switch removeQuarantine(ctx, u.installDir) {
		case StatusOK:
			log.Info("Removed macOS quarantine attributes")
		case StatusDegraded:
			log.Warn("Could not remove quarantine attributes; Gatekeeper may prompt on first run")
		}
	}

	if err := markBinariesExecutable(filepath.Join(u.installDir, "bin")); err != nil {
		return "", err
	}

	return u.InterpreterPath(u.installDir), nil
}

// runXattr removes the downloaded-file quarantine attribute. Seam for tests.
var runXattr = func(ctx context.Context, dir string) error {
	return exec.CommandContext(ctx, "xattr", "-dr", "com.apple.quarantine", dir).Run()
}

// removeQuarantine is best-effort: the attribute is a Gatekeeper gate, not a
// correctness requirement, so failure degrades instead of aborting.
func removeQuarantine(ctx context.Context, dir string) Status {
	if err := runXattr(ctx, dir); err != nil {
		return StatusDegraded
	}
	return StatusOK
}

// markBinariesExecutable sets a+x on every regular file directly under
// binDir. Mode bits are not reliable across archive producers.
func markBinariesExecutable(binDir string) error {
	entries, err := os.ReadDir(binDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read bin directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(binDir, entry.Name())
		info, err := entry.Info()
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			continue
		}
		if err := os.Chmod(path, info.Mode().Perm()|0o111); err != nil {
			return fmt.Errorf("mark %s executable: %w", entry.Name(), err)
		}
	}
	return nil
}

func (u *unixInstaller) ConfigurePath(installDir string) PathResult {
	binDir := filepath.Join(installDir, "bin")

	home, err := os.UserHomeDir()
	if err != nil {
		return PathResult{
			Status:      StatusDegraded,
			Message:     fmt.Sprintf("could not locate home directory: %v", err),
			ManualSteps: []string{fmt.Sprintf(`export PATH="%s:$PATH"`, binDir)},
		}
	}

	shell := shellFromEnv(os.Getenv("SHELL"))
	profile := profileForShell(shell, home)

	changed, err := appendPathBlock(profile, shell, binDir)
	if err != nil {
		return PathResult{
			Status:      StatusDegraded,
			Message:     fmt.Sprintf("could not update %s: %v", profile, err),
			ManualSteps: []string{fmt.Sprintf(`export PATH="%s:$PATH"`, binDir)},
		}
	}
	if !changed {
		return PathResult{Status: StatusOK, Message: fmt.Sprintf("shell profile already configured: %s", profile)}
	}
	return PathResult{Status: StatusOK, Message: fmt.Sprintf("added %s to PATH in %s", binDir, profile)}
}
