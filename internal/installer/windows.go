package installer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Rahulkumar010/python-noadmin/internal/archive"
	"github.com/Rahulkumar010/python-noadmin/internal/download"
	"github.com/Rahulkumar010/python-noadmin/internal/platform"
	"github.com/Rahulkumar010/python-noadmin/internal/release"
	"github.com/charmbracelet/log"
)

// windowsInstaller installs the python.org embeddable package. The embed
// distribution is a flat zip with the interpreter at its root and no bundled
// pip, so site-packages must be enabled by patching the ._pth file.
type windowsInstaller struct {
	platform   platform.Info
	dl         *download.Client
	installDir string

	resolve func(version string) (string, error)
}

func newWindowsInstaller(info platform.Info, dl *download.Client, installDir string) *windowsInstaller {
	w := &windowsInstaller{platform: info, dl: dl, installDir: installDir}
	w.resolve = func(version string) (string, error) {
		return release.EmbedURL(version, w.platform.Arch)
	}
	return w
}

func (w *windowsInstaller) InterpreterPath(installDir string) string {
	return filepath.Join(installDir, "python.exe")
}

func (w *windowsInstaller) Install(ctx context.Context, version string) (string, error) {
	url, err := w.resolve(version)
	if err != nil {
		return "", err
	}

	tmpDir, err := os.MkdirTemp("", "python-noadmin-*")
	if err != nil {
		return "", fmt.Errorf("create temp directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	zipFile := filepath.Join(tmpDir, "python-embed.zip")
	log.Info("Downloading Python "+version+" embeddable package", "url", url)
	if err := w.dl.Fetch(ctx, url, zipFile); err != nil {
		return "", err
	}

	removed, err := removeExisting(w.installDir)
	if err != nil {
		return "", err
	}
	if removed {
		log.Warn("Removed existing installation")
	}

	log.Info("Extracting", "dest", w.installDir)
	if err := archive.Extract(zipFile, w.installDir, 0); err != nil {
		return "", err
	}

	if err := w.enableSitePackages(version); err != nil {
		return "", err
	}

	return w.InterpreterPath(w.installDir), nil
}

// enableSitePackages patches python{MAJ}{MIN}._pth so the embeddable
// distribution loads site-packages, which pip needs to function. A missing
// ._pth file is left alone; full installs do not ship one.
func (w *windowsInstaller) enableSitePackages(version string) error {
	pth := filepath.Join(w.installDir, pthFileName(version))
	data, err := os.ReadFile(pth)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", filepath.Base(pth), err)
	}

	patched, changed := ensureImportSite(string(data))
	if !changed {
		return nil
	}
	log.Info("Enabling site-packages", "file", filepath.Base(pth))
	if err := os.WriteFile(pth, []byte(patched), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(pth), err)
	}
	return nil
}

// pthFileName returns e.g. "python312._pth" for version "3.12.8".
func pthFileName(version string) string {
	parts := strings.SplitN(version, ".", 3)
	majorMinor := parts[0]
	if len(parts) > 1 {
		majorMinor += parts[1]
	}
	return "python" + majorMinor + "._pth"
}

// ensureImportSite uncomments a commented-out "import site" directive, or
// appends one when the directive is absent in any form. Returns the patched
// content and whether anything changed.
func ensureImportSite(content string) (string, bool) {
	if strings.Contains(content, "#import site") {
		return strings.ReplaceAll(content, "#import site", "import site"), true
	}
	if strings.Contains(content, "import site") {
		return content, false
	}
	return content + "\nimport site\n", true
}

// windowsPathSeparator splits registry PATH values. The registry stores the
// Windows convention regardless of what this binary was built for.
const windowsPathSeparator = ";"

// mergePathEntries prepends each missing directory to the PATH value so new
// entries take priority. Returns the merged value and whether it changed.
func mergePathEntries(current string, toAdd []string) (string, bool) {
	var parts []string
	if current != "" {
		parts = strings.Split(current, windowsPathSeparator)
	}

	modified := false
	for _, dir := range toAdd {
		found := false
		for _, p := range parts {
			if p == dir {
				found = true
				break
			}
		}
		if !found {
			parts = append([]string{dir}, parts...)
			modified = true
		}
	}

	return strings.Join(parts, windowsPathSeparator), modified
}

func (w *windowsInstaller) ConfigurePath(installDir string) PathResult {
	toAdd := []string{installDir, filepath.Join(installDir, "Scripts")}

	current, err := readUserPath()
	if err != nil {
		return degradedPathResult(err, toAdd)
	}

	merged, modified := mergePathEntries(current, toAdd)
	if !modified {
		return PathResult{Status: StatusOK, Message: "already in user PATH"}
	}

	if err := writeUserPath(merged); err != nil {
		return degradedPathResult(err, toAdd)
	}
	return PathResult{Status: StatusOK, Message: "added to user PATH; restart your terminal for changes to take effect"}
}

func degradedPathResult(err error, dirs []string) PathResult {
	return PathResult{
		Status:      StatusDegraded,
		Message:     fmt.Sprintf("could not update PATH automatically: %v", err),
		ManualSteps: dirs,
	}
}
