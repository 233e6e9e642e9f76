// Package pip verifies or bootstraps pip against a freshly installed
// interpreter.
package pip

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/Rahulkumar010/python-noadmin/internal/download"
	"github.com/Rahulkumar010/python-noadmin/internal/release"
	"github.com/charmbracelet/log"
)

// runPython executes the interpreter and captures combined output. Seam for
// tests.
var runPython = func(ctx context.Context, exe string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, exe, args...).CombinedOutput()
	return strings.TrimSpace(string(out)), err
}

var getPipURL = release.GetPipURL

// Ensure makes pip usable for the given interpreter. A working pip
// short-circuits to a best-effort upgrade; otherwise the PyPA bootstrap
// script is downloaded and executed, and a failure there is fatal. The final
// re-verification only warns: the interpreter install itself already
// succeeded.
func Ensure(ctx context.Context, pythonExe string, dl *download.Client) error {
	log.Info("Checking pip installation...")

	if out, err := runPython(ctx, pythonExe, "-m", "pip", "--version"); err == nil {
		log.Info("pip already installed: " + out)
		log.Info("Upgrading pip to latest version...")
		if _, err := runPython(ctx, pythonExe, "-m", "pip", "install", "--upgrade", "pip", "--quiet"); err != nil {
			log.Warn("pip upgrade failed; keeping the existing version")
		}
		return nil
	}

	log.Info("Installing pip...")

	tmpDir, err := os.MkdirTemp("", "python-noadmin-pip-*")
	if err != nil {
		return fmt.Errorf("create temp directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	script := filepath.Join(tmpDir, "get-pip.py")
	if err := dl.Fetch(ctx, getPipURL, script); err != nil {
		return fmt.Errorf("download get-pip.py: %w", err)
	}

	if out, err := runPython(ctx, pythonExe, script, "--no-warn-script-location"); err != nil {
		return fmt.Errorf("pip bootstrap failed: %w: %s", err, out)
	}

	if out, err := runPython(ctx, pythonExe, "-m", "pip", "--version"); err != nil {
		log.Warn("pip installation may have issues; verification failed")
	} else {
		log.Info("pip installed: " + out)
	}
	return nil
}
