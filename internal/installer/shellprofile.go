package installer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Marker comments bounding the PATH block appended to the shell profile. The
// start marker doubles as the idempotence check: if it is present, a second
// run leaves the file untouched.
const (
	profileMarkerStart = "# Python-NoAdmin PATH"
	profileMarkerEnd   = "# End Python-NoAdmin"
)

// shellFromEnv extracts the shell family from a $SHELL value such as
// /usr/bin/zsh. Empty or unrecognized values fall through to "other", which
// selects ~/.profile.
func shellFromEnv(shellVar string) string {
	switch strings.ToLower(filepath.Base(shellVar)) {
	case "bash":
		return "bash"
	case "zsh":
		return "zsh"
	case "fish":
		return "fish"
	default:
		return "other"
	}
}

// profileForShell picks the profile file the PATH block goes into. bash
// prefers .bash_profile when it already exists, matching where login shells
// actually read from on macOS.
func profileForShell(shell, home string) string {
	switch shell {
	case "zsh":
		return filepath.Join(home, ".zshrc")
	case "fish":
		return filepath.Join(home, ".config", "fish", "config.fish")
	case "bash":
		bashProfile := filepath.Join(home, ".bash_profile")
		if _, err := os.Stat(bashProfile); err == nil {
			return bashProfile
		}
		return filepath.Join(home, ".bashrc")
	default:
		return filepath.Join(home, ".profile")
	}
}

// pathBlock renders the marker-delimited lines for the given shell family.
func pathBlock(shell, binDir string) string {
	if shell == "fish" {
		return fmt.Sprintf("\n%s\nset -gx PATH \"%s\" $PATH\n%s\n", profileMarkerStart, binDir, profileMarkerEnd)
	}
	return fmt.Sprintf("\n%s\nexport PATH=\"%s:$PATH\"\n%s\n", profileMarkerStart, binDir, profileMarkerEnd)
}

// appendPathBlock appends the PATH block to profile unless the marker is
// already present. It never rewrites or removes existing content. Returns
// whether the file was modified.
func appendPathBlock(profile, shell, binDir string) (bool, error) {
	if data, err := os.ReadFile(profile); err == nil {
		if strings.Contains(string(data), profileMarkerStart) {
			return false, nil
		}
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("read profile: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(profile), 0o755); err != nil {
		return false, fmt.Errorf("create profile directory: %w", err)
	}

	f, err := os.OpenFile(profile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return false, fmt.Errorf("open profile: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(pathBlock(shell, binDir)); err != nil {
		return false, fmt.Errorf("append to profile: %w", err)
	}
	return true, nil
}
