package installer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countOccurrences(s, sub string) int {
	return strings.Count(s, sub)
}

func TestShellFromEnv(t *testing.T) {
	tests := []struct {
		shellVar string
		want     string
	}{
		{"/bin/bash", "bash"},
		{"/usr/bin/zsh", "zsh"},
		{"/usr/local/bin/fish", "fish"},
		{"/bin/tcsh", "other"},
		{"", "other"},
		{"/opt/homebrew/bin/ZSH", "zsh"},
	}

	for _, tt := range tests {
		if got := shellFromEnv(tt.shellVar); got != tt.want {
			t.Errorf("shellFromEnv(%q) = %q, want %q", tt.shellVar, got, tt.want)
		}
	}
}

func TestProfileForShell(t *testing.T) {
	home := t.TempDir()

	assert.Equal(t, filepath.Join(home, ".zshrc"), profileForShell("zsh", home))
	assert.Equal(t, filepath.Join(home, ".config", "fish", "config.fish"), profileForShell("fish", home))
	assert.Equal(t, filepath.Join(home, ".profile"), profileForShell("other", home))

	// bash falls back to .bashrc when no .bash_profile exists...
	assert.Equal(t, filepath.Join(home, ".bashrc"), profileForShell("bash", home))

	// ...and prefers .bash_profile once it does.
	require.NoError(t, os.WriteFile(filepath.Join(home, ".bash_profile"), nil, 0o644))
	assert.Equal(t, filepath.Join(home, ".bash_profile"), profileForShell("bash", home))
}

func TestAppendPathBlockIsIdempotent(t *testing.T) {
	profile := filepath.Join(t.TempDir(), ".zshrc")
	binDir := "/home/user/.python-nonadmin/bin"

	changed, err := appendPathBlock(profile, "zsh", binDir)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = appendPathBlock(profile, "zsh", binDir)
	require.NoError(t, err)
	assert.False(t, changed, "second run must be a no-op")

	data, err := os.ReadFile(profile)
	require.NoError(t, err)
	content := string(data)

	assert.Equal(t, 1, countOccurrences(content, profileMarkerStart))
	assert.Equal(t, 1, countOccurrences(content, profileMarkerEnd))
	assert.Equal(t, 1, countOccurrences(content, `export PATH="`+binDir+`:$PATH"`))
}

func TestAppendPathBlockPreservesExistingContent(t *testing.T) {
	profile := filepath.Join(t.TempDir(), ".bashrc")
	existing := "alias ll='ls -la'\nexport EDITOR=vim\n"
	require.NoError(t, os.WriteFile(profile, []byte(existing), 0o644))

	_, err := appendPathBlock(profile, "bash", "/opt/py/bin")
	require.NoError(t, err)

	data, err := os.ReadFile(profile)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), existing), "prior content must be untouched")
}

func TestAppendPathBlockFishSyntax(t *testing.T) {
	profile := filepath.Join(t.TempDir(), ".config", "fish", "config.fish")

	changed, err := appendPathBlock(profile, "fish", "/opt/py/bin")
	require.NoError(t, err)
	assert.True(t, changed)

	data, err := os.ReadFile(profile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `set -gx PATH "/opt/py/bin" $PATH`)
	assert.NotContains(t, string(data), "export PATH")
}

func TestAppendPathBlockCreatesParentDirs(t *testing.T) {
	profile := filepath.Join(t.TempDir(), ".config", "fish", "config.fish")

	_, err := appendPathBlock(profile, "fish", "/opt/py/bin")
	require.NoError(t, err)
	assert.FileExists(t, profile)
}
