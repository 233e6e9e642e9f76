package release

import (
	"strings"
	"testing"

	"github.com/Rahulkumar010/python-noadmin/internal/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistributionURLGoldenValues(t *testing.T) {
	tests := []struct {
		name    string
		version string
		info    platform.Info
		want    string
	}{
		{
			name:    "linux x86_64",
			version: "3.11.9",
			info:    platform.Info{OS: platform.OSLinux, Arch: platform.ArchX8664},
			want:    "https://github.com/indygreg/python-build-standalone/releases/download/20241206/cpython-3.11.9+20241206-x86_64-unknown-linux-gnu-install_only.tar.gz",
		},
		{
			name:    "linux aarch64",
			version: "3.12.8",
			info:    platform.Info{OS: platform.OSLinux, Arch: platform.ArchAarch64},
			want:    "https://github.com/indygreg/python-build-standalone/releases/download/20241206/cpython-3.12.8+20241206-aarch64-unknown-linux-gnu-install_only.tar.gz",
		},
		{
			name:    "macos x86_64",
			version: "3.10.14",
			info:    platform.Info{OS: platform.OSMacOS, Arch: platform.ArchX8664},
			want:    "https://github.com/indygreg/python-build-standalone/releases/download/20241206/cpython-3.10.14+20241206-x86_64-apple-darwin-install_only.tar.gz",
		},
		{
			name:    "macos aarch64",
			version: "3.12.7",
			info:    platform.Info{OS: platform.OSMacOS, Arch: platform.ArchAarch64},
			want:    "https://github.com/indygreg/python-build-standalone/releases/download/20241206/cpython-3.12.7+20241206-aarch64-apple-darwin-install_only.tar.gz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DistributionURL(tt.version, tt.info)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDistributionURLRejectsWindows(t *testing.T) {
	_, err := DistributionURL("3.12.8", platform.Info{OS: platform.OSWindows, Arch: platform.ArchX8664})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no standalone distribution")
}

func TestEmbedURLGoldenValues(t *testing.T) {
	tests := []struct {
		arch string
		want string
	}{
		{platform.ArchX8664, "https://www.python.org/ftp/python/3.12.8/python-3.12.8-embed-amd64.zip"},
		{platform.ArchX86, "https://www.python.org/ftp/python/3.12.8/python-3.12.8-embed-win32.zip"},
		{platform.ArchAarch64, "https://www.python.org/ftp/python/3.12.8/python-3.12.8-embed-arm64.zip"},
	}

	for _, tt := range tests {
		t.Run(tt.arch, func(t *testing.T) {
			got, err := EmbedURL("3.12.8", tt.arch)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEmbedURLUnknownArch(t *testing.T) {
	_, err := EmbedURL("3.12.8", "sparc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown Windows architecture")
}

func TestValidate(t *testing.T) {
	for _, v := range Versions {
		assert.NoError(t, Validate(v), "allow-listed version %q must validate", v)
	}

	assert.NoError(t, Validate("3.13.1"), "off-list dotted numerics are accepted")

	for _, v := range []string{"", "three", "3.12.x", "latest", "3.12.8; rm -rf /"} {
		assert.Error(t, Validate(v), "version %q should be rejected", v)
	}
}

func TestDefaultVersionIsListed(t *testing.T) {
	assert.True(t, Known(DefaultVersion))
	assert.False(t, Known("2.7.18"))
}

func TestVersionsAreDottedTriples(t *testing.T) {
	for _, v := range Versions {
		if strings.Count(v, ".") != 2 {
			t.Errorf("version %q is not a dotted triple", v)
		}
	}
}
