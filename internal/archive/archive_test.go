package archive

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tarEntry struct {
	name string
	body string
	dir  bool
}

func writeTarGz(t *testing.T, entries []tarEntry) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.tar.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	gzw := gzip.NewWriter(f)
	tw := tar.NewWriter(gzw)

	for _, e := range entries {
		hdr := &tar.Header{Name: e.name, Mode: 0o644}
		if e.dir {
			hdr.Typeflag = tar.TypeDir
			hdr.Mode = 0o755
		} else {
			hdr.Typeflag = tar.TypeReg
			hdr.Size = int64(len(e.body))
		}
		require.NoError(t, tw.WriteHeader(hdr))
		if !e.dir {
			_, err := tw.Write([]byte(e.body))
			require.NoError(t, err)
		}
	}

	require.NoError(t, tw.Close())
	require.NoError(t, gzw.Close())
	return path
}

func writeZip(t *testing.T, files map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, body := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return path
}

func TestExtractTarGzWholeArchive(t *testing.T) {
	archive := writeTarGz(t, []tarEntry{
		{name: "python/", dir: true},
		{name: "python/bin/", dir: true},
		{name: "python/bin/python3", body: "#!bin"},
		{name: "python/lib/libpython.so", body: "lib"},
	})

	dest := t.TempDir()
	require.NoError(t, Extract(archive, dest, 0))

	data, err := os.ReadFile(filepath.Join(dest, "python", "bin", "python3"))
	require.NoError(t, err)
	assert.Equal(t, "#!bin", string(data))
}

func TestExtractTarGzStripOneComponent(t *testing.T) {
	archive := writeTarGz(t, []tarEntry{
		{name: "python/", dir: true},
		{name: "python/bin/", dir: true},
		{name: "python/bin/python3", body: "#!bin"},
		{name: "python/lib/os.py", body: "py"},
	})

	dest := t.TempDir()
	require.NoError(t, Extract(archive, dest, 1))

	assert.FileExists(t, filepath.Join(dest, "bin", "python3"))
	assert.FileExists(t, filepath.Join(dest, "lib", "os.py"))
	assert.NoFileExists(t, filepath.Join(dest, "python", "bin", "python3"))
}

func TestExtractTarGzAllMembersStrippedYieldsEmptyDest(t *testing.T) {
	// Every member path has exactly one segment; strip=1 must drop them all
	// without error rather than extracting to the destination root.
	archive := writeTarGz(t, []tarEntry{
		{name: "readme.txt", body: "top"},
		{name: "license", body: "mit"},
	})

	dest := t.TempDir()
	require.NoError(t, Extract(archive, dest, 1))

	entries, err := os.ReadDir(dest)
	require.NoError(t, err)
	assert.Empty(t, entries, "destination must stay empty when all members are stripped away")
}

func TestExtractTarGzStripSkipsShallowMembers(t *testing.T) {
	archive := writeTarGz(t, []tarEntry{
		{name: "shallow.txt", body: "skip me"},
		{name: "wrapper/kept.txt", body: "keep me"},
	})

	dest := t.TempDir()
	require.NoError(t, Extract(archive, dest, 1))

	assert.NoFileExists(t, filepath.Join(dest, "shallow.txt"))
	data, err := os.ReadFile(filepath.Join(dest, "kept.txt"))
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data))
}

func TestExtractZip(t *testing.T) {
	archive := writeZip(t, map[string]string{
		"python.exe":      "exe",
		"python312._pth":  "python312.zip\n.\n\n#import site\n",
		"Lib/site-packages/marker.txt": "m",
	})

	dest := t.TempDir()
	require.NoError(t, Extract(archive, dest, 0))

	assert.FileExists(t, filepath.Join(dest, "python.exe"))
	assert.FileExists(t, filepath.Join(dest, "python312._pth"))
	assert.FileExists(t, filepath.Join(dest, "Lib", "site-packages", "marker.txt"))
}

func TestExtractCreatesMissingDestination(t *testing.T) {
	archive := writeZip(t, map[string]string{"a.txt": "a"})

	dest := filepath.Join(t.TempDir(), "deep", "nested", "dir")
	require.NoError(t, Extract(archive, dest, 0))
	assert.FileExists(t, filepath.Join(dest, "a.txt"))
}

func TestExtractUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "python.tar.xz")
	require.NoError(t, os.WriteFile(path, []byte("not an archive"), 0o644))

	err := Extract(path, t.TempDir(), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported archive format")
}

func TestExtractRejectsPathTraversal(t *testing.T) {
	archive := writeTarGz(t, []tarEntry{
		{name: "../outside.txt", body: "nope"},
	})

	err := Extract(archive, t.TempDir(), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "illegal member path")
}

func TestStripPath(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		want   string
		wantOK bool
	}{
		{"python/bin/python3", 1, "bin/python3", true},
		{"python/bin/python3", 2, "python3", true},
		{"python/bin/python3", 3, "", false},
		{"python/", 1, "", false},
		{"top.txt", 1, "", false},
		{"top.txt", 0, "top.txt", true},
	}

	for _, tt := range tests {
		got, ok := stripPath(tt.name, tt.n)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("stripPath(%q, %d) = (%q, %v), want (%q, %v)", tt.name, tt.n, got, ok, tt.want, tt.wantOK)
		}
	}
}
