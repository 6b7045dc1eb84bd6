package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymlinkRoundTrip(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	require.NoError(t, os.MkdirAll(target, 0o755))
	link := filepath.Join(dir, "link")

	require.NoError(t, CreateSymlink(target, link))
	assert.True(t, IsSymlink(link))
	assert.True(t, Exists(link))

	got, err := ReadSymlinkTarget(link)
	require.NoError(t, err)
	assert.Equal(t, target, got)

	require.NoError(t, RemoveSymlink(link))
	assert.False(t, Exists(link))
}

func TestIsSymlinkDanglingLink(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "dangling")
	require.NoError(t, CreateSymlink(filepath.Join(dir, "nowhere"), link))

	// Lstat-based probe: a dangling link still counts.
	assert.True(t, IsSymlink(link))
	assert.True(t, Exists(link))
}

func TestIsSymlinkPlainEntries(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	assert.False(t, IsSymlink(file))
	assert.False(t, IsSymlink(dir))
	assert.False(t, IsSymlink(filepath.Join(dir, "missing")))
	assert.False(t, Exists(filepath.Join(dir, "missing")))
}
