package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fclean/internal/adapters/fs"
)

func TestSizer_Size(t *testing.T) {
	root := canonicalTempDir(t)
	s := fs.NewSizer()

	t.Run("directory of files", func(t *testing.T) {
		dir := filepath.Join(root, "build")
		for i := range 10 {
			writeFile(t, filepath.Join(dir, "out", string(rune('a'+i))+".o"), 409)
		}
		writeFile(t, filepath.Join(dir, "extra"), 6)
		assert.Equal(t, int64(4096), s.Size(dir))
	})

	t.Run("plain file", func(t *testing.T) {
		file := filepath.Join(root, ".flutter-plugins")
		writeFile(t, file, 123)
		assert.Equal(t, int64(123), s.Size(file))
	})

	t.Run("empty directory", func(t *testing.T) {
		dir := filepath.Join(root, "empty")
		require.NoError(t, os.MkdirAll(dir, 0o750))
		assert.Equal(t, int64(0), s.Size(dir))
	})

	t.Run("missing path", func(t *testing.T) {
		assert.Equal(t, int64(0), s.Size(filepath.Join(root, "nope")))
	})

	t.Run("symlinks are not followed", func(t *testing.T) {
		outside := filepath.Join(root, "outside")
		writeFile(t, filepath.Join(outside, "big"), 10000)

		dir := filepath.Join(root, "cache")
		writeFile(t, filepath.Join(dir, "small"), 10)
		require.NoError(t, os.Symlink(outside, filepath.Join(dir, "dirlink")))
		require.NoError(t, os.Symlink(filepath.Join(outside, "big"), filepath.Join(dir, "filelink")))

		assert.Equal(t, int64(10), s.Size(dir))
	})

	t.Run("unreadable subdirectory counts as zero", func(t *testing.T) {
		if os.Geteuid() == 0 {
			t.Skip("permission bits are not enforced for root")
		}
		dir := filepath.Join(root, "partial")
		writeFile(t, filepath.Join(dir, "visible"), 100)
		writeFile(t, filepath.Join(dir, "locked", "hidden"), 900)
		require.NoError(t, os.Chmod(filepath.Join(dir, "locked"), 0o000))
		t.Cleanup(func() {
			_ = os.Chmod(filepath.Join(dir, "locked"), 0o750) //nolint:gosec // restore for cleanup
		})

		assert.Equal(t, int64(100), s.Size(dir))
	})
}
