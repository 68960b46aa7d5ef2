package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFolderSize(t *testing.T) {
	t.Run("sums nested regular files", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello"), 0o644))
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub", "deep"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "b.txt"), []byte("world!"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "deep", "c.bin"), make([]byte, 100), 0o644))

		size, err := FolderSize(dir)
		require.NoError(t, err)
		assert.Equal(t, int64(5+6+100), size)
	})

	t.Run("empty folder is zero", func(t *testing.T) {
		size, err := FolderSize(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, int64(0), size)
	})

	t.Run("does not follow symlinks", func(t *testing.T) {
		dir := t.TempDir()
		target := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(target, "big.bin"), make([]byte, 4096), 0o644))
		if err := os.Symlink(target, filepath.Join(dir, "link")); err != nil {
			t.Skipf("symlinks unsupported: %v", err)
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("abc"), 0o644))

		size, err := FolderSize(dir)
		require.NoError(t, err)
		assert.Equal(t, int64(3), size)
	})
}
