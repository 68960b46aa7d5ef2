package archive

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestExecute(t *testing.T) {
	t.Run("archives every folder with contents at the zip root", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "ModA", "sub"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(root, "ModA", "data.txt"), []byte("hello"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(root, "ModA", "sub", "inner.txt"), []byte("deep"), 0o644))
		require.NoError(t, os.MkdirAll(filepath.Join(root, "ModB"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(root, "ModB", "b.txt"), []byte("bee"), 0o644))

		require.NoError(t, Execute(Arguments{Root: root, MaxWorkers: 2}, zap.NewNop()))

		reader, err := zip.OpenReader(filepath.Join(root, "ModA.zip"))
		require.NoError(t, err)
		defer reader.Close()

		contents := map[string]string{}
		for _, f := range reader.File {
			if f.FileInfo().IsDir() {
				contents[f.Name] = ""
				continue
			}
			rc, err := f.Open()
			require.NoError(t, err)
			data, err := io.ReadAll(rc)
			require.NoError(t, err)
			require.NoError(t, rc.Close())
			contents[f.Name] = string(data)
		}

		assert.Equal(t, "hello", contents["data.txt"])
		assert.Equal(t, "deep", contents["sub/inner.txt"])
		assert.Contains(t, contents, "sub/")

		_, err = os.Stat(filepath.Join(root, "ModB.zip"))
		assert.NoError(t, err)
	})

	t.Run("empty root archives nothing", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, Execute(Arguments{Root: root}, zap.NewNop()))

		entries, err := os.ReadDir(root)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
