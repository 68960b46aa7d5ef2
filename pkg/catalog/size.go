package catalog

import (
	"fmt"
	"io/fs"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"
)

// FolderSize returns the sum of sizes, in bytes, of every regular file
// reachable by recursive descent from path. Symlinks are not followed, and
// entries that cannot be read are skipped rather than aborting the walk.
func FolderSize(path string) (int64, error) {
	var total atomic.Int64

	conf := &fastwalk.Config{
		Follow: false, // Don't follow symlinks
	}

	// fastwalk invokes the callback from multiple goroutines, so the sum is
	// accumulated atomically.
	err := fastwalk.Walk(conf, path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Skip unreadable entries
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		total.Add(info.Size())
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("sizing folder %s: %w", path, err)
	}

	return total.Load(), nil
}
