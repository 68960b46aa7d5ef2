// Package archive creates per-folder zip archives for a mod pack.
package archive

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// Arguments holds the configuration options for an archive run.
type Arguments struct {
	Root       string // Pack root directory whose immediate children are mod folders.
	MaxWorkers int    // Number of concurrent workers; 0 means one per CPU.
}

// result reports the outcome of archiving a single folder.
type result struct {
	Folder  string
	ZipPath string
	Size    int64
	Err     error
}

// Execute archives every immediate child folder of the pack root into a
// <folder>.zip placed in the root. Folders are archived concurrently by a
// bounded worker pool; per-folder failures are logged and never abort the
// run.
func Execute(args Arguments, logger *zap.Logger) error {
	root, err := filepath.Abs(args.Root)
	if err != nil {
		return fmt.Errorf("failed to resolve pack root: %w", err)
	}

	dirEntries, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("failed to read pack root %s: %w", root, err)
	}

	var folders []string
	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() {
			folders = append(folders, dirEntry.Name())
		}
	}
	if len(folders) == 0 {
		logger.Info("No folders to archive", zap.String("root", root))
		return nil
	}

	maxWorkers := args.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
		logger.Debug("Adjusted worker count", zap.Int("workers", maxWorkers))
	}

	jobs := make(chan string, len(folders))
	results := make(chan result, len(folders))
	var wg sync.WaitGroup

	logger.Debug("Initializing worker pool", zap.Int("workers", maxWorkers))
	for w := 0; w < maxWorkers; w++ {
		wg.Add(1)
		workerLogger := logger.With(zap.Int("workerID", w))
		go worker(root, jobs, results, &wg, workerLogger)
	}

	for _, folder := range folders {
		jobs <- folder
	}
	close(jobs)

	// Close results once all workers finish
	go func() {
		wg.Wait()
		close(results)
	}()

	archived := 0
	failed := 0
	for res := range results {
		if res.Err != nil {
			logger.Error("Failed to archive folder",
				zap.String("folder", res.Folder),
				zap.Error(res.Err))
			failed++
			continue
		}
		logger.Info("Archived folder",
			zap.String("folder", res.Folder),
			zap.String("zip", res.ZipPath),
			zap.String("size", humanize.IBytes(uint64(res.Size))))
		archived++
	}

	logger.Info("Archive run complete",
		zap.Int("archived", archived),
		zap.Int("failed", failed))
	return nil
}

// worker archives folders from the jobs channel until it is drained.
func worker(root string, jobs <-chan string, results chan<- result, wg *sync.WaitGroup, logger *zap.Logger) {
	defer wg.Done()

	for folder := range jobs {
		logger.Debug("Worker received folder to archive", zap.String("folder", folder))

		zipPath := filepath.Join(root, folder+".zip")
		size, err := zipFolder(filepath.Join(root, folder), zipPath)
		results <- result{Folder: folder, ZipPath: zipPath, Size: size, Err: err}
	}
}

// zipFolder writes a zip archive of the folder's contents to zipPath. Entry
// paths are relative to the folder root, so extracting the archive yields the
// folder's contents directly. Returns the archive size in bytes.
func zipFolder(folderPath, zipPath string) (int64, error) {
	zipFile, err := os.Create(zipPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create zip file: %w", err)
	}
	defer zipFile.Close()

	zipWriter := zip.NewWriter(zipFile)

	err = filepath.WalkDir(folderPath, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		relPath, err := filepath.Rel(folderPath, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path: %w", err)
		}
		if relPath == "." {
			return nil
		}
		// Use forward slashes for zip compatibility
		entryName := filepath.ToSlash(relPath)

		if d.IsDir() {
			if _, err := zipWriter.Create(entryName + "/"); err != nil {
				return fmt.Errorf("failed to create directory entry: %w", err)
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		fileData, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", path, err)
		}

		fileInfo, err := d.Info()
		if err != nil {
			return fmt.Errorf("failed to get file info: %w", err)
		}

		header, err := zip.FileInfoHeader(fileInfo)
		if err != nil {
			return fmt.Errorf("failed to create file header: %w", err)
		}
		header.Name = entryName
		header.Method = zip.Deflate

		writer, err := zipWriter.CreateHeader(header)
		if err != nil {
			return fmt.Errorf("failed to create zip entry: %w", err)
		}
		if _, err := writer.Write(fileData); err != nil {
			return fmt.Errorf("failed to write file data: %w", err)
		}
		return nil
	})
	if err != nil {
		zipWriter.Close()
		os.Remove(zipPath)
		return 0, fmt.Errorf("failed to archive %s: %w", folderPath, err)
	}

	if err := zipWriter.Close(); err != nil {
		os.Remove(zipPath)
		return 0, fmt.Errorf("failed to finalize zip: %w", err)
	}

	info, err := zipFile.Stat()
	if err != nil {
		return 0, nil
	}
	return info.Size(), nil
}
