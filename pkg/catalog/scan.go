package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Execute runs a full catalog scan: it enumerates the immediate child folders
// of the pack root, renders a fragment for each folder with a qualifying
// descriptor entry, and appends the combined document to the catalog file.
//
// Per-folder failures are logged and never abort the run; the exit status
// stays successful, with the failure count surfaced in the summary.
func Execute(args Arguments, logger *zap.Logger) error {
	root, err := filepath.Abs(args.Root)
	if err != nil {
		return fmt.Errorf("failed to resolve pack root: %w", err)
	}

	dirEntries, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("failed to read pack root %s: %w", root, err)
	}

	var (
		combined   string
		modCount   int
		failures   int
		totalBytes int64
	)

	for _, dirEntry := range dirEntries {
		if !dirEntry.IsDir() {
			continue
		}
		folder := dirEntry.Name()
		folderPath := filepath.Join(root, folder)
		descriptorPath := filepath.Join(folderPath, args.DescriptorName)

		if _, err := os.Stat(descriptorPath); err != nil {
			// A folder without a descriptor is not an error; it simply
			// contributes nothing to the catalog.
			logger.Debug("Folder has no descriptor", zap.String("folder", folder))
			continue
		}

		// The size depends only on the folder, so it is computed once per
		// folder rather than once per descriptor entry.
		folderSize, err := FolderSize(folderPath)
		if err != nil {
			logger.Warn("Failed to size folder",
				zap.String("folder", folder),
				zap.Error(err))
			failures++
			continue
		}

		fragment, err := EmitFragment(descriptorPath, folder, folderSize, args, logger)
		if err != nil {
			logDescriptorFailure(logger, folder, err)
			failures++
			continue
		}
		if fragment == "" {
			logger.Debug("Descriptor has no qualifying entry", zap.String("folder", folder))
			continue
		}

		combined += fragment + "\n\n"
		modCount++
		totalBytes += folderSize
	}

	if combined == "" {
		logger.Info("No descriptors found to catalog", zap.String("root", root))
		return nil
	}

	if args.Validate {
		var doc []any
		if err := yaml.Unmarshal([]byte(combined), &doc); err != nil {
			logger.Warn("Emitted catalog is not valid YAML", zap.Error(err))
		}
	}

	outputPath := filepath.Join(root, args.OutputName)
	if err := appendToFile(outputPath, []byte(combined)); err != nil {
		return fmt.Errorf("failed to append catalog to %s: %w", outputPath, err)
	}

	logger.Info("Appended catalog document",
		zap.String("output", outputPath),
		zap.Int("mods", modCount),
		zap.Int("failedFolders", failures),
		zap.String("totalSize", humanize.IBytes(uint64(totalBytes))))
	return nil
}

// logDescriptorFailure logs a per-folder failure with its taxonomy.
func logDescriptorFailure(logger *zap.Logger, folder string, err error) {
	var inputErr *MalformedInputError
	var fieldErr *MalformedFieldError

	switch {
	case errors.As(err, &inputErr):
		logger.Warn("Descriptor is not a top-level array; folder skipped",
			zap.String("folder", folder),
			zap.String("descriptor", inputErr.Path))
	case errors.As(err, &fieldErr):
		logger.Warn("Descriptor entry has a malformed field; folder skipped",
			zap.String("folder", folder),
			zap.String("field", fieldErr.Field),
			zap.String("shape", fieldErr.Got))
	default:
		logger.Warn("Failed to process descriptor; folder skipped",
			zap.String("folder", folder),
			zap.Error(err))
	}
}

// appendToFile appends data to the file at path, creating it if absent.
func appendToFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
