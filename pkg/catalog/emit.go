package catalog

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// EmitFragment reads the descriptor at descriptorPath and renders the catalog
// fragment for the folder that owns it. The returned fragment is empty when
// no entry qualifies. The descriptor may contain several qualifying entries;
// only the last one survives into the fragment.
func EmitFragment(descriptorPath, folderName string, folderSize int64, args Arguments, logger *zap.Logger) (string, error) {
	data, err := os.ReadFile(descriptorPath)
	if err != nil {
		return "", fmt.Errorf("reading descriptor %s: %w", descriptorPath, err)
	}

	entries, err := parseDescriptor(descriptorPath, data)
	if err != nil {
		return "", err
	}

	var last *Mod
	for i, raw := range entries {
		ok, err := raw.qualifies(args.Marker)
		if err != nil {
			return "", fmt.Errorf("descriptor %s entry %d: %w", descriptorPath, i, err)
		}
		if !ok {
			logger.Debug("Skipping non-qualifying descriptor entry",
				zap.String("descriptor", descriptorPath),
				zap.Int("entry", i))
			continue
		}

		entry, err := raw.decode()
		if err != nil {
			return "", fmt.Errorf("descriptor %s entry %d: %w", descriptorPath, i, err)
		}

		mod, err := normalizeEntry(entry, args)
		if err != nil {
			return "", fmt.Errorf("descriptor %s entry %d: %w", descriptorPath, i, err)
		}
		last = &mod
	}

	if last == nil {
		return "", nil
	}

	last.Size = folderSize
	last.DownloadURL = fmt.Sprintf("%s/%s.zip", strings.TrimSuffix(args.DownloadBaseURL, "/"), folderName)
	last.HomepageURL = args.HomepageURL

	return renderFragment(*last), nil
}

// normalizeEntry applies the per-field fallback and coercion rules of the
// catalog format to a decoded entry. The folder size and URLs are filled in
// by the caller since they depend on the folder, not the entry.
func normalizeEntry(entry Entry, args Arguments) (Mod, error) {
	mod := Mod{
		Name:  flatName(entry.Name),
		Ident: entry.Ident,
	}

	switch entry.Ident.Shape {
	case ShapeAbsent:
		mod.Ident = scalarField(args.UnknownValue)
	case ShapeMapping:
		return Mod{}, &MalformedFieldError{Field: "id", Got: "mapping"}
	}

	var err error
	if mod.Authors, err = normalizeList("authors", entry.Authors, args.UnknownValue); err != nil {
		return Mod{}, err
	}
	if mod.Maintainers, err = normalizeList("maintainers", entry.Maintainers, args.UnknownValue); err != nil {
		return Mod{}, err
	}

	mod.Description = descriptionLines(entry.Description, args.DefaultDescription)

	switch entry.Category.Shape {
	case ShapeAbsent:
		mod.Category = args.UnknownValue
	case ShapeScalar:
		mod.Category = entry.Category.Scalar
	default:
		return Mod{}, &MalformedFieldError{Field: "category", Got: entry.Category.Shape.String()}
	}

	switch entry.Dependencies.Shape {
	case ShapeAbsent:
		mod.Dependencies = nil
	case ShapeSequence:
		mod.Dependencies = entry.Dependencies.Sequence
	default:
		return Mod{}, &MalformedFieldError{Field: "dependencies", Got: entry.Dependencies.Shape.String()}
	}

	return mod, nil
}

// normalizeList coerces an author/maintainer field to a list: a bare string
// becomes a one-element list, and a missing field becomes the fallback value.
func normalizeList(name string, f Field, fallback string) ([]string, error) {
	switch f.Shape {
	case ShapeAbsent:
		return []string{fallback}, nil
	case ShapeScalar:
		return []string{f.Scalar}, nil
	case ShapeSequence:
		return f.Sequence, nil
	default:
		return nil, &MalformedFieldError{Field: name, Got: f.Shape.String()}
	}
}

// descriptionLines splits a description field into block lines: scalars are
// split on line breaks, sequences contribute one line per element, and
// mappings contribute one "key: value" line per pair.
func descriptionLines(f Field, fallback string) []string {
	switch f.Shape {
	case ShapeScalar:
		return splitLines(f.Scalar)
	case ShapeSequence:
		return f.Sequence
	case ShapeMapping:
		return flattenPairs(f.Pairs)
	default:
		return splitLines(fallback)
	}
}

// splitLines splits on both Unix and Windows line endings.
func splitLines(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}
