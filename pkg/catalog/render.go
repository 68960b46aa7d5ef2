package catalog

import (
	"fmt"
	"strings"
)

// Mod is one normalized catalog record, ready for rendering. It exists only
// between normalization and fragment output.
type Mod struct {
	Ident        Field    // Scalar or sequence; sequences render as a list block.
	Name         string   // Flattened single-line name.
	Authors      []string // Always a list, even for a single author.
	Maintainers  []string
	Description  []string // Lines of the description block.
	Category     string
	Dependencies []string
	Size         int64  // Byte size of the owning folder.
	DownloadURL  string // Constructed from the download base and folder name.
	HomepageURL  string
}

// renderFragment renders one catalog fragment with the fixed field order of
// the catalog format. The fragment carries no trailing newline; the caller
// joins fragments with blank lines.
func renderFragment(m Mod) string {
	var b strings.Builder

	b.WriteString("- type: direct_download\n")

	// An ident that arrived as a sequence renders as an indented list block
	// instead of a quoted scalar.
	if m.Ident.Shape == ShapeSequence {
		b.WriteString("  ident:\n")
		for _, id := range m.Ident.Sequence {
			b.WriteString("    - " + id + "\n")
		}
	} else {
		b.WriteString("  ident: \"" + escapeDouble(m.Ident.Scalar) + "\"\n")
	}

	b.WriteString("  name: \"" + escapeDouble(m.Name) + "\"\n")

	b.WriteString("  authors: \n")
	for _, author := range m.Authors {
		b.WriteString("    - \"" + escapeDouble(author) + "\"\n")
	}

	b.WriteString("  maintainers: \n")
	for _, maintainer := range m.Maintainers {
		b.WriteString("    - " + maintainer + "\n")
	}

	b.WriteString("  description: |\n    " + strings.Join(m.Description, "\n    ") + "\n")

	b.WriteString("  category: '" + escapeSingle(m.Category) + "'\n")

	b.WriteString("  dependencies:\n")
	for _, dep := range m.Dependencies {
		b.WriteString("    - '" + escapeSingle(dep) + "'\n")
	}

	fmt.Fprintf(&b, "  size: %d\n", m.Size)
	b.WriteString("  url: \"" + escapeDouble(m.DownloadURL) + "\"\n")
	b.WriteString("  homepage: '" + escapeSingle(m.HomepageURL) + "'")

	return b.String()
}

// escapeDouble escapes a value for a double-quoted YAML scalar. Embedded
// quotes, backslashes, and line breaks would otherwise break the document.
func escapeDouble(s string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"\n", `\n`,
		"\r", `\r`,
		"\t", `\t`,
	)
	return replacer.Replace(s)
}

// escapeSingle escapes a value for a single-quoted YAML scalar by doubling
// embedded single quotes.
func escapeSingle(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
