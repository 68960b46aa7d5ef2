package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFragment(t *testing.T) {
	base := Mod{
		Ident:       scalarField("base"),
		Name:        "Base",
		Authors:     []string{"A"},
		Maintainers: []string{"M"},
		Description: []string{"desc"},
		Category:    "misc",
		Size:        1,
		DownloadURL: "https://example.test/Base.zip",
		HomepageURL: "https://example.test/home",
	}

	t.Run("field order is fixed", func(t *testing.T) {
		fragment := renderFragment(base)
		order := []string{
			"- type:", "  ident:", "  name:", "  authors:", "  maintainers:",
			"  description:", "  category:", "  dependencies:", "  size:",
			"  url:", "  homepage:",
		}
		last := -1
		for _, key := range order {
			idx := strings.Index(fragment, key)
			assert.Greaterf(t, idx, last, "%s should follow the previous field", key)
			last = idx
		}
		assert.False(t, strings.HasSuffix(fragment, "\n"), "fragment carries no trailing newline")
	})

	t.Run("double-quoted scalars escape quotes and line breaks", func(t *testing.T) {
		mod := base
		mod.Name = "He said \"hi\"\nsecond"
		fragment := renderFragment(mod)
		assert.Contains(t, fragment, `  name: "He said \"hi\"\nsecond"`)
	})

	t.Run("single-quoted scalars double embedded quotes", func(t *testing.T) {
		mod := base
		mod.Category = "it's misc"
		mod.Dependencies = []string{"o'dep"}
		fragment := renderFragment(mod)
		assert.Contains(t, fragment, "  category: 'it''s misc'")
		assert.Contains(t, fragment, "    - 'o''dep'")
	})

	t.Run("maintainers are unquoted", func(t *testing.T) {
		fragment := renderFragment(base)
		assert.Contains(t, fragment, "  maintainers: \n    - M\n")
	})

	t.Run("sequence ident renders as block instead of scalar", func(t *testing.T) {
		mod := base
		mod.Ident = Field{Shape: ShapeSequence, Sequence: []string{"a", "b"}}
		fragment := renderFragment(mod)
		assert.Contains(t, fragment, "  ident:\n    - a\n    - b\n")
		assert.NotContains(t, fragment, `ident: "`)
	})
}
