package catalog

import (
	"encoding/json"
	"strings"
)

// rawEntry is one record of a descriptor before its fields are decoded.
type rawEntry map[string]json.RawMessage

// Entry is one qualifying descriptor record with all catalog-relevant fields
// decoded into tagged variants.
type Entry struct {
	Name         Field
	Ident        Field
	Authors      Field
	Maintainers  Field
	Description  Field
	Category     Field
	Dependencies Field
}

// parseDescriptor decodes descriptor bytes into raw records. A top-level
// value that is not an array of objects yields a MalformedInputError.
func parseDescriptor(path string, data []byte) ([]rawEntry, error) {
	var entries []rawEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, &MalformedInputError{Path: path, Err: err}
	}
	return entries, nil
}

// qualifies reports whether a raw record passes the catalog filter: its
// discriminator equals the marker and its name is present and non-empty.
// Records are filtered before their remaining fields are decoded, so a
// malformed field in a non-qualifying record is never an error.
func (e rawEntry) qualifies(marker string) (bool, error) {
	raw, ok := e["type"]
	if !ok {
		return false, nil
	}
	// Only a scalar discriminator can match the marker; any other shape is
	// simply a non-match, not an error.
	var discriminator string
	if err := json.Unmarshal(raw, &discriminator); err != nil {
		return false, nil
	}
	if discriminator != marker {
		return false, nil
	}

	nameRaw, ok := e["name"]
	if !ok {
		return false, nil
	}
	name, err := decodeField("name", nameRaw)
	if err != nil {
		return false, err
	}
	if name.Shape == ShapeSequence {
		return false, &MalformedFieldError{Field: "name", Got: "sequence"}
	}
	return !name.Empty(), nil
}

// decode turns a qualifying raw record into an Entry. The ident falls back
// through the two alternate source fields.
func (e rawEntry) decode() (Entry, error) {
	var entry Entry
	var err error

	if entry.Name, err = e.field("name"); err != nil {
		return Entry{}, err
	}
	if entry.Ident, err = e.field("id"); err != nil {
		return Entry{}, err
	}
	if entry.Ident.Shape == ShapeAbsent {
		if entry.Ident, err = e.field("ident"); err != nil {
			return Entry{}, err
		}
	}
	if entry.Authors, err = e.field("authors"); err != nil {
		return Entry{}, err
	}
	if entry.Maintainers, err = e.field("maintainers"); err != nil {
		return Entry{}, err
	}
	if entry.Description, err = e.field("description"); err != nil {
		return Entry{}, err
	}
	if entry.Category, err = e.field("category"); err != nil {
		return Entry{}, err
	}
	if entry.Dependencies, err = e.field("dependencies"); err != nil {
		return Entry{}, err
	}

	return entry, nil
}

// field decodes a single named field, returning an absent Field when the
// record does not contain it.
func (e rawEntry) field(name string) (Field, error) {
	raw, ok := e[name]
	if !ok {
		return Field{}, nil
	}
	return decodeField(name, raw)
}

// flattenPairs joins mapping pairs into "key: value" strings.
func flattenPairs(pairs []Pair) []string {
	flattened := make([]string, 0, len(pairs))
	for _, p := range pairs {
		flattened = append(flattened, p.Key+": "+p.Value)
	}
	return flattened
}

// flatName renders a name field as a single line: scalars pass through,
// mappings are joined as "key: value | key: value".
func flatName(name Field) string {
	if name.Shape == ShapeMapping {
		return strings.Join(flattenPairs(name.Pairs), " | ")
	}
	return name.Scalar
}
