package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Shape identifies the JSON shape a descriptor field arrived in.
type Shape int

const (
	// ShapeAbsent means the field was not present in the record.
	ShapeAbsent Shape = iota
	// ShapeScalar means the field was a plain JSON string.
	ShapeScalar
	// ShapeSequence means the field was an array of strings.
	ShapeSequence
	// ShapeMapping means the field was an object with string values.
	ShapeMapping
)

// String returns a human-readable shape name.
func (s Shape) String() string {
	switch s {
	case ShapeAbsent:
		return "absent"
	case ShapeScalar:
		return "scalar"
	case ShapeSequence:
		return "sequence"
	case ShapeMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Pair is one key/value pair of a mapping-shaped field, in source order.
type Pair struct {
	Key   string
	Value string
}

// Field is a descriptor field decoded once at the boundary into a tagged
// variant, so rendering never has to inspect raw JSON shapes.
type Field struct {
	Shape    Shape
	Scalar   string   // Set when Shape is ShapeScalar.
	Sequence []string // Set when Shape is ShapeSequence.
	Pairs    []Pair   // Set when Shape is ShapeMapping, in source key order.
}

// Empty reports whether the field is absent or holds no content, mirroring
// the descriptor format's notion of a missing value.
func (f Field) Empty() bool {
	switch f.Shape {
	case ShapeAbsent:
		return true
	case ShapeScalar:
		return f.Scalar == ""
	case ShapeSequence:
		return len(f.Sequence) == 0
	case ShapeMapping:
		return len(f.Pairs) == 0
	default:
		return true
	}
}

// scalarField returns a scalar Field holding the given value.
func scalarField(value string) Field {
	return Field{Shape: ShapeScalar, Scalar: value}
}

// decodeField decodes a raw descriptor value into a Field. The supported
// shapes are a string, an array of strings, and an object with string values;
// anything else yields a MalformedFieldError.
func decodeField(name string, raw json.RawMessage) (Field, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return Field{}, nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return Field{}, &MalformedFieldError{Field: name, Got: "unparseable string"}
		}
		return Field{Shape: ShapeScalar, Scalar: s}, nil
	case '[':
		return decodeSequence(name, trimmed)
	case '{':
		return decodeMapping(name, trimmed)
	default:
		return Field{}, &MalformedFieldError{Field: name, Got: describeValue(trimmed)}
	}
}

// decodeSequence decodes an array of strings. Non-string elements are
// rejected rather than stringified.
func decodeSequence(name string, raw []byte) (Field, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return Field{}, &MalformedFieldError{Field: name, Got: "unparseable array"}
	}

	values := make([]string, 0, len(elems))
	for i, elem := range elems {
		var s string
		if err := json.Unmarshal(elem, &s); err != nil {
			return Field{}, &MalformedFieldError{
				Field: name,
				Got:   fmt.Sprintf("array with non-string element at index %d", i),
			}
		}
		values = append(values, s)
	}
	return Field{Shape: ShapeSequence, Sequence: values}, nil
}

// decodeMapping decodes an object with string values, preserving the key
// order of the source document. encoding/json maps would lose the order, so
// the object is walked token by token.
func decodeMapping(name string, raw []byte) (Field, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	if _, err := dec.Token(); err != nil { // opening brace
		return Field{}, &MalformedFieldError{Field: name, Got: "unparseable object"}
	}

	var pairs []Pair
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Field{}, &MalformedFieldError{Field: name, Got: "unparseable object"}
		}
		key, ok := keyTok.(string)
		if !ok {
			return Field{}, &MalformedFieldError{Field: name, Got: "object with non-string key"}
		}

		valTok, err := dec.Token()
		if err != nil {
			return Field{}, &MalformedFieldError{Field: name, Got: "unparseable object"}
		}
		value, ok := valTok.(string)
		if !ok {
			return Field{}, &MalformedFieldError{
				Field: name,
				Got:   fmt.Sprintf("object with non-string value for key %q", key),
			}
		}

		pairs = append(pairs, Pair{Key: key, Value: value})
	}

	return Field{Shape: ShapeMapping, Pairs: pairs}, nil
}

// describeValue names the JSON shape of a raw value for error messages.
func describeValue(raw []byte) string {
	switch raw[0] {
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}
