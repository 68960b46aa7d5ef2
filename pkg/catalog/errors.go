package catalog

import "fmt"

// MalformedInputError reports a descriptor whose top-level JSON value is not
// an array of records. The owning folder is skipped; the run continues.
type MalformedInputError struct {
	Path string // Path of the offending descriptor file.
	Err  error  // Underlying decode error, if any.
}

// Error implements the error interface.
func (e *MalformedInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("descriptor %s is not a top-level array: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("descriptor %s is not a top-level array", e.Path)
}

// Unwrap returns the underlying decode error.
func (e *MalformedInputError) Unwrap() error { return e.Err }

// MalformedFieldError reports a field whose JSON shape is not one of the
// shapes the catalog format supports for it. Entries with such fields fail
// loudly instead of being silently mis-rendered.
type MalformedFieldError struct {
	Field string // Name of the offending field.
	Got   string // Description of the shape that was found.
}

// Error implements the error interface.
func (e *MalformedFieldError) Error() string {
	return fmt.Sprintf("field %q has unsupported shape: %s", e.Field, e.Got)
}
