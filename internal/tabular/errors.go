package tabular

import "fmt"

// MalformedInputError reports a table cell or row that failed validation,
// with enough context for the user to locate and fix the input.
type MalformedInputError struct {
	File   string
	Line   int
	Column string
	Value  string
	Reason string
}

func (e *MalformedInputError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%s: line %d: %s", e.File, e.Line, e.Reason)
	}
	return fmt.Sprintf("%s: line %d, column %q: %s (value %q)",
		e.File, e.Line, e.Column, e.Reason, e.Value)
}
