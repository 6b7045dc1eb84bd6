package metadata

import "fmt"

// ParseError reports that a skill file could not be read or carried no
// usable frontmatter block. It is fatal for that skill's inclusion.
type ParseError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parsing %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("parsing %s: %s", e.Path, e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError reports a malformed field value (version string or
// dependency name). Malformed values are never silently coerced.
type ValidationError struct {
	Path   string
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q in %s: %s", e.Field, e.Value, e.Path, e.Reason)
}
