package schema

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Path locates a value inside a document: object keys and array indexes.
type Path []string

// Key returns a new path with key appended.
func (p Path) Key(key string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, key)
}

// Index returns a new path with the array index i appended.
func (p Path) Index(i int) Path {
	return p.Key(strconv.Itoa(i))
}

// String joins the path with dots, e.g. "work.0.startDate".
func (p Path) String() string {
	return strings.Join(p, ".")
}

// MarshalText encodes the path in its dotted form.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Kind classifies a violation.
type Kind int

const (
	// KindUnknown is a failure the engine cannot classify.
	KindUnknown Kind = iota
	// KindRequired is a required field that is absent.
	KindRequired
	// KindType is a value of the wrong primitive or structural kind.
	KindType
	// KindFormat is a value of the right kind that fails a constraint.
	KindFormat
	// KindUnrecognized is an undeclared key under the Reject policy.
	KindUnrecognized
)

func (k Kind) String() string {
	switch k {
	case KindRequired:
		return "missing_required_field"
	case KindType:
		return "type_mismatch"
	case KindFormat:
		return "format_violation"
	case KindUnrecognized:
		return "unrecognized_keys"
	default:
		return "unknown"
	}
}

// MarshalText renders the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnknownMessage is the message attached to KindUnknown violations.
const UnknownMessage = "Unknown validation error"

// Violation represents a single constraint failure.
type Violation struct {
	Path    Path   `json:"path"`            // Location of the offending value
	Kind    Kind   `json:"kind"`            // Classification
	Message string `json:"message"`         // Human-readable constraint description
	Value   any    `json:"value,omitempty"` // The value that failed validation (nil when absent)
}

// String renders the violation as "<path>: <message>".
func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// ValidationError is returned by Parse and carries every violation of one pass.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 1 {
		return e.Violations[0].String()
	}
	msg := fmt.Sprintf("%d validation errors:\n", len(e.Violations))
	for i, v := range e.Violations {
		msg += fmt.Sprintf("  %d. %s\n", i+1, v)
	}
	return msg
}

// Messages returns the violations rendered as "<path>: <message>".
func (e *ValidationError) Messages() []string {
	return Messages(e.Violations)
}

// Messages renders violations as "<path>: <message>" strings, preserving order.
func Messages(violations []Violation) []string {
	out := make([]string, len(violations))
	for i, v := range violations {
		out[i] = v.String()
	}
	return out
}

// Violations returns all violations if err wraps a ValidationError.
// Otherwise returns nil.
func Violations(err error) []Violation {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Violations
	}
	return nil
}
