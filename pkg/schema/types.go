package schema

import (
	"fmt"
	"regexp"
	"strings"
)

// Type defines the contract for a node of a schema tree.
// Implementations are provided by this package only; the tree is walked by
// the validator and by exporters through type switches on the concrete types.
type Type interface {
	// Name returns the human-readable name of the type (e.g., "string", "[date]").
	Name() string

	validate(s *state, path Path, value any) any
}

// Format names a well-known string format.
type Format string

const (
	FormatNone     Format = ""
	FormatEmail    Format = "email"
	FormatURL      Format = "url"
	FormatDateTime Format = "datetime"
)

// DatePattern is the YYYY-MM-DD pattern applied to date fields.
const DatePattern = `^\d{4}-\d{2}-\d{2}$`

// DateMessage is reported when a date field does not match DatePattern.
const DateMessage = "Date must be in YYYY-MM-DD format"

var dateRegexp = regexp.MustCompile(DatePattern)

// --- Built-in Type Implementations ---

// StringType validates string values.
type StringType struct {
	MinLength      *int
	MinMessage     string
	Length         *int
	Format         Format
	Pattern        *regexp.Regexp
	PatternMessage string
}

func (t *StringType) Name() string {
	switch {
	case t.Pattern == dateRegexp:
		return "date"
	case t.Format != FormatNone:
		return string(t.Format)
	}
	return "string"
}

// Min sets a minimum length. An optional message replaces the default one.
func (t *StringType) Min(n int, message ...string) *StringType {
	t.MinLength = &n
	if len(message) > 0 {
		t.MinMessage = message[0]
	}
	return t
}

// Len requires an exact length.
func (t *StringType) Len(n int) *StringType {
	t.Length = &n
	return t
}

// Match requires the value to match re, reporting message on failure.
func (t *StringType) Match(re *regexp.Regexp, message string) *StringType {
	t.Pattern = re
	t.PatternMessage = message
	return t
}

// NumberType validates numeric values, optionally bounded (inclusive).
type NumberType struct {
	Minimum *float64
	Maximum *float64
}

func (t *NumberType) Name() string { return "number" }

// Min sets the inclusive lower bound.
func (t *NumberType) Min(v float64) *NumberType {
	t.Minimum = &v
	return t
}

// Max sets the inclusive upper bound.
func (t *NumberType) Max(v float64) *NumberType {
	t.Maximum = &v
	return t
}

// BoolType validates boolean values.
type BoolType struct{}

func (t *BoolType) Name() string { return "boolean" }

// EnumType validates strings drawn from a closed vocabulary.
type EnumType struct {
	Values []string
}

func (t *EnumType) Name() string {
	return fmt.Sprintf("enum(%s)", strings.Join(t.Values, "|"))
}

func (t *EnumType) allows(v string) bool {
	for _, candidate := range t.Values {
		if candidate == v {
			return true
		}
	}
	return false
}

func (t *EnumType) expected() string {
	quoted := make([]string, len(t.Values))
	for i, v := range t.Values {
		quoted[i] = "'" + v + "'"
	}
	return strings.Join(quoted, " | ")
}

// SliceType validates sequences of a specific element type.
type SliceType struct {
	Elem Type
}

func (t *SliceType) Name() string {
	if t.Elem == nil {
		return "[]"
	}
	return fmt.Sprintf("[%s]", t.Elem.Name())
}

// UnknownKeys selects what happens to object keys that no field declares.
type UnknownKeys int

const (
	// Passthrough keeps unknown keys unchanged in the normalized output.
	Passthrough UnknownKeys = iota
	// Strip drops unknown keys from the normalized output.
	Strip
	// Reject reports unknown keys as violations.
	Reject
)

func (u UnknownKeys) String() string {
	switch u {
	case Strip:
		return "strip"
	case Reject:
		return "reject"
	default:
		return "passthrough"
	}
}

// ParseUnknownKeys converts a policy name to UnknownKeys.
func ParseUnknownKeys(name string) (UnknownKeys, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "passthrough":
		return Passthrough, nil
	case "strip":
		return Strip, nil
	case "reject", "strict":
		return Reject, nil
	default:
		return Passthrough, fmt.Errorf("unsupported unknown-key policy: %s", name)
	}
}

// Field is a named member of an ObjectType.
type Field struct {
	Name        string
	Type        Type
	Required    bool
	Default     any
	Description string
}

// WithDefault returns a copy of the field that is filled with v when absent.
func (f Field) WithDefault(v any) Field {
	f.Default = v
	return f
}

// Describe returns a copy of the field carrying a description.
func (f Field) Describe(text string) Field {
	f.Description = text
	return f
}

// ObjectType validates string-keyed objects against an ordered field list.
type ObjectType struct {
	Title   string
	Fields  []Field
	Unknown UnknownKeys
}

func (t *ObjectType) Name() string {
	if t.Title != "" {
		return t.Title
	}
	return "object"
}

// Field returns the declared field with the given name.
func (t *ObjectType) Field(name string) (Field, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// RequiredFields lists the names of required fields in declaration order.
func (t *ObjectType) RequiredFields() []string {
	var names []string
	for _, f := range t.Fields {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

// RecordType validates string-keyed maps whose values share one type.
type RecordType struct {
	Value Type
}

func (t *RecordType) Name() string {
	if t.Value == nil {
		return "{string:any}"
	}
	return fmt.Sprintf("{string:%s}", t.Value.Name())
}

// AnyType accepts every value unchanged.
type AnyType struct{}

func (t *AnyType) Name() string { return "any" }

// --- Factory Functions ---

// String creates a string type validator.
func String() *StringType { return &StringType{} }

// Email creates a string validator for email addresses.
func Email() *StringType { return &StringType{Format: FormatEmail} }

// URL creates a string validator for absolute URLs.
func URL() *StringType { return &StringType{Format: FormatURL} }

// DateTime creates a string validator for ISO 8601 UTC timestamps.
func DateTime() *StringType { return &StringType{Format: FormatDateTime} }

// Date creates a string validator for YYYY-MM-DD dates.
func Date() *StringType {
	return &StringType{Pattern: dateRegexp, PatternMessage: DateMessage}
}

// Number creates a number type validator.
func Number() *NumberType { return &NumberType{} }

// Bool creates a boolean type validator.
func Bool() Type { return &BoolType{} }

// Enum creates a validator for the given closed vocabulary.
func Enum(values ...string) *EnumType {
	return &EnumType{Values: append([]string(nil), values...)}
}

// EnumOf creates an enum validator from a slice of string-kinded values.
func EnumOf[T ~string](values []T) *EnumType {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return &EnumType{Values: out}
}

// Slice creates a slice type validator for elements of the given type.
func Slice(elem Type) Type {
	return &SliceType{Elem: elem}
}

// Object creates an object type validator from fields in declaration order.
func Object(fields ...Field) *ObjectType {
	return &ObjectType{Fields: fields}
}

// Record creates a map validator whose values all satisfy value.
func Record(value Type) Type {
	return &RecordType{Value: value}
}

// Any creates a validator that accepts every value.
func Any() Type { return &AnyType{} }

// Required declares a field that must be present.
func Required(name string, t Type) Field {
	return Field{Name: name, Type: t, Required: true}
}

// Optional declares a field that may be absent.
func Optional(name string, t Type) Field {
	return Field{Name: name, Type: t}
}
