package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/url"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Option configures a validation pass.
type Option func(*state)

// WithUnknownKeys applies policy to every object in the tree, overriding the
// policy declared on each ObjectType.
func WithUnknownKeys(policy UnknownKeys) Option {
	return func(s *state) {
		s.unknown = &policy
	}
}

// Result is the outcome of a validation pass.
// Value is the normalized input (defaults applied) and is only meaningful when OK.
type Result struct {
	Value      any
	Violations []Violation
}

// OK reports whether the pass found no violations.
func (r Result) OK() bool { return len(r.Violations) == 0 }

// Messages renders the violations as "<path>: <message>".
func (r Result) Messages() []string { return Messages(r.Violations) }

// Check validates value against t and collects every violation.
// It never stops at the first failure and never mutates value.
func Check(t Type, value any, opts ...Option) Result {
	s := &state{}
	for _, opt := range opts {
		opt(s)
	}
	out := s.check(t, Path{}, value)
	if len(s.violations) > 0 {
		return Result{Violations: s.violations}
	}
	return Result{Value: out}
}

// Parse validates value against t and returns the normalized value.
// On failure the error is a *ValidationError with every violation found.
func Parse(t Type, value any, opts ...Option) (any, error) {
	res := Check(t, value, opts...)
	if !res.OK() {
		return nil, &ValidationError{Violations: res.Violations}
	}
	return res.Value, nil
}

// Valid reports whether value satisfies t.
func Valid(t Type, value any, opts ...Option) bool {
	return Check(t, value, opts...).OK()
}

type state struct {
	unknown    *UnknownKeys
	violations []Violation
}

func (s *state) add(path Path, kind Kind, message string, value any) {
	s.violations = append(s.violations, Violation{
		Path:    path,
		Kind:    kind,
		Message: message,
		Value:   value,
	})
}

func (s *state) mismatch(path Path, expected string, value any) {
	s.add(path, KindType, fmt.Sprintf("Expected %s, received %s", expected, kindOf(value)), value)
}

func (s *state) check(t Type, path Path, value any) any {
	if t == nil {
		s.add(path, KindUnknown, UnknownMessage, value)
		return value
	}
	return t.validate(s, path, deref(value))
}

// deref follows pointers so *string, *map[string]any and friends validate
// like the values they point to. A nil pointer is null.
func deref(value any) any {
	switch value.(type) {
	case nil, string, bool, float64, json.Number, map[string]any, []any:
		return value
	}
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	return rv.Interface()
}

func (t *StringType) validate(s *state, path Path, value any) any {
	str, ok := value.(string)
	if !ok {
		s.mismatch(path, "string", value)
		return value
	}

	n := utf8.RuneCountInString(str)
	if t.MinLength != nil && n < *t.MinLength {
		msg := t.MinMessage
		if msg == "" {
			msg = fmt.Sprintf("String must contain at least %d character(s)", *t.MinLength)
		}
		s.add(path, KindFormat, msg, value)
	}
	if t.Length != nil && n != *t.Length {
		s.add(path, KindFormat, fmt.Sprintf("String must contain exactly %d character(s)", *t.Length), value)
	}

	switch t.Format {
	case FormatEmail:
		if !isEmail(str) {
			s.add(path, KindFormat, "Invalid email", value)
		}
	case FormatURL:
		if !isURL(str) {
			s.add(path, KindFormat, "Invalid url", value)
		}
	case FormatDateTime:
		if !dateTimeRegexp.MatchString(str) {
			s.add(path, KindFormat, "Invalid datetime", value)
		}
	}

	if t.Pattern != nil && !t.Pattern.MatchString(str) {
		msg := t.PatternMessage
		if msg == "" {
			msg = "Invalid"
		}
		s.add(path, KindFormat, msg, value)
	}
	return str
}

func (t *NumberType) validate(s *state, path Path, value any) any {
	f, ok := Float(value)
	if !ok || math.IsNaN(f) {
		s.mismatch(path, "number", value)
		return value
	}
	if t.Minimum != nil && f < *t.Minimum {
		s.add(path, KindFormat, "Number must be greater than or equal to "+formatNumber(*t.Minimum), value)
	}
	if t.Maximum != nil && f > *t.Maximum {
		s.add(path, KindFormat, "Number must be less than or equal to "+formatNumber(*t.Maximum), value)
	}
	return value
}

func (t *BoolType) validate(s *state, path Path, value any) any {
	if _, ok := value.(bool); !ok {
		s.mismatch(path, "boolean", value)
	}
	return value
}

func (t *EnumType) validate(s *state, path Path, value any) any {
	str, ok := value.(string)
	if !ok {
		s.mismatch(path, t.expected(), value)
		return value
	}
	if !t.allows(str) {
		s.add(path, KindFormat, fmt.Sprintf("Invalid enum value. Expected %s, received '%s'", t.expected(), str), value)
	}
	return str
}

func (t *SliceType) validate(s *state, path Path, value any) any {
	items, ok := asSlice(value)
	if !ok {
		s.mismatch(path, "array", value)
		return value
	}
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = s.check(t.Elem, path.Index(i), item)
	}
	return out
}

func (t *ObjectType) validate(s *state, path Path, value any) any {
	obj, ok := asObject(value)
	if !ok {
		s.mismatch(path, "object", value)
		return value
	}

	out := make(map[string]any, len(obj))
	declared := make(map[string]struct{}, len(t.Fields))
	for _, f := range t.Fields {
		declared[f.Name] = struct{}{}
		v, present := obj[f.Name]
		if !present {
			if f.Default != nil {
				out[f.Name] = f.Default
			} else if f.Required {
				s.add(path.Key(f.Name), KindRequired, "Required", nil)
			}
			continue
		}
		out[f.Name] = s.check(f.Type, path.Key(f.Name), v)
	}

	var extra []string
	for key := range obj {
		if _, ok := declared[key]; !ok {
			extra = append(extra, key)
		}
	}
	if len(extra) == 0 {
		return out
	}
	sort.Strings(extra)

	policy := t.Unknown
	if s.unknown != nil {
		policy = *s.unknown
	}
	switch policy {
	case Strip:
	case Reject:
		quoted := make([]string, len(extra))
		for i, k := range extra {
			quoted[i] = "'" + k + "'"
		}
		s.add(path, KindUnrecognized, "Unrecognized key(s) in object: "+strings.Join(quoted, ", "), nil)
	default:
		for _, key := range extra {
			out[key] = obj[key]
		}
	}
	return out
}

func (t *RecordType) validate(s *state, path Path, value any) any {
	obj, ok := asObject(value)
	if !ok {
		s.mismatch(path, "object", value)
		return value
	}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]any, len(obj))
	for _, k := range keys {
		if t.Value == nil {
			out[k] = obj[k]
			continue
		}
		out[k] = s.check(t.Value, path.Key(k), obj[k])
	}
	return out
}

func (t *AnyType) validate(s *state, path Path, value any) any {
	return value
}

// --- Value helpers ---

// kindOf names the JSON kind of value the way violation messages report it.
func kindOf(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number:
		f, ok := Float(v)
		switch {
		case !ok:
			// Not a numeric literal at all.
			return "string"
		case math.IsNaN(f):
			return "nan"
		}
		return "number"
	case float64:
		if math.IsNaN(v) {
			return "nan"
		}
		return "number"
	case float32:
		if math.IsNaN(float64(v)) {
			return "nan"
		}
		return "number"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "number"
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return "object"
		}
		return "map"
	case reflect.Struct:
		return "struct"
	case reflect.Pointer:
		if rv.IsNil() {
			return "null"
		}
		return kindOf(rv.Elem().Interface())
	}
	return "unknown"
}

// Float converts a numeric value to float64. A json.Number literal beyond
// the float64 range is still a number and converts to ±Inf.
func Float(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := strconv.ParseFloat(string(v), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func asSlice(value any) ([]any, bool) {
	if items, ok := value.([]any); ok {
		return items, true
	}
	if value == nil {
		return nil, false
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

func asObject(value any) (map[string]any, bool) {
	if obj, ok := value.(map[string]any); ok {
		return obj, true
	}
	if value == nil {
		return nil, false
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	obj := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		obj[iter.Key().String()] = iter.Value().Interface()
	}
	return obj, true
}

// --- Format checks ---

var (
	emailRegexp    = regexp.MustCompile(`(?i)^[A-Z0-9_'+\-.]*[A-Z0-9_+\-]@([A-Z0-9][A-Z0-9\-]*\.)+[A-Z]{2,}$`)
	dateTimeRegexp = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?Z$`)
)

func isEmail(s string) bool {
	if strings.HasPrefix(s, ".") || strings.Contains(s, "..") {
		return false
	}
	return emailRegexp.MatchString(s)
}

// hostSchemes need a host. As in browsers, the slashes after the scheme are
// optional for them: "http:example.com" is http://example.com/.
var hostSchemes = map[string]bool{
	"http": true, "https": true, "ws": true, "wss": true, "ftp": true,
}

func isURL(s string) bool {
	if strings.TrimSpace(s) != s || s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return false
	}
	if hostSchemes[strings.ToLower(u.Scheme)] {
		return hostOf(s[len(u.Scheme)+1:]) != ""
	}
	return true
}

// hostOf returns the host of the part of a URL after "scheme:", without
// userinfo or port.
func hostOf(rest string) string {
	rest = strings.TrimLeft(rest, `/\`)
	if i := strings.IndexAny(rest, `/\?#`); i >= 0 {
		rest = rest[:i]
	}
	if i := strings.LastIndex(rest, "@"); i >= 0 {
		rest = rest[i+1:]
	}
	if i := strings.LastIndex(rest, ":"); i >= 0 && !strings.HasSuffix(rest, "]") {
		rest = rest[:i]
	}
	return rest
}
