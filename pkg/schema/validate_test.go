package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func workSchema() *ObjectType {
	return Object(
		Required("name", String()),
		Required("position", String()),
		Optional("url", URL()),
		Required("startDate", Date()),
		Optional("highlights", Slice(String())),
		Optional("type", Enum("full-time", "part-time")),
		Optional("remote", Bool()),
		Optional("teamSize", Number().Min(1)),
	)
}

func TestCheck_Success(t *testing.T) {
	data := map[string]any{
		"name":       "Acme",
		"position":   "Engineer",
		"url":        "https://acme.example",
		"startDate":  "2020-01-01",
		"highlights": []any{"Shipped things"},
		"type":       "full-time",
		"remote":     true,
		"teamSize":   5,
	}

	res := Check(workSchema(), data)
	if !res.OK() {
		t.Fatalf("Check() violations = %v, want none", res.Messages())
	}
	if !reflect.DeepEqual(res.Value, data) {
		t.Errorf("Check() value = %#v, want %#v", res.Value, data)
	}
}

func TestCheck_MissingRequired(t *testing.T) {
	data := map[string]any{
		"name":     "Acme",
		"position": "Engineer",
		// missing startDate
	}

	res := Check(workSchema(), data)
	if len(res.Violations) != 1 {
		t.Fatalf("Check() = %d violations, want 1: %v", len(res.Violations), res.Messages())
	}

	v := res.Violations[0]
	if v.Path.String() != "startDate" {
		t.Errorf("Path = %q, want startDate", v.Path)
	}
	if v.Kind != KindRequired {
		t.Errorf("Kind = %v, want %v", v.Kind, KindRequired)
	}
	if v.Message != "Required" {
		t.Errorf("Message = %q, want Required", v.Message)
	}
}

func TestCheck_NullIsTypeMismatch(t *testing.T) {
	data := map[string]any{
		"name":      nil,
		"position":  "Engineer",
		"startDate": "2020-01-01",
	}

	res := Check(workSchema(), data)
	if len(res.Violations) != 1 {
		t.Fatalf("Check() = %d violations, want 1: %v", len(res.Violations), res.Messages())
	}
	if res.Violations[0].Kind != KindType {
		t.Errorf("Kind = %v, want %v", res.Violations[0].Kind, KindType)
	}
	if got := res.Violations[0].String(); got != "name: Expected string, received null" {
		t.Errorf("String() = %q", got)
	}
}

func TestCheck_CollectsEveryViolationInOrder(t *testing.T) {
	data := map[string]any{
		// missing name
		"position":   42,
		"url":        "not a url",
		"startDate":  "yesterday",
		"highlights": []any{"ok", 7},
		"type":       "gig",
		"remote":     "yes",
		"teamSize":   0,
	}

	want := []string{
		"name: Required",
		"position: Expected string, received number",
		"url: Invalid url",
		"startDate: " + DateMessage,
		"highlights.1: Expected string, received number",
		"type: Invalid enum value. Expected 'full-time' | 'part-time', received 'gig'",
		"remote: Expected boolean, received string",
		"teamSize: Number must be greater than or equal to 1",
	}

	res := Check(workSchema(), data)
	if got := res.Messages(); !reflect.DeepEqual(got, want) {
		t.Errorf("Messages() =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestCheck_Deterministic(t *testing.T) {
	data := map[string]any{
		"position": false,
		"extra":    "kept",
		"url":      "nope",
	}
	first := Check(workSchema(), data).Messages()
	for i := 0; i < 20; i++ {
		if got := Check(workSchema(), data).Messages(); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d: Messages() = %v, want %v", i, got, first)
		}
	}
}

func TestCheck_NestedPaths(t *testing.T) {
	doc := Object(
		Optional("basics", Object(
			Required("name", String().Min(1)),
			Optional("location", Object(
				Optional("countryCode", String().Len(2)),
			)),
			Optional("profiles", Slice(Object(
				Required("network", String()),
				Required("url", URL()),
			))),
		)),
	)

	data := map[string]any{
		"basics": map[string]any{
			"name":     "Jane",
			"location": map[string]any{"countryCode": "USA"},
			"profiles": []any{
				map[string]any{"network": "GitHub", "url": "https://github.com/jane"},
				map[string]any{"url": "github"},
			},
		},
	}

	want := []string{
		"basics.location.countryCode: String must contain exactly 2 character(s)",
		"basics.profiles.1.network: Required",
		"basics.profiles.1.url: Invalid url",
	}
	if got := Check(doc, data).Messages(); !reflect.DeepEqual(got, want) {
		t.Errorf("Messages() = %v, want %v", got, want)
	}
}

func TestCheck_NonObjectRoot(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{nil, ": Expected object, received null"},
		{"portfolio", ": Expected object, received string"},
		{[]any{}, ": Expected object, received array"},
		{12, ": Expected object, received number"},
	}

	for _, tt := range tests {
		res := Check(workSchema(), tt.value)
		if got := res.Messages(); len(got) != 1 || got[0] != tt.want {
			t.Errorf("Check(%v) = %v, want [%s]", tt.value, got, tt.want)
		}
	}
}

func TestCheck_Defaults(t *testing.T) {
	obj := Object(
		Optional("$schema", String()).WithDefault("https://example.com/schema.json"),
		Optional("name", String()),
	)

	res := Check(obj, map[string]any{})
	if !res.OK() {
		t.Fatalf("unexpected violations: %v", res.Messages())
	}
	got := res.Value.(map[string]any)
	if got["$schema"] != "https://example.com/schema.json" {
		t.Errorf("$schema = %v, want default", got["$schema"])
	}
	if _, ok := got["name"]; ok {
		t.Errorf("absent optional field without default must stay absent")
	}

	res = Check(obj, map[string]any{"$schema": "custom"})
	if got := res.Value.(map[string]any)["$schema"]; got != "custom" {
		t.Errorf("$schema = %v, want caller value", got)
	}

	res = Check(obj, map[string]any{"$schema": nil})
	if msgs := res.Messages(); len(msgs) != 1 || msgs[0] != "$schema: Expected string, received null" {
		t.Errorf("Messages() = %v", msgs)
	}
}

func TestCheck_DoesNotMutateInput(t *testing.T) {
	obj := Object(Optional("v", String()).WithDefault("x"))
	input := map[string]any{}
	_ = Check(obj, input)
	if len(input) != 0 {
		t.Errorf("input mutated: %v", input)
	}
}

func TestCheck_Idempotent(t *testing.T) {
	obj := Object(
		Optional("$schema", String()).WithDefault("urn:devfolio"),
		Optional("tags", Slice(String())),
	)
	first, err := Parse(obj, map[string]any{"tags": []string{"a"}, "extra": 1})
	if err != nil {
		t.Fatal(err)
	}
	second, err := Parse(obj, first)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("second pass = %#v, want %#v", second, first)
	}
}

func TestUnknownKeys(t *testing.T) {
	obj := Object(Optional("name", String()))
	data := map[string]any{"name": "x", "zeta": 1, "alpha": 2}

	t.Run("passthrough by default", func(t *testing.T) {
		res := Check(obj, data)
		if !res.OK() {
			t.Fatal(res.Messages())
		}
		if !reflect.DeepEqual(res.Value, data) {
			t.Errorf("Value = %v, want %v", res.Value, data)
		}
	})

	t.Run("strip", func(t *testing.T) {
		res := Check(obj, data, WithUnknownKeys(Strip))
		if !res.OK() {
			t.Fatal(res.Messages())
		}
		want := map[string]any{"name": "x"}
		if !reflect.DeepEqual(res.Value, want) {
			t.Errorf("Value = %v, want %v", res.Value, want)
		}
	})

	t.Run("reject", func(t *testing.T) {
		res := Check(obj, data, WithUnknownKeys(Reject))
		if len(res.Violations) != 1 {
			t.Fatalf("got %v", res.Messages())
		}
		v := res.Violations[0]
		if v.Kind != KindUnrecognized {
			t.Errorf("Kind = %v", v.Kind)
		}
		if v.Message != "Unrecognized key(s) in object: 'alpha', 'zeta'" {
			t.Errorf("Message = %q", v.Message)
		}
	})

	t.Run("declared policy", func(t *testing.T) {
		strict := Object(Optional("name", String()))
		strict.Unknown = Reject
		if Valid(strict, data) {
			t.Error("Valid() = true, want false for object declared with Reject")
		}
		if !Valid(strict, data, WithUnknownKeys(Passthrough)) {
			t.Error("option must override the declared policy")
		}
	})
}

func TestCheck_NilFieldTypeIsUnknown(t *testing.T) {
	obj := Object(Optional("broken", nil))
	res := Check(obj, map[string]any{"broken": "x"})
	if len(res.Violations) != 1 {
		t.Fatalf("got %v", res.Messages())
	}
	if res.Violations[0].Kind != KindUnknown || res.Violations[0].Message != UnknownMessage {
		t.Errorf("violation = %+v", res.Violations[0])
	}
}

func TestCheck_DeepNesting(t *testing.T) {
	var typ Type = String()
	var value any = 1
	for i := 0; i < 200; i++ {
		typ = Slice(typ)
		value = []any{value}
	}
	res := Check(typ, value)
	if len(res.Violations) != 1 {
		t.Fatalf("got %d violations", len(res.Violations))
	}
	if depth := len(res.Violations[0].Path); depth != 200 {
		t.Errorf("path depth = %d, want 200", depth)
	}
}

func TestParse(t *testing.T) {
	_, err := Parse(workSchema(), map[string]any{"name": 1})
	if err == nil {
		t.Fatal("Parse() should fail")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error should be *ValidationError, got %T", err)
	}
	if len(verr.Violations) != 3 {
		t.Errorf("Parse() = %d violations, want 3", len(verr.Violations))
	}

	safe := Check(workSchema(), map[string]any{"name": 1})
	if !reflect.DeepEqual(verr.Messages(), safe.Messages()) {
		t.Errorf("Parse and Check disagree: %v vs %v", verr.Messages(), safe.Messages())
	}
}

func TestValidationError_String(t *testing.T) {
	one := &ValidationError{Violations: []Violation{
		{Path: Path{"basics", "email"}, Kind: KindFormat, Message: "Invalid email"},
	}}
	if got := one.Error(); got != "basics.email: Invalid email" {
		t.Errorf("Error() = %q", got)
	}

	two := &ValidationError{Violations: []Violation{
		{Path: Path{"a"}, Kind: KindRequired, Message: "Required"},
		{Path: Path{"b"}, Kind: KindRequired, Message: "Required"},
	}}
	if !strings.Contains(two.Error(), "2 validation errors") {
		t.Errorf("Error() should mention 2 errors, got: %s", two.Error())
	}
}

func TestViolations(t *testing.T) {
	verr := &ValidationError{Violations: []Violation{{Path: Path{"a"}, Message: "Required"}}}

	if got := Violations(fmt.Errorf("wrapped: %w", verr)); len(got) != 1 {
		t.Errorf("Violations() = %d, want 1", len(got))
	}
	if got := Violations(errors.New("plain")); got != nil {
		t.Errorf("Violations() on plain error = %v, want nil", got)
	}
}

func TestPath(t *testing.T) {
	base := Path{"work"}
	a := base.Index(0).Key("name")
	b := base.Index(1)
	if a.String() != "work.0.name" || b.String() != "work.1" {
		t.Errorf("paths = %q, %q", a, b)
	}
	if base.String() != "work" {
		t.Errorf("base path mutated: %q", base)
	}
}

func TestDescribe(t *testing.T) {
	obj := Object(
		Required("name", String().Min(1)).Describe("Full name"),
		Optional("profiles", Slice(Object(
			Required("url", URL()),
		))),
		Optional("level", Enum("a", "b")),
	)

	got := Describe(obj)
	paths := make([]string, len(got))
	for i, d := range got {
		paths[i] = d.Path
	}
	want := []string{"name", "profiles", "profiles[].url", "level"}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("paths = %v, want %v", paths, want)
	}
	if got[0].Description != "Full name" || !got[0].Required {
		t.Errorf("name descriptor = %+v", got[0])
	}
	if got[0].Constraints[0] != "minLength=1" {
		t.Errorf("constraints = %v", got[0].Constraints)
	}
	if got[3].Constraints[0] != "one of a, b" {
		t.Errorf("constraints = %v", got[3].Constraints)
	}
}

func TestObjectType_MarshalJSON(t *testing.T) {
	obj := Object(Required("name", String()), Optional("tags", Slice(String())))
	data, err := obj.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"name":"string","tags":"[string]?"}` {
		t.Errorf("MarshalJSON() = %s", data)
	}

	if _, err := Object(Optional("x", nil)).MarshalJSON(); err == nil {
		t.Error("MarshalJSON() should fail for nil field type")
	}
}
