package dsl

import (
	"testing"

	"github.com/aretw0/devfolio"
)

func TestBuilder_Source(t *testing.T) {
	b := New()

	b.Add("jane").
		Name("Jane Doe").
		Label("Backend Engineer").
		Email("jane@example.com").
		Profile("GitHub", "https://github.com/jane").
		Work("Acme", "Lead", "2020-01-15", "").
		Work("Initech", "Developer", "2017-03-01", "2019-12-31").
		Project("devfolio", "Go", "Redis").
		Skill("Go", "expert").
		Language("English", "native-bilingual").
		Visibility("public")

	b.Add("broken").
		Email("not-an-email").
		Skill("Go", "guru")

	src, err := b.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	ids, err := src.List()
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != "broken" || ids[1] != "jane" {
		t.Fatalf("List() = %v, want [broken jane]", ids)
	}

	jane, _ := src.Get("jane")
	res := devfolio.Validate(jane)
	if !res.Success {
		t.Fatalf("jane should be valid, got %v", res.Errors)
	}
	stats := res.Data.Stats()
	if stats.Work != 2 || stats.Projects != 1 || stats.Skills != 1 || stats.Languages != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if res.Data.Work[1].EndDate != "2019-12-31" || res.Data.Work[0].EndDate != "" {
		t.Errorf("end dates not carried: %+v", res.Data.Work)
	}

	broken, _ := src.Get("broken")
	res = devfolio.Validate(broken)
	want := []string{
		"basics.name: Required",
		"basics.email: Invalid email",
		"skills.0.level: Invalid enum value. Expected 'beginner' | 'novice' | 'intermediate' | 'advanced' | 'expert' | 'master', received 'guru'",
	}
	if len(res.Errors) != len(want) {
		t.Fatalf("Errors = %v, want %v", res.Errors, want)
	}
	for i := range want {
		if res.Errors[i] != want[i] {
			t.Errorf("Errors[%d] = %q, want %q", i, res.Errors[i], want[i])
		}
	}
}

func TestBuilder_AddReturnsExisting(t *testing.T) {
	b := New()
	b.Add("jane").Name("Jane")
	b.Add("jane").Skill("Go", "")

	src, _ := b.Build()
	doc, _ := src.Get("jane")
	m := doc.(map[string]any)
	if m["basics"].(map[string]any)["name"] != "Jane" || len(m["skills"].([]any)) != 1 {
		t.Errorf("Add() should extend the existing portfolio, got %v", m)
	}
}

func TestBuilder_EmptyID(t *testing.T) {
	b := New()
	b.Add("").Name("Nobody")
	if _, err := b.Build(); err == nil {
		t.Error("Build() should reject an empty ID")
	}
}

func TestPortfolio_Set(t *testing.T) {
	doc := Portfolio().Name("Jane").Set("hobby", "chess").Entry("awards", map[string]any{"title": "Best"}).Build()
	if doc["hobby"] != "chess" {
		t.Errorf("Set() not applied: %v", doc)
	}
	if !devfolio.IsValid(doc) {
		t.Errorf("unknown keys pass through by default: %v", devfolio.Validate(doc).Errors)
	}
}
