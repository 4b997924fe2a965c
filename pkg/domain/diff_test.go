package domain

import (
	"reflect"
	"testing"
)

func TestDiff(t *testing.T) {
	base := &Document{
		Basics: &Basics{Name: "Jane"},
		Work:   []Work{{Name: "Acme", Position: "Engineer", StartDate: "2020-01-01"}},
		Skills: []Skill{{Name: "Go"}},
	}

	tests := []struct {
		name string
		old  *Document
		new  *Document
		want *DocumentDiff
	}{
		{
			name: "Initial Save (Old is Nil)",
			old:  nil,
			new:  base,
			want: &DocumentDiff{
				Added:  []string{"basics", "skills", "work"},
				Counts: map[string]int{"work": 1, "skills": 1},
			},
		},
		{
			name: "No Change",
			old:  base,
			new:  base,
			want: &DocumentDiff{},
		},
		{
			name: "Section Changed And Added",
			old:  base,
			new: &Document{
				Basics:   &Basics{Name: "Jane Doe"},
				Work:     base.Work,
				Skills:   []Skill{{Name: "Go"}, {Name: "SQL"}},
				Projects: []Project{{Name: "devfolio"}},
			},
			want: &DocumentDiff{
				Added:   []string{"projects"},
				Changed: []string{"basics", "skills"},
				Counts:  map[string]int{"skills": 1, "projects": 1},
			},
		},
		{
			name: "Section Removed",
			old:  base,
			new:  &Document{Basics: base.Basics, Skills: base.Skills},
			want: &DocumentDiff{
				Removed: []string{"work"},
				Counts:  map[string]int{"work": -1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(tt.old, tt.new)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Diff() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDocumentDiff_Empty(t *testing.T) {
	var nilDiff *DocumentDiff
	if !nilDiff.Empty() {
		t.Error("nil diff should be empty")
	}
	if (&DocumentDiff{Counts: map[string]int{}}).Empty() != true {
		t.Error("diff without sections should be empty")
	}
	if (&DocumentDiff{Added: []string{"work"}}).Empty() {
		t.Error("diff with an added section is not empty")
	}
}
