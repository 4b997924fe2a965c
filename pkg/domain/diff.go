package domain

import (
	"encoding/json"
	"reflect"
	"sort"
)

// DocumentDiff summarizes what changed between two versions of a portfolio.
type DocumentDiff struct {
	// Added, Changed and Removed list top-level sections (basics, work, meta, ...).
	Added   []string `json:"added,omitempty"`
	Changed []string `json:"changed,omitempty"`
	Removed []string `json:"removed,omitempty"`
	// Counts holds the entry count delta of each collection that changed size.
	Counts map[string]int `json:"counts,omitempty"`
}

// Empty reports whether the diff carries no change.
func (d *DocumentDiff) Empty() bool {
	return d == nil || (len(d.Added) == 0 && len(d.Changed) == 0 && len(d.Removed) == 0)
}

// Diff compares two documents section by section. A nil oldDoc is an initial
// save: every present section of newDoc counts as added.
func Diff(oldDoc, newDoc *Document) *DocumentDiff {
	before := sections(oldDoc)
	after := sections(newDoc)

	diff := &DocumentDiff{}
	for key, v := range after {
		prev, ok := before[key]
		switch {
		case !ok:
			diff.Added = append(diff.Added, key)
		case !reflect.DeepEqual(prev, v):
			diff.Changed = append(diff.Changed, key)
		}
	}
	for key := range before {
		if _, ok := after[key]; !ok {
			diff.Removed = append(diff.Removed, key)
		}
	}
	sort.Strings(diff.Added)
	sort.Strings(diff.Changed)
	sort.Strings(diff.Removed)

	diff.Counts = countDelta(oldDoc.Stats(), newDoc.Stats())
	return diff
}

// sections decodes the document's top-level JSON members.
func sections(d *Document) map[string]json.RawMessage {
	out := map[string]json.RawMessage{}
	if d == nil {
		return out
	}
	data, err := json.Marshal(d)
	if err != nil {
		return out
	}
	_ = json.Unmarshal(data, &out)
	return out
}

func countDelta(before, after Stats) map[string]int {
	var b, a map[string]int
	bb, _ := json.Marshal(before)
	ab, _ := json.Marshal(after)
	_ = json.Unmarshal(bb, &b)
	_ = json.Unmarshal(ab, &a)

	delta := map[string]int{}
	for key, n := range a {
		if d := n - b[key]; d != 0 {
			delta[key] = d
		}
	}
	if len(delta) == 0 {
		return nil
	}
	return delta
}
