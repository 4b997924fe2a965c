package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/devfolio/pkg/schema"
)

// Overlay marks the collections a concrete document fills in.
type Overlay struct {
	// Counts maps a document key (e.g. "work") to its number of entries.
	Counts map[string]int
}

// GenerateMermaid produces a Mermaid flowchart of the object types reachable
// from root. Shapes follow the field cardinality:
// - Root: ((Circle))
// - Reached through an array: [[Subroutine]]
// - Single nested object: [Rectangle]
// Edges are labelled with the field name; optional fields use dotted arrows.
// With an overlay, populated collections are highlighted and their edges
// carry the entry count.
func GenerateMermaid(root *schema.ObjectType, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	rootID := sanitizeMermaidID(root.Name())
	fmt.Fprintf(&sb, "    %s((\"%s\"))\n", rootID, root.Name())

	seen := map[string]bool{rootID: true}
	var populated []string
	var walk func(parentID string, obj *schema.ObjectType, top bool)
	walk = func(parentID string, obj *schema.ObjectType, top bool) {
		for _, f := range obj.Fields {
			child, many := objectOf(f.Type)
			if child == nil {
				continue
			}
			name := child.Title
			if name == "" {
				name = parentID + "." + f.Name
			}
			childID := sanitizeMermaidID(name)

			if !seen[childID] {
				seen[childID] = true
				opener, closer := "[", "]"
				if many {
					opener, closer = "[[", "]]"
				}
				label := name
				if req := child.RequiredFields(); len(req) > 0 {
					label = fmt.Sprintf("%s <br/> %s", name, strings.Join(req, ", "))
				}
				fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", childID, opener, label, closer)
			}

			edge := f.Name
			if many {
				edge += "[]"
			}
			if top && overlay != nil {
				if n := overlay.Counts[f.Name]; n > 0 {
					edge = fmt.Sprintf("%s: %d", edge, n)
					populated = append(populated, childID)
				}
			}
			arrow := fmt.Sprintf("-- \"%s\" -->", edge)
			if !f.Required {
				arrow = fmt.Sprintf("-. \"%s\" .->", edge)
			}
			fmt.Fprintf(&sb, "    %s %s %s\n", parentID, arrow, childID)

			walk(childID, child, false)
		}
	}
	walk(rootID, root, true)

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text for contrast on both themes
		sb.WriteString("    classDef populated fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sort.Strings(populated)
		for _, id := range populated {
			fmt.Fprintf(&sb, "    class %s populated;\n", id)
		}
	}

	return sb.String()
}

// objectOf unwraps t to an object type, reporting whether it sits in an array.
func objectOf(t schema.Type) (*schema.ObjectType, bool) {
	switch typ := t.(type) {
	case *schema.ObjectType:
		return typ, false
	case *schema.SliceType:
		if obj, ok := typ.Elem.(*schema.ObjectType); ok {
			return obj, true
		}
	}
	return nil, false
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "$", "_")
	return s
}
