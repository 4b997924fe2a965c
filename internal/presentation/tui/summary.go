package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/devfolio/pkg/domain"
)

// Summary renders a markdown overview of a validated portfolio: the owner,
// the most recent positions, skills and one count line per collection.
func Summary(doc *domain.Document) string {
	var sb strings.Builder

	name := "Unnamed portfolio"
	if doc.Basics != nil && doc.Basics.Name != "" {
		name = doc.Basics.Name
	}
	fmt.Fprintf(&sb, "# %s\n\n", name)

	if b := doc.Basics; b != nil {
		if b.Label != "" {
			fmt.Fprintf(&sb, "**%s**\n\n", b.Label)
		}
		var contact []string
		for _, v := range []string{b.Email, b.URL} {
			if v != "" {
				contact = append(contact, v)
			}
		}
		if b.Location != nil && b.Location.City != "" {
			contact = append(contact, b.Location.City)
		}
		if len(contact) > 0 {
			fmt.Fprintf(&sb, "%s\n\n", strings.Join(contact, " · "))
		}
		if b.Summary != "" {
			fmt.Fprintf(&sb, "%s\n\n", b.Summary)
		}
	}

	if len(doc.Work) > 0 {
		sb.WriteString("## Experience\n\n")
		for _, w := range doc.Work {
			end := w.EndDate
			if end == "" {
				end = "present"
			}
			fmt.Fprintf(&sb, "- **%s** at %s (%s to %s)\n", w.Position, w.Name, w.StartDate, end)
		}
		sb.WriteString("\n")
	}

	if len(doc.Skills) > 0 {
		sb.WriteString("## Skills\n\n")
		for _, s := range doc.Skills {
			if s.Level != "" {
				fmt.Fprintf(&sb, "- %s (%s)\n", s.Name, s.Level)
				continue
			}
			fmt.Fprintf(&sb, "- %s\n", s.Name)
		}
		sb.WriteString("\n")
	}

	stats := doc.Stats()
	sb.WriteString("## Collections\n\n")
	sb.WriteString("| Collection | Entries |\n|---|---|\n")
	for _, c := range stats.Counts() {
		if c.N > 0 {
			fmt.Fprintf(&sb, "| %s | %d |\n", c.Collection, c.N)
		}
	}
	fmt.Fprintf(&sb, "| **total** | **%d** |\n", stats.Total())

	return sb.String()
}
