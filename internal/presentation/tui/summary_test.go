package tui

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/devfolio/pkg/domain"
)

func TestSummary(t *testing.T) {
	doc := &domain.Document{
		Basics: &domain.Basics{Name: "Jane Doe", Label: "Engineer", Email: "jane@example.com"},
		Work: []domain.Work{
			{Name: "Acme", Position: "Lead", StartDate: "2020-01-01"},
			{Name: "Initech", Position: "Dev", StartDate: "2018-01-01", EndDate: "2019-12-31"},
		},
		Skills: []domain.Skill{{Name: "Go", Level: "expert"}, {Name: "SQL"}},
	}

	md := Summary(doc)

	assert.True(t, strings.HasPrefix(md, "# Jane Doe\n"))
	assert.Contains(t, md, "**Engineer**")
	assert.Contains(t, md, "- **Lead** at Acme (2020-01-01 to present)")
	assert.Contains(t, md, "- **Dev** at Initech (2018-01-01 to 2019-12-31)")
	assert.Contains(t, md, "- Go (expert)\n- SQL\n")
	assert.Contains(t, md, "| work | 2 |")
	assert.NotContains(t, md, "| projects |")
	assert.Contains(t, md, "| **total** | **4** |")
}

func TestSummary_Unnamed(t *testing.T) {
	md := Summary(&domain.Document{})
	assert.True(t, strings.HasPrefix(md, "# Unnamed portfolio\n"))
	assert.Contains(t, md, "| **total** | **0** |")
}

func TestRenderer_NotTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminal(f))
	assert.False(t, IsTerminal(nil))

	out, err := NewRenderer(f)("# Title\n\nbody")
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "body")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf)
	assert.Contains(t, buf.String(), "|____/")
}
