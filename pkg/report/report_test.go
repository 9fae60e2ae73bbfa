package report

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/drugbank-in-go/pkg/drugbank"
	"github.com/doodlesbykumbi/drugbank-in-go/pkg/tables"
)

func loadSet(t *testing.T) *tables.Set {
	t.Helper()
	drugs, err := drugbank.ParseFile(context.Background(), "../drugbank/testdata/sample.xml")
	require.NoError(t, err)
	set, err := tables.Extract(context.Background(), drugs)
	require.NoError(t, err)
	return set
}

func TestMarkdown(t *testing.T) {
	md := string(Markdown(loadSet(t), Options{Source: "sample.xml"}))

	assert.True(t, strings.HasPrefix(md, "# DrugBank summary\n\nSource: `sample.xml`\n"))
	assert.Contains(t, md, "- Drugs: 3\n")
	assert.Contains(t, md, "- Drug interactions: 3\n")
	assert.Contains(t, md, "| Approved | 2 |\n")
	assert.Contains(t, md, "| Withdrawn | 1 |\n")
	assert.Contains(t, md, "Approved and not withdrawn: 1\n")
	assert.Contains(t, md, "| DB00002 | 2 |\n| DB00001 | 1 |\n")
}

func TestMarkdownTop(t *testing.T) {
	md := string(Markdown(loadSet(t), Options{Top: 1}))

	assert.Contains(t, md, "| DB00002 | 2 |\n")
	assert.NotContains(t, md, "| DB00001 | 1 |\n")
}

func TestMarkdownEmptySet(t *testing.T) {
	md := string(Markdown(&tables.Set{}, Options{Title: "Empty"}))

	assert.Contains(t, md, "# Empty\n")
	assert.Contains(t, md, "No drug carries a known status.")
	assert.Contains(t, md, "## Cellular locations\n\nNone.\n")
}

func TestSections(t *testing.T) {
	sections := Sections(Markdown(loadSet(t), Options{}))

	assert.Equal(t, []string{
		"Drugs",
		"Approval status",
		"Pathways per drug",
		"Cellular locations",
	}, sections)
}

func TestHTML(t *testing.T) {
	html, err := HTML(Markdown(loadSet(t), Options{}))
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "<h1>DrugBank summary</h1>")
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<td>Approved</td>")
}

func TestEscapeCell(t *testing.T) {
	assert.Equal(t, `a \| b`, escapeCell("a | b"))
}
