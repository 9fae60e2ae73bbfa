// Package report renders a Markdown summary of extracted DrugBank tables.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/doodlesbykumbi/drugbank-in-go/pkg/tables"
)

const DefaultTop = 10

type Options struct {
	Title  string
	Source string
	// Top limits the ranked sections. Zero means DefaultTop.
	Top int
}

// Markdown summarises set as a Markdown document.
func Markdown(set *tables.Set, opts Options) []byte {
	if opts.Title == "" {
		opts.Title = "DrugBank summary"
	}
	if opts.Top <= 0 {
		opts.Top = DefaultTop
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "# %s\n\n", opts.Title)
	if opts.Source != "" {
		fmt.Fprintf(&b, "Source: `%s`\n\n", opts.Source)
	}

	b.WriteString("## Drugs\n\n")
	fmt.Fprintf(&b, "- Drugs: %d\n", len(set.Drugs))
	fmt.Fprintf(&b, "- Products: %d\n", len(set.Products))
	fmt.Fprintf(&b, "- Targets with a polypeptide: %d\n", len(set.Targets))
	fmt.Fprintf(&b, "- Drug interactions: %d\n\n", len(set.Interactions))

	b.WriteString("## Approval status\n\n")
	if len(set.Statuses.Rows) == 0 {
		b.WriteString("No drug carries a known status.\n\n")
	} else {
		b.WriteString("| Status | Drugs |\n|---|---:|\n")
		for _, row := range set.Statuses.Rows {
			fmt.Fprintf(&b, "| %s | %d |\n", escapeCell(row.Status), row.Count)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Approved and not withdrawn: %d\n\n", set.Statuses.ApprovedNotWithdrawn)

	writeRanked(&b, "Pathways per drug", "Drug", tables.Ranked(set.PathwayCounts, opts.Top))
	writeRanked(&b, "Cellular locations", "Location", tables.Ranked(set.CellularLocationCounts, opts.Top))

	return b.Bytes()
}

func writeRanked(b *bytes.Buffer, heading, column string, counts []tables.Count) {
	fmt.Fprintf(b, "## %s\n\n", heading)
	if len(counts) == 0 {
		b.WriteString("None.\n\n")
		return
	}
	fmt.Fprintf(b, "| %s | Count |\n|---|---:|\n", column)
	for _, c := range counts {
		fmt.Fprintf(b, "| %s | %d |\n", escapeCell(c.Key), c.Count)
	}
	b.WriteString("\n")
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func newMarkdown() goldmark.Markdown {
	return goldmark.New(goldmark.WithExtensions(extension.Table))
}

// HTML renders a Markdown document to HTML.
func HTML(source []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := newMarkdown().Convert(source, &buf); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}

// Sections returns the text of every level two heading of a Markdown
// document, in order.
func Sections(source []byte) []string {
	doc := newMarkdown().Parser().Parse(text.NewReader(source), parser.WithContext(parser.NewContext()))

	var sections []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if heading, ok := n.(*ast.Heading); ok && heading.Level == 2 {
			sections = append(sections, headingText(heading, source))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return sections
}

func headingText(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if textNode, ok := child.(*ast.Text); ok {
			buf.Write(textNode.Segment.Value(source))
		}
	}
	return buf.String()
}
