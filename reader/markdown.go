package reader

import (
	"bytes"
	"strings"

	"github.com/tsawler/vitae/model"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
)

// MarkdownSource reads Markdown through the goldmark AST. Headings become
// bold synthetic lines so the section grouper treats them like styled
// headings in a PDF, and list items keep a leading bullet marker for the
// highlight extractors. Raw HTML blocks are skipped.
type MarkdownSource struct{}

// Fragments implements [Source].
func (s *MarkdownSource) Fragments(data []byte) ([]model.TextFragment, error) {
	md := goldmark.New()
	doc := md.Parser().Parse(gmtext.NewReader(data))

	var lines []syntheticLine

	// Blocks are separated by one blank line, mirroring how the document
	// would render as plain text. Blank lines matter downstream: the
	// field extractors fall back to blank-line blocks when an entry has
	// no date anchor.
	blank := func() {
		if n := len(lines); n > 0 && lines[n-1].text != "" {
			lines = append(lines, syntheticLine{})
		}
	}
	addAll := func(text string, bold bool) {
		for _, part := range strings.Split(text, "\n") {
			if part = strings.TrimSpace(part); part != "" {
				lines = append(lines, syntheticLine{text: part, bold: bold})
			}
		}
	}

	var walk func(n ast.Node)
	walk = func(n ast.Node) {
		switch node := n.(type) {
		case *ast.Heading:
			blank()
			addAll(markdownText(node, data), true)

		case *ast.List:
			blank()
			lines = appendListLines(lines, node, data)

		case *ast.Paragraph, *ast.TextBlock:
			blank()
			addAll(markdownText(n, data), false)

		case *ast.FencedCodeBlock, *ast.CodeBlock:
			blank()
			segs := n.Lines()
			for i := 0; i < segs.Len(); i++ {
				addAll(string(segs.At(i).Value(data)), false)
			}

		case *ast.Blockquote:
			blank()
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				walk(c)
			}

		case *ast.ThematicBreak:
			blank()

		case *ast.HTMLBlock:
			// skipped

		default:
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				walk(c)
			}
		}
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		walk(n)
	}

	return fragmentsFromLines(lines), nil
}

// appendListLines emits one bullet line per list item, descending into
// nested lists in place so a list stays one unbroken block.
func appendListLines(lines []syntheticLine, list *ast.List, src []byte) []syntheticLine {
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			if nested, ok := c.(*ast.List); ok {
				lines = appendListLines(lines, nested, src)
				continue
			}
			text := strings.ReplaceAll(markdownText(c, src), "\n", " ")
			if text != "" {
				lines = append(lines, syntheticLine{text: "- " + text})
			}
		}
	}
	return lines
}

// markdownText collects the rendered text of a node's inline content.
// Soft and hard line breaks become newlines; autolinks yield their URL.
func markdownText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	var walk func(n ast.Node)
	walk = func(n ast.Node) {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			switch t := c.(type) {
			case *ast.Text:
				buf.Write(t.Value(src))
				if t.HardLineBreak() || t.SoftLineBreak() {
					buf.WriteByte('\n')
				}
			case *ast.AutoLink:
				buf.Write(t.URL(src))
			default:
				walk(c)
			}
		}
	}
	walk(n)
	return strings.TrimSpace(buf.String())
}
