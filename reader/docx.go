package reader

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"
	"github.com/tsawler/vitae/model"
)

// DOCXSource reads Word documents with fumiama/go-docx. Paragraphs map to
// synthetic lines, and Word heading or title styles mark a line bold so
// section detection sees it as styled. Body items other than paragraphs
// (tables, section breaks) are skipped.
type DOCXSource struct{}

// Fragments implements [Source].
func (s *DOCXSource) Fragments(data []byte) ([]model.TextFragment, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("reader: parse docx: %w", err)
	}

	var lines []syntheticLine
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		text := paragraphText(para)
		if text == "" {
			// Empty paragraphs separate blocks in Word documents; keep
			// one blank line so the break survives into layout.
			if n := len(lines); n > 0 && lines[n-1].text != "" {
				lines = append(lines, syntheticLine{})
			}
			continue
		}
		lines = append(lines, syntheticLine{text: text, bold: headingStyle(para)})
	}

	return fragmentsFromLines(lines), nil
}

// headingStyle reports whether a paragraph carries a Word heading, title,
// or subtitle style.
func headingStyle(para *docx.Paragraph) bool {
	if para.Properties == nil || para.Properties.Style == nil {
		return false
	}
	style := strings.ToLower(strings.ReplaceAll(para.Properties.Style.Val, " ", ""))
	return strings.HasPrefix(style, "heading") || style == "title" || style == "subtitle"
}

// paragraphText joins the text of every run in the paragraph.
func paragraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
