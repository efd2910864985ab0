package reader

import (
	"strings"

	"github.com/tsawler/vitae/model"
)

// Synthetic layout constants for sources that carry no geometry. The
// values mimic an 11pt body on a US Letter page; only their relative
// proportions matter to the line grouper.
const (
	syntheticPageTop    = 792.0
	syntheticLinePitch  = 14.0
	syntheticLineHeight = 11.0
	syntheticGlyphWidth = 6.5

	syntheticFont     = "Synthetic-Regular"
	syntheticBoldFont = "Synthetic-Bold"
)

// syntheticLine is one logical line from a layout-free source.
type syntheticLine struct {
	text string
	bold bool
}

// fragmentsFromLines lays logical lines onto a synthetic page: one
// fragment per line, descending baselines at a fixed pitch, EndOfLine set
// so the grouper closes each line on the source's own break. Empty lines
// become line-end-marked empty fragments, preserving paragraph breaks.
// Bold lines (headings in the source markup) get a bold synthetic font
// name so heading heuristics see their weight.
func fragmentsFromLines(lines []syntheticLine) []model.TextFragment {
	frags := make([]model.TextFragment, 0, len(lines))

	y := syntheticPageTop
	for _, line := range lines {
		text := NormalizeText(line.text)
		font := syntheticFont
		if line.bold {
			font = syntheticBoldFont
		}
		frags = append(frags, model.TextFragment{
			Text:      text,
			X:         0,
			Y:         y,
			Width:     float64(len([]rune(text))) * syntheticGlyphWidth,
			Height:    syntheticLineHeight,
			FontName:  font,
			EndOfLine: true,
		})
		y -= syntheticLinePitch
	}

	return frags
}

// linesFromText splits plain text into synthetic lines, normalizing
// Windows and old-Mac line endings.
func linesFromText(text string) []syntheticLine {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")

	raw := strings.Split(text, "\n")
	lines := make([]syntheticLine, len(raw))
	for i, t := range raw {
		lines[i] = syntheticLine{text: t}
	}
	return lines
}
