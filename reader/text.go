package reader

import "github.com/tsawler/vitae/model"

// TextSource reads plain UTF-8 text. Each input line becomes one fragment
// on a synthetic page; blank lines are kept as line-end markers so
// paragraph structure survives into layout.
type TextSource struct{}

// Fragments implements [Source].
func (s *TextSource) Fragments(data []byte) ([]model.TextFragment, error) {
	return fragmentsFromLines(linesFromText(string(data))), nil
}
