package reader

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/vitae/model"
)

// brokenHyphen is the known mis-decoding artifact: a hyphen followed by a
// soft hyphen (U+00AD) where the document had a single hyphen.
const brokenHyphen = "-­"

// NormalizeText repairs known text-extraction artifacts: the hyphen plus
// soft-hyphen pair collapses to a plain hyphen, and compatibility
// presentation forms (ligatures such as ﬁ, full-width letters) fold to
// their ordinary letter sequences under NFKC.
func NormalizeText(s string) string {
	s = strings.ReplaceAll(s, brokenHyphen, "-")
	if !norm.NFKC.IsNormalString(s) {
		s = norm.NFKC.String(s)
	}
	return s
}

// filterFragments drops fragments that are purely whitespace and carry no
// line-end marker. Line-end-marked empty fragments pass through: they
// still signal paragraph breaks to the line grouper.
func filterFragments(frags []model.TextFragment) []model.TextFragment {
	out := frags[:0]
	for _, f := range frags {
		if f.IsWhitespace() && !f.EndOfLine {
			continue
		}
		out = append(out, f)
	}
	return out
}
