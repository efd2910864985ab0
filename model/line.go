package model

import "strings"

// Line is an ordered sequence of fragments sharing a visual row, left to
// right. Lines are built by the line grouper and immutable once built.
type Line struct {
	Fragments []TextFragment `json:"fragments"`
}

// Text assembles the line's visible text. Fragments are joined in order,
// with a space inserted wherever the horizontal gap between two adjacent
// fragments exceeds a tenth of the fragment height (word breaks the engine
// reported as separate runs rather than space characters). Fragments from
// synthetic-layout sources have no meaningful gaps and join directly.
func (l Line) Text() string {
	var sb strings.Builder

	for i, frag := range l.Fragments {
		if i > 0 {
			prev := l.Fragments[i-1]
			gap := frag.X - prev.Right()
			if gap > frag.Height*0.1 && !strings.HasSuffix(prev.Text, " ") && !strings.HasPrefix(frag.Text, " ") {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(frag.Text)
	}

	return strings.TrimSpace(sb.String())
}

// Y returns the line's vertical reference position: the baseline of its
// first fragment. Returns 0 for an empty line.
func (l Line) Y() float64 {
	if len(l.Fragments) == 0 {
		return 0
	}
	return l.Fragments[0].Y
}

// X returns the horizontal position of the line's leftmost fragment.
// Returns 0 for an empty line.
func (l Line) X() float64 {
	if len(l.Fragments) == 0 {
		return 0
	}
	return l.Fragments[0].X
}

// Height returns the tallest fragment height on the line. Returns 0 for an
// empty line.
func (l Line) Height() float64 {
	var h float64
	for _, frag := range l.Fragments {
		if frag.Height > h {
			h = frag.Height
		}
	}
	return h
}

// Bold reports whether the line as a whole is bold-rendered: it has at
// least one fragment with visible text and every such fragment uses a bold
// weight. A line with a single bold word among regular text is not bold.
func (l Line) Bold() bool {
	seen := false
	for _, frag := range l.Fragments {
		if frag.IsWhitespace() {
			continue
		}
		if !frag.Bold() {
			return false
		}
		seen = true
	}
	return seen
}

// AllCaps reports whether the line's assembled text is deliberately
// upper-cased (see [AllCaps]).
func (l Line) AllCaps() bool {
	return AllCaps(l.Text())
}
