package fields

import (
	"strings"

	"github.com/tsawler/vitae/model"
)

// entryStrategy is one candidate in an ordered fallback chain over an
// entry's lines. Strategies run in order; the first non-empty result
// wins. Keeping chains as plain slices lets tests target one strategy
// at a time.
type entryStrategy struct {
	name    string
	extract func(b *entryBlock) string
}

// runChain applies a fallback chain to a block.
func runChain(chain []entryStrategy, b *entryBlock) string {
	for _, s := range chain {
		if v := s.extract(b); v != "" {
			return v
		}
	}
	return ""
}

// entryBlock is one entry's worth of section lines. Strategies that pick
// a line claim it, so later chains skip lines already spent on another
// field.
type entryBlock struct {
	lines   []model.Line
	date    string
	claimed map[int]bool
}

func newEntryBlock(lines []model.Line) *entryBlock {
	b := &entryBlock{lines: lines, claimed: make(map[int]bool)}
	for _, line := range lines {
		if d := DateRange(line.Text()); d != "" {
			b.date = d
			break
		}
	}
	return b
}

// text returns line i's text with the block's date range removed, so a
// "Acme Corp | 2019 - 2022" line still offers its company half.
func (b *entryBlock) text(i int) string {
	text := b.lines[i].Text()
	if b.date != "" {
		text = strings.ReplaceAll(text, b.date, "")
	}
	return strings.Trim(text, " \t|,;-–—")
}

// claim marks line i as spent and returns its date-stripped text.
func (b *entryBlock) claim(i int) string {
	b.claimed[i] = true
	return b.text(i)
}

// candidates yields the indexes of unclaimed, non-bullet lines that
// still have text once the date is stripped.
func (b *entryBlock) candidates() []int {
	var idx []int
	for i, line := range b.lines {
		if b.claimed[i] || isBullet(line.Text()) {
			continue
		}
		if b.text(i) == "" {
			continue
		}
		idx = append(idx, i)
	}
	return idx
}

// bulletMarkers are the characters that introduce a highlight line.
const bulletMarkers = "•●▪◦‣·*"

// isBullet reports whether a line starts with a bullet marker or a
// dash-space pair.
func isBullet(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	if strings.ContainsRune(bulletMarkers, []rune(text)[0]) {
		return true
	}
	return strings.HasPrefix(text, "- ") || strings.HasPrefix(text, "– ") || strings.HasPrefix(text, "— ")
}

// stripBullet removes the leading marker from a bullet line.
func stripBullet(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimLeft(text, bulletMarkers+"-–— \t")
	return strings.TrimSpace(text)
}

// highlights collects the block's bullet lines with markers stripped.
// The result is never nil so entries serialize with [] rather than null.
func (b *entryBlock) highlights() []string {
	out := []string{}
	for _, line := range b.lines {
		text := line.Text()
		if !isBullet(text) {
			continue
		}
		if h := stripBullet(text); h != "" {
			out = append(out, h)
		}
	}
	return out
}

// pickLine returns a strategy func claiming the first unclaimed
// non-bullet line whose date-stripped text satisfies match.
func pickLine(match func(text string) bool) func(*entryBlock) string {
	return func(b *entryBlock) string {
		for _, i := range b.candidates() {
			if match(b.text(i)) {
				return b.claim(i)
			}
		}
		return ""
	}
}

// pickBoldLine claims the first unclaimed bold line.
func pickBoldLine(b *entryBlock) string {
	for _, i := range b.candidates() {
		if b.lines[i].Bold() {
			return b.claim(i)
		}
	}
	return ""
}

// pickFirstLine claims the first unclaimed line outright.
func pickFirstLine(b *entryBlock) string {
	if c := b.candidates(); len(c) > 0 {
		return b.claim(c[0])
	}
	return ""
}
