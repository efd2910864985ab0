package fields

import (
	"regexp"
	"strings"

	"github.com/tsawler/vitae/model"
)

var (
	corporateSuffixRe = regexp.MustCompile(`(?i)\b(?:Inc|LLC|LLP|Ltd|Corp|Corporation|Company|Co|GmbH|AG|Technologies|Labs|Systems|Solutions|Group|Consulting|Software|Studios|Partners)\b\.?`)
	titleKeywordRe    = regexp.MustCompile(`(?i)\b(?:engineer|developer|manager|director|analyst|designer|consultant|architect|administrator|scientist|specialist|coordinator|lead|head|intern|officer|president|founder|vp|principal|technician|programmer)\b`)
)

// Work entry fields come from ordered chains over an entry's lines. A
// job-title keyword is the strongest title signal and runs before the
// company chain takes a line; the bare first-line fallback for titles
// runs after, over whatever the company chain left unclaimed.
var (
	workTitleKeywordChain = []entryStrategy{
		{name: "title-keyword", extract: pickLine(titleKeywordRe.MatchString)},
	}

	workCompanyChain = []entryStrategy{
		{name: "corporate-suffix", extract: pickLine(corporateSuffixRe.MatchString)},
		{name: "bold-line", extract: pickBoldLine},
		{name: "first-line", extract: pickFirstLine},
	}

	workTitleFallbackChain = []entryStrategy{
		{name: "first-line", extract: pickFirstLine},
	}
)

// WorkExtractor builds dated work entries from the work section.
type WorkExtractor struct{}

// NewWorkExtractor returns a work extractor.
func NewWorkExtractor() *WorkExtractor {
	return &WorkExtractor{}
}

// Extract splits the section into entry blocks and fills each entry
// through the field chains. Blocks yielding no field at all are dropped,
// so the result holds no blank entries.
func (e *WorkExtractor) Extract(section model.Section) []model.WorkEntry {
	entries := []model.WorkEntry{}
	for _, block := range splitEntries(section.Body()) {
		b := newEntryBlock(block)

		title := runChain(workTitleKeywordChain, b)
		company := runChain(workCompanyChain, b)
		if title == "" {
			title = runChain(workTitleFallbackChain, b)
		}

		entry := model.WorkEntry{
			Company:    company,
			Title:      title,
			DateRange:  b.date,
			Highlights: b.highlights(),
		}
		if entry.Company == "" && entry.Title == "" && entry.DateRange == "" && len(entry.Highlights) == 0 {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// splitEntries cuts section lines into per-entry blocks. Date-bearing
// lines anchor the split: when a second date appears, the run of header
// lines sitting directly above it (up to three, stopping at bullets or
// blanks) moves into the new block, since those are the next entry's
// title and employer. Sections without any dated line fall back to
// blank-separated blocks, and failing that a single block.
func splitEntries(lines []model.Line) [][]model.Line {
	dated := 0
	for _, line := range lines {
		if DateRange(line.Text()) != "" {
			dated++
		}
	}
	if dated == 0 {
		return splitOnBlanks(lines)
	}

	var blocks [][]model.Line
	var cur []model.Line
	curHasDate := false

	for _, line := range lines {
		hasDate := DateRange(line.Text()) != ""
		if hasDate && curHasDate {
			split := len(cur)
			for split > 0 && len(cur)-split < 3 && headerish(cur[split-1]) {
				split--
			}
			blocks = append(blocks, cur[:split])
			cur = append([]model.Line{}, cur[split:]...)
			curHasDate = false
		}
		cur = append(cur, line)
		if hasDate {
			curHasDate = true
		}
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}

	out := blocks[:0]
	for _, b := range blocks {
		if !allBlank(b) {
			out = append(out, b)
		}
	}
	return out
}

// splitOnBlanks groups consecutive non-blank lines into blocks.
func splitOnBlanks(lines []model.Line) [][]model.Line {
	var blocks [][]model.Line
	var cur []model.Line
	for _, line := range lines {
		if strings.TrimSpace(line.Text()) == "" {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}
	return blocks
}

// headerish reports whether a line could be an entry header: visible,
// not a bullet, and carrying no date of its own.
func headerish(line model.Line) bool {
	text := line.Text()
	if strings.TrimSpace(text) == "" || isBullet(text) {
		return false
	}
	return DateRange(text) == ""
}

func allBlank(lines []model.Line) bool {
	for _, line := range lines {
		if strings.TrimSpace(line.Text()) != "" {
			return false
		}
	}
	return true
}
