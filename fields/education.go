package fields

import (
	"regexp"
	"strings"

	"github.com/tsawler/vitae/model"
)

var (
	schoolKeywordRe = regexp.MustCompile(`(?i)\b(?:university|college|institute|school|academy|polytechnic|universit[eé])\b`)

	degreeWordRe = regexp.MustCompile(`(?i)\b(?:bachelor|master|doctor|doctorate|associate|diploma|certificate)s?\b`)

	// Degree abbreviations stay case-sensitive: a caseless "ba" or "ma"
	// would bite into ordinary words.
	degreeAbbrevRe = regexp.MustCompile(`\b(?:B\.?Sc?|B\.?A|B\.?Eng|M\.?Sc?|M\.?A|M\.?B\.?A|M\.?Eng|Ph\.?D|PhD)\b`)

	gpaRe = regexp.MustCompile(`(?i)\bGPA[:\s]*([0-4](?:\.\d{1,2})?)\s*(?:/\s*[0-9.]+)?`)
)

// degreeLine reports whether a line names a degree. Two-letter
// abbreviations double as US state codes ("Boston, MA"), so an
// abbreviation that sits at the end of a location match does not count.
func degreeLine(text string) bool {
	if degreeWordRe.MatchString(text) {
		return true
	}
	loc := locationRe.FindString(text)
	for _, m := range degreeAbbrevRe.FindAllString(text, -1) {
		if loc != "" && strings.HasSuffix(loc, m) {
			continue
		}
		return true
	}
	return false
}

// Degree keywords are the strongest signal and run before the school
// chain takes its pick of the remaining lines.
var (
	educationDegreeChain = []entryStrategy{
		{name: "degree-keyword", extract: pickLine(degreeLine)},
	}

	educationSchoolChain = []entryStrategy{
		{name: "institution-keyword", extract: pickLine(schoolKeywordRe.MatchString)},
		{name: "bold-line", extract: pickBoldLine},
		{name: "first-line", extract: pickFirstLine},
	}
)

// EducationExtractor builds education entries from the education
// section. Entry segmentation works the same way as for work history.
type EducationExtractor struct{}

// NewEducationExtractor returns an education extractor.
func NewEducationExtractor() *EducationExtractor {
	return &EducationExtractor{}
}

// Extract splits the section into entry blocks and fills each entry
// through the field chains. Blank entries are never emitted.
func (e *EducationExtractor) Extract(section model.Section) []model.EducationEntry {
	entries := []model.EducationEntry{}
	for _, block := range splitEntries(section.Body()) {
		b := newEntryBlock(block)

		gpa := extractGPA(b)
		degree := runChain(educationDegreeChain, b)
		school := runChain(educationSchoolChain, b)

		entry := model.EducationEntry{
			School:     school,
			Degree:     degree,
			GPA:        gpa,
			DateRange:  b.date,
			Highlights: b.highlights(),
		}
		if entry.School == "" && entry.Degree == "" && entry.GPA == "" && entry.DateRange == "" && len(entry.Highlights) == 0 {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// extractGPA finds the first GPA mention in the block. A line that holds
// nothing but the GPA is claimed so the school and degree chains skip it.
func extractGPA(b *entryBlock) string {
	for i, line := range b.lines {
		m := gpaRe.FindStringSubmatch(line.Text())
		if m == nil {
			continue
		}
		rest := strings.TrimSpace(strings.Replace(line.Text(), m[0], "", 1))
		if len(rest) <= 3 {
			b.claimed[i] = true
		}
		return m[1]
	}
	return ""
}
