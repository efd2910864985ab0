package fields

import (
	"regexp"
	"strings"
)

// Date ranges anchor entry segmentation, so the patterns here accept the
// common résumé spellings: "May 2019 - Present", "01/2018 – 03/2020",
// "2015 to 2019", and a lone "June 2021" for single-date entries. Bare
// years only count inside a range; a solitary "2019" is too ambiguous.
const (
	monthPattern = `(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)\.?`
	yearPattern  = `(?:19|20)\d{2}`
	pointPattern = `(?:` + monthPattern + `\s+` + yearPattern + `|\d{1,2}/` + yearPattern + `|` + yearPattern + `)`
	openPattern  = `(?:present|current|now|ongoing)`
	sepPattern   = `\s*(?:-|–|—|to|through|until)\s*`
)

var (
	dateRangeRe  = regexp.MustCompile(`(?i)` + pointPattern + sepPattern + `(?:` + pointPattern + `|` + openPattern + `)`)
	singleDateRe = regexp.MustCompile(`(?i)` + monthPattern + `\s+` + yearPattern)
)

// DateRange returns the first date range found in text, or a lone
// month-year when no full range is present, or "".
func DateRange(text string) string {
	if m := dateRangeRe.FindString(text); m != "" {
		return strings.TrimSpace(m)
	}
	if m := singleDateRe.FindString(text); m != "" {
		return strings.TrimSpace(m)
	}
	return ""
}
