package fields

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/vitae/model"
)

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// North American forms with optional country code: "(415) 555-0100",
	// "+1 415.555.0100", "415-555-0100". The guards on either side keep
	// the pattern from biting into longer digit runs such as ID numbers.
	phoneRe = regexp.MustCompile(`(?:^|\D)((?:\+?1[\s.-]?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4})(?:\D|$)`)

	socialRe = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?(?:linkedin\.com/in/[A-Za-z0-9._-]+|github\.com/[A-Za-z0-9-]+)/?`)
	urlRe    = regexp.MustCompile(`(?i)(?:https?://|www\.)[^\s<>"']+`)

	// Capitalized place name, comma, two-letter region code.
	locationRe = regexp.MustCompile(`[A-Z][A-Za-z.' -]+,\s*[A-Z]{2}\b`)

	digitRunRe  = regexp.MustCompile(`\d{3}`)
	nameTokenRe = regexp.MustCompile(`^[\p{L}][\p{L}.'-]*$`)
)

// ProfileExtractor pulls contact details out of the profile section.
// Every field is an independent pattern search over the section text and
// defaults to "" when nothing matches.
type ProfileExtractor struct {
	// Formatter renders the phone match for display. nil leaves the
	// match trimmed as found.
	Formatter PhoneFormatter
}

// NewProfileExtractor returns an extractor that formats phone numbers in
// the US national convention. Assign Formatter to change or disable it.
func NewProfileExtractor() *ProfileExtractor {
	return &ProfileExtractor{Formatter: NationalPhoneFormatter("US")}
}

// Extract runs every field pattern over the section. A nil receiver
// extracts with no phone formatting.
func (e *ProfileExtractor) Extract(section model.Section) model.Profile {
	var formatter PhoneFormatter
	if e != nil {
		formatter = e.Formatter
	}

	text := section.Text()
	return model.Profile{
		Name:     extractName(section.Body()),
		Email:    extractEmail(text),
		Phone:    extractPhone(text, formatter),
		Location: extractLocation(text),
		URL:      extractURL(text),
		LinkedIn: extractSocial(text),
	}
}

func extractEmail(text string) string {
	return strings.ToLower(emailRe.FindString(text))
}

func extractPhone(text string, formatter PhoneFormatter) string {
	m := phoneRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	raw := strings.TrimSpace(m[1])
	if formatter == nil {
		return raw
	}
	return formatter(raw)
}

// extractSocial returns the first LinkedIn or GitHub profile URL,
// prefixing https:// when the match has no scheme.
func extractSocial(text string) string {
	m := strings.TrimSuffix(socialRe.FindString(text), "/")
	if m == "" {
		return ""
	}
	if !strings.HasPrefix(strings.ToLower(m), "http") {
		m = "https://" + m
	}
	return m
}

// extractURL returns the first web address that is not a LinkedIn or
// GitHub profile (those belong to the social field). Only schemed or
// www-prefixed matches count, which keeps email domains out.
func extractURL(text string) string {
	for _, m := range urlRe.FindAllString(text, -1) {
		m = strings.TrimRight(m, `.,;:)]}'"`)
		lower := strings.ToLower(m)
		if strings.Contains(lower, "linkedin.com") || strings.Contains(lower, "github.com") {
			continue
		}
		return m
	}
	return ""
}

func extractLocation(text string) string {
	return strings.TrimSpace(locationRe.FindString(text))
}

// extractName scans the fragments of the first three lines in two
// passes. The first pass wants a styled candidate: bold, all-caps, or
// the plain two-word form almost every résumé opens with. The second
// pass takes any name-shaped fragment. First match wins in each pass.
func extractName(lines []model.Line) string {
	if len(lines) > 3 {
		lines = lines[:3]
	}
	var frags []model.TextFragment
	for _, line := range lines {
		frags = append(frags, line.Fragments...)
	}

	for _, f := range frags {
		text := strings.TrimSpace(f.Text)
		if !nameShaped(text) {
			continue
		}
		if f.Bold() || model.AllCaps(text) || len(strings.Fields(text)) == 2 {
			return text
		}
	}
	for _, f := range frags {
		if text := strings.TrimSpace(f.Text); nameShaped(text) {
			return text
		}
	}
	return ""
}

// nameShaped reports whether text could be a personal name: two to four
// tokens of name characters, 3 to 40 runes in all, with no email, no
// digit run, and no profile-site mention.
func nameShaped(text string) bool {
	if strings.Contains(text, "@") || digitRunRe.MatchString(text) {
		return false
	}
	lower := strings.ToLower(text)
	if strings.Contains(lower, "linkedin") || strings.Contains(lower, "github") {
		return false
	}
	if n := utf8.RuneCountInString(text); n < 3 || n > 40 {
		return false
	}

	words := strings.Fields(text)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		if !nameTokenRe.MatchString(w) {
			return false
		}
	}
	return true
}
