package model

import (
	"strings"
	"unicode"
)

// TextFragment is one positioned run of text as reported by the extraction
// engine. X and Y locate the run's origin (left edge and baseline) in page
// units, with Y increasing upward as the engine reports it. FontName is the
// resolved display name of the run's font, or the engine's internal alias
// when resolution failed.
//
// EndOfLine marks a hard line break independent of geometry. Sources with
// real coordinates (PDF) leave it false and rely on the line grouper's
// tolerance band; sources with synthetic layout (DOCX, Markdown, HTML,
// plain text, OCR output) set it on the last fragment of each line.
type TextFragment struct {
	Text      string  `json:"text"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	FontName  string  `json:"font_name"`
	EndOfLine bool    `json:"end_of_line,omitempty"`
}

// boldMarkers are font-name substrings that indicate bold or heavier
// weights. Matching is case-insensitive.
var boldMarkers = []string{"bold", "black", "heavy", "semibold", "demibold"}

// Bold reports whether the fragment's font name indicates a bold or heavier
// weight. Font names encode weight as a suffix ("Arial-BoldMT",
// "Helvetica-Black"), so a substring check is sufficient.
func (f TextFragment) Bold() bool {
	name := strings.ToLower(f.FontName)
	for _, marker := range boldMarkers {
		if strings.Contains(name, marker) {
			return true
		}
	}
	return false
}

// Right returns the X coordinate of the fragment's right edge.
func (f TextFragment) Right() float64 {
	return f.X + f.Width
}

// IsWhitespace reports whether the fragment's text is empty or consists
// entirely of whitespace.
func (f TextFragment) IsWhitespace() bool {
	return strings.TrimSpace(f.Text) == ""
}

// AllCaps reports whether text reads as deliberately upper-cased: at least
// three letters, with either no lowercase letters at all or more than 90%
// of letters uppercase. Text with fewer than three letters (initials,
// numbers, punctuation) never qualifies.
func AllCaps(text string) bool {
	text = strings.TrimSpace(text)

	upperCount := 0
	lowerCount := 0
	for _, r := range text {
		if unicode.IsUpper(r) {
			upperCount++
		} else if unicode.IsLower(r) {
			lowerCount++
		}
	}

	letterCount := upperCount + lowerCount
	if letterCount < 3 {
		return false
	}
	if lowerCount == 0 {
		return true
	}
	return float64(upperCount)/float64(letterCount) > 0.9
}
