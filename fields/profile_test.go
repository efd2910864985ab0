package fields

import (
	"testing"

	"github.com/tsawler/vitae/model"
)

func profileSection(lines ...model.Line) model.Section {
	return model.Section{Name: model.SectionProfile, Lines: lines}
}

func TestProfileExtractContactHeader(t *testing.T) {
	section := profileSection(
		entryLine("JOHN SMITH", false),
		entryLine("john.smith@example.com", false),
		entryLine("(415) 555-0100", false),
		entryLine("linkedin.com/in/johnsmith", false),
	)

	got := NewProfileExtractor().Extract(section)

	if got.Name != "JOHN SMITH" {
		t.Errorf("Expected name JOHN SMITH, got %q", got.Name)
	}
	if got.Email != "john.smith@example.com" {
		t.Errorf("Expected email john.smith@example.com, got %q", got.Email)
	}
	if got.Phone != "(415) 555-0100" {
		t.Errorf("Expected phone (415) 555-0100, got %q", got.Phone)
	}
	if got.LinkedIn != "https://linkedin.com/in/johnsmith" {
		t.Errorf("Expected linkedin https://linkedin.com/in/johnsmith, got %q", got.LinkedIn)
	}
	if got.URL != "" {
		t.Errorf("Expected no url, got %q", got.URL)
	}
	if got.Location != "" {
		t.Errorf("Expected no location, got %q", got.Location)
	}
}

func TestProfileExtractEmptySection(t *testing.T) {
	got := NewProfileExtractor().Extract(profileSection())

	if got.Name != "" || got.Email != "" || got.Phone != "" ||
		got.Location != "" || got.URL != "" || got.LinkedIn != "" {
		t.Errorf("Expected every field empty, got %+v", got)
	}
}

func TestProfileExtractNilReceiver(t *testing.T) {
	var e *ProfileExtractor
	got := e.Extract(profileSection(
		entryLine("Jane Doe", false),
		entryLine("415.555.0100", false),
	))

	if got.Name != "Jane Doe" {
		t.Errorf("Expected name Jane Doe, got %q", got.Name)
	}
	if got.Phone != "415.555.0100" {
		t.Errorf("Expected the raw phone match, got %q", got.Phone)
	}
}

func TestExtractEmailLowercases(t *testing.T) {
	if got := extractEmail("Contact: JOHN.SMITH@EXAMPLE.COM"); got != "john.smith@example.com" {
		t.Errorf("Expected lowercased email, got %q", got)
	}
	if got := extractEmail("no address here"); got != "" {
		t.Errorf("Expected empty email, got %q", got)
	}
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "parenthesized area code",
			text:     "Call (415) 555-0100 anytime",
			expected: "(415) 555-0100",
		},
		{
			name:     "dashed",
			text:     "415-555-0100",
			expected: "415-555-0100",
		},
		{
			name:     "dotted with country code",
			text:     "+1 415.555.0100",
			expected: "+1 415.555.0100",
		},
		{
			name:     "bare ten digits",
			text:     "Reach me at 4155550100 today",
			expected: "4155550100",
		},
		{
			name:     "at start of text",
			text:     "4155550100 is my number",
			expected: "4155550100",
		},
		{
			name:     "at end of text",
			text:     "my number: 415-555-0100",
			expected: "415-555-0100",
		},
		{
			name:     "seven digits is not a phone",
			text:     "ext. 555-0100",
			expected: "",
		},
		{
			name:     "long digit run is not a phone",
			text:     "Employee ID 12345678901234",
			expected: "",
		},
		{
			name:     "no digits",
			text:     "call me maybe",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractPhone(tt.text, nil); got != tt.expected {
				t.Errorf("extractPhone(%q): expected %q, got %q", tt.text, tt.expected, got)
			}
		})
	}
}

func TestExtractSocial(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "bare linkedin gets a scheme",
			text:     "linkedin.com/in/johnsmith",
			expected: "https://linkedin.com/in/johnsmith",
		},
		{
			name:     "schemed linkedin kept as written",
			text:     "see https://www.linkedin.com/in/jane-doe/ for more",
			expected: "https://www.linkedin.com/in/jane-doe",
		},
		{
			name:     "github profile",
			text:     "code at github.com/octocat",
			expected: "https://github.com/octocat",
		},
		{
			name:     "none",
			text:     "no profiles here",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractSocial(tt.text); got != tt.expected {
				t.Errorf("extractSocial(%q): expected %q, got %q", tt.text, tt.expected, got)
			}
		})
	}
}

func TestExtractURL(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "schemed url",
			text:     "portfolio: https://janedoe.dev/work",
			expected: "https://janedoe.dev/work",
		},
		{
			name:     "www url with trailing period",
			text:     "Visit www.janedoe.dev.",
			expected: "www.janedoe.dev",
		},
		{
			name:     "social urls belong to the social field",
			text:     "https://linkedin.com/in/jane and https://janedoe.dev",
			expected: "https://janedoe.dev",
		},
		{
			name:     "bare domain does not count",
			text:     "janedoe.dev",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractURL(tt.text); got != tt.expected {
				t.Errorf("extractURL(%q): expected %q, got %q", tt.text, tt.expected, got)
			}
		})
	}
}

func TestExtractLocation(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "city and region code",
			text:     "San Francisco, CA",
			expected: "San Francisco, CA",
		},
		{
			name:     "embedded in a contact line",
			text:     "Brooklyn, NY 11201 | 415-555-0100",
			expected: "Brooklyn, NY",
		},
		{
			name:     "lowercase after comma is not a region",
			text:     "University of California, Berkeley",
			expected: "",
		},
		{
			name:     "none",
			text:     "remote",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractLocation(tt.text); got != tt.expected {
				t.Errorf("extractLocation(%q): expected %q, got %q", tt.text, tt.expected, got)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// Name detection
// ----------------------------------------------------------------------------

func TestExtractNameStyledPass(t *testing.T) {
	tests := []struct {
		name     string
		lines    []model.Line
		expected string
	}{
		{
			name: "bold line",
			lines: []model.Line{
				entryLine("Jane Ann Doe", true),
				entryLine("Senior Software Engineer Manager Lead", false),
			},
			expected: "Jane Ann Doe",
		},
		{
			name: "all caps line",
			lines: []model.Line{
				entryLine("JOHN SMITH", false),
				entryLine("john@example.com", false),
			},
			expected: "JOHN SMITH",
		},
		{
			name: "plain two words",
			lines: []model.Line{
				entryLine("Jane Doe", false),
				entryLine("jane@example.com", false),
			},
			expected: "Jane Doe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractName(tt.lines); got != tt.expected {
				t.Errorf("Expected name %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestExtractNameFallbackPass(t *testing.T) {
	// Three plain mixed-case words fail the styled pass but are still
	// the only name-shaped text in the header.
	lines := []model.Line{
		entryLine("John Michael Smith", false),
		entryLine("john.smith@example.com", false),
		entryLine("(415) 555-0100", false),
	}

	if got := extractName(lines); got != "John Michael Smith" {
		t.Errorf("Expected John Michael Smith, got %q", got)
	}
}

func TestExtractNameOnlyFirstThreeLines(t *testing.T) {
	lines := []model.Line{
		entryLine("john.smith@example.com", false),
		entryLine("(415) 555-0100", false),
		entryLine("linkedin.com/in/johnsmith", false),
		entryLine("Jane Doe", false),
	}

	if got := extractName(lines); got != "" {
		t.Errorf("Expected no name beyond line three, got %q", got)
	}
}

func TestNameShaped(t *testing.T) {
	tests := []struct {
		text     string
		expected bool
	}{
		{"Jane Doe", true},
		{"John Michael Smith", true},
		{"Mary O'Brien-Hayes", true},
		{"JOHN SMITH", true},
		{"jane@example.com", false},
		{"(415) 555-0100", false},
		{"linkedin.com/in/jane", false},
		{"Jane", false},
		{"One Two Three Four Five", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := nameShaped(tt.text); got != tt.expected {
			t.Errorf("nameShaped(%q): expected %v, got %v", tt.text, tt.expected, got)
		}
	}
}
