package fields

import "testing"

func TestDateRange(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		// ----------------------------------------------------------------
		// Month-year ranges.
		// ----------------------------------------------------------------
		{
			name:     "full month names",
			text:     "January 2018 - March 2020",
			expected: "January 2018 - March 2020",
		},
		{
			name:     "abbreviated months",
			text:     "Jan 2018 - Mar 2020",
			expected: "Jan 2018 - Mar 2020",
		},
		{
			name:     "abbreviated months with periods",
			text:     "Jan. 2018 - Mar. 2020",
			expected: "Jan. 2018 - Mar. 2020",
		},
		{
			name:     "en dash separator",
			text:     "May 2019 – August 2021",
			expected: "May 2019 – August 2021",
		},
		{
			name:     "to separator",
			text:     "May 2019 to August 2021",
			expected: "May 2019 to August 2021",
		},
		{
			name:     "embedded in a header line",
			text:     "Acme Corp | May 2019 - Present",
			expected: "May 2019 - Present",
		},

		// ----------------------------------------------------------------
		// Open-ended ranges.
		// ----------------------------------------------------------------
		{
			name:     "present",
			text:     "June 2020 - Present",
			expected: "June 2020 - Present",
		},
		{
			name:     "current lowercase",
			text:     "june 2020 - current",
			expected: "june 2020 - current",
		},
		{
			name:     "ongoing",
			text:     "2021 - ongoing",
			expected: "2021 - ongoing",
		},

		// ----------------------------------------------------------------
		// Numeric and year-only forms.
		// ----------------------------------------------------------------
		{
			name:     "numeric months",
			text:     "01/2018 - 03/2020",
			expected: "01/2018 - 03/2020",
		},
		{
			name:     "year to year",
			text:     "2015 to 2019",
			expected: "2015 to 2019",
		},
		{
			name:     "year range with hyphen",
			text:     "2011 - 2015",
			expected: "2011 - 2015",
		},

		// ----------------------------------------------------------------
		// Lone dates.
		// ----------------------------------------------------------------
		{
			name:     "lone month and year",
			text:     "Graduated June 2021",
			expected: "June 2021",
		},
		{
			name:     "lone bare year is not a date",
			text:     "Shipped 2019 units",
			expected: "",
		},

		// ----------------------------------------------------------------
		// Non-dates.
		// ----------------------------------------------------------------
		{
			name:     "empty",
			text:     "",
			expected: "",
		},
		{
			name:     "plain prose",
			text:     "Led a team of eight engineers",
			expected: "",
		},
		{
			name:     "phone number",
			text:     "(415) 555-0100",
			expected: "",
		},
		{
			name:     "version string",
			text:     "Migrated from 1.19 to 1.21",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DateRange(tt.text); got != tt.expected {
				t.Errorf("DateRange(%q): expected %q, got %q", tt.text, tt.expected, got)
			}
		})
	}
}
