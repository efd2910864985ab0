package reader

import (
	"testing"

	"github.com/tsawler/vitae/model"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain ascii", "Software Engineer", "Software Engineer"},
		{"empty", "", ""},
		{"broken hyphen", "micro-­services", "micro-services"},
		{"fi ligature", "certiﬁed", "certified"},
		{"fl ligature", "workﬂow", "workflow"},
		{"ffi ligature", "oﬃce", "office"},
		{"keeps accents", "Montréal", "Montréal"},
		{"keeps real hyphen", "full-stack", "full-stack"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeText(tt.input)
			if got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFilterFragments(t *testing.T) {
	frags := []model.TextFragment{
		{Text: "John", X: 10, Y: 700},
		{Text: "   ", X: 40, Y: 700},
		{Text: "", X: 0, Y: 686, EndOfLine: true},
		{Text: "Smith", X: 10, Y: 672},
	}

	got := filterFragments(frags)

	if len(got) != 3 {
		t.Fatalf("Expected 3 fragments after filtering, got %d", len(got))
	}
	if got[0].Text != "John" {
		t.Errorf("Expected first fragment John, got %q", got[0].Text)
	}
	if !got[1].EndOfLine {
		t.Error("Expected the line-end marker to survive filtering")
	}
	if got[2].Text != "Smith" {
		t.Errorf("Expected last fragment Smith, got %q", got[2].Text)
	}
}
