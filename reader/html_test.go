package reader

import (
	"strings"
	"testing"
)

func TestHTMLSourceFragments(t *testing.T) {
	src := `<html><head><title>CV</title><style>p{margin:0}</style></head><body>
<h1>John Smith</h1>
<p>john@example.com<br>555-123-4567</p>
<p>See <a href="https://linkedin.com/in/jsmith">LinkedIn</a></p>
<h2>Experience</h2>
<div>Acme Corp</div>
<ul><li>Built the billing system</li><li>Cut infrastructure costs</li></ul>
<script>alert("nope")</script>
</body></html>`

	frags, err := (&HTMLSource{}).Fragments([]byte(src))
	if err != nil {
		t.Fatalf("Fragments failed: %v", err)
	}

	texts := make([]string, len(frags))
	for i, f := range frags {
		texts[i] = f.Text
	}

	expected := []string{
		"John Smith",
		"",
		"john@example.com",
		"555-123-4567",
		"",
		"See LinkedIn https://linkedin.com/in/jsmith",
		"",
		"Experience",
		"",
		"Acme Corp",
		"- Built the billing system",
		"- Cut infrastructure costs",
	}

	if len(texts) != len(expected) {
		t.Fatalf("Expected %d fragments, got %d: %q", len(expected), len(texts), texts)
	}
	for i, want := range expected {
		if texts[i] != want {
			t.Errorf("Fragment %d: expected %q, got %q", i, want, texts[i])
		}
	}

	if !frags[0].Bold() {
		t.Error("Expected h1 to be bold")
	}
	if !frags[7].Bold() {
		t.Error("Expected h2 to be bold")
	}
	if frags[9].Bold() {
		t.Error("Expected div text to not be bold")
	}

	for _, f := range frags {
		if strings.Contains(f.Text, "alert") {
			t.Errorf("Expected script content to be skipped, got %q", f.Text)
		}
		if strings.Contains(f.Text, "margin") {
			t.Errorf("Expected style content to be skipped, got %q", f.Text)
		}
	}
}

func TestHTMLMailtoLink(t *testing.T) {
	src := `<body><p>Reach me: <a href="mailto:john@example.com">Email</a></p></body>`

	frags, err := (&HTMLSource{}).Fragments([]byte(src))
	if err != nil {
		t.Fatalf("Fragments failed: %v", err)
	}
	if len(frags) != 1 {
		t.Fatalf("Expected 1 fragment, got %d", len(frags))
	}
	if frags[0].Text != "Reach me: Email john@example.com" {
		t.Errorf("Expected mailto target appended, got %q", frags[0].Text)
	}
}

func TestHTMLAnchorTextAlreadyTarget(t *testing.T) {
	src := `<body><p><a href="https://github.com/jsmith">https://github.com/jsmith</a></p></body>`

	frags, err := (&HTMLSource{}).Fragments([]byte(src))
	if err != nil {
		t.Fatalf("Fragments failed: %v", err)
	}
	if len(frags) != 1 {
		t.Fatalf("Expected 1 fragment, got %d", len(frags))
	}
	if frags[0].Text != "https://github.com/jsmith" {
		t.Errorf("Expected the URL once, got %q", frags[0].Text)
	}
}
