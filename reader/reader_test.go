package reader

import (
	"errors"
	"testing"

	"github.com/tsawler/vitae/format"
)

func TestForFormat(t *testing.T) {
	tests := []struct {
		format   format.Format
		expected string
	}{
		{format.PDF, "*reader.PDFSource"},
		{format.DOCX, "*reader.DOCXSource"},
		{format.Markdown, "*reader.MarkdownSource"},
		{format.HTML, "*reader.HTMLSource"},
		{format.Text, "*reader.TextSource"},
		{format.PNG, "*reader.ScanSource"},
		{format.JPEG, "*reader.ScanSource"},
		{format.TIFF, "*reader.ScanSource"},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			src, err := ForFormat(tt.format)
			if err != nil {
				t.Fatalf("ForFormat(%v) failed: %v", tt.format, err)
			}

			var got string
			switch src.(type) {
			case *PDFSource:
				got = "*reader.PDFSource"
			case *DOCXSource:
				got = "*reader.DOCXSource"
			case *MarkdownSource:
				got = "*reader.MarkdownSource"
			case *HTMLSource:
				got = "*reader.HTMLSource"
			case *TextSource:
				got = "*reader.TextSource"
			case *ScanSource:
				got = "*reader.ScanSource"
			}
			if got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestForFormatUnknown(t *testing.T) {
	_, err := ForFormat(format.Unknown)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestReadPlainText(t *testing.T) {
	data := []byte("John Smith\njohn@example.com\n\nEXPERIENCE\nAcme Corp\n")

	frags, err := Read(data, format.Text)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if len(frags) != 5 {
		t.Fatalf("Expected 5 fragments, got %d", len(frags))
	}
	if frags[0].Text != "John Smith" {
		t.Errorf("Expected first fragment John Smith, got %q", frags[0].Text)
	}
	if frags[2].Text != "" || !frags[2].EndOfLine {
		t.Errorf("Expected the blank line to survive as a line-end marker, got %+v", frags[2])
	}
	if frags[3].Text != "EXPERIENCE" {
		t.Errorf("Expected EXPERIENCE, got %q", frags[3].Text)
	}
}

func TestReadSniffsUnknownFormat(t *testing.T) {
	data := []byte("Just an ordinary text resume.\nNothing binary about it.\n")

	frags, err := Read(data, format.Unknown)
	if err != nil {
		t.Fatalf("Read with sniffing failed: %v", err)
	}
	if len(frags) != 2 {
		t.Errorf("Expected 2 fragments, got %d", len(frags))
	}
}

func TestReadUndetectableInput(t *testing.T) {
	data := []byte{0x00, 0x01, 0x02, 0x03, 0xFE, 0xFF, 0x00, 0x9C}

	_, err := Read(data, format.Unknown)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat for binary junk, got %v", err)
	}
}

func TestTextSourceWindowsEndings(t *testing.T) {
	frags, err := (&TextSource{}).Fragments([]byte("a\r\nb\r\n"))
	if err != nil {
		t.Fatalf("Fragments failed: %v", err)
	}
	if len(frags) != 2 {
		t.Fatalf("Expected 2 fragments, got %d", len(frags))
	}
	if frags[0].Text != "a" || frags[1].Text != "b" {
		t.Errorf("Expected lines a and b, got %q and %q", frags[0].Text, frags[1].Text)
	}
}
