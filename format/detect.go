// Package format provides input format detection for the vitae library.
//
// Résumés arrive in a handful of shapes: native PDF exports, Word documents,
// Markdown and HTML from web builders, plain text, and image scans that need
// OCR. [Detect] maps a filename to a [Format]; [DetectData] inspects content
// when the name is missing or unhelpful.
package format

import (
	"archive/zip"
	"bytes"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a PDF document.
	PDF
	// DOCX indicates a Microsoft Word (.docx) document.
	DOCX
	// Markdown indicates a Markdown document.
	Markdown
	// HTML indicates an HTML document.
	HTML
	// Text indicates a plain-text document.
	Text
	// PNG indicates a PNG image scan.
	PNG
	// JPEG indicates a JPEG image scan.
	JPEG
	// TIFF indicates a TIFF image scan.
	TIFF
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	case DOCX:
		return "DOCX"
	case Markdown:
		return "Markdown"
	case HTML:
		return "HTML"
	case Text:
		return "Text"
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	case TIFF:
		return "TIFF"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PDF:
		return ".pdf"
	case DOCX:
		return ".docx"
	case Markdown:
		return ".md"
	case HTML:
		return ".html"
	case Text:
		return ".txt"
	case PNG:
		return ".png"
	case JPEG:
		return ".jpg"
	case TIFF:
		return ".tiff"
	default:
		return ""
	}
}

// IsImage reports whether the format is an image scan requiring OCR.
func (f Format) IsImage() bool {
	return f == PNG || f == JPEG || f == TIFF
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return PDF
	case ".docx":
		return DOCX
	case ".md", ".markdown":
		return Markdown
	case ".html", ".htm":
		return HTML
	case ".txt", ".text":
		return Text
	case ".png":
		return PNG
	case ".jpg", ".jpeg":
		return JPEG
	case ".tif", ".tiff":
		return TIFF
	default:
		return Unknown
	}
}

// DetectData determines format from document content. Magic bytes identify
// PDF, images, and ZIP containers (sniffed for DOCX); HTML is recognized by
// its leading tags; anything else that decodes as mostly printable text is
// treated as plain text. Returns Unknown only for binary content with no
// recognizable signature.
func DetectData(data []byte) Format {
	if f := DetectFromMagic(data); f != Unknown {
		return f
	}

	// ZIP container: sniff the entry names for a Word document.
	if len(data) >= 4 && data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04 {
		return detectZIPFormat(data)
	}

	if isMostlyText(data) {
		return Text
	}
	return Unknown
}

// DetectFromMagic checks file magic bytes to determine format. ZIP-based
// formats (DOCX) return Unknown here because the container must be opened
// to identify them; use [DetectData] for that. Returns Unknown if the
// format cannot be determined from magic bytes alone.
func DetectFromMagic(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}

	// PDF magic: %PDF
	if data[0] == '%' && data[1] == 'P' && data[2] == 'D' && data[3] == 'F' {
		return PDF
	}

	// PNG magic: \x89PNG
	if data[0] == 0x89 && data[1] == 'P' && data[2] == 'N' && data[3] == 'G' {
		return PNG
	}

	// JPEG magic: \xFF\xD8\xFF
	if data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF {
		return JPEG
	}

	// TIFF magic: II*\x00 (little-endian) or MM\x00* (big-endian)
	if (data[0] == 'I' && data[1] == 'I' && data[2] == 0x2A && data[3] == 0x00) ||
		(data[0] == 'M' && data[1] == 'M' && data[2] == 0x00 && data[3] == 0x2A) {
		return TIFF
	}

	if detectHTMLMagic(data) {
		return HTML
	}

	return Unknown
}

// detectHTMLMagic checks if the data looks like HTML content.
func detectHTMLMagic(data []byte) bool {
	// Trim leading whitespace
	start := 0
	for start < len(data) && (data[start] == ' ' || data[start] == '\t' || data[start] == '\n' || data[start] == '\r') {
		start++
	}
	if start >= len(data) {
		return false
	}
	data = data[start:]

	upper := strings.ToUpper(string(data[:min(512, len(data))]))
	if strings.HasPrefix(upper, "<!DOCTYPE HTML") {
		return true
	}
	if strings.HasPrefix(upper, "<HTML") {
		return true
	}
	// XML declaration followed by html-like content could be XHTML
	if strings.HasPrefix(upper, "<?XML") && strings.Contains(upper, "<HTML") {
		return true
	}

	return false
}

// detectZIPFormat inspects a ZIP archive's entry names to determine whether
// it is a DOCX container.
func detectZIPFormat(data []byte) Format {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Unknown
	}

	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "word/") {
			return DOCX
		}
	}

	return Unknown
}

// isMostlyText reports whether the data decodes as valid UTF-8 with a high
// proportion of printable characters, sampling at most the first 4KB.
func isMostlyText(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	sample := data[:min(4096, len(data))]
	if !utf8.Valid(sample) {
		return false
	}

	printable := 0
	total := 0
	for _, r := range string(sample) {
		total++
		if r == '\n' || r == '\r' || r == '\t' || (r >= 0x20 && r != 0x7F) {
			printable++
		}
	}
	if total == 0 {
		return false
	}
	return float64(printable)/float64(total) > 0.95
}
