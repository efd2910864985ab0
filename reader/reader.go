package reader

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/tsawler/vitae/format"
	"github.com/tsawler/vitae/model"
)

var (
	// ErrUnsupportedFormat is returned when an input's format cannot be
	// determined or no source exists for it.
	ErrUnsupportedFormat = errors.New("reader: unsupported input format")

	// ErrNoText is returned when a document decodes cleanly but yields no
	// text at all. For PDFs this usually means a scanned document whose
	// pages are images; rasterize and run it through the scan source.
	ErrNoText = errors.New("reader: document contains no extractable text")
)

// Source extracts positioned text fragments from one input format.
// Implementations return fragments in source stream order and leave layout
// reconstruction to the layout package.
type Source interface {
	Fragments(data []byte) ([]model.TextFragment, error)
}

// ForFormat returns the Source able to decode f.
func ForFormat(f format.Format) (Source, error) {
	switch f {
	case format.PDF:
		return NewPDFSource(), nil
	case format.DOCX:
		return &DOCXSource{}, nil
	case format.Markdown:
		return &MarkdownSource{}, nil
	case format.HTML:
		return &HTMLSource{}, nil
	case format.Text:
		return &TextSource{}, nil
	case format.PNG, format.JPEG, format.TIFF:
		return NewScanSource(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
}

// Config adjusts source behavior for a single read.
type Config struct {
	// OCRLanguage selects the Tesseract language pack for image inputs.
	// Empty uses the engine default.
	OCRLanguage string

	// PDFFallback runs pdftotext, when installed, on PDFs whose pages
	// yield no text fragments.
	PDFFallback bool

	// Logger receives skipped-page warnings. nil uses slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns the default read configuration.
func DefaultConfig() Config {
	return Config{PDFFallback: true}
}

// Read extracts fragments from data in the given format using the
// default configuration. Pass [format.Unknown] to sniff the format from
// the content first. Whitespace-only fragments that do not terminate a
// line are dropped before return.
func Read(data []byte, f format.Format) ([]model.TextFragment, error) {
	return ReadWithConfig(data, f, DefaultConfig())
}

// ReadWithConfig is Read with explicit configuration.
func ReadWithConfig(data []byte, f format.Format, config Config) ([]model.TextFragment, error) {
	if f == format.Unknown {
		f = format.DetectData(data)
	}

	src, err := ForFormat(f)
	if err != nil {
		return nil, err
	}

	switch s := src.(type) {
	case *PDFSource:
		s.FallbackPdftotext = config.PDFFallback
		s.Logger = config.Logger
	case *ScanSource:
		s.Language = config.OCRLanguage
	}

	frags, err := src.Fragments(data)
	if err != nil {
		return nil, err
	}
	return filterFragments(frags), nil
}
