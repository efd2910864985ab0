package reader

import (
	"bytes"
	"fmt"
	"image"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/tsawler/vitae/model"
	"github.com/tsawler/vitae/ocr"
)

// ScanSource reads scanned résumé images through Tesseract OCR. The
// recognized text carries no geometry, so fragments are laid out
// synthetically line by line. In a binary built without the ocr tag this
// source fails with [ocr.ErrOCRNotEnabled].
type ScanSource struct {
	// Language is the Tesseract language code, e.g. "eng" or "eng+fra".
	// Empty uses the engine default.
	Language string
}

// NewScanSource returns a ScanSource using the default OCR language.
func NewScanSource() *ScanSource {
	return &ScanSource{}
}

// Fragments implements [Source].
func (s *ScanSource) Fragments(data []byte) ([]model.TextFragment, error) {
	// Header check before handing the bytes to the engine. The blank
	// imports above register the decoders, including the x/image
	// formats Tesseract accepts (TIFF in particular).
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("reader: not a decodable image: %w", err)
	}

	text, err := ocr.Recognize(data, s.Language)
	if err != nil {
		return nil, fmt.Errorf("reader: ocr: %w", err)
	}

	return fragmentsFromLines(linesFromText(text)), nil
}
