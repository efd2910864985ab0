package vitae

import (
	"github.com/tsawler/vitae/format"
	"github.com/tsawler/vitae/ocr"
	"github.com/tsawler/vitae/reader"
)

// Setup describes the capabilities of this build and host environment.
type Setup struct {
	// Engine names the PDF text engine compiled into the binary.
	Engine string `json:"engine"`

	// Formats lists the input formats this build can read.
	Formats []string `json:"formats"`

	// OCR reports whether scanned-image input is available, which
	// requires the ocr build tag and a Tesseract installation.
	OCR bool `json:"ocr"`

	// Pdftotext reports whether the pdftotext tool is on PATH, enabling
	// the fallback for PDFs without a text layer.
	Pdftotext bool `json:"pdftotext"`

	// PhoneFormatting reports whether phone number formatting is
	// available.
	PhoneFormatting bool `json:"phone_formatting"`
}

// CheckSetup probes the build and environment so callers can fail fast
// or report capabilities before accepting documents.
//
// Example:
//
//	setup := vitae.CheckSetup()
//	if !setup.OCR {
//	    log.Println("scanned documents will be rejected")
//	}
func CheckSetup() Setup {
	formats := []string{
		format.PDF.String(),
		format.DOCX.String(),
		format.Markdown.String(),
		format.HTML.String(),
		format.Text.String(),
	}
	if ocr.Enabled() {
		formats = append(formats,
			format.PNG.String(),
			format.JPEG.String(),
			format.TIFF.String(),
		)
	}

	return Setup{
		Engine:          "ledongthuc/pdf",
		Formats:         formats,
		OCR:             ocr.Enabled(),
		Pdftotext:       reader.PdftotextAvailable(),
		PhoneFormatting: true,
	}
}
