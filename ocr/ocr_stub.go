//go:build !ocr

// Package ocr recognizes text in scanned résumé images.
//
// This is the stub used when the "ocr" build tag is not set. All
// recognition functions return [ErrOCRNotEnabled]. To enable OCR,
// rebuild with the tag:
//
//	go build -tags ocr
//
// The real implementation requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

// Enabled reports whether OCR support was compiled in.
func Enabled() bool { return false }

// Recognize returns [ErrOCRNotEnabled].
func Recognize(imageData []byte, lang string) (string, error) {
	return "", ErrOCRNotEnabled
}

// Client is a stub whose operations all fail with [ErrOCRNotEnabled].
type Client struct{}

// New returns [ErrOCRNotEnabled].
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op. Safe on a nil client.
func (c *Client) Close() error { return nil }

// RecognizeImage returns [ErrOCRNotEnabled].
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	return "", ErrOCRNotEnabled
}

// SetLanguage returns [ErrOCRNotEnabled].
func (c *Client) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}
