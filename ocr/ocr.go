//go:build ocr

// Package ocr recognizes text in scanned résumé images.
//
// The package wraps the Tesseract engine via gosseract and requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
//
// Binaries built without the "ocr" tag get a stub whose functions return
// [ErrOCRNotEnabled], so callers can ship without the Tesseract
// dependency and still probe for OCR at runtime with [Enabled].
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Enabled reports whether OCR support was compiled in.
func Enabled() bool { return true }

// Recognize runs OCR over one image (PNG, JPEG, or TIFF) and returns the
// recognized text. lang is a Tesseract language code such as "eng" or
// "eng+fra"; empty uses the engine default.
func Recognize(imageData []byte, lang string) (string, error) {
	client, err := New()
	if err != nil {
		return "", err
	}
	defer client.Close()

	if lang != "" {
		if err := client.SetLanguage(lang); err != nil {
			return "", fmt.Errorf("set language %q: %w", lang, err)
		}
	}
	return client.RecognizeImage(imageData)
}

// Client wraps Tesseract for repeated recognition without paying the
// engine startup cost per image. Close it when done.
type Client struct {
	client *gosseract.Client
}

// New creates an OCR client.
func New() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

// Close releases engine resources. Safe on a nil client.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// RecognizeImage performs OCR on image data and returns the recognized
// text with surrounding whitespace trimmed.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// SetLanguage sets the recognition language(s). Multiple languages join
// with "+" (e.g. "eng+fra"). The default is "eng".
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}
