// Package vitae parses résumés into structured data.
//
// Basic usage:
//
//	resume, err := vitae.Open("resume.pdf").Parse()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(resume.Profile.Name)
//
// With options:
//
//	resume, err := vitae.FromBytes(data).
//	    WithFormat(format.Markdown).
//	    WithPhoneRegion("GB").
//	    Parse()
//
// Supported inputs are PDF, DOCX, Markdown, HTML, and plain text.
// Scanned images (PNG, JPEG, TIFF) work when the binary is built with
// the ocr tag and Tesseract is installed; see the ocr package.
//
// The pipeline runs in fixed stages: the reader package turns the
// document into positioned text fragments, the layout package groups
// fragments into visual lines and lines into named sections, and the
// fields package extracts typed values from each section. Every stage is
// usable on its own for finer control.
package vitae

import "io"

// Open prepares a parser for the file at path. The format is inferred
// from the file extension, falling back to content sniffing; use
// [Parser.WithFormat] to override both.
//
// Example:
//
//	resume, err := vitae.Open("resume.pdf").Parse()
func Open(path string) *Parser {
	return &Parser{path: path, options: defaultParseOptions()}
}

// FromBytes prepares a parser for an in-memory document. The format is
// sniffed from the content unless [Parser.WithFormat] sets it.
//
// Example:
//
//	resume, err := vitae.FromBytes(data).Parse()
func FromBytes(data []byte) *Parser {
	return &Parser{data: data, options: defaultParseOptions()}
}

// FromReader prepares a parser that consumes r when Parse runs. The
// reader is read to EOF and never closed; the caller keeps ownership.
//
// Example:
//
//	resume, err := vitae.FromReader(file).Parse()
func FromReader(r io.Reader) *Parser {
	return &Parser{source: r, options: defaultParseOptions()}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	resume := vitae.Must(vitae.Open("resume.pdf").Parse())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
