// Package reader decodes résumé documents into ordered, positioned text
// fragments, the input to the layout pipeline.
//
// # Sources
//
// Each supported input format has a [Source] implementation:
//
//   - [PDFSource] - native PDFs through the extraction engine
//     (github.com/ledongthuc/pdf), with real page geometry
//   - [DOCXSource] - Word documents (github.com/fumiama/go-docx)
//   - [MarkdownSource] - Markdown (github.com/yuin/goldmark)
//   - [HTMLSource] - HTML exports (golang.org/x/net/html)
//   - [TextSource] - plain text
//   - [ScanSource] - image scans, recognized with the ocr package
//
// [ForFormat] picks the source for a detected format; [Read] is the
// one-call path from bytes to fragments:
//
//	fragments, err := reader.Read(data, format.PDF)
//
// # Geometry
//
// The PDF source reports real coordinates: X is the run's left edge, Y its
// baseline (increasing upward), Height the font size. All other sources
// synthesize a simple layout with a fixed line pitch and set EndOfLine on
// the last fragment of each logical line, which the line grouper honors as
// a hard break.
//
// # Text repair
//
// Every source passes extracted text through [NormalizeText], which fixes
// a known engine artifact (hyphen followed by a soft hyphen collapses to a
// plain hyphen) and folds presentation-form ligatures to their letter
// sequences. Fragments that are purely whitespace and carry no line-end
// marker are dropped as noise; line-end-marked empty fragments survive
// because they still signal paragraph breaks.
//
// # Failure
//
// A document the engine cannot decode surfaces as an error with no partial
// output. Individual PDF pages whose content streams fail to decode are
// skipped and logged; this partial-page recovery is an intentional
// extension of the all-or-nothing contract. Scanned-image inputs require
// OCR support compiled in (see the ocr package); without it they fail
// fast with [github.com/tsawler/vitae/ocr.ErrOCRNotEnabled].
package reader
