package reader

import (
	"bytes"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
	"github.com/tsawler/vitae/model"
)

// PDFSource extracts positioned text with the ledongthuc/pdf engine. The
// engine reports one Text value per glyph, so runs sharing a font, size,
// and baseline are merged back into word fragments before they reach
// layout. Pages the engine cannot decode are skipped with a warning
// rather than failing the whole document.
type PDFSource struct {
	// FallbackPdftotext shells out to the poppler pdftotext binary when
	// the engine finds no text at all, which rescues some malformed but
	// otherwise text-bearing documents. The fallback output carries no
	// geometry, so fragments are laid out synthetically.
	FallbackPdftotext bool

	// Logger receives page-skip diagnostics. nil means slog.Default().
	Logger *slog.Logger
}

// NewPDFSource returns a PDFSource with the pdftotext fallback enabled.
func NewPDFSource() *PDFSource {
	return &PDFSource{FallbackPdftotext: true}
}

// Fragments implements [Source]. It returns [ErrNoText] when the
// document decodes but holds no text at all, the usual sign of a scanned
// PDF whose pages are images.
func (s *PDFSource) Fragments(data []byte) ([]model.TextFragment, error) {
	r, err := pdflib.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("reader: open pdf: %w", err)
	}

	var frags []model.TextFragment
	for i := 1; i <= r.NumPage(); i++ {
		pageFrags, err := s.pageFragments(r, i)
		if err != nil {
			s.logger().Warn("skipping unreadable pdf page", "page", i, "error", err)
			continue
		}
		frags = append(frags, pageFrags...)
	}

	if len(frags) == 0 {
		if s.FallbackPdftotext && PdftotextAvailable() {
			if text, err := runPdftotext(data); err == nil && strings.TrimSpace(text) != "" {
				return fragmentsFromLines(linesFromText(text)), nil
			}
		}
		return nil, ErrNoText
	}
	return frags, nil
}

// pageFragments decodes one page. The engine panics on malformed content
// streams, so decoding is isolated here and a bad page surfaces as an
// error the caller can skip.
func (s *PDFSource) pageFragments(r *pdflib.Reader, num int) (frags []model.TextFragment, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			frags, err = nil, fmt.Errorf("page %d: %v", num, rec)
		}
	}()

	page := r.Page(num)
	if page.V.IsNull() {
		return nil, nil
	}

	return mergeGlyphs(page.Content().Text, pageFontTable(page)), nil
}

func (s *PDFSource) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// pageFontTable maps a page's font resource names to their BaseFont
// entries so fragments carry real face names instead of /F1 style refs.
func pageFontTable(page pdflib.Page) FontTable {
	table := make(FontTable)
	for _, name := range page.Fonts() {
		if base := page.Font(name).BaseFont(); base != "" {
			table[name] = base
		}
	}
	return table
}

// mergeGlyphs coalesces per-glyph Text values into word-run fragments.
// A glyph joins the current run when it shares the run's font, size, and
// baseline and sits within a small horizontal gap of the previous glyph.
// Small negative gaps are kerning and stay in the run; a large backward
// jump starts a new run.
func mergeGlyphs(glyphs []pdflib.Text, fonts FontTable) []model.TextFragment {
	const (
		gapRatio  = 0.3
		backRatio = 0.5
	)

	var frags []model.TextFragment
	var run []pdflib.Text

	flush := func() {
		if len(run) == 0 {
			return
		}
		first, last := run[0], run[len(run)-1]
		var buf strings.Builder
		for _, g := range run {
			buf.WriteString(g.S)
		}
		frags = append(frags, model.TextFragment{
			Text:     NormalizeText(buf.String()),
			X:        first.X,
			Y:        first.Y,
			Width:    last.X + last.W - first.X,
			Height:   first.FontSize,
			FontName: ResolveFontName(fonts, first.Font),
		})
		run = run[:0]
	}

	for _, g := range glyphs {
		if len(run) > 0 {
			prev := run[len(run)-1]
			gap := g.X - (prev.X + prev.W)
			if g.Font != prev.Font || g.FontSize != prev.FontSize || g.Y != prev.Y ||
				gap > g.FontSize*gapRatio || gap < -g.FontSize*backRatio {
				flush()
			}
		}
		run = append(run, g)
	}
	flush()

	return frags
}

// runPdftotext feeds the document to pdftotext on stdin in layout mode.
func runPdftotext(data []byte) (string, error) {
	cmd := exec.Command("pdftotext", "-layout", "-", "-")
	cmd.Stdin = bytes.NewReader(data)
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("reader: pdftotext: %w", err)
	}
	return string(out), nil
}

// PdftotextAvailable reports whether the pdftotext binary is on PATH.
func PdftotextAvailable() bool {
	_, err := exec.LookPath("pdftotext")
	return err == nil
}
