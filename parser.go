package vitae

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/tsawler/vitae/fields"
	"github.com/tsawler/vitae/format"
	"github.com/tsawler/vitae/layout"
	"github.com/tsawler/vitae/model"
	"github.com/tsawler/vitae/reader"
)

// Parser runs the parsing pipeline over one document.
// Each configuration method returns a new Parser instance, making it
// safe for concurrent use and allowing method chaining.
type Parser struct {
	// Source (exactly one is set)
	path   string
	data   []byte
	source io.Reader

	// Configuration
	options parseOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Parser with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (p *Parser) clone() *Parser {
	return &Parser{
		path:    p.path,
		data:    p.data,
		source:  p.source,
		options: p.options.clone(),
		err:     p.err,
	}
}

// ============================================================================
// Configuration Methods (return new Parser instance)
// ============================================================================

// WithFormat forces the input format instead of inferring it from the
// file extension or content.
//
// Example:
//
//	resume, err := vitae.FromBytes(data).WithFormat(format.Markdown).Parse()
func (p *Parser) WithFormat(f format.Format) *Parser {
	newP := p.clone()
	newP.options.format = f
	return newP
}

// WithPhoneRegion sets the region phone numbers are formatted for, an
// ISO 3166-1 alpha-2 code such as "US" or "FR". The default is "US".
//
// Example:
//
//	resume, err := vitae.Open("cv.pdf").WithPhoneRegion("FR").Parse()
func (p *Parser) WithPhoneRegion(region string) *Parser {
	newP := p.clone()
	newP.options.phoneRegion = region
	return newP
}

// WithPhoneFormatter replaces the phone formatter entirely. Passing nil
// disables formatting, leaving phone numbers exactly as matched.
//
// Example:
//
//	resume, err := vitae.Open("cv.pdf").WithPhoneFormatter(nil).Parse()
func (p *Parser) WithPhoneFormatter(f fields.PhoneFormatter) *Parser {
	newP := p.clone()
	newP.options.phoneFormatter = f
	newP.options.phoneFormatterSet = true
	return newP
}

// WithLogger sets the logger that receives non-fatal warnings, such as a
// skipped unreadable PDF page. The default is slog.Default().
func (p *Parser) WithLogger(logger *slog.Logger) *Parser {
	newP := p.clone()
	newP.options.logger = logger
	return newP
}

// WithOCR sets the Tesseract language pack used for scanned-image
// inputs, such as "eng" or "deu". Image inputs are recognized
// automatically; this only tunes the language. Requires a binary built
// with the ocr tag.
//
// Example:
//
//	resume, err := vitae.Open("scan.png").WithOCR("deu").Parse()
func (p *Parser) WithOCR(language string) *Parser {
	newP := p.clone()
	newP.options.ocrLanguage = language
	return newP
}

// WithLineConfig replaces the line grouping configuration.
//
// Example:
//
//	config := layout.DefaultLineConfig()
//	config.BaselineToleranceRatio = 0.7
//	resume, err := vitae.Open("resume.pdf").WithLineConfig(config).Parse()
func (p *Parser) WithLineConfig(config layout.LineConfig) *Parser {
	newP := p.clone()
	newP.options.lineConfig = config
	return newP
}

// WithSectionConfig replaces the section grouping configuration, for
// example to add heading keywords in another language.
func (p *Parser) WithSectionConfig(config layout.SectionConfig) *Parser {
	newP := p.clone()
	newP.options.sectionConfig = config
	return newP
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Parse runs the pipeline and returns the structured résumé. Stages run
// in fixed order: read fragments, group fragments into lines, group
// lines into sections, then extract profile, work, education, and skill
// fields. The returned Resume is fully populated; absent data appears as
// empty strings, slices, and maps, never null.
//
// Example:
//
//	resume, err := vitae.Open("resume.pdf").Parse()
func (p *Parser) Parse() (*model.Resume, error) {
	if p.err != nil {
		return nil, p.err
	}

	data, err := p.readInput()
	if err != nil {
		return nil, err
	}

	f := p.options.format
	if f == format.Unknown && p.path != "" {
		f = format.Detect(p.path)
	}

	frags, err := reader.ReadWithConfig(data, f, reader.Config{
		OCRLanguage: p.options.ocrLanguage,
		PDFFallback: p.options.pdfFallback,
		Logger:      p.options.logger,
	})
	if err != nil {
		return nil, err
	}

	lines := layout.NewLineGrouperWithConfig(p.options.lineConfig).Group(frags)
	sections := layout.NewSectionGrouperWithConfig(p.options.sectionConfig).Group(lines)

	resume := model.NewResume()
	resume.Profile = (&fields.ProfileExtractor{Formatter: p.formatter()}).Extract(sections.Profile)
	resume.WorkExperiences = fields.NewWorkExtractor().Extract(sections.Work)
	resume.Education = fields.NewEducationExtractor().Extract(sections.Education)
	resume.Skills, resume.SkillsByCategory = fields.NewSkillsExtractor().Extract(sections.Skills, documentText(lines))
	resume.Sections = sections

	return resume, nil
}

// readInput materializes the configured input source.
func (p *Parser) readInput() ([]byte, error) {
	switch {
	case p.data != nil:
		return p.data, nil
	case p.source != nil:
		data, err := io.ReadAll(p.source)
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
		return data, nil
	case p.path != "":
		data, err := os.ReadFile(p.path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", p.path, err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("no input specified")
	}
}

// formatter resolves the phone formatter: an explicitly set one wins,
// otherwise the national formatter for the configured region.
func (p *Parser) formatter() fields.PhoneFormatter {
	if p.options.phoneFormatterSet {
		return p.options.phoneFormatter
	}
	return fields.NationalPhoneFormatter(p.options.phoneRegion)
}

// documentText reconstructs the document's plain text for whole-text
// scans such as skill detection.
func documentText(lines []model.Line) string {
	parts := make([]string, len(lines))
	for i, line := range lines {
		parts[i] = line.Text()
	}
	return strings.Join(parts, "\n")
}
