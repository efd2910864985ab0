package vitae

import (
	"log/slog"

	"github.com/tsawler/vitae/fields"
	"github.com/tsawler/vitae/format"
	"github.com/tsawler/vitae/layout"
	"github.com/tsawler/vitae/model"
)

// parseOptions holds configuration for a parse run.
type parseOptions struct {
	// Input format. Unknown means infer from the path, then the content.
	format format.Format

	// Phone formatting. The formatter wins when set, even when nil.
	phoneRegion       string
	phoneFormatter    fields.PhoneFormatter
	phoneFormatterSet bool

	// OCR language pack for image inputs; empty uses the engine default.
	ocrLanguage string

	// pdftotext fallback for PDFs without a text layer.
	pdfFallback bool

	// Layout tuning.
	lineConfig    layout.LineConfig
	sectionConfig layout.SectionConfig

	// Logger for non-fatal reader warnings. nil uses slog.Default().
	logger *slog.Logger
}

// defaultParseOptions returns the default parse options.
func defaultParseOptions() parseOptions {
	return parseOptions{
		format:        format.Unknown,
		phoneRegion:   "US",
		pdfFallback:   true,
		lineConfig:    layout.DefaultLineConfig(),
		sectionConfig: layout.DefaultSectionConfig(),
	}
}

// clone creates a deep copy of parseOptions.
func (o parseOptions) clone() parseOptions {
	newOpts := o

	// Deep copy the section keyword map
	if o.sectionConfig.Keywords != nil {
		kw := make(map[model.SectionName][]string, len(o.sectionConfig.Keywords))
		for name, words := range o.sectionConfig.Keywords {
			kw[name] = append([]string(nil), words...)
		}
		newOpts.sectionConfig.Keywords = kw
	}

	return newOpts
}
