package reader

import (
	"regexp"
	"strings"
	"sync"
)

// FontTable maps the engine's per-page font references to display names.
// A missing or empty entry means the reference could not be resolved.
type FontTable map[string]string

// subsetTag matches the subset prefix embedders prepend to font names
// ("ABCDEF+Arial-BoldMT").
var subsetTag = regexp.MustCompile(`^[A-Z]{6}\+`)

var (
	baseFontOnce    sync.Once
	baseFontAliases map[string]string
)

// baseAliases returns the table of short standard-font aliases that PDF
// producers use in place of full names. It is built once per process; the
// sync.Once guard keeps concurrent cold-start parses race-free.
func baseAliases() map[string]string {
	baseFontOnce.Do(func() {
		baseFontAliases = map[string]string{
			"Helv": "Helvetica",
			"HeBo": "Helvetica-Bold",
			"HeOb": "Helvetica-Oblique",
			"TiRo": "Times-Roman",
			"TiBo": "Times-Bold",
			"TiIt": "Times-Italic",
			"Cour": "Courier",
			"CoBo": "Courier-Bold",
			"CoOb": "Courier-Oblique",
			"Symb": "Symbol",
			"ZaDb": "ZapfDingbats",
		}
	})
	return baseFontAliases
}

// ResolveFontName recovers the human font name for an engine font
// reference. The page table is consulted first; the winning name then has
// any subset tag stripped and short standard aliases expanded. When
// nothing resolves, the raw reference comes back unchanged so downstream
// heuristics still have the alias to inspect.
func ResolveFontName(table FontTable, ref string) string {
	name := ref
	if table != nil {
		if resolved, ok := table[ref]; ok && resolved != "" {
			name = resolved
		}
	}

	name = strings.TrimSpace(subsetTag.ReplaceAllString(name, ""))
	if alias, ok := baseAliases()[name]; ok {
		return alias
	}
	if name == "" {
		return ref
	}
	return name
}
