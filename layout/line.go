package layout

import (
	"sort"

	"github.com/tsawler/vitae/model"
)

// xTolerance is the fraction of fragment height under which two X positions
// are treated as equal during the within-line sort, preserving stream order
// for overlapping runs (some writers emit the same word twice at nearly the
// same position).
const xTolerance = 0.3

// LineConfig holds configuration for line grouping.
type LineConfig struct {
	// BaselineToleranceRatio is the Y-distance tolerance for keeping a
	// fragment on the current line, as a fraction of fragment height
	// (default: 0.5). Fragments on the same visual row can differ
	// slightly in baseline due to mixed font metrics.
	BaselineToleranceRatio float64

	// MinTolerance is the floor for the tolerance band in page units
	// (default: 1.0), so very small fonts still absorb baseline jitter.
	MinTolerance float64
}

// DefaultLineConfig returns sensible default configuration.
func DefaultLineConfig() LineConfig {
	return LineConfig{
		BaselineToleranceRatio: 0.5,
		MinTolerance:           1.0,
	}
}

// LineGrouper clusters positioned fragments into visual lines.
type LineGrouper struct {
	config LineConfig
}

// NewLineGrouper creates a line grouper with default configuration.
func NewLineGrouper() *LineGrouper {
	return &LineGrouper{
		config: DefaultLineConfig(),
	}
}

// NewLineGrouperWithConfig creates a line grouper with custom configuration.
func NewLineGrouperWithConfig(config LineConfig) *LineGrouper {
	return &LineGrouper{
		config: config,
	}
}

// Group scans fragments in document order and clusters them into lines.
// Every input fragment lands in exactly one output line. A fragment joins
// the current line when its baseline lies within the tolerance band of the
// line's running reference; an EndOfLine fragment closes the line
// immediately after itself regardless of what follows.
func (g *LineGrouper) Group(fragments []model.TextFragment) []model.Line {
	if g == nil || len(fragments) == 0 {
		return nil
	}

	var lines []model.Line
	var current []model.TextFragment

	flush := func() {
		if len(current) == 0 {
			return
		}
		g.sortByX(current)
		lines = append(lines, model.Line{Fragments: current})
		current = nil
	}

	for _, frag := range fragments {
		if len(current) > 0 {
			refY := averageY(current)
			if absFloat64(frag.Y-refY) > g.tolerance(frag) {
				flush()
			}
		}
		current = append(current, frag)

		if frag.EndOfLine {
			flush()
		}
	}
	flush()

	return lines
}

// tolerance returns the band half-width for the given fragment.
func (g *LineGrouper) tolerance(frag model.TextFragment) float64 {
	tol := frag.Height * g.config.BaselineToleranceRatio
	if tol < g.config.MinTolerance {
		tol = g.config.MinTolerance
	}
	return tol
}

// sortByX orders a line's fragments by ascending horizontal position.
// The sort is stable, and X positions closer than a height-relative
// tolerance are treated as equal so that overlapping runs keep their
// stream order.
func (g *LineGrouper) sortByX(frags []model.TextFragment) {
	sort.SliceStable(frags, func(i, j int) bool {
		xTol := frags[i].Height * xTolerance
		if absFloat64(frags[i].X-frags[j].X) < xTol {
			return false
		}
		return frags[i].X < frags[j].X
	})
}

// averageY returns the mean baseline of the fragments, the line's running
// vertical reference.
func averageY(frags []model.TextFragment) float64 {
	sum := 0.0
	for _, f := range frags {
		sum += f.Y
	}
	return sum / float64(len(frags))
}

func absFloat64(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
