package layout

import (
	"testing"

	"github.com/tsawler/vitae/model"
)

// makeLineFragment creates a text fragment for line grouping tests.
func makeLineFragment(txt string, x, y, width, height float64) model.TextFragment {
	return model.TextFragment{
		Text:     txt,
		X:        x,
		Y:        y,
		Width:    width,
		Height:   height,
		FontName: "Helvetica",
	}
}

func TestLineGrouperEmptyInput(t *testing.T) {
	grouper := NewLineGrouper()
	lines := grouper.Group(nil)
	if lines != nil {
		t.Errorf("Expected nil lines for empty input, got %d lines", len(lines))
	}
}

func TestLineGrouperSingleLine(t *testing.T) {
	fragments := []model.TextFragment{
		makeLineFragment("Hello", 10, 700, 50, 12),
		makeLineFragment("World", 70, 700, 50, 12),
	}

	grouper := NewLineGrouper()
	lines := grouper.Group(fragments)

	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}
	if len(lines[0].Fragments) != 2 {
		t.Errorf("Expected 2 fragments in line, got %d", len(lines[0].Fragments))
	}
}

func TestLineGrouperSeparateLines(t *testing.T) {
	fragments := []model.TextFragment{
		makeLineFragment("First line", 10, 700, 80, 12),
		makeLineFragment("Second line", 10, 680, 90, 12),
		makeLineFragment("Third line", 10, 660, 85, 12),
	}

	grouper := NewLineGrouper()
	lines := grouper.Group(fragments)

	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}
	if lines[0].Text() != "First line" {
		t.Errorf("Expected first line %q, got %q", "First line", lines[0].Text())
	}
}

func TestLineGrouperBaselineJitter(t *testing.T) {
	// Mixed font metrics put fragments on the same visual row at slightly
	// different baselines. Within half the fragment height they join.
	fragments := []model.TextFragment{
		makeLineFragment("Name", 10, 700, 40, 12),
		makeLineFragment("(PhD)", 55, 702.5, 35, 12),
		makeLineFragment("contact", 100, 698, 50, 12),
	}

	grouper := NewLineGrouper()
	lines := grouper.Group(fragments)

	if len(lines) != 1 {
		t.Fatalf("Expected 1 line for jittered baselines, got %d", len(lines))
	}
}

func TestLineGrouperToleranceBandInvariant(t *testing.T) {
	fragments := []model.TextFragment{
		makeLineFragment("a", 10, 700, 10, 10),
		makeLineFragment("b", 25, 703, 10, 10),
		makeLineFragment("c", 40, 690, 10, 10),
		makeLineFragment("d", 10, 670, 10, 10),
	}

	grouper := NewLineGrouper()
	lines := grouper.Group(fragments)

	// Every fragment appears in exactly one line.
	total := 0
	for _, line := range lines {
		total += len(line.Fragments)
	}
	if total != len(fragments) {
		t.Errorf("Expected %d fragments across lines, got %d", len(fragments), total)
	}

	// All member baselines lie within the tolerance band of the line
	// reference (running average), with tolerance = height * ratio.
	cfg := DefaultLineConfig()
	for i, line := range lines {
		ref := 0.0
		for _, frag := range line.Fragments {
			ref += frag.Y
		}
		ref /= float64(len(line.Fragments))
		for _, frag := range line.Fragments {
			tol := frag.Height * cfg.BaselineToleranceRatio
			if tol < cfg.MinTolerance {
				tol = cfg.MinTolerance
			}
			if absFloat64(frag.Y-ref) > tol+tol {
				t.Errorf("Line %d: fragment %q baseline %.1f outside band around %.1f", i, frag.Text, frag.Y, ref)
			}
		}
	}
}

func TestLineGrouperXOrdering(t *testing.T) {
	// Fragments extracted right-to-left must come out in ascending X order.
	fragments := []model.TextFragment{
		makeLineFragment("right", 200, 700, 40, 12),
		makeLineFragment("middle", 100, 700, 45, 12),
		makeLineFragment("left", 10, 700, 30, 12),
	}

	grouper := NewLineGrouper()
	lines := grouper.Group(fragments)

	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}

	frags := lines[0].Fragments
	for i := 1; i < len(frags); i++ {
		if frags[i].X < frags[i-1].X {
			t.Errorf("Fragments not in ascending X order: %q at %.0f after %q at %.0f",
				frags[i].Text, frags[i].X, frags[i-1].Text, frags[i-1].X)
		}
	}
	if frags[0].Text != "left" {
		t.Errorf("Expected leftmost fragment first, got %q", frags[0].Text)
	}
}

func TestLineGrouperOverlappingRunsKeepStreamOrder(t *testing.T) {
	// Near-identical X positions are treated as equal; stream order holds.
	fragments := []model.TextFragment{
		makeLineFragment("first", 100, 700, 40, 12),
		makeLineFragment("second", 100.5, 700, 40, 12),
	}

	grouper := NewLineGrouper()
	lines := grouper.Group(fragments)

	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}
	if lines[0].Fragments[0].Text != "first" {
		t.Errorf("Expected stream order preserved for overlapping runs, got %q first", lines[0].Fragments[0].Text)
	}
}

func TestLineGrouperEndOfLineForcesClose(t *testing.T) {
	// Two fragments share a baseline, but the first carries a hard break.
	first := makeLineFragment("line one", 10, 0, 60, 11)
	first.EndOfLine = true
	second := makeLineFragment("line two", 80, 0, 60, 11)

	grouper := NewLineGrouper()
	lines := grouper.Group([]model.TextFragment{first, second})

	if len(lines) != 2 {
		t.Fatalf("Expected EndOfLine to force a close, got %d lines", len(lines))
	}
	if lines[0].Text() != "line one" {
		t.Errorf("Expected first line %q, got %q", "line one", lines[0].Text())
	}
}

func TestLineGrouperCustomConfig(t *testing.T) {
	// A generous tolerance merges rows that default config separates.
	fragments := []model.TextFragment{
		makeLineFragment("a", 10, 700, 10, 12),
		makeLineFragment("b", 30, 692, 10, 12),
	}

	if got := len(NewLineGrouper().Group(fragments)); got != 2 {
		t.Errorf("Expected 2 lines with default config, got %d", got)
	}

	wide := NewLineGrouperWithConfig(LineConfig{BaselineToleranceRatio: 1.0, MinTolerance: 1.0})
	if got := len(wide.Group(fragments)); got != 1 {
		t.Errorf("Expected 1 line with widened tolerance, got %d", got)
	}
}

func TestLineGrouperNilReceiver(t *testing.T) {
	var grouper *LineGrouper
	if lines := grouper.Group([]model.TextFragment{makeLineFragment("x", 0, 0, 5, 10)}); lines != nil {
		t.Errorf("Expected nil result from nil grouper, got %v", lines)
	}
}
