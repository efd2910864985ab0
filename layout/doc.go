// Package layout reconstructs visual structure from positioned text
// fragments: fragments into lines, lines into named résumé sections.
//
// # Line Grouping
//
// The [LineGrouper] scans fragments in document order, maintaining a
// current-line vertical reference. A fragment joins the current line when
// its baseline falls within a tolerance band of the reference; otherwise
// the line closes and a new one starts. Fragments whose EndOfLine flag is
// set force the line to close immediately, modeling explicit breaks
// reported by synthetic-layout sources.
//
//	grouper := layout.NewLineGrouper()
//	lines := grouper.Group(fragments)
//
// Within each line, fragments are ordered by ascending horizontal position
// rather than raw extraction order, which corrects right-to-left extraction
// artifacts and overlapping runs.
//
// Multi-column page layouts are not reconciled into logical reading order
// beyond this top-to-bottom, left-to-right pass. A two-column résumé will
// interleave its columns line by line. This is a known limitation.
//
// # Section Grouping
//
// The [SectionGrouper] walks lines in order and tests each for
// heading-likeness: brevity, bold or all-caps rendering, and membership in
// a per-section keyword list. A recognized heading opens its section; lines
// before the first recognized heading accumulate in the profile section,
// which always exists. Keyword ties resolve in fixed priority order
// (work, then education, then skills, then other). Unrecognized headings
// never switch sections.
//
//	sections := layout.NewSectionGrouper().Group(lines)
package layout
