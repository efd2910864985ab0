// Package model provides the data types for the résumé parsing pipeline.
//
// This package defines the structures that flow between pipeline stages and
// the final result returned to callers. All parsing operations ultimately
// produce these types, making them the primary API for consuming parsed
// résumé content.
//
// # Pipeline Types
//
// Parsing proceeds through three intermediate representations:
//
//   - [TextFragment] - one positioned run of text reported by the extraction
//     engine, before any grouping
//   - [Line] - fragments sharing a visual row, ordered left to right
//   - [Section] - a named, ordered group of lines corresponding to a résumé
//     category (profile, work, education, skills, other)
//
// Fragments are produced once by the reader and are immutable afterward.
// Lines are immutable once built, and sections immutable once grouped.
//
// # Result Types
//
// The [Resume] type is the terminal output:
//
//	resume := model.NewResume()
//	resume.Profile.Email = "jane@example.com"
//
// Every field of [Resume] is always present. Data the heuristics could not
// find is represented as an empty string, empty slice, or empty map, never
// as a nil that would surface as JSON null. [NewResume] establishes this
// invariant; the parser never returns a Resume built any other way.
//
// # Sections
//
// The five section names are a fixed vocabulary ([SectionProfile],
// [SectionWork], [SectionEducation], [SectionSkills], [SectionOther]).
// [SectionSet] holds one section per name as struct fields, which makes
// unique keys and the guaranteed presence of the profile section structural
// rather than conventional.
package model
