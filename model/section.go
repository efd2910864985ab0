package model

// SectionName identifies one of the fixed résumé section categories.
type SectionName string

// The fixed section vocabulary. Every line of a parsed document lands in
// exactly one of these.
const (
	SectionProfile   SectionName = "profile"
	SectionWork      SectionName = "work"
	SectionEducation SectionName = "education"
	SectionSkills    SectionName = "skills"
	SectionOther     SectionName = "other"
)

// SectionNames lists the vocabulary in canonical document order.
var SectionNames = []SectionName{
	SectionProfile,
	SectionWork,
	SectionEducation,
	SectionSkills,
	SectionOther,
}

// Section is a named, ordered group of lines corresponding to a résumé
// category. When a recognized heading opened the section, HasHeading is
// true and the heading itself is stored as the first line, so that every
// input line appears in exactly one section. Field extractors skip the
// heading line.
type Section struct {
	Name       SectionName `json:"name"`
	HasHeading bool        `json:"has_heading"`
	Lines      []Line      `json:"lines"`
}

// IsEmpty reports whether the section holds no lines at all.
func (s Section) IsEmpty() bool {
	return len(s.Lines) == 0
}

// Body returns the section's content lines, excluding the heading line
// when one is present.
func (s Section) Body() []Line {
	if s.HasHeading && len(s.Lines) > 0 {
		return s.Lines[1:]
	}
	return s.Lines
}

// Text reconstructs the section's plain text: fragment texts joined per
// line, lines joined by newline. The heading line is excluded.
func (s Section) Text() string {
	body := s.Body()
	out := ""
	for i, line := range body {
		if i > 0 {
			out += "\n"
		}
		out += line.Text()
	}
	return out
}

// SectionSet holds the document's sections, one per name in the fixed
// vocabulary. Representing the mapping as struct fields makes key
// uniqueness and the guaranteed existence of the profile section
// structural: a SectionSet cannot have a missing or duplicated section.
type SectionSet struct {
	Profile   Section `json:"profile"`
	Work      Section `json:"work"`
	Education Section `json:"education"`
	Skills    Section `json:"skills"`
	Other     Section `json:"other"`
}

// NewSectionSet returns a SectionSet with each section carrying its name
// and an empty line list.
func NewSectionSet() SectionSet {
	return SectionSet{
		Profile:   Section{Name: SectionProfile, Lines: []Line{}},
		Work:      Section{Name: SectionWork, Lines: []Line{}},
		Education: Section{Name: SectionEducation, Lines: []Line{}},
		Skills:    Section{Name: SectionSkills, Lines: []Line{}},
		Other:     Section{Name: SectionOther, Lines: []Line{}},
	}
}

// ByName returns a pointer to the named section, or nil for a name outside
// the fixed vocabulary.
func (ss *SectionSet) ByName(name SectionName) *Section {
	switch name {
	case SectionProfile:
		return &ss.Profile
	case SectionWork:
		return &ss.Work
	case SectionEducation:
		return &ss.Education
	case SectionSkills:
		return &ss.Skills
	case SectionOther:
		return &ss.Other
	default:
		return nil
	}
}

// All returns pointers to every section in canonical order.
func (ss *SectionSet) All() []*Section {
	return []*Section{&ss.Profile, &ss.Work, &ss.Education, &ss.Skills, &ss.Other}
}

// LineCount returns the total number of lines across all sections.
func (ss *SectionSet) LineCount() int {
	n := 0
	for _, s := range ss.All() {
		n += len(s.Lines)
	}
	return n
}
