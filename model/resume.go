package model

// Profile holds the candidate's identity fields. Every field defaults to
// the empty string; none is ever absent.
type Profile struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	URL      string `json:"url"`
	LinkedIn string `json:"linkedin"`
}

// WorkEntry is one position in the candidate's work history, in the order
// the document presents it. Missing fields are empty strings; an entry
// with every identifying field empty is never emitted.
type WorkEntry struct {
	Company    string   `json:"company"`
	Title      string   `json:"title"`
	DateRange  string   `json:"date_range"`
	Highlights []string `json:"highlights"`
}

// EducationEntry is one school or program in the candidate's education
// history.
type EducationEntry struct {
	School     string   `json:"school"`
	Degree     string   `json:"degree"`
	GPA        string   `json:"gpa"`
	DateRange  string   `json:"date_range"`
	Highlights []string `json:"highlights"`
}

// Resume is the terminal output of the parsing pipeline. It is constructed
// once by the parser and never mutated after return. All fields are always
// present: absent data appears as an empty string, empty slice, or empty
// map, so serialized output has no null and no missing keys.
type Resume struct {
	Profile          Profile             `json:"profile"`
	WorkExperiences  []WorkEntry         `json:"work_experiences"`
	Education        []EducationEntry    `json:"education"`
	Skills           []string            `json:"skills"`
	SkillsByCategory map[string][]string `json:"skills_by_category"`
	Sections         SectionSet          `json:"sections"`
}

// NewResume returns a Resume with every collection initialized to empty
// rather than nil, establishing the no-null serialization invariant.
func NewResume() *Resume {
	return &Resume{
		WorkExperiences:  []WorkEntry{},
		Education:        []EducationEntry{},
		Skills:           []string{},
		SkillsByCategory: map[string][]string{},
		Sections:         NewSectionSet(),
	}
}
