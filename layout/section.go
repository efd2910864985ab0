package layout

import (
	"strings"

	"github.com/tsawler/vitae/model"
)

// sectionPriority is the tie-break order when a line matches keywords for
// more than one section.
var sectionPriority = []model.SectionName{
	model.SectionWork,
	model.SectionEducation,
	model.SectionSkills,
	model.SectionOther,
}

// SectionConfig holds configuration for section grouping.
type SectionConfig struct {
	// MaxHeadingLength is the maximum trimmed text length for a line to
	// be considered a heading at all (default: 48). Section headings are
	// brief; a sentence mentioning "experience" is not a heading.
	MaxHeadingLength int

	// MaxHeadingWords is the maximum word count for an unstyled line to
	// pass on brevity alone (default: 4). Bold or all-caps lines are not
	// held to this.
	MaxHeadingWords int

	// Keywords maps each target section to the heading keywords that open
	// it. Matching is case-insensitive on whole words, so "experienced"
	// does not match "experience". Multi-word keywords match as phrases.
	Keywords map[model.SectionName][]string
}

// DefaultSectionConfig returns sensible default configuration.
func DefaultSectionConfig() SectionConfig {
	return SectionConfig{
		MaxHeadingLength: 48,
		MaxHeadingWords:  4,
		Keywords: map[model.SectionName][]string{
			model.SectionWork: {
				"experience", "employment", "work history", "career history",
				"work", "professional background",
			},
			model.SectionEducation: {
				"education", "academic", "academics", "studies",
			},
			model.SectionSkills: {
				"skills", "competencies", "technologies", "expertise",
				"proficiencies", "tech stack",
			},
			model.SectionOther: {
				"projects", "certifications", "certificates", "awards",
				"honors", "publications", "languages", "interests",
				"volunteer", "volunteering", "references", "activities",
				"courses", "leadership", "summary of qualifications",
			},
		},
	}
}

// SectionGrouper clusters lines into named résumé sections.
type SectionGrouper struct {
	config SectionConfig
}

// NewSectionGrouper creates a section grouper with default configuration.
func NewSectionGrouper() *SectionGrouper {
	return &SectionGrouper{
		config: DefaultSectionConfig(),
	}
}

// NewSectionGrouperWithConfig creates a section grouper with custom
// configuration.
func NewSectionGrouperWithConfig(config SectionConfig) *SectionGrouper {
	return &SectionGrouper{
		config: config,
	}
}

// Group walks lines in order and assigns each to a section. Lines before
// the first recognized heading accumulate in the profile section. A
// recognized heading opens its section and is stored as that section's
// first line with HasHeading set; subsequent lines accumulate there until
// the next recognized heading. A section recognized a second time is
// reopened, and the later heading line stays in its content. Unrecognized
// headings never switch the active section.
func (g *SectionGrouper) Group(lines []model.Line) model.SectionSet {
	sections := model.NewSectionSet()
	active := &sections.Profile

	for _, line := range lines {
		if target, ok := g.Heading(line); ok {
			active = sections.ByName(target)
			if len(active.Lines) == 0 {
				active.HasHeading = true
			}
		}
		active.Lines = append(active.Lines, line)
	}

	return sections
}

// Heading tests a line for heading-likeness and returns the section it
// opens. The composite heuristic requires brevity (MaxHeadingLength), a
// whole-word keyword match for some section, and either styled rendering
// (bold or all-caps) or an unstyled word count within MaxHeadingWords.
// Keyword ties resolve work > education > skills > other.
func (g *SectionGrouper) Heading(line model.Line) (model.SectionName, bool) {
	text := strings.TrimSpace(line.Text())
	if text == "" || len(text) > g.config.MaxHeadingLength {
		return "", false
	}

	normalized := normalizeHeadingText(text)
	if normalized == "" {
		return "", false
	}

	styled := line.Bold() || line.AllCaps()
	brief := wordCount(normalized) <= g.config.MaxHeadingWords
	if !styled && !brief {
		return "", false
	}

	for _, target := range sectionPriority {
		for _, kw := range g.config.Keywords[target] {
			if containsWord(normalized, kw) {
				return target, true
			}
		}
	}

	return "", false
}

// normalizeHeadingText lowercases text and replaces every non-alphanumeric
// rune with a space, so keyword matching sees clean word boundaries
// ("EXPERIENCE:" matches "experience").
func normalizeHeadingText(text string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		} else {
			sb.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

// containsWord reports whether normalized contains kw on word boundaries.
// Both strings must already be normalized.
func containsWord(normalized, kw string) bool {
	return strings.Contains(" "+normalized+" ", " "+kw+" ")
}

func wordCount(normalized string) int {
	if normalized == "" {
		return 0
	}
	return len(strings.Split(normalized, " "))
}
