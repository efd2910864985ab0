package fields

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tsawler/vitae/model"
)

// skillCategory is one taxonomy bucket. Order matters: full-text hits
// append in taxonomy order, keeping output deterministic.
type skillCategory struct {
	name  string
	terms []string
}

var skillTaxonomy = []skillCategory{
	{"languages", []string{"Go", "Python", "Java", "JavaScript", "TypeScript", "C", "C++", "C#", "Ruby", "PHP", "Swift", "Kotlin", "Rust", "Scala", "R", "Perl", "SQL", "HTML", "CSS", "Bash"}},
	{"frameworks", []string{"React", "Angular", "Vue", "Django", "Flask", "Rails", "Spring", "Express", "Node.js", ".NET", "Laravel", "FastAPI", "Svelte", "jQuery"}},
	{"databases", []string{"PostgreSQL", "MySQL", "MongoDB", "Redis", "SQLite", "Oracle", "Cassandra", "DynamoDB", "Elasticsearch", "MariaDB", "Memcached"}},
	{"cloud", []string{"AWS", "Azure", "Google Cloud", "GCP", "Kubernetes", "Docker", "Terraform", "Ansible", "Heroku", "DigitalOcean"}},
	{"tools", []string{"Git", "Jenkins", "Jira", "Linux", "Kafka", "RabbitMQ", "GraphQL", "gRPC", "Grafana", "Prometheus", "Nginx", "Webpack", "Maven", "Gradle"}},
}

// skillVariants maps common alternate spellings to canonical names,
// beyond the casing normalization the taxonomy itself provides.
var skillVariants = map[string]string{
	"golang":   "Go",
	"js":       "JavaScript",
	"es6":      "JavaScript",
	"ts":       "TypeScript",
	"k8s":      "Kubernetes",
	"postgres": "PostgreSQL",
	"mongo":    "MongoDB",
	"node":     "Node.js",
	"nodejs":   "Node.js",
	"node.js":  "Node.js",
	"reactjs":  "React",
	"react.js": "React",
	"vuejs":    "Vue",
	"vue.js":   "Vue",
	"dotnet":   ".NET",
	".net":     ".NET",
	"cpp":      "C++",
	"c sharp":  "C#",
	"gcloud":   "Google Cloud",
}

var (
	canonicalByLower = map[string]string{}
	categoryByLower  = map[string]string{}
)

func init() {
	for _, cat := range skillTaxonomy {
		for _, term := range cat.terms {
			lower := strings.ToLower(term)
			canonicalByLower[lower] = term
			categoryByLower[lower] = cat.name
		}
	}
}

var (
	skillSplitRe = regexp.MustCompile(`[,;|•●▪◦‣·]+`)
	skillLabelRe = regexp.MustCompile(`^[A-Za-z][A-Za-z &/+-]{0,30}:`)
)

// SkillsExtractor tokenizes the skills section and scans the whole
// document text for taxonomy terms, since skills often appear outside a
// dedicated section.
type SkillsExtractor struct{}

// NewSkillsExtractor returns a skills extractor.
func NewSkillsExtractor() *SkillsExtractor {
	return &SkillsExtractor{}
}

// Extract returns the deduplicated skill list and the recognized skills
// grouped by category. Section tokens come first in original order;
// taxonomy terms found only in the wider document text append after
// them. Unrecognized tokens stay in the flat list but are left out of
// the grouping.
func (e *SkillsExtractor) Extract(section model.Section, fullText string) ([]string, map[string][]string) {
	skills := []string{}
	seen := make(map[string]bool)

	for _, tok := range sectionTokens(section) {
		skills = appendSkill(skills, seen, tok)
	}
	for _, hit := range fullTextSkills(fullText) {
		skills = appendSkill(skills, seen, hit)
	}

	return skills, categorize(skills)
}

// sectionTokens splits the section's lines on list delimiters and
// normalizes each token. Category labels ("Languages: Go, Python") are
// stripped, and anything longer than a short phrase is discarded as
// prose rather than a skill.
func sectionTokens(section model.Section) []string {
	var tokens []string
	for _, line := range section.Body() {
		text := line.Text()
		if isBullet(text) {
			text = stripBullet(text)
		}
		if m := skillLabelRe.FindString(text); m != "" {
			rest := text[len(m):]
			if !strings.HasPrefix(rest, "//") {
				text = rest
			}
		}

		for _, part := range skillSplitRe.Split(text, -1) {
			tok := normalizeSkill(part)
			if tok == "" {
				continue
			}
			if utf8.RuneCountInString(tok) > 40 || len(strings.Fields(tok)) > 4 {
				continue
			}
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// normalizeSkill trims a token and canonicalizes known spellings.
// Unknown tokens come back trimmed but otherwise as written.
func normalizeSkill(token string) string {
	token = strings.TrimLeft(token, " \t,;:")
	token = strings.TrimRight(token, " \t,;:.")
	if token == "" {
		return ""
	}
	lower := strings.ToLower(token)
	if c, ok := skillVariants[lower]; ok {
		return c
	}
	if c, ok := canonicalByLower[lower]; ok {
		return c
	}
	return token
}

// fullTextSkills returns taxonomy terms present in the document text.
// Terms shorter than three characters are skipped: a bare "Go" or "R"
// in running prose says nothing about skills.
func fullTextSkills(text string) []string {
	words := textWordSet(text)
	lowerText := strings.ToLower(text)

	var hits []string
	for _, cat := range skillTaxonomy {
		for _, term := range cat.terms {
			if utf8.RuneCountInString(term) < 3 {
				continue
			}
			if strings.Contains(term, " ") {
				if strings.Contains(lowerText, strings.ToLower(term)) {
					hits = append(hits, term)
				}
				continue
			}
			if words[strings.ToLower(term)] {
				hits = append(hits, term)
			}
		}
	}
	return hits
}

// textWordSet lowers the text and splits it into word tokens, keeping
// the +, #, and . that appear inside skill names.
func textWordSet(text string) map[string]bool {
	set := make(map[string]bool)
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.')
	})
	for _, w := range words {
		// Only trailing dots are noise; a leading dot is part of ".net".
		w = strings.TrimRight(w, ".")
		if w != "" {
			set[w] = true
		}
	}
	return set
}

func appendSkill(list []string, seen map[string]bool, skill string) []string {
	key := strings.ToLower(skill)
	if skill == "" || seen[key] {
		return list
	}
	seen[key] = true
	return append(list, skill)
}

// categorize groups recognized skills under their taxonomy category.
// Unrecognized skills are omitted.
func categorize(skills []string) map[string][]string {
	out := map[string][]string{}
	for _, s := range skills {
		if cat, ok := categoryByLower[strings.ToLower(s)]; ok {
			out[cat] = append(out[cat], s)
		}
	}
	return out
}
