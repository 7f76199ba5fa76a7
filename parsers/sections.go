package parsers

import (
	"regexp"
	"sort"
	"strings"
)

// Canonical section keys. Synonyms in the table below normalize to these.
const (
	SectionSummary        = "summary"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
	SectionAwards         = "awards"
	SectionPublications   = "publications"
	SectionLanguages      = "languages"
	SectionInterests      = "interests"
	SectionReferences     = "references"
)

// sectionSynonym maps one recognized header wording to its canonical key.
// The table is ordered longest-first at init so specific wordings win over
// generic ones ("professional experience" before "experience").
type sectionSynonym struct {
	Key     string
	Synonym string
}

var sectionSynonyms = buildSectionSynonyms()

func buildSectionSynonyms() []sectionSynonym {
	table := map[string][]string{
		SectionSummary: {
			"summary", "professional summary", "executive summary", "career summary",
			"profile", "personal profile", "professional profile", "objective",
			"career objective", "professional objective", "about", "about me",
			"overview", "introduction", "personal statement",
		},
		SectionExperience: {
			"experience", "work experience", "professional experience", "employment",
			"employment history", "work history", "career history", "career",
			"professional background", "relevant experience", "internships",
			"internship experience", "positions held", "professional activities",
		},
		SectionEducation: {
			"education", "academic background", "academic qualifications",
			"educational background", "qualifications", "degrees", "academics",
			"academic history", "education and training", "studies",
			"educational qualifications", "schooling",
		},
		SectionSkills: {
			"skills", "technical skills", "key skills", "core skills",
			"core competencies", "competencies", "areas of expertise", "expertise",
			"technologies", "technical proficiencies", "skill set", "strengths",
			"professional skills", "tools", "tools and technologies",
		},
		SectionProjects: {
			"projects", "personal projects", "key projects", "academic projects",
			"selected projects", "portfolio", "notable projects", "side projects",
			"project experience", "relevant projects",
		},
		SectionCertifications: {
			"certifications", "certificates", "certification", "licenses",
			"licenses and certifications", "professional certifications",
			"credentials", "accreditations", "courses", "training",
			"professional development",
		},
		SectionAwards: {
			"awards", "honors", "honours", "achievements", "accomplishments",
			"recognition", "awards and honors", "distinctions", "scholarships",
			"prizes",
		},
		SectionPublications: {
			"publications", "papers", "research", "research papers",
			"published work", "articles", "conference papers", "journals",
			"presentations", "patents",
		},
		SectionLanguages: {
			"languages", "language skills", "spoken languages", "language proficiency",
			"foreign languages", "linguistic skills",
		},
		SectionInterests: {
			"interests", "hobbies", "hobbies and interests", "personal interests",
			"activities", "extracurricular activities", "extracurriculars",
			"volunteering", "volunteer experience", "community involvement",
		},
		SectionReferences: {
			"references", "referees", "references available upon request",
			"professional references",
		},
	}

	var out []sectionSynonym
	for key, synonyms := range table {
		for _, s := range synonyms {
			out = append(out, sectionSynonym{Key: key, Synonym: s})
		}
	}
	// Longer synonyms first so "work experience" outranks "experience";
	// alphabetical within the same length for deterministic order.
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].Synonym) != len(out[j].Synonym) {
			return len(out[i].Synonym) > len(out[j].Synonym)
		}
		return out[i].Synonym < out[j].Synonym
	})
	return out
}

// SectionMap maps canonical section keys to their extracted text spans. A key
// is present only when non-empty content was found.
type SectionMap map[string]string

// SectionSegmenter splits normalized resume text into named sections with a
// cascade of strategies, each tried only when the previous one found fewer
// than two sections.
type SectionSegmenter struct{}

// NewSectionSegmenter creates a segmenter.
func NewSectionSegmenter() *SectionSegmenter {
	return &SectionSegmenter{}
}

// Segment runs the strategy cascade. Earlier strategies are more precise, so
// the first one that yields at least two sections wins outright.
func (s *SectionSegmenter) Segment(text string) SectionMap {
	strategies := []func(string) SectionMap{
		s.segmentByHeaderLines,
		s.segmentByRegexSpans,
		s.segmentByLineAccumulation,
	}
	var sections SectionMap
	for _, strategy := range strategies {
		sections = strategy(text)
		if len(sections) >= 2 {
			return sections
		}
	}
	if sections == nil {
		sections = SectionMap{}
	}
	s.inferMissingSections(text, sections)
	return sections
}

// headerKey reports whether the line is a section header and which canonical
// key it maps to. Recognized shapes: ALL-CAPS short lines, Title-Case synonym
// lines, and colon-terminated labels starting with a synonym.
func headerKey(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) > 60 {
		return "", false
	}
	lower := strings.ToLower(strings.TrimSuffix(trimmed, ":"))

	allCaps := trimmed == strings.ToUpper(trimmed) && trimmed != strings.ToLower(trimmed)
	colonTerminated := strings.HasSuffix(trimmed, ":")

	for _, syn := range sectionSynonyms {
		if lower == syn.Synonym {
			if allCaps && len(trimmed) >= 3 && len(trimmed) <= 40 {
				return syn.Key, true
			}
			if colonTerminated || isTitleCased(trimmed) {
				return syn.Key, true
			}
		}
		if colonTerminated && strings.HasPrefix(lower, syn.Synonym) {
			return syn.Key, true
		}
	}
	// ALL-CAPS lines that merely contain a synonym ("WORK EXPERIENCE AND
	// TRAINING") still count when short enough.
	if allCaps && len(trimmed) >= 3 && len(trimmed) <= 30 {
		for _, syn := range sectionSynonyms {
			if strings.Contains(lower, syn.Synonym) {
				return syn.Key, true
			}
		}
	}
	return "", false
}

func isTitleCased(line string) bool {
	words := strings.Fields(line)
	if len(words) == 0 || len(words) > 5 {
		return false
	}
	for _, w := range words {
		r := []rune(w)
		if r[0] < 'A' || r[0] > 'Z' {
			return false
		}
	}
	return true
}

// segmentByHeaderLines scans line by line: content between two recognized
// header lines belongs to the first header's key. Line-index based, so spans
// never overlap.
func (s *SectionSegmenter) segmentByHeaderLines(text string) SectionMap {
	lines := strings.Split(text, "\n")
	sections := SectionMap{}

	current := ""
	var buf []string
	flush := func() {
		if current == "" {
			return
		}
		content := strings.TrimSpace(strings.Join(buf, "\n"))
		if content != "" {
			if prev, ok := sections[current]; ok {
				content = prev + "\n" + content
			}
			sections[current] = content
		}
	}

	for _, line := range lines {
		if key, ok := headerKey(line); ok {
			flush()
			current = key
			buf = buf[:0]
			continue
		}
		if current != "" {
			buf = append(buf, line)
		}
	}
	flush()
	return sections
}

var headerLineRegex = buildHeaderLineRegex()

func buildHeaderLineRegex() *regexp.Regexp {
	alternatives := make([]string, 0, len(sectionSynonyms))
	for _, syn := range sectionSynonyms {
		alternatives = append(alternatives, regexp.QuoteMeta(syn.Synonym))
	}
	// A synonym alone on a line, optionally colon-terminated.
	pattern := `(?im)^[ \t]*(` + strings.Join(alternatives, "|") + `)[ \t]*:?[ \t]*$`
	return regexp.MustCompile(pattern)
}

// segmentByRegexSpans finds every header match in the whole text and takes the
// span between consecutive matches as the first header's content.
func (s *SectionSegmenter) segmentByRegexSpans(text string) SectionMap {
	matches := headerLineRegex.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return SectionMap{}
	}

	sections := SectionMap{}
	for i, m := range matches {
		synonym := strings.ToLower(text[m[2]:m[3]])
		key := canonicalKeyFor(synonym)
		if key == "" {
			continue
		}
		start := m[1]
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		content := strings.TrimSpace(text[start:end])
		if content == "" {
			continue
		}
		if prev, ok := sections[key]; ok {
			content = prev + "\n" + content
		}
		sections[key] = content
	}
	return sections
}

func canonicalKeyFor(synonym string) string {
	synonym = strings.ToLower(strings.TrimSpace(synonym))
	for _, syn := range sectionSynonyms {
		if syn.Synonym == synonym {
			return syn.Key
		}
	}
	return ""
}

// segmentByLineAccumulation is the loose strategy: any line that fuzzily
// matches a synonym and looks like a header flips the current section, every
// other line is appended to the current buffer.
func (s *SectionSegmenter) segmentByLineAccumulation(text string) SectionMap {
	sections := SectionMap{}
	current := ""
	var buf []string

	flush := func() {
		if current == "" {
			return
		}
		content := strings.TrimSpace(strings.Join(buf, "\n"))
		if content != "" {
			if prev, ok := sections[current]; ok {
				content = prev + "\n" + content
			}
			sections[current] = content
		}
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lower := strings.ToLower(trimmed)
		matched := ""
		if len(trimmed) < 50 && looksLikeHeaderShape(trimmed) {
			for _, syn := range sectionSynonyms {
				if strings.Contains(lower, syn.Synonym) {
					matched = syn.Key
					break
				}
			}
		}
		if matched != "" {
			flush()
			current = matched
			buf = buf[:0]
			continue
		}
		if current != "" {
			buf = append(buf, trimmed)
		}
	}
	flush()
	return sections
}

func looksLikeHeaderShape(line string) bool {
	r := []rune(line)
	if len(r) == 0 {
		return false
	}
	if line == strings.ToUpper(line) && line != strings.ToLower(line) {
		return true
	}
	return r[0] >= 'A' && r[0] <= 'Z'
}

var (
	bulletLineRegex      = regexp.MustCompile(`(?m)^\s*(?:[-•*‣▪]|\d+\.)\s+(.+)$`)
	degreeKeywordRegex   = regexp.MustCompile(`(?i)\b(bachelor|master|phd|ph\.d|doctorate|diploma|b\.?s\.?c?|m\.?s\.?c?|mba|university|college|institute)\b`)
	skillListLineRegex   = regexp.MustCompile(`(?m)^.*(?:,\s*\S+){2,}.*$`)
	technologyWordRegex  = regexp.MustCompile(`(?i)\b(python|java|javascript|sql|aws|docker|react|excel|linux|git)\b`)
)

// inferMissingSections synthesizes skills and education sections from content
// patterns when no header for them was ever found.
func (s *SectionSegmenter) inferMissingSections(text string, sections SectionMap) {
	if _, ok := sections[SectionSkills]; !ok {
		var found []string
		for _, m := range bulletLineRegex.FindAllStringSubmatch(text, -1) {
			if technologyWordRegex.MatchString(m[1]) && len(m[1]) < 120 {
				found = append(found, m[1])
			}
		}
		if len(found) == 0 {
			for _, line := range skillListLineRegex.FindAllString(text, -1) {
				if technologyWordRegex.MatchString(line) && len(line) < 200 {
					found = append(found, strings.TrimSpace(line))
				}
			}
		}
		if len(found) > 0 {
			sections[SectionSkills] = strings.Join(found, "\n")
		}
	}

	if _, ok := sections[SectionEducation]; !ok {
		var found []string
		for _, line := range strings.Split(text, "\n") {
			if degreeKeywordRegex.MatchString(line) && len(strings.TrimSpace(line)) > 10 {
				found = append(found, strings.TrimSpace(line))
			}
		}
		if len(found) > 0 {
			sections[SectionEducation] = strings.Join(found, "\n")
		}
	}
}

// GetSectionContent returns the section text with sensitive contact details
// scrubbed. Scrubbing happens at the point of consumption, not at storage, so
// the raw spans stay intact for contact extraction.
func GetSectionContent(sections SectionMap, key string) string {
	content, ok := sections[key]
	if !ok {
		return ""
	}
	return scrubSensitiveInfo(content)
}

var sensitivePatterns = []*regexp.Regexp{
	// North American formats
	regexp.MustCompile(`\b(?:\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`),
	// International with country code
	regexp.MustCompile(`\+\d{1,3}[-.\s]?\d[\d\s.-]{6,13}\d`),
	// Long bare digit runs
	regexp.MustCompile(`\b\d{10,12}\b`),
	// UAE mobile formats
	regexp.MustCompile(`\b(?:\+?971|0)[-.\s]?(?:50|52|54|55|56|58)\d{7}\b`),
	// Prefixed numbers
	regexp.MustCompile(`(?i)(?:tel|phone|mobile|cell|contact)(?::|number|#|at)?[-.\s]*\+?\d[-.\s\d]{7,}`),
	// Email addresses
	regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
}

var scrubEdgeRegex = regexp.MustCompile(`^[,.\s:;-]+|[,.\s:;-]+$`)

// scrubSensitiveInfo removes phone numbers and email addresses from text that
// will be displayed or fed to summary generation.
func scrubSensitiveInfo(text string) string {
	if text == "" {
		return ""
	}
	for _, p := range sensitivePatterns {
		text = p.ReplaceAllString(text, "")
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = whitespaceRunInline.ReplaceAllString(line, " ")
		lines[i] = scrubEdgeRegex.ReplaceAllString(strings.TrimSpace(line), "")
	}
	var kept []string
	for _, line := range lines {
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

var whitespaceRunInline = regexp.MustCompile(`[ \t]+`)
