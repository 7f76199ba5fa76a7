package parsers

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"cvinsight/models"
)

// maxSummaryLength caps summaries at a sentence boundary.
const maxSummaryLength = 500

// SummaryExtractor produces the target job and the professional summary,
// synthesizing a summary from the rest of the profile when the document has
// none.
type SummaryExtractor struct{}

// NewSummaryExtractor creates a summary extractor.
func NewSummaryExtractor() *SummaryExtractor {
	return &SummaryExtractor{}
}

var seekingPhraseRegexes = []*regexp.Regexp{
	// "Seeking a Senior Software Engineer position"
	regexp.MustCompile(`(?i)(?:seeking|looking for|applying for|pursuing|interested in)\s+(?:a|an|the)?\s*([A-Za-z][A-Za-z/ ]{2,60}?)\s+(?:position|role|job|opportunity)`),
	// "seeking a position as Data Analyst"
	regexp.MustCompile(`(?i)(?:seeking|looking for)\s+(?:a|an)?\s*(?:position|role|job|opportunity)\s+(?:as|in)\s+(?:a|an)?\s*([A-Za-z][A-Za-z/ ]{2,60})`),
	// "Objective: Software Engineer"
	regexp.MustCompile(`(?i)(?:objective|target role|desired position)\s*:\s*([A-Za-z][A-Za-z/ ]{2,60})`),
}

// ExtractTargetJob finds the role the candidate is after, checking the
// summary section first and then the document head.
func (e *SummaryExtractor) ExtractTargetJob(text string, sections SectionMap) string {
	scopes := []string{}
	if s := sections[SectionSummary]; s != "" {
		scopes = append(scopes, s)
	}
	scopes = append(scopes, documentHead(text, 1500))

	for _, scope := range scopes {
		for _, re := range seekingPhraseRegexes {
			if m := re.FindStringSubmatch(scope); m != nil {
				candidate := strings.TrimSpace(m[1])
				if job := trimToTitleSuffix(candidate); job != "" {
					return job
				}
				if candidate != "" {
					return titleCaser.String(candidate)
				}
			}
		}
	}

	// Curated-list fallback: an exact title mention anywhere near the top.
	for _, scope := range scopes {
		lower := strings.ToLower(scope)
		for _, industry := range industryOrder {
			for _, title := range jobTitlesByIndustry[industry] {
				if containsWord(lower, title) {
					return titleCaser.String(title)
				}
			}
		}
	}
	return ""
}

var industryOrder = []string{"Technology", "Business", "Healthcare", "Education"}

// trimToTitleSuffix truncates a phrase at its last recognized job-title
// suffix, dropping trailing filler words.
func trimToTitleSuffix(phrase string) string {
	words := strings.Fields(phrase)
	for i := len(words) - 1; i >= 0; i-- {
		w := strings.ToLower(words[i])
		for _, suf := range jobTitleSuffixes {
			if w == suf {
				return strings.Join(words[:i+1], " ")
			}
		}
	}
	return ""
}

// ExtractSummary cascades: explicit summary section, then the first
// substantial paragraph, then a summary synthesized from the profile fields.
func (e *SummaryExtractor) ExtractSummary(text string, sections SectionMap, profile *models.Profile) string {
	if s := sections[SectionSummary]; strings.TrimSpace(s) != "" {
		return finishSummary(scrubSensitiveInfo(s))
	}
	if p := firstSubstantialParagraph(text); p != "" {
		return finishSummary(scrubSensitiveInfo(p))
	}
	return finishSummary(e.generateSummary(text, profile))
}

var (
	headerishLineRegex = regexp.MustCompile(`^[A-Z][A-Z\s]{2,40}$`)
	contactishRegex    = regexp.MustCompile(`(?i)@|\bphone\b|\bmobile\b|linkedin\.com|github\.com|\d{3}[-.\s]\d{3}`)
)

// firstSubstantialParagraph returns the first early paragraph that is prose,
// not a header or a contact line.
func firstSubstantialParagraph(text string) string {
	for i, para := range splitBlankSeparated(documentHead(text, 3000)) {
		if i > 5 {
			break
		}
		flat := whitespaceRunInline.ReplaceAllString(strings.ReplaceAll(para, "\n", " "), " ")
		if len(flat) < 100 || len(strings.Fields(flat)) < 15 {
			continue
		}
		if headerishLineRegex.MatchString(strings.TrimSpace(para)) || contactishRegex.MatchString(flat) {
			continue
		}
		return flat
	}
	return ""
}

var (
	yearsOfExperienceRegex = regexp.MustCompile(`(?i)\b(\d{1,2})\+?\s*years?\s+(?:of\s+)?experience\b`)
	anyYearRegex           = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

// maxCareerYears caps inferred experience; date-range arithmetic on a noisy
// document can otherwise claim a century-long career.
const maxCareerYears = 40

// generateSummary builds a template summary from whatever the other
// extractors found.
func (e *SummaryExtractor) generateSummary(text string, profile *models.Profile) string {
	var parts []string

	subject := "Professional"
	if len(profile.Experience) > 0 && profile.Experience[0].Title != "" {
		subject = profile.Experience[0].Title
	} else if profile.TargetJob != "" {
		subject = profile.TargetJob
	}

	years := inferYearsOfExperience(text)
	industry := lookupIndustry(profile.TargetJob)
	if industry == "" && len(profile.Experience) > 0 {
		industry = lookupIndustry(profile.Experience[0].Title)
	}

	lead := subject
	if years > 0 {
		lead = fmt.Sprintf("%s with %d years of experience", subject, years)
	}
	if industry != "" {
		lead += " in the " + strings.ToLower(industry) + " industry"
	}
	parts = append(parts, lead+".")

	if degree := highestDegree(profile.Education); degree != "" {
		parts = append(parts, "Holds a "+degree+".")
	}
	if skills := keySkills(profile.SkillDetails); len(skills) > 0 {
		parts = append(parts, "Skilled in "+joinWithAnd(skills)+".")
	}
	return strings.Join(parts, " ")
}

// inferYearsOfExperience prefers an explicit "N years of experience" claim,
// falling back to the span between the earliest and latest year mentioned.
func inferYearsOfExperience(text string) int {
	if m := yearsOfExperienceRegex.FindStringSubmatch(text); m != nil {
		n := 0
		fmt.Sscanf(m[1], "%d", &n)
		if n > maxCareerYears {
			n = maxCareerYears
		}
		return n
	}
	years := anyYearRegex.FindAllString(text, -1)
	if len(years) < 2 {
		return 0
	}
	min, max := years[0], years[0]
	for _, y := range years[1:] {
		if y < min {
			min = y
		}
		if y > max {
			max = y
		}
	}
	var lo, hi int
	fmt.Sscanf(min, "%d", &lo)
	fmt.Sscanf(max, "%d", &hi)
	span := hi - lo
	if span < 0 {
		span = 0
	}
	if span > maxCareerYears {
		span = maxCareerYears
	}
	return span
}

// degreeLevels orders degree keywords from highest to lowest.
var degreeLevels = []struct {
	keyword string
	display string
}{
	{"doctor", "doctorate"},
	{"ph.d", "doctorate"},
	{"phd", "doctorate"},
	{"master", "master's degree"},
	{"mba", "master's degree"},
	{"bachelor", "bachelor's degree"},
	{"associate", "associate degree"},
	{"diploma", "diploma"},
}

func highestDegree(education []models.EducationEntry) string {
	for _, level := range degreeLevels {
		for _, entry := range education {
			if strings.Contains(strings.ToLower(entry.Degree), level.keyword) {
				return level.display
			}
		}
	}
	return ""
}

// keySkills picks up to five skills: the three most confident technical ones
// plus the two most confident soft or business ones.
func keySkills(skills []models.SkillEntry) []string {
	sorted := make([]models.SkillEntry, len(skills))
	copy(sorted, skills)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Confidence > sorted[j].Confidence })

	var technical, soft []string
	for _, s := range sorted {
		switch s.Category {
		case CategorySoftSkills, CategoryBusinessSkills:
			if len(soft) < 2 {
				soft = append(soft, s.Name)
			}
		default:
			if len(technical) < 3 {
				technical = append(technical, s.Name)
			}
		}
	}
	return append(technical, soft...)
}

func joinWithAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
}

// finishSummary applies the final formatting contract: single-spaced,
// sentence-boundary truncation at the length cap, leading capital, trailing
// period.
func finishSummary(s string) string {
	s = whitespaceRunInline.ReplaceAllString(strings.ReplaceAll(s, "\n", " "), " ")
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if len(s) > maxSummaryLength {
		cut := s[:maxSummaryLength]
		if idx := strings.LastIndexAny(cut, ".!?"); idx > maxSummaryLength/2 {
			cut = cut[:idx+1]
		}
		s = strings.TrimSpace(cut)
	}
	runes := []rune(s)
	runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
	s = string(runes)
	if !strings.HasSuffix(s, ".") && !strings.HasSuffix(s, "!") && !strings.HasSuffix(s, "?") {
		s += "."
	}
	return s
}

// documentHead returns the first n bytes of text, cut at a line boundary.
func documentHead(text string, n int) string {
	if len(text) <= n {
		return text
	}
	head := text[:n]
	if idx := strings.LastIndexByte(head, '\n'); idx > n/2 {
		head = head[:idx]
	}
	return head
}
