package parsers

import (
	"regexp"
	"sort"
	"strings"

	"cvinsight/models"
	"cvinsight/nlp"
)

// Scorer derives the quality reports from the structured fields. It never
// fails; an unavailable sentiment backend just leaves those metrics at zero.
type Scorer struct {
	provider nlp.Provider
}

// NewScorer creates a scorer.
func NewScorer(provider nlp.Provider) *Scorer {
	return &Scorer{provider: provider}
}

// scoredSectionKeys are always scored, present in the document or not; an
// absent section scores 0.0 completeness so its gap shows up downstream.
var scoredSectionKeys = []string{
	SectionSummary, SectionExperience, SectionEducation, SectionSkills,
}

// SectionScores computes per-section completeness, clarity, impact and
// relevance.
func (s *Scorer) SectionScores(sections SectionMap, skills []models.SkillEntry) map[string]models.SectionScores {
	out := make(map[string]models.SectionScores, len(scoredSectionKeys))
	for _, key := range scoredSectionKeys {
		out[key] = s.scoreSection(sections[key], skills)
	}
	for key, content := range sections {
		if _, done := out[key]; !done {
			out[key] = s.scoreSection(content, skills)
		}
	}
	return out
}

func (s *Scorer) scoreSection(content string, skills []models.SkillEntry) models.SectionScores {
	content = strings.TrimSpace(content)
	if content == "" {
		return models.SectionScores{}
	}
	scores := models.SectionScores{
		Completeness: clamp01(float64(len(content)) / 200.0),
	}

	// Objectivity as a clarity proxy: resumes read better in plain factual
	// language than in superlatives.
	if s.provider != nil {
		if sentiment, err := s.provider.Sentiment(content); err == nil {
			scores.Clarity = clamp01(1.0 - sentiment.Subjectivity)
		}
	}

	verbs := 0
	lower := strings.ToLower(content)
	for _, v := range actionVerbs {
		if containsWord(lower, v) {
			verbs++
		}
	}
	scores.Impact = clamp01(float64(digitCount(content)+verbs) / 5.0)

	if len(skills) == 0 {
		scores.Relevance = 0.5
	} else {
		mentioned := 0
		for _, skill := range skills {
			if containsWord(lower, strings.ToLower(skill.Name)) {
				mentioned++
			}
		}
		scores.Relevance = float64(mentioned) / float64(len(skills))
	}
	return scores
}

// LanguageReport computes word/sentence statistics, a Flesch-style
// readability score, and overall sentiment.
func (s *Scorer) LanguageReport(text string) models.LanguageReport {
	report := models.LanguageReport{}
	words := strings.Fields(text)
	report.WordCount = len(words)
	if report.WordCount == 0 {
		return report
	}

	report.SentenceCount = countSentences(text)
	if report.SentenceCount == 0 {
		report.SentenceCount = 1
	}
	report.AvgWordsPerSentence = float64(report.WordCount) / float64(report.SentenceCount)

	totalChars := 0
	for _, w := range words {
		totalChars += len(strings.Trim(w, ".,!?;:()"))
	}
	avgWordLen := float64(totalChars) / float64(report.WordCount)
	// Character length stands in for syllable counting; three characters
	// approximates one syllable in English prose.
	avgSyllables := avgWordLen / 3.0

	readability := 206.835 - 1.015*report.AvgWordsPerSentence - 84.6*avgSyllables
	if readability < 0 {
		readability = 0
	}
	if readability > 100 {
		readability = 100
	}
	report.ReadabilityScore = readability

	if s.provider != nil {
		if sentiment, err := s.provider.Sentiment(text); err == nil {
			report.Polarity = sentiment.Polarity
			report.Subjectivity = sentiment.Subjectivity
		}
	}
	return report
}

var sentenceEndRegex = regexp.MustCompile(`[.!?]+(?:\s|$)`)

func countSentences(text string) int {
	return len(sentenceEndRegex.FindAllString(text, -1))
}

var (
	tableCharsRegex = regexp.MustCompile("[│┃┆┇┊┋╎╏|]{2,}|[┌┐└┘├┤┬┴┼═╔╗╚╝]")
	imageMarkRegex  = regexp.MustCompile(`(?i)\[image\]|\[picture\]|\[photo\]`)
)

// maxNonASCII is the tolerated count of non-ASCII characters before the
// document counts as complex formatting.
const maxNonASCII = 10

// ATSReport runs the ten compatibility sub-checks and scales the pass count
// to a 0-10 score.
func (s *Scorer) ATSReport(text string, sections SectionMap, profile *models.Profile) models.ATSReport {
	report := models.ATSReport{
		HasEmail:             profile.Email != "",
		HasPhone:             profile.Phone != "",
		HasSkillsSection:     strings.TrimSpace(sections[SectionSkills]) != "",
		HasExperienceSection: strings.TrimSpace(sections[SectionExperience]) != "",
		HasEducationSection:  strings.TrimSpace(sections[SectionEducation]) != "",
		HasTables:            tableCharsRegex.MatchString(text),
		HasImages:            imageMarkRegex.MatchString(text),
		MissingKeywords:      []string{},
	}

	nonASCII := 0
	for _, r := range text {
		if r > 127 {
			nonASCII++
		}
	}
	report.ComplexFormatting = nonASCII > maxNonASCII

	report.MissingKeywords = s.missingKeywords(profile)

	checks := []bool{
		report.HasEmail,
		report.HasPhone,
		report.HasSkillsSection,
		report.HasExperienceSection,
		report.HasEducationSection,
		!report.HasTables,
		!report.HasImages,
		!report.ComplexFormatting,
		len(profile.SkillDetails) >= 5,
		len(report.MissingKeywords) == 0,
	}
	passed := 0
	for _, ok := range checks {
		if ok {
			passed++
		}
	}
	report.Score = float64(passed) * 10.0 / float64(len(checks))
	return report
}

// maxMissingKeywords caps the missing-keyword list.
const maxMissingKeywords = 10

// missingKeywords diffs the target job's industry skill list against the
// detected skills.
func (s *Scorer) missingKeywords(profile *models.Profile) []string {
	industry := lookupIndustry(profile.TargetJob)
	if industry == "" {
		return []string{}
	}
	have := map[string]bool{}
	for _, skill := range profile.SkillDetails {
		have[strings.ToLower(skill.Name)] = true
	}
	missing := []string{}
	for _, keyword := range industryKeySkills[industry] {
		if !have[strings.ToLower(keyword)] {
			missing = append(missing, keyword)
		}
		if len(missing) == maxMissingKeywords {
			break
		}
	}
	return missing
}

// biasTerms maps a category to its flagged vocabulary, matched on word
// boundaries.
var biasTerms = map[string][]string{
	"gendered": {
		"he", "she", "him", "her", "his", "hers", "himself", "herself",
		"businessman", "businesswoman", "salesman", "saleswoman",
		"manpower", "mankind", "housewife",
	},
	"age": {
		"young", "youthful", "energetic", "mature", "seasoned", "veteran",
		"digital native", "recent graduate", "old",
	},
	"problematic": {
		"blacklist", "whitelist", "chairman", "chairwoman", "master/slave",
		"grandfathered", "manned", "tribal",
	},
}

var biasCategoryOrder = []string{"gendered", "age", "problematic"}

// maxBiasScore caps the bias score.
const maxBiasScore = 10

// BiasReport scans for non-inclusive language by category.
func (s *Scorer) BiasReport(text string) models.BiasReport {
	report := models.BiasReport{TermsFound: map[string][]string{}}
	lower := strings.ToLower(text)
	total := 0
	for _, category := range biasCategoryOrder {
		var found []string
		for _, term := range biasTerms[category] {
			if containsWord(lower, term) {
				found = append(found, term)
				total++
			}
		}
		if len(found) > 0 {
			sort.Strings(found)
			report.TermsFound[category] = found
		}
	}
	if total > maxBiasScore {
		total = maxBiasScore
	}
	report.Score = total
	report.HasBias = total > 0
	return report
}

// maxRecommendations caps the recommendation list.
const maxRecommendations = 10

// Recommendations turns the reports into an ordered advice list: section
// gaps first, then ATS findings, then skills, then bias.
func (s *Scorer) Recommendations(profile *models.Profile) []string {
	var recs []string
	add := func(r string) {
		if len(recs) < maxRecommendations {
			recs = append(recs, r)
		}
	}

	for _, key := range scoredSectionKeys {
		scores, ok := profile.SectionScores[key]
		if !ok {
			continue
		}
		if scores.Completeness < 0.6 {
			add("Add more detail to your " + key + " section.")
		}
		if scores.Impact < 0.5 && (key == SectionExperience || key == SectionSummary) {
			add("Quantify achievements in your " + key + " section with numbers and results.")
		}
		if scores.Clarity < 0.5 {
			add("Improve the clarity of your " + key + " section with more direct, factual language.")
		}
	}

	ats := profile.ATSReport
	if !ats.HasEmail {
		add("Add an email address so recruiters can reach you.")
	}
	if !ats.HasPhone {
		add("Add a phone number to your contact details.")
	}
	if ats.HasTables || ats.ComplexFormatting {
		add("Simplify formatting; tables and special characters confuse applicant tracking systems.")
	}
	if ats.HasImages {
		add("Remove embedded images; applicant tracking systems cannot read them.")
	}

	if len(profile.SkillDetails) < 5 {
		add("List more of your skills; aim for at least five relevant ones.")
	}
	if len(ats.MissingKeywords) > 0 {
		add("Consider adding keywords relevant to your target role: " + strings.Join(ats.MissingKeywords, ", ") + ".")
	}

	if profile.BiasReport.HasBias {
		add("Replace non-inclusive terms (" + flattenBiasTerms(profile.BiasReport) + ") with neutral alternatives.")
	}

	if recs == nil {
		recs = []string{}
	}
	return recs
}

func flattenBiasTerms(report models.BiasReport) string {
	var all []string
	for _, category := range biasCategoryOrder {
		all = append(all, report.TermsFound[category]...)
	}
	const shown = 5
	if len(all) > shown {
		all = all[:shown]
	}
	return strings.Join(all, ", ")
}
