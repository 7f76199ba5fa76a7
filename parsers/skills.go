package parsers

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"cvinsight/models"
	"cvinsight/nlp"
)

// maxSkillEntries caps the final skill list.
const maxSkillEntries = 30

// SkillsExtractor detects skills with a union of independent passes over the
// document. Later passes only ever upgrade an already-found skill's
// confidence, never downgrade it.
type SkillsExtractor struct{}

// NewSkillsExtractor creates a skills extractor.
func NewSkillsExtractor() *SkillsExtractor {
	return &SkillsExtractor{}
}

// allTaxonomyTerms is every known skill term in deterministic (longest-first)
// order, so multi-word terms match before their substrings.
var allTaxonomyTerms = buildTaxonomyTerms()

func buildTaxonomyTerms() []string {
	terms := make([]string, 0, len(skillCategories))
	for t := range skillCategories {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if len(terms[i]) != len(terms[j]) {
			return len(terms[i]) > len(terms[j])
		}
		return terms[i] < terms[j]
	})
	return terms
}

// skillSet accumulates detections. Confidence is upgrade-only; proficiency
// follows the most confident detection.
type skillSet struct {
	entries map[string]*models.SkillEntry
	order   []string
}

func newSkillSet() *skillSet {
	return &skillSet{entries: map[string]*models.SkillEntry{}}
}

func (s *skillSet) add(name, category string, proficiency, confidence float64, context string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	key := strings.ToLower(name)
	entry, ok := s.entries[key]
	if !ok {
		s.entries[key] = &models.SkillEntry{
			Name:        name,
			Category:    category,
			Proficiency: proficiency,
			Confidence:  confidence,
			Context:     context,
		}
		s.order = append(s.order, key)
		return
	}
	// A more confident detection also decides the proficiency; a less
	// confident one only ever raises confidence toward its own level.
	if confidence >= entry.Confidence {
		entry.Proficiency = proficiency
		if entry.Category == CategoryDomainSpecific && category != CategoryDomainSpecific {
			entry.Category = category
		}
	}
	if confidence > entry.Confidence {
		entry.Confidence = confidence
	}
	if context != "" && !strings.Contains(entry.Context, context) {
		entry.Context = entry.Context + "; also found in " + context
	}
}

// Extract runs every detection pass and returns the merged, ranked skill
// list.
func (e *SkillsExtractor) Extract(text string, sections SectionMap, doc *nlp.Doc) []models.SkillEntry {
	set := newSkillSet()

	e.scanSkillsSection(sections, set)
	e.scanBullets(text, set)
	e.scanProficiencyPhrases(text, set)
	e.scanGenericPhrases(text, set)
	e.scanExperienceSection(sections, set)
	e.scanCodeContext(text, set)
	e.scanEntities(text, doc, set)
	e.scanSoftSkillPhrases(text, set)

	results := make([]models.SkillEntry, 0, len(set.entries))
	for _, key := range set.order {
		entry := set.entries[key]
		entry.Name = formatSkillName(entry.Name)
		results = append(results, *entry)
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Confidence != results[j].Confidence {
			return results[i].Confidence > results[j].Confidence
		}
		if results[i].Proficiency != results[j].Proficiency {
			return results[i].Proficiency > results[j].Proficiency
		}
		return results[i].Name < results[j].Name
	})
	if len(results) > maxSkillEntries {
		results = results[:maxSkillEntries]
	}
	return results
}

var (
	parenLevelRegex  = regexp.MustCompile(`(?i)^(.{2,40}?)\s*\(\s*(expert|advanced|proficient|experienced|intermediate|working|familiar|basic|beginner|novice)\s*\)$`)
	skillItemSplit   = regexp.MustCompile(`[,;|•]`)
	labelPrefixRegex = regexp.MustCompile(`^[A-Za-z &/]{2,30}:\s*`)
)

// scanSkillsSection parses the explicit skills section item by item. This is
// the highest-confidence source; bullet items the taxonomy does not know are
// kept as domain-specific skills.
func (e *SkillsExtractor) scanSkillsSection(sections SectionMap, set *skillSet) {
	content := sections[SectionSkills]
	if content == "" {
		return
	}
	const context = "skills section"

	for _, line := range splitNonEmptyLines(content) {
		line = strings.TrimLeft(line, "-•*‣▪ \t")
		// Drop category labels like "Programming:" from "Programming: Python, Java".
		line = labelPrefixRegex.ReplaceAllString(line, "")
		for _, item := range skillItemSplit.Split(line, -1) {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			name, prof := item, 0.6
			if m := parenLevelRegex.FindStringSubmatch(item); m != nil {
				name = strings.TrimSpace(m[1])
				prof = proficiencyScores[strings.ToLower(m[2])]
			}
			lower := strings.ToLower(name)

			matched := false
			for _, term := range allTaxonomyTerms {
				if lower == term || containsWord(lower, term) {
					conf := 0.85
					if lower == term {
						conf = 0.95
					} else if strings.HasPrefix(lower, term) || strings.HasSuffix(lower, term) {
						conf = 0.9
					}
					set.add(term, skillCategories[term], prof, conf, context)
					matched = true
				}
			}
			if !matched && isPlausibleSkillPhrase(name) {
				set.add(name, CategoryDomainSpecific, prof, 0.8, context)
			}
		}
	}
}

// isPlausibleSkillPhrase filters domain-specific candidates: short noun-ish
// phrases, not sentences or contact lines.
func isPlausibleSkillPhrase(s string) bool {
	if len(s) < 2 || len(s) > 50 {
		return false
	}
	if strings.Contains(s, "@") || digitCount(s) > 4 {
		return false
	}
	words := strings.Fields(s)
	return len(words) >= 1 && len(words) <= 5
}

// scanBullets matches taxonomy terms in bullet points anywhere in the
// document, scaling confidence by nearby proficiency wording.
func (e *SkillsExtractor) scanBullets(text string, set *skillSet) {
	for _, m := range bulletLineRegex.FindAllStringSubmatch(text, -1) {
		line := m[1]
		lower := strings.ToLower(line)
		conf, prof := 0.6, 0.6
		for _, word := range proficiencyWordOrder {
			if containsWord(lower, word) {
				score := proficiencyScores[word]
				prof = score
				switch {
				case score >= 0.85:
					conf = 0.9
				case score >= 0.6:
					conf = 0.7
				default:
					conf = 0.4
				}
				break
			}
		}
		for _, term := range allTaxonomyTerms {
			if containsWord(lower, term) {
				set.add(term, skillCategories[term], prof, conf, "bullet point: "+truncateRunes(line, 60))
			}
		}
	}
}

var proficiencyPhraseRegexes = []*regexp.Regexp{
	// "Advanced Python", "proficient in SQL"
	regexp.MustCompile(`(?i)\b(expert|advanced|proficient|experienced|intermediate|familiar|basic|beginner)\s+(?:in\s+|with\s+|knowledge\s+of\s+)?([A-Za-z0-9+#./-]{1,30}(?:\s+[A-Za-z0-9+#./-]{1,30}){0,2})`),
	// "Python — intermediate", "SQL: advanced"
	regexp.MustCompile(`(?i)([A-Za-z0-9+#./-]{1,30}(?:\s+[A-Za-z0-9+#./-]{1,30}){0,2})\s*[—–:-]\s*(expert|advanced|proficient|experienced|intermediate|familiar|basic|beginner)\b`),
}

// scanProficiencyPhrases finds explicit level wording attached to a skill and
// maps it through the proficiency table.
func (e *SkillsExtractor) scanProficiencyPhrases(text string, set *skillSet) {
	for i, re := range proficiencyPhraseRegexes {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			level, phrase := m[1], m[2]
			if i == 1 {
				level, phrase = m[2], m[1]
			}
			prof := proficiencyScores[strings.ToLower(level)]
			lower := strings.ToLower(phrase)
			for _, term := range allTaxonomyTerms {
				if containsWord(lower, term) {
					set.add(term, skillCategories[term], prof, 0.8, "proficiency phrase: "+truncateRunes(strings.TrimSpace(m[0]), 60))
				}
			}
		}
	}
	// Parenthesized levels outside the skills section: "Python (expert)"
	parenInline := regexp.MustCompile(`(?i)([A-Za-z0-9+#./-]{1,30})\s*\(\s*(expert|advanced|proficient|experienced|intermediate|working|familiar|basic|beginner|novice)\s*\)`)
	for _, m := range parenInline.FindAllStringSubmatch(text, -1) {
		prof := proficiencyScores[strings.ToLower(m[2])]
		lower := strings.ToLower(m[1])
		for _, term := range allTaxonomyTerms {
			if containsWord(lower, term) || lower == term {
				set.add(term, skillCategories[term], prof, 0.85, "proficiency phrase: "+truncateRunes(strings.TrimSpace(m[0]), 60))
			}
		}
	}
}

var genericSkillPhraseRegex = regexp.MustCompile(`(?i)(?:skills?|skilled|expertise|proficiency|experience)\s+(?:in|with|of|using)\s+([^.\n]{2,120})`)

// scanGenericPhrases catches "skills in X, Y and Z" wording.
func (e *SkillsExtractor) scanGenericPhrases(text string, set *skillSet) {
	for _, m := range genericSkillPhraseRegex.FindAllStringSubmatch(text, -1) {
		for _, item := range splitListPhrase(m[1]) {
			lower := strings.ToLower(item)
			for _, term := range allTaxonomyTerms {
				if containsWord(lower, term) || lower == term {
					set.add(term, skillCategories[term], 0.6, 0.65, "skill phrase")
				}
			}
		}
	}
}

var listSepRegex = regexp.MustCompile(`(?i)\s*(?:,|;|/| and | & )\s*`)

func splitListPhrase(s string) []string {
	var out []string
	for _, item := range listSepRegex.Split(s, -1) {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// scanExperienceSection re-scans the experience section specifically; a skill
// mentioned there and in the skills section ends up more confident than
// either source alone would make it.
func (e *SkillsExtractor) scanExperienceSection(sections SectionMap, set *skillSet) {
	content := sections[SectionExperience]
	if content == "" {
		return
	}
	lower := strings.ToLower(content)
	for _, term := range allTaxonomyTerms {
		if containsWord(lower, term) {
			set.add(term, skillCategories[term], 0.6, 0.7, "experience section")
		}
	}
}

var codeContextRegexes = []*regexp.Regexp{
	// import-like phrasing
	regexp.MustCompile(`(?i)\b(?:import|require|from|using)\s+([a-z][a-z0-9_.]{1,25})`),
	// markup tags
	regexp.MustCompile(`</?([a-z][a-z0-9]{1,15})[\s>]`),
	// dotted method calls
	regexp.MustCompile(`\b([A-Za-z][A-Za-z0-9_]{1,20})\.[a-z][A-Za-z0-9_]*\(`),
}

// scanCodeContext matches code-shaped snippets against the language and web
// framework sub-lists only; "import pandas" is a skill signal, "import
// duties" is not.
func (e *SkillsExtractor) scanCodeContext(text string, set *skillSet) {
	codeTerms := map[string]string{}
	for _, t := range programmingLanguages {
		codeTerms[t] = CategoryProgramming
	}
	for _, t := range webTechnologies {
		codeTerms[t] = CategoryWeb
	}
	for _, t := range dataScienceSkills {
		codeTerms[t] = CategoryDataScience
	}
	for _, re := range codeContextRegexes {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			token := strings.ToLower(m[1])
			if category, ok := codeTerms[token]; ok {
				set.add(token, category, 0.6, 0.65, "code context")
			}
		}
	}
}

var technologyIndicators = []string{
	"software", "technology", "platform", "framework", "library", "tool",
	"developed", "built", "programming", "database", "cloud", "application",
	"system", "code", "engineering",
}

// scanEntities adds ORG/PRODUCT/GPE entities found in technology-flavored
// sentences as low-confidence candidates.
func (e *SkillsExtractor) scanEntities(text string, doc *nlp.Doc, set *skillSet) {
	if doc == nil {
		return
	}
	for _, ent := range doc.EntitiesByLabel(nlp.LabelOrg, nlp.LabelProduct, nlp.LabelGPE) {
		sentence := sentenceContaining(doc, ent.Text)
		if sentence == "" {
			continue
		}
		lowerSent := strings.ToLower(sentence)
		techContext := false
		for _, ind := range technologyIndicators {
			if strings.Contains(lowerSent, ind) {
				techContext = true
				break
			}
		}
		if !techContext {
			continue
		}
		lower := strings.ToLower(ent.Text)
		if category, ok := skillCategories[lower]; ok {
			set.add(lower, category, 0.5, 0.5, "entity mention")
		} else if isPlausibleSkillPhrase(ent.Text) {
			set.add(ent.Text, CategoryDomainSpecific, 0.5, 0.5, "entity mention")
		}
	}
}

func sentenceContaining(doc *nlp.Doc, text string) string {
	for _, s := range doc.Sents {
		if strings.Contains(s.Text, text) {
			return s.Text
		}
	}
	return ""
}

var softSkillPhraseRegexes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:strong|excellent|good|solid|exceptional|outstanding)\s+([a-z][a-z /&-]{2,40}?)\s+(?:skills|abilities)`),
	regexp.MustCompile(`(?i)\b([a-z][a-z /&-]{2,40}?)\s+skills\b`),
}

// scanSoftSkillPhrases matches "strong X skills" wording against the soft and
// business skill sub-lists.
func (e *SkillsExtractor) scanSoftSkillPhrases(text string, set *skillSet) {
	softTerms := map[string]string{}
	for _, t := range softSkills {
		softTerms[t] = CategorySoftSkills
	}
	for _, t := range businessSkills {
		softTerms[t] = CategoryBusinessSkills
	}
	for _, re := range softSkillPhraseRegexes {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			phrase := strings.ToLower(strings.TrimSpace(m[1]))
			for term, category := range softTerms {
				if phrase == term || containsWord(phrase, term) {
					set.add(term, category, 0.6, 0.7, "soft skill phrase")
				}
			}
		}
	}
}

var titleCaser = cases.Title(language.English)

// formatSkillName renders a canonical display name: short names become
// acronyms, dotted names are title-cased per segment, and longer words get
// per-word capitalization.
func formatSkillName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return name
	}
	if len(name) <= 3 {
		return strings.ToUpper(name)
	}
	if strings.Contains(name, ".") {
		parts := strings.Split(name, ".")
		for i, p := range parts {
			if p != "" {
				parts[i] = titleCaser.String(p)
			}
		}
		return strings.Join(parts, ".")
	}
	words := strings.Fields(name)
	for i, w := range words {
		if len(w) > 3 {
			words[i] = titleCaser.String(w)
		}
	}
	return strings.Join(words, " ")
}
