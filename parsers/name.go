package parsers

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"cvinsight/nlp"
)

// NameExtractor pulls the candidate's name out of the document with a set of
// independent strategies, validates every candidate, and only answers when
// confident. It explicitly never guesses a placeholder name.
type NameExtractor struct{}

// NewNameExtractor creates a name extractor.
func NewNameExtractor() *NameExtractor {
	return &NameExtractor{}
}

type nameCandidate struct {
	Name       string
	Confidence float64
	Source     string
}

var (
	nameLabelRegex    = regexp.MustCompile(`(?im)^\s*(?:name|full name|candidate)\s*[:\-]\s*(.{3,60})$`)
	emailRegex        = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	linkedinSlugRegex = regexp.MustCompile(`(?i)linkedin\.com/in/([a-z][a-z0-9-]{2,40})`)
	emailSplitRegex   = regexp.MustCompile(`[._\-\d]+`)
)

// companyIndicators mark strings that name an organization rather than a
// person.
var companyIndicators = []string{
	"inc", "llc", "ltd", "corp", "corporation", "company", "technologies",
	"solutions", "systems", "consulting", "services", "university", "college",
	"institute", "school", "academy", "group", "agency", "bank", "gmbh",
	"limited", "enterprises", "associates",
}

// headerWords are CV section wordings that sometimes sit where a name would.
var headerWords = []string{
	"resume", "curriculum", "vitae", "cv", "profile", "summary", "objective",
	"experience", "education", "skills", "contact", "references", "projects",
	"certifications", "personal", "information",
}

// Extract returns the best validated name candidate, or "" when nothing
// passes the confidence bar.
func (e *NameExtractor) Extract(text string, doc *nlp.Doc) string {
	var candidates []nameCandidate
	candidates = append(candidates, e.labeledCandidates(text)...)
	candidates = append(candidates, e.topLineCandidates(text)...)
	candidates = append(candidates, e.personEntityCandidates(text, doc)...)
	candidates = append(candidates, e.emailCandidates(text)...)
	candidates = append(candidates, e.linkedinCandidates(text)...)
	candidates = append(candidates, e.emailAdjacentCandidates(text)...)

	// Validate, normalize and deduplicate case-insensitively, keeping the
	// highest confidence per name.
	best := map[string]nameCandidate{}
	for _, c := range candidates {
		if !ValidateName(c.Name) {
			continue
		}
		name := normalizeNameCase(c.Name)
		key := strings.ToLower(name)
		if prev, ok := best[key]; !ok || c.Confidence > prev.Confidence {
			best[key] = nameCandidate{Name: name, Confidence: c.Confidence, Source: c.Source}
		}
	}

	ranked := make([]nameCandidate, 0, len(best))
	for _, c := range best {
		ranked = append(ranked, c)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Confidence != ranked[j].Confidence {
			return ranked[i].Confidence > ranked[j].Confidence
		}
		return ranked[i].Name < ranked[j].Name
	})

	if len(ranked) == 0 {
		return ""
	}
	if ranked[0].Confidence >= 0.8 {
		return ranked[0].Name
	}
	for _, c := range ranked {
		if len(strings.Fields(c.Name)) >= 2 {
			return c.Name
		}
	}
	return ""
}

// labeledCandidates finds explicit "Name:" / "Candidate:" labels. Highest
// confidence of all strategies.
func (e *NameExtractor) labeledCandidates(text string) []nameCandidate {
	var out []nameCandidate
	for _, m := range nameLabelRegex.FindAllStringSubmatch(text, -1) {
		out = append(out, nameCandidate{Name: strings.TrimSpace(m[1]), Confidence: 0.9, Source: "label"})
	}
	return out
}

// topLineCandidates scores the first seven non-empty lines by capitalization
// pattern and position.
func (e *NameExtractor) topLineCandidates(text string) []nameCandidate {
	var out []nameCandidate
	lines := splitNonEmptyLines(text)
	if len(lines) > 7 {
		lines = lines[:7]
	}
	for i, line := range lines {
		if strings.Contains(line, "@") || digitCount(line) >= 5 {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 1 || len(words) > 4 {
			continue
		}
		conf := 0.55 - 0.04*float64(i)
		if allTitleCased(words) {
			conf += 0.25
		}
		if len(words) == 2 || len(words) == 3 {
			conf += 0.05
		}
		out = append(out, nameCandidate{Name: line, Confidence: conf, Source: "top-lines"})
	}
	return out
}

// personEntityCandidates takes PERSON entities from the NLP document, scored
// higher the closer they sit to the start of the text.
func (e *NameExtractor) personEntityCandidates(text string, doc *nlp.Doc) []nameCandidate {
	if doc == nil || len(text) == 0 {
		return nil
	}
	var out []nameCandidate
	for _, ent := range doc.EntitiesByLabel(nlp.LabelPerson) {
		pos := float64(ent.Start) / float64(len(text))
		conf := 0.8 - 0.4*pos
		out = append(out, nameCandidate{Name: ent.Text, Confidence: conf, Source: "ner"})
	}
	return out
}

// emailCandidates infers a name from the local part of the first email
// address: "john.smith@x.com" becomes "John Smith".
func (e *NameExtractor) emailCandidates(text string) []nameCandidate {
	match := emailRegex.FindString(text)
	if match == "" {
		return nil
	}
	local := strings.SplitN(match, "@", 2)[0]
	parts := emailSplitRegex.Split(local, -1)
	var words []string
	for _, p := range parts {
		if len(p) >= 2 {
			words = append(words, capitalizeWord(p))
		}
	}
	if len(words) == 0 {
		return nil
	}
	conf := 0.4
	if len(words) >= 2 {
		conf = 0.6
	}
	return []nameCandidate{{Name: strings.Join(words, " "), Confidence: conf, Source: "email"}}
}

// linkedinCandidates infers a name from a profile URL slug.
func (e *NameExtractor) linkedinCandidates(text string) []nameCandidate {
	m := linkedinSlugRegex.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	var words []string
	for _, p := range strings.Split(m[1], "-") {
		p = strings.TrimRight(p, "0123456789")
		if len(p) >= 2 {
			words = append(words, capitalizeWord(p))
		}
	}
	if len(words) == 0 {
		return nil
	}
	return []nameCandidate{{Name: strings.Join(words, " "), Confidence: 0.6, Source: "linkedin"}}
}

// emailAdjacentCandidates looks at the lines right before and after the line
// containing the email address; contact blocks usually put the name there.
func (e *NameExtractor) emailAdjacentCandidates(text string) []nameCandidate {
	lines := strings.Split(text, "\n")
	emailLine := -1
	for i, line := range lines {
		if emailRegex.MatchString(line) {
			emailLine = i
			break
		}
	}
	if emailLine < 0 {
		return nil
	}
	var out []nameCandidate
	for _, idx := range []int{emailLine - 1, emailLine + 1} {
		if idx < 0 || idx >= len(lines) {
			continue
		}
		line := strings.TrimSpace(lines[idx])
		if line == "" || strings.Contains(line, "@") || digitCount(line) >= 5 {
			continue
		}
		out = append(out, nameCandidate{Name: line, Confidence: 0.5, Source: "email-adjacent"})
	}
	return out
}

// ValidateName rejects strings that cannot be a personal name: organization
// wording, CV header words, implausible lengths, and bare common first names
// (returning "Sarah" alone would just be a confident-sounding guess).
func ValidateName(name string) bool {
	name = strings.TrimSpace(name)
	if len(name) < 3 || len(name) > 40 {
		return false
	}
	words := strings.Fields(name)
	if len(words) > 4 {
		return false
	}
	lower := strings.ToLower(name)

	for _, w := range words {
		if !isNameWord(w) {
			return false
		}
	}
	for _, indicator := range companyIndicators {
		if containsWord(lower, indicator) {
			return false
		}
	}
	for _, header := range headerWords {
		if containsWord(lower, header) {
			return false
		}
	}
	// ALL-CAPS strings and runs of three or more capitalized words look like
	// company banners, not names.
	if name == strings.ToUpper(name) && name != strings.ToLower(name) {
		return false
	}
	if len(words) >= 3 && allTitleCased(words) {
		return false
	}
	if len(words) == 1 {
		for _, common := range nlp.CommonFirstNames() {
			if lower == common {
				return false
			}
		}
	}
	return true
}

func isNameWord(w string) bool {
	if len(w) < 1 || len(w) > 20 {
		return false
	}
	for _, r := range w {
		if !unicode.IsLetter(r) && r != '\'' && r != '-' && r != '.' {
			return false
		}
	}
	return true
}

func allTitleCased(words []string) bool {
	for _, w := range words {
		r := []rune(w)
		if len(r) == 0 || !unicode.IsUpper(r[0]) {
			return false
		}
	}
	return len(words) > 0
}

func capitalizeWord(w string) string {
	if w == "" {
		return w
	}
	r := []rune(strings.ToLower(w))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// normalizeNameCase collapses internal whitespace. ALL-CAPS candidates never
// reach this point; ValidateName rejects them as banner-like.
func normalizeNameCase(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
