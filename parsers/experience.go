package parsers

import (
	"regexp"
	"strings"

	"cvinsight/models"
	"cvinsight/nlp"
)

// ExperienceExtractor parses the experience section into structured entries
// with bullets classified as achievements or responsibilities.
type ExperienceExtractor struct{}

// NewExperienceExtractor creates an experience extractor.
func NewExperienceExtractor() *ExperienceExtractor {
	return &ExperienceExtractor{}
}

var (
	// "Senior Software Engineer at Acme Corp"
	titleAtCompanyRegex = regexp.MustCompile(`(?m)^\s*([A-Z][A-Za-z/&. -]{2,60}?)\s+(?:at|@)\s+([A-Z][A-Za-z0-9.,&' -]{1,60})\s*$`)
	// "Senior Software Engineer, Acme Corp"
	titleCommaCompanyRegex = regexp.MustCompile(`(?m)^\s*([A-Z][A-Za-z/&. -]{2,60}?),\s+([A-Z][A-Za-z0-9.&' -]{1,60})\s*$`)
	// "Acme Corp - Senior Software Engineer"
	companyDashTitleRegex = regexp.MustCompile(`(?m)^\s*([A-Z][A-Za-z0-9.&' -]{1,60}?)\s*[—–-]\s*([A-Z][A-Za-z/&. -]{2,60})\s*$`)

	companySuffixRegex = regexp.MustCompile(`\b([A-Z][A-Za-z0-9.&' -]{1,50}\s+(?:Inc\.?|LLC|Ltd\.?|Corp\.?|Corporation|Company|Technologies|Solutions|Systems|Labs|Group|Consulting|Software|Services))\b`)

	expLocationRegex = regexp.MustCompile(`\b([A-Z][a-z]{2,20}(?:\s[A-Z][a-z]{2,20})?),\s*([A-Z]{2}|[A-Z][a-z]{2,20})\b`)

	percentOrMoneyRegex = regexp.MustCompile(`\d+(?:\.\d+)?\s*%|[$€£]\s*\d|\d+[kKmM]?\+?\s*(?:users|customers|clients|downloads)`)
)

// titleSuffixLineRegex matches a line ending in a recognized job-title
// suffix, built from the curated suffix list.
var titleSuffixLineRegex = buildTitleSuffixRegex()

func buildTitleSuffixRegex() *regexp.Regexp {
	return regexp.MustCompile(`(?m)^\s*((?:[A-Z][A-Za-z/&.-]*\s+){0,4}(?i:` + strings.Join(jobTitleSuffixes, "|") + `))\s*$`)
}

// dateRangeLineRegex flags lines that carry a date range, the usual marker of
// a new position.
var dateRangeLineRegex = regexp.MustCompile(`(?i)\b(?:(?:19|20)\d{2}|jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s*(?:(?:19|20)\d{2})?\s*(?:[-–—]|to)\s*(?:(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s*)?(?:(?:19|20)\d{2}|present|current)\b`)

// Extract parses the experience section. Entries missing both title and
// company are dropped.
func (e *ExperienceExtractor) Extract(section string, doc *nlp.Doc) []models.ExperienceEntry {
	section = strings.TrimSpace(section)
	if section == "" {
		return nil
	}

	// A position header opens a new entry once the running span already has
	// its own header or date line; a bare date line opens one only after a
	// previous date line, so a header followed by its dates stays together.
	startsNew := func(line, current string) bool {
		if jobHeaderLine(line) {
			return hasEntryMarker(current)
		}
		return dateRangeLineRegex.MatchString(line) && dateRangeLineRegex.MatchString(current)
	}

	var entries []models.ExperienceEntry
	for _, span := range splitEntries(section, startsNew) {
		entry := e.parseEntry(span, doc)
		if entry.Title != "" || entry.Company != "" {
			entries = append(entries, entry)
		}
	}
	return entries
}

func (e *ExperienceExtractor) parseEntry(span string, doc *nlp.Doc) models.ExperienceEntry {
	entry := models.ExperienceEntry{Description: strings.TrimSpace(span)}

	if m := titleAtCompanyRegex.FindStringSubmatch(span); m != nil {
		entry.Title = strings.TrimSpace(m[1])
		entry.Company = strings.TrimSpace(m[2])
	} else if m := titleCommaCompanyRegex.FindStringSubmatch(span); m != nil {
		entry.Title = strings.TrimSpace(m[1])
		entry.Company = strings.TrimSpace(m[2])
	} else {
		for _, m := range companyDashTitleRegex.FindAllStringSubmatch(span, -1) {
			// Date-range lines also fit the dash shape; skip them.
			if dateRangeLineRegex.MatchString(m[0]) {
				continue
			}
			// Either side may be the title; prefer the one ending in a
			// known title suffix.
			left, right := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
			if endsWithTitleSuffix(left) && !endsWithTitleSuffix(right) {
				entry.Title, entry.Company = left, right
			} else {
				entry.Title, entry.Company = right, left
			}
			break
		}
	}
	if entry.Title == "" {
		if m := titleSuffixLineRegex.FindStringSubmatch(span); m != nil {
			entry.Title = strings.TrimSpace(m[1])
		}
	}
	if entry.Company == "" {
		if m := companySuffixRegex.FindStringSubmatch(span); m != nil {
			entry.Company = strings.TrimSpace(m[1])
		}
	}
	for _, re := range entryDateRegexes {
		if m := re.FindStringSubmatch(span); m != nil {
			entry.Dates = strings.TrimSpace(m[0])
			break
		}
	}
	if m := expLocationRegex.FindStringSubmatch(span); m != nil {
		entry.Location = strings.TrimSpace(m[0])
	}

	if doc != nil && entry.Company == "" {
		for _, ent := range doc.EntitiesByLabel(nlp.LabelOrg) {
			if strings.Contains(span, ent.Text) {
				entry.Company = ent.Text
				break
			}
		}
	}

	e.classifyBullets(span, &entry)
	return entry
}

// classifyBullets assigns every bullet in the span to exactly one of
// achievements or responsibilities.
func (e *ExperienceExtractor) classifyBullets(span string, entry *models.ExperienceEntry) {
	for _, m := range bulletLineRegex.FindAllStringSubmatch(span, -1) {
		bullet := strings.TrimSpace(m[1])
		if bullet == "" {
			continue
		}
		if isAchievement(bullet) {
			entry.Achievements = append(entry.Achievements, bullet)
		} else {
			entry.Responsibilities = append(entry.Responsibilities, bullet)
		}
	}
}

// isAchievement reports whether a bullet carries an outcome: a percentage or
// money figure, a result-indicator phrase, or an opening action verb.
func isAchievement(bullet string) bool {
	if percentOrMoneyRegex.MatchString(bullet) {
		return true
	}
	lower := strings.ToLower(bullet)
	for _, ind := range resultIndicators {
		if strings.Contains(lower, ind) {
			return true
		}
	}
	first := strings.ToLower(strings.TrimLeft(strings.Fields(bullet)[0], "-•* "))
	for _, verb := range actionVerbs {
		if first == verb {
			return true
		}
	}
	return false
}

// jobHeaderLine reports whether a single line reads like a position header:
// "Title at Company", "Title, Company", a dash-joined pair, or a bare line
// ending in a known job-title suffix. Date-range lines also fit the dash
// shape, so they are ruled out first; the paired forms must carry a title
// suffix on one side so location lines like "Boston, MA" do not qualify.
func jobHeaderLine(line string) bool {
	if dateRangeLineRegex.MatchString(line) {
		return false
	}
	if m := titleAtCompanyRegex.FindStringSubmatch(line); m != nil {
		return endsWithTitleSuffix(strings.TrimSpace(m[1]))
	}
	if m := titleCommaCompanyRegex.FindStringSubmatch(line); m != nil {
		return endsWithTitleSuffix(strings.TrimSpace(m[1]))
	}
	if m := companyDashTitleRegex.FindStringSubmatch(line); m != nil {
		return endsWithTitleSuffix(strings.TrimSpace(m[1])) || endsWithTitleSuffix(strings.TrimSpace(m[2]))
	}
	return titleSuffixLineRegex.MatchString(line)
}

// hasEntryMarker reports whether the span already carries a date range or a
// position header line.
func hasEntryMarker(span string) bool {
	if dateRangeLineRegex.MatchString(span) {
		return true
	}
	for _, line := range strings.Split(span, "\n") {
		if jobHeaderLine(strings.TrimSpace(line)) {
			return true
		}
	}
	return false
}

func endsWithTitleSuffix(s string) bool {
	lower := strings.ToLower(s)
	for _, suf := range jobTitleSuffixes {
		if strings.HasSuffix(lower, suf) {
			return true
		}
	}
	return false
}
