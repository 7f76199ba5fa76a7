package parsers

import (
	"regexp"
	"strings"

	"cvinsight/models"
	"cvinsight/nlp"
)

// EducationExtractor parses the education section into structured entries.
type EducationExtractor struct{}

// NewEducationExtractor creates an education extractor.
func NewEducationExtractor() *EducationExtractor {
	return &EducationExtractor{}
}

// degreePatterns are tried in priority order; the first match per entry wins.
// Full spelled-out degrees come before abbreviation forms.
var degreePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b((?:doctor|doctorate)\s+(?:of|in)\s+[a-z][a-z &-]{2,60})`),
	regexp.MustCompile(`(?i)\b(master(?:'s)?\s+(?:of|in|degree\s+in)\s+[a-z][a-z &-]{2,60})`),
	regexp.MustCompile(`(?i)\b(bachelor(?:'s)?\s+(?:of|in|degree\s+in)\s+[a-z][a-z &-]{2,60})`),
	regexp.MustCompile(`(?i)\b(associate(?:'s)?\s+(?:of|in|degree\s+in)\s+[a-z][a-z &-]{2,60})`),
	// The word boundary sits before the optional trailing period; a boundary
	// after it can never match "B.S. " and would silently drop the "in X"
	// field capture.
	regexp.MustCompile(`(?i)\b(ph\.?\s?d\b\.?|doctorate\b)(?:\s+in\s+([a-z][a-z &-]{2,60}))?`),
	regexp.MustCompile(`(?i)\b(m\.?b\.?a\b\.?)`),
	regexp.MustCompile(`(?i)\b(m\.?\s?(?:sc?|a|eng|tech|s)\b\.?)(?:\s+in\s+([a-z][a-z &-]{2,60}))?`),
	regexp.MustCompile(`(?i)\b(b\.?\s?(?:sc?|a|eng|tech|e|s)\b\.?)(?:\s+in\s+([a-z][a-z &-]{2,60}))?`),
	regexp.MustCompile(`(?i)\b(high school diploma|secondary school|ged)\b`),
}

// degreeExpansions normalizes abbreviation forms to full degree names.
var degreeExpansions = map[string]string{
	"bs":    "Bachelor of Science",
	"bsc":   "Bachelor of Science",
	"ba":    "Bachelor of Arts",
	"be":    "Bachelor of Engineering",
	"beng":  "Bachelor of Engineering",
	"btech": "Bachelor of Technology",
	"ms":    "Master of Science",
	"msc":   "Master of Science",
	"ma":    "Master of Arts",
	"meng":  "Master of Engineering",
	"mtech": "Master of Technology",
	"mba":   "Master of Business Administration",
	"phd":   "Doctor of Philosophy",
	"ged":   "GED",
}

// Separators stay within one line so a degree line followed by an
// institution line does not merge into a single bogus match.
var institutionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b((?:University|Institute|College|Academy)[ \t]+of[ \t]+[A-Z][A-Za-z .&'-]{2,50})`),
	regexp.MustCompile(`\b([A-Z][A-Za-z.&'-]*(?:[ \t]+[A-Z&][A-Za-z.&'-]*){0,4}[ \t]+(?:University|College|Institute|School|Academy|Polytechnic))\b`),
}

var (
	// Month-qualified ranges first so "June 2020 - Present" is not clipped
	// to its bare-year suffix.
	entryDateRegexes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b((?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+(?:19|20)\d{2})\s*(?:[-–—]|to)\s*((?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+(?:19|20)\d{2}|present|current)\b`),
		regexp.MustCompile(`(?i)\b((?:19|20)\d{2})\s*(?:[-–—]|to)\s*((?:19|20)\d{2}|present|current|ongoing)\b`),
		regexp.MustCompile(`(?i)\b(?:graduated|class of|expected)[:\s]+((?:19|20)\d{2})\b`),
		regexp.MustCompile(`\b((?:19|20)\d{2})\b`),
	}
	gpaRegexes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bgpa[:\s]*([0-4](?:\.\d{1,2})?(?:\s*/\s*[45](?:\.0)?)?)`),
		regexp.MustCompile(`\b([0-4]\.\d{1,2})\s*/\s*4(?:\.0)?\b`),
		regexp.MustCompile(`(?i)\b(first class|second class|distinction|cum laude|magna cum laude|summa cum laude)\b`),
	}
	eduLocationRegex = regexp.MustCompile(`\b([A-Z][a-z]{2,20}(?:\s[A-Z][a-z]{2,20})?),\s*([A-Z]{2}|[A-Z][a-z]{2,20})\b`)
)

// eduKeywordRegex marks lines that could introduce an education entry. A new
// span opens only when the running span already carries one of these, so a
// degree line followed by its institution line stays a single entry.
var eduKeywordRegex = regexp.MustCompile(`(?i)\b(?:bachelor|master|doctor|associate|diploma|ph\.?d|m\.?b\.?a|degree)\b`)

// Extract parses the education section. Entries missing both degree and
// institution are dropped.
func (e *EducationExtractor) Extract(section string, doc *nlp.Doc) []models.EducationEntry {
	section = strings.TrimSpace(section)
	if section == "" {
		return nil
	}

	startsNew := func(line, current string) bool {
		return eduKeywordRegex.MatchString(line) && eduKeywordRegex.MatchString(current)
	}

	var entries []models.EducationEntry
	for _, span := range splitEntries(section, startsNew) {
		entry := e.parseEntry(span, doc)
		if entry.Degree != "" || entry.Institution != "" {
			entries = append(entries, entry)
		}
	}
	return entries
}

func (e *EducationExtractor) parseEntry(span string, doc *nlp.Doc) models.EducationEntry {
	entry := models.EducationEntry{Description: strings.TrimSpace(span)}

	for _, re := range degreePatterns {
		m := re.FindStringSubmatch(span)
		if m == nil {
			continue
		}
		entry.Degree = normalizeDegree(m)
		break
	}
	for _, re := range institutionPatterns {
		if m := re.FindStringSubmatch(span); m != nil {
			entry.Institution = strings.TrimSpace(m[1])
			break
		}
	}
	for _, re := range entryDateRegexes {
		if m := re.FindStringSubmatch(span); m != nil {
			entry.Dates = strings.TrimSpace(m[0])
			break
		}
	}
	for _, re := range gpaRegexes {
		if m := re.FindStringSubmatch(span); m != nil {
			entry.GPA = strings.TrimSpace(m[1])
			break
		}
	}
	if m := eduLocationRegex.FindStringSubmatch(span); m != nil {
		// A "City, Country" match that is really the institution line is
		// still the best location guess we have.
		entry.Location = strings.TrimSpace(m[0])
	}

	// Entity recognition fills gaps the pattern tables missed.
	if doc != nil {
		if entry.Institution == "" {
			for _, ent := range doc.EntitiesByLabel(nlp.LabelOrg) {
				if strings.Contains(span, ent.Text) {
					entry.Institution = ent.Text
					break
				}
			}
		}
		if entry.Location == "" {
			for _, ent := range doc.EntitiesByLabel(nlp.LabelGPE) {
				if strings.Contains(span, ent.Text) {
					entry.Location = ent.Text
					break
				}
			}
		}
	}
	return entry
}

// normalizeDegree expands abbreviation matches ("B.S." with an optional
// "in X" capture) to full degree names.
func normalizeDegree(m []string) string {
	head := strings.Trim(m[1], " ,&-")
	key := strings.ToLower(strings.NewReplacer(".", "", " ", "").Replace(head))
	if full, ok := degreeExpansions[key]; ok {
		head = full
	} else if head == strings.ToLower(head) || head == strings.ToUpper(head) {
		head = titleCaser.String(strings.ToLower(head))
	}
	if len(m) > 2 {
		if field := strings.Trim(m[2], " ,&-"); field != "" {
			return head + " in " + titleCaser.String(field)
		}
	}
	return head
}

// splitEntries segments a section into entry spans. The startsNew predicate
// sees each line and the accumulated span so far; if predicate-based
// splitting produces fewer than two entries, blank-line separated chunks are
// used; failing that the whole section is one entry.
func splitEntries(section string, startsNew func(line, current string) bool) []string {
	lines := strings.Split(section, "\n")
	var spans []string
	var current []string
	flush := func() {
		chunk := strings.TrimSpace(strings.Join(current, "\n"))
		if chunk != "" {
			spans = append(spans, chunk)
		}
		current = current[:0]
	}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && len(current) > 0 && startsNew(trimmed, strings.Join(current, "\n")) {
			flush()
		}
		current = append(current, line)
	}
	flush()
	if len(spans) >= 2 {
		return spans
	}

	chunks := splitBlankSeparated(section)
	if len(chunks) >= 2 {
		return chunks
	}
	return []string{section}
}

var blankLineSplit = regexp.MustCompile(`\n\s*\n`)

func splitBlankSeparated(s string) []string {
	var out []string
	for _, chunk := range blankLineSplit.Split(s, -1) {
		chunk = strings.TrimSpace(chunk)
		if chunk != "" {
			out = append(out, chunk)
		}
	}
	return out
}
