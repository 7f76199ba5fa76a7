package parsers

import (
	"regexp"
	"sort"
	"strings"
)

// Complex-layout handling. Some PDF exports flatten multi-column resumes
// into run-on text with letter-spaced headings and no blank lines between
// sections; the generic segmenter gets little traction on those. The
// detector below recognizes the common failure signatures and routes the
// pipeline through layout-tolerant extraction instead.

var (
	// "M O H A M M E D   Z E E S H A N" on its own line
	spacedNameRegex = regexp.MustCompile(`(?m)^\s*([A-Z](?:\s+[A-Z]){3,})\s*$`)
	// profile heading, phone and email, then education, all run together
	runOnProfileRegex = regexp.MustCompile(`(?is)\bprofile\b.{0,400}?\+?\d[\d\s().-]{6,}.{0,400}?@.{0,400}?\beducation\b`)
	// three major headings with no line breaks between them
	runOnSectionsRegex = regexp.MustCompile(`(?i)\beducation\b[^\n]{10,}\b(?:experience|employment)\b[^\n]{10,}\bskills\b`)
)

// DetectComplexFormat reports whether the text carries a layout signature
// the generic pipeline is likely to mangle.
func DetectComplexFormat(text string) bool {
	if spacedNameRegex.MatchString(text) {
		return true
	}
	if runOnProfileRegex.MatchString(text) {
		return true
	}
	if runOnSectionsRegex.MatchString(text) {
		return true
	}
	return looksMultiColumn(text)
}

// looksMultiColumn flags the short-alternating-line artifact left by
// column-wise extraction: many consecutive short lines of jagged lengths.
func looksMultiColumn(text string) bool {
	lines := splitNonEmptyLines(text)
	if len(lines) < 12 {
		return false
	}
	sample := lines
	if len(sample) > 40 {
		sample = sample[:40]
	}
	short := 0
	for _, line := range sample {
		if len(line) <= 24 {
			short++
		}
	}
	return float64(short)/float64(len(sample)) >= 0.75
}

// ComplexExtractor is the layout-tolerant extraction path. It carves
// sections out of run-on text by heading anchors and de-spaces
// letter-spaced names; field parsing is then shared with the generic
// extractors.
type ComplexExtractor struct{}

// NewComplexExtractor creates a complex-layout extractor.
func NewComplexExtractor() *ComplexExtractor {
	return &ComplexExtractor{}
}

// ExtractName recovers a name from a letter-spaced heading line. Runs
// separated by wide gaps are separate words; a single long run is split at
// its midpoint into a first and last name.
func (e *ComplexExtractor) ExtractName(text string) string {
	m := spacedNameRegex.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	var words []string
	for _, run := range regexp.MustCompile(`\s{2,}`).Split(m[1], -1) {
		letters := strings.ReplaceAll(strings.TrimSpace(run), " ", "")
		if letters != "" {
			words = append(words, letters)
		}
	}
	if len(words) == 1 && len(words[0]) > 8 {
		run := words[0]
		mid := len(run) / 2
		words = []string{run[:mid], run[mid:]}
	}
	for i, w := range words {
		words[i] = titleCaser.String(strings.ToLower(w))
	}
	name := strings.Join(words, " ")
	if ValidateName(name) {
		return name
	}
	return ""
}

// sectionAnchors are the heading words used to carve run-on text, in
// document-conventional order.
var sectionAnchors = []struct {
	key   string
	regex *regexp.Regexp
}{
	{SectionSummary, regexp.MustCompile(`(?i)\b(?:profile|summary|objective|about me)\b`)},
	{SectionEducation, regexp.MustCompile(`(?i)\beducation\b`)},
	{SectionExperience, regexp.MustCompile(`(?i)\b(?:experience|employment|work history)\b`)},
	{SectionSkills, regexp.MustCompile(`(?i)\b(?:skills|expertise|competencies)\b`)},
	{SectionProjects, regexp.MustCompile(`(?i)\bprojects\b`)},
	{SectionCertifications, regexp.MustCompile(`(?i)\bcertifications?\b`)},
	{SectionLanguages, regexp.MustCompile(`(?i)\blanguages\b`)},
}

// Sections carves run-on text into a SectionMap by heading anchors: each
// section spans from its heading to the next heading found after it.
func (e *ComplexExtractor) Sections(text string) SectionMap {
	type anchor struct {
		key        string
		start, end int
	}
	var anchors []anchor
	for _, sa := range sectionAnchors {
		if loc := sa.regex.FindStringIndex(text); loc != nil {
			anchors = append(anchors, anchor{sa.key, loc[0], loc[1]})
		}
	}
	if len(anchors) == 0 {
		return SectionMap{}
	}
	sort.Slice(anchors, func(i, j int) bool { return anchors[i].start < anchors[j].start })

	sections := SectionMap{}
	for i, a := range anchors {
		end := len(text)
		if i+1 < len(anchors) {
			end = anchors[i+1].start
		}
		content := strings.TrimSpace(text[a.end:end])
		if content != "" {
			if existing, ok := sections[a.key]; ok {
				content = existing + "\n" + content
			}
			sections[a.key] = content
		}
	}
	return sections
}

// complexPhoneRegexes widen the phone cascade for run-on text where the
// number sits flush against surrounding words.
var complexPhoneRegexes = []*regexp.Regexp{
	regexp.MustCompile(`\+\d{1,3}[\s.-]?\d{1,4}[\s.-]?\d{2,4}[\s.-]?\d{2,4}(?:[\s.-]?\d{2,4})?`),
	regexp.MustCompile(`\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`),
	regexp.MustCompile(`\d{9,12}`),
}

// ExtractPhone runs the widened phone patterns, accepting the first match
// with at least seven digits.
func (e *ComplexExtractor) ExtractPhone(text string) string {
	for _, re := range complexPhoneRegexes {
		for _, m := range re.FindAllString(text, -1) {
			if digitCount(m) >= 7 {
				return normalizePhone(m)
			}
		}
	}
	return ""
}
