package parsers

import (
	"fmt"
	"regexp"
	"strings"
)

// ContactInfo is the result of the contact extraction pass.
type ContactInfo struct {
	Email    string
	Phone    string
	Location string
}

// ContactExtractor finds email, phone and location with regex cascades.
type ContactExtractor struct{}

// NewContactExtractor creates a contact extractor.
func NewContactExtractor() *ContactExtractor {
	return &ContactExtractor{}
}

// contextPhoneRegexes anchor on wording like "Phone:" near a digit run; a hit
// here wins immediately over the format-specific patterns.
var contextPhoneRegexes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:phone|mobile|tel|cell|contact)(?:\s*(?:number|no\.?|#))?\s*[:\-]?\s*(\+?\d[\d\s().\-]{6,18}\d)`),
	regexp.MustCompile(`(?i)(?:call|reach)(?:\s+me)?\s+(?:at|on)\s+(\+?\d[\d\s().\-]{6,18}\d)`),
}

// formatPhoneRegexes are tried in order; the first match with at least seven
// digits wins.
var formatPhoneRegexes = []*regexp.Regexp{
	// NANP: (123) 456-7890, 123-456-7890, +1 123 456 7890
	regexp.MustCompile(`(?:\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`),
	// E.164-ish international
	regexp.MustCompile(`\+\d{1,3}[-.\s]?\d{1,4}[-.\s]?\d{2,4}[-.\s]?\d{2,6}`),
	// UAE mobile prefixes
	regexp.MustCompile(`\b(?:\+?971|0)[-.\s]?(?:50|52|54|55|56|58)[-.\s]?\d{3}[-.\s]?\d{4}\b`),
	// Bare digit runs grouped by separators
	regexp.MustCompile(`\b\d{2,4}[-.\s]\d{2,4}[-.\s]\d{2,5}\b`),
	regexp.MustCompile(`\b\d{9,12}\b`),
}

var locationPhraseRegexes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:based|located|residing|living)\s+in\s+([A-Z][A-Za-z .'-]+(?:,\s*[A-Z][A-Za-z .'-]+)?)`),
	regexp.MustCompile(`(?im)^\s*(?:location|address|city)\s*[:\-]\s*(.{2,60})$`),
	// City, Country shape on its own line
	regexp.MustCompile(`(?m)^([A-Z][a-z]+(?:[ -][A-Z][a-z]+)*,\s*[A-Z][A-Za-z .]+)$`),
}

// knownLocations is the last-resort gazetteer.
var knownLocations = []string{
	"Dubai", "Abu Dhabi", "Sharjah", "United Arab Emirates", "New York",
	"London", "Singapore", "Hong Kong", "Tokyo", "San Francisco",
	"Los Angeles", "Chicago", "Boston", "Seattle", "Toronto", "Vancouver",
	"Sydney", "Melbourne", "Berlin", "Paris", "Madrid", "Barcelona", "Rome",
	"Amsterdam", "Zurich", "Vienna", "Mumbai", "Delhi", "Bangalore",
	"Chennai", "Hyderabad", "Beijing", "Shanghai", "Seoul", "Cairo",
	"Johannesburg", "Nairobi", "Lagos", "Mexico City", "Buenos Aires",
}

// Extract runs all three cascades over the full text.
func (e *ContactExtractor) Extract(text string) ContactInfo {
	return ContactInfo{
		Email:    e.extractEmail(text),
		Phone:    e.extractPhone(text),
		Location: e.extractLocation(text),
	}
}

func (e *ContactExtractor) extractEmail(text string) string {
	return emailRegex.FindString(text)
}

func (e *ContactExtractor) extractPhone(text string) string {
	for _, re := range contextPhoneRegexes {
		if m := re.FindStringSubmatch(text); m != nil {
			return normalizePhone(m[1])
		}
	}
	for _, re := range formatPhoneRegexes {
		for _, candidate := range re.FindAllString(text, -1) {
			if digitCount(candidate) >= 7 {
				return normalizePhone(candidate)
			}
		}
	}
	return ""
}

func (e *ContactExtractor) extractLocation(text string) string {
	for _, re := range locationPhraseRegexes {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	for _, city := range knownLocations {
		if !containsWord(strings.ToLower(text), strings.ToLower(city)) {
			continue
		}
		// Expand to the enclosing sentence for display, falling back to the
		// bare city when the sentence is unwieldy.
		sentenceRe := regexp.MustCompile(`[^.!?\n]*\b` + regexp.QuoteMeta(city) + `\b[^.!?\n]*`)
		if m := sentenceRe.FindString(text); m != "" {
			m = strings.TrimSpace(whitespaceRun.ReplaceAllString(m, " "))
			if len(m) <= 50 {
				return m
			}
		}
		return city
	}
	return ""
}

// normalizePhone standardizes NANP numbers and tidies whitespace elsewhere.
func normalizePhone(phone string) string {
	digits := nonDigitRegex.ReplaceAllString(phone, "")
	switch {
	case len(digits) == 10:
		return fmt.Sprintf("(%s) %s-%s", digits[0:3], digits[3:6], digits[6:10])
	case len(digits) == 11 && digits[0] == '1':
		return fmt.Sprintf("+1 (%s) %s-%s", digits[1:4], digits[4:7], digits[7:11])
	default:
		return strings.TrimSpace(whitespaceRun.ReplaceAllString(phone, " "))
	}
}
