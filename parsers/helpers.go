package parsers

import (
	"regexp"
	"strings"
	"sync"
)

func toLowerTrim(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

var wordBoundaryCache sync.Map // lowercased term -> *regexp.Regexp

// containsWord reports whether term occurs in text (both lowercase) on word
// boundaries, so "r" never matches inside "marketing".
func containsWord(text, term string) bool {
	if term == "" || !strings.Contains(text, term) {
		return false
	}
	re := wordBoundaryRegex(term)
	return re.MatchString(text)
}

func wordBoundaryRegex(term string) *regexp.Regexp {
	if v, ok := wordBoundaryCache.Load(term); ok {
		return v.(*regexp.Regexp)
	}
	// Terms like "c++" or "c#" end in non-word runes; \b misbehaves there,
	// so fall back to lookaround-free edge classes.
	pattern := `(^|[^a-z0-9+#.])` + regexp.QuoteMeta(term) + `($|[^a-z0-9+#])`
	re := regexp.MustCompile(pattern)
	wordBoundaryCache.Store(term, re)
	return re
}

// nonDigitRegex strips everything but digits from phone candidates.
var nonDigitRegex = regexp.MustCompile(`\D`)

func digitCount(s string) int {
	return len(nonDigitRegex.ReplaceAllString(s, ""))
}

// splitNonEmptyLines returns trimmed, non-blank lines.
func splitNonEmptyLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// clamp01 bounds a score to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// truncateRunes cuts a string to at most n runes.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
