package nlp

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// HeuristicProvider is a deterministic, dependency-free Provider built from
// rule tables. It exists so the pipeline runs without an external model
// service and so tests get reproducible output. Accuracy is intentionally
// modest; callers that have a real NLP backend should inject it instead.
type HeuristicProvider struct {
	sentenceSplit *regexp.Regexp
	tokenSplit    *regexp.Regexp
}

// NewHeuristicProvider creates a ready-to-use heuristic provider.
func NewHeuristicProvider() *HeuristicProvider {
	return &HeuristicProvider{
		sentenceSplit: regexp.MustCompile(`(?m)[.!?]+(?:\s+|$)|\n{2,}`),
		tokenSplit:    regexp.MustCompile(`[^\s,;()\[\]{}"]+`),
	}
}

var orgSuffixes = []string{
	"inc", "inc.", "llc", "ltd", "ltd.", "corp", "corp.", "corporation",
	"company", "co.", "gmbh", "university", "college", "institute", "school",
	"academy", "technologies", "solutions", "systems", "labs", "group",
	"consulting", "bank", "agency",
}

var knownCities = []string{
	"dubai", "abu dhabi", "sharjah", "new york", "london", "singapore",
	"hong kong", "tokyo", "san francisco", "los angeles", "chicago", "boston",
	"seattle", "toronto", "vancouver", "sydney", "melbourne", "berlin",
	"paris", "madrid", "barcelona", "rome", "amsterdam", "zurich", "vienna",
	"mumbai", "delhi", "bangalore", "chennai", "hyderabad", "beijing",
	"shanghai", "seoul", "cairo", "johannesburg", "nairobi", "lagos",
}

var commonFirstNames = []string{
	"james", "john", "robert", "michael", "david", "william", "richard",
	"joseph", "thomas", "mary", "patricia", "jennifer", "linda", "elizabeth",
	"sarah", "susan", "jessica", "karen", "emily", "ahmed", "mohammed",
	"muhammad", "ali", "omar", "fatima", "aisha", "wei", "li", "chen", "raj",
	"priya", "anil", "sunita", "carlos", "maria", "jose", "ana", "ivan",
	"olga", "yuki", "hiro",
}

var positiveWords = map[string]bool{
	"achieved": true, "improved": true, "excellent": true, "successful": true,
	"strong": true, "effective": true, "efficient": true, "innovative": true,
	"outstanding": true, "proven": true, "skilled": true, "dedicated": true,
	"reliable": true, "passionate": true, "growth": true, "award": true,
	"best": true, "great": true, "good": true, "positive": true,
}

var negativeWords = map[string]bool{
	"failed": true, "poor": true, "weak": true, "problem": true,
	"difficult": true, "bad": true, "negative": true, "loss": true,
	"decline": true, "issue": true, "lack": true, "limited": true,
}

var subjectiveWords = map[string]bool{
	"excellent": true, "amazing": true, "great": true, "best": true,
	"passionate": true, "love": true, "believe": true, "feel": true,
	"enthusiastic": true, "outstanding": true, "incredible": true,
	"wonderful": true, "beautiful": true, "terrible": true, "awesome": true,
	"dedicated": true, "motivated": true, "dynamic": true,
}

var verbSuffixes = []string{"ed", "ing", "ize", "ise", "ate"}

var commonVerbs = map[string]bool{
	"is": true, "are": true, "was": true, "were": true, "be": true,
	"have": true, "has": true, "had": true, "do": true, "does": true,
	"work": true, "works": true, "lead": true, "leads": true, "led": true,
	"manage": true, "build": true, "built": true, "develop": true,
	"create": true, "design": true, "run": true, "use": true, "write": true,
}

// Parse splits the text into sentences, tokenizes each sentence, assigns
// coarse POS tags and detects entities from capitalization plus suffix and
// gazetteer rules.
func (p *HeuristicProvider) Parse(text string) (*Doc, error) {
	doc := &Doc{Text: text}
	if strings.TrimSpace(text) == "" {
		return doc, nil
	}

	for _, raw := range p.splitSentences(text) {
		sent := Sentence{Text: raw}
		for _, w := range p.tokenSplit.FindAllString(raw, -1) {
			sent.Tokens = append(sent.Tokens, Token{Text: w, POS: tagToken(w)})
		}
		if len(sent.Tokens) > 0 {
			doc.Sents = append(doc.Sents, sent)
		}
	}

	doc.Ents = p.detectEntities(text)
	return doc, nil
}

// Classify scores each candidate label by word overlap with the text.
func (p *HeuristicProvider) Classify(text string, labels []string) (Classification, error) {
	lower := strings.ToLower(text)
	type scored struct {
		label string
		score float64
	}
	results := make([]scored, 0, len(labels))
	total := 0.0
	for _, label := range labels {
		s := 0.0
		for _, w := range strings.Fields(strings.ToLower(label)) {
			if strings.Contains(lower, w) {
				s += 1.0
			}
		}
		results = append(results, scored{label, s})
		total += s
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].score > results[j].score })

	out := Classification{}
	for _, r := range results {
		out.Labels = append(out.Labels, r.label)
		if total > 0 {
			out.Scores = append(out.Scores, r.score/total)
		} else {
			out.Scores = append(out.Scores, 1.0/float64(len(labels)))
		}
	}
	return out, nil
}

// Sentiment computes lexicon-based polarity and subjectivity.
func (p *HeuristicProvider) Sentiment(text string) (SentimentScore, error) {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return SentimentScore{}, nil
	}
	pos, neg, subj := 0, 0, 0
	for _, w := range words {
		w = strings.Trim(w, ".,!?;:()'\"")
		if positiveWords[w] {
			pos++
		}
		if negativeWords[w] {
			neg++
		}
		if subjectiveWords[w] {
			subj++
		}
	}
	score := SentimentScore{}
	if pos+neg > 0 {
		score.Polarity = float64(pos-neg) / float64(pos+neg)
	}
	score.Subjectivity = float64(subj*10) / float64(len(words))
	if score.Subjectivity > 1 {
		score.Subjectivity = 1
	}
	return score, nil
}

func (p *HeuristicProvider) splitSentences(text string) []string {
	var out []string
	last := 0
	for _, loc := range p.sentenceSplit.FindAllStringIndex(text, -1) {
		seg := strings.TrimSpace(text[last:loc[1]])
		if seg != "" {
			out = append(out, seg)
		}
		last = loc[1]
	}
	if tail := strings.TrimSpace(text[last:]); tail != "" {
		out = append(out, tail)
	}
	return out
}

func tagToken(w string) string {
	r := []rune(w)
	switch {
	case len(r) == 0:
		return "X"
	case unicode.IsDigit(r[0]):
		return "NUM"
	case commonVerbs[strings.ToLower(w)]:
		return "VERB"
	case unicode.IsUpper(r[0]):
		return "PROPN"
	}
	lw := strings.ToLower(w)
	for _, suf := range verbSuffixes {
		if len(lw) > len(suf)+2 && strings.HasSuffix(lw, suf) {
			return "VERB"
		}
	}
	return "NOUN"
}

var capitalizedRun = regexp.MustCompile(`\b[A-Z][A-Za-z&.'-]*(?:\s+[A-Z][A-Za-z&.'-]*)*`)

// detectEntities finds runs of capitalized words and labels them with suffix
// and gazetteer rules: organization suffixes win, then known cities, then
// person-name shapes.
func (p *HeuristicProvider) detectEntities(text string) []Entity {
	var ents []Entity
	seen := map[string]bool{}
	for _, loc := range capitalizedRun.FindAllStringIndex(text, -1) {
		candidate := strings.Trim(text[loc[0]:loc[1]], " .,;:")
		words := strings.Fields(candidate)
		if len(words) == 0 || len(words) > 6 {
			continue
		}
		key := strings.ToLower(candidate)
		if seen[key] {
			continue
		}
		label := classifyEntity(candidate, words)
		if label == "" {
			continue
		}
		seen[key] = true
		ents = append(ents, Entity{Text: candidate, Label: label, Start: loc[0]})
	}
	return ents
}

func classifyEntity(candidate string, words []string) string {
	lower := strings.ToLower(candidate)
	for _, suf := range orgSuffixes {
		if strings.HasSuffix(lower, suf) || strings.Contains(lower, " "+suf+" ") {
			return LabelOrg
		}
	}
	for _, city := range knownCities {
		if lower == city {
			return LabelGPE
		}
	}
	if len(words) == 2 || len(words) == 3 {
		first := strings.ToLower(strings.Trim(words[0], "."))
		for _, n := range commonFirstNames {
			if first == n {
				return LabelPerson
			}
		}
		// Two short capitalized words with no org signal still look like a
		// person name more than anything else.
		if len(words) == 2 && looksLikeNameWord(words[0]) && looksLikeNameWord(words[1]) {
			return LabelPerson
		}
	}
	return ""
}

func looksLikeNameWord(w string) bool {
	if len(w) < 2 || len(w) > 15 {
		return false
	}
	r := []rune(w)
	if !unicode.IsUpper(r[0]) {
		return false
	}
	for _, c := range r[1:] {
		if !unicode.IsLower(c) && c != '\'' && c != '-' {
			return false
		}
	}
	return true
}

// CommonFirstNames exposes the first-name gazetteer for the name validator's
// single-name rejection rule.
func CommonFirstNames() []string {
	out := make([]string, len(commonFirstNames))
	copy(out, commonFirstNames)
	return out
}
