package nlp

// Entity labels produced by Provider implementations.
const (
	LabelPerson  = "PERSON"
	LabelOrg     = "ORG"
	LabelGPE     = "GPE"
	LabelProduct = "PRODUCT"
)

// Token is a single word with its coarse part-of-speech tag.
type Token struct {
	Text string `json:"text"`
	POS  string `json:"pos"`
}

// Sentence is one sentence span with its tokens.
type Sentence struct {
	Text   string  `json:"text"`
	Tokens []Token `json:"tokens"`
}

// Entity is a named entity detected in the text.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
	Start int    `json:"start"` // byte offset into the analyzed text
}

// Doc is the analyzed form of a text: sentence-split, tokenized, POS-tagged
// and entity-tagged.
type Doc struct {
	Text  string
	Sents []Sentence
	Ents  []Entity
}

// Classification is a zero-shot classification result. Labels are sorted by
// descending score; Scores sums to 1 when any label matched.
type Classification struct {
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`
}

// SentimentScore carries polarity in [-1, 1] and subjectivity in [0, 1].
type SentimentScore struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

// Provider is the language-analysis capability the extraction pipeline
// consumes. Implementations must be safe for concurrent use; the pipeline
// treats them as stateless and read-only.
type Provider interface {
	Parse(text string) (*Doc, error)
	Classify(text string, labels []string) (Classification, error)
	Sentiment(text string) (SentimentScore, error)
}

// Tokens returns every token of the document in order.
func (d *Doc) Tokens() []Token {
	var out []Token
	for _, s := range d.Sents {
		out = append(out, s.Tokens...)
	}
	return out
}

// EntitiesByLabel returns the entities carrying any of the given labels.
func (d *Doc) EntitiesByLabel(labels ...string) []Entity {
	want := map[string]bool{}
	for _, l := range labels {
		want[l] = true
	}
	var out []Entity
	for _, e := range d.Ents {
		if want[e.Label] {
			out = append(out, e)
		}
	}
	return out
}
