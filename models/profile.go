package models

import "time"

// SkillEntry represents a single detected skill with extraction metadata.
// Proficiency and Confidence are independent: proficiency reflects the
// candidate's stated or inferred level, confidence reflects how certain the
// extraction itself is. Confidence never scales proficiency.
type SkillEntry struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Proficiency float64 `json:"proficiency"`
	Confidence  float64 `json:"confidence"`
	Context     string  `json:"context"`
}

// EducationEntry represents a parsed education record. An entry is only kept
// when Degree or Institution is non-empty.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Dates       string `json:"dates"`
	Location    string `json:"location"`
	GPA         string `json:"gpa"`
	Description string `json:"description"`
}

// ExperienceEntry represents a parsed work experience record. An entry is only
// kept when Title or Company is non-empty. Every bullet from the source span
// lands in exactly one of Achievements or Responsibilities.
type ExperienceEntry struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Dates            string   `json:"dates"`
	Location         string   `json:"location"`
	Description      string   `json:"description"`
	Achievements     []string `json:"achievements"`
	Responsibilities []string `json:"responsibilities"`
}

// SectionScores holds the per-section quality metrics. All values are in
// [0.0, 1.0].
type SectionScores struct {
	Completeness float64 `json:"completeness"`
	Clarity      float64 `json:"clarity"`
	Impact       float64 `json:"impact"`
	Relevance    float64 `json:"relevance"`
}

// ATSReport estimates how well the resume will survive automated Applicant
// Tracking System screening. Score is the fraction of sub-checks that pass,
// scaled to 0-10.
type ATSReport struct {
	Score                float64  `json:"score"`
	HasEmail             bool     `json:"has_email"`
	HasPhone             bool     `json:"has_phone"`
	HasSkillsSection     bool     `json:"has_skills_section"`
	HasExperienceSection bool     `json:"has_experience_section"`
	HasEducationSection  bool     `json:"has_education_section"`
	HasTables            bool     `json:"has_tables"`
	HasImages            bool     `json:"has_images"`
	ComplexFormatting    bool     `json:"complex_formatting"`
	MissingKeywords      []string `json:"missing_keywords"`
}

// BiasReport flags potentially non-inclusive language. TermsFound maps a
// category ("gendered", "age", "problematic") to the matched terms. Score is
// the total number of matches, capped at 10.
type BiasReport struct {
	HasBias    bool                `json:"has_bias"`
	Score      int                 `json:"bias_score"`
	TermsFound map[string][]string `json:"bias_terms_found"`
}

// LanguageReport carries basic language-quality metrics for the whole
// document.
type LanguageReport struct {
	WordCount           int     `json:"word_count"`
	SentenceCount       int     `json:"sentence_count"`
	AvgWordsPerSentence float64 `json:"avg_words_per_sentence"`
	ReadabilityScore    float64 `json:"readability_score"`
	Polarity            float64 `json:"polarity"`
	Subjectivity        float64 `json:"subjectivity"`
}

// Profile is the terminal artifact of a parse: one structured record per
// uploaded document. Fields that could not be extracted are empty, never
// missing. Skills carries only the display names; the full per-skill metadata
// stays available on SkillDetails for internal consumers.
type Profile struct {
	Name                  string                   `json:"name"`
	Email                 string                   `json:"email"`
	Phone                 string                   `json:"phone"`
	Location              string                   `json:"location"`
	Skills                []string                 `json:"skills"`
	SkillDetails          []SkillEntry             `json:"-"`
	Education             []EducationEntry         `json:"education"`
	Experience            []ExperienceEntry        `json:"experience"`
	TargetJob             string                   `json:"target_job"`
	Sections              map[string]string        `json:"sections"`
	SectionScores         map[string]SectionScores `json:"section_scores"`
	ATSReport             ATSReport                `json:"ats_report"`
	BiasReport            BiasReport               `json:"bias_report"`
	LanguageReport        LanguageReport           `json:"language_report"`
	Summary               string                   `json:"summary"`
	Recommendations       []string                 `json:"recommendations"`
	RawText               string                   `json:"raw_text,omitempty"`
	ComplexFormatDetected bool                     `json:"complex_format_detected"`
	FallbackUsed          bool                     `json:"fallback_used"`
	LastUpdated           time.Time                `json:"lastUpdated"`
}

// NewProfile returns a profile with every collection initialized so JSON
// output always carries the field.
func NewProfile() *Profile {
	return &Profile{
		Skills:          []string{},
		SkillDetails:    []SkillEntry{},
		Education:       []EducationEntry{},
		Experience:      []ExperienceEntry{},
		Sections:        map[string]string{},
		SectionScores:   map[string]SectionScores{},
		Recommendations: []string{},
		BiasReport:      BiasReport{TermsFound: map[string][]string{}},
		ATSReport:       ATSReport{MissingKeywords: []string{}},
		LastUpdated:     time.Now().UTC(),
	}
}
