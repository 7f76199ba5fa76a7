package parsers

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"cvinsight/models"
	"cvinsight/nlp"
)

// maxRawTextLength caps the raw text stored on the profile.
const maxRawTextLength = 5000

// CVParser orchestrates the whole pipeline: text extraction, section
// segmentation, the field extractors, and the derived scorers. It always
// returns a well-formed profile; only an unreadable file or an unsupported
// format surfaces as an error.
type CVParser struct {
	provider nlp.Provider
	log      zerolog.Logger

	extractor  *TextExtractor
	segmenter  *SectionSegmenter
	name       *NameExtractor
	contact    *ContactExtractor
	skills     *SkillsExtractor
	education  *EducationExtractor
	experience *ExperienceExtractor
	summary    *SummaryExtractor
	scorer     *Scorer
	complex    *ComplexExtractor
}

// NewCVParser creates a parser backed by the given language provider.
func NewCVParser(provider nlp.Provider) *CVParser {
	return &CVParser{
		provider:   provider,
		log:        zerolog.Nop(),
		extractor:  NewTextExtractor(),
		segmenter:  NewSectionSegmenter(),
		name:       NewNameExtractor(),
		contact:    NewContactExtractor(),
		skills:     NewSkillsExtractor(),
		education:  NewEducationExtractor(),
		experience: NewExperienceExtractor(),
		summary:    NewSummaryExtractor(),
		scorer:     NewScorer(provider),
		complex:    NewComplexExtractor(),
	}
}

// WithLogger returns the parser with structured logging enabled.
func (p *CVParser) WithLogger(log zerolog.Logger) *CVParser {
	p.log = log
	return p
}

// ParseDocument reads and parses one resume file. Extraction gaps degrade to
// empty fields; a panic anywhere in the pipeline degrades to the minimal
// fallback profile.
func (p *CVParser) ParseDocument(path string) (profile *models.Profile, err error) {
	doc, err := ReadDocument(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	normalized, err := p.extractor.Extract(doc)
	if err != nil {
		return nil, err
	}
	text := normalized.Text

	defer func() {
		if r := recover(); r != nil {
			p.log.Error().Str("path", path).Interface("panic", r).Msg("pipeline panic, using fallback profile")
			profile = p.minimalProfile(text)
			err = nil
		}
	}()

	if strings.TrimSpace(text) == "" {
		p.log.Warn().Str("path", path).Msg("no text extracted, using fallback profile")
		return p.minimalProfile(text), nil
	}

	return p.parseText(text), nil
}

// ParseText runs the pipeline over already-extracted text.
func (p *CVParser) ParseText(text string) (profile *models.Profile) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error().Interface("panic", r).Msg("pipeline panic, using fallback profile")
			profile = p.minimalProfile(text)
		}
	}()
	if strings.TrimSpace(text) == "" {
		return p.minimalProfile(text)
	}
	return p.parseText(text)
}

func (p *CVParser) parseText(text string) *models.Profile {
	profile := models.NewProfile()

	var nlpDoc *nlp.Doc
	if p.provider != nil {
		var err error
		nlpDoc, err = p.provider.Parse(text)
		if err != nil {
			p.log.Warn().Err(err).Msg("language analysis unavailable, continuing without entities")
			nlpDoc = nil
		}
	}

	profile.ComplexFormatDetected = DetectComplexFormat(text)

	var sections SectionMap
	if profile.ComplexFormatDetected {
		sections = p.complex.Sections(text)
		if len(sections) < 2 {
			sections = p.segmenter.Segment(text)
		}
	} else {
		sections = p.segmenter.Segment(text)
	}
	for key := range sections {
		profile.Sections[key] = GetSectionContent(sections, key)
	}

	if profile.ComplexFormatDetected {
		profile.Name = p.complex.ExtractName(text)
	}
	if profile.Name == "" {
		profile.Name = p.name.Extract(text, nlpDoc)
	}

	contact := p.contact.Extract(text)
	profile.Email = contact.Email
	profile.Phone = contact.Phone
	profile.Location = contact.Location
	if profile.Phone == "" && profile.ComplexFormatDetected {
		profile.Phone = p.complex.ExtractPhone(text)
	}

	profile.SkillDetails = p.skills.Extract(text, sections, nlpDoc)
	for _, skill := range profile.SkillDetails {
		profile.Skills = append(profile.Skills, skill.Name)
	}

	profile.Education = p.education.Extract(sections[SectionEducation], nlpDoc)
	profile.Experience = p.experience.Extract(sections[SectionExperience], nlpDoc)

	profile.TargetJob = p.summary.ExtractTargetJob(text, sections)
	profile.Summary = p.summary.ExtractSummary(text, sections, profile)

	profile.SectionScores = p.scorer.SectionScores(sections, profile.SkillDetails)
	profile.LanguageReport = p.scorer.LanguageReport(text)
	profile.ATSReport = p.scorer.ATSReport(text, sections, profile)
	profile.BiasReport = p.scorer.BiasReport(text)
	profile.Recommendations = p.scorer.Recommendations(profile)

	profile.RawText = truncateRunes(text, maxRawTextLength)
	profile.LastUpdated = time.Now().UTC()
	return profile
}

var (
	fallbackEmailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	fallbackPhoneRegex = regexp.MustCompile(`(\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
)

// minimalProfile is the last-resort extraction: a regex-only pass for email
// and phone. The name stays empty rather than guessing a placeholder.
func (p *CVParser) minimalProfile(text string) *models.Profile {
	profile := models.NewProfile()
	profile.FallbackUsed = true
	if text != "" {
		profile.Email = fallbackEmailRegex.FindString(text)
		if m := fallbackPhoneRegex.FindString(text); m != "" && digitCount(m) >= 7 {
			profile.Phone = normalizePhone(m)
		}
		if name := p.name.Extract(text, nil); name != "" {
			profile.Name = name
		}
		profile.RawText = truncateRunes(text, maxRawTextLength)
	}
	profile.LastUpdated = time.Now().UTC()
	return profile
}
