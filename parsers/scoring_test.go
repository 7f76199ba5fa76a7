package parsers

import (
	"strings"
	"testing"

	"cvinsight/models"
	"cvinsight/nlp"
)

func newTestScorer() *Scorer {
	return NewScorer(nlp.NewHeuristicProvider())
}

func TestScorer_SectionScores_AbsentSections(t *testing.T) {
	scorer := newTestScorer()

	sections := SectionMap{SectionSummary: "A short summary with enough words to score."}
	out := scorer.SectionScores(sections, nil)

	for _, key := range []string{SectionSummary, SectionExperience, SectionEducation, SectionSkills} {
		if _, ok := out[key]; !ok {
			t.Errorf("Section '%s' should always be scored", key)
		}
	}
	if out[SectionEducation].Completeness != 0.0 {
		t.Errorf("Absent education section should score 0.0 completeness, got %f",
			out[SectionEducation].Completeness)
	}
	if out[SectionSummary].Completeness == 0.0 {
		t.Error("Present summary section should score above 0.0 completeness")
	}
}

func TestScorer_SectionScores_Completeness(t *testing.T) {
	scorer := newTestScorer()

	half := strings.Repeat("a", 100)
	out := scorer.SectionScores(SectionMap{SectionSummary: half}, nil)
	if got := out[SectionSummary].Completeness; got != 0.5 {
		t.Errorf("100 characters should score 0.5 completeness, got %f", got)
	}

	full := strings.Repeat("a", 600)
	out = scorer.SectionScores(SectionMap{SectionSummary: full}, nil)
	if got := out[SectionSummary].Completeness; got != 1.0 {
		t.Errorf("Completeness should clamp at 1.0, got %f", got)
	}
}

func TestScorer_LanguageReport(t *testing.T) {
	scorer := newTestScorer()

	report := scorer.LanguageReport("This is a plain sentence. Here is another one.")
	if report.WordCount != 9 {
		t.Errorf("Expected 9 words, got %d", report.WordCount)
	}
	if report.SentenceCount != 2 {
		t.Errorf("Expected 2 sentences, got %d", report.SentenceCount)
	}
	if report.ReadabilityScore < 0 || report.ReadabilityScore > 100 {
		t.Errorf("Readability out of range: %f", report.ReadabilityScore)
	}

	empty := scorer.LanguageReport("")
	if empty.WordCount != 0 || empty.ReadabilityScore != 0 {
		t.Errorf("Empty text should produce a zero report, got %+v", empty)
	}
}

func TestScorer_ATSReport(t *testing.T) {
	scorer := newTestScorer()

	profile := models.NewProfile()
	report := scorer.ATSReport("", SectionMap{}, profile)
	if report.Score < 0 || report.Score > 10 {
		t.Errorf("ATS score out of range: %f", report.Score)
	}
	if report.HasEmail || report.HasPhone {
		t.Error("Empty profile should fail the contact checks")
	}

	profile.Email = "a@b.com"
	profile.Phone = "(123) 456-7890"
	for i := 0; i < 6; i++ {
		profile.SkillDetails = append(profile.SkillDetails, models.SkillEntry{Name: "X"})
	}
	sections := SectionMap{
		SectionSkills:     "Python",
		SectionExperience: "Engineer at Acme",
		SectionEducation:  "BS",
	}
	full := scorer.ATSReport("plain ascii resume text", sections, profile)
	if full.Score != 10.0 {
		t.Errorf("All checks passing should score 10.0, got %f (%+v)", full.Score, full)
	}
	if full.HasTables || full.HasImages || full.ComplexFormatting {
		t.Error("Plain text should not trip the formatting checks")
	}
}

func TestScorer_ATSReport_MissingKeywords(t *testing.T) {
	scorer := newTestScorer()

	profile := models.NewProfile()
	profile.TargetJob = "Software Engineer"
	report := scorer.ATSReport("", SectionMap{}, profile)

	if len(report.MissingKeywords) == 0 {
		t.Fatal("A technology target with no skills should have missing keywords")
	}
	if len(report.MissingKeywords) > 10 {
		t.Errorf("Missing keywords should be capped at 10, got %d", len(report.MissingKeywords))
	}
}

func TestScorer_BiasReport(t *testing.T) {
	scorer := newTestScorer()

	report := scorer.BiasReport("He maintained the blacklist and reported to the chairman.")
	if !report.HasBias {
		t.Fatal("Expected bias to be flagged")
	}
	if report.Score < 2 {
		t.Errorf("Expected a score of at least 2, got %d", report.Score)
	}
	problematic := report.TermsFound["problematic"]
	for _, want := range []string{"blacklist", "chairman"} {
		found := false
		for _, term := range problematic {
			if term == want {
				found = true
			}
		}
		if !found {
			t.Errorf("Expected '%s' in problematic terms, got %v", want, problematic)
		}
	}

	clean := scorer.BiasReport("Built and shipped reliable software for enterprise customers.")
	if clean.HasBias || clean.Score != 0 {
		t.Errorf("Neutral text should not be flagged, got %+v", clean)
	}
	if clean.Score > maxBiasScore {
		t.Errorf("Bias score above cap: %d", clean.Score)
	}
}

func TestScorer_Recommendations(t *testing.T) {
	scorer := newTestScorer()

	profile := models.NewProfile()
	profile.ATSReport = scorer.ATSReport("", SectionMap{}, profile)

	recs := scorer.Recommendations(profile)
	if len(recs) == 0 {
		t.Fatal("A sparse profile should produce recommendations")
	}
	foundEmail := false
	for _, r := range recs {
		if strings.Contains(r, "email") {
			foundEmail = true
		}
	}
	if !foundEmail {
		t.Errorf("Expected an email recommendation, got %v", recs)
	}

	// Scored-but-empty sections flood the list; the cap must hold.
	profile.SectionScores = scorer.SectionScores(SectionMap{}, nil)
	recs = scorer.Recommendations(profile)
	if len(recs) > 10 {
		t.Errorf("Recommendations should be capped at 10, got %d", len(recs))
	}
}
