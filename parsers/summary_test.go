package parsers

import (
	"strings"
	"testing"

	"cvinsight/models"
)

func TestSummaryExtractor_TargetJobFromSeekingPhrase(t *testing.T) {
	extractor := NewSummaryExtractor()

	sections := SectionMap{
		SectionSummary: "Seasoned backend developer. Seeking a Senior Software Engineer position at a product company.",
	}
	job := extractor.ExtractTargetJob("", sections)
	if job != "Senior Software Engineer" {
		t.Errorf("Expected 'Senior Software Engineer', got '%s'", job)
	}
}

func TestSummaryExtractor_TargetJobFromCuratedList(t *testing.T) {
	extractor := NewSummaryExtractor()

	text := "Jane Doe\nData Analyst with a strong background in statistics and reporting."
	job := extractor.ExtractTargetJob(text, SectionMap{})
	if job != "Data Analyst" {
		t.Errorf("Expected 'Data Analyst', got '%s'", job)
	}
}

func TestSummaryExtractor_TargetJobAbsent(t *testing.T) {
	extractor := NewSummaryExtractor()

	if job := extractor.ExtractTargetJob("Lorem ipsum dolor sit amet.", SectionMap{}); job != "" {
		t.Errorf("Expected empty target job, got '%s'", job)
	}
}

func TestSummaryExtractor_SummaryFromSection(t *testing.T) {
	extractor := NewSummaryExtractor()

	sections := SectionMap{
		SectionSummary: "Experienced engineer who ships reliable systems.\nContact me at jane@example.com",
	}
	summary := extractor.ExtractSummary("", sections, models.NewProfile())
	if summary == "" {
		t.Fatal("Expected a summary")
	}
	if strings.Contains(summary, "@") {
		t.Errorf("Summary should not leak contact details: '%s'", summary)
	}
	if !strings.HasSuffix(summary, ".") {
		t.Errorf("Summary should end with a period: '%s'", summary)
	}
}

func TestSummaryExtractor_GeneratedSummary(t *testing.T) {
	extractor := NewSummaryExtractor()

	profile := models.NewProfile()
	profile.Experience = []models.ExperienceEntry{{Title: "Software Engineer", Company: "Google"}}
	profile.Education = []models.EducationEntry{{Degree: "Bachelor of Science in Computer Science"}}
	profile.SkillDetails = []models.SkillEntry{
		{Name: "Python", Category: CategoryProgramming, Confidence: 0.95},
		{Name: "Docker", Category: CategoryCloudDevOps, Confidence: 0.9},
	}

	text := "A short document with 8 years of experience mentioned but no summary paragraph."
	summary := extractor.ExtractSummary(text, SectionMap{}, profile)

	if !strings.Contains(summary, "Software Engineer") {
		t.Errorf("Generated summary should lead with the latest title: '%s'", summary)
	}
	if !strings.Contains(summary, "8 years of experience") {
		t.Errorf("Generated summary should carry the stated experience: '%s'", summary)
	}
	if !strings.Contains(summary, "bachelor's degree") {
		t.Errorf("Generated summary should mention the degree: '%s'", summary)
	}
	if !strings.Contains(summary, "Python") {
		t.Errorf("Generated summary should mention top skills: '%s'", summary)
	}
}

func TestSummaryExtractor_Truncation(t *testing.T) {
	extractor := NewSummaryExtractor()

	long := strings.TrimSpace(strings.Repeat("This sentence pads the summary well past the limit. ", 20))
	summary := extractor.ExtractSummary("", SectionMap{SectionSummary: long}, models.NewProfile())

	if len(summary) > 500 {
		t.Errorf("Summary should be capped at 500 characters, got %d", len(summary))
	}
	if !strings.HasSuffix(summary, ".") {
		t.Errorf("Truncated summary should end at a sentence boundary: '%s'", summary)
	}
}
