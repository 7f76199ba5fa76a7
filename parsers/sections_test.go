package parsers

import (
	"strings"
	"testing"
)

func TestSectionSegmenter_AllCapsHeaders(t *testing.T) {
	segmenter := NewSectionSegmenter()

	text := `John Smith

SUMMARY
Engineer who builds things.

PROFESSIONAL EXPERIENCE
Software Engineer at Google

EDUCATION
Bachelor of Science

SKILLS
Python, SQL`

	sections := segmenter.Segment(text)
	for _, key := range []string{SectionSummary, SectionExperience, SectionEducation, SectionSkills} {
		if _, ok := sections[key]; !ok {
			t.Errorf("Expected section '%s', got keys %v", key, sectionKeys(sections))
		}
	}
	if !strings.Contains(sections[SectionExperience], "Google") {
		t.Errorf("Experience content wrong: '%s'", sections[SectionExperience])
	}
	if strings.Contains(sections[SectionExperience], "Bachelor") {
		t.Error("Experience content should stop at the next header")
	}
}

func TestSectionSegmenter_SynonymHeaders(t *testing.T) {
	segmenter := NewSectionSegmenter()

	text := `Employment History
Backend Developer at Initech

Academic Background
Bachelor of Arts

Core Competencies
Leadership, Python`

	sections := segmenter.Segment(text)
	if _, ok := sections[SectionExperience]; !ok {
		t.Errorf("'Employment History' should map to experience, got %v", sectionKeys(sections))
	}
	if _, ok := sections[SectionEducation]; !ok {
		t.Errorf("'Academic Background' should map to education, got %v", sectionKeys(sections))
	}
	if _, ok := sections[SectionSkills]; !ok {
		t.Errorf("'Core Competencies' should map to skills, got %v", sectionKeys(sections))
	}
}

func TestSectionSegmenter_InferredSections(t *testing.T) {
	segmenter := NewSectionSegmenter()

	// No headers at all; content shape has to carry the segmentation.
	text := `Jane Doe
Worked on distributed systems for years without a single header.
• Python, Java and SQL in daily use
Bachelor of Science from a state university in 2010.`

	sections := segmenter.Segment(text)
	if len(sections) == 0 {
		t.Fatal("Expected inferred sections for headerless text")
	}
	if _, ok := sections[SectionEducation]; !ok {
		t.Errorf("Expected an inferred education section, got %v", sectionKeys(sections))
	}
}

func TestGetSectionContent_Scrubbed(t *testing.T) {
	sections := SectionMap{
		SectionSummary: "Call 123-456-7890 or mail jane.doe@example.com to discuss.",
	}
	content := GetSectionContent(sections, SectionSummary)
	if strings.Contains(content, "@") {
		t.Errorf("Email should be scrubbed: '%s'", content)
	}
	if strings.Contains(content, "123-456-7890") {
		t.Errorf("Phone should be scrubbed: '%s'", content)
	}
	if !strings.Contains(content, "discuss") {
		t.Errorf("Narrative content should survive scrubbing: '%s'", content)
	}

	if got := GetSectionContent(sections, SectionSkills); got != "" {
		t.Errorf("Missing section should yield empty content, got '%s'", got)
	}
}

func sectionKeys(sections SectionMap) []string {
	keys := make([]string, 0, len(sections))
	for k := range sections {
		keys = append(keys, k)
	}
	return keys
}
