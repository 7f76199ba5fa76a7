package parsers

import (
	"strings"
	"testing"
)

func TestExperienceExtractor_TitleAtCompany(t *testing.T) {
	extractor := NewExperienceExtractor()

	section := `Software Engineer at Google
June 2020 - Present
• Developed scalable web applications using Go and React
• Improved system performance by 40%
• Collaborated with cross-functional teams`

	entries := extractor.Extract(section, nil)
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Title != "Software Engineer" {
		t.Errorf("Expected title 'Software Engineer', got '%s'", e.Title)
	}
	if e.Company != "Google" {
		t.Errorf("Expected company 'Google', got '%s'", e.Company)
	}
	if !strings.Contains(e.Dates, "June 2020") || !strings.Contains(e.Dates, "Present") {
		t.Errorf("Expected 'June 2020 - Present', got '%s'", e.Dates)
	}
}

func TestExperienceExtractor_BulletClassification(t *testing.T) {
	extractor := NewExperienceExtractor()

	section := `Software Engineer at Google
• Developed scalable web applications using Go
• Improved system performance by 40%
• Responsible for weekly code reviews`

	entries := extractor.Extract(section, nil)
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	e := entries[0]

	if len(e.Achievements)+len(e.Responsibilities) != 3 {
		t.Fatalf("Every bullet should be classified exactly once, got %d + %d",
			len(e.Achievements), len(e.Responsibilities))
	}
	for _, a := range e.Achievements {
		for _, r := range e.Responsibilities {
			if a == r {
				t.Errorf("Bullet classified as both achievement and responsibility: '%s'", a)
			}
		}
	}
	if len(e.Achievements) != 2 {
		t.Errorf("Expected 2 achievements (action verb, metric), got %v", e.Achievements)
	}
	if len(e.Responsibilities) != 1 {
		t.Errorf("Expected 1 responsibility, got %v", e.Responsibilities)
	}
}

func TestExperienceExtractor_MultipleEntries(t *testing.T) {
	extractor := NewExperienceExtractor()

	section := `Senior Developer at Acme Corp
Jan 2020 - Present
• Led a team of four

Junior Developer at Beta LLC
Jan 2018 - Dec 2019
• Built internal APIs`

	entries := extractor.Extract(section, nil)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d: %+v", len(entries), entries)
	}
	if entries[0].Title != "Senior Developer" || entries[0].Company != "Acme Corp" {
		t.Errorf("First entry wrong: %+v", entries[0])
	}
	if entries[1].Title != "Junior Developer" || entries[1].Company != "Beta LLC" {
		t.Errorf("Second entry wrong: %+v", entries[1])
	}
}

func TestExperienceExtractor_AdjacentEntries(t *testing.T) {
	extractor := NewExperienceExtractor()

	// No blank lines between positions; the header line alone must open the
	// second entry.
	section := `Senior Developer at Acme Corp
Jan 2020 - Present
• Led a team of four
Junior Developer at Beta LLC
Jan 2018 - Dec 2019
• Built internal APIs`

	entries := extractor.Extract(section, nil)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d: %+v", len(entries), entries)
	}
	if entries[0].Title != "Senior Developer" || entries[0].Company != "Acme Corp" {
		t.Errorf("First entry wrong: %+v", entries[0])
	}
	if strings.Contains(entries[0].Description, "Beta LLC") {
		t.Errorf("Second position leaked into the first entry: %q", entries[0].Description)
	}
	if entries[1].Title != "Junior Developer" || entries[1].Company != "Beta LLC" {
		t.Errorf("Second entry wrong: %+v", entries[1])
	}
	if !strings.Contains(entries[1].Dates, "2018") {
		t.Errorf("Second entry should keep its own dates, got %q", entries[1].Dates)
	}
}

func TestExperienceExtractor_SeparateLines(t *testing.T) {
	extractor := NewExperienceExtractor()

	section := `Engineering Manager
Acme Technologies Inc
March 2019 - Present`

	entries := extractor.Extract(section, nil)
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0].Title != "Engineering Manager" {
		t.Errorf("Expected title 'Engineering Manager', got '%s'", entries[0].Title)
	}
	if !strings.Contains(entries[0].Company, "Acme Technologies") {
		t.Errorf("Expected company 'Acme Technologies Inc', got '%s'", entries[0].Company)
	}
}

func TestExperienceExtractor_DropsUnrecognized(t *testing.T) {
	extractor := NewExperienceExtractor()

	if entries := extractor.Extract("• did some things\n• did more things", nil); len(entries) != 0 {
		t.Errorf("Expected no entries without a title or company, got %+v", entries)
	}
	if entries := extractor.Extract("", nil); len(entries) != 0 {
		t.Errorf("Expected no entries for an empty section, got %+v", entries)
	}
}
