package parsers

import (
	"strings"
	"testing"
)

func TestEducationExtractor_FullEntry(t *testing.T) {
	extractor := NewEducationExtractor()

	section := `Bachelor of Science in Computer Science
Stanford University
2014 - 2018
GPA: 3.8/4.0`

	entries := extractor.Extract(section, nil)
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Degree != "Bachelor of Science in Computer Science" {
		t.Errorf("Expected full degree, got '%s'", e.Degree)
	}
	if e.Institution != "Stanford University" {
		t.Errorf("Expected 'Stanford University', got '%s'", e.Institution)
	}
	if !strings.Contains(e.Dates, "2014") || !strings.Contains(e.Dates, "2018") {
		t.Errorf("Expected 2014-2018 dates, got '%s'", e.Dates)
	}
	if e.GPA != "3.8/4.0" {
		t.Errorf("Expected GPA '3.8/4.0', got '%s'", e.GPA)
	}
}

func TestEducationExtractor_AbbreviatedDegree(t *testing.T) {
	extractor := NewEducationExtractor()

	entries := extractor.Extract("B.S. in Computer Science, 2015", nil)
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0].Degree != "Bachelor of Science in Computer Science" {
		t.Errorf("Expected expanded degree, got '%s'", entries[0].Degree)
	}
}

func TestEducationExtractor_DottedAbbreviationKeepsField(t *testing.T) {
	extractor := NewEducationExtractor()

	// The period right before the field must not swallow the "in X" capture.
	cases := map[string]string{
		"M.S. in Data Science, MIT":       "Master of Science in Data Science",
		"Ph.D. in Physics, Caltech, 2012": "Doctor of Philosophy in Physics",
		"BSc in Chemistry":                "Bachelor of Science in Chemistry",
	}
	for section, want := range cases {
		entries := extractor.Extract(section, nil)
		if len(entries) != 1 {
			t.Fatalf("Expected 1 entry for %q, got %d", section, len(entries))
		}
		if entries[0].Degree != want {
			t.Errorf("Extract(%q) degree = %q, want %q", section, entries[0].Degree, want)
		}
	}
}

func TestEducationExtractor_MultipleEntries(t *testing.T) {
	extractor := NewEducationExtractor()

	section := `Master of Science in Data Science
Harvard University
2018 - 2020

Bachelor of Science in Mathematics
Oxford University
2014 - 2018`

	entries := extractor.Extract(section, nil)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d: %v", len(entries), entries)
	}
	if !strings.Contains(entries[0].Degree, "Master") || entries[0].Institution != "Harvard University" {
		t.Errorf("First entry wrong: %+v", entries[0])
	}
	if !strings.Contains(entries[1].Degree, "Bachelor") || entries[1].Institution != "Oxford University" {
		t.Errorf("Second entry wrong: %+v", entries[1])
	}
}

func TestEducationExtractor_DropsUnrecognized(t *testing.T) {
	extractor := NewEducationExtractor()

	if entries := extractor.Extract("Attended evening cooking classes\n2012", nil); len(entries) != 0 {
		t.Errorf("Expected no entries without a degree or institution, got %v", entries)
	}
	if entries := extractor.Extract("", nil); len(entries) != 0 {
		t.Errorf("Expected no entries for an empty section, got %v", entries)
	}
}
