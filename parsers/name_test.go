package parsers

import "testing"

func TestNameExtractor_TopLine(t *testing.T) {
	extractor := NewNameExtractor()

	text := `John Smith
john.smith@email.com
(123) 456-7890

SUMMARY
Software engineer.`

	if got := extractor.Extract(text, nil); got != "John Smith" {
		t.Errorf("Expected 'John Smith', got '%s'", got)
	}
}

func TestNameExtractor_Labeled(t *testing.T) {
	extractor := NewNameExtractor()

	text := `Name: Jane Doe
jane.doe@email.com`

	if got := extractor.Extract(text, nil); got != "Jane Doe" {
		t.Errorf("Expected 'Jane Doe', got '%s'", got)
	}
}

func TestNameExtractor_EmailFallback(t *testing.T) {
	extractor := NewNameExtractor()

	text := `SUMMARY
Contact at jane.doe@example.com for details.`

	if got := extractor.Extract(text, nil); got != "Jane Doe" {
		t.Errorf("Expected 'Jane Doe' derived from the email, got '%s'", got)
	}
}

func TestNameExtractor_CollapsesWhitespace(t *testing.T) {
	extractor := NewNameExtractor()

	text := `Name: Jane   Doe
jane.doe@email.com`

	if got := extractor.Extract(text, nil); got != "Jane Doe" {
		t.Errorf("Expected internal whitespace collapsed to 'Jane Doe', got '%s'", got)
	}
}

func TestValidateName(t *testing.T) {
	valid := []string{"John Smith", "Jane Doe", "Jane O'Brien"}
	for _, name := range valid {
		if !ValidateName(name) {
			t.Errorf("Expected '%s' to validate", name)
		}
	}

	invalid := []string{
		"",
		"Jo",
		"EXPERIENCE",
		"Acme Corporation",
		"John Smith Senior Manager Lead",
		"Sarah",
		"name@example.com",
	}
	for _, name := range invalid {
		if ValidateName(name) {
			t.Errorf("Expected '%s' to be rejected", name)
		}
	}
}
