package parsers

import (
	"strings"
	"testing"
)

func TestContactExtractor_Email(t *testing.T) {
	extractor := NewContactExtractor()

	info := extractor.Extract("Reach me at jane.doe+cv@example.co.uk for details.")
	if info.Email != "jane.doe+cv@example.co.uk" {
		t.Errorf("Expected full email, got '%s'", info.Email)
	}

	if info := extractor.Extract("No contact details here."); info.Email != "" {
		t.Errorf("Expected no email, got '%s'", info.Email)
	}
}

func TestContactExtractor_PhoneFormats(t *testing.T) {
	extractor := NewContactExtractor()

	cases := map[string]string{
		"(123) 456-7890":          "(123) 456-7890",
		"123-456-7890":            "(123) 456-7890",
		"+1 123 456 7890":         "+1 (123) 456-7890",
		"Phone: +971 50 123 4567": "+971 50 123 4567",
	}
	for in, want := range cases {
		if got := extractor.Extract("Contact\n" + in).Phone; got != want {
			t.Errorf("Extract(%q).Phone = %q, want %q", in, got, want)
		}
	}
}

func TestContactExtractor_ContextPhoneWins(t *testing.T) {
	extractor := NewContactExtractor()

	// The labeled number outranks the earlier bare digit run.
	text := "Ref 2020 - 2021\nMobile: 123-456-7890"
	if got := extractor.Extract(text).Phone; got != "(123) 456-7890" {
		t.Errorf("Expected the labeled number, got '%s'", got)
	}
}

func TestContactExtractor_Location(t *testing.T) {
	extractor := NewContactExtractor()

	info := extractor.Extract("Engineer based in Dubai, United Arab Emirates with ten years in the field.")
	if !strings.Contains(info.Location, "Dubai") {
		t.Errorf("Expected a Dubai location, got '%s'", info.Location)
	}

	info = extractor.Extract("Currently around Singapore and open to relocation.")
	if !strings.Contains(info.Location, "Singapore") {
		t.Errorf("Expected the gazetteer to find Singapore, got '%s'", info.Location)
	}

	if info := extractor.Extract("Remote worker, timezone flexible."); info.Location != "" {
		t.Errorf("Expected no location, got '%s'", info.Location)
	}
}
