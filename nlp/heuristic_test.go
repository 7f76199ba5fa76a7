package nlp

import "testing"

func TestHeuristicProvider_Parse(t *testing.T) {
	provider := NewHeuristicProvider()

	doc, err := provider.Parse("John Smith is a software engineer at Google Inc. He lives in Dubai.")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(doc.Sents) != 2 {
		t.Errorf("Expected 2 sentences, got %d", len(doc.Sents))
	}
	if len(doc.Tokens()) == 0 {
		t.Error("Expected tokens")
	}

	wantLabels := map[string]string{
		"John Smith": LabelPerson,
		"Dubai":      LabelGPE,
	}
	for text, label := range wantLabels {
		found := false
		for _, ent := range doc.EntitiesByLabel(label) {
			if ent.Text == text {
				found = true
			}
		}
		if !found {
			t.Errorf("Expected entity %q with label %s, got %v", text, label, doc.Ents)
		}
	}
	if len(doc.EntitiesByLabel(LabelOrg)) == 0 {
		t.Errorf("Expected an organization entity, got %v", doc.Ents)
	}
}

func TestHeuristicProvider_ParseEmpty(t *testing.T) {
	provider := NewHeuristicProvider()

	doc, err := provider.Parse("   ")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(doc.Sents) != 0 || len(doc.Ents) != 0 {
		t.Errorf("Blank input should parse to an empty doc, got %+v", doc)
	}
}

func TestHeuristicProvider_Sentiment(t *testing.T) {
	provider := NewHeuristicProvider()

	positive, err := provider.Sentiment("Achieved excellent results and improved efficiency.")
	if err != nil {
		t.Fatalf("Sentiment failed: %v", err)
	}
	if positive.Polarity <= 0 {
		t.Errorf("Expected positive polarity, got %f", positive.Polarity)
	}

	negative, err := provider.Sentiment("Failed project with poor results and a bad outcome.")
	if err != nil {
		t.Fatalf("Sentiment failed: %v", err)
	}
	if negative.Polarity >= 0 {
		t.Errorf("Expected negative polarity, got %f", negative.Polarity)
	}

	factual, err := provider.Sentiment("Wrote code. Shipped releases.")
	if err != nil {
		t.Fatalf("Sentiment failed: %v", err)
	}
	subjective, err := provider.Sentiment("Amazing passionate engineer with incredible outstanding talent.")
	if err != nil {
		t.Fatalf("Sentiment failed: %v", err)
	}
	if subjective.Subjectivity <= factual.Subjectivity {
		t.Errorf("Subjective text should score higher: %f vs %f",
			subjective.Subjectivity, factual.Subjectivity)
	}
}

func TestHeuristicProvider_Classify(t *testing.T) {
	provider := NewHeuristicProvider()

	result, err := provider.Classify(
		"Designed software systems and led engineering teams.",
		[]string{"software engineering", "veterinary medicine"},
	)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if len(result.Labels) != 2 || len(result.Scores) != 2 {
		t.Fatalf("Expected 2 labels and scores, got %+v", result)
	}
	if result.Labels[0] != "software engineering" {
		t.Errorf("Expected 'software engineering' to rank first, got %v", result.Labels)
	}
	if result.Scores[0] <= result.Scores[1] {
		t.Error("Scores should be sorted descending")
	}
}
