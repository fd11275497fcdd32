package rag

import (
	"testing"

	"github.com/RAGUL-49/RAG-DOCUMENT-INTELLIGENCE/internal/models"
)

func TestParseResponseWellFormed(t *testing.T) {
	raw := `Answer: The revenue grew 12% year over year.
Confidence: High
Citations: Page 4, Table 2`

	got := ParseResponse(raw)
	if got.Answer != "The revenue grew 12% year over year." {
		t.Errorf("answer = %q", got.Answer)
	}
	if got.Confidence != models.ConfidenceHigh {
		t.Errorf("confidence = %q", got.Confidence)
	}
	if got.Citations != "Page 4, Table 2" {
		t.Errorf("citations = %q", got.Citations)
	}
}

func TestParseResponseMultilineAnswer(t *testing.T) {
	raw := `Answer: First line.
Second line continues the answer.

Confidence: Medium
Citations: Page 1`

	got := ParseResponse(raw)
	if got.Answer != "First line.\nSecond line continues the answer." {
		t.Errorf("answer = %q", got.Answer)
	}
	if got.Confidence != models.ConfidenceMedium {
		t.Errorf("confidence = %q", got.Confidence)
	}
}

func TestParseResponseMissingSections(t *testing.T) {
	got := ParseResponse("Answer: Only an answer here.")
	if got.Answer != "Only an answer here." {
		t.Errorf("answer = %q", got.Answer)
	}
	if got.Confidence != models.ConfidenceUnknown {
		t.Errorf("missing confidence should default to Unknown, got %q", got.Confidence)
	}
	if got.Citations != "None" {
		t.Errorf("missing citations should default to None, got %q", got.Citations)
	}
}

func TestParseResponseNoMarkersIsBareAnswer(t *testing.T) {
	got := ParseResponse("The model just chatted freely without structure.")
	if got.Answer != "The model just chatted freely without structure." {
		t.Errorf("answer = %q", got.Answer)
	}
	if got.Confidence != models.ConfidenceUnknown || got.Citations != "None" {
		t.Errorf("defaults lost: %+v", got)
	}
}

func TestParseResponseEmpty(t *testing.T) {
	got := ParseResponse("   \n  ")
	if got.Answer != "No answer found." {
		t.Errorf("answer = %q", got.Answer)
	}
	if got.Confidence != models.ConfidenceUnknown || got.Citations != "None" {
		t.Errorf("defaults lost: %+v", got)
	}
}

func TestParseResponseMarkdownDecoration(t *testing.T) {
	raw := `**Answer:** Decorated reply.
- Confidence: low
## Citations: Page 9`

	got := ParseResponse(raw)
	if got.Answer != "Decorated reply." {
		t.Errorf("answer = %q", got.Answer)
	}
	if got.Confidence != models.ConfidenceLow {
		t.Errorf("confidence = %q", got.Confidence)
	}
	if got.Citations != "Page 9" {
		t.Errorf("citations = %q", got.Citations)
	}
}

func TestParseResponseEmptySectionKeepsDefault(t *testing.T) {
	raw := "Answer:\nConfidence: High\nCitations:"
	got := ParseResponse(raw)
	if got.Answer != "No answer found." {
		t.Errorf("empty answer section should keep default, got %q", got.Answer)
	}
	if got.Citations != "None" {
		t.Errorf("empty citations section should keep default, got %q", got.Citations)
	}
	if got.Confidence != models.ConfidenceHigh {
		t.Errorf("confidence = %q", got.Confidence)
	}
}
