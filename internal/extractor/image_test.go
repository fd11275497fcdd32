package extractor

import "testing"

func TestImageOCRExtractorNilRecognizer(t *testing.T) {
	e := NewImageOCRExtractor(nil)
	chunks, err := e.Extract("whatever.pdf")
	if err != nil {
		t.Fatalf("nil recognizer should be a silent no-op: %v", err)
	}
	if len(chunks) != 0 {
		t.Errorf("expected no chunks, got %d", len(chunks))
	}
}

type fixedRecognizer struct{ text string }

func (r fixedRecognizer) Recognize(imageData []byte) (string, error) {
	return r.text, nil
}

var _ Recognizer = (fixedRecognizer{})

func TestImageOCRExtractorSkipsNonPDF(t *testing.T) {
	e := NewImageOCRExtractor(fixedRecognizer{text: "hello"})
	chunks, err := e.Extract("spreadsheet.xlsx")
	if err != nil {
		t.Fatalf("non-PDF should be a silent no-op: %v", err)
	}
	if len(chunks) != 0 {
		t.Errorf("expected no chunks, got %d", len(chunks))
	}
}
