package extractor

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/RAGUL-49/RAG-DOCUMENT-INTELLIGENCE/internal/models"
)

func TestExtractChartInfoFindsCaption(t *testing.T) {
	e := NewChartMetadataExtractor()
	text := "Quarterly results were strong. Figure 3: Revenue by region shows the breakdown.\nMore discussion follows."

	chunks := e.ExtractChartInfo(text, 4, "report.pdf")
	if len(chunks) != 1 {
		t.Fatalf("expected 1 caption chunk, got %d", len(chunks))
	}
	c := chunks[0]
	if c.Type != models.ChunkTypeChartMetadata {
		t.Errorf("type = %s", c.Type)
	}
	if c.Title != "Revenue by region shows the breakdown." {
		t.Errorf("title = %q", c.Title)
	}
	if c.Page != 4 || c.Source != "report.pdf" {
		t.Errorf("provenance lost: %+v", c)
	}
	if !strings.Contains(c.Content, "Quarterly results") {
		t.Errorf("content should include surrounding text, got %q", c.Content)
	}
}

func TestExtractChartInfoContextWindowBounds(t *testing.T) {
	e := NewChartMetadataExtractor()
	pad := strings.Repeat("x", 500)
	text := pad + " Figure 1: Growth\n " + pad

	chunks := e.ExtractChartInfo(text, 1, "a.pdf")
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	content := chunks[0].Content
	// Match plus 200 bytes on either side.
	if len(content) >= len(text) {
		t.Errorf("window did not bound the content: %d bytes", len(content))
	}
	if !strings.Contains(content, "Figure 1: Growth") {
		t.Errorf("window must contain the caption itself")
	}
}

func TestExtractChartInfoWindowStaysOnRuneBoundaries(t *testing.T) {
	e := NewChartMetadataExtractor()
	// Multi-byte padding on both sides so a byte-counted window would cut
	// through a euro sign.
	pad := strings.Repeat("€", 300)
	text := pad + " Figure 1: Growth\n " + pad

	chunks := e.ExtractChartInfo(text, 1, "a.pdf")
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	content := chunks[0].Content
	if !utf8.ValidString(content) {
		t.Fatalf("window produced invalid UTF-8: %q", content[:20])
	}
	if !strings.Contains(content, "Figure 1: Growth") {
		t.Errorf("window must contain the caption itself")
	}
	// The window is counted in runes, not bytes: 200 on each side of the
	// match, so a byte-counted window (600 bytes of euro signs fit in 200
	// runes' worth) would keep far fewer.
	if got := utf8.RuneCountInString(content); got != 400+utf8.RuneCountInString("Figure 1: Growth") {
		t.Errorf("window rune count = %d", got)
	}
}

func TestExtractChartInfoCaseInsensitive(t *testing.T) {
	e := NewChartMetadataExtractor()
	chunks := e.ExtractChartInfo("see CHART 2. Users over time", 1, "a.pdf")
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Title != "Users over time" {
		t.Errorf("title = %q", chunks[0].Title)
	}
}

func TestExtractChartInfoMultipleMarkers(t *testing.T) {
	e := NewChartMetadataExtractor()
	text := "Figure 1: First\nGraph 2: Second\nTable 3: Third"

	chunks := e.ExtractChartInfo(text, 2, "a.pdf")
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	titles := map[string]bool{}
	for _, c := range chunks {
		titles[c.Title] = true
	}
	for _, want := range []string{"First", "Second", "Third"} {
		if !titles[want] {
			t.Errorf("missing caption %q in %v", want, titles)
		}
	}
}

func TestExtractChartInfoNoMarkers(t *testing.T) {
	e := NewChartMetadataExtractor()
	if chunks := e.ExtractChartInfo("plain prose with no captions", 1, "a.pdf"); len(chunks) != 0 {
		t.Errorf("expected no chunks, got %d", len(chunks))
	}
}
