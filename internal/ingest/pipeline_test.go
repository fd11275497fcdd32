package ingest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/RAGUL-49/RAG-DOCUMENT-INTELLIGENCE/internal/models"
)

type stubExtractor struct {
	chunks []models.Chunk
	err    error
}

func (s *stubExtractor) Extract(path string) ([]models.Chunk, error) {
	return s.chunks, s.err
}

var _ Extractor = (*stubExtractor)(nil)

type stubCaptions struct {
	chunks []models.Chunk
}

func (s *stubCaptions) ExtractChartInfo(text string, page int, source string) []models.Chunk {
	return s.chunks
}

var _ CaptionExtractor = (*stubCaptions)(nil)

type passthroughSplitter struct{}

func (passthroughSplitter) Process(chunk models.Chunk) []models.Chunk {
	return []models.Chunk{chunk}
}

var _ Splitter = (passthroughSplitter{})

// tempDoc creates an empty file with a supported extension.
func tempDoc(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("stub"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestProcessDocumentCombinesExtractors(t *testing.T) {
	path := tempDoc(t, "report.pdf")

	p := NewPipeline(
		&stubExtractor{chunks: []models.Chunk{
			{Type: models.ChunkTypeText, Content: "page one text", Page: 1},
			{Type: models.ChunkTypeText, Content: "page two text", Page: 2},
		}},
		&stubExtractor{chunks: []models.Chunk{
			{Type: models.ChunkTypeTable, Content: "A: 1", Page: 1, TableIndex: 1},
		}},
		&stubExtractor{chunks: []models.Chunk{
			{Type: models.ChunkTypeOCR, Content: "figure caption", Page: 3, ImageIndex: 1},
		}},
		&stubCaptions{},
		passthroughSplitter{},
	)

	out := p.ProcessDocument(path)
	if len(out) != 4 {
		t.Fatalf("expected 4 chunks, got %d", len(out))
	}
	// Text first, then tables, then OCR.
	if out[0].Type != models.ChunkTypeText || out[2].Type != models.ChunkTypeTable || out[3].Type != models.ChunkTypeOCR {
		t.Errorf("unexpected ordering: %+v", out)
	}
}

func TestProcessDocumentChartCaptionsPerTextChunk(t *testing.T) {
	path := tempDoc(t, "charts.pdf")

	p := NewPipeline(
		&stubExtractor{chunks: []models.Chunk{
			{Type: models.ChunkTypeText, Content: "Figure 1: Growth", Page: 1},
			{Type: models.ChunkTypeText, Content: "plain", Page: 2},
		}},
		&stubExtractor{},
		&stubExtractor{},
		&stubCaptions{chunks: []models.Chunk{{Type: models.ChunkTypeChartMetadata, Title: "Growth"}}},
		passthroughSplitter{},
	)

	out := p.ProcessDocument(path)
	charts := 0
	for _, chunk := range out {
		if chunk.Type == models.ChunkTypeChartMetadata {
			charts++
		}
	}
	if charts != 2 {
		t.Errorf("caption extractor should run once per text chunk, got %d chart chunks", charts)
	}
}

func TestProcessDocumentExtractorFailureIsPartial(t *testing.T) {
	path := tempDoc(t, "partial.pdf")

	p := NewPipeline(
		&stubExtractor{err: errors.New("corrupt text layer")},
		&stubExtractor{chunks: []models.Chunk{{Type: models.ChunkTypeTable, Content: "A: 1", Page: 1}}},
		&stubExtractor{err: errors.New("no images")},
		&stubCaptions{},
		passthroughSplitter{},
	)

	out := p.ProcessDocument(path)
	if len(out) != 1 || out[0].Type != models.ChunkTypeTable {
		t.Fatalf("surviving extractor output should be kept, got %+v", out)
	}
}

func TestProcessDocumentMissingFile(t *testing.T) {
	p := NewPipeline(&stubExtractor{}, &stubExtractor{}, &stubExtractor{}, &stubCaptions{}, passthroughSplitter{})
	if out := p.ProcessDocument("/nonexistent/file.pdf"); len(out) != 0 {
		t.Errorf("missing file should yield no chunks, got %d", len(out))
	}
}

func TestProcessDocumentUnsupportedExtension(t *testing.T) {
	path := tempDoc(t, "notes.exe")
	p := NewPipeline(&stubExtractor{}, &stubExtractor{}, &stubExtractor{}, &stubCaptions{}, passthroughSplitter{})
	if out := p.ProcessDocument(path); len(out) != 0 {
		t.Errorf("unsupported extension should yield no chunks, got %d", len(out))
	}
}

func TestSaveChunksWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chunks.json")
	chunks := []models.Chunk{{Type: models.ChunkTypeText, Content: "hello", Page: 1, Source: "a.pdf"}}

	if err := SaveChunks(chunks, path); err != nil {
		t.Fatalf("SaveChunks: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty file written")
	}
}
