package extractor

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"github.com/rs/zerolog/log"

	"github.com/RAGUL-49/RAG-DOCUMENT-INTELLIGENCE/internal/models"
)

// TextExtractor produces one text chunk per non-blank page (PDF) or
// paragraph (DOCX/TXT).
type TextExtractor struct{}

func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// Extract returns the text chunks of a document. A returned error means the
// document itself could not be read; per-page failures are logged and
// skipped.
func (e *TextExtractor) Extract(path string) ([]models.Chunk, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return e.extractPDF(path)
	case ".docx":
		return e.extractDOCX(path)
	case ".txt":
		return e.extractPlain(path)
	default:
		return nil, nil
	}
}

func (e *TextExtractor) extractPDF(path string) ([]models.Chunk, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}

	reader, err := pdf.NewReader(f, stat.Size())
	if err != nil {
		return nil, err
	}

	var chunks []models.Chunk
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			log.Warn().Err(err).Int("page", i).Str("source", path).Msg("Skipping unreadable page")
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		chunks = append(chunks, models.Chunk{
			Type:    models.ChunkTypeText,
			Content: text,
			Page:    i,
			Source:  path,
		})
	}
	return chunks, nil
}

func (e *TextExtractor) extractDOCX(path string) ([]models.Chunk, error) {
	r, err := docx.ReadDocxFile(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	content := r.Editable().GetContent()
	var chunks []models.Chunk
	for _, para := range strings.Split(content, "\n") {
		if strings.TrimSpace(para) == "" {
			continue
		}
		chunks = append(chunks, models.Chunk{
			Type:    models.ChunkTypeText,
			Content: para,
			Page:    1, // DOCX has no page numbers
			Source:  path,
		})
	}
	return chunks, nil
}

func (e *TextExtractor) extractPlain(path string) ([]models.Chunk, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, nil
	}
	return []models.Chunk{{
		Type:    models.ChunkTypeText,
		Content: string(data),
		Page:    1,
		Source:  path,
	}}, nil
}
