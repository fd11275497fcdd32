// Package merger serializes retrieved chunks into one textual context block
// with per-type headers, and offers auxiliary groupings by page and type.
package merger

import (
	"fmt"
	"strings"

	"github.com/RAGUL-49/RAG-DOCUMENT-INTELLIGENCE/internal/models"
)

type Merger struct{}

func New() *Merger {
	return &Merger{}
}

// CreateContext renders the chunks in input order, one labeled block per
// chunk, joined by a fixed separator. Empty input yields an empty string.
// No chunk is ever reordered or filtered.
func (m *Merger) CreateContext(chunks []models.RetrievedChunk) string {
	if len(chunks) == 0 {
		return ""
	}

	parts := make([]string, 0, len(chunks))
	for i, rc := range chunks {
		chunk := rc.Chunk
		var header string
		switch chunk.Type {
		case models.ChunkTypeTable:
			header = fmt.Sprintf("[Table %d]\nPage: %d", i+1, chunk.Page)
		case models.ChunkTypeOCR:
			header = fmt.Sprintf("[OCR Extract %d]\nPage: %d, Figure: %d", i+1, chunk.Page, chunk.ImageIndex)
		case models.ChunkTypeChartMetadata:
			header = fmt.Sprintf("[Chart Metadata %d]\nPage: %d\nTitle: %s", i+1, chunk.Page, orNA(chunk.Title))
		default:
			header = fmt.Sprintf("[Text Chunk %d]\nPage: %d, Section: %s", i+1, chunk.Page, orNA(chunk.Section))
		}
		parts = append(parts, fmt.Sprintf("%s\nContent: %s\n", header, chunk.Content))
	}

	return strings.Join(parts, models.ContextSeparator)
}

// MergeByPage groups chunks by page number, preserving input order within
// each group.
func (m *Merger) MergeByPage(chunks []models.RetrievedChunk) map[int][]models.RetrievedChunk {
	groups := make(map[int][]models.RetrievedChunk)
	for _, rc := range chunks {
		groups[rc.Chunk.Page] = append(groups[rc.Chunk.Page], rc)
	}
	return groups
}

// MergeByType groups chunks by modality, preserving input order within each
// group.
func (m *Merger) MergeByType(chunks []models.RetrievedChunk) map[models.ChunkType][]models.RetrievedChunk {
	groups := make(map[models.ChunkType][]models.RetrievedChunk)
	for _, rc := range chunks {
		groups[rc.Chunk.Type] = append(groups[rc.Chunk.Type], rc)
	}
	return groups
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
