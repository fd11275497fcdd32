package vectorstore

import (
	"strconv"

	"github.com/RAGUL-49/RAG-DOCUMENT-INTELLIGENCE/internal/models"
)

// Metadata keys. Index backends only accept scalar metadata values, so the
// chunk header is flattened into strings.
const (
	metaType       = "type"
	metaPage       = "page"
	metaSource     = "source"
	metaChunkIndex = "chunk_index"
	metaTableIndex = "table_index"
	metaImageIndex = "image_index"
	metaTitle      = "title"
	metaSection    = "section"
)

// MetadataFromChunk flattens every chunk field except content.
func MetadataFromChunk(chunk models.Chunk) map[string]string {
	md := map[string]string{
		metaType:   string(chunk.Type),
		metaPage:   strconv.Itoa(chunk.Page),
		metaSource: chunk.Source,
	}
	switch chunk.Type {
	case models.ChunkTypeText:
		md[metaChunkIndex] = strconv.Itoa(chunk.ChunkIndex)
		if chunk.Section != "" {
			md[metaSection] = chunk.Section
		}
	case models.ChunkTypeTable:
		md[metaTableIndex] = strconv.Itoa(chunk.TableIndex)
	case models.ChunkTypeOCR:
		md[metaImageIndex] = strconv.Itoa(chunk.ImageIndex)
	case models.ChunkTypeChartMetadata:
		md[metaTitle] = chunk.Title
	}
	return md
}

// ChunkFromMetadata rebuilds a chunk from stored content and metadata.
// Unknown or malformed values fall back to zero values; the type defaults
// to text so retrieved records always carry a valid tag.
func ChunkFromMetadata(content string, md map[string]string) models.Chunk {
	chunk := models.Chunk{
		Type:    models.ChunkType(md[metaType]),
		Content: content,
		Source:  md[metaSource],
		Title:   md[metaTitle],
		Section: md[metaSection],
	}
	if !chunk.Type.Valid() {
		chunk.Type = models.ChunkTypeText
	}
	chunk.Page = atoiOrZero(md[metaPage])
	chunk.ChunkIndex = atoiOrZero(md[metaChunkIndex])
	chunk.TableIndex = atoiOrZero(md[metaTableIndex])
	chunk.ImageIndex = atoiOrZero(md[metaImageIndex])
	return chunk
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
