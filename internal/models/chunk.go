package models

// ChunkType tags the modality a chunk was extracted from.
type ChunkType string

const (
	ChunkTypeText          ChunkType = "text"
	ChunkTypeTable         ChunkType = "table"
	ChunkTypeOCR           ChunkType = "ocr"
	ChunkTypeChartMetadata ChunkType = "chart_metadata"
)

// Valid reports whether t is one of the four known chunk types.
func (t ChunkType) Valid() bool {
	switch t {
	case ChunkTypeText, ChunkTypeTable, ChunkTypeOCR, ChunkTypeChartMetadata:
		return true
	}
	return false
}

// Chunk is the unit of retrieval. Every chunk carries the common header
// (Type, Page, Source); the remaining fields are populated per type:
// ChunkIndex for split text chunks, TableIndex for tables, ImageIndex for
// OCR extracts, Title for chart metadata.
type Chunk struct {
	Type    ChunkType
	Content string
	Page    int    // 1-based page number in the source document
	Source  string // document path or name

	ChunkIndex int    // zero-based sub-split ordinal (text only)
	TableIndex int    // 1-based table ordinal within the document
	ImageIndex int    // 1-based image ordinal within the page
	Title      string // caption text (chart metadata only)
	Section    string // optional section label (text only)
}

// WordCount counts whitespace-separated words in the chunk content.
func (c Chunk) WordCount() int {
	n := 0
	inWord := false
	for _, r := range c.Content {
		switch r {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			inWord = false
		default:
			if !inWord {
				n++
			}
			inWord = true
		}
	}
	return n
}

// RetrievedChunk is a chunk returned from the vector index at query time.
// Distance is the cosine distance reported by the index (lower is closer).
// RerankScore is attached by the reranker; higher is strictly more relevant.
type RetrievedChunk struct {
	ID          string
	Chunk       Chunk
	Distance    float32
	RerankScore float64
}
