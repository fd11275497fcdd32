package retriever

import (
	"context"

	"github.com/RAGUL-49/RAG-DOCUMENT-INTELLIGENCE/internal/models"
	"github.com/RAGUL-49/RAG-DOCUMENT-INTELLIGENCE/internal/vectorstore"
)

// Store answers nearest-neighbor queries with index-aligned parallel
// sequences.
type Store interface {
	Query(ctx context.Context, text string, k int) vectorstore.QueryResult
}

// Retriever zips the store's parallel query result into chunk records.
type Retriever struct {
	store Store
	topK  int
}

func New(store Store, topK int) *Retriever {
	if topK <= 0 {
		topK = 5
	}
	return &Retriever{store: store, topK: topK}
}

// Retrieve returns the top-k chunks ranked by the index. An empty-shaped
// store result yields an empty sequence, never an error.
func (r *Retriever) Retrieve(ctx context.Context, query string, topK int) []models.RetrievedChunk {
	if topK <= 0 {
		topK = r.topK
	}

	result := r.store.Query(ctx, query, topK)

	chunks := make([]models.RetrievedChunk, 0, len(result.IDs))
	for i := range result.IDs {
		var content string
		if i < len(result.Documents) {
			content = result.Documents[i]
		}
		var metadata map[string]string
		if i < len(result.Metadatas) {
			metadata = result.Metadatas[i]
		}
		var distance float32
		if i < len(result.Distances) {
			distance = result.Distances[i]
		}
		chunks = append(chunks, models.RetrievedChunk{
			ID:       result.IDs[i],
			Chunk:    vectorstore.ChunkFromMetadata(content, metadata),
			Distance: distance,
		})
	}
	return chunks
}
