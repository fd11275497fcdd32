// Package vectorstore embeds chunk content and persists (chunk, vector,
// metadata) records in a vector index, and answers nearest-neighbor
// queries. Embedding and backend failures degrade to empty results; they
// never propagate past this package at query time.
package vectorstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/RAGUL-49/RAG-DOCUMENT-INTELLIGENCE/internal/embedding"
	"github.com/RAGUL-49/RAG-DOCUMENT-INTELLIGENCE/internal/models"
)

// Record is a chunk ready for indexing.
type Record struct {
	ID        string
	Content   string
	Metadata  map[string]string
	Embedding []float32
}

// QueryResult holds index-aligned parallel sequences. The zero value is the
// well-formed empty result.
type QueryResult struct {
	IDs       []string
	Documents []string
	Metadatas []map[string]string
	Distances []float32
}

// Index is the persistent nearest-neighbor backend.
type Index interface {
	Add(ctx context.Context, records []Record) error
	Search(ctx context.Context, embedding []float32, k int) (QueryResult, error)
	Clear(ctx context.Context) error
}

// Store pairs an embedding backend with an index backend.
type Store struct {
	index    Index
	embedder embedding.Embedder
}

func NewStore(index Index, embedder embedding.Embedder) *Store {
	return &Store{index: index, embedder: embedder}
}

// AddChunks embeds all chunk contents in one batch call and inserts the
// records whose embedding succeeded. Chunks with failed embeddings are
// dropped with a logged count; they are not retried and not reported to the
// caller. Empty input and total embedding failure are both safe no-ops.
func (s *Store) AddChunks(ctx context.Context, chunks []models.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	contents := make([]string, len(chunks))
	for i, chunk := range chunks {
		contents[i] = chunk.Content
	}

	vectors, err := s.embedder.EmbedDocuments(ctx, contents)
	if err != nil {
		log.Warn().Err(err).Int("chunks", len(chunks)).Msg("Embedding failed, dropping all chunks")
		return nil
	}

	records := make([]Record, 0, len(chunks))
	dropped := 0
	for i, chunk := range chunks {
		if i >= len(vectors) || len(vectors[i]) == 0 {
			dropped++
			continue
		}
		records = append(records, Record{
			ID:        uuid.NewString(),
			Content:   chunk.Content,
			Metadata:  MetadataFromChunk(chunk),
			Embedding: vectors[i],
		})
	}
	if dropped > 0 {
		log.Warn().Int("dropped", dropped).Msg("Dropping chunks with failed embeddings")
	}
	if len(records) == 0 {
		return nil
	}

	return s.index.Add(ctx, records)
}

// Query embeds the text and runs a top-k nearest-neighbor search. Any
// failure along the way degrades to the empty-shaped result so downstream
// stages can treat "no results" uniformly.
func (s *Store) Query(ctx context.Context, text string, k int) QueryResult {
	vector, err := s.embedder.EmbedQuery(ctx, text)
	if err != nil || len(vector) == 0 {
		log.Warn().Err(err).Msg("Query embedding failed, returning empty result")
		return QueryResult{}
	}

	result, err := s.index.Search(ctx, vector, k)
	if err != nil {
		log.Warn().Err(err).Msg("Vector search failed, returning empty result")
		return QueryResult{}
	}
	return result
}

// Clear removes every stored record.
func (s *Store) Clear(ctx context.Context) error {
	return s.index.Clear(ctx)
}
