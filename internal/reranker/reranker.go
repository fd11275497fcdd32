// Package reranker re-scores retrieved chunks against the query with a
// cross-encoder relevance model and keeps the top-k.
package reranker

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/RAGUL-49/RAG-DOCUMENT-INTELLIGENCE/internal/models"
)

// Scorer scores every (query, document) pair in one batch call. The
// returned slice is index-aligned with docs; higher is more relevant.
type Scorer interface {
	Score(ctx context.Context, query string, docs []string) ([]float64, error)
}

type Reranker struct {
	scorer Scorer
	topK   int
}

func New(scorer Scorer, topK int) *Reranker {
	if topK <= 0 {
		topK = 3
	}
	return &Reranker{scorer: scorer, topK: topK}
}

// Rerank scores the whole candidate set in one request, sorts by score
// descending (stable, so ties keep retrieval order) and truncates to top-k.
// Empty input returns an empty sequence. If the scorer fails, the chunks
// keep their retrieval order and are truncated to top-k.
func (r *Reranker) Rerank(ctx context.Context, query string, chunks []models.RetrievedChunk, topK int) []models.RetrievedChunk {
	if topK <= 0 {
		topK = r.topK
	}
	if len(chunks) == 0 {
		return []models.RetrievedChunk{}
	}

	docs := make([]string, len(chunks))
	for i, chunk := range chunks {
		docs[i] = chunk.Chunk.Content
	}

	out := make([]models.RetrievedChunk, len(chunks))
	copy(out, chunks)

	scores, err := r.scorer.Score(ctx, query, docs)
	if err != nil || len(scores) != len(out) {
		log.Warn().Err(err).Msg("Rerank scoring failed, keeping retrieval order")
		if len(out) > topK {
			out = out[:topK]
		}
		return out
	}

	for i := range out {
		out[i].RerankScore = scores[i]
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RerankScore > out[j].RerankScore
	})

	if len(out) > topK {
		out = out[:topK]
	}
	return out
}
