// Package rag ties retrieval, reranking, context assembly and the
// language model together into the question answering path.
package rag

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/RAGUL-49/RAG-DOCUMENT-INTELLIGENCE/internal/helper"
	"github.com/RAGUL-49/RAG-DOCUMENT-INTELLIGENCE/internal/llmservice"
	"github.com/RAGUL-49/RAG-DOCUMENT-INTELLIGENCE/internal/merger"
	"github.com/RAGUL-49/RAG-DOCUMENT-INTELLIGENCE/internal/models"
)

// Retriever produces the candidate chunks for a query. A topK of zero
// means use the retriever's configured default.
type Retriever interface {
	Retrieve(ctx context.Context, query string, topK int) []models.RetrievedChunk
}

// Reranker reorders candidates by cross-encoder relevance.
type Reranker interface {
	Rerank(ctx context.Context, query string, chunks []models.RetrievedChunk, topK int) []models.RetrievedChunk
}

// Response is the assembled result for one question.
type Response struct {
	Parsed  models.ParsedAnswer
	Raw     string
	Context string
	Chunks  []models.RetrievedChunk
}

// Engine answers questions over the indexed document corpus.
type Engine struct {
	retriever Retriever
	reranker  Reranker
	merger    *merger.Merger
	llm       llmservice.Client
}

func New(retriever Retriever, reranker Reranker, llm llmservice.Client) *Engine {
	return &Engine{retriever: retriever, reranker: reranker, merger: merger.New(), llm: llm}
}

// Query runs the full pipeline for a single question. Retrieval and
// reranking degrade silently to whatever they can produce; only a
// model failure is returned as an error.
func (e *Engine) Query(ctx context.Context, question string) (*Response, error) {
	candidates := e.retriever.Retrieve(ctx, question, 0)
	log.Debug().Int("candidates", len(candidates)).Msg("Retrieved chunks")

	ranked := candidates
	if e.reranker != nil {
		ranked = e.reranker.Rerank(ctx, question, candidates, 0)
	}

	contextText := e.merger.CreateContext(ranked)
	prompt := fmt.Sprintf(models.QueryPromptTemplate, contextText, question)

	raw, err := e.llm.Complete(ctx, models.SystemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate answer: %w", err)
	}
	log.Debug().Str("reply", helper.Truncate(raw, 120)).Msg("Model reply")

	return &Response{
		Parsed:  ParseResponse(raw),
		Raw:     raw,
		Context: contextText,
		Chunks:  ranked,
	}, nil
}
