package chunker

import (
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
	"github.com/rs/zerolog/log"

	"github.com/RAGUL-49/RAG-DOCUMENT-INTELLIGENCE/internal/models"
)

// Chunker splits oversized text chunks into overlapping sub-chunks. Only
// text chunks whose word count exceeds ChunkSize are split; everything else
// passes through unchanged.
type Chunker struct {
	chunkSize int // max words per emitted chunk
	overlap   int // sentences carried over into the next chunk

	tokenizer *sentences.DefaultSentenceTokenizer
}

func New(chunkSize, overlap int) *Chunker {
	if chunkSize <= 0 {
		chunkSize = 512
	}
	if overlap < 0 {
		overlap = 0
	}
	// An overlap as large as the chunk size would keep buffers from ever
	// shrinking. Config validation clamps this too; guard again here for
	// callers constructing the chunker directly.
	if overlap >= chunkSize {
		overlap = chunkSize / 2
	}

	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		log.Warn().Err(err).Msg("Sentence tokenizer unavailable, falling back to '. ' split")
		tokenizer = nil
	}

	return &Chunker{chunkSize: chunkSize, overlap: overlap, tokenizer: tokenizer}
}

// Process decides whether a chunk needs splitting and returns the resulting
// sequence. The input chunk is never mutated.
func (c *Chunker) Process(chunk models.Chunk) []models.Chunk {
	if chunk.Type != models.ChunkTypeText || chunk.WordCount() <= c.chunkSize {
		return []models.Chunk{chunk}
	}
	return c.chunkBySentence(chunk)
}

// chunkBySentence accumulates sentences up to the word budget, seeding each
// new buffer with the last overlap sentences of the previous one.
func (c *Chunker) chunkBySentence(chunk models.Chunk) []models.Chunk {
	sents := c.splitSentences(chunk.Content)

	var out []models.Chunk
	var buf []string
	bufWords := 0

	emit := func() {
		sub := chunk
		sub.Content = strings.Join(buf, " ")
		sub.ChunkIndex = len(out)
		out = append(out, sub)
	}

	for _, sent := range sents {
		sentWords := len(strings.Fields(sent))

		if bufWords+sentWords > c.chunkSize && len(buf) > 0 {
			emit()
			if c.overlap > 0 && c.overlap < len(buf) {
				buf = append([]string(nil), buf[len(buf)-c.overlap:]...)
			} else if c.overlap > 0 {
				buf = append([]string(nil), buf...)
			} else {
				buf = nil
			}
			bufWords = 0
			for _, s := range buf {
				bufWords += len(strings.Fields(s))
			}
		}

		buf = append(buf, sent)
		bufWords += sentWords
	}

	if len(buf) > 0 {
		emit()
	}

	return out
}

// splitSentences segments text with the Punkt tokenizer, falling back to a
// literal ". " split when the tokenizer is unavailable.
func (c *Chunker) splitSentences(text string) []string {
	if c.tokenizer == nil {
		return splitLiteral(text)
	}

	raw := c.tokenizer.Tokenize(text)
	sents := make([]string, 0, len(raw))
	for _, s := range raw {
		t := strings.TrimSpace(s.Text)
		if t != "" {
			sents = append(sents, t)
		}
	}
	if len(sents) == 0 {
		return splitLiteral(text)
	}
	return sents
}

func splitLiteral(text string) []string {
	parts := strings.Split(text, ". ")
	sents := make([]string, 0, len(parts))
	for i, p := range parts {
		t := strings.TrimSpace(p)
		if t == "" {
			continue
		}
		// Split removed the terminator; restore it on all but the last part.
		if i < len(parts)-1 && !strings.HasSuffix(t, ".") {
			t += "."
		}
		sents = append(sents, t)
	}
	return sents
}
