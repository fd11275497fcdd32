// Package ingest sequences the extractors and the chunker into one ordered
// chunk list per document. Extraction is best-effort: a failing extractor
// contributes zero chunks without aborting the others.
package ingest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/RAGUL-49/RAG-DOCUMENT-INTELLIGENCE/internal/models"
)

// Extractor is the shape shared by the text, table and OCR extractors.
type Extractor interface {
	Extract(path string) ([]models.Chunk, error)
}

// CaptionExtractor runs over already extracted text chunks.
type CaptionExtractor interface {
	ExtractChartInfo(text string, page int, source string) []models.Chunk
}

// Splitter post-processes oversized chunks.
type Splitter interface {
	Process(chunk models.Chunk) []models.Chunk
}

// SupportedExtensions lists the document formats the pipeline accepts.
var SupportedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".xlsx": true,
	".ods":  true,
	".txt":  true,
}

// Pipeline wires the extraction stages together.
type Pipeline struct {
	text    Extractor
	tables  Extractor
	ocr     Extractor
	charts  CaptionExtractor
	chunker Splitter
}

func NewPipeline(text, tables, ocr Extractor, charts CaptionExtractor, chunker Splitter) *Pipeline {
	return &Pipeline{
		text:    text,
		tables:  tables,
		ocr:     ocr,
		charts:  charts,
		chunker: chunker,
	}
}

// ProcessDocument extracts and chunks one document. It never returns an
// error: a missing or unsupported file logs and yields an empty sequence,
// and any extractor failure only drops that extractor's contribution.
func (p *Pipeline) ProcessDocument(path string) []models.Chunk {
	if _, err := os.Stat(path); err != nil {
		log.Error().Err(err).Str("source", path).Msg("File not found")
		return nil
	}
	if !SupportedExtensions[strings.ToLower(filepath.Ext(path))] {
		log.Error().Str("source", path).Msg("Unsupported file format")
		return nil
	}

	log.Info().Str("source", path).Msg("Processing document")

	var all []models.Chunk

	textChunks, err := p.text.Extract(path)
	if err != nil {
		log.Error().Err(err).Str("source", path).Msg("Text extraction failed")
	}
	all = append(all, textChunks...)

	tableChunks, err := p.tables.Extract(path)
	if err != nil {
		log.Error().Err(err).Str("source", path).Msg("Table extraction failed")
	}
	all = append(all, tableChunks...)

	ocrChunks, err := p.ocr.Extract(path)
	if err != nil {
		log.Error().Err(err).Str("source", path).Msg("Image OCR failed")
	}
	all = append(all, ocrChunks...)

	for _, chunk := range textChunks {
		all = append(all, p.charts.ExtractChartInfo(chunk.Content, chunk.Page, chunk.Source)...)
	}

	var final []models.Chunk
	for _, chunk := range all {
		final = append(final, p.chunker.Process(chunk)...)
	}

	log.Info().Int("chunks", len(final)).Str("source", path).Msg("Document processed")
	return final
}

// SaveChunks writes the processed chunks to a JSON file for inspection.
func SaveChunks(chunks []models.Chunk, outputPath string) error {
	data, err := json.MarshalIndent(chunks, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return err
	}
	log.Info().Int("chunks", len(chunks)).Str("path", outputPath).Msg("Saved chunks")
	return nil
}
