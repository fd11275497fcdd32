package extractor

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tsawler/tabula/reader"

	"github.com/RAGUL-49/RAG-DOCUMENT-INTELLIGENCE/internal/models"
)

// Recognizer turns encoded image bytes into text. An empty result means
// nothing was recognized.
type Recognizer interface {
	Recognize(imageData []byte) (string, error)
}

// ImageOCRExtractor runs OCR over every embedded PDF image and emits one
// chunk per image with non-blank recognized text.
type ImageOCRExtractor struct {
	ocr Recognizer
}

// NewImageOCRExtractor builds the extractor. A nil recognizer (OCR engine
// unavailable) yields an extractor that always returns zero chunks.
func NewImageOCRExtractor(ocr Recognizer) *ImageOCRExtractor {
	return &ImageOCRExtractor{ocr: ocr}
}

func (e *ImageOCRExtractor) Extract(path string) ([]models.Chunk, error) {
	if e.ocr == nil || strings.ToLower(filepath.Ext(path)) != ".pdf" {
		return nil, nil
	}

	r, err := reader.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	pageCount, err := r.PageCount()
	if err != nil {
		return nil, err
	}

	var chunks []models.Chunk
	for i := 0; i < pageCount; i++ {
		page, err := r.GetPage(i)
		if err != nil {
			log.Warn().Err(err).Int("page", i+1).Str("source", path).Msg("Skipping page for OCR")
			continue
		}

		images, err := r.ExtractPageImages(page)
		if err != nil {
			log.Warn().Err(err).Int("page", i+1).Str("source", path).Msg("Could not list page images")
			continue
		}

		for j, img := range images {
			data, err := img.ToPNG()
			if err != nil {
				log.Warn().Err(err).Int("page", i+1).Int("image", j+1).Str("source", path).Msg("Could not decode image")
				continue
			}

			text, err := e.ocr.Recognize(data)
			if err != nil {
				log.Warn().Err(err).Int("page", i+1).Int("image", j+1).Str("source", path).Msg("OCR failed for image")
				continue
			}
			if strings.TrimSpace(text) == "" {
				continue
			}

			chunks = append(chunks, models.Chunk{
				Type:       models.ChunkTypeOCR,
				Content:    strings.TrimSpace(text),
				Page:       i + 1,
				Source:     path,
				ImageIndex: j + 1,
			})
		}
	}
	return chunks, nil
}
