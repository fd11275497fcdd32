package extractor

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/RAGUL-49/RAG-DOCUMENT-INTELLIGENCE/internal/models"
)

// ChartMetadataExtractor finds figure/chart/graph/table captions in already
// extracted text and emits one chunk per caption with a window of
// surrounding text as context.
type ChartMetadataExtractor struct {
	patterns []*regexp.Regexp
}

func NewChartMetadataExtractor() *ChartMetadataExtractor {
	patterns := make([]*regexp.Regexp, 0, len(models.ChartCaptionPatterns))
	for _, p := range models.ChartCaptionPatterns {
		patterns = append(patterns, regexp.MustCompile(p))
	}
	return &ChartMetadataExtractor{patterns: patterns}
}

// ExtractChartInfo scans one text chunk's content for caption markers.
func (e *ChartMetadataExtractor) ExtractChartInfo(text string, page int, source string) []models.Chunk {
	var chunks []models.Chunk

	for _, pattern := range e.patterns {
		for _, match := range pattern.FindAllStringSubmatchIndex(text, -1) {
			title := strings.TrimSpace(text[match[2]:match[3]])

			start := runesBefore(text, match[0], models.CaptionContextWindow)
			end := runesAfter(text, match[1], models.CaptionContextWindow)

			chunks = append(chunks, models.Chunk{
				Type:    models.ChunkTypeChartMetadata,
				Content: text[start:end],
				Page:    page,
				Source:  source,
				Title:   title,
			})
		}
	}
	return chunks
}

// runesBefore returns the byte offset n runes before pos, clamped to the
// start of text. Regex match offsets are byte positions, so the window is
// widened rune by rune to keep multi-byte characters intact.
func runesBefore(text string, pos, n int) int {
	for ; n > 0 && pos > 0; n-- {
		_, size := utf8.DecodeLastRuneInString(text[:pos])
		pos -= size
	}
	return pos
}

// runesAfter returns the byte offset n runes after pos, clamped to the end
// of text.
func runesAfter(text string, pos, n int) int {
	for ; n > 0 && pos < len(text); n-- {
		_, size := utf8.DecodeRuneInString(text[pos:])
		pos += size
	}
	return pos
}
