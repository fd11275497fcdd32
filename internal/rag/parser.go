package rag

import (
	"strings"

	"github.com/RAGUL-49/RAG-DOCUMENT-INTELLIGENCE/internal/models"
)

// Section markers the model is instructed to emit. Matching is
// case-insensitive and tolerant of leading markdown decoration.
var sectionMarkers = []string{"answer:", "confidence:", "citations:"}

// ParseResponse extracts the structured sections from a model reply.
// Missing sections fall back to defaults; a reply with no markers at
// all is treated as a bare answer.
func ParseResponse(raw string) models.ParsedAnswer {
	parsed := models.ParsedAnswer{
		Answer:     "No answer found.",
		Confidence: models.ConfidenceUnknown,
		Citations:  "None",
	}

	text := strings.TrimSpace(raw)
	if text == "" {
		return parsed
	}

	sections := splitSections(text)
	if len(sections) == 0 {
		parsed.Answer = text
		return parsed
	}

	if v, ok := sections["answer"]; ok && v != "" {
		parsed.Answer = v
	}
	if v, ok := sections["confidence"]; ok && v != "" {
		parsed.Confidence = models.NormalizeConfidence(v)
	}
	if v, ok := sections["citations"]; ok && v != "" {
		parsed.Citations = v
	}
	return parsed
}

// splitSections scans line by line for section markers and collects
// the text following each one until the next marker.
func splitSections(text string) map[string]string {
	sections := make(map[string]string)
	var current string
	var buf []string

	flush := func() {
		if current != "" {
			sections[current] = strings.TrimSpace(strings.Join(buf, "\n"))
		}
		buf = buf[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		name, rest, ok := matchMarker(line)
		if ok {
			flush()
			current = name
			if rest != "" {
				buf = append(buf, rest)
			}
			continue
		}
		if current != "" {
			buf = append(buf, line)
		}
	}
	flush()
	return sections
}

// matchMarker reports whether a line starts a new section, returning
// the section name and any text after the colon.
func matchMarker(line string) (name, rest string, ok bool) {
	trimmed := strings.TrimLeft(strings.TrimSpace(line), "*#- ")
	lower := strings.ToLower(trimmed)
	for _, marker := range sectionMarkers {
		if strings.HasPrefix(lower, marker) {
			name = strings.TrimSuffix(marker, ":")
			rest = strings.TrimSpace(strings.Trim(trimmed[len(marker):], "*"))
			return name, rest, true
		}
	}
	return "", "", false
}
