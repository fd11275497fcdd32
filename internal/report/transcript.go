// Package report records a chat session and renders it to a shareable
// HTML transcript.
package report

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"

	"github.com/RAGUL-49/RAG-DOCUMENT-INTELLIGENCE/internal/helper"
	"github.com/RAGUL-49/RAG-DOCUMENT-INTELLIGENCE/internal/models"
)

// Entry is one question and its assembled answer.
type Entry struct {
	Question string
	Answer   models.ParsedAnswer
	Asked    time.Time
}

// Transcript accumulates a chat session in order.
type Transcript struct {
	Document string
	Started  time.Time
	Entries  []Entry
}

func NewTranscript(document string) *Transcript {
	return &Transcript{Document: document, Started: time.Now()}
}

func (t *Transcript) Add(question string, answer models.ParsedAnswer) {
	t.Entries = append(t.Entries, Entry{Question: question, Answer: answer, Asked: time.Now()})
}

// Markdown renders the session as a markdown document.
func (t *Transcript) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Chat Transcript\n\n")
	fmt.Fprintf(&b, "- Document: %s\n", t.Document)
	fmt.Fprintf(&b, "- Started: %s\n\n", t.Started.Format(time.RFC3339))
	for i, e := range t.Entries {
		fmt.Fprintf(&b, "## Q%d: %s\n\n", i+1, e.Question)
		fmt.Fprintf(&b, "%s\n\n", e.Answer.Answer)
		fmt.Fprintf(&b, "- Confidence: %s\n", e.Answer.Confidence)
		fmt.Fprintf(&b, "- Citations: %s\n\n", e.Answer.Citations)
	}
	return b.String()
}

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(htmlrenderer.WithHardWraps()),
)

const htmlShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Chat Transcript</title>
<style>
body { font-family: sans-serif; max-width: 48em; margin: 2em auto; padding: 0 1em; }
h2 { border-top: 1px solid #ddd; padding-top: 1em; }
</style>
</head>
<body>
%s</body>
</html>
`

// WriteHTML renders the transcript to an HTML file at path, creating
// parent directories as needed.
func (t *Transcript) WriteHTML(path string) error {
	var body bytes.Buffer
	if err := md.Convert([]byte(t.Markdown()), &body); err != nil {
		return fmt.Errorf("render transcript: %w", err)
	}
	if err := helper.EnsureDir(path); err != nil {
		return fmt.Errorf("create transcript dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(fmt.Sprintf(htmlShell, body.String())), 0o644); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	return nil
}
