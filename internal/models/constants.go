package models

// Caption patterns used by the chart metadata extractor. Each pattern
// captures the caption text following the figure/table marker.
var ChartCaptionPatterns = []string{
	`(?i)Figure \d+[:\.]?\s*([^\n]+)`,
	`(?i)Chart \d+[:\.]?\s*([^\n]+)`,
	`(?i)Graph \d+[:\.]?\s*([^\n]+)`,
	`(?i)Table \d+[:\.]?\s*([^\n]+)`,
}

// CaptionContextWindow is the number of bytes of surrounding text kept on
// each side of a caption match.
const CaptionContextWindow = 200

// ContextSeparator joins rendered chunk blocks in the merged context.
const ContextSeparator = "\n-------------------\n"

const SystemPrompt = `You are a document analysis assistant. Answer the user's question using only the provided context extracted from their documents. The context may contain text passages, tables, OCR extracts from figures, and chart metadata. Cite the chunk labels (e.g. [Text Chunk 2], [Table 1]) you relied on.

Format your reply with exactly these sections:
Answer: <your answer>
Confidence: <High, Medium, or Low>
Citations: <comma-separated chunk labels, or None>`

// QueryPromptTemplate fills in the merged context followed by the question.
var QueryPromptTemplate = `Context:
%s

Question: %s`
