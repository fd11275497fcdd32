// Package llmservice wraps the chat-completion backend. One call, no
// internal retries; failures surface to the caller.
package llmservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/RAGUL-49/RAG-DOCUMENT-INTELLIGENCE/internal/config"
)

// Client invokes the language model once with a system and user prompt.
type Client interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type llmClient struct {
	model llms.Model
}

// NewClient builds a chat client for the configured provider.
func NewClient(llmConfig *config.LLMConfig) (Client, error) {
	switch llmConfig.Provider {
	case "openai", "":
		model, err := openai.New(
			openai.WithBaseURL(llmConfig.BaseURL),
			openai.WithToken(strings.TrimPrefix(llmConfig.Key, "Bearer ")),
			openai.WithModel(llmConfig.Model),
		)
		if err != nil {
			return nil, fmt.Errorf("init openai client: %w", err)
		}
		return &llmClient{model: model}, nil
	case "ollama":
		model, err := ollama.New(
			ollama.WithServerURL(llmConfig.BaseURL),
			ollama.WithModel(llmConfig.Model),
		)
		if err != nil {
			return nil, fmt.Errorf("init ollama client: %w", err)
		}
		return &llmClient{model: model}, nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", llmConfig.Provider)
	}
}

func (c *llmClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	log.Debug().Int("prompt_len", len(userPrompt)).Msg("Generating content")

	messages := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextContent{Text: systemPrompt}},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextContent{Text: userPrompt}},
		},
	}

	res, err := c.model.GenerateContent(ctx, messages)
	if err != nil {
		return "", err
	}
	if len(res.Choices) == 0 {
		return "", fmt.Errorf("model returned no choices")
	}
	return res.Choices[0].Content, nil
}
