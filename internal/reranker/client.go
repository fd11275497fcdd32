package reranker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/RAGUL-49/RAG-DOCUMENT-INTELLIGENCE/internal/config"
)

// CrossEncoderClient calls a rerank HTTP endpoint (Jina/Cohere wire format):
// one POST scores the whole candidate batch.
type CrossEncoderClient struct {
	baseURL string
	key     string
	model   string
	client  *http.Client
}

func NewCrossEncoderClient(cfg *config.RerankerConfig) *CrossEncoderClient {
	return &CrossEncoderClient{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		key:     cfg.Key,
		model:   cfg.Model,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *CrossEncoderClient) Score(ctx context.Context, query string, docs []string) ([]float64, error) {
	payload := struct {
		Model     string   `json:"model"`
		Query     string   `json:"query"`
		Documents []string `json:"documents"`
	}{
		Model:     c.model,
		Query:     query,
		Documents: docs,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/rerank", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+strings.TrimPrefix(c.key, "Bearer "))
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("rerank request failed: %d, %s", resp.StatusCode, string(body))
	}

	var parsed struct {
		Results []struct {
			Index          int     `json:"index"`
			RelevanceScore float64 `json:"relevance_score"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode rerank response: %w", err)
	}

	// A short result set would leave scores at zero and silently misrank.
	if len(parsed.Results) != len(docs) {
		return nil, fmt.Errorf("rerank response has %d results for %d documents", len(parsed.Results), len(docs))
	}

	scores := make([]float64, len(docs))
	for _, result := range parsed.Results {
		if result.Index < 0 || result.Index >= len(scores) {
			return nil, fmt.Errorf("rerank response index %d out of range", result.Index)
		}
		scores[result.Index] = result.RelevanceScore
	}
	return scores, nil
}

var _ Scorer = (*CrossEncoderClient)(nil)
