package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultChunkSize    = 512 // words
	defaultChunkOverlap = 2   // sentences carried into the next chunk
	defaultTopK         = 5
	defaultRerankTopK   = 3
	defaultVectorSize   = 768
)

// LLMConfig selects and configures one model backend.
type LLMConfig struct {
	Provider string `yaml:"provider"` // "openai" or "ollama"
	BaseURL  string `yaml:"base_url"`
	Key      string `yaml:"key"`
	Model    string `yaml:"model"`
}

// RAGConfig holds chunking and retrieval settings.
type RAGConfig struct {
	ChunkSize     int    `yaml:"chunk_size"`    // max words per text chunk
	ChunkOverlap  int    `yaml:"chunk_overlap"` // sentences of overlap between chunks
	TopK          int    `yaml:"top_k"`
	RerankTopK    int    `yaml:"rerank_top_k"`
	VectorBackend string `yaml:"vector_backend"` // "chromem" (default) or "postgres"
	DBPath        string `yaml:"db_path"`
	Collection    string `yaml:"collection"`
	InMemory      bool   `yaml:"in_memory"`
	EncryptionKey string `yaml:"encryption_key"`
}

// RerankerConfig points at a cross-encoder rerank endpoint.
type RerankerConfig struct {
	Enabled bool   `yaml:"enabled"`
	BaseURL string `yaml:"base_url"`
	Key     string `yaml:"key"`
	Model   string `yaml:"model"`
}

// DatabaseConfig configures the optional Postgres/pgvector backend.
type DatabaseConfig struct {
	DSN        string `yaml:"dsn"`
	Password   string `yaml:"password"`
	VectorSize int    `yaml:"vector_size"`
	Debug      bool   `yaml:"debug"`
}

type Config struct {
	RAG          RAGConfig      `yaml:"rag"`
	EmbedLLM     LLMConfig      `yaml:"embed_llm"`
	InferenceLLM LLMConfig      `yaml:"inference_llm"`
	Reranker     RerankerConfig `yaml:"reranker"`
	Database     DatabaseConfig `yaml:"database"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.ApplyDefaults()
	return &cfg, nil
}

// ApplyDefaults fills in zero values and clamps the chunk overlap so buffers
// always shrink after a split.
func (c *Config) ApplyDefaults() {
	if c.RAG.ChunkSize <= 0 {
		c.RAG.ChunkSize = defaultChunkSize
	}
	if c.RAG.ChunkOverlap < 0 {
		c.RAG.ChunkOverlap = 0
	}
	if c.RAG.ChunkOverlap >= c.RAG.ChunkSize {
		c.RAG.ChunkOverlap = defaultChunkOverlap
	}
	if c.RAG.TopK <= 0 {
		c.RAG.TopK = defaultTopK
	}
	if c.RAG.RerankTopK <= 0 {
		c.RAG.RerankTopK = defaultRerankTopK
	}
	if c.RAG.VectorBackend == "" {
		c.RAG.VectorBackend = "chromem"
	}
	if c.RAG.DBPath == "" {
		c.RAG.DBPath = "./data/vector_db"
	}
	if c.RAG.Collection == "" {
		c.RAG.Collection = "documents"
	}
	if c.Database.VectorSize <= 0 {
		c.Database.VectorSize = defaultVectorSize
	}
}
