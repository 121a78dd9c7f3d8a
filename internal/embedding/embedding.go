// Package embedding constructs the text embedder used to index catalog
// chunks and queries.
package embedding

import (
	"fmt"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/SAsh-1102/product-chatbot/internal/config"
)

// NewEmbedder creates an embedder for the configured provider. The apiKey is
// only used by the openai-compatible provider; ollama needs none.
func NewEmbedder(cfg *config.EmbeddingConfig, apiKey string) (*embeddings.EmbedderImpl, error) {
	switch cfg.Provider {
	case "ollama":
		llm, err := ollama.New(
			ollama.WithServerURL(cfg.BaseURL),
			ollama.WithModel(cfg.Model),
		)
		if err != nil {
			return nil, fmt.Errorf("initializing ollama embedder: %w", err)
		}
		return embeddings.NewEmbedder(llm)
	case "openai":
		llm, err := openai.New(
			openai.WithBaseURL(cfg.BaseURL),
			openai.WithToken(apiKey),
			openai.WithModel(cfg.Model),
		)
		if err != nil {
			return nil, fmt.Errorf("initializing openai embedder: %w", err)
		}
		return embeddings.NewEmbedder(llm)
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", cfg.Provider)
	}
}
