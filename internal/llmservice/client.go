// Package llmservice is the gateway to the external completion service.
package llmservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/SAsh-1102/product-chatbot/internal/config"
)

var (
	// ErrUnavailable marks transport or service failures from the
	// completion endpoint.
	ErrUnavailable = errors.New("completion service unavailable")
	// ErrEmptyCompletion marks a response that carried no usable text.
	ErrEmptyCompletion = errors.New("completion service returned no content")
)

// Client sends single-turn completion requests to an OpenAI-compatible
// endpoint with a fixed model, temperature and output-token ceiling.
type Client struct {
	llm         *openai.LLM
	temperature float64
	maxTokens   int
}

func NewClient(cfg *config.LLMConfig, apiKey string) (*Client, error) {
	llm, err := openai.New(
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithToken(strings.TrimPrefix(apiKey, "Bearer ")),
		openai.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("initializing completion client: %w", err)
	}
	return &Client{llm: llm, temperature: cfg.Temperature, maxTokens: cfg.MaxTokens}, nil
}

// Complete sends the prompt and returns the trimmed completion text. Failures
// come back as ErrUnavailable or ErrEmptyCompletion; the caller decides what
// the user sees.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	messages := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextContent{Text: prompt}},
		},
	}

	resp, err := c.llm.GenerateContent(ctx, messages,
		llms.WithTemperature(c.temperature),
		llms.WithMaxTokens(c.maxTokens),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	answer := strings.TrimSpace(resp.Choices[0].Content)
	if answer == "" {
		return "", ErrEmptyCompletion
	}
	return answer, nil
}
