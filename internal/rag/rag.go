// Package rag runs the answering pipeline: casual short-circuit, context
// retrieval, prompt composition, and the completion call.
package rag

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/SAsh-1102/product-chatbot/internal/casual"
)

// Searcher retrieves the top-k chunks for a query.
type Searcher interface {
	Search(ctx context.Context, query string, k int) ([]string, error)
}

// Completer sends a composed prompt to the completion service.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

const defaultTopK = 5

const (
	noContextFound     = "No specific information found."
	contextUnavailable = "Unable to retrieve context."
	apology            = "Sorry, I encountered an error processing your request. Please try again or contact us directly at director@emergingssoftware.com"
)

// Service answers catalog questions. Its collaborators are fixed after
// construction and it keeps no per-request state.
type Service struct {
	index Searcher
	llm   Completer
	topK  int
}

func NewService(index Searcher, llm Completer, topK int) *Service {
	if topK <= 0 {
		topK = defaultTopK
	}
	return &Service{index: index, llm: llm, topK: topK}
}

// Answer resolves a query to an answer string. Every failure past input
// validation degrades to a fixed natural-language reply; this never errors.
func (s *Service) Answer(ctx context.Context, query string) string {
	if reply, ok := casual.Match(query); ok {
		return reply
	}

	contextBlock := s.retrieveContext(ctx, query)
	prompt := composePrompt(contextBlock, query)

	answer, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Msg("Error generating answer")
		return apology
	}

	log.Debug().Int("answer_length", len(answer)).Msg("Generated answer")
	return answer
}

// retrieveContext joins the top-k chunks for the query. Retrieval failure
// must never abort the request, so errors and empty results both degrade to
// fixed fallback sentences.
func (s *Service) retrieveContext(ctx context.Context, query string) string {
	chunks, err := s.index.Search(ctx, query, s.topK)
	if err != nil {
		log.Error().Err(err).Msg("Error in vector search")
		return contextUnavailable
	}

	joined := strings.TrimSpace(strings.Join(chunks, "\n"))
	if joined == "" {
		return noContextFound
	}
	return joined
}
