// Package server exposes the answering pipeline over HTTP.
package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Answerer resolves a validated query to an answer string.
type Answerer interface {
	Answer(ctx context.Context, query string) string
}

const emptyQueryMessage = "Please type a question to get started!"

// Server wires the HTTP routes to the answering pipeline.
type Server struct {
	engine      *gin.Engine
	rag         Answerer
	catalogSize int
}

func New(rag Answerer, catalogSize int) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestID(), requestLogger(), cors())

	s := &Server{engine: engine, rag: rag, catalogSize: catalogSize}

	engine.POST("/ask", s.handleAsk)
	engine.OPTIONS("/ask", s.handlePreflight)
	engine.GET("/health", s.handleHealth)
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})

	return s
}

// Run blocks serving HTTP on addr.
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Handler exposes the router, used by tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

type askRequest struct {
	Query string `json:"query"`
	// Accepted for client compatibility; the pipeline does not use it.
	ConversationID string `json:"conversation_id"`
}

func (s *Server) handleAsk(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"answer": emptyQueryMessage})
		return
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"answer": emptyQueryMessage})
		return
	}

	log.Debug().
		Str("request_id", c.GetString(requestIDKey)).
		Str("conversation_id", req.ConversationID).
		Int("query_length", len(query)).
		Msg("Answering query")

	answer := s.rag.Answer(c.Request.Context(), query)
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}

func (s *Server) handlePreflight(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":          "healthy",
		"timestamp":       time.Now().Format(time.RFC3339),
		"services_loaded": s.catalogSize,
	})
}
