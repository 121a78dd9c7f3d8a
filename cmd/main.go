package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/SAsh-1102/product-chatbot/internal/catalog"
	"github.com/SAsh-1102/product-chatbot/internal/config"
	"github.com/SAsh-1102/product-chatbot/internal/embedding"
	"github.com/SAsh-1102/product-chatbot/internal/index"
	"github.com/SAsh-1102/product-chatbot/internal/llmservice"
	"github.com/SAsh-1102/product-chatbot/internal/rag"
	"github.com/SAsh-1102/product-chatbot/internal/server"
)

const defaultConfigPath = "./configs/config.yaml"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).With().Caller().Logger()

	configPath := flag.String("config", defaultConfigPath, "Path to the config file")
	flag.Parse()

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading config")
	}

	apiKey := os.Getenv(cfg.LLM.KeyEnv)
	if apiKey == "" {
		log.Fatal().Str("env", cfg.LLM.KeyEnv).Msg("Completion service credential not set")
	}

	entries, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Catalog.Path).Msg("Error loading catalog")
	}
	log.Info().Int("services", len(entries)).Msg("Loaded catalog")

	chunks := catalog.Flatten(entries)
	if len(chunks) == 0 {
		log.Fatal().Msg("Catalog produced no retrievable chunks")
	}
	log.Info().Int("chunks", len(chunks)).Msg("Flattened catalog")

	embedder, err := embedding.NewEmbedder(&cfg.Embedding, apiKey)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing embedder")
	}

	idx, err := index.Build(context.Background(), embedder, chunks)
	if err != nil {
		log.Fatal().Err(err).Msg("Error building semantic index")
	}
	log.Info().Int("indexed", idx.Len()).Msg("Semantic index ready")

	llmClient, err := llmservice.NewClient(&cfg.LLM, apiKey)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing completion client")
	}

	ragService := rag.NewService(idx, llmClient, cfg.RAG.TopK)

	srv := server.New(ragService, len(entries))
	log.Info().Str("addr", cfg.Server.Addr).Msg("Starting server")
	if err := srv.Run(cfg.Server.Addr); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
