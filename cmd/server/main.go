package main

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/r-khatri/resumatch/internal/api"
	"github.com/r-khatri/resumatch/internal/extraction"
	"github.com/r-khatri/resumatch/internal/matching"
	"github.com/r-khatri/resumatch/internal/oracle"
	"github.com/r-khatri/resumatch/internal/pipeline"
	"github.com/r-khatri/resumatch/pkg/logger"
)

func main() {
	logger.Setup()

	if err := godotenv.Load(); err != nil {
		slog.Error("Error loading .env file", "error", err)
	}

	slog.Info("Starting resume matcher API...")

	geminiKey := os.Getenv("GEMINI_KEY")
	if geminiKey == "" {
		slog.Error("Gemini API key not found in environment variables")
		os.Exit(1)
	}

	// Models load once at startup and are shared read-only by all requests.
	gemini, err := oracle.NewGemini(geminiKey)
	if err != nil {
		slog.Error("Failed to create model client", "error", err)
		os.Exit(1)
	}
	defer gemini.Close()

	vocab := loadVocabulary()

	extractor := extraction.New(gemini, vocab)
	matcher := matching.New(gemini)
	pipe := pipeline.New(extractor, matcher)

	port := 8080
	if portEnv := os.Getenv("PORT"); portEnv != "" {
		if p, err := strconv.Atoi(portEnv); err == nil {
			port = p
		}
	}

	server := api.NewServer(port, pipe, extractor)

	slog.Info("Server initialized", "port", port)
	if err := server.Start(); err != nil {
		slog.Error("Error starting API server", "error", err)
		os.Exit(1)
	}
}

func loadVocabulary() extraction.Vocabulary {
	path := os.Getenv("SKILL_VOCAB_PATH")
	if path == "" {
		path = "configs/skills.yaml"
	}
	vocab, err := extraction.LoadVocabulary(path)
	if err != nil {
		slog.Warn("Falling back to built-in skill vocabulary", "path", path, "error", err)
		return extraction.DefaultVocabulary()
	}
	slog.Info("Loaded skill vocabulary", "path", path, "skills", len(vocab))
	return vocab
}
