package main

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/r-khatri/resumatch/internal/bot"
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

	slog.Info("Starting resume matcher bot...")

	botToken := os.Getenv("DISCORD_BOT_TOKEN")
	if botToken == "" {
		slog.Error("Bot token not found in environment variables")
		os.Exit(1)
	}
	geminiKey := os.Getenv("GEMINI_KEY")
	if geminiKey == "" {
		slog.Error("Gemini API key not found in environment variables")
		os.Exit(1)
	}

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

	requiredExp := float64(pipeline.DefaultRequiredExp)
	if v := os.Getenv("REQUIRED_EXP"); v != "" {
		if exp, err := strconv.ParseFloat(v, 64); err == nil && exp >= 0 {
			requiredExp = exp
		}
	}

	b, err := bot.New(botToken, pipe, requiredExp)
	if err != nil {
		slog.Error("Error creating Discord session", "error", err)
		os.Exit(1)
	}

	if err := b.Start(); err != nil {
		slog.Error("Error opening Discord session", "error", err)
		os.Exit(1)
	}
	defer b.Close()

	select {} // Keep the program running
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
	return vocab
}
