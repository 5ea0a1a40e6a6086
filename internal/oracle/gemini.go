package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/r-khatri/resumatch/internal/cleaner"
)

const (
	generativeModel = "gemini-2.0-flash"
	embeddingModel  = "text-embedding-004"

	callTimeout = 30 * time.Second
)

var clean = cleaner.New()

// Gemini backs both oracle interfaces with one genai client: span prediction
// through a JSON-constrained generation call, embeddings through the batch
// embedding API. Safe for concurrent use.
type Gemini struct {
	client *genai.Client
}

func NewGemini(apiKey string) (*Gemini, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Gemini{client: client}, nil
}

func (g *Gemini) Close() {
	if g.client != nil {
		g.client.Close()
	}
}

func (g *Gemini) PredictEntities(ctx context.Context, text string, labels []string, threshold float64) ([]Entity, error) {
	logger := slog.With("component", "oracle", "operation", "predict_entities")

	prompt := fmt.Sprintf(`Label every span in the document that belongs to one of these entity types: %s.
	Report each span exactly as it appears, with its type and your confidence between 0.0 and 1.0.
	Only report spans you are confident about.

	Return the result as a JSON array with the following structure:
	[
	  {"text": "span text", "label": "entity type", "score": 0.95}
	]

	Document:
	%s`, strings.Join(labels, ", "), text)

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	startTime := time.Now()
	content, err := g.generate(ctx, "You are a precise entity labeling assistant. Label only spans that literally appear in the document.", prompt)
	if err != nil {
		logger.Error("entity prediction failed", "error", err, "duration_ms", time.Since(startTime).Milliseconds())
		return nil, fmt.Errorf("entity prediction failed: %w", err)
	}
	logger.Debug("received model response",
		"duration_ms", time.Since(startTime).Milliseconds(),
		"response_length", len(content))

	cleanResponse := clean.ModelResponse(content)

	var entities []Entity
	if err := json.Unmarshal([]byte(cleanResponse), &entities); err != nil {
		logger.Error("JSON parsing failed", "error", err, "content_preview", cleanResponse[:min(100, len(cleanResponse))])
		return nil, fmt.Errorf("failed to parse model response as JSON: %w", err)
	}

	kept := entities[:0]
	for _, ent := range entities {
		if ent.Score >= threshold && strings.TrimSpace(ent.Text) != "" {
			kept = append(kept, ent)
		}
	}

	logger.Info("entity prediction completed", "total", len(entities), "kept", len(kept))
	return kept, nil
}

func (g *Gemini) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	em := g.client.EmbeddingModel(embeddingModel)
	batch := em.NewBatch()
	for _, t := range texts {
		batch.AddContent(genai.Text(t))
	}

	startTime := time.Now()
	res, err := em.BatchEmbedContents(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("embedding call failed: %w", err)
	}
	if len(res.Embeddings) != len(texts) {
		return nil, fmt.Errorf("embedding count mismatch: got %d for %d texts", len(res.Embeddings), len(texts))
	}

	slog.Debug("embedded phrases",
		"count", len(texts),
		"duration_ms", time.Since(startTime).Milliseconds())

	vectors := make([][]float32, len(res.Embeddings))
	for i, e := range res.Embeddings {
		vectors[i] = e.Values
	}
	return vectors, nil
}

func (g *Gemini) generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	model := g.client.GenerativeModel(generativeModel)

	if systemPrompt != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(systemPrompt)},
		}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		return "", fmt.Errorf("model call failed: %w", err)
	}

	if resp.UsageMetadata != nil {
		slog.Info("model API call",
			"input_tokens", resp.UsageMetadata.PromptTokenCount,
			"output_tokens", resp.UsageMetadata.CandidatesTokenCount,
			"total_tokens", resp.UsageMetadata.TotalTokenCount)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	response, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response format from model")
	}

	return string(response), nil
}
