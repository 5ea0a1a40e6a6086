// Package oracle wraps the external model dependencies: a span-labeling
// entity predictor and a sentence embedding encoder. Both are loaded once at
// process start and shared read-only across requests.
package oracle

import "context"

// Entity is one labeled span returned by the predictor.
type Entity struct {
	Text  string  `json:"text"`
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// EntityPredictor labels spans of text against a fixed label vocabulary,
// dropping candidates below the confidence threshold.
type EntityPredictor interface {
	PredictEntities(ctx context.Context, text string, labels []string, threshold float64) ([]Entity, error)
}

// Embedder encodes phrases into a shared vector space. The returned slice is
// index-aligned with the input texts.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}
