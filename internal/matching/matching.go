// Package matching computes the semantic alignment between candidate skills
// and requirement skills. A requirement skill is matched when its best cosine
// similarity against any candidate skill reaches the threshold — best-of
// comparison, not bijective pairing, so one candidate skill may satisfy many
// requirements.
package matching

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/r-khatri/resumatch/internal/oracle"
	"github.com/r-khatri/resumatch/pkg/types"
)

// DefaultThreshold is the cosine similarity floor for a requirement skill to
// count as matched. Lowering it never decreases the matched count.
const DefaultThreshold = 0.5

type Matcher struct {
	embedder oracle.Embedder
}

func New(embedder oracle.Embedder) *Matcher {
	return &Matcher{embedder: embedder}
}

// Match partitions requirementSkills into matched and missing against
// candidateSkills. Matched and missing are always disjoint and together
// cover every requirement skill, in requirement order. Either side being
// empty yields zero coverage without an embedding call.
func (m *Matcher) Match(ctx context.Context, candidateSkills, requirementSkills []string, threshold float64) (types.SkillAlignment, error) {
	logger := slog.With("component", "matching")

	if len(candidateSkills) == 0 || len(requirementSkills) == 0 {
		missing := make([]string, len(requirementSkills))
		copy(missing, requirementSkills)
		return types.SkillAlignment{
			Matched:      []string{},
			Missing:      missing,
			CoverageRate: 0,
		}, nil
	}

	// One batch for both sides; the embedder returns vectors index-aligned
	// with its input.
	texts := make([]string, 0, len(candidateSkills)+len(requirementSkills))
	texts = append(texts, candidateSkills...)
	texts = append(texts, requirementSkills...)

	vectors, err := m.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return types.SkillAlignment{}, fmt.Errorf("skill embedding failed: %w", err)
	}
	if len(vectors) != len(texts) {
		return types.SkillAlignment{}, fmt.Errorf("embedder returned %d vectors for %d phrases", len(vectors), len(texts))
	}
	candVectors := vectors[:len(candidateSkills)]
	reqVectors := vectors[len(candidateSkills):]

	matched := make([]string, 0, len(requirementSkills))
	missing := make([]string, 0, len(requirementSkills))
	for i, req := range requirementSkills {
		best := bestSimilarity(reqVectors[i], candVectors)
		if best >= threshold {
			matched = append(matched, req)
		} else {
			missing = append(missing, req)
		}
	}

	alignment := types.SkillAlignment{
		Matched:      matched,
		Missing:      missing,
		CoverageRate: float64(len(matched)) / float64(len(requirementSkills)),
	}

	logger.Info("skill matching completed",
		"candidate_skills", len(candidateSkills),
		"requirement_skills", len(requirementSkills),
		"matched", len(matched),
		"threshold", threshold)

	return alignment, nil
}

func bestSimilarity(req []float32, candidates [][]float32) float64 {
	best := math.Inf(-1)
	for _, cand := range candidates {
		if s := cosine(req, cand); s > best {
			best = s
		}
	}
	return best
}

// cosine computes cosine similarity between two vectors; zero-magnitude or
// mismatched vectors score 0.
func cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
