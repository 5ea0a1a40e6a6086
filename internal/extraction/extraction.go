// Package extraction turns raw document text into structured candidate data:
// normalized skill phrases, an estimate of professional experience, and
// education claims. A model-based pass does the heavy lifting; a rule-based
// fallback supplements it when the model comes back sparse or unavailable.
package extraction

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/r-khatri/resumatch/internal/oracle"
	"github.com/r-khatri/resumatch/pkg/types"
)

const (
	// predictThreshold is the confidence floor passed to the span predictor.
	predictThreshold = 0.4
	// minModelSkills is the model-derived skill count below which the
	// rule-based fallback supplements the result.
	minModelSkills = 3
)

// entityLabels is the fixed label vocabulary for the span predictor. Skills
// are read from "skill" and "tool"; the rest feed display-only signals.
var entityLabels = []string{"person", "skill", "role", "experience", "education", "company", "tool"}

type Extractor struct {
	predictor oracle.EntityPredictor
	vocab     Vocabulary

	// currentYear anchors date-range experience estimates; overridable in tests.
	currentYear int
}

func New(predictor oracle.EntityPredictor, vocab Vocabulary) *Extractor {
	if len(vocab) == 0 {
		vocab = DefaultVocabulary()
	}
	return &Extractor{
		predictor:   predictor,
		vocab:       vocab,
		currentYear: time.Now().Year(),
	}
}

// Extract runs the model pass, supplements with fallback skills when the
// model result is sparse, and collects the experience and education signals.
// An unavailable oracle degrades to fallback-only extraction; it never fails
// the request.
func (e *Extractor) Extract(ctx context.Context, text string) types.ExtractionResult {
	logger := slog.With("component", "extraction")

	skills := make(map[string]struct{})

	entities, err := e.predictor.PredictEntities(ctx, text, entityLabels, predictThreshold)
	if err != nil {
		logger.Warn("entity oracle unavailable, degrading to fallback-only extraction", "error", err)
		entities = nil
	}
	for _, ent := range entities {
		if ent.Label != "skill" && ent.Label != "tool" {
			continue
		}
		if s := NormalizeSkill(ent.Text); s != "" {
			skills[s] = struct{}{}
		}
	}
	modelCount := len(skills)

	if modelCount < minModelSkills {
		for _, s := range FallbackSkills(text, e.vocab) {
			skills[s] = struct{}{}
		}
		logger.Info("fallback extraction engaged",
			"model_skills", modelCount,
			"total_skills", len(skills))
	}

	result := types.ExtractionResult{
		Skills:          sortedSkills(skills),
		ExperienceYears: ExperienceYears(text, e.currentYear),
		Education:       EducationClaims(text),
	}

	logger.Debug("extraction completed",
		"skills", len(result.Skills),
		"experience_years", result.ExperienceYears,
		"education_claims", len(result.Education))

	return result
}

// NormalizeSkill lower-cases and whitespace-collapses a skill phrase. An
// empty result means the phrase should be dropped.
func NormalizeSkill(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func sortedSkills(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
