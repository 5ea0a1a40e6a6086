// Package pipeline sequences extraction, matching, scoring and explanation
// for one (resume, job description, required experience) triple.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/r-khatri/resumatch/internal/explain"
	"github.com/r-khatri/resumatch/internal/extraction"
	"github.com/r-khatri/resumatch/internal/matching"
	"github.com/r-khatri/resumatch/internal/scoring"
	"github.com/r-khatri/resumatch/pkg/types"
)

// DefaultRequiredExp applies when the caller does not state a requirement.
const DefaultRequiredExp = 2

type Pipeline struct {
	extractor *extraction.Extractor
	matcher   *matching.Matcher
}

type Options struct {
	CandidateName string
	RequiredExp   float64
	Threshold     float64
}

func New(extractor *extraction.Extractor, matcher *matching.Matcher) *Pipeline {
	return &Pipeline{
		extractor: extractor,
		matcher:   matcher,
	}
}

// Run executes the full analysis and assembles the response payload. The two
// extraction calls are independent, so they fan out concurrently and join
// before matching; every later stage is a pure function of the previous
// one's output.
func (p *Pipeline) Run(ctx context.Context, resumeText, jdText string, opts Options) (*types.MatchResult, error) {
	logger := slog.With("component", "pipeline")

	threshold := opts.Threshold
	if threshold <= 0 {
		threshold = matching.DefaultThreshold
	}

	startTime := time.Now()

	var resumeData, jdData types.ExtractionResult
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resumeData = p.extractor.Extract(gctx, resumeText)
		return nil
	})
	g.Go(func() error {
		jdData = p.extractor.Extract(gctx, jdText)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}

	alignment, err := p.matcher.Match(ctx, resumeData.Skills, jdData.Skills, threshold)
	if err != nil {
		return nil, fmt.Errorf("skill matching failed: %w", err)
	}

	scores := scoring.Calculate(alignment.CoverageRate, resumeData.ExperienceYears, opts.RequiredExp)

	explanation := explain.Build(opts.CandidateName,
		alignment.Matched, alignment.Missing,
		resumeData.ExperienceYears, opts.RequiredExp)

	logger.Info("pipeline run completed",
		"duration_ms", time.Since(startTime).Milliseconds(),
		"candidate_skills", len(resumeData.Skills),
		"requirement_skills", len(jdData.Skills),
		"overall_score", scores.OverallScore)

	return &types.MatchResult{
		CandidateProfile: types.CandidateProfile{
			ExtractedSkills:     resumeData.Skills,
			ExtractedExperience: resumeData.ExperienceYears,
			Education:           resumeData.Education,
		},
		Scores: scores,
		MatchDetails: types.MatchDetails{
			MatchedSkills: alignment.Matched,
			MissingSkills: alignment.Missing,
		},
		Explanation: explanation,
	}, nil
}
