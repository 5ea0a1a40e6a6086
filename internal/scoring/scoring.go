// Package scoring combines skill coverage and experience sufficiency into
// calibrated sub-scores and one weighted overall score.
package scoring

import (
	"math"

	"github.com/r-khatri/resumatch/pkg/types"
)

// Fixed weighting policy: skills count more than tenure.
const (
	skillWeight      = 0.6
	experienceWeight = 0.4

	// experienceBonusCap lets exceeding the requirement raise the ratio up
	// to 1.5x, so outlier tenure claims cannot inflate the score past 100.
	experienceBonusCap = 1.5
)

// Calculate derives the score card from the skill coverage rate and the
// candidate/required experience figures. All scores land in [0, 100] and are
// rounded to two decimals; the overall score is the weighted sum of the
// rounded sub-scores.
func Calculate(coverageRate, candidateExp, requiredExp float64) types.ScoreCard {
	skillScore := round2(clamp(coverageRate, 0, 1) * 100)

	expScore := 100.0
	if requiredExp > 0 {
		ratio := candidateExp / requiredExp
		if ratio > experienceBonusCap {
			ratio = experienceBonusCap
		}
		expScore = math.Min(ratio*100, 100)
	}
	expScore = round2(expScore)

	overall := round2(skillWeight*skillScore + experienceWeight*expScore)

	return types.ScoreCard{
		SkillScore:      skillScore,
		ExperienceScore: expScore,
		OverallScore:    overall,
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
