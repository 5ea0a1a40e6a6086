package types

// =============== Extraction TYPES ===============

// ExtractionResult holds the structured signals pulled out of one document.
// Skills are normalized (lower-cased, whitespace-collapsed), unique and sorted.
type ExtractionResult struct {
	Skills          []string `json:"skills"`
	ExperienceYears float64  `json:"experience_years"`
	Education       []string `json:"education"`
}

// =============== Matching TYPES ===============

// SkillAlignment partitions the requirement skills into matched and missing.
// Matched and Missing are disjoint and together cover every requirement skill.
type SkillAlignment struct {
	Matched      []string `json:"matched"`
	Missing      []string `json:"missing"`
	CoverageRate float64  `json:"coverage_rate"`
}

// =============== Scoring TYPES ===============

// ScoreCard carries the calibrated sub-scores and the weighted overall score,
// each in [0, 100] and rounded to two decimals.
type ScoreCard struct {
	SkillScore      float64 `json:"skill_score"`
	ExperienceScore float64 `json:"experience_score"`
	OverallScore    float64 `json:"overall_score"`
}

// =============== Response TYPES ===============

type CandidateProfile struct {
	ExtractedSkills     []string `json:"extracted_skills"`
	ExtractedExperience float64  `json:"extracted_experience"`
	Education           []string `json:"education,omitempty"`
}

type MatchDetails struct {
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
}

// MatchResult is the assembled payload returned by the pipeline. The JSON
// field names are part of the wire contract with existing callers.
type MatchResult struct {
	CandidateProfile CandidateProfile `json:"candidate_profile"`
	Scores           ScoreCard        `json:"scores"`
	MatchDetails     MatchDetails     `json:"match_details"`
	Explanation      string           `json:"explanation"`
}
