// Package explain renders match results into a deterministic human-readable
// summary. Pure templating: identical inputs always produce the identical
// string, and nothing here calls a model.
package explain

import (
	"strconv"
	"strings"
)

const (
	// Display truncation only; callers keep the full lists.
	maxMatchedShown = 5
	maxMissingShown = 3
)

// Build summarizes the top matched and missing skills and states whether the
// experience requirement is met, with exact figures.
func Build(candidateName string, matched, missing []string, candidateExp, requiredExp float64) string {
	if candidateName == "" {
		candidateName = "the applicant"
	}

	var b strings.Builder
	b.WriteString("Candidate analysis for " + candidateName + ":\n")

	if len(matched) > 0 {
		b.WriteString("✅ Strong match on key skills: " + joinTop(matched, maxMatchedShown) + ". ")
	}
	if len(missing) > 0 {
		b.WriteString("⚠️ Missing or unmatched skills: " + joinTop(missing, maxMissingShown) + ". ")
	}

	if candidateExp >= requiredExp {
		b.WriteString("✅ Experience requirement met (" + formatYears(candidateExp) + " years vs " + formatYears(requiredExp) + " required).")
	} else {
		b.WriteString("❌ Experience gap detected (" + formatYears(candidateExp) + " years found, " + formatYears(requiredExp) + " required).")
	}

	return b.String()
}

func joinTop(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, ", ")
}

func formatYears(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
