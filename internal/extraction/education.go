package extraction

import "strings"

// educationKeywords maps presence keywords to canonical claims, scanned in
// order so the output is deterministic. Intentionally coarse: education is
// display-only and never scored.
var educationKeywords = []struct {
	keyword string
	claim   string
}{
	{"phd", "Doctoral degree"},
	{"doctorate", "Doctoral degree"},
	{"master", "Master's degree"},
	{"mba", "Master's degree"},
	{"bachelor", "Bachelor's degree"},
	{"associate degree", "Associate degree"},
	{"diploma", "Diploma"},
	{"university", "University education"},
	{"college", "College education"},
}

// EducationClaims returns the canonical education claims whose keywords
// appear in the text, deduplicated, in scan order.
func EducationClaims(text string) []string {
	lower := strings.ToLower(text)
	seen := make(map[string]struct{})
	var claims []string
	for _, kw := range educationKeywords {
		if !strings.Contains(lower, kw.keyword) {
			continue
		}
		if _, ok := seen[kw.claim]; ok {
			continue
		}
		seen[kw.claim] = struct{}{}
		claims = append(claims, kw.claim)
	}
	return claims
}
