package explain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuild_FullSummary(t *testing.T) {
	got := Build("Jane Doe",
		[]string{"excel", "scheduling"},
		[]string{"leadership"},
		5, 3)

	want := "Candidate analysis for Jane Doe:\n" +
		"✅ Strong match on key skills: excel, scheduling. " +
		"⚠️ Missing or unmatched skills: leadership. " +
		"✅ Experience requirement met (5 years vs 3 required)."
	assert.Equal(t, want, got)
}

func TestBuild_ExperienceGap(t *testing.T) {
	got := Build("Sam", nil, []string{"kubernetes"}, 1.5, 4)

	assert.Contains(t, got, "❌ Experience gap detected (1.5 years found, 4 required).")
	assert.NotContains(t, got, "Strong match")
}

func TestBuild_DefaultName(t *testing.T) {
	got := Build("", []string{"sql"}, nil, 2, 2)
	assert.True(t, strings.HasPrefix(got, "Candidate analysis for the applicant:"))
}

func TestBuild_TruncatesDisplayedLists(t *testing.T) {
	matched := []string{"a", "b", "c", "d", "e", "f", "g"}
	missing := []string{"u", "v", "w", "x"}

	got := Build("X", matched, missing, 3, 3)

	assert.Contains(t, got, "a, b, c, d, e. ")
	assert.NotContains(t, got, "f")
	assert.Contains(t, got, "u, v, w. ")
	assert.NotContains(t, got, "x,")
}

func TestBuild_Deterministic(t *testing.T) {
	first := Build("Jo", []string{"go", "sql"}, []string{"aws"}, 3, 2)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Build("Jo", []string{"go", "sql"}, []string{"aws"}, 3, 2))
	}
}

func TestBuild_NoSkillsAtAll(t *testing.T) {
	got := Build("Kim", nil, nil, 0, 2)

	want := "Candidate analysis for Kim:\n" +
		"❌ Experience gap detected (0 years found, 2 required)."
	assert.Equal(t, want, got)
}
