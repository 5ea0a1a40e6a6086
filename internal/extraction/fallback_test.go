package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackSkills_VocabularyMatch(t *testing.T) {
	vocab := Vocabulary{"microsoft excel", "scheduling", "python"}
	text := "Proficient in Microsoft Excel and scheduling meetings across time zones."

	skills := FallbackSkills(text, vocab)

	assert.ElementsMatch(t, []string{"microsoft excel", "scheduling"}, skills)
}

func TestFallbackSkills_SectionScan(t *testing.T) {
	text := "Experience\nOffice admin work.\n" +
		"Skills: Data Entry, Calendar Management\n" +
		"References available on request.\n"

	skills := FallbackSkills(text, Vocabulary{"nothing relevant"})

	assert.Contains(t, skills, "data entry,")
	assert.Contains(t, skills, "calendar management")
}

func TestFallbackSkills_BulletLinesRequirePostingCue(t *testing.T) {
	bullets := "- Strong SQL knowledge\n- Team player\n"

	// Without a posting cue word the bullet scan stays off.
	assert.Empty(t, FallbackSkills(bullets, Vocabulary{"cobol"}))

	posting := "Requirements:\n" + bullets
	skills := FallbackSkills(posting, Vocabulary{"cobol"})
	assert.Contains(t, skills, "strong sql knowledge")
	assert.Contains(t, skills, "team player")
}

func TestFallbackSkills_Deduplicates(t *testing.T) {
	text := "Requirements:\n- Excel\n- excel\n"
	skills := FallbackSkills(text, Vocabulary{"excel"})
	assert.Equal(t, []string{"excel"}, skills)
}

func TestChunkCapitalizedRuns(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			"ten word run splits into two and three word phrases",
			"Microsoft Excel Data Analysis Project Management Customer Service Time Tracking",
			[]string{"Microsoft Excel Data", "Analysis Project Management", "Customer Service", "Time Tracking"},
		},
		{
			"lowercase words break runs",
			"Customer Service and Project Management",
			[]string{"Customer Service", "Project Management"},
		},
		{"single capitalized word dropped", "Excellent communicator", nil},
		{"all lowercase", "typing filing answering phones", nil},
		{"pair", "Data Entry", []string{"Data Entry"}},
		{"run of four becomes two pairs", "Adobe Photoshop Video Editing", []string{"Adobe Photoshop", "Video Editing"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, chunkCapitalizedRuns(tt.line))
		})
	}
}

func TestIsSkillHeader(t *testing.T) {
	assert.True(t, isSkillHeader("SKILLS"))
	assert.True(t, isSkillHeader("Technical Skills:"))
	assert.True(t, isSkillHeader("  Key skills  "))
	assert.False(t, isSkillHeader("Work Experience"))
	assert.False(t, isSkillHeader("This long sentence happens to mention skills somewhere in the middle"))
}

func TestEducationClaims(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"bachelor and university", "Bachelor of Arts, City University", []string{"Bachelor's degree", "University education"}},
		{"mba maps to masters", "Completed an MBA in 2019", []string{"Master's degree"}},
		{"phd and doctorate dedupe", "PhD candidate, doctorate expected", []string{"Doctoral degree"}},
		{"none", "ten years of plumbing", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EducationClaims(tt.text))
		})
	}
}
