package extraction

import (
	"strings"
	"unicode"
)

// Cue words that mark a document as a job posting; bullet-line scanning only
// engages when one of these is present.
var postingCueWords = []string{"required", "requirements", "qualifications", "must have", "looking for"}

var bulletPrefixes = []string{"-", "•", "*", ">"}

// FallbackSkills runs the deterministic rule-based extractor: reference
// vocabulary matching, skills-section scanning, and bullet-line scanning.
// Results come back normalized and deduplicated; callers union them with the
// model-derived set.
func FallbackSkills(text string, vocab Vocabulary) []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(raw string) {
		s := NormalizeSkill(raw)
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	lower := strings.ToLower(text)
	for _, phrase := range vocab {
		if strings.Contains(lower, phrase) {
			add(phrase)
		}
	}

	for _, span := range scanSkillSections(text) {
		add(span)
	}

	if containsAny(lower, postingCueWords) {
		for _, line := range scanBulletLines(text) {
			add(line)
		}
	}

	return out
}

// scanSkillSections finds "skills" section headers and reads the runs of
// capitalized words that follow, chunking each run into phrases of two or
// three words. A stateless scan: it emits candidate spans and leaves
// normalization and dedup to the caller.
func scanSkillSections(text string) []string {
	lines := strings.Split(text, "\n")
	var spans []string

	for i, line := range lines {
		if !isSkillHeader(line) {
			continue
		}

		// Anything after a colon on the header line counts too.
		var body []string
		if idx := strings.Index(line, ":"); idx >= 0 {
			body = append(body, line[idx+1:])
		}
		for j := i + 1; j < len(lines) && j <= i+5; j++ {
			next := strings.TrimSpace(lines[j])
			if next == "" || isHeaderLine(next) {
				break
			}
			body = append(body, next)
		}

		for _, b := range body {
			spans = append(spans, chunkCapitalizedRuns(b)...)
		}
	}

	return spans
}

// scanBulletLines returns the content of list-style lines, which in job
// postings usually enumerate individual requirements.
func scanBulletLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		for _, prefix := range bulletPrefixes {
			if strings.HasPrefix(trimmed, prefix) {
				content := strings.TrimSpace(strings.TrimPrefix(trimmed, prefix))
				if content != "" {
					out = append(out, content)
				}
				break
			}
		}
	}
	return out
}

// chunkCapitalizedRuns collects maximal runs of capitalized words and splits
// them into phrases of up to three words. Single stray capitalized words are
// too noisy to keep.
func chunkCapitalizedRuns(line string) []string {
	words := strings.Fields(line)
	var phrases []string
	var run []string

	flush := func() {
		for len(run) >= 2 {
			n := 3
			if len(run) < 3 || len(run) == 4 {
				n = 2
			}
			phrases = append(phrases, strings.Join(run[:n], " "))
			run = run[n:]
		}
		run = nil
	}

	for _, w := range words {
		if isCapitalized(w) {
			run = append(run, w)
			continue
		}
		flush()
	}
	flush()

	return phrases
}

func isSkillHeader(line string) bool {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) > 40 {
		return false
	}
	return strings.Contains(strings.ToLower(trimmed), "skill")
}

func isHeaderLine(line string) bool {
	return strings.HasSuffix(line, ":") || line == strings.ToUpper(line) && len(strings.Fields(line)) <= 3
}

func isCapitalized(word string) bool {
	runes := []rune(strings.Trim(word, ".,;:()"))
	if len(runes) == 0 {
		return false
	}
	return unicode.IsUpper(runes[0])
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
