package extraction

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Vocabulary is the reference table of known skill phrases the fallback
// extractor matches against, all lower-case. It lives in configuration so
// the fallback stays extensible without code changes.
type Vocabulary []string

type vocabFile struct {
	Skills []string `yaml:"skills"`
}

// LoadVocabulary reads a skill vocabulary from a YAML file of the form:
//
//	skills:
//	  - microsoft excel
//	  - project management
func LoadVocabulary(path string) (Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file: %w", err)
	}

	var file vocabFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary file: %w", err)
	}
	if len(file.Skills) == 0 {
		return nil, fmt.Errorf("vocabulary file %s contains no skills", path)
	}

	vocab := make(Vocabulary, 0, len(file.Skills))
	for _, s := range file.Skills {
		if n := NormalizeSkill(s); n != "" {
			vocab = append(vocab, n)
		}
	}
	return vocab, nil
}

// DefaultVocabulary is the compiled-in table used when no file is configured.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		"microsoft excel",
		"excel",
		"microsoft word",
		"powerpoint",
		"microsoft office",
		"python",
		"java",
		"javascript",
		"typescript",
		"golang",
		"sql",
		"react",
		"node.js",
		"aws",
		"docker",
		"kubernetes",
		"git",
		"linux",
		"data analysis",
		"machine learning",
		"project management",
		"time management",
		"scheduling",
		"calendar management",
		"customer service",
		"communication",
		"leadership",
		"teamwork",
		"problem solving",
		"organization",
		"budgeting",
		"reporting",
		"documentation",
	}
}
