package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/r-khatri/resumatch/internal/extraction"
	"github.com/r-khatri/resumatch/internal/matching"
	"github.com/r-khatri/resumatch/internal/oracle"
	"github.com/r-khatri/resumatch/internal/pipeline"
	"github.com/r-khatri/resumatch/pkg/types"
)

type stubPredictor struct {
	entities []oracle.Entity
}

func (s *stubPredictor) PredictEntities(ctx context.Context, text string, labels []string, threshold float64) ([]oracle.Entity, error) {
	return s.entities, nil
}

// identityEmbedder gives every distinct phrase its own axis, so only exact
// duplicates match.
type identityEmbedder struct{}

func (identityEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	index := make(map[string]int)
	for _, t := range texts {
		if _, ok := index[t]; !ok {
			index[t] = len(index)
		}
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		v := make([]float32, len(index))
		v[index[t]] = 1
		out[i] = v
	}
	return out, nil
}

func newTestServer() *Server {
	predictor := &stubPredictor{entities: []oracle.Entity{
		{Text: "excel", Label: "skill", Score: 0.9},
		{Text: "sql", Label: "skill", Score: 0.9},
		{Text: "scheduling", Label: "skill", Score: 0.9},
	}}
	extractor := extraction.New(predictor, extraction.Vocabulary{"cobol"})
	pipe := pipeline.New(extractor, matching.New(identityEmbedder{}))
	return NewServer(0, pipe, extractor)
}

func postForm(t *testing.T, handler http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	handler := newTestServer().Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestMatch_Success(t *testing.T) {
	handler := newTestServer().Handler()

	rec := postForm(t, handler, "/api/match", url.Values{
		"resume_text":    {"Resume text, 5 years of experience."},
		"jd_text":        {"Posting text."},
		"candidate_name": {"Jane"},
		"required_exp":   {"3"},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var result types.MatchResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))

	// Stub predictor returns the same skills for both sides, so everything
	// matches under the identity embedder.
	assert.Equal(t, []string{"excel", "scheduling", "sql"}, result.CandidateProfile.ExtractedSkills)
	assert.Equal(t, 5.0, result.CandidateProfile.ExtractedExperience)
	assert.ElementsMatch(t, []string{"excel", "scheduling", "sql"}, result.MatchDetails.MatchedSkills)
	assert.Empty(t, result.MatchDetails.MissingSkills)
	assert.Equal(t, 100.0, result.Scores.SkillScore)
	assert.Equal(t, 100.0, result.Scores.ExperienceScore)
	assert.Equal(t, 100.0, result.Scores.OverallScore)
	assert.Contains(t, result.Explanation, "Candidate analysis for Jane:")
}

func TestMatch_MissingJobDescription(t *testing.T) {
	handler := newTestServer().Handler()

	rec := postForm(t, handler, "/api/match", url.Values{
		"resume_text": {"Resume text."},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no job description provided")
}

func TestMatch_MissingResume(t *testing.T) {
	handler := newTestServer().Handler()

	rec := postForm(t, handler, "/api/match", url.Values{
		"jd_text": {"Posting text."},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no resume provided")
}

func TestMatch_InvalidParameters(t *testing.T) {
	handler := newTestServer().Handler()

	base := url.Values{
		"resume_text": {"Resume text."},
		"jd_text":     {"Posting text."},
	}

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"negative required_exp", "required_exp", "-1"},
		{"non-numeric required_exp", "required_exp", "lots"},
		{"zero threshold", "threshold", "0"},
		{"threshold above one", "threshold", "1.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := url.Values{}
			for k, v := range base {
				form[k] = v
			}
			form.Set(tt.key, tt.value)

			rec := postForm(t, handler, "/api/match", form)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestMatch_MethodNotAllowed(t *testing.T) {
	handler := newTestServer().Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/match", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestExtract_Success(t *testing.T) {
	handler := newTestServer().Handler()

	rec := postForm(t, handler, "/api/extract", url.Values{
		"text": {"Bachelor of Science. 4 years with spreadsheets."},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var result types.ExtractionResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.Equal(t, []string{"excel", "scheduling", "sql"}, result.Skills)
	assert.Equal(t, 4.0, result.ExperienceYears)
	assert.Equal(t, []string{"Bachelor's degree"}, result.Education)
}

func TestExtract_MissingText(t *testing.T) {
	handler := newTestServer().Handler()

	rec := postForm(t, handler, "/api/extract", url.Values{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no text provided")
}

func TestCORSPreflight(t *testing.T) {
	handler := newTestServer().Handler()

	req := httptest.NewRequest(http.MethodOptions, "/api/match", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
