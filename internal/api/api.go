package api

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/r-khatri/resumatch/internal/cleaner"
	"github.com/r-khatri/resumatch/internal/extraction"
	"github.com/r-khatri/resumatch/internal/ingest"
	"github.com/r-khatri/resumatch/internal/pipeline"
	"github.com/r-khatri/resumatch/pkg/errors"
	"github.com/r-khatri/resumatch/pkg/logger"
)

const maxUploadBytes = 10 << 20

var clean = cleaner.New()

type Server struct {
	port      int
	pipeline  *pipeline.Pipeline
	extractor *extraction.Extractor
}

func NewServer(port int, p *pipeline.Pipeline, e *extraction.Extractor) *Server {
	return &Server{
		port:      port,
		pipeline:  p,
		extractor: e,
	}
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next(w, r)
	}
}

// Handler builds the route table with the full middleware chain. Split out
// from Start so tests can drive it through httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/match", s.wrap(s.handleMatch, http.MethodPost))
	mux.HandleFunc("/api/extract", s.wrap(s.handleExtract, http.MethodPost))
	mux.HandleFunc("/api/health", s.wrap(s.handleHealth, http.MethodGet))
	return mux
}

func (s *Server) wrap(h http.HandlerFunc, methods ...string) http.HandlerFunc {
	return Recover(RequestID(Logger(MethodChecker(methods...)(enableCORS(h)))))
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	slog.Info("Starting API server", "port", s.port)
	return http.ListenAndServe(addr, s.Handler())
}

// handleMatch accepts a resume (uploaded file or resume_text form field), a
// job description, and an optional experience requirement, and returns the
// assembled match result.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GetRequestID(r.Context())

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		if err := r.ParseForm(); err != nil {
			RespondWithError(w, errors.ErrBadRequest("failed to parse form").WithRequestID(requestID))
			return
		}
	}

	jdText := r.FormValue("jd_text")
	if jdText == "" {
		RespondWithError(w, errors.ErrBadRequest("no job description provided").WithRequestID(requestID))
		return
	}
	jdText = clean.HTML(jdText)

	resumeText, apiErr := s.resumeText(r)
	if apiErr != nil {
		RespondWithError(w, apiErr.WithRequestID(requestID))
		return
	}

	opts := pipeline.Options{
		CandidateName: r.FormValue("candidate_name"),
		RequiredExp:   pipeline.DefaultRequiredExp,
	}
	if v := r.FormValue("required_exp"); v != "" {
		exp, err := strconv.ParseFloat(v, 64)
		if err != nil || exp < 0 {
			RespondWithError(w, errors.ErrBadRequest("required_exp must be a non-negative number").WithRequestID(requestID))
			return
		}
		opts.RequiredExp = exp
	}
	if v := r.FormValue("threshold"); v != "" {
		threshold, err := strconv.ParseFloat(v, 64)
		if err != nil || threshold <= 0 || threshold > 1 {
			RespondWithError(w, errors.ErrBadRequest("threshold must be in (0, 1]").WithRequestID(requestID))
			return
		}
		opts.Threshold = threshold
	}

	result, err := s.pipeline.Run(r.Context(), resumeText, jdText, opts)
	if err != nil {
		slog.Error("pipeline run failed", "error", err, "request_id", requestID)
		RespondWithError(w, errors.ErrInternalServer("analysis failed").WithRequestID(requestID))
		return
	}

	RespondWithJSON(w, http.StatusOK, result)
}

// resumeText resolves the resume from an uploaded file, falling back to the
// resume_text form field. The upload lives in a temp file only as long as
// text extraction takes.
func (s *Server) resumeText(r *http.Request) (string, *errors.ApiError) {
	file, header, err := r.FormFile("file")
	if err != nil {
		if text := r.FormValue("resume_text"); text != "" {
			return clean.Text(text), nil
		}
		return "", errors.ErrBadRequest("no resume provided: upload a file or set resume_text")
	}
	defer file.Close()

	tmp, err := os.CreateTemp("", "resume-*"+filepath.Ext(header.Filename))
	if err != nil {
		return "", errors.ErrInternalServer("failed to stage upload")
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		return "", errors.ErrInternalServer("failed to stage upload")
	}
	tmp.Close()

	text, err := ingest.ExtractText(tmpPath)
	if err != nil {
		slog.Warn("document ingestion failed", "filename", header.Filename, "error", err)
		return "", errors.ErrIngestion(fmt.Sprintf("could not read %s", header.Filename))
	}
	return text, nil
}

// handleExtract exposes entity extraction on its own, mostly for debugging
// what the pipeline sees in a document.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GetRequestID(r.Context())

	if err := r.ParseForm(); err != nil {
		RespondWithError(w, errors.ErrBadRequest("failed to parse form").WithRequestID(requestID))
		return
	}
	text := r.FormValue("text")
	if text == "" {
		RespondWithError(w, errors.ErrBadRequest("no text provided").WithRequestID(requestID))
		return
	}

	result := s.extractor.Extract(r.Context(), clean.Text(text))
	RespondWithJSON(w, http.StatusOK, result)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
