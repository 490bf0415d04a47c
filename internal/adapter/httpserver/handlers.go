package httpserver

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"

	"github.com/fairyhunter13/resume-analyzer/internal/config"
	"github.com/fairyhunter13/resume-analyzer/internal/domain"
	"github.com/fairyhunter13/resume-analyzer/internal/observability"
	"github.com/fairyhunter13/resume-analyzer/internal/usecase"
)

// Server aggregates handler dependencies.
type Server struct {
	Cfg       config.Config
	Analyze   usecase.AnalyzeService
	Extractor domain.TextExtractor
}

// NewServer constructs an HTTP server with all handlers wired.
func NewServer(cfg config.Config, analyze usecase.AnalyzeService, extractor domain.TextExtractor) *Server {
	return &Server{Cfg: cfg, Analyze: analyze, Extractor: extractor}
}

// allowedExt enforces an allowlist for uploads: .txt, .pdf, .docx
func allowedExt(name string) bool {
	n := strings.ToLower(name)
	return strings.HasSuffix(n, ".txt") || strings.HasSuffix(n, ".pdf") || strings.HasSuffix(n, ".docx")
}

func allowedMIMEFor(m string, filename string) bool {
	m = strings.ToLower(m)
	// For .txt files, accept any text/* as some detectors misclassify rich text
	if strings.HasSuffix(strings.ToLower(filename), ".txt") && strings.HasPrefix(m, "text/") {
		return true
	}
	if strings.HasPrefix(m, "text/plain") { // allow parameters such as charset
		return true
	}
	return m == "application/pdf" || m == "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
}

var (
	vldOnce sync.Once
	vld     *validator.Validate
)

func getValidator() *validator.Validate {
	vldOnce.Do(func() { vld = validator.New() })
	return vld
}

type analyzeForm struct {
	TargetDepartment string `validate:"omitempty,max=100"`
}

// AnalyzeHandler handles multipart upload of one resume and returns the
// analysis record plus a preview of the extracted text.
func (s *Server) AnalyzeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Accept negotiation: only JSON responses supported
		if a := r.Header.Get("Accept"); a != "" && a != "*/*" && !strings.Contains(a, "application/json") {
			writeJSON(w, http.StatusNotAcceptable, errorEnvelope{Error: apiError{Code: "INVALID_ARGUMENT", Message: "not acceptable", Details: map[string]any{"accept": a}}})
			return
		}
		if !strings.Contains(r.Header.Get("Content-Type"), "multipart/form-data") {
			writeError(w, r, fmt.Errorf("%w: content-type must be multipart/form-data", domain.ErrInvalidArgument), nil)
			return
		}

		maxBytes := s.Cfg.MaxUploadMB * 1024 * 1024
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			if strings.Contains(strings.ToLower(err.Error()), "too large") {
				writeJSON(w, http.StatusRequestEntityTooLarge, errorEnvelope{Error: apiError{Code: "INVALID_ARGUMENT", Message: "payload too large", Details: map[string]any{"max_mb": s.Cfg.MaxUploadMB}}})
				return
			}
			writeError(w, r, fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err), nil)
			return
		}

		file, header, err := r.FormFile("resume")
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: resume file required", domain.ErrInvalidArgument), map[string]string{"field": "resume"})
			return
		}
		defer func() { _ = file.Close() }()

		form := analyzeForm{TargetDepartment: strings.TrimSpace(r.FormValue("target_department"))}
		if err := getValidator().Struct(form); err != nil {
			verrs := map[string]string{}
			if ve, ok := err.(validator.ValidationErrors); ok {
				for _, fe := range ve {
					verrs[strings.ToLower(fe.Field())] = fe.Tag()
				}
			}
			writeError(w, r, fmt.Errorf("%w: validation failed", domain.ErrInvalidArgument), verrs)
			return
		}

		data, err := io.ReadAll(file)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: resume read: %v", domain.ErrInvalidArgument, err), nil)
			return
		}
		if len(data) == 0 {
			writeError(w, r, fmt.Errorf("%w: uploaded file is empty", domain.ErrInvalidArgument), nil)
			return
		}

		// Extension allowlist first, then content sniffing.
		if !allowedExt(header.Filename) {
			writeError(w, r, fmt.Errorf("%w: extension not allowed", domain.ErrUnsupportedMedia), map[string]any{"filename": header.Filename})
			return
		}
		mt := mimetype.Detect(data)
		if !allowedMIMEFor(mt.String(), header.Filename) {
			writeError(w, r, fmt.Errorf("%w: content type not allowed", domain.ErrUnsupportedMedia), map[string]any{"mime": mt.String(), "filename": header.Filename})
			return
		}

		text, err := s.Extractor.Extract(r.Context(), header.Filename, data)
		if err != nil {
			writeError(w, r, fmt.Errorf("resume extract: %w", err), nil)
			return
		}

		envelope, err := s.Analyze.Analyze(r.Context(), text, form.TargetDepartment)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		observability.ObserveScore(envelope.Score)
		LoggerFrom(r).Info("resume analyzed",
			"filename", header.Filename,
			"department", envelope.Department,
			"highest_degree", envelope.HighestDegree,
			"score", envelope.Score,
		)
		writeJSON(w, http.StatusOK, envelope)
	}
}

// RootHandler describes the service and points at the UI.
func (s *Server) RootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"message": "Resume Analyzer API is running.",
			"ui":      "Open /ui in your browser to use the web interface.",
			"health":  "/healthz",
		})
	}
}

// UIHandler serves the static single-page upload UI.
func (s *Server) UIHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index := filepath.Join(s.Cfg.StaticDir, "index.html")
		b, err := os.ReadFile(index)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorEnvelope{Error: apiError{Code: "INTERNAL", Message: "UI file not found"}})
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(b)
	}
}

// ReadyzHandler reports readiness: the engine is in-process and stateless,
// so the only probe is the static asset directory.
func (s *Server) ReadyzHandler() http.HandlerFunc {
	type check struct {
		Name    string `json:"name"`
		OK      bool   `json:"ok"`
		Details string `json:"details,omitempty"`
	}
	return func(w http.ResponseWriter, _ *http.Request) {
		checks := make([]check, 0, 1)
		if _, err := os.Stat(s.Cfg.StaticDir); err != nil {
			checks = append(checks, check{Name: "static", OK: false, Details: err.Error()})
		} else {
			checks = append(checks, check{Name: "static", OK: true})
		}
		ok := true
		for _, c := range checks {
			if !c.OK {
				ok = false
				break
			}
		}
		st := http.StatusOK
		if !ok {
			st = http.StatusServiceUnavailable
		}
		writeJSON(w, st, map[string]any{"checks": checks})
	}
}
