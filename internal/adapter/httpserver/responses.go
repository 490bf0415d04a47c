// Package httpserver contains HTTP handlers and middleware.
//
// It exposes the REST surface of the resume analyzer: file upload with
// inline analysis, the static UI, and health endpoints. HTTP concerns stay
// here; the analysis itself lives behind the usecase layer.
package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fairyhunter13/resume-analyzer/internal/domain"
)

type errorEnvelope struct {
	Error apiError `json:"error"`
}

type apiError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, _ *http.Request, err error, details interface{}) {
	code := http.StatusInternalServerError
	codeStr := "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrExtractionEmpty):
		// Distinct from a malformed upload: the file decoded fine but
		// yielded no usable text (e.g. a scanned/image PDF).
		code = http.StatusBadRequest
		codeStr = "EXTRACTION_EMPTY"
	case errors.Is(err, domain.ErrInvalidArgument):
		code = http.StatusBadRequest
		codeStr = "INVALID_ARGUMENT"
	case errors.Is(err, domain.ErrUnsupportedMedia):
		code = http.StatusUnsupportedMediaType
		codeStr = "UNSUPPORTED_MEDIA"
	case errors.Is(err, domain.ErrNotFound):
		code = http.StatusNotFound
		codeStr = "NOT_FOUND"
	}
	writeJSON(w, code, errorEnvelope{Error: apiError{Code: codeStr, Message: err.Error(), Details: details}})
}
