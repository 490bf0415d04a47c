// Package local decodes uploaded documents into plain text in-process.
//
// It implements domain.TextExtractor for PDF, DOCX and plain-text uploads
// without calling out to an external extraction service.
package local

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/fairyhunter13/resume-analyzer/internal/domain"
	"github.com/fairyhunter13/resume-analyzer/pkg/textx"
)

// Extractor decodes uploads by file extension.
type Extractor struct{}

// New constructs a local Extractor.
func New() *Extractor { return &Extractor{} }

// Extract decodes data according to the filename extension. Line structure
// is preserved; the analysis heuristics are line-oriented.
func (e *Extractor) Extract(_ domain.Context, filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		text, err := extractPDF(data)
		if err != nil {
			return "", fmt.Errorf("pdf extract: %w", err)
		}
		return sanitize(text), nil
	case ".docx":
		text, err := extractDOCX(data)
		if err != nil {
			return "", fmt.Errorf("docx extract: %w", err)
		}
		return sanitize(text), nil
	case ".txt":
		return sanitize(string(data)), nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedMedia, ext)
	}
}

func sanitize(s string) string {
	return textx.SanitizeText(textx.NormalizeNewlines(s))
}

func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer func() { _ = doc.Close() }()
	return doc.Editable().GetContent(), nil
}
