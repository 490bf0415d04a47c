// Package usecase wires the analysis engine to the service boundary.
package usecase

import (
	"fmt"

	"github.com/fairyhunter13/resume-analyzer/internal/analyzer"
	"github.com/fairyhunter13/resume-analyzer/internal/domain"
	"github.com/fairyhunter13/resume-analyzer/pkg/textx"
)

// PreviewRunes caps the text preview echoed back with each analysis.
const PreviewRunes = 8000

// AnalyzeService validates extracted text and runs the analysis engine.
type AnalyzeService struct {
	Engine *analyzer.Analyzer
}

// NewAnalyzeService constructs an AnalyzeService around the given engine.
func NewAnalyzeService(engine *analyzer.Analyzer) AnalyzeService {
	return AnalyzeService{Engine: engine}
}

// AnalysisEnvelope is the outward-facing response: the engine record plus a
// preview of the text it analyzed.
type AnalysisEnvelope struct {
	domain.AnalysisResult
	TextPreview string `json:"text_preview"`
}

// Analyze sanitizes the extracted text, rejects empty input, and runs the
// engine. Empty-after-sanitize text maps to ErrExtractionEmpty so the
// boundary can report it distinctly from a malformed upload.
func (s AnalyzeService) Analyze(_ domain.Context, text, targetDepartment string) (AnalysisEnvelope, error) {
	text = textx.NormalizeNewlines(textx.SanitizeText(text))
	if text == "" {
		return AnalysisEnvelope{}, fmt.Errorf("%w: nothing to analyze", domain.ErrExtractionEmpty)
	}
	res := s.Engine.Analyze(text, targetDepartment)
	return AnalysisEnvelope{
		AnalysisResult: res,
		TextPreview:    textx.Preview(text, PreviewRunes),
	}, nil
}
