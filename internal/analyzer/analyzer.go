// Package analyzer implements the resume text-analysis engine: a pipeline of
// pattern-matching heuristics that segments a resume into regions, classifies
// degree mentions, infers a department, estimates experience duration from
// date ranges and counts publications, then aggregates everything into one
// flat record with a fit score.
//
// Every heuristic fails open: absent fields come back as nil or empty values
// and the engine never returns an error, no matter how malformed the input.
// All pattern tables are compiled once at package init and never mutated;
// Analyze allocates only request-scoped data, so concurrent calls need no
// coordination.
package analyzer

import (
	"sort"
	"strings"
	"time"

	"github.com/fairyhunter13/resume-analyzer/internal/domain"
)

// Analyzer runs the analysis pipeline. The clock only matters for resolving
// open-ended date ranges ("Jan 2020 - Present") to the evaluation date; all
// other computations are pure functions of the input text.
type Analyzer struct {
	now func() time.Time
}

// New returns an Analyzer that resolves open-ended ranges against the wall
// clock.
func New() *Analyzer { return &Analyzer{now: time.Now} }

// NewWithClock pins the evaluation date, which makes experience estimation
// deterministic in tests.
func NewWithClock(now func() time.Time) *Analyzer { return &Analyzer{now: now} }

// Analyze runs the full pipeline over resume text. targetDepartment only
// affects the score; pass "" when no target applies. Two calls with the same
// inputs yield identical results, modulo the explicit clock dependency of
// open-ended ranges.
func (a *Analyzer) Analyze(text, targetDepartment string) domain.AnalysisResult {
	educationText := EducationSection(text)

	degreesInfo := DegreeDetails(educationText, text)

	var degreesDetected []string
	for _, d := range degreesInfo {
		if !containsString(degreesDetected, d.DegreeType) {
			degreesDetected = append(degreesDetected, d.DegreeType)
		}
	}
	sort.SliceStable(degreesDetected, func(i, j int) bool {
		return domain.DegreePriority[degreesDetected[i]] > domain.DegreePriority[degreesDetected[j]]
	})

	highest := HighestDegree(degreesDetected)
	hasPhD := containsString(degreesDetected, domain.DegreePhD)

	var phdStart, phdEnd *int
	for _, d := range degreesInfo {
		if d.DegreeType == domain.DegreePhD {
			phdStart, phdEnd = d.StartYear, d.EndYear
			break
		}
	}

	var fields []string
	seen := make(map[string]struct{})
	for _, d := range degreesInfo {
		if d.FieldOfStudy == nil {
			continue
		}
		key := strings.ToLower(*d.FieldOfStudy)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		fields = append(fields, *d.FieldOfStudy)
	}

	department := DepartmentFromFields(fields)
	if department == domain.DepartmentUnknown {
		department = DepartmentFromText(text)
	}

	exp := ExperienceAt(text, a.now())
	pubs := Publications(text)

	return domain.AnalysisResult{
		Name:                ExtractName(text),
		Email:               ExtractEmail(text),
		Phone:               ExtractPhone(text),
		CurrentLocation:     ExtractLocation(text),
		CurrentOrganization: ExtractCurrentOrganization(text),

		TeachingExperienceYears: exp.TeachingYears,
		IndustryExperienceYears: exp.IndustryYears,
		OtherExperienceYears:    exp.OtherYears,
		TotalExperienceYears:    exp.TotalYears,

		PublicationsTotalCount: pubs.Total,
		ResearchArticlesCount:  pubs.Articles,
		BooksCount:             pubs.Books,
		ConferencePapersCount:  pubs.Conferences,

		HasPhD:        hasPhD,
		HighestDegree: highest,
		PhDStartYear:  phdStart,
		PhDEndYear:    phdEnd,

		Department:      department,
		DegreesDetected: degreesDetected,
		DegreesInfo:     degreesInfo,
		FieldsOfStudy:   fields,
		Score:           Score(hasPhD, highest, department, targetDepartment),
	}
}
