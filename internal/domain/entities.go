// Package domain holds the core entities, error taxonomy and ports of the
// resume analyzer.
package domain

import (
	"context"
	"errors"
)

// Error taxonomy (sentinels)
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrUnsupportedMedia = errors.New("unsupported media type")
	ErrExtractionEmpty  = errors.New("no text extracted")
	ErrNotFound         = errors.New("not found")
	ErrInternal         = errors.New("internal error")
)

// Degree levels, ordered by seniority (see DegreePriority).
const (
	DegreeHighSchool = "HighSchool"
	DegreeDiploma    = "Diploma"
	DegreeBachelor   = "Bachelor"
	DegreeMaster     = "Master"
	DegreePhD        = "PhD"
	DegreeUnknown    = "Unknown"
)

// DegreePriority ranks degree levels; a higher value wins when picking the
// highest credential. Unknown levels rank 0.
var DegreePriority = map[string]int{
	DegreeHighSchool: 1,
	DegreeDiploma:    2,
	DegreeBachelor:   3,
	DegreeMaster:     4,
	DegreePhD:        5,
}

// DepartmentUnknown is reported when no keyword matches a field of study or
// the document text.
const DepartmentUnknown = "Unknown"

// Degree completion statuses.
const (
	StatusCompleted       = "Completed"
	StatusPursuing        = "Pursuing"
	StatusThesisSubmitted = "Thesis Submitted"
	StatusAwarded         = "Awarded"
)

// DegreeRecord describes one degree block found in the education section.
// Records are immutable once built and are never merged, even when two
// blocks describe the same credential.
type DegreeRecord struct {
	DegreeType         string  `json:"degree_type"`
	RawText            string  `json:"raw_text"`
	FieldOfStudy       *string `json:"field_of_study,omitempty"`
	Institution        *string `json:"institution,omitempty"`
	StartYear          *int    `json:"start_year,omitempty"`
	EndYear            *int    `json:"end_year,omitempty"`
	Status             string  `json:"status"`
	PhDThesisSubmitted *bool   `json:"phd_thesis_submitted,omitempty"` // PhD blocks only
	PhDAwarded         *bool   `json:"phd_awarded,omitempty"`          // PhD blocks only
}

// ExperienceBreakdown sums date ranges per bucket, in years rounded to one
// decimal. A bucket is nil when it accumulated no months.
type ExperienceBreakdown struct {
	TeachingYears *float64
	IndustryYears *float64
	OtherYears    *float64
	TotalYears    *float64
}

// PublicationBreakdown counts enumerated publication entries by kind.
// Every counted line lands in exactly one bucket (articles by default), so
// Total always equals Articles+Books+Conferences.
type PublicationBreakdown struct {
	Total       int
	Articles    int
	Books       int
	Conferences int
}

// AnalysisResult is the flat output record of one analysis call. Optional
// fields are pointers so that absence survives JSON round-trips.
type AnalysisResult struct {
	Name                *string `json:"name,omitempty"`
	Email               *string `json:"email,omitempty"`
	Phone               *string `json:"phone,omitempty"`
	CurrentLocation     *string `json:"current_location,omitempty"`
	CurrentOrganization *string `json:"current_organization,omitempty"`

	TeachingExperienceYears *float64 `json:"teaching_experience_years,omitempty"`
	IndustryExperienceYears *float64 `json:"industry_experience_years,omitempty"`
	OtherExperienceYears    *float64 `json:"other_experience_years,omitempty"`
	TotalExperienceYears    *float64 `json:"total_experience_years,omitempty"`

	PublicationsTotalCount int `json:"publications_total_count"`
	ResearchArticlesCount  int `json:"research_articles_count"`
	BooksCount             int `json:"books_count"`
	ConferencePapersCount  int `json:"conference_papers_count"`

	HasPhD        bool   `json:"has_phd"`
	HighestDegree string `json:"highest_degree"`
	PhDStartYear  *int   `json:"phd_start_year,omitempty"`
	PhDEndYear    *int   `json:"phd_end_year,omitempty"`

	Department      string         `json:"department"`
	DegreesDetected []string       `json:"degrees_detected"`
	DegreesInfo     []DegreeRecord `json:"degrees_info"`
	FieldsOfStudy   []string       `json:"fields_of_study"`
	Score           int            `json:"score"`
}

// TextExtractor (port)
// Extract decodes uploaded document bytes into plain text, preserving line
// structure. Implementations may use local parsers or external services.
type TextExtractor interface {
	Extract(ctx Context, filename string, data []byte) (string, error)
}

// Context is an alias to context.Context so usecases read in domain terms.
type Context = context.Context
