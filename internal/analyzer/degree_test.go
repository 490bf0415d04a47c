package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/resume-analyzer/internal/analyzer"
	"github.com/fairyhunter13/resume-analyzer/internal/domain"
)

func TestDetectDegrees_Variants(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"phd plain", "completed my PhD at a research lab", []string{domain.DegreePhD}},
		{"phd dotted", "Ph. D in progress", []string{domain.DegreePhD}},
		{"doctor of philosophy", "Doctor of Philosophy, awarded", []string{domain.DegreePhD}},
		{"mtech", "M.Tech in VLSI Design", []string{domain.DegreeMaster}},
		{"mba", "MBA from a business school", []string{domain.DegreeMaster}},
		{"btech", "B.Tech in Civil Engineering", []string{domain.DegreeBachelor}},
		{"bcom", "B.Com, First Class", []string{domain.DegreeBachelor}},
		{"diploma", "Diploma in Electronics", []string{domain.DegreeDiploma}},
		{"higher secondary", "Higher Secondary Certificate", []string{domain.DegreeHighSchool}},
		{"mixed", "PhD after an M.Sc and a B.Sc", []string{domain.DegreePhD, domain.DegreeMaster, domain.DegreeBachelor}},
		{"none", "worked as a plumber", nil},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, analyzer.DetectDegrees(tt.text))
		})
	}
}

func TestHighestDegree(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		degrees []string
		want    string
	}{
		{"empty", nil, domain.DegreeUnknown},
		{"single", []string{domain.DegreeBachelor}, domain.DegreeBachelor},
		{"phd wins", []string{domain.DegreeBachelor, domain.DegreePhD, domain.DegreeMaster}, domain.DegreePhD},
		{"unrecognized ignored", []string{"Certificate"}, domain.DegreeUnknown},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, analyzer.HighestDegree(tt.degrees))
		})
	}
}

func TestDegreeDetails_BlocksAttachTrailingLines(t *testing.T) {
	t.Parallel()
	edu := "EDUCATION\n" +
		"M.Tech in Computer Science and Engineering, 2012 - 2014\n" +
		"ABC Institute of Technology University\n" +
		"B.Tech in Information Technology, 2008 - 2012\n" +
		"XYZ Engineering College\n"
	recs := analyzer.DegreeDetails(edu, edu)
	require.Len(t, recs, 2)

	assert.Equal(t, domain.DegreeMaster, recs[0].DegreeType)
	require.NotNil(t, recs[0].StartYear)
	assert.Equal(t, 2012, *recs[0].StartYear)
	require.NotNil(t, recs[0].EndYear)
	assert.Equal(t, 2014, *recs[0].EndYear)
	require.NotNil(t, recs[0].FieldOfStudy)
	assert.Equal(t, "Computer Science and Engineering", *recs[0].FieldOfStudy)
	// Institution came from the trailing line attached to the same block.
	require.NotNil(t, recs[0].Institution)
	assert.Equal(t, "ABC Institute of Technology University", *recs[0].Institution)

	assert.Equal(t, domain.DegreeBachelor, recs[1].DegreeType)
	require.NotNil(t, recs[1].StartYear)
	assert.Equal(t, 2008, *recs[1].StartYear)
	require.NotNil(t, recs[1].Institution)
	assert.Equal(t, "XYZ Engineering College", *recs[1].Institution)
}

func TestDegreeDetails_BlockTakesHighestLevelWithin(t *testing.T) {
	t.Parallel()
	// One line mentions two levels; the block resolves to the
	// highest-seniority level matched anywhere inside it.
	edu := "Education\nIntegrated B.Sc and M.Sc in Applied Physics"
	recs := analyzer.DegreeDetails(edu, edu)
	require.Len(t, recs, 1)
	assert.Equal(t, domain.DegreeMaster, recs[0].DegreeType)
}

func TestDegreeDetails_LeadingDetailLinesAreDropped(t *testing.T) {
	t.Parallel()
	// Lines before the first degree keyword belong to no block.
	edu := "Education\nConvent Road, Pune\nB.A (English Literature)"
	recs := analyzer.DegreeDetails(edu, edu)
	require.Len(t, recs, 1)
	assert.Equal(t, domain.DegreeBachelor, recs[0].DegreeType)
	require.NotNil(t, recs[0].FieldOfStudy)
	assert.Equal(t, "English Literature", *recs[0].FieldOfStudy)
}

func TestDegreeDetails_EmptySection(t *testing.T) {
	t.Parallel()
	assert.Nil(t, analyzer.DegreeDetails("", ""))
	assert.Nil(t, analyzer.DegreeDetails("\n  \n", ""))
}

func TestDegreeDetails_YearRangeQuirks(t *testing.T) {
	t.Parallel()
	t.Run("hyphen range parses both ends", func(t *testing.T) {
		t.Parallel()
		recs := analyzer.DegreeDetails("Education\nB.Tech, 2010 - 2014", "")
		require.Len(t, recs, 1)
		require.NotNil(t, recs[0].StartYear)
		assert.Equal(t, 2010, *recs[0].StartYear)
		require.NotNil(t, recs[0].EndYear)
		assert.Equal(t, 2014, *recs[0].EndYear)
		assert.Equal(t, domain.StatusCompleted, recs[0].Status)
	})
	t.Run("present end leaves end year absent and status pursuing", func(t *testing.T) {
		t.Parallel()
		recs := analyzer.DegreeDetails("Education\nM.Tech, 2022 - Present", "")
		require.Len(t, recs, 1)
		require.NotNil(t, recs[0].StartYear)
		assert.Equal(t, 2022, *recs[0].StartYear)
		assert.Nil(t, recs[0].EndYear)
		assert.Equal(t, domain.StatusPursuing, recs[0].Status)
	})
	t.Run("en dash range keeps start only", func(t *testing.T) {
		t.Parallel()
		// The end token comes from splitting on plain hyphens; an en dash
		// never splits, so the token is not all digits and the end year
		// stays absent.
		recs := analyzer.DegreeDetails("Education\nB.Sc, 2010 – 2013", "")
		require.Len(t, recs, 1)
		require.NotNil(t, recs[0].StartYear)
		assert.Equal(t, 2010, *recs[0].StartYear)
		assert.Nil(t, recs[0].EndYear)
	})
	t.Run("single year becomes end year", func(t *testing.T) {
		t.Parallel()
		recs := analyzer.DegreeDetails("Education\nB.Com passed in the year 2008", "")
		require.Len(t, recs, 1)
		assert.Nil(t, recs[0].StartYear)
		require.NotNil(t, recs[0].EndYear)
		assert.Equal(t, 2008, *recs[0].EndYear)
	})
}

func TestDegreeDetails_FieldExtraction(t *testing.T) {
	t.Parallel()
	t.Run("parenthesized field preferred", func(t *testing.T) {
		t.Parallel()
		recs := analyzer.DegreeDetails("Education\nM.A (English Literature), 2015", "")
		require.Len(t, recs, 1)
		require.NotNil(t, recs[0].FieldOfStudy)
		assert.Equal(t, "English Literature", *recs[0].FieldOfStudy)
	})
	t.Run("parenthesized year rejected as field", func(t *testing.T) {
		t.Parallel()
		recs := analyzer.DegreeDetails("Education\nMBA (2012) from a business academy", "")
		require.Len(t, recs, 1)
		assert.Nil(t, recs[0].FieldOfStudy)
	})
	t.Run("in clause truncates at separator", func(t *testing.T) {
		t.Parallel()
		recs := analyzer.DegreeDetails("Education\nB.Tech in Mechanical Engineering, First Class", "")
		require.Len(t, recs, 1)
		require.NotNil(t, recs[0].FieldOfStudy)
		assert.Equal(t, "Mechanical Engineering", *recs[0].FieldOfStudy)
	})
	t.Run("field with digit run rejected", func(t *testing.T) {
		t.Parallel()
		recs := analyzer.DegreeDetails("Education\nDiploma in batch 2010 stream", "")
		require.Len(t, recs, 1)
		assert.Nil(t, recs[0].FieldOfStudy)
	})
}

func TestDegreeDetails_InstitutionSuffixPattern(t *testing.T) {
	t.Parallel()
	t.Run("matching suffix", func(t *testing.T) {
		t.Parallel()
		recs := analyzer.DegreeDetails("Education\nB.Sc, Madras Christian College, 2001", "")
		require.Len(t, recs, 1)
		require.NotNil(t, recs[0].Institution)
		assert.Equal(t, "Madras Christian College", *recs[0].Institution)
	})
	t.Run("no recognized suffix leaves institution absent", func(t *testing.T) {
		t.Parallel()
		recs := analyzer.DegreeDetails("Education\nPh.D, IIT Delhi, 2015-2019", "Ph.D, IIT Delhi, 2015-2019")
		require.Len(t, recs, 1)
		assert.Nil(t, recs[0].Institution)
	})
}

func TestDegreeDetails_PhDStatusOverrides(t *testing.T) {
	t.Parallel()
	t.Run("global awarded applies to phd block", func(t *testing.T) {
		t.Parallel()
		full := "Dr Jane\nPhD degree awarded in 2019\nEducation\nPhD in Chemistry, 2014-2019"
		recs := analyzer.DegreeDetails("Education\nPhD in Chemistry, 2014-2019", full)
		require.Len(t, recs, 1)
		assert.Equal(t, domain.StatusAwarded, recs[0].Status)
		require.NotNil(t, recs[0].PhDAwarded)
		assert.True(t, *recs[0].PhDAwarded)
		require.NotNil(t, recs[0].PhDThesisSubmitted)
		assert.False(t, *recs[0].PhDThesisSubmitted)
	})
	t.Run("local evidence wins last", func(t *testing.T) {
		t.Parallel()
		// The document-wide resolver short-circuits to Awarded from the
		// summary line, but the block's own "thesis submitted" runs after
		// the global result and decides the status. Both flags stay set.
		edu := "Education\nPhD in Physics, thesis submitted"
		full := "My PhD was awarded by the senate after revisions were filed with the registrar office in the spring.\n" + edu
		recs := analyzer.DegreeDetails(edu, full)
		require.Len(t, recs, 1)
		assert.Equal(t, domain.StatusThesisSubmitted, recs[0].Status)
		require.NotNil(t, recs[0].PhDThesisSubmitted)
		assert.True(t, *recs[0].PhDThesisSubmitted)
		require.NotNil(t, recs[0].PhDAwarded)
		assert.True(t, *recs[0].PhDAwarded)
	})
	t.Run("non phd blocks carry no flags", func(t *testing.T) {
		t.Parallel()
		recs := analyzer.DegreeDetails("Education\nM.Sc in Chemistry, 2010-2012", "")
		require.Len(t, recs, 1)
		assert.Nil(t, recs[0].PhDAwarded)
		assert.Nil(t, recs[0].PhDThesisSubmitted)
	})
}
