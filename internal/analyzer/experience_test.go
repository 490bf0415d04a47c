package analyzer_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/resume-analyzer/internal/analyzer"
)

func TestExperienceAt_Classification(t *testing.T) {
	t.Parallel()
	now := time.Date(2021, time.June, 15, 0, 0, 0, 0, time.UTC)

	// Long enough that the context windows of the two ranges never overlap.
	filler := strings.Repeat("Handled day to day duties and routine admin tasks. ", 4)

	text := "Assistant Professor, Government Arts College\nJul 2015 - Jun 2018\n" +
		filler +
		"\nSoftware Developer, Acme Pvt Ltd\nJan 2014 - Jan 2016\n"

	got := analyzer.ExperienceAt(text, now)

	require.NotNil(t, got.TeachingYears)
	assert.InDelta(t, 2.9, *got.TeachingYears, 1e-9) // 35 months
	require.NotNil(t, got.IndustryYears)
	assert.InDelta(t, 2.0, *got.IndustryYears, 1e-9) // 24 months
	assert.Nil(t, got.OtherYears)
	require.NotNil(t, got.TotalYears)
	assert.InDelta(t, 4.9, *got.TotalYears, 1e-9) // 59 months, rounded once
}

func TestExperienceAt_TeachingCheckedBeforeIndustry(t *testing.T) {
	t.Parallel()
	now := time.Date(2021, time.June, 15, 0, 0, 0, 0, time.UTC)

	// "engineering" also trips the industry list, but the teaching check
	// runs first.
	got := analyzer.ExperienceAt("Lecturer, Software Engineering Dept, Mar 2010 - Mar 2012", now)
	require.NotNil(t, got.TeachingYears)
	assert.InDelta(t, 2.0, *got.TeachingYears, 1e-9)
	assert.Nil(t, got.IndustryYears)
}

func TestExperienceAt_OtherBucket(t *testing.T) {
	t.Parallel()
	now := time.Date(2021, time.June, 15, 0, 0, 0, 0, time.UTC)

	got := analyzer.ExperienceAt("Freelance gardening, Feb 2011 - Feb 2013", now)
	assert.Nil(t, got.TeachingYears)
	assert.Nil(t, got.IndustryYears)
	require.NotNil(t, got.OtherYears)
	assert.InDelta(t, 2.0, *got.OtherYears, 1e-9)
}

func TestExperienceAt_OpenEndedGrowsWithClock(t *testing.T) {
	t.Parallel()
	text := "Software developer at Acme, Jan 2020 - Present"

	june2021 := time.Date(2021, time.June, 1, 0, 0, 0, 0, time.UTC)
	got := analyzer.ExperienceAt(text, june2021)
	require.NotNil(t, got.IndustryYears)
	assert.InDelta(t, 1.4, *got.IndustryYears, 1e-9) // 17 months

	june2022 := time.Date(2022, time.June, 1, 0, 0, 0, 0, time.UTC)
	got = analyzer.ExperienceAt(text, june2022)
	require.NotNil(t, got.IndustryYears)
	assert.InDelta(t, 2.4, *got.IndustryYears, 1e-9) // 29 months
}

func TestExperienceAt_NonPositiveRangesDiscarded(t *testing.T) {
	t.Parallel()
	now := time.Date(2021, time.June, 15, 0, 0, 0, 0, time.UTC)

	text := "Consultant, Jun 2018 - Jun 2018\nConsultant, Dec 2019 - Jan 2018"
	got := analyzer.ExperienceAt(text, now)
	assert.Nil(t, got.TeachingYears)
	assert.Nil(t, got.IndustryYears)
	assert.Nil(t, got.OtherYears)
	assert.Nil(t, got.TotalYears)
}

func TestExperienceAt_MonthSpellings(t *testing.T) {
	t.Parallel()
	now := time.Date(2021, time.June, 15, 0, 0, 0, 0, time.UTC)

	got := analyzer.ExperienceAt("Analyst, Sept 2016 - October 2017", now)
	require.NotNil(t, got.IndustryYears)
	assert.InDelta(t, 1.1, *got.IndustryYears, 1e-9) // 13 months
}

func TestExperienceAt_NoRanges(t *testing.T) {
	t.Parallel()
	now := time.Date(2021, time.June, 15, 0, 0, 0, 0, time.UTC)

	got := analyzer.ExperienceAt("ten years of experience overall", now)
	assert.Nil(t, got.TotalYears)
}
