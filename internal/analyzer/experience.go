package analyzer

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/fairyhunter13/resume-analyzer/internal/domain"
)

// ExperienceAt scans the whole text for "Month YYYY - Month YYYY" ranges and
// classifies each by a +/-120 character context window: teaching terms are
// checked before industry terms, anything else lands in the other bucket.
// Open-ended ranges (Present, Till Date, ...) resolve to now. Ranges with a
// non-positive month count are discarded, never counted negative.
func ExperienceAt(text string, now time.Time) domain.ExperienceBreakdown {
	var teachingMonths, industryMonths, otherMonths int

	for _, idx := range expRangeRe.FindAllStringSubmatchIndex(text, -1) {
		fromMonthStr := groupAt(text, idx, expFromMonth)
		if len(fromMonthStr) < 3 {
			continue
		}
		fromMonth, ok := monthIndex[strings.ToLower(fromMonthStr[:3])]
		if !ok {
			continue
		}
		fromYear, err := strconv.Atoi(groupAt(text, idx, expFromYear))
		if err != nil {
			continue
		}

		var toMonth, toYear int
		if tm := groupAt(text, idx, expToMonth); tm != "" {
			m, ok := monthIndex[strings.ToLower(tm[:3])]
			if !ok {
				m = int(now.Month())
			}
			toMonth = m
			toYear, _ = strconv.Atoi(groupAt(text, idx, expToYear))
		} else {
			toMonth = int(now.Month())
			toYear = now.Year()
		}

		months := (toYear-fromYear)*12 + (toMonth - fromMonth)
		if months <= 0 {
			continue
		}

		ctxStart := idx[0] - 120
		if ctxStart < 0 {
			ctxStart = 0
		}
		ctxEnd := idx[1] + 120
		if ctxEnd > len(text) {
			ctxEnd = len(text)
		}
		window := strings.ToLower(text[ctxStart:ctxEnd])

		switch {
		case containsAny(window, teachingKeywords):
			teachingMonths += months
		case containsAny(window, industryKeywords):
			industryMonths += months
		default:
			otherMonths += months
		}
	}

	return domain.ExperienceBreakdown{
		TeachingYears: monthsToYears(teachingMonths),
		IndustryYears: monthsToYears(industryMonths),
		OtherYears:    monthsToYears(otherMonths),
		TotalYears:    monthsToYears(teachingMonths + industryMonths + otherMonths),
	}
}

func monthsToYears(months int) *float64 {
	if months <= 0 {
		return nil
	}
	y := math.Round(float64(months)/12.0*10) / 10
	return &y
}

func groupAt(s string, idx []int, group int) string {
	if group < 0 || 2*group+1 >= len(idx) {
		return ""
	}
	start, end := idx[2*group], idx[2*group+1]
	if start < 0 {
		return ""
	}
	return s[start:end]
}
