package analyzer

import (
	"strconv"
	"strings"

	"github.com/fairyhunter13/resume-analyzer/internal/domain"
)

// DetectDegrees reports the degree levels mentioned anywhere in text, in
// pattern-table order, without duplicates.
func DetectDegrees(text string) []string {
	low := strings.ToLower(text)
	var found []string
	for _, p := range degreePatterns {
		if p.re.MatchString(low) && !containsString(found, p.level) {
			found = append(found, p.level)
		}
	}
	return found
}

// HighestDegree picks the maximum-seniority level from degrees, or Unknown
// for an empty set.
func HighestDegree(degrees []string) string {
	best := domain.DegreeUnknown
	bestPriority := 0
	for _, d := range degrees {
		if p := domain.DegreePriority[d]; p > bestPriority {
			bestPriority = p
			best = d
		}
	}
	return best
}

// DegreeDetails groups the education section into blocks and extracts one
// DegreeRecord per block. A line matching any degree pattern opens a block;
// following non-matching lines attach to it until the next match, so trailing
// institution and date lines stay with the degree that precedes them. Blocks
// are never split retroactively. Blocks with no recognizable degree keyword
// are dropped silently.
//
// fullText is the whole document; PhD status evidence may live outside the
// education section.
func DegreeDetails(educationText, fullText string) []domain.DegreeRecord {
	lines := nonEmptyLines(educationText)
	if len(lines) == 0 {
		return nil
	}

	var blocks [][]string
	var current []string
	for _, line := range lines {
		if hasDegreeKeyword(strings.ToLower(line)) {
			if len(current) > 0 {
				blocks = append(blocks, current)
			}
			current = []string{line}
		} else if len(current) > 0 {
			current = append(current, line)
		}
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}

	globalStatus, hasGlobalStatus := PhDStatus(fullText)

	var records []domain.DegreeRecord
	for _, block := range blocks {
		full := strings.Join(block, " ")
		fullLow := strings.ToLower(full)

		levels := DetectDegrees(full)
		if len(levels) == 0 {
			continue
		}
		degreeType := HighestDegree(levels)

		startYear, endYear := yearsFromText(full)
		field, institution := fieldAndInstitution(full)

		status := domain.StatusCompleted
		if containsAny(fullLow, pursuingKeywords) {
			status = domain.StatusPursuing
		}
		if endYear == nil && startYear != nil {
			// open range, likely ongoing
			status = domain.StatusPursuing
		}

		rec := domain.DegreeRecord{
			DegreeType:   degreeType,
			RawText:      full,
			FieldOfStudy: field,
			Institution:  institution,
			StartYear:    startYear,
			EndYear:      endYear,
		}

		if degreeType == domain.DegreePhD {
			thesisSubmitted := false
			awarded := false
			if hasGlobalStatus {
				switch globalStatus {
				case domain.StatusAwarded:
					status = domain.StatusAwarded
					awarded = true
				case domain.StatusThesisSubmitted:
					status = domain.StatusThesisSubmitted
					thesisSubmitted = true
				case domain.StatusPursuing:
					status = domain.StatusPursuing
				}
			}
			// Local block evidence wins last.
			if strings.Contains(fullLow, "thesis submitted") {
				status = domain.StatusThesisSubmitted
				thesisSubmitted = true
			}
			if strings.Contains(fullLow, "awarded") {
				status = domain.StatusAwarded
				awarded = true
			}
			rec.PhDThesisSubmitted = &thesisSubmitted
			rec.PhDAwarded = &awarded
		}
		rec.Status = status
		records = append(records, rec)
	}
	return records
}

func hasDegreeKeyword(lowLine string) bool {
	for _, p := range degreePatterns {
		if p.re.MatchString(lowLine) {
			return true
		}
	}
	return false
}

// yearsFromText pulls a start/end year pair out of a block. A "YYYY - end"
// range wins; an end token that is not all digits (Present, Ongoing, or an
// en-dash range that never splits) leaves the end year absent. Otherwise the
// last bare year in the block becomes the end year with no start.
func yearsFromText(text string) (start, end *int) {
	if m := yearRangeRe.FindString(text); m != "" {
		s, err := strconv.Atoi(m[:4])
		if err == nil {
			start = &s
		}
		parts := strings.Split(m, "-")
		endPart := strings.TrimSpace(parts[len(parts)-1])
		if digitsOnlyRe.MatchString(endPart) {
			if e, err := strconv.Atoi(endPart); err == nil {
				end = &e
			}
		}
		return start, end
	}

	years := yearRe.FindAllString(text, -1)
	if len(years) > 0 {
		if e, err := strconv.Atoi(years[len(years)-1]); err == nil {
			return nil, &e
		}
	}
	return nil, nil
}

// fieldAndInstitution extracts the field of study and institution name from
// one block. Parenthesized content is the preferred field source unless it
// carries a 2-4 digit run (a year or code, not a field); the fallback takes
// the text after the first " in ", truncated at the first separator.
func fieldAndInstitution(blockText string) (field, institution *string) {
	if m := parenRe.FindStringSubmatch(blockText); m != nil {
		raw := strings.TrimSpace(m[1])
		if len(raw) > 2 && !digitRunRe.MatchString(raw) {
			field = &raw
		}
	}

	if field == nil {
		low := strings.ToLower(blockText)
		if idx := strings.Index(low, " in "); idx >= 0 {
			after := blockText[idx+4:]
			for _, sep := range []string{",", "|", "-", "–", " at "} {
				if i := strings.Index(after, sep); i >= 0 {
					after = after[:i]
				}
			}
			f := strings.Trim(after, " ,.-–")
			if len(f) > 2 && !digitRunRe.MatchString(f) {
				field = &f
			}
		}
	}

	if m := institutionRe.FindStringSubmatch(blockText); m != nil {
		inst := strings.TrimSpace(m[1])
		institution = &inst
	}
	return field, institution
}
