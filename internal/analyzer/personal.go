package analyzer

import "strings"

const headerLineCount = 15

// ExtractName returns the first non-empty line with any salutation prefix
// stripped. Lines containing digits or "@" come back as-is: the historical
// guard on those characters resolved to the same value on both branches, and
// callers rely on the first-line-wins behavior.
func ExtractName(text string) *string {
	for _, line := range splitLines(text) {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		low := strings.ToLower(name)
		for _, p := range salutationPrefixes {
			if strings.HasPrefix(low, p) {
				name = strings.TrimSpace(name[len(p):])
				break
			}
		}
		return &name
	}
	return nil
}

// ExtractEmail returns the first email-shaped token anywhere in the document.
func ExtractEmail(text string) *string {
	if m := emailRe.FindString(text); m != "" {
		return &m
	}
	return nil
}

// ExtractPhone returns the first candidate in the top lines whose digit count
// falls in the 10-13 range expected of a phone number.
func ExtractPhone(text string) *string {
	top := strings.Join(headLines(text, headerLineCount), "\n")
	for _, cand := range phoneRe.FindAllString(top, -1) {
		digits := nonDigitRe.ReplaceAllString(cand, "")
		if len(digits) >= 10 && len(digits) <= 13 {
			trimmed := strings.TrimSpace(cand)
			return &trimmed
		}
	}
	return nil
}

// ExtractLocation looks for an "india" mention in the top lines. A
// pipe-delimited header line yields its trailing segment; otherwise a
// "City, India" shaped phrase is taken.
func ExtractLocation(text string) *string {
	for _, line := range headLines(text, headerLineCount) {
		if !strings.Contains(strings.ToLower(line), "india") {
			continue
		}
		if strings.Contains(line, "|") {
			parts := strings.Split(line, "|")
			part := strings.TrimSpace(parts[len(parts)-1])
			return &part
		}
		if m := locationRe.FindStringSubmatch(line); m != nil {
			loc := strings.TrimSpace(m[1])
			return &loc
		}
	}
	return nil
}

// ExtractCurrentOrganization searches from the work-experience heading (or
// the document start when absent) for a "currently working"/"present" cue and
// returns the next non-empty line within four lines. Falls back to the first
// organization-looking line within twenty lines of the search start.
func ExtractCurrentOrganization(text string) *string {
	lines := splitLines(text)

	start := 0
	for i, line := range lines {
		if strings.Contains(strings.ToLower(line), "work experience") {
			start = i
			break
		}
	}

	for i := start; i < len(lines); i++ {
		low := strings.ToLower(lines[i])
		if strings.Contains(low, "currently working") || strings.Contains(low, "present") {
			for j := i + 1; j < len(lines) && j < i+5; j++ {
				if cand := strings.TrimSpace(lines[j]); cand != "" {
					return &cand
				}
			}
		}
	}

	limit := start + 20
	if limit > len(lines) {
		limit = len(lines)
	}
	for i := start; i < limit; i++ {
		if containsAny(strings.ToLower(lines[i]), orgKeywords) {
			if cand := strings.TrimSpace(lines[i]); cand != "" {
				return &cand
			}
		}
	}
	return nil
}

func headLines(text string, n int) []string {
	lines := splitLines(text)
	if len(lines) > n {
		lines = lines[:n]
	}
	return lines
}
