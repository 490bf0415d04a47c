package analyzer

import "strings"

// EducationSection returns the suffix of text starting at the first line
// whose trimmed, lowercased form contains an education heading. The full
// text comes back unchanged when no heading matches; segmentation never
// fails.
func EducationSection(text string) string {
	lines := splitLines(text)
	if len(lines) == 0 {
		return text
	}

	start := -1
scan:
	for i, line := range lines {
		ll := strings.ToLower(strings.TrimSpace(line))
		for _, title := range eduSectionTitles {
			if strings.Contains(ll, title) {
				start = i
				break scan
			}
		}
	}
	if start < 0 {
		return text
	}

	section := strings.TrimSpace(strings.Join(lines[start:], "\n"))
	if section == "" {
		return text
	}
	return section
}
