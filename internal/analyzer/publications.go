package analyzer

import (
	"strings"

	"github.com/fairyhunter13/resume-analyzer/internal/domain"
)

// Publications locates the research-publications section and counts its
// enumerated entries. A line counts only when it begins with a numeral
// followed by whitespace. Classification priority: books, then articles,
// then conference papers; an entry matching nothing is an article. A missing
// heading yields the all-zero breakdown.
func Publications(text string) domain.PublicationBreakdown {
	lines := splitLines(text)

	start := -1
	for i, line := range lines {
		if strings.Contains(strings.ToLower(line), "details of research publications") {
			start = i
			break
		}
	}
	if start < 0 {
		return domain.PublicationBreakdown{}
	}

	end := len(lines)
	for j := start + 1; j < len(lines); j++ {
		if strings.Contains(strings.ToLower(lines[j]), "refresher courses") {
			end = j
			break
		}
	}

	var pb domain.PublicationBreakdown
	for _, line := range lines[start:end] {
		if !numberedLineRe.MatchString(line) {
			continue
		}
		pb.Total++
		low := strings.ToLower(line)
		switch {
		case strings.Contains(low, "book") || strings.Contains(low, "isbn") || strings.Contains(low, "chapter"):
			pb.Books++
		case containsAny(low, articleKeywords):
			pb.Articles++
		case strings.Contains(low, "presented") && (strings.Contains(low, "conference") || strings.Contains(low, "seminar")):
			pb.Conferences++
		default:
			pb.Articles++
		}
	}
	return pb
}
