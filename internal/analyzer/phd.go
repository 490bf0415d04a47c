package analyzer

import (
	"strings"

	"github.com/fairyhunter13/resume-analyzer/internal/domain"
)

// PhDStatus scans the whole document for PhD mentions and inspects a +/-100
// character window around each one, in document order. "awarded" anywhere in
// a window resolves immediately; otherwise "thesis submitted" and pursuing
// signals accumulate and the first one collected wins. Returns false when no
// window carried a signal.
func PhDStatus(text string) (string, bool) {
	low := strings.ToLower(text)
	var statuses []string
	for _, loc := range phdMentionRe.FindAllStringIndex(low, -1) {
		start := loc[0] - 100
		if start < 0 {
			start = 0
		}
		end := loc[1] + 100
		if end > len(low) {
			end = len(low)
		}
		window := low[start:end]

		if strings.Contains(window, "awarded") {
			return domain.StatusAwarded, true
		}
		if strings.Contains(window, "thesis submitted") || strings.Contains(window, "submitted thesis") {
			statuses = append(statuses, domain.StatusThesisSubmitted)
		}
		if containsAny(window, pursuingKeywords) {
			statuses = append(statuses, domain.StatusPursuing)
		}
	}
	if len(statuses) == 0 {
		return "", false
	}
	return statuses[0], true
}
