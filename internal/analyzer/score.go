package analyzer

import (
	"strings"

	"github.com/fairyhunter13/resume-analyzer/internal/domain"
)

// Score combines the highest credential with a department match bonus. The
// PhD flag is checked before highestDegree, so an inconsistent pair still
// scores as a PhD. An empty targetDepartment means no department bonus at
// all; a supplied one adds 30 on a case-insensitive match, else 10.
func Score(hasPhD bool, highestDegree, department, targetDepartment string) int {
	score := 0
	switch {
	case hasPhD:
		score += 50
	case highestDegree == domain.DegreeMaster:
		score += 35
	case highestDegree == domain.DegreeBachelor:
		score += 25
	case highestDegree == domain.DegreeDiploma || highestDegree == domain.DegreeHighSchool:
		score += 15
	default:
		score += 10
	}

	if targetDepartment != "" {
		if strings.EqualFold(department, targetDepartment) {
			score += 30
		} else {
			score += 10
		}
	}
	return score
}
