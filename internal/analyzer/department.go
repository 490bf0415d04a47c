package analyzer

import (
	"strings"

	"github.com/fairyhunter13/resume-analyzer/internal/domain"
)

// DepartmentFromFields maps extracted fields of study to a department via the
// ordered keyword table. Fields are tested in extraction order; the first
// keyword whose phrase is a substring of a lowercased field wins.
func DepartmentFromFields(fields []string) string {
	for _, field := range fields {
		low := strings.ToLower(field)
		for _, kw := range departmentKeywords {
			if strings.Contains(low, kw.phrase) {
				return kw.department
			}
		}
	}
	return domain.DepartmentUnknown
}

// DepartmentFromText runs the same ordered lookup against the whole document.
// Used as the second pass when no field of study matched.
func DepartmentFromText(text string) string {
	low := strings.ToLower(text)
	for _, kw := range departmentKeywords {
		if strings.Contains(low, kw.phrase) {
			return kw.department
		}
	}
	return domain.DepartmentUnknown
}
