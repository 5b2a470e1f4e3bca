package timeline

import (
	"strings"

	"github.com/alexanderramin/casetrail/internal/textfold"
)

// TaskRules reclassifies task events by keyword. Documentation keywords are
// checked before personal-domain keywords; tasks matching neither stay
// CaseActions.
type TaskRules struct {
	Documentation []string
	Personal      []string
}

// DefaultTaskRules returns the Spanish keyword sets.
func DefaultTaskRules() *TaskRules {
	return &TaskRules{
		Documentation: []string{"informe", "documento", "valoración"},
		Personal:      []string{"laboral", "empleo", "vivienda", "salud"},
	}
}

// Classify returns the broad category for a task with the given text.
func (r *TaskRules) Classify(title, description string) Category {
	text := textfold.Fold(title + "\n" + description)
	if containsAny(text, r.Documentation) {
		return CategoryDocumentation
	}
	if containsAny(text, r.Personal) {
		return CategoryPersonal
	}
	return CategoryCaseActions
}

func containsAny(folded string, keywords []string) bool {
	for _, k := range keywords {
		fk := textfold.Fold(k)
		if fk != "" && strings.Contains(folded, fk) {
			return true
		}
	}
	return false
}

func equalFoldTrim(a, b string) bool {
	return textfold.Equal(a, b)
}
