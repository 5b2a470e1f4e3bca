package timeline

import (
	"github.com/alexanderramin/casetrail/internal/domain"
	"github.com/alexanderramin/casetrail/internal/registry"
)

// Build produces the consolidated timeline for a case bundle. Records whose
// CaseID names a different case are skipped. A bundle without a case yields
// an empty, non-nil slice.
func Build(b domain.CaseBundle, opts ...Option) []Event {
	c := b.Case
	if c == nil {
		return []Event{}
	}
	reg := registry.Build(c, c.CurrentComposition())
	n := NewNormalizer(c, reg, opts...)

	caseEvents := n.FromCase()

	var notes []Event
	for _, note := range b.Notes {
		if inScope(note.CaseID, c.ID) {
			notes = append(notes, n.FromNote(note))
		}
	}

	var tasks []Event
	for _, t := range b.Tasks {
		if inScope(t.CaseID, c.ID) {
			tasks = append(tasks, n.FromTask(t)...)
		}
	}

	var schedule []Event
	for _, e := range b.Schedule {
		if inScope(e.CaseID, c.ID) {
			schedule = append(schedule, n.FromScheduleEntry(e))
		}
	}

	var compositions []Event
	for _, s := range c.CompositionHistory {
		compositions = append(compositions, n.FromSnapshot(s))
	}

	return Consolidate(caseEvents, notes, tasks, schedule, compositions)
}

func inScope(recordCaseID, caseID string) bool {
	return recordCaseID == "" || recordCaseID == caseID
}
