package importer

import (
	"github.com/alexanderramin/casetrail/internal/domain"
	"github.com/google/uuid"
)

// Convert transforms a validated ImportSchema into a case bundle ready for
// persistence. Missing record ids are generated and every record is scoped
// to the case. Call ValidateImportSchema first; Convert assumes the schema
// is valid.
func Convert(schema *ImportSchema) *domain.CaseBundle {
	caseID := idOrNew(schema.Case.ID)

	c := &domain.Case{
		ID:          caseID,
		ClientName:  schema.Case.ClientName,
		AssignedTo:  schema.Case.AssignedTo,
		Status:      domain.CaseStatus(domain.CoalesceStr(schema.Case.Status, string(domain.CaseOpen))),
		Description: schema.Case.Description,
		AvatarURL:   schema.Case.AvatarURL,
		DateOpened:  deref(schema.Case.DateOpened),
		LastUpdate:  deref(schema.Case.LastUpdate),
	}

	for _, s := range schema.CompositionHistory {
		c.CompositionHistory = append(c.CompositionHistory, convertSnapshot(s))
	}

	bundle := &domain.CaseBundle{Case: c}

	for _, n := range schema.Notes {
		bundle.Notes = append(bundle.Notes, domain.ClientNote{
			ID:      idOrNew(n.ID),
			CaseID:  caseID,
			Title:   n.Title,
			Content: n.Content,
			Date:    n.Date,
			Tags:    n.Tags,
		})
	}

	for _, t := range schema.Tasks {
		bundle.Tasks = append(bundle.Tasks, domain.Task{
			ID:          idOrNew(t.ID),
			CaseID:      caseID,
			Title:       t.Title,
			Description: t.Description,
			DueDate:     t.DueDate,
			Status:      domain.TaskStatus(domain.CoalesceStr(t.Status, string(domain.TaskToDo))),
			Location:    t.Location,
			Tags:        t.Tags,
		})
	}

	for _, e := range schema.Schedule {
		bundle.Schedule = append(bundle.Schedule, domain.ScheduleEntry{
			ID:          idOrNew(e.ID),
			CaseID:      caseID,
			Title:       e.Title,
			Description: e.Description,
			Start:       e.Start,
			End:         e.End,
			Type:        domain.EventType(domain.CoalesceStr(e.Type, string(domain.EventOther))),
			Location:    e.Location,
			AllDay:      e.AllDay,
		})
	}

	return bundle
}

func convertSnapshot(s SnapshotImport) domain.CompositionSnapshot {
	snap := domain.CompositionSnapshot{
		RecordID:      idOrNew(s.ID),
		EffectiveDate: s.EffectiveDate,
		Notes:         s.Notes,
	}
	for _, fm := range s.FamilyUnit {
		snap.FamilyUnit = append(snap.FamilyUnit, domain.FamilyMember{
			Person:                   convertPerson(fm.PersonImport),
			RelationshipToCaseHolder: fm.RelationshipToCaseHolder,
		})
	}
	for _, hm := range s.HouseholdUnit {
		snap.HouseholdUnit = append(snap.HouseholdUnit, domain.HouseholdMember{
			Person:            convertPerson(hm.PersonImport),
			IsFamilyMember:    hm.IsFamilyMember,
			CohabitationNotes: hm.CohabitationNotes,
		})
	}
	return snap
}

func convertPerson(p PersonImport) domain.Person {
	return domain.Person{
		ID:          p.ID,
		FullName:    p.FullName,
		DateOfBirth: deref(p.DateOfBirth),
		Gender:      domain.ParseGender(p.Gender),
	}
}

func idOrNew(id string) string {
	if id != "" {
		return id
	}
	return uuid.New().String()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
