package testutil

import (
	"github.com/alexanderramin/casetrail/internal/domain"
	"github.com/google/uuid"
)

// Case options
type CaseOption func(*domain.Case)

func WithCaseID(id string) CaseOption {
	return func(c *domain.Case) {
		c.ID = id
	}
}

func WithCaseStatus(s domain.CaseStatus) CaseOption {
	return func(c *domain.Case) {
		c.Status = s
	}
}

func WithAssignedTo(name string) CaseOption {
	return func(c *domain.Case) {
		c.AssignedTo = name
	}
}

func WithDateOpened(d string) CaseOption {
	return func(c *domain.Case) {
		c.DateOpened = d
	}
}

func WithLastUpdate(d string) CaseOption {
	return func(c *domain.Case) {
		c.LastUpdate = d
	}
}

func WithSnapshot(s domain.CompositionSnapshot) CaseOption {
	return func(c *domain.Case) {
		c.CompositionHistory = append(c.CompositionHistory, s)
	}
}

func NewTestCase(clientName string, opts ...CaseOption) *domain.Case {
	c := &domain.Case{
		ID:         uuid.New().String(),
		ClientName: clientName,
		AssignedTo: "Trabajadora Social",
		Status:     domain.CaseOpen,
		DateOpened: "2024-01-01",
		LastUpdate: "2024-03-01",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot options
type SnapshotOption func(*domain.CompositionSnapshot)

func WithFamilyMember(id, fullName, role string) SnapshotOption {
	return func(s *domain.CompositionSnapshot) {
		s.FamilyUnit = append(s.FamilyUnit, domain.FamilyMember{
			Person:                   domain.Person{ID: id, FullName: fullName},
			RelationshipToCaseHolder: role,
		})
	}
}

func WithHouseholdMember(id, fullName string, isFamily bool, notes string) SnapshotOption {
	return func(s *domain.CompositionSnapshot) {
		s.HouseholdUnit = append(s.HouseholdUnit, domain.HouseholdMember{
			Person:            domain.Person{ID: id, FullName: fullName},
			IsFamilyMember:    isFamily,
			CohabitationNotes: notes,
		})
	}
}

func WithSnapshotNotes(notes string) SnapshotOption {
	return func(s *domain.CompositionSnapshot) {
		s.Notes = notes
	}
}

func NewTestSnapshot(effectiveDate string, opts ...SnapshotOption) domain.CompositionSnapshot {
	s := domain.CompositionSnapshot{
		RecordID:      uuid.New().String(),
		EffectiveDate: effectiveDate,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func NewTestNote(caseID, date, content string) *domain.ClientNote {
	return &domain.ClientNote{
		ID:      uuid.New().String(),
		CaseID:  caseID,
		Title:   "Nota de seguimiento",
		Content: content,
		Date:    date,
	}
}

// Task options
type TaskOption func(*domain.Task)

func WithTaskStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithTaskDescription(d string) TaskOption {
	return func(t *domain.Task) {
		t.Description = d
	}
}

func NewTestTask(caseID, title, dueDate string, opts ...TaskOption) *domain.Task {
	t := &domain.Task{
		ID:      uuid.New().String(),
		CaseID:  caseID,
		Title:   title,
		DueDate: dueDate,
		Status:  domain.TaskToDo,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func NewTestScheduleEntry(caseID, title, start string, typ domain.EventType) *domain.ScheduleEntry {
	return &domain.ScheduleEntry{
		ID:     uuid.New().String(),
		CaseID: caseID,
		Title:  title,
		Start:  start,
		Type:   typ,
	}
}
