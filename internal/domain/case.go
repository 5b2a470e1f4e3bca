package domain

import "fmt"

// CaseHolderRole is the implicit role of the person a case is about.
const CaseHolderRole = "Titular del Caso"

type Case struct {
	ID                 string
	ClientName         string
	AssignedTo         string
	Status             CaseStatus
	Description        string
	AvatarURL          string
	DateOpened         string // optional
	LastUpdate         string // optional
	CompositionHistory []CompositionSnapshot
}

// CurrentComposition returns the most recent composition snapshot, or nil.
func (c *Case) CurrentComposition() *CompositionSnapshot {
	return LatestSnapshot(c.CompositionHistory)
}

// CaseHolderID returns the pseudo-person id of the case holder.
func (c *Case) CaseHolderID() string {
	return CaseHolderID(c.ID)
}

// CaseHolderID returns the pseudo-person id used for a case's holder.
func CaseHolderID(caseID string) string {
	return fmt.Sprintf("caseholder-%s", caseID)
}

// ClientNote is a free-text note written by the social worker.
type ClientNote struct {
	ID      string
	CaseID  string
	Title   string
	Content string
	Date    string
	Tags    []string
}

type Task struct {
	ID          string
	CaseID      string
	Title       string
	Description string
	DueDate     string
	Status      TaskStatus
	Location    string
	Tags        []string
}

// IsCompleted reports whether the task has been marked done.
func (t *Task) IsCompleted() bool {
	return t.Status == TaskCompleted
}

// ScheduleEntry is a calendar item (appointment, visit, deadline, ...).
type ScheduleEntry struct {
	ID          string
	CaseID      string
	Title       string
	Description string
	Start       string
	End         string
	Type        EventType
	Location    string
	AllDay      bool
}

// CaseBundle is the full case aggregate plus its case-scoped records, as
// handed to the genogram and timeline pipelines.
type CaseBundle struct {
	Case     *Case
	Notes    []ClientNote
	Tasks    []Task
	Schedule []ScheduleEntry
}
