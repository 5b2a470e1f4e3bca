package app

import (
	"time"

	"github.com/alexanderramin/casetrail/internal/domain"
	"github.com/alexanderramin/casetrail/internal/genogram"
	"github.com/alexanderramin/casetrail/internal/timeline"
)

type GenogramRequest struct {
	CaseID string
}

// GenogramResponse carries the graph for the case's current composition.
// Warnings lists graph invariant violations; it is empty for any graph the
// builder produces.
type GenogramResponse struct {
	CaseID   string         `json:"caseId"`
	Graph    genogram.Graph `json:"graph"`
	Warnings []string       `json:"warnings,omitempty"`
}

type TimelineRequest struct {
	CaseID string
	// Categories filters the result; empty keeps every event.
	Categories []timeline.Category
	// Now overrides the clock used for the status-event fallback date.
	Now *time.Time
}

type TimelineResponse struct {
	CaseID string           `json:"caseId"`
	Events []timeline.Event `json:"events"`
}

type ImportResult struct {
	Case          *domain.Case
	SnapshotCount int
	NoteCount     int
	TaskCount     int
	ScheduleCount int
}
