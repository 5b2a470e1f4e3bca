package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToDiagram(t *testing.T) {
	events := []Event{
		{ID: "note-n1", Date: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), RawDate: "2024-01-10", Title: "Nota", SourceType: SourceNote, Category: CategoryDocumentation},
		{ID: "scheduleEvent-s1", Date: time.Date(2024, 1, 11, 9, 0, 0, 0, time.UTC), Title: "Cita", SourceType: SourceSchedule, Category: CategoryCaseActions},
		{ID: "task-t1:planned", RawDate: "sin fecha", Title: "Tarea", SourceType: SourceTask, Category: CategoryCaseActions},
	}

	got := ToDiagram(events)

	assert.Equal(t, []DiagramEvent{
		{Key: "note-n1", Date: "2024-01-10T00:00:00Z", Text: "Nota", EventType: "Note", Category: CategoryDocumentation},
		{Key: "scheduleEvent-s1", Date: "2024-01-11T09:00:00Z", Text: "Cita", EventType: "Appointment", Category: CategoryCaseActions},
		{Key: "task-t1:planned", Date: "sin fecha", Text: "Tarea", EventType: "Task", Category: CategoryCaseActions},
	}, got)
}

func TestToDiagram_Empty(t *testing.T) {
	assert.Equal(t, []DiagramEvent{}, ToDiagram(nil))
}
