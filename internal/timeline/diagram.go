package timeline

import "time"

// DiagramEvent is the flat shape consumed by timeline diagrams.
type DiagramEvent struct {
	Key       string   `json:"key"`
	Date      string   `json:"date"`
	Text      string   `json:"text"`
	EventType string   `json:"eventType"`
	Category  Category `json:"category"`
}

var diagramTypes = map[SourceType]string{
	SourceNote:        "Note",
	SourceTask:        "Task",
	SourceSchedule:    "Appointment",
	SourceComposition: "Composition",
	SourceCase:        "Case",
}

// ToDiagram projects events into diagram entries, preserving order.
func ToDiagram(events []Event) []DiagramEvent {
	out := make([]DiagramEvent, 0, len(events))
	for _, e := range events {
		date := e.RawDate
		if e.HasDate() {
			date = e.Date.Format(time.RFC3339)
		}
		out = append(out, DiagramEvent{
			Key:       e.ID,
			Date:      date,
			Text:      e.Title,
			EventType: diagramTypes[e.SourceType],
			Category:  e.Category,
		})
	}
	return out
}
