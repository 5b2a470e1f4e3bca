// Package timeline normalizes heterogeneous case records (notes, tasks,
// schedule entries, composition snapshots, case metadata) into one event
// shape and consolidates them into a single chronological sequence.
package timeline

import (
	"fmt"
	"time"

	"github.com/alexanderramin/casetrail/internal/domain"
)

// SourceType names the kind of record an event was derived from.
type SourceType string

const (
	SourceNote        SourceType = "note"
	SourceTask        SourceType = "task"
	SourceSchedule    SourceType = "scheduleEvent"
	SourceComposition SourceType = "compositionChange"
	SourceCase        SourceType = "caseUpdate"
)

// Kind is the closed set of timeline event kinds.
type Kind string

const (
	KindCaseOpened     Kind = "case_opened"
	KindCaseStatus     Kind = "case_status"
	KindNoteCreated    Kind = "note_created"
	KindTaskPlanned    Kind = "task_planned"
	KindTaskCompleted  Kind = "task_completed"
	KindAppointment    Kind = "appointment_scheduled"
	KindHomeVisit      Kind = "home_visit"
	KindTeamMeeting    Kind = "team_meeting"
	KindPersonalEvent  Kind = "personal_event"
	KindDeadline       Kind = "deadline_scheduled"
	KindOtherScheduled Kind = "other_scheduled"
	KindComposition    Kind = "composition_change"
)

var kindLabels = map[Kind]string{
	KindCaseOpened:     "Caso Abierto",
	KindCaseStatus:     "Actualización de Estado del Caso",
	KindNoteCreated:    "Nota Creada",
	KindTaskPlanned:    "Tarea Planificada",
	KindTaskCompleted:  "Tarea Completada",
	KindAppointment:    "Cita Programada",
	KindHomeVisit:      "Visita Domiciliaria",
	KindTeamMeeting:    "Reunión de Equipo",
	KindPersonalEvent:  "Evento Personal",
	KindDeadline:       "Fecha Límite Programada",
	KindOtherScheduled: "Otro Evento Agendado",
	KindComposition:    "Cambio de Composición",
}

// Label returns the display label of k.
func (k Kind) Label() string {
	if l, ok := kindLabels[k]; ok {
		return l
	}
	return string(k)
}

// Category is one of the four coarse buckets used for filtering.
type Category string

const (
	CategoryPersonal      Category = "PersonalEvents"
	CategoryFamilyUnit    Category = "FamilyUnitEvents"
	CategoryCaseActions   Category = "CaseActions"
	CategoryDocumentation Category = "GeneratedDocumentation"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryPersonal, CategoryFamilyUnit, CategoryCaseActions, CategoryDocumentation}

var categoryLabels = map[Category]string{
	CategoryPersonal:      "Eventos Personales",
	CategoryFamilyUnit:    "Eventos de Unidad Familiar",
	CategoryCaseActions:   "Actuaciones sobre el Caso",
	CategoryDocumentation: "Documentación Generada",
}

// Label returns the display label of c.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// ParseCategory accepts a category value or its display label, ignoring case.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if equalFoldTrim(s, string(c)) || equalFoldTrim(s, c.Label()) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown timeline category %q", s)
}

// RelatedPerson is a person an event refers to.
type RelatedPerson struct {
	ID           string `json:"id"`
	FullName     string `json:"fullName"`
	Relationship string `json:"relationship,omitempty"`
}

// Event is one normalized timeline entry.
//
// Date is the parsed instant in UTC; it is zero when the source date could
// not be parsed, and such events sort last. RawDate keeps the source value.
type Event struct {
	ID             string          `json:"id"`
	Date           time.Time       `json:"date"`
	RawDate        string          `json:"rawDate,omitempty"`
	Kind           Kind            `json:"kind"`
	Title          string          `json:"title"`
	Description    string          `json:"description,omitempty"`
	SourceID       string          `json:"sourceId"`
	SourceType     SourceType      `json:"sourceType"`
	RelatedPersons []RelatedPerson `json:"relatedPersons"`
	Category       Category        `json:"broadCategory"`
}

// HasDate reports whether the event has a usable date. A raw date that
// parses to the zero instant (0001-01-01) still counts as dated.
func (e Event) HasDate() bool {
	if !e.Date.IsZero() {
		return true
	}
	_, ok := domain.ParseDate(e.RawDate)
	return ok
}

// EventID builds the globally unique id "<sourceType>-<sourceId>[:suffix]".
func EventID(src SourceType, sourceID, suffix string) string {
	id := fmt.Sprintf("%s-%s", src, sourceID)
	if suffix != "" {
		id += ":" + suffix
	}
	return id
}
