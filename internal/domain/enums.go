package domain

import "strings"

type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderOther   Gender = "other"
	GenderUnknown Gender = "unknown"
)

// ParseGender accepts both the stored values and the capitalized labels used
// by intake forms ("Male", "Female", ...). Empty input stays empty (absent);
// anything else unrecognized maps to GenderUnknown.
func ParseGender(s string) Gender {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return ""
	case "male", "m":
		return GenderMale
	case "female", "f":
		return GenderFemale
	case "other":
		return GenderOther
	default:
		return GenderUnknown
	}
}

// OrUnknown returns g, or GenderUnknown when g is absent.
func (g Gender) OrUnknown() Gender {
	if g == "" {
		return GenderUnknown
	}
	return g
}

type CaseStatus string

const (
	CaseOpen          CaseStatus = "Abierto"
	CaseInProgress    CaseStatus = "En Progreso"
	CaseClosed        CaseStatus = "Cerrado"
	CasePendingReview CaseStatus = "Pendiente Revisión"
	CaseActive        CaseStatus = "Activo"
)

// ValidCaseStatuses is the canonical set of accepted case status strings.
var ValidCaseStatuses = map[CaseStatus]bool{
	CaseOpen: true, CaseInProgress: true, CaseClosed: true,
	CasePendingReview: true, CaseActive: true,
}

type TaskStatus string

const (
	TaskToDo       TaskStatus = "Por Hacer"
	TaskInProgress TaskStatus = "En Progreso"
	TaskAssigned   TaskStatus = "Asignada"
	TaskCompleted  TaskStatus = "Completada"
	TaskPending    TaskStatus = "Pendiente"
	TaskScheduled  TaskStatus = "Programada"
)

// ValidTaskStatuses is the canonical set of accepted task status strings.
var ValidTaskStatuses = map[TaskStatus]bool{
	TaskToDo: true, TaskInProgress: true, TaskAssigned: true,
	TaskCompleted: true, TaskPending: true, TaskScheduled: true,
}

type EventType string

const (
	EventAppointment EventType = "Cita"
	EventHomeVisit   EventType = "Visita Domiciliaria"
	EventTeamMeeting EventType = "Reunión de Equipo"
	EventPersonal    EventType = "Personal"
	EventDeadline    EventType = "Fecha Límite"
	EventOther       EventType = "Otro"
)

// ValidEventTypes is the canonical set of accepted schedule entry types.
var ValidEventTypes = map[EventType]bool{
	EventAppointment: true, EventHomeVisit: true, EventTeamMeeting: true,
	EventPersonal: true, EventDeadline: true, EventOther: true,
}
