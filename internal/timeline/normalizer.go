package timeline

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/alexanderramin/casetrail/internal/domain"
	"github.com/alexanderramin/casetrail/internal/registry"
)

// Normalizer turns the records of one case into timeline events. Every event
// it emits has at least one related person: when no mention is found the
// case holder is used.
type Normalizer struct {
	caseData *domain.Case
	holder   RelatedPerson
	mentions *MentionMatcher
	rules    *TaskRules
	now      func() time.Time
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithClock sets the source of "now", used when a case has no usable dates.
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) {
		if now != nil {
			n.now = now
		}
	}
}

// WithTaskRules replaces the keyword rules used to categorize tasks.
func WithTaskRules(r *TaskRules) Option {
	return func(n *Normalizer) {
		if r != nil {
			n.rules = r
		}
	}
}

// NewNormalizer creates a normalizer for c. The registry supplies the people
// that can be matched as mentions; it is normally built from the case's
// current composition.
func NewNormalizer(c *domain.Case, reg *registry.Registry, opts ...Option) *Normalizer {
	n := &Normalizer{
		caseData: c,
		holder: RelatedPerson{
			ID:           c.CaseHolderID(),
			FullName:     c.ClientName,
			Relationship: domain.CaseHolderRole,
		},
		mentions: NewMentionMatcher(reg.All()),
		rules:    DefaultTaskRules(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// FromCase emits the case-opened event (when DateOpened is set) and the
// current-status event.
func (n *Normalizer) FromCase() []Event {
	c := n.caseData
	var out []Event

	if strings.TrimSpace(c.DateOpened) != "" {
		desc := ""
		if c.AssignedTo != "" {
			desc = fmt.Sprintf("Asignado a: %s.", c.AssignedTo)
		}
		out = append(out, n.newEvent(SourceCase, c.ID, "opened", c.DateOpened, KindCaseOpened, CategoryCaseActions,
			fmt.Sprintf("Caso Abierto para %s", c.ClientName), desc, nil))
	}

	out = append(out, n.newEvent(SourceCase, c.ID, "status", n.statusDate(), KindCaseStatus, CategoryCaseActions,
		fmt.Sprintf("Estado actual: %s", c.Status),
		"Última actualización registrada del estado del caso.", nil))
	return out
}

// statusDate prefers LastUpdate, then DateOpened, then the clock.
func (n *Normalizer) statusDate() string {
	for _, d := range []string{n.caseData.LastUpdate, n.caseData.DateOpened} {
		if _, ok := domain.ParseDate(d); ok {
			return d
		}
	}
	return n.now().UTC().Format(time.RFC3339)
}

// FromNote emits the note-created event.
func (n *Normalizer) FromNote(note domain.ClientNote) Event {
	title := domain.CoalesceStr(note.Title, excerpt(note.Content, 100))
	return n.newEvent(SourceNote, note.ID, "", note.Date, KindNoteCreated, CategoryDocumentation,
		title, note.Content, n.mentions.Find(note.Title, note.Content))
}

// FromTask emits the planned event and, for completed tasks, a completed
// event at the same date.
func (n *Normalizer) FromTask(task domain.Task) []Event {
	related := n.mentions.Find(task.Title, task.Description)
	category := n.rules.Classify(task.Title, task.Description)

	out := []Event{
		n.newEvent(SourceTask, task.ID, "planned", task.DueDate, KindTaskPlanned, category,
			task.Title, task.Description, related),
	}
	if task.IsCompleted() {
		out = append(out, n.newEvent(SourceTask, task.ID, "completed", task.DueDate, KindTaskCompleted, category,
			"Completada: "+task.Title, "La tarea fue marcada como completada.", slices.Clone(related)))
	}
	return out
}

// FromScheduleEntry emits one event at the entry's start.
func (n *Normalizer) FromScheduleEntry(e domain.ScheduleEntry) Event {
	kind, category := scheduleKind(e.Type)
	return n.newEvent(SourceSchedule, e.ID, "", e.Start, kind, category,
		e.Title, e.Description, n.mentions.Find(e.Title, e.Description))
}

func scheduleKind(t domain.EventType) (Kind, Category) {
	switch t {
	case domain.EventAppointment:
		return KindAppointment, CategoryCaseActions
	case domain.EventHomeVisit:
		return KindHomeVisit, CategoryCaseActions
	case domain.EventTeamMeeting:
		return KindTeamMeeting, CategoryCaseActions
	case domain.EventPersonal:
		return KindPersonalEvent, CategoryPersonal
	case domain.EventDeadline:
		return KindDeadline, CategoryPersonal
	case domain.EventOther:
		return KindOtherScheduled, CategoryPersonal
	default:
		return KindOtherScheduled, CategoryCaseActions
	}
}

// FromSnapshot emits one composition-change event listing everyone in the
// snapshot's family and household units.
func (n *Normalizer) FromSnapshot(s domain.CompositionSnapshot) Event {
	title := domain.CoalesceStr(s.Notes, "Actualización en composición familiar/convivencia")
	desc := fmt.Sprintf("Unidad Familiar: %d miembro(s). Unidad Convivencia: %d miembro(s). Notas: %s",
		len(s.FamilyUnit), len(s.HouseholdUnit), domain.CoalesceStr(s.Notes, "N/A"))
	return n.newEvent(SourceComposition, s.RecordID, "", s.EffectiveDate, KindComposition, CategoryFamilyUnit,
		title, desc, snapshotPersons(s))
}

func snapshotPersons(s domain.CompositionSnapshot) []RelatedPerson {
	var out []RelatedPerson
	seen := make(map[string]bool)
	for _, fm := range s.FamilyUnit {
		if fm.ID == "" || seen[fm.ID] {
			continue
		}
		seen[fm.ID] = true
		out = append(out, RelatedPerson{
			ID:           fm.ID,
			FullName:     fm.FullName,
			Relationship: domain.CoalesceStr(fm.RelationshipToCaseHolder, registry.FamilyLabel),
		})
	}
	for _, hm := range s.HouseholdUnit {
		if hm.ID == "" || seen[hm.ID] {
			continue
		}
		rel := hm.CohabitationNotes
		if hm.IsFamilyMember {
			rel = registry.FamilyLabel
		}
		// A non-family cohabitant without notes has no known relationship.
		if strings.TrimSpace(rel) == "" {
			continue
		}
		seen[hm.ID] = true
		out = append(out, RelatedPerson{ID: hm.ID, FullName: hm.FullName, Relationship: rel})
	}
	return out
}

func (n *Normalizer) newEvent(src SourceType, sourceID, suffix, rawDate string, kind Kind, category Category,
	title, description string, related []RelatedPerson) Event {
	at, _ := domain.ParseDate(rawDate)
	if len(related) == 0 {
		related = []RelatedPerson{n.holder}
	}
	return Event{
		ID:             EventID(src, sourceID, suffix),
		Date:           at,
		RawDate:        rawDate,
		Kind:           kind,
		Title:          title,
		Description:    description,
		SourceID:       sourceID,
		SourceType:     src,
		RelatedPersons: related,
		Category:       category,
	}
}

func excerpt(s string, max int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= max {
		return string(r)
	}
	return string(r[:max]) + "..."
}
