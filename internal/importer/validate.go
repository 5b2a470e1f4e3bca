package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/casetrail/internal/domain"
)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns every validation error found, not just the first.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	errs = append(errs, validateCase(&schema.Case)...)
	errs = append(errs, validateSnapshots(schema.CompositionHistory)...)
	errs = append(errs, validateNotes(schema.Notes)...)
	errs = append(errs, validateTasks(schema.Tasks)...)
	errs = append(errs, validateSchedule(schema.Schedule)...)

	return errs
}

func validateCase(c *CaseImport) []error {
	var errs []error

	if strings.TrimSpace(c.ClientName) == "" {
		errs = append(errs, fmt.Errorf("case.client_name is required"))
	}
	if c.Status != "" && !domain.ValidCaseStatuses[domain.CaseStatus(c.Status)] {
		errs = append(errs, fmt.Errorf("case.status: invalid value %q", c.Status))
	}
	errs = append(errs, validateOptionalDate("case.date_opened", c.DateOpened)...)
	errs = append(errs, validateOptionalDate("case.last_update", c.LastUpdate)...)

	return errs
}

func validateSnapshots(snaps []SnapshotImport) []error {
	var errs []error
	ids := make(map[string]bool)

	for i, s := range snaps {
		prefix := fmt.Sprintf("composition_history[%d]", i)

		errs = append(errs, checkUniqueID(prefix, s.ID, ids)...)
		errs = append(errs, validateRequiredDate(prefix+".effective_date", s.EffectiveDate)...)

		familyIDs := make(map[string]bool)
		for j, fm := range s.FamilyUnit {
			errs = append(errs, validatePerson(fmt.Sprintf("%s.family_unit[%d]", prefix, j), fm.PersonImport, familyIDs)...)
		}
		householdIDs := make(map[string]bool)
		for j, hm := range s.HouseholdUnit {
			errs = append(errs, validatePerson(fmt.Sprintf("%s.household_unit[%d]", prefix, j), hm.PersonImport, householdIDs)...)
		}
	}

	return errs
}

func validatePerson(prefix string, p PersonImport, seen map[string]bool) []error {
	var errs []error

	if strings.TrimSpace(p.ID) == "" {
		errs = append(errs, fmt.Errorf("%s.id is required", prefix))
	} else if seen[p.ID] {
		errs = append(errs, fmt.Errorf("%s.id: duplicate id %q in the same unit", prefix, p.ID))
	} else {
		seen[p.ID] = true
	}
	if strings.TrimSpace(p.FullName) == "" {
		errs = append(errs, fmt.Errorf("%s.full_name is required", prefix))
	}
	if p.DateOfBirth != nil && *p.DateOfBirth != "" {
		if _, err := time.Parse(domain.DateLayout, *p.DateOfBirth); err != nil {
			errs = append(errs, fmt.Errorf("%s.date_of_birth: invalid date format %q (expected YYYY-MM-DD)", prefix, *p.DateOfBirth))
		}
	}
	if p.Gender != "" && domain.ParseGender(p.Gender) == domain.GenderUnknown && !strings.EqualFold(p.Gender, string(domain.GenderUnknown)) {
		errs = append(errs, fmt.Errorf("%s.gender: invalid value %q", prefix, p.Gender))
	}

	return errs
}

func validateNotes(notes []NoteImport) []error {
	var errs []error
	ids := make(map[string]bool)

	for i, n := range notes {
		prefix := fmt.Sprintf("notes[%d]", i)
		errs = append(errs, checkUniqueID(prefix, n.ID, ids)...)
		if strings.TrimSpace(n.Title) == "" && strings.TrimSpace(n.Content) == "" {
			errs = append(errs, fmt.Errorf("%s: title or content is required", prefix))
		}
		errs = append(errs, validateRequiredDate(prefix+".date", n.Date)...)
	}

	return errs
}

func validateTasks(tasks []TaskImport) []error {
	var errs []error
	ids := make(map[string]bool)

	for i, t := range tasks {
		prefix := fmt.Sprintf("tasks[%d]", i)
		errs = append(errs, checkUniqueID(prefix, t.ID, ids)...)
		if strings.TrimSpace(t.Title) == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		errs = append(errs, validateRequiredDate(prefix+".due_date", t.DueDate)...)
		if t.Status != "" && !domain.ValidTaskStatuses[domain.TaskStatus(t.Status)] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, t.Status))
		}
	}

	return errs
}

func validateSchedule(entries []ScheduleImport) []error {
	var errs []error
	ids := make(map[string]bool)

	for i, e := range entries {
		prefix := fmt.Sprintf("schedule[%d]", i)
		errs = append(errs, checkUniqueID(prefix, e.ID, ids)...)
		if strings.TrimSpace(e.Title) == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		errs = append(errs, validateRequiredDate(prefix+".start", e.Start)...)
		errs = append(errs, validateOptionalDate(prefix+".end", &e.End)...)
		if e.Type != "" && !domain.ValidEventTypes[domain.EventType(e.Type)] {
			errs = append(errs, fmt.Errorf("%s.type: invalid value %q", prefix, e.Type))
		}
		start, okStart := domain.ParseDate(e.Start)
		stop, okEnd := domain.ParseDate(e.End)
		if okStart && okEnd && stop.Before(start) {
			errs = append(errs, fmt.Errorf("%s.end %q must not be before start %q", prefix, e.End, e.Start))
		}
	}

	return errs
}

// checkUniqueID records id in seen; an empty id is allowed and generated later.
func checkUniqueID(prefix, id string, seen map[string]bool) []error {
	if id == "" {
		return nil
	}
	if seen[id] {
		return []error{fmt.Errorf("%s.id: duplicate id %q", prefix, id)}
	}
	seen[id] = true
	return nil
}

func validateRequiredDate(field, s string) []error {
	if strings.TrimSpace(s) == "" {
		return []error{fmt.Errorf("%s is required", field)}
	}
	return validateOptionalDate(field, &s)
}

func validateOptionalDate(field string, s *string) []error {
	if s == nil || *s == "" {
		return nil
	}
	if _, ok := domain.ParseDate(*s); !ok {
		return []error{fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD or ISO-8601 date-time)", field, *s)}
	}
	return nil
}
