package importer

import (
	"testing"

	"github.com/alexanderramin/casetrail/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_MinimalCase(t *testing.T) {
	bundle := Convert(validMinimalSchema())

	c := bundle.Case
	require.NotNil(t, c)
	assert.NotEmpty(t, c.ID, "missing case id is generated")
	assert.Equal(t, "María López", c.ClientName)
	assert.Equal(t, domain.CaseOpen, c.Status)
	assert.Empty(t, c.DateOpened)
	require.Len(t, c.CompositionHistory, 1)
	assert.NotEmpty(t, c.CompositionHistory[0].RecordID)
	assert.Equal(t, "hija", c.CompositionHistory[0].FamilyUnit[0].RelationshipToCaseHolder)
}

func TestConvert_KeepsGivenIDs(t *testing.T) {
	s := validMinimalSchema()
	s.Case.ID = "case-1"
	s.CompositionHistory[0].ID = "comp-1"
	s.Notes = []NoteImport{{ID: "n1", Content: "x", Date: "2024-01-01"}}

	bundle := Convert(s)

	assert.Equal(t, "case-1", bundle.Case.ID)
	assert.Equal(t, "comp-1", bundle.Case.CompositionHistory[0].RecordID)
	assert.Equal(t, "n1", bundle.Notes[0].ID)
}

func TestConvert_ScopesRecordsToCase(t *testing.T) {
	s := validMinimalSchema()
	s.Notes = []NoteImport{{Content: "x", Date: "2024-01-01", Tags: []string{"visita"}}}
	s.Tasks = []TaskImport{{Title: "t", DueDate: "2024-01-02"}}
	s.Schedule = []ScheduleImport{{Title: "e", Start: "2024-01-03", AllDay: true}}

	bundle := Convert(s)
	caseID := bundle.Case.ID

	require.Len(t, bundle.Notes, 1)
	assert.Equal(t, caseID, bundle.Notes[0].CaseID)
	assert.NotEmpty(t, bundle.Notes[0].ID)
	assert.Equal(t, []string{"visita"}, bundle.Notes[0].Tags)

	require.Len(t, bundle.Tasks, 1)
	assert.Equal(t, caseID, bundle.Tasks[0].CaseID)
	assert.Equal(t, domain.TaskToDo, bundle.Tasks[0].Status)

	require.Len(t, bundle.Schedule, 1)
	assert.Equal(t, caseID, bundle.Schedule[0].CaseID)
	assert.Equal(t, domain.EventOther, bundle.Schedule[0].Type)
	assert.True(t, bundle.Schedule[0].AllDay)
}

func TestConvert_PersonFields(t *testing.T) {
	s := validMinimalSchema()
	s.Case.DateOpened = ptrStr("2023-12-01")
	s.CompositionHistory[0].FamilyUnit[0].Gender = "Female"
	s.CompositionHistory[0].FamilyUnit[0].DateOfBirth = ptrStr("2010-02-03")
	s.CompositionHistory[0].HouseholdUnit = []HouseholdMemberImport{
		{PersonImport: PersonImport{ID: "h1", FullName: "Pedro"}, CohabitationNotes: "Inquilino"},
	}

	snap := Convert(s).Case.CompositionHistory[0]

	assert.Equal(t, domain.GenderFemale, snap.FamilyUnit[0].Gender)
	assert.Equal(t, "2010-02-03", snap.FamilyUnit[0].DateOfBirth)
	require.Len(t, snap.HouseholdUnit, 1)
	assert.Equal(t, domain.Gender(""), snap.HouseholdUnit[0].Gender, "absent gender stays absent")
	assert.False(t, snap.HouseholdUnit[0].IsFamilyMember)
	assert.Equal(t, "Inquilino", snap.HouseholdUnit[0].CohabitationNotes)
}

func TestParseImportSchema(t *testing.T) {
	doc := []byte(`{
		"case": {"id": "c1", "client_name": "Ana", "status": "Activo", "date_opened": "2024-01-01"},
		"composition_history": [{
			"effective_date": "2024-01-01",
			"family_unit": [{"id": "p1", "full_name": "Rosa", "gender": "female", "relationship_to_case_holder": "madre"}],
			"household_unit": [{"id": "p1", "full_name": "Rosa", "is_family_member": true}]
		}],
		"tasks": [{"title": "Informe", "due_date": "2024-02-01", "status": "Completada"}]
	}`)

	s, err := ParseImportSchema(doc)
	require.NoError(t, err)
	assert.Empty(t, ValidateImportSchema(s))
	assert.Equal(t, "Activo", s.Case.Status)
	require.NotNil(t, s.Case.DateOpened)
	assert.Equal(t, "madre", s.CompositionHistory[0].FamilyUnit[0].RelationshipToCaseHolder)
	assert.Equal(t, "Rosa", s.CompositionHistory[0].FamilyUnit[0].FullName)
	assert.True(t, s.CompositionHistory[0].HouseholdUnit[0].IsFamilyMember)

	_, err = ParseImportSchema([]byte(`{"case":`))
	assert.Error(t, err)
}
