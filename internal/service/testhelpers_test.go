package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/casetrail/internal/importer"
	"github.com/alexanderramin/casetrail/internal/repository"
	"github.com/alexanderramin/casetrail/internal/testutil"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newCaseRepos(database *sql.DB) CaseRepos {
	return CaseRepos{
		Cases:        repository.NewSQLiteCaseRepo(database),
		Compositions: repository.NewSQLiteCompositionRepo(database),
		Notes:        repository.NewSQLiteNoteRepo(database),
		Tasks:        repository.NewSQLiteTaskRepo(database),
		Schedule:     repository.NewSQLiteScheduleRepo(database),
	}
}

// lopezSchema is a case with one composition snapshot: Ana is the daughter
// of Luis and Rosa, Marta shares the home without being family.
func lopezSchema() *importer.ImportSchema {
	return &importer.ImportSchema{
		Case: importer.CaseImport{
			ID:         "case-lopez",
			ClientName: "María López",
			AssignedTo: "Carmen Ruiz",
			Status:     "En Progreso",
			DateOpened: strPtr("2024-01-01"),
			LastUpdate: strPtr("2024-04-01"),
		},
		CompositionHistory: []importer.SnapshotImport{
			{
				ID:            "snap-1",
				EffectiveDate: "2024-02-01",
				Notes:         "Primera entrevista",
				FamilyUnit: []importer.FamilyMemberImport{
					{PersonImport: importer.PersonImport{ID: "p-ana", FullName: "Ana López", Gender: "female"}, RelationshipToCaseHolder: "Hija"},
					{PersonImport: importer.PersonImport{ID: "p-luis", FullName: "Luis López", Gender: "male"}, RelationshipToCaseHolder: "Padre"},
					{PersonImport: importer.PersonImport{ID: "p-rosa", FullName: "Rosa Díaz", Gender: "female"}, RelationshipToCaseHolder: "Madre"},
				},
				HouseholdUnit: []importer.HouseholdMemberImport{
					{PersonImport: importer.PersonImport{ID: "p-marta", FullName: "Marta Gil"}, CohabitationNotes: "Compañera de piso"},
				},
			},
		},
		Notes: []importer.NoteImport{
			{ID: "note-1", Title: "Visita", Content: "Ana López comenta que busca empleo.", Date: "2024-02-15"},
		},
		Tasks: []importer.TaskImport{
			{ID: "task-1", Title: "Reunión con servicios sociales", DueDate: "2024-03-10", Status: "Completada"},
		},
	}
}

func importLopez(t *testing.T, database *sql.DB) {
	t.Helper()
	svc := NewImportService(testutil.NewTestUoW(database))
	_, err := svc.ImportCaseFromSchema(context.Background(), lopezSchema())
	require.NoError(t, err)
}

type recordingObserver struct {
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.events = append(o.events, event)
}
