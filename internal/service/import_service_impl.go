package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/casetrail/internal/app"
	"github.com/alexanderramin/casetrail/internal/db"
	"github.com/alexanderramin/casetrail/internal/domain"
	"github.com/alexanderramin/casetrail/internal/importer"
	"github.com/alexanderramin/casetrail/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportCase(ctx context.Context, filePath string) (*app.ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.importSchema(ctx, schema)
}

func (s *importService) ImportCaseFromSchema(ctx context.Context, schema *importer.ImportSchema) (*app.ImportResult, error) {
	return s.importSchema(ctx, schema)
}

func (s *importService) importSchema(ctx context.Context, schema *importer.ImportSchema) (result *app.ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"client": schema.Case.ClientName}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import_case",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		fields["validation_errors"] = len(errs)
		return nil, formatValidationErrors(errs)
	}

	bundle := importer.Convert(schema)
	fields["case_id"] = bundle.Case.ID

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return saveBundle(ctx, tx, bundle)
	})
	if err != nil {
		return nil, err
	}

	return &app.ImportResult{
		Case:          bundle.Case,
		SnapshotCount: len(bundle.Case.CompositionHistory),
		NoteCount:     len(bundle.Notes),
		TaskCount:     len(bundle.Tasks),
		ScheduleCount: len(bundle.Schedule),
	}, nil
}

// saveBundle writes every record of the bundle through tx-scoped repos.
func saveBundle(ctx context.Context, tx db.DBTX, bundle *domain.CaseBundle) error {
	cases := repository.NewSQLiteCaseRepo(tx)
	compositions := repository.NewSQLiteCompositionRepo(tx)
	notes := repository.NewSQLiteNoteRepo(tx)
	tasks := repository.NewSQLiteTaskRepo(tx)
	schedule := repository.NewSQLiteScheduleRepo(tx)

	c := bundle.Case
	exists, err := cases.Exists(ctx, c.ID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("case %s already exists", c.ID)
	}

	if err := cases.Create(ctx, c); err != nil {
		return fmt.Errorf("creating case: %w", err)
	}
	for i := range c.CompositionHistory {
		snap := &c.CompositionHistory[i]
		if err := compositions.Create(ctx, c.ID, snap); err != nil {
			return fmt.Errorf("creating composition snapshot %s: %w", snap.EffectiveDate, err)
		}
	}
	for i := range bundle.Notes {
		if err := notes.Create(ctx, &bundle.Notes[i]); err != nil {
			return fmt.Errorf("creating note %q: %w", bundle.Notes[i].Title, err)
		}
	}
	for i := range bundle.Tasks {
		if err := tasks.Create(ctx, &bundle.Tasks[i]); err != nil {
			return fmt.Errorf("creating task %q: %w", bundle.Tasks[i].Title, err)
		}
	}
	for i := range bundle.Schedule {
		if err := schedule.Create(ctx, &bundle.Schedule[i]); err != nil {
			return fmt.Errorf("creating schedule entry %q: %w", bundle.Schedule[i].Title, err)
		}
	}
	return nil
}

func formatValidationErrors(errs []error) error {
	var b strings.Builder
	fmt.Fprintf(&b, "import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		b.WriteString("\n  - ")
		b.WriteString(e.Error())
	}
	return fmt.Errorf("%s", b.String())
}
