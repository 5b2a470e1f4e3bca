package service

import (
	"context"

	"github.com/alexanderramin/casetrail/internal/app"
	"github.com/alexanderramin/casetrail/internal/domain"
)

type CaseService interface {
	List(ctx context.Context) ([]*domain.Case, error)
	Get(ctx context.Context, id string) (*domain.Case, error)
}

// CaseHistoryService runs the genogram and timeline pipelines over stored
// cases.
type CaseHistoryService interface {
	app.GenogramUseCase
	app.TimelineUseCase
}

type ImportService interface {
	app.ImportCaseUseCase
}
