package app

import (
	"context"

	"github.com/alexanderramin/casetrail/internal/importer"
)

type GenogramUseCase interface {
	Genogram(ctx context.Context, req GenogramRequest) (*GenogramResponse, error)
}

type TimelineUseCase interface {
	Timeline(ctx context.Context, req TimelineRequest) (*TimelineResponse, error)
}

type ImportCaseUseCase interface {
	ImportCase(ctx context.Context, filePath string) (*ImportResult, error)
	ImportCaseFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}
