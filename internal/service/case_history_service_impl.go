package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/alexanderramin/casetrail/internal/app"
	"github.com/alexanderramin/casetrail/internal/genogram"
	"github.com/alexanderramin/casetrail/internal/kinship"
	"github.com/alexanderramin/casetrail/internal/timeline"
)

type caseHistoryService struct {
	loader   *caseLoader
	builder  *genogram.Builder
	logger   *slog.Logger
	observer UseCaseObserver
}

// NewCaseHistoryService wires the genogram and timeline pipelines to
// storage. A nil vocabulary uses the default one; a nil logger discards
// graph warnings.
func NewCaseHistoryService(
	repos CaseRepos,
	vocab *kinship.Vocabulary,
	logger *slog.Logger,
	observers ...UseCaseObserver,
) CaseHistoryService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &caseHistoryService{
		loader:   &caseLoader{repos: repos},
		builder:  genogram.NewBuilder(kinship.NewInferencer(vocab)),
		logger:   logger,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *caseHistoryService) Genogram(ctx context.Context, req app.GenogramRequest) (resp *app.GenogramResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"case_id": req.CaseID}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "genogram",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	c, err := s.loader.loadCase(ctx, req.CaseID)
	if err != nil {
		return nil, err
	}

	graph := s.builder.Build(c)
	resp = &app.GenogramResponse{CaseID: c.ID, Graph: graph}
	for _, violation := range genogram.Verify(graph) {
		s.logger.WarnContext(ctx, "genogram_invariant_violation", "case_id", c.ID, "error", violation.Error())
		resp.Warnings = append(resp.Warnings, violation.Error())
	}

	fields["node_count"] = len(graph.Nodes)
	fields["snapshot_count"] = len(c.CompositionHistory)
	fields["warning_count"] = len(resp.Warnings)
	return resp, nil
}

func (s *caseHistoryService) Timeline(ctx context.Context, req app.TimelineRequest) (resp *app.TimelineResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"case_id": req.CaseID}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "timeline",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	bundle, err := s.loader.loadBundle(ctx, req.CaseID)
	if err != nil {
		return nil, err
	}

	var opts []timeline.Option
	if req.Now != nil {
		now := *req.Now
		opts = append(opts, timeline.WithClock(func() time.Time { return now }))
	}

	events := timeline.FilterByCategory(timeline.Build(*bundle, opts...), req.Categories...)

	fields["event_count"] = len(events)
	if len(req.Categories) > 0 {
		fields["categories"] = len(req.Categories)
	}
	return &app.TimelineResponse{CaseID: bundle.Case.ID, Events: events}, nil
}
