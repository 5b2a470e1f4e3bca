package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/casetrail/internal/domain"
)

type caseService struct {
	loader   *caseLoader
	observer UseCaseObserver
}

func NewCaseService(repos CaseRepos, observers ...UseCaseObserver) CaseService {
	return &caseService{
		loader:   &caseLoader{repos: repos},
		observer: useCaseObserverOrNoop(observers),
	}
}

// List returns every case with its composition history.
func (s *caseService) List(ctx context.Context) (cases []*domain.Case, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "list_cases",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"case_count": len(cases)},
		})
	}()

	cases, err = s.loader.repos.Cases.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing cases: %w", err)
	}
	for _, c := range cases {
		history, err := s.loader.repos.Compositions.ListByCase(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("loading composition history for case %s: %w", c.ID, err)
		}
		c.CompositionHistory = history
	}
	return cases, nil
}

// Get returns the case with its composition history.
func (s *caseService) Get(ctx context.Context, id string) (*domain.Case, error) {
	return s.loader.loadCase(ctx, id)
}
