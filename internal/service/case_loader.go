package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/casetrail/internal/domain"
	"github.com/alexanderramin/casetrail/internal/repository"
)

// CaseRepos groups the repositories a case bundle is read from.
type CaseRepos struct {
	Cases        repository.CaseRepo
	Compositions repository.CompositionRepo
	Notes        repository.NoteRepo
	Tasks        repository.TaskRepo
	Schedule     repository.ScheduleRepo
}

// caseLoader assembles a case aggregate from storage.
type caseLoader struct {
	repos CaseRepos
}

// loadCase returns the case with its composition history.
func (l *caseLoader) loadCase(ctx context.Context, caseID string) (*domain.Case, error) {
	c, err := l.repos.Cases.GetByID(ctx, caseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCaseNotFound, caseID)
		}
		return nil, fmt.Errorf("loading case: %w", err)
	}
	history, err := l.repos.Compositions.ListByCase(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("loading composition history: %w", err)
	}
	c.CompositionHistory = history
	return c, nil
}

// loadBundle returns the case plus its notes, tasks, and schedule entries.
func (l *caseLoader) loadBundle(ctx context.Context, caseID string) (*domain.CaseBundle, error) {
	c, err := l.loadCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	notes, err := l.repos.Notes.ListByCase(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("loading notes: %w", err)
	}
	tasks, err := l.repos.Tasks.ListByCase(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	schedule, err := l.repos.Schedule.ListByCase(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("loading schedule: %w", err)
	}
	return &domain.CaseBundle{Case: c, Notes: notes, Tasks: tasks, Schedule: schedule}, nil
}
