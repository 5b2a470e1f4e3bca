package repository

import (
	"context"

	"github.com/alexanderramin/casetrail/internal/domain"
)

// CaseRepo stores case rows. Composition history lives in CompositionRepo;
// GetByID and List return cases without it.
type CaseRepo interface {
	Create(ctx context.Context, c *domain.Case) error
	GetByID(ctx context.Context, id string) (*domain.Case, error)
	List(ctx context.Context) ([]*domain.Case, error)
	Exists(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
}

// CompositionRepo stores composition snapshots with their family and
// household members. ListByCase returns snapshots in insertion order.
type CompositionRepo interface {
	Create(ctx context.Context, caseID string, s *domain.CompositionSnapshot) error
	ListByCase(ctx context.Context, caseID string) ([]domain.CompositionSnapshot, error)
}

type NoteRepo interface {
	Create(ctx context.Context, n *domain.ClientNote) error
	ListByCase(ctx context.Context, caseID string) ([]domain.ClientNote, error)
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	ListByCase(ctx context.Context, caseID string) ([]domain.Task, error)
}

type ScheduleRepo interface {
	Create(ctx context.Context, e *domain.ScheduleEntry) error
	ListByCase(ctx context.Context, caseID string) ([]domain.ScheduleEntry, error)
}
