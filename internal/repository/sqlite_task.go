package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/casetrail/internal/db"
	"github.com/alexanderramin/casetrail/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	tags, err := encodeTags(t.Tags)
	if err != nil {
		return err
	}
	query := `INSERT INTO tasks (id, case_id, title, description, due_date, status, location, tags, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		t.ID, t.CaseID, t.Title, t.Description, t.DueDate, string(t.Status), t.Location, tags, nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

// ListByCase returns a case's tasks in insertion order.
func (r *SQLiteTaskRepo) ListByCase(ctx context.Context, caseID string) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, case_id, title, description, due_date, status, location, tags
		FROM tasks WHERE case_id = ? ORDER BY rowid`, caseID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		var t domain.Task
		var status, tags string
		if err := rows.Scan(&t.ID, &t.CaseID, &t.Title, &t.Description, &t.DueDate, &status, &t.Location, &tags); err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		t.Status = domain.TaskStatus(status)
		if t.Tags, err = decodeTags(tags); err != nil {
			return nil, fmt.Errorf("task %s: %w", t.ID, err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}
