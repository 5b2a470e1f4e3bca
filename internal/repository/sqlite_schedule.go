package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/casetrail/internal/db"
	"github.com/alexanderramin/casetrail/internal/domain"
)

// SQLiteScheduleRepo implements ScheduleRepo using a SQLite database.
type SQLiteScheduleRepo struct {
	db db.DBTX
}

func NewSQLiteScheduleRepo(conn db.DBTX) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: conn}
}

func (r *SQLiteScheduleRepo) Create(ctx context.Context, e *domain.ScheduleEntry) error {
	query := `INSERT INTO schedule_entries (id, case_id, title, description, start_at, end_at, type, location, all_day, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.CaseID, e.Title, e.Description, e.Start, e.End, string(e.Type), e.Location, boolToInt(e.AllDay), nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting schedule entry: %w", err)
	}
	return nil
}

// ListByCase returns a case's schedule entries in insertion order.
func (r *SQLiteScheduleRepo) ListByCase(ctx context.Context, caseID string) ([]domain.ScheduleEntry, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, case_id, title, description, start_at, end_at, type, location, all_day
		FROM schedule_entries WHERE case_id = ? ORDER BY rowid`, caseID)
	if err != nil {
		return nil, fmt.Errorf("listing schedule entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.ScheduleEntry
	for rows.Next() {
		var e domain.ScheduleEntry
		var typ string
		var allDay int
		if err := rows.Scan(&e.ID, &e.CaseID, &e.Title, &e.Description, &e.Start, &e.End, &typ, &e.Location, &allDay); err != nil {
			return nil, fmt.Errorf("scanning schedule entry: %w", err)
		}
		e.Type = domain.EventType(typ)
		e.AllDay = intToBool(allDay)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedule entries: %w", err)
	}
	return entries, nil
}
