package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/casetrail/internal/db"
	"github.com/alexanderramin/casetrail/internal/domain"
)

// SQLiteNoteRepo implements NoteRepo using a SQLite database.
type SQLiteNoteRepo struct {
	db db.DBTX
}

func NewSQLiteNoteRepo(conn db.DBTX) *SQLiteNoteRepo {
	return &SQLiteNoteRepo{db: conn}
}

func (r *SQLiteNoteRepo) Create(ctx context.Context, n *domain.ClientNote) error {
	tags, err := encodeTags(n.Tags)
	if err != nil {
		return err
	}
	query := `INSERT INTO client_notes (id, case_id, title, content, date, tags, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, n.ID, n.CaseID, n.Title, n.Content, n.Date, tags, nowUTC()); err != nil {
		return fmt.Errorf("inserting note: %w", err)
	}
	return nil
}

// ListByCase returns a case's notes in insertion order.
func (r *SQLiteNoteRepo) ListByCase(ctx context.Context, caseID string) ([]domain.ClientNote, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, case_id, title, content, date, tags FROM client_notes WHERE case_id = ? ORDER BY rowid`, caseID)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	defer rows.Close()

	var notes []domain.ClientNote
	for rows.Next() {
		var n domain.ClientNote
		var tags string
		if err := rows.Scan(&n.ID, &n.CaseID, &n.Title, &n.Content, &n.Date, &tags); err != nil {
			return nil, fmt.Errorf("scanning note: %w", err)
		}
		if n.Tags, err = decodeTags(tags); err != nil {
			return nil, fmt.Errorf("note %s: %w", n.ID, err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notes: %w", err)
	}
	return notes, nil
}
