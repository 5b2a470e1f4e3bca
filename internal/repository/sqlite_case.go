package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/casetrail/internal/db"
	"github.com/alexanderramin/casetrail/internal/domain"
)

// SQLiteCaseRepo implements CaseRepo using a SQLite database.
type SQLiteCaseRepo struct {
	db db.DBTX
}

func NewSQLiteCaseRepo(conn db.DBTX) *SQLiteCaseRepo {
	return &SQLiteCaseRepo{db: conn}
}

const caseColumns = `id, client_name, assigned_to, status, description, avatar_url, date_opened, last_update`

func (r *SQLiteCaseRepo) Create(ctx context.Context, c *domain.Case) error {
	now := nowUTC()
	query := `INSERT INTO cases (` + caseColumns + `, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.ClientName,
		c.AssignedTo,
		string(c.Status),
		c.Description,
		c.AvatarURL,
		nullableString(c.DateOpened),
		nullableString(c.LastUpdate),
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("inserting case: %w", err)
	}
	return nil
}

func (r *SQLiteCaseRepo) GetByID(ctx context.Context, id string) (*domain.Case, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+caseColumns+` FROM cases WHERE id = ?`, id)
	c, err := scanCase(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("case %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning case: %w", err)
	}
	return c, nil
}

func (r *SQLiteCaseRepo) List(ctx context.Context) ([]*domain.Case, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+caseColumns+` FROM cases ORDER BY created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing cases: %w", err)
	}
	defer rows.Close()

	var cases []*domain.Case
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning case: %w", err)
		}
		cases = append(cases, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cases: %w", err)
	}
	return cases, nil
}

func (r *SQLiteCaseRepo) Exists(ctx context.Context, id string) (bool, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cases WHERE id = ?`, id).Scan(&n); err != nil {
		return false, fmt.Errorf("checking case: %w", err)
	}
	return n > 0, nil
}

func (r *SQLiteCaseRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cases WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting case: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCase(s rowScanner) (*domain.Case, error) {
	var c domain.Case
	var status string
	var opened, updated sql.NullString
	if err := s.Scan(&c.ID, &c.ClientName, &c.AssignedTo, &status, &c.Description, &c.AvatarURL, &opened, &updated); err != nil {
		return nil, err
	}
	c.Status = domain.CaseStatus(status)
	c.DateOpened = fromNullString(opened)
	c.LastUpdate = fromNullString(updated)
	return &c, nil
}
