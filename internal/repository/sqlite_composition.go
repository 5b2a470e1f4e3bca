package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/casetrail/internal/db"
	"github.com/alexanderramin/casetrail/internal/domain"
)

const (
	unitFamily    = "family"
	unitHousehold = "household"
)

// SQLiteCompositionRepo implements CompositionRepo using a SQLite database.
type SQLiteCompositionRepo struct {
	db db.DBTX
}

func NewSQLiteCompositionRepo(conn db.DBTX) *SQLiteCompositionRepo {
	return &SQLiteCompositionRepo{db: conn}
}

// Create appends a snapshot to the case's history. Run it inside a
// UnitOfWork so the record and its members are written together.
func (r *SQLiteCompositionRepo) Create(ctx context.Context, caseID string, s *domain.CompositionSnapshot) error {
	query := `INSERT INTO composition_records (id, case_id, effective_date, notes, seq)
		VALUES (?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM composition_records WHERE case_id = ?))`
	if _, err := r.db.ExecContext(ctx, query, s.RecordID, caseID, s.EffectiveDate, s.Notes, caseID); err != nil {
		return fmt.Errorf("inserting composition record: %w", err)
	}

	memberQuery := `INSERT INTO composition_members (record_id, unit, person_id, position, full_name, date_of_birth,
		gender, relationship, is_family_member, cohabitation_notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for i, fm := range s.FamilyUnit {
		if _, err := r.db.ExecContext(ctx, memberQuery,
			s.RecordID, unitFamily, fm.ID, i, fm.FullName, nullableString(fm.DateOfBirth),
			string(fm.Gender), fm.RelationshipToCaseHolder, 1, "",
		); err != nil {
			return fmt.Errorf("inserting family member %s: %w", fm.ID, err)
		}
	}
	for i, hm := range s.HouseholdUnit {
		if _, err := r.db.ExecContext(ctx, memberQuery,
			s.RecordID, unitHousehold, hm.ID, i, hm.FullName, nullableString(hm.DateOfBirth),
			string(hm.Gender), "", boolToInt(hm.IsFamilyMember), hm.CohabitationNotes,
		); err != nil {
			return fmt.Errorf("inserting household member %s: %w", hm.ID, err)
		}
	}
	return nil
}

func (r *SQLiteCompositionRepo) ListByCase(ctx context.Context, caseID string) ([]domain.CompositionSnapshot, error) {
	snapshots, err := r.listRecords(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if len(snapshots) == 0 {
		return nil, nil
	}

	index := make(map[string]int, len(snapshots))
	for i, s := range snapshots {
		index[s.RecordID] = i
	}
	if err := r.populateMembers(ctx, caseID, snapshots, index); err != nil {
		return nil, err
	}
	return snapshots, nil
}

func (r *SQLiteCompositionRepo) listRecords(ctx context.Context, caseID string) ([]domain.CompositionSnapshot, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, effective_date, notes FROM composition_records WHERE case_id = ? ORDER BY seq, rowid`, caseID)
	if err != nil {
		return nil, fmt.Errorf("listing composition records: %w", err)
	}
	defer rows.Close()

	var out []domain.CompositionSnapshot
	for rows.Next() {
		var s domain.CompositionSnapshot
		if err := rows.Scan(&s.RecordID, &s.EffectiveDate, &s.Notes); err != nil {
			return nil, fmt.Errorf("scanning composition record: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating composition records: %w", err)
	}
	return out, nil
}

func (r *SQLiteCompositionRepo) populateMembers(ctx context.Context, caseID string, snapshots []domain.CompositionSnapshot, index map[string]int) error {
	rows, err := r.db.QueryContext(ctx, `SELECT m.record_id, m.unit, m.person_id, m.full_name, m.date_of_birth,
		m.gender, m.relationship, m.is_family_member, m.cohabitation_notes
		FROM composition_members m
		JOIN composition_records r ON r.id = m.record_id
		WHERE r.case_id = ?
		ORDER BY m.record_id, m.unit, m.position`, caseID)
	if err != nil {
		return fmt.Errorf("listing composition members: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var recordID, unit, gender, relationship, notes string
		var p domain.Person
		var dob sql.NullString
		var isFamily int
		if err := rows.Scan(&recordID, &unit, &p.ID, &p.FullName, &dob, &gender, &relationship, &isFamily, &notes); err != nil {
			return fmt.Errorf("scanning composition member: %w", err)
		}
		p.DateOfBirth = fromNullString(dob)
		p.Gender = domain.Gender(gender)

		s := &snapshots[index[recordID]]
		switch unit {
		case unitFamily:
			s.FamilyUnit = append(s.FamilyUnit, domain.FamilyMember{Person: p, RelationshipToCaseHolder: relationship})
		case unitHousehold:
			s.HouseholdUnit = append(s.HouseholdUnit, domain.HouseholdMember{
				Person:            p,
				IsFamilyMember:    intToBool(isFamily),
				CohabitationNotes: notes,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating composition members: %w", err)
	}
	return nil
}
