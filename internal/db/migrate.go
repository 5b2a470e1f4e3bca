package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is idempotent, so the
// full list is replayed on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE has no IF NOT EXISTS.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateBackfillSnapshotSeq(db); err != nil {
		return fmt.Errorf("backfilling snapshot seq values: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS cases (
		id          TEXT PRIMARY KEY,
		client_name TEXT NOT NULL,
		assigned_to TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL DEFAULT 'Abierto'
		            CHECK(status IN ('Abierto','En Progreso','Cerrado','Pendiente Revisión','Activo')),
		date_opened TEXT,
		last_update TEXT,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS composition_records (
		id             TEXT PRIMARY KEY,
		case_id        TEXT NOT NULL REFERENCES cases(id) ON DELETE CASCADE,
		effective_date TEXT NOT NULL,
		notes          TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_composition_records_case ON composition_records(case_id)`,

	`CREATE TABLE IF NOT EXISTS composition_members (
		record_id          TEXT NOT NULL REFERENCES composition_records(id) ON DELETE CASCADE,
		unit               TEXT NOT NULL CHECK(unit IN ('family','household')),
		person_id          TEXT NOT NULL,
		position           INTEGER NOT NULL DEFAULT 0,
		full_name          TEXT NOT NULL DEFAULT '',
		date_of_birth      TEXT,
		gender             TEXT NOT NULL DEFAULT '',
		relationship       TEXT NOT NULL DEFAULT '',
		is_family_member   INTEGER NOT NULL DEFAULT 0,
		cohabitation_notes TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (record_id, unit, person_id)
	)`,

	`CREATE TABLE IF NOT EXISTS client_notes (
		id         TEXT PRIMARY KEY,
		case_id    TEXT NOT NULL REFERENCES cases(id) ON DELETE CASCADE,
		title      TEXT NOT NULL DEFAULT '',
		content    TEXT NOT NULL DEFAULT '',
		date       TEXT NOT NULL DEFAULT '',
		tags       TEXT NOT NULL DEFAULT '[]',
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_client_notes_case ON client_notes(case_id)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id          TEXT PRIMARY KEY,
		case_id     TEXT NOT NULL REFERENCES cases(id) ON DELETE CASCADE,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		due_date    TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL DEFAULT 'Por Hacer'
		            CHECK(status IN ('Por Hacer','En Progreso','Asignada','Completada','Pendiente','Programada')),
		location    TEXT NOT NULL DEFAULT '',
		tags        TEXT NOT NULL DEFAULT '[]',
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_case ON tasks(case_id)`,

	`CREATE TABLE IF NOT EXISTS schedule_entries (
		id          TEXT PRIMARY KEY,
		case_id     TEXT NOT NULL REFERENCES cases(id) ON DELETE CASCADE,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		start_at    TEXT NOT NULL,
		end_at      TEXT NOT NULL DEFAULT '',
		type        TEXT NOT NULL DEFAULT 'Otro'
		            CHECK(type IN ('Cita','Visita Domiciliaria','Reunión de Equipo','Personal','Fecha Límite','Otro')),
		location    TEXT NOT NULL DEFAULT '',
		all_day     INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_schedule_entries_case ON schedule_entries(case_id)`,

	// Case profile fields
	`ALTER TABLE cases ADD COLUMN description TEXT NOT NULL DEFAULT ''`,
	`ALTER TABLE cases ADD COLUMN avatar_url TEXT NOT NULL DEFAULT ''`,

	// Input order of snapshots within a case
	`ALTER TABLE composition_records ADD COLUMN seq INTEGER NOT NULL DEFAULT 0`,
	`CREATE INDEX IF NOT EXISTS idx_composition_records_seq ON composition_records(case_id, seq)`,
}

// migrateBackfillSnapshotSeq numbers snapshots that predate the seq column,
// per case, in rowid order. Cases whose snapshots all have seq > 0 are
// skipped.
func migrateBackfillSnapshotSeq(db *sql.DB) error {
	ctx := context.Background()

	rows, err := db.QueryContext(ctx, `SELECT DISTINCT case_id FROM composition_records WHERE seq = 0`)
	if err != nil {
		return err
	}
	var caseIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return err
		}
		caseIDs = append(caseIDs, id)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	rows.Close()

	for _, caseID := range caseIDs {
		if err := backfillCaseSnapshotSeq(ctx, db, caseID); err != nil {
			return fmt.Errorf("case %s: %w", caseID, err)
		}
	}
	return nil
}

func backfillCaseSnapshotSeq(ctx context.Context, db *sql.DB, caseID string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var maxSeq int
	if err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(seq), 0) FROM composition_records WHERE case_id = ?`, caseID,
	).Scan(&maxSeq); err != nil {
		return err
	}

	rows, err := tx.QueryContext(ctx,
		`SELECT id FROM composition_records WHERE case_id = ? AND seq = 0 ORDER BY rowid`, caseID)
	if err != nil {
		return err
	}
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return err
		}
		ids = append(ids, id)
	}
	rows.Close()

	for i, id := range ids {
		if _, err := tx.ExecContext(ctx,
			`UPDATE composition_records SET seq = ? WHERE id = ?`, maxSeq+i+1, id,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}
