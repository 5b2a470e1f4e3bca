package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{"cases", "composition_records", "composition_members", "client_notes", "tasks", "schedule_entries"}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"idx_composition_records_case",
		"idx_composition_records_seq",
		"idx_client_notes_case",
		"idx_tasks_case",
		"idx_schedule_entries_case",
	}
	for _, idx := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_ForeignKeysEnabled(t *testing.T) {
	db := openTestDB(t)

	var fk int
	require.NoError(t, db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk)
}

func TestMigrate_CaseStatusCheckConstraint(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO cases (id, client_name, status, created_at, updated_at)
		VALUES ('c1', 'Ana', 'Archivado', '2024-01-01T00:00:00Z', '2024-01-01T00:00:00Z')`)
	assert.Error(t, err, "unknown status should be rejected")

	_, err = db.Exec(`INSERT INTO cases (id, client_name, status, created_at, updated_at)
		VALUES ('c1', 'Ana', 'Pendiente Revisión', '2024-01-01T00:00:00Z', '2024-01-01T00:00:00Z')`)
	assert.NoError(t, err)
}

func TestMigrate_CascadeDeletesCaseRecords(t *testing.T) {
	db := openTestDB(t)

	stmts := []string{
		`INSERT INTO cases (id, client_name, created_at, updated_at) VALUES ('c1', 'Ana', 'x', 'x')`,
		`INSERT INTO composition_records (id, case_id, effective_date, seq) VALUES ('r1', 'c1', '2024-01-01', 1)`,
		`INSERT INTO composition_members (record_id, unit, person_id, full_name) VALUES ('r1', 'family', 'p1', 'Luis')`,
		`INSERT INTO client_notes (id, case_id, created_at) VALUES ('n1', 'c1', 'x')`,
		`INSERT INTO tasks (id, case_id, title, created_at) VALUES ('t1', 'c1', 'Llamar', 'x')`,
		`INSERT INTO schedule_entries (id, case_id, title, start_at, created_at) VALUES ('s1', 'c1', 'Cita', '2024-01-02', 'x')`,
	}
	for _, s := range stmts {
		_, err := db.Exec(s)
		require.NoError(t, err, s)
	}

	_, err := db.Exec(`DELETE FROM cases WHERE id = 'c1'`)
	require.NoError(t, err)

	for _, table := range []string{"composition_records", "composition_members", "client_notes", "tasks", "schedule_entries"} {
		var n int
		require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
		assert.Zero(t, n, "%s should be empty after cascade", table)
	}
}

// Databases created before the profile and seq columns existed.
func TestMigrate_UpgradesLegacySchema(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	legacy := []string{
		`CREATE TABLE cases (
			id          TEXT PRIMARY KEY,
			client_name TEXT NOT NULL,
			assigned_to TEXT NOT NULL DEFAULT '',
			status      TEXT NOT NULL DEFAULT 'Abierto',
			date_opened TEXT,
			last_update TEXT,
			created_at  TEXT NOT NULL,
			updated_at  TEXT NOT NULL
		)`,
		`CREATE TABLE composition_records (
			id             TEXT PRIMARY KEY,
			case_id        TEXT NOT NULL REFERENCES cases(id) ON DELETE CASCADE,
			effective_date TEXT NOT NULL,
			notes          TEXT NOT NULL DEFAULT ''
		)`,
		`INSERT INTO cases (id, client_name, created_at, updated_at) VALUES ('c1', 'Ana', 'x', 'x')`,
		`INSERT INTO composition_records (id, case_id, effective_date) VALUES ('r-b', 'c1', '2024-05-01')`,
		`INSERT INTO composition_records (id, case_id, effective_date) VALUES ('r-a', 'c1', '2024-01-01')`,
	}
	for _, s := range legacy {
		_, err := db.Exec(s)
		require.NoError(t, err)
	}

	require.NoError(t, Migrate(db))

	var name, desc, avatar string
	require.NoError(t, db.QueryRow(`SELECT client_name, description, avatar_url FROM cases WHERE id = 'c1'`).Scan(&name, &desc, &avatar))
	assert.Equal(t, "Ana", name)
	assert.Empty(t, desc)
	assert.Empty(t, avatar)

	var seqB, seqA int
	require.NoError(t, db.QueryRow(`SELECT seq FROM composition_records WHERE id = 'r-b'`).Scan(&seqB))
	require.NoError(t, db.QueryRow(`SELECT seq FROM composition_records WHERE id = 'r-a'`).Scan(&seqA))
	assert.Equal(t, 1, seqB, "insertion order is preserved")
	assert.Equal(t, 2, seqA)

	require.NoError(t, Migrate(db), "re-running on an upgraded database")
	require.NoError(t, db.QueryRow(`SELECT seq FROM composition_records WHERE id = 'r-b'`).Scan(&seqB))
	assert.Equal(t, 1, seqB)
}
