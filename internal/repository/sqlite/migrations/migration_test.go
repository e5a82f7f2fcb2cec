package migrations

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	return db
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()

	var count int
	err := db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name,
	).Scan(&count)
	require.NoError(t, err)

	return count > 0
}

func TestRunMigrations(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, RunMigrations(db))

	assert.True(t, tableExists(t, db, "migrations"))
	assert.True(t, tableExists(t, db, "tasks"))
	assert.True(t, tableExists(t, db, "recurrence_rules"))
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, RunMigrations(db))
	require.NoError(t, RunMigrations(db))

	var applied int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&applied))
	assert.Equal(t, 2, applied)
}

func TestRunMigrations_SchemaUsable(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, RunMigrations(db))

	res, err := db.Exec(
		`INSERT INTO tasks (title, status, points, points_earned, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		"test", "pending", 10, 0, "2026-08-17T09:00:00Z")
	require.NoError(t, err)

	taskID, err := res.LastInsertId()
	require.NoError(t, err)

	_, err = db.Exec(
		`INSERT INTO recurrence_rules (task_id, frequency, unit, start_date, end_type, skip_weekends)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		taskID, 1, "days", "2026-08-17", "never", false)
	require.NoError(t, err)

	// One rule per task
	_, err = db.Exec(
		`INSERT INTO recurrence_rules (task_id, frequency, unit, start_date, end_type, skip_weekends)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		taskID, 2, "weeks", "2026-08-18", "never", false)
	assert.Error(t, err)
}
