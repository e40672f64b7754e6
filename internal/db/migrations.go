package db

import (
	"database/sql"
	"fmt"
)

type migration struct {
	version int
	name    string
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		name:    "initial_schema",
		sql: `
CREATE TABLE IF NOT EXISTS submissions (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  submission_id TEXT NOT NULL UNIQUE,
  gender TEXT NOT NULL,
  age INTEGER NOT NULL CHECK(age BETWEEN 10 AND 100),
  height_cm REAL NOT NULL CHECK(height_cm BETWEEN 100 AND 250),
  weight_kg REAL NOT NULL CHECK(weight_kg BETWEEN 30 AND 200),
  body_type TEXT NOT NULL,
  exercise_frequency TEXT NOT NULL,
  diet_pattern TEXT NOT NULL,
  sleep_hours REAL NOT NULL CHECK(sleep_hours BETWEEN 3 AND 12),
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_submissions_created_at ON submissions(created_at);
`,
	},
	{
		version: 2,
		name:    "append_only_submissions",
		sql: `
CREATE TRIGGER IF NOT EXISTS submissions_no_update
BEFORE UPDATE ON submissions
BEGIN
  SELECT RAISE(ABORT, 'submissions are append-only');
END;

CREATE TRIGGER IF NOT EXISTS submissions_no_delete
BEFORE DELETE ON submissions
BEGIN
  SELECT RAISE(ABORT, 'submissions are append-only');
END;
`,
	},
}

func ApplyMigrations(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`); err != nil {
		return fmt.Errorf("ensure schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		var exists int
		err := db.QueryRow(`SELECT 1 FROM schema_migrations WHERE version = ?`, m.version).Scan(&exists)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("check migration version %d: %w", m.version, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration tx: %w", err)
		}

		if _, err := tx.Exec(m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration version %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations(version, name) VALUES(?, ?)`, m.version, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration version %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration version %d: %w", m.version, err)
		}
	}
	return nil
}
