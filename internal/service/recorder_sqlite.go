package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/saadjs/dietcheck-cli/internal/db"
	"github.com/saadjs/dietcheck-cli/internal/model"
)

// SQLiteRecorder appends submissions to the submissions table. The table
// rejects updates and deletes.
type SQLiteRecorder struct {
	db *sql.DB
}

// OpenSQLiteRecorder opens the database at path and applies migrations.
func OpenSQLiteRecorder(path string) (*SQLiteRecorder, error) {
	sqldb, err := db.Open(path)
	if err != nil {
		return nil, err
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		_ = sqldb.Close()
		return nil, err
	}
	return &SQLiteRecorder{db: sqldb}, nil
}

func NewSQLiteRecorder(sqldb *sql.DB) *SQLiteRecorder {
	return &SQLiteRecorder{db: sqldb}
}

func (r *SQLiteRecorder) Append(ctx context.Context, rec model.SubmissionRecord) error {
	if err := ValidateSubmission(rec); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `
INSERT INTO submissions(submission_id, gender, age, height_cm, weight_kg, body_type, exercise_frequency, diet_pattern, sleep_hours)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)
`, uuid.NewString(), string(rec.Gender), rec.Age, rec.HeightCm, rec.WeightKg,
		string(rec.BodyType), string(rec.ExerciseFrequency), string(rec.DietPattern), rec.SleepHours)
	if err != nil {
		return fmt.Errorf("append submission: %w", err)
	}
	return nil
}

// Count returns the number of stored submissions.
func (r *SQLiteRecorder) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM submissions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count submissions: %w", err)
	}
	return n, nil
}

func (r *SQLiteRecorder) Close() error {
	if err := r.db.Close(); err != nil {
		return fmt.Errorf("close submissions database: %w", err)
	}
	return nil
}
