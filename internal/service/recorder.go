package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/saadjs/dietcheck-cli/internal/model"
)

// Recorder appends submissions to a durable log. Recorded rows are never
// modified or removed.
type Recorder interface {
	Append(ctx context.Context, rec model.SubmissionRecord) error
	Close() error
}

// LogHeader is the localized header row of the submission log, in record
// field order.
var LogHeader = []string{"性別", "年齢", "身長", "体重", "骨格タイプ", "運動頻度", "食生活", "睡眠時間"}

// CSVRecorder appends one row per submission to a CSV file. Appends take an
// exclusive file lock so that separate processes sharing the log cannot
// interleave rows or write the header twice.
type CSVRecorder struct {
	mu   sync.Mutex
	path string
	f    *os.File
}

func OpenCSVRecorder(path string) (*CSVRecorder, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open submission log: %w", err)
	}
	return &CSVRecorder{path: path, f: f}, nil
}

func (r *CSVRecorder) Path() string { return r.path }

// EnsureHeader writes the header row if the log is empty.
func (r *CSVRecorder) EnsureHeader() error {
	return r.withLock(func(w *csv.Writer) error { return nil })
}

func (r *CSVRecorder) Append(ctx context.Context, rec model.SubmissionRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ValidateSubmission(rec); err != nil {
		return err
	}
	return r.withLock(func(w *csv.Writer) error {
		if err := w.Write(FormatLogRow(rec)); err != nil {
			return fmt.Errorf("write submission row: %w", err)
		}
		return nil
	})
}

func (r *CSVRecorder) withLock(write func(*csv.Writer) error) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.f == nil {
		return fmt.Errorf("submission log %s is closed", r.path)
	}
	if err := lockFile(r.f); err != nil {
		return fmt.Errorf("lock submission log: %w", err)
	}
	defer func() {
		if uerr := unlockFile(r.f); uerr != nil && err == nil {
			err = fmt.Errorf("unlock submission log: %w", uerr)
		}
	}()

	st, err := r.f.Stat()
	if err != nil {
		return fmt.Errorf("stat submission log: %w", err)
	}
	w := csv.NewWriter(r.f)
	if st.Size() == 0 {
		if err := w.Write(LogHeader); err != nil {
			return fmt.Errorf("write submission log header: %w", err)
		}
	}
	if err := write(w); err != nil {
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush submission log: %w", err)
	}
	if err := r.f.Sync(); err != nil {
		return fmt.Errorf("sync submission log: %w", err)
	}
	return nil
}

func (r *CSVRecorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.f == nil {
		return nil
	}
	err := r.f.Close()
	r.f = nil
	if err != nil {
		return fmt.Errorf("close submission log: %w", err)
	}
	return nil
}

// FormatLogRow renders a record as log cells using the localized labels.
func FormatLogRow(rec model.SubmissionRecord) []string {
	return []string{
		rec.Gender.Label(),
		strconv.Itoa(rec.Age),
		strconv.FormatFloat(rec.HeightCm, 'f', -1, 64),
		strconv.FormatFloat(rec.WeightKg, 'f', -1, 64),
		rec.BodyType.Label(),
		rec.ExerciseFrequency.Label(),
		rec.DietPattern.Label(),
		strconv.FormatFloat(rec.SleepHours, 'f', 1, 64),
	}
}

// ParseLogRow is the inverse of FormatLogRow.
func ParseLogRow(row []string) (model.SubmissionRecord, error) {
	if len(row) != len(LogHeader) {
		return model.SubmissionRecord{}, fmt.Errorf("row has %d columns, expected %d", len(row), len(LogHeader))
	}
	var rec model.SubmissionRecord
	var err error
	if rec.Gender, err = model.ParseGender(row[0]); err != nil {
		return rec, err
	}
	if rec.Age, err = strconv.Atoi(row[1]); err != nil {
		return rec, fmt.Errorf("invalid age %q", row[1])
	}
	if rec.HeightCm, err = strconv.ParseFloat(row[2], 64); err != nil {
		return rec, fmt.Errorf("invalid height %q", row[2])
	}
	if rec.WeightKg, err = strconv.ParseFloat(row[3], 64); err != nil {
		return rec, fmt.Errorf("invalid weight %q", row[3])
	}
	if rec.BodyType, err = model.ParseBodyType(row[4]); err != nil {
		return rec, err
	}
	if rec.ExerciseFrequency, err = model.ParseExerciseFrequency(row[5]); err != nil {
		return rec, err
	}
	if rec.DietPattern, err = model.ParseDietPattern(row[6]); err != nil {
		return rec, err
	}
	if rec.SleepHours, err = strconv.ParseFloat(row[7], 64); err != nil {
		return rec, fmt.Errorf("invalid sleep hours %q", row[7])
	}
	return rec, nil
}
