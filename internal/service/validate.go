package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/saadjs/dietcheck-cli/internal/model"
)

var ErrInvalidSubmission = errors.New("invalid submission")

const (
	MinAge, MaxAge           = 10, 100
	MinHeightCm, MaxHeightCm = 100.0, 250.0
	MinWeightKg, MaxWeightKg = 30.0, 200.0
	MinSleep, MaxSleep       = 3.0, 12.0
	SleepStep                = 0.5
)

// ValidateSubmission checks every field against its domain. All violations are
// reported together and the result matches ErrInvalidSubmission.
func ValidateSubmission(rec model.SubmissionRecord) error {
	var errs []error
	if !rec.Gender.Valid() {
		errs = append(errs, fmt.Errorf("gender %q is not one of male, female, other", rec.Gender))
	}
	if rec.Age < MinAge || rec.Age > MaxAge {
		errs = append(errs, fmt.Errorf("age must be between %d and %d", MinAge, MaxAge))
	}
	if err := validateRange("height", rec.HeightCm, MinHeightCm, MaxHeightCm); err != nil {
		errs = append(errs, err)
	}
	if err := validateRange("weight", rec.WeightKg, MinWeightKg, MaxWeightKg); err != nil {
		errs = append(errs, err)
	}
	if !rec.BodyType.Valid() {
		errs = append(errs, fmt.Errorf("body type %q is not one of wave, natural, straight, unknown", rec.BodyType))
	}
	if !rec.ExerciseFrequency.Valid() {
		errs = append(errs, fmt.Errorf("exercise frequency %q is not one of rarely, 1-2/week, 3-4/week, 5+/week", rec.ExerciseFrequency))
	}
	if !rec.DietPattern.Valid() {
		errs = append(errs, fmt.Errorf("diet pattern %q is not one of balanced, skewed, frequent_eating_out, frequent_snacking", rec.DietPattern))
	}
	if err := validateRange("sleep", rec.SleepHours, MinSleep, MaxSleep); err != nil {
		errs = append(errs, err)
	} else if !onStep(rec.SleepHours, SleepStep) {
		errs = append(errs, fmt.Errorf("sleep must be in steps of %.1f hours", SleepStep))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidSubmission, errors.Join(errs...))
}

func validateRange(name string, v, lo, hi float64) error {
	if math.IsNaN(v) || v < lo || v > hi {
		return fmt.Errorf("%s must be between %g and %g", name, lo, hi)
	}
	return nil
}

func onStep(v, step float64) bool {
	n := v / step
	return math.Abs(n-math.Round(n)) < 1e-9
}
