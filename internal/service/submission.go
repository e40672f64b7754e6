package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/saadjs/dietcheck-cli/internal/model"
)

// SubmissionInput is the raw questionnaire answer set as typed by a user.
type SubmissionInput struct {
	Gender     string
	Age        int
	Height     float64
	HeightUnit string
	Weight     float64
	WeightUnit string
	BodyType   string
	Exercise   string
	Diet       string
	SleepHours float64
}

// BuildSubmission parses and normalizes raw input into a validated record.
func BuildSubmission(in SubmissionInput) (model.SubmissionRecord, error) {
	var errs []error
	var rec model.SubmissionRecord
	var err error

	if rec.Gender, err = model.ParseGender(in.Gender); err != nil {
		errs = append(errs, err)
	}
	if rec.BodyType, err = model.ParseBodyType(in.BodyType); err != nil {
		errs = append(errs, err)
	}
	if rec.ExerciseFrequency, err = model.ParseExerciseFrequency(in.Exercise); err != nil {
		errs = append(errs, err)
	}
	if rec.DietPattern, err = model.ParseDietPattern(in.Diet); err != nil {
		errs = append(errs, err)
	}
	if rec.HeightCm, err = ToCm(in.Height, in.HeightUnit); err != nil {
		errs = append(errs, err)
	}
	if rec.WeightKg, err = ToKg(in.Weight, in.WeightUnit); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return model.SubmissionRecord{}, fmt.Errorf("%w: %w", ErrInvalidSubmission, errors.Join(errs...))
	}
	rec.Age = in.Age
	rec.SleepHours = in.SleepHours
	// Converted values are kept to one decimal.
	if u := normalizeUnit(in.HeightUnit); u != "" && u != "cm" {
		rec.HeightCm = roundTo(rec.HeightCm, 1)
	}
	if u := normalizeUnit(in.WeightUnit); u != "" && u != "kg" {
		rec.WeightKg = roundTo(rec.WeightKg, 1)
	}

	if err := ValidateSubmission(rec); err != nil {
		return model.SubmissionRecord{}, err
	}
	return rec, nil
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
