package service

import (
	"fmt"

	"github.com/saadjs/dietcheck-cli/internal/model"
)

const (
	bmiNormalFloor = 18.5
	bmiObese1Floor = 25.0
	bmiObese2Floor = 30.0

	sleepShortBelow = 6.0
	sleepLongAbove  = 9.0

	exemplarySleepMin = 6.0
	exemplarySleepMax = 8.0
)

// BMI returns weight divided by the square of height in meters.
func BMI(heightCm, weightKg float64) float64 {
	m := heightCm / 100
	return weightKg / (m * m)
}

// ClassifyBMI bands a BMI value. Every band includes its lower bound.
func ClassifyBMI(bmi float64) model.BMIBand {
	switch {
	case bmi < bmiNormalFloor:
		return model.BMIUnderweight
	case bmi < bmiObese1Floor:
		return model.BMINormal
	case bmi < bmiObese2Floor:
		return model.BMIObese1
	default:
		return model.BMIObese2Plus
	}
}

func bmiMessage(bmi float64) string {
	var format string
	switch ClassifyBMI(bmi) {
	case model.BMIUnderweight:
		format = bmiMessageUnderweight
	case model.BMINormal:
		format = bmiMessageNormal
	case model.BMIObese1:
		format = bmiMessageObese1
	default:
		format = bmiMessageObese2Plus
	}
	return fmt.Sprintf(format, bmi)
}

// GenerateAdvice builds the categorized advice for a record. It has no side
// effects; equal records always produce equal bundles.
func GenerateAdvice(rec model.SubmissionRecord) model.AdviceBundle {
	var out model.AdviceBundle

	out.BodyShape = append(out.BodyShape, bmiMessage(BMI(rec.HeightCm, rec.WeightKg)))

	if s := lookupBodyType(rec.BodyType).skeleton; s != "" {
		out.Skeleton = append(out.Skeleton, s)
	}

	switch rec.ExerciseFrequency {
	case model.ExerciseRarely:
		out.Exercise = append(out.Exercise, exerciseAdviceRarely)
	case model.ExerciseFivePlus:
		out.Exercise = append(out.Exercise, exerciseAdviceFivePlus)
	}

	if rec.DietPattern != model.DietBalanced {
		out.Diet = append(out.Diet, dietAdviceUnbalanced)
	}

	switch {
	case rec.SleepHours < sleepShortBelow:
		out.Sleep = append(out.Sleep, sleepAdviceShort)
	case rec.SleepHours > sleepLongAbove:
		out.Sleep = append(out.Sleep, sleepAdviceLong)
	}

	return out
}

// IsExemplary reports whether every lifestyle indicator is in its healthy range
// at once: normal BMI, exercise three or more times a week, balanced diet and
// six to eight hours of sleep.
func IsExemplary(rec model.SubmissionRecord) bool {
	if ClassifyBMI(BMI(rec.HeightCm, rec.WeightKg)) != model.BMINormal {
		return false
	}
	if rec.ExerciseFrequency != model.ExerciseThreeFour && rec.ExerciseFrequency != model.ExerciseFivePlus {
		return false
	}
	if rec.DietPattern != model.DietBalanced {
		return false
	}
	return rec.SleepHours >= exemplarySleepMin && rec.SleepHours <= exemplarySleepMax
}

// ExerciseGuide returns recommended and discouraged exercise for a skeleton type.
func ExerciseGuide(bt model.BodyType) string {
	return lookupBodyType(bt).exercise
}

// DietGuide returns foods to favor and avoid for a skeleton type.
func DietGuide(bt model.BodyType) string {
	return lookupBodyType(bt).diet
}

// Diagnose runs the whole engine over one validated submission.
func Diagnose(rec model.SubmissionRecord) model.Diagnosis {
	bmi := BMI(rec.HeightCm, rec.WeightKg)
	return model.Diagnosis{
		BMI:           bmi,
		BMIBand:       ClassifyBMI(bmi),
		Advice:        GenerateAdvice(rec),
		Exemplary:     IsExemplary(rec),
		ExerciseGuide: ExerciseGuide(rec.BodyType),
		DietGuide:     DietGuide(rec.BodyType),
	}
}
