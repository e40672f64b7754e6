package model

import (
	"fmt"
	"strings"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

var genderLabels = map[Gender]string{
	GenderMale:   "男性",
	GenderFemale: "女性",
	GenderOther:  "その他",
}

func Genders() []Gender { return []Gender{GenderMale, GenderFemale, GenderOther} }

func (g Gender) Label() string { return labelOr(genderLabels, g) }

func (g Gender) Valid() bool {
	_, ok := genderLabels[g]
	return ok
}

func ParseGender(s string) (Gender, error) {
	return parseEnum("gender", s, Genders(), genderLabels)
}

// BodyType is the self-assessed skeleton frame type.
type BodyType string

const (
	BodyTypeWave     BodyType = "wave"
	BodyTypeNatural  BodyType = "natural"
	BodyTypeStraight BodyType = "straight"
	BodyTypeUnknown  BodyType = "unknown"
)

var bodyTypeLabels = map[BodyType]string{
	BodyTypeWave:     "ウェーブ",
	BodyTypeNatural:  "ナチュラル",
	BodyTypeStraight: "ストレート",
	BodyTypeUnknown:  "わからない",
}

func BodyTypes() []BodyType {
	return []BodyType{BodyTypeWave, BodyTypeNatural, BodyTypeStraight, BodyTypeUnknown}
}

func (b BodyType) Label() string { return labelOr(bodyTypeLabels, b) }

func (b BodyType) Valid() bool {
	_, ok := bodyTypeLabels[b]
	return ok
}

// Known reports whether b is one of the concrete skeleton types.
func (b BodyType) Known() bool {
	return b == BodyTypeWave || b == BodyTypeNatural || b == BodyTypeStraight
}

func ParseBodyType(s string) (BodyType, error) {
	return parseEnum("body type", s, BodyTypes(), bodyTypeLabels)
}

type ExerciseFrequency string

const (
	ExerciseRarely    ExerciseFrequency = "rarely"
	ExerciseOneTwo    ExerciseFrequency = "1-2/week"
	ExerciseThreeFour ExerciseFrequency = "3-4/week"
	ExerciseFivePlus  ExerciseFrequency = "5+/week"
)

var exerciseLabels = map[ExerciseFrequency]string{
	ExerciseRarely:    "ほとんどしない",
	ExerciseOneTwo:    "週1〜2回",
	ExerciseThreeFour: "週3〜4回",
	ExerciseFivePlus:  "週5回以上",
}

func ExerciseFrequencies() []ExerciseFrequency {
	return []ExerciseFrequency{ExerciseRarely, ExerciseOneTwo, ExerciseThreeFour, ExerciseFivePlus}
}

func (e ExerciseFrequency) Label() string { return labelOr(exerciseLabels, e) }

func (e ExerciseFrequency) Valid() bool {
	_, ok := exerciseLabels[e]
	return ok
}

func ParseExerciseFrequency(s string) (ExerciseFrequency, error) {
	return parseEnum("exercise frequency", s, ExerciseFrequencies(), exerciseLabels)
}

type DietPattern string

const (
	DietBalanced          DietPattern = "balanced"
	DietSkewed            DietPattern = "skewed"
	DietFrequentEatingOut DietPattern = "frequent_eating_out"
	DietFrequentSnacking  DietPattern = "frequent_snacking"
)

var dietLabels = map[DietPattern]string{
	DietBalanced:          "バランス良い",
	DietSkewed:            "偏りがち",
	DietFrequentEatingOut: "外食が多い",
	DietFrequentSnacking:  "間食が多い",
}

func DietPatterns() []DietPattern {
	return []DietPattern{DietBalanced, DietSkewed, DietFrequentEatingOut, DietFrequentSnacking}
}

func (d DietPattern) Label() string { return labelOr(dietLabels, d) }

func (d DietPattern) Valid() bool {
	_, ok := dietLabels[d]
	return ok
}

func ParseDietPattern(s string) (DietPattern, error) {
	return parseEnum("diet pattern", s, DietPatterns(), dietLabels)
}

// SubmissionRecord is one questionnaire answer set.
type SubmissionRecord struct {
	Gender            Gender            `json:"gender"`
	Age               int               `json:"age"`
	HeightCm          float64           `json:"height_cm"`
	WeightKg          float64           `json:"weight_kg"`
	BodyType          BodyType          `json:"body_type"`
	ExerciseFrequency ExerciseFrequency `json:"exercise_frequency"`
	DietPattern       DietPattern       `json:"diet_pattern"`
	SleepHours        float64           `json:"sleep_hours"`
}

// AdviceBundle holds advice strings grouped by category. Empty categories are
// skipped when displayed.
type AdviceBundle struct {
	BodyShape []string `json:"body_shape"`
	Skeleton  []string `json:"skeleton"`
	Exercise  []string `json:"exercise"`
	Diet      []string `json:"diet"`
	Sleep     []string `json:"sleep"`
}

type AdviceCategory string

const (
	CategoryBodyShape AdviceCategory = "body_shape"
	CategorySkeleton  AdviceCategory = "skeleton"
	CategoryExercise  AdviceCategory = "exercise"
	CategoryDiet      AdviceCategory = "diet"
	CategorySleep     AdviceCategory = "sleep"
)

var categoryLabels = map[AdviceCategory]string{
	CategoryBodyShape: "体型",
	CategorySkeleton:  "骨格",
	CategoryExercise:  "運動",
	CategoryDiet:      "食事",
	CategorySleep:     "睡眠",
}

func (c AdviceCategory) Label() string { return labelOr(categoryLabels, c) }

type AdviceSection struct {
	Category AdviceCategory
	Items    []string
}

// Sections returns the non-empty categories in display order.
func (b AdviceBundle) Sections() []AdviceSection {
	all := []AdviceSection{
		{Category: CategoryBodyShape, Items: b.BodyShape},
		{Category: CategorySkeleton, Items: b.Skeleton},
		{Category: CategoryExercise, Items: b.Exercise},
		{Category: CategoryDiet, Items: b.Diet},
		{Category: CategorySleep, Items: b.Sleep},
	}
	out := make([]AdviceSection, 0, len(all))
	for _, s := range all {
		if len(s.Items) > 0 {
			out = append(out, s)
		}
	}
	return out
}

type BMIBand string

const (
	BMIUnderweight BMIBand = "underweight"
	BMINormal      BMIBand = "normal"
	BMIObese1      BMIBand = "obese_1"
	BMIObese2Plus  BMIBand = "obese_2_plus"
)

var bmiBandLabels = map[BMIBand]string{
	BMIUnderweight: "やせ型",
	BMINormal:      "標準体型",
	BMIObese1:      "肥満（1度）",
	BMIObese2Plus:  "肥満（2度以上）",
}

func (b BMIBand) Label() string { return labelOr(bmiBandLabels, b) }

// Diagnosis is everything produced for one submission.
type Diagnosis struct {
	BMI           float64      `json:"bmi"`
	BMIBand       BMIBand      `json:"bmi_band"`
	Advice        AdviceBundle `json:"advice"`
	Exemplary     bool         `json:"is_exemplary"`
	ExerciseGuide string       `json:"exercise_guide"`
	DietGuide     string       `json:"diet_guide"`
}

func labelOr[K ~string](labels map[K]string, k K) string {
	if l, ok := labels[k]; ok {
		return l
	}
	return string(k)
}

func parseEnum[K ~string](name, s string, values []K, labels map[K]string) (K, error) {
	raw := strings.TrimSpace(s)
	norm := strings.ToLower(raw)
	for _, v := range values {
		if norm == string(v) || raw == labels[v] {
			return v, nil
		}
	}
	opts := make([]string, 0, len(values))
	for _, v := range values {
		opts = append(opts, string(v))
	}
	var zero K
	return zero, fmt.Errorf("invalid %s %q (use %s)", name, s, strings.Join(opts, ", "))
}
