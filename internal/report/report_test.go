package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/saadjs/dietcheck-cli/internal/model"
	"github.com/saadjs/dietcheck-cli/internal/report"
	"github.com/saadjs/dietcheck-cli/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var straightRecord = model.SubmissionRecord{
	Gender:            model.GenderFemale,
	Age:               30,
	HeightCm:          160,
	WeightKg:          55,
	BodyType:          model.BodyTypeStraight,
	ExerciseFrequency: model.ExerciseRarely,
	DietPattern:       model.DietSkewed,
	SleepHours:        5.0,
}

func TestRenderTextListsNonEmptyCategories(t *testing.T) {
	t.Parallel()
	rec := straightRecord
	rec.ExerciseFrequency = model.ExerciseOneTwo
	rec.SleepHours = 7

	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, report.FormatText, rec, service.Diagnose(rec)))
	out := buf.String()

	assert.Contains(t, out, "性別: 女性")
	assert.Contains(t, out, "睡眠時間: 7.0 時間")
	assert.Contains(t, out, "体型に関するアドバイス")
	assert.Contains(t, out, "骨格に関するアドバイス")
	assert.Contains(t, out, "食事に関するアドバイス")
	assert.NotContains(t, out, "運動に関するアドバイス")
	assert.NotContains(t, out, "睡眠に関するアドバイス")
	assert.Contains(t, out, "    〇向いている運動")
	assert.Contains(t, out, "    〇太りにくい食べ物")
	assert.NotContains(t, out, service.ExemplaryMessage)
}

func TestRenderTextExemplary(t *testing.T) {
	t.Parallel()
	rec := model.SubmissionRecord{
		Gender:            model.GenderMale,
		Age:               40,
		HeightCm:          200,
		WeightKg:          88,
		BodyType:          model.BodyTypeUnknown,
		ExerciseFrequency: model.ExerciseThreeFour,
		DietPattern:       model.DietBalanced,
		SleepHours:        7,
	}
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, report.FormatText, rec, service.Diagnose(rec)))
	out := buf.String()
	assert.Contains(t, out, service.ExemplaryMessage)
	assert.Equal(t, 2, strings.Count(out, service.SkeletonAssessmentURL))
	assert.NotContains(t, out, "骨格に関するアドバイス")
}

func TestRenderStyledContainsContent(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, report.FormatStyled, straightRecord, service.Diagnose(straightRecord)))
	out := buf.String()
	assert.Contains(t, out, "あなたへのアドバイス")
	assert.Contains(t, out, "21.5")
	assert.Contains(t, out, "✖向いていない運動")
}

func TestRenderJSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, report.FormatJSON, straightRecord, service.Diagnose(straightRecord)))

	var doc struct {
		Submission model.SubmissionRecord `json:"submission"`
		Diagnosis  model.Diagnosis        `json:"diagnosis"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, straightRecord, doc.Submission)
	assert.Equal(t, model.BMINormal, doc.Diagnosis.BMIBand)
	assert.False(t, doc.Diagnosis.Exemplary)
	assert.Len(t, doc.Diagnosis.Advice.Sleep, 1)
}

func TestRenderUnknownFormat(t *testing.T) {
	t.Parallel()
	err := report.Render(&bytes.Buffer{}, "yaml", straightRecord, service.Diagnose(straightRecord))
	assert.Error(t, err)
}
