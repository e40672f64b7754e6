package form

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/saadjs/dietcheck-cli/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

var (
	enter     = tea.KeyMsg{Type: tea.KeyEnter}
	down      = tea.KeyMsg{Type: tea.KeyDown}
	up        = tea.KeyMsg{Type: tea.KeyUp}
	backspace = tea.KeyMsg{Type: tea.KeyBackspace}
	esc       = tea.KeyMsg{Type: tea.KeyEsc}
)

func typed(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func erase(n int) []tea.Msg {
	out := make([]tea.Msg, n)
	for i := range out {
		out[i] = backspace
	}
	return out
}

func TestFormDefaultsProduceRecord(t *testing.T) {
	m := New()
	for i := 0; i < 8; i++ {
		m = press(t, m, enter)
	}
	rec, err := m.Result()
	require.NoError(t, err)
	assert.Equal(t, model.SubmissionRecord{
		Gender:            model.GenderMale,
		Age:               25,
		HeightCm:          170,
		WeightKg:          70,
		BodyType:          model.BodyTypeWave,
		ExerciseFrequency: model.ExerciseRarely,
		DietPattern:       model.DietBalanced,
		SleepHours:        7,
	}, rec)
	assert.Empty(t, m.View())
}

func TestFormCollectsTypedAnswers(t *testing.T) {
	m := New()
	m = press(t, m, down, enter) // female
	m = press(t, m, erase(2)...)
	m = press(t, m, typed("30"), enter)
	m = press(t, m, erase(3)...)
	m = press(t, m, typed("160"), enter)
	m = press(t, m, erase(2)...)
	m = press(t, m, typed("55"), enter)
	m = press(t, m, down, down, down, down, up, enter) // straight
	m = press(t, m, enter)                             // rarely
	m = press(t, m, down, enter)                       // skewed
	m = press(t, m, erase(3)...)
	m = press(t, m, typed("5"), enter)

	rec, err := m.Result()
	require.NoError(t, err)
	assert.Equal(t, model.SubmissionRecord{
		Gender:            model.GenderFemale,
		Age:               30,
		HeightCm:          160,
		WeightKg:          55,
		BodyType:          model.BodyTypeStraight,
		ExerciseFrequency: model.ExerciseRarely,
		DietPattern:       model.DietSkewed,
		SleepHours:        5,
	}, rec)
}

func TestFormRejectsOutOfRangeNumbers(t *testing.T) {
	m := New()
	m = press(t, m, enter)
	m = press(t, m, erase(2)...)
	m = press(t, m, typed("9"), enter)
	assert.Equal(t, 1, m.idx)
	assert.NotEmpty(t, m.errMsg)
	assert.Contains(t, m.View(), m.errMsg)

	m = press(t, m, backspace, typed("12.5"), enter)
	assert.Equal(t, 1, m.idx, "fractional age must be rejected")

	m = press(t, m, erase(4)...)
	m = press(t, m, typed("10"), enter)
	assert.Equal(t, 2, m.idx)
	assert.Empty(t, m.errMsg)
}

func TestFormHugeNumberReportsRange(t *testing.T) {
	m := New()
	m = press(t, m, enter)
	m = press(t, m, erase(2)...)
	m = press(t, m, typed("1e20"), enter)
	assert.Equal(t, 1, m.idx)
	assert.Contains(t, m.errMsg, "範囲")
}

func TestFormRejectsSleepOffStep(t *testing.T) {
	m := New()
	for i := 0; i < 7; i++ {
		m = press(t, m, enter)
	}
	m = press(t, m, erase(3)...)
	m = press(t, m, typed("7.3"), enter)
	assert.Equal(t, 7, m.idx)
	assert.NotEmpty(t, m.errMsg)
	_, err := m.Result()
	assert.Error(t, err)
}

func TestFormAbort(t *testing.T) {
	m := New()
	m = press(t, m, enter, esc)
	_, err := m.Result()
	assert.True(t, errors.Is(err, ErrAborted))
}

func TestFormViewShowsProgressAndOptions(t *testing.T) {
	m := New()
	view := m.View()
	assert.Contains(t, view, "(1/8)")
	assert.Contains(t, view, "男性")
	assert.Contains(t, view, "その他")
}
