// Package form collects a questionnaire submission interactively.
package form

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/saadjs/dietcheck-cli/internal/model"
	"github.com/saadjs/dietcheck-cli/internal/service"
)

// ErrAborted is returned when the user quits before answering every question.
var ErrAborted = errors.New("questionnaire aborted")

type option struct {
	label string
	value string
}

type question struct {
	prompt  string
	options []option // empty for numeric questions

	initial  string
	min, max float64
	integer  bool
	step     float64

	set func(in *service.SubmissionInput, v string) error
}

func (q question) numeric() bool { return len(q.options) == 0 }

func choices[K interface {
	~string
	Label() string
}](values []K) []option {
	out := make([]option, 0, len(values))
	for _, v := range values {
		out = append(out, option{label: v.Label(), value: string(v)})
	}
	return out
}

func questions() []question {
	return []question{
		{
			prompt:  "性別を選んでください:",
			options: choices(model.Genders()),
			set:     func(in *service.SubmissionInput, v string) error { in.Gender = v; return nil },
		},
		{
			prompt:  "年齢:",
			initial: "25", min: service.MinAge, max: service.MaxAge, integer: true,
			set: func(in *service.SubmissionInput, v string) error {
				n, err := strconv.Atoi(v)
				in.Age = n
				return err
			},
		},
		{
			prompt:  "身長（cm）:",
			initial: "170", min: service.MinHeightCm, max: service.MaxHeightCm,
			set: func(in *service.SubmissionInput, v string) error {
				f, err := strconv.ParseFloat(v, 64)
				in.Height = f
				return err
			},
		},
		{
			prompt:  "体重（kg）:",
			initial: "70", min: service.MinWeightKg, max: service.MaxWeightKg,
			set: func(in *service.SubmissionInput, v string) error {
				f, err := strconv.ParseFloat(v, 64)
				in.Weight = f
				return err
			},
		},
		{
			prompt:  "あなたの骨格タイプを選んでください:",
			options: choices(model.BodyTypes()),
			set:     func(in *service.SubmissionInput, v string) error { in.BodyType = v; return nil },
		},
		{
			prompt:  "週にどのくらい運動していますか？",
			options: choices(model.ExerciseFrequencies()),
			set:     func(in *service.SubmissionInput, v string) error { in.Exercise = v; return nil },
		},
		{
			prompt:  "普段の食生活について教えてください:",
			options: choices(model.DietPatterns()),
			set:     func(in *service.SubmissionInput, v string) error { in.Diet = v; return nil },
		},
		{
			prompt:  "平均睡眠時間（1日あたり）:",
			initial: "7.0", min: service.MinSleep, max: service.MaxSleep, step: service.SleepStep,
			set: func(in *service.SubmissionInput, v string) error {
				f, err := strconv.ParseFloat(v, 64)
				in.SleepHours = f
				return err
			},
		},
	}
}

var (
	promptStyle = lipgloss.NewStyle().Bold(true)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7a8699"))
)

// Model is the bubbletea model that walks through every question.
type Model struct {
	questions []question
	idx       int
	cursor    int
	input     textinput.Model
	answers   service.SubmissionInput
	errMsg    string

	record  model.SubmissionRecord
	err     error
	done    bool
	aborted bool
}

func New() Model {
	ti := textinput.New()
	ti.CharLimit = 6
	ti.Prompt = "> "
	m := Model{questions: questions(), input: ti}
	m.prepare()
	return m
}

func (m *Model) prepare() {
	q := m.questions[m.idx]
	m.cursor = 0
	m.errMsg = ""
	if q.numeric() {
		m.input.SetValue(q.initial)
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.questions[m.idx].numeric() {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.aborted = true
		return m, tea.Quit
	case tea.KeyEnter:
		return m.submit()
	}

	q := m.questions[m.idx]
	if q.numeric() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(q.options)-1 {
			m.cursor++
		}
	}
	return m, nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	q := m.questions[m.idx]
	var value string
	if q.numeric() {
		value = strings.TrimSpace(m.input.Value())
		if err := checkNumber(q, value); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
	} else {
		value = q.options[m.cursor].value
	}
	if err := q.set(&m.answers, value); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	if m.idx < len(m.questions)-1 {
		m.idx++
		m.prepare()
		return m, nil
	}
	m.record, m.err = service.BuildSubmission(m.answers)
	m.done = true
	return m, tea.Quit
}

func checkNumber(q question, raw string) error {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("数値を入力してください")
	}
	if v < q.min || v > q.max {
		return fmt.Errorf("%g〜%g の範囲で入力してください", q.min, q.max)
	}
	if q.integer && v != float64(int(v)) {
		return fmt.Errorf("整数を入力してください")
	}
	if q.step > 0 {
		n := v / q.step
		if n != float64(int(n)) {
			return fmt.Errorf("%g 刻みで入力してください", q.step)
		}
	}
	return nil
}

func (m Model) View() string {
	if m.done || m.aborted {
		return ""
	}
	q := m.questions[m.idx]
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", hintStyle.Render(fmt.Sprintf("(%d/%d)", m.idx+1, len(m.questions))), promptStyle.Render(q.prompt))
	if q.numeric() {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	} else {
		for i, o := range q.options {
			if i == m.cursor {
				b.WriteString(cursorStyle.Render("> " + o.label))
			} else {
				b.WriteString("  " + o.label)
			}
			b.WriteString("\n")
		}
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg) + "\n")
	}
	b.WriteString("\n" + hintStyle.Render("↑/↓ 選択 • enter 決定 • esc 中止") + "\n")
	return b.String()
}

// Result returns the collected record once every question is answered.
func (m Model) Result() (model.SubmissionRecord, error) {
	switch {
	case m.aborted:
		return model.SubmissionRecord{}, ErrAborted
	case !m.done:
		return model.SubmissionRecord{}, fmt.Errorf("questionnaire incomplete")
	case m.err != nil:
		return model.SubmissionRecord{}, m.err
	}
	return m.record, nil
}

// Run shows the questionnaire on out, reading keys from in.
func Run(ctx context.Context, in io.Reader, out io.Writer) (model.SubmissionRecord, error) {
	p := tea.NewProgram(New(), tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return model.SubmissionRecord{}, fmt.Errorf("run questionnaire: %w", err)
	}
	fm, ok := final.(Model)
	if !ok {
		return model.SubmissionRecord{}, fmt.Errorf("unexpected questionnaire model %T", final)
	}
	return fm.Result()
}
