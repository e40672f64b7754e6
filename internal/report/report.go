// Package report renders a diagnosis for the terminal.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/saadjs/dietcheck-cli/internal/model"
	"github.com/saadjs/dietcheck-cli/internal/service"
)

const (
	FormatStyled = "styled"
	FormatText   = "text"
	FormatJSON   = "json"
)

var (
	accent  = lipgloss.Color("#8BC34A")
	primary = lipgloss.Color("#2196F3")
	muted   = lipgloss.Color("#7a8699")
)

type decorator interface {
	title(string) string
	heading(string) string
	bullet(string) string
	block(string) string
	success(string) string
}

type plain struct{}

func (plain) title(s string) string   { return "== " + s + " ==" }
func (plain) heading(s string) string { return s }
func (plain) bullet(s string) string  { return "- " + s }
func (plain) success(s string) string { return "★ " + s }

func (plain) block(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = "    " + l
	}
	return strings.Join(lines, "\n")
}

type styled struct {
	titleStyle   lipgloss.Style
	headingStyle lipgloss.Style
	bulletStyle  lipgloss.Style
	blockStyle   lipgloss.Style
	successStyle lipgloss.Style
}

func newStyled() styled {
	return styled{
		titleStyle:   lipgloss.NewStyle().Bold(true).Foreground(primary),
		headingStyle: lipgloss.NewStyle().Bold(true).Foreground(accent),
		bulletStyle:  lipgloss.NewStyle().PaddingLeft(2),
		blockStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1),
		successStyle: lipgloss.NewStyle().Bold(true).Foreground(accent),
	}
}

func (s styled) title(v string) string   { return s.titleStyle.Render(v) }
func (s styled) heading(v string) string { return s.headingStyle.Render("▶ " + v) }
func (s styled) bullet(v string) string  { return s.bulletStyle.Render("• " + v) }
func (s styled) block(v string) string   { return s.blockStyle.Render(v) }
func (s styled) success(v string) string { return s.successStyle.Render("🎉 " + v) }

// Render writes the submission summary and its diagnosis in the given format.
func Render(w io.Writer, format string, rec model.SubmissionRecord, d model.Diagnosis) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, rec, d)
	case FormatText:
		return renderDoc(w, plain{}, rec, d)
	case FormatStyled, "":
		return renderDoc(w, newStyled(), rec, d)
	default:
		return fmt.Errorf("unsupported format %q (use styled, text or json)", format)
	}
}

type jsonDocument struct {
	Submission model.SubmissionRecord `json:"submission"`
	Diagnosis  model.Diagnosis        `json:"diagnosis"`
}

func renderJSON(w io.Writer, rec model.SubmissionRecord, d model.Diagnosis) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jsonDocument{Submission: rec, Diagnosis: d}); err != nil {
		return fmt.Errorf("encode diagnosis json: %w", err)
	}
	return nil
}

func renderDoc(w io.Writer, dec decorator, rec model.SubmissionRecord, d model.Diagnosis) error {
	var b strings.Builder
	line := func(s string) {
		b.WriteString(s)
		b.WriteByte('\n')
	}

	line(dec.title("📋 入力された基本情報"))
	for _, kv := range Summary(rec) {
		line(dec.bullet(kv[0] + ": " + kv[1]))
	}
	line("")

	line(dec.title("🧾 あなたへのアドバイス"))
	for _, sec := range d.Advice.Sections() {
		line(dec.heading(sec.Category.Label() + "に関するアドバイス"))
		for _, item := range sec.Items {
			line(dec.bullet(item))
		}
	}
	if d.Exemplary {
		line("")
		line(dec.success(service.ExemplaryMessage))
	}
	line("")

	line(dec.title("🧾 詳しいアドバイス（運動）"))
	line(dec.heading("あなたの骨格に効果のある運動は？"))
	line(dec.block(d.ExerciseGuide))
	line("")

	line(dec.title("🧾 詳しいアドバイス（食事）"))
	line(dec.heading("あなたの骨格に影響を与える食事は？"))
	line(dec.block(d.DietGuide))

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write diagnosis: %w", err)
	}
	return nil
}

// Summary lists the submitted values as localized label/value pairs.
func Summary(rec model.SubmissionRecord) [][2]string {
	return [][2]string{
		{"性別", rec.Gender.Label()},
		{"年齢", strconv.Itoa(rec.Age) + " 歳"},
		{"身長", strconv.FormatFloat(rec.HeightCm, 'f', -1, 64) + " cm"},
		{"体重", strconv.FormatFloat(rec.WeightKg, 'f', -1, 64) + " kg"},
		{"骨格タイプ", rec.BodyType.Label()},
		{"運動頻度", rec.ExerciseFrequency.Label()},
		{"食生活", rec.DietPattern.Label()},
		{"睡眠時間", strconv.FormatFloat(rec.SleepHours, 'f', 1, 64) + " 時間"},
	}
}
