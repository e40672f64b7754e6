package dietcheck

import (
	"fmt"
	"io"
	"strings"

	"github.com/saadjs/dietcheck-cli/internal/config"
	"github.com/saadjs/dietcheck-cli/internal/form"
	"github.com/saadjs/dietcheck-cli/internal/model"
	"github.com/saadjs/dietcheck-cli/internal/report"
	"github.com/saadjs/dietcheck-cli/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const savedNotice = "基本情報が保存されました！"

var (
	diagGender      string
	diagAge         int
	diagHeight      float64
	diagHeightUnit  string
	diagWeight      float64
	diagWeightUnit  string
	diagBodyType    string
	diagExercise    string
	diagDiet        string
	diagSleep       float64
	diagInteractive bool
	diagNoRecord    bool
	diagFormat      string
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Answer the questionnaire and get advice",
	Example: `  dietcheck diagnose --gender female --age 30 --height 160 --weight 55 \
    --body-type straight --exercise rarely --diet skewed --sleep 5
  dietcheck diagnose --interactive`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := cfg.Output.Format
		if diagFormat != "" {
			format = strings.ToLower(diagFormat)
		}
		switch format {
		case config.FormatStyled, config.FormatText, config.FormatJSON:
		default:
			return fmt.Errorf("invalid --format %q (use styled, text or json)", diagFormat)
		}

		var (
			rec model.SubmissionRecord
			err error
		)
		if diagInteractive {
			rec, err = form.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		} else {
			rec, err = submissionFromFlags(cmd)
		}
		if err != nil {
			return err
		}

		diagnosis := service.Diagnose(rec)
		logger.Debug("diagnosed submission",
			zap.Float64("bmi", diagnosis.BMI),
			zap.String("band", string(diagnosis.BMIBand)),
			zap.Bool("exemplary", diagnosis.Exemplary),
		)

		notices := cmd.OutOrStdout()
		if format == config.FormatJSON {
			notices = cmd.ErrOrStderr()
		}
		if !diagNoRecord {
			recordSubmission(cmd, notices, rec)
		}
		return report.Render(cmd.OutOrStdout(), format, rec, diagnosis)
	},
}

func init() {
	rootCmd.AddCommand(diagnoseCmd)
	f := diagnoseCmd.Flags()
	f.StringVar(&diagGender, "gender", "", "Gender: male, female or other")
	f.IntVar(&diagAge, "age", 0, "Age in years (10-100)")
	f.Float64Var(&diagHeight, "height", 0, "Height (100-250 cm)")
	f.StringVar(&diagHeightUnit, "height-unit", "cm", "Height unit: cm, m or in")
	f.Float64Var(&diagWeight, "weight", 0, "Weight (30-200 kg)")
	f.StringVar(&diagWeightUnit, "weight-unit", "kg", "Weight unit: kg or lb")
	f.StringVar(&diagBodyType, "body-type", "", "Skeleton type: wave, natural, straight or unknown")
	f.StringVar(&diagExercise, "exercise", "", "Exercise frequency: rarely, 1-2/week, 3-4/week or 5+/week")
	f.StringVar(&diagDiet, "diet", "", "Diet pattern: balanced, skewed, frequent_eating_out or frequent_snacking")
	f.Float64Var(&diagSleep, "sleep", 0, "Average daily sleep hours (3.0-12.0, step 0.5)")
	f.BoolVarP(&diagInteractive, "interactive", "i", false, "Ask each question in the terminal")
	f.BoolVar(&diagNoRecord, "no-record", false, "Do not append the submission to the log")
	f.StringVar(&diagFormat, "format", "", "Output format: styled, text or json (default from config)")
}

func submissionFromFlags(cmd *cobra.Command) (model.SubmissionRecord, error) {
	var missing []string
	for _, name := range []string{"gender", "age", "height", "weight", "body-type", "exercise", "diet", "sleep"} {
		if !cmd.Flags().Changed(name) {
			missing = append(missing, "--"+name)
		}
	}
	if len(missing) > 0 {
		return model.SubmissionRecord{}, fmt.Errorf("missing required flags: %s (or use --interactive)", strings.Join(missing, ", "))
	}
	return service.BuildSubmission(service.SubmissionInput{
		Gender:     diagGender,
		Age:        diagAge,
		Height:     diagHeight,
		HeightUnit: diagHeightUnit,
		Weight:     diagWeight,
		WeightUnit: diagWeightUnit,
		BodyType:   diagBodyType,
		Exercise:   diagExercise,
		Diet:       diagDiet,
		SleepHours: diagSleep,
	})
}

// recordSubmission appends rec to the configured log. Failures are reported
// but never hide the advice.
func recordSubmission(cmd *cobra.Command, notices io.Writer, rec model.SubmissionRecord) {
	err := withRecorder(func(r service.Recorder) error {
		return r.Append(cmd.Context(), rec)
	})
	if err != nil {
		logger.Warn("record submission failed", zap.Error(err))
		fmt.Fprintf(notices, "基本情報を保存できませんでした: %v\n\n", err)
		return
	}
	logger.Info("submission recorded", zap.String("backend", cfg.Recorder.Backend))
	fmt.Fprintf(notices, "%s\n\n", savedNotice)
}
