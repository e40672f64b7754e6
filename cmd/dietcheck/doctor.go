package dietcheck

import (
	"fmt"

	"github.com/saadjs/dietcheck-cli/internal/config"
	"github.com/saadjs/dietcheck-cli/internal/service"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the submission log for malformed rows",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if cfg.Recorder.Backend == config.BackendSQLite {
			path, err := resolveDBPath()
			if err != nil {
				return err
			}
			rec, err := service.OpenSQLiteRecorder(path)
			if err != nil {
				return err
			}
			defer rec.Close()
			n, err := rec.Count(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Database: %s\n", path)
			fmt.Fprintf(out, "Rows: %d\n", n)
			return nil
		}

		path, err := resolveLogPath()
		if err != nil {
			return err
		}
		report, err := service.CheckLog(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Log: %s\n", path)
		fmt.Fprintf(out, "Rows: %d\n", report.Rows)
		if report.MissingHeader {
			fmt.Fprintln(out, "Header: missing")
		}
		if report.BadHeader {
			fmt.Fprintln(out, "Header: unexpected columns")
		}
		fmt.Fprintf(out, "Invalid rows: %d\n", len(report.InvalidRows))
		for _, issue := range report.InvalidRows {
			fmt.Fprintf(out, "  line %d: %s\n", issue.Line, issue.Reason)
		}
		if !report.OK() {
			return fmt.Errorf("doctor found integrity issues")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
