package dietcheck

import (
	"fmt"

	"github.com/saadjs/dietcheck-cli/internal/app"
	"github.com/saadjs/dietcheck-cli/internal/config"
	"github.com/saadjs/dietcheck-cli/internal/service"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the submission log (or database) if it does not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := storePath()
		if err != nil {
			return err
		}
		if err := app.EnsureParentDir(path); err != nil {
			return err
		}

		if cfg.Recorder.Backend == config.BackendSQLite {
			rec, err := service.OpenSQLiteRecorder(path)
			if err != nil {
				return err
			}
			if err := rec.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized submission database at %s\n", path)
			return nil
		}

		rec, err := service.OpenCSVRecorder(path)
		if err != nil {
			return err
		}
		defer rec.Close()
		if err := rec.EnsureHeader(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Initialized submission log at %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
