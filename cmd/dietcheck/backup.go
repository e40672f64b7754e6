package dietcheck

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/saadjs/dietcheck-cli/internal/config"
	"github.com/saadjs/dietcheck-cli/internal/service"
	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Copy the submission log aside",
}

var (
	backupOut string
	backupDir string
)

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a checksummed copy of the submission log",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Recorder.Backend != config.BackendCSV {
			return fmt.Errorf("backup supports the csv backend only")
		}
		logFile, err := resolveLogPath()
		if err != nil {
			return err
		}
		out := backupOut
		if out == "" {
			out = filepath.Join(backupDirFor(logFile), fmt.Sprintf("user_data-%s.csv", time.Now().Format("20060102-150405")))
		}
		info, err := service.CreateBackup(logFile, out)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created backup: %s\n", info.Path)
		fmt.Fprintf(cmd.OutOrStdout(), "Checksum: %s\n", info.Checksum)
		return nil
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List backups",
	RunE: func(cmd *cobra.Command, args []string) error {
		logFile, err := resolveLogPath()
		if err != nil {
			return err
		}
		items, err := service.ListBackups(backupDirFor(logFile))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "FILE\tSIZE\tCREATED\tCHECKSUM")
		for _, it := range items {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\t%s\n", it.Path, it.SizeBytes, it.CreatedAt.Format(time.RFC3339), it.Checksum)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupCreateCmd, backupListCmd)

	backupCreateCmd.Flags().StringVar(&backupOut, "out", "", "Backup output file path")
	backupCmd.PersistentFlags().StringVar(&backupDir, "dir", "", "Backup directory (default: backups/ next to the log)")
}

func backupDirFor(logFile string) string {
	if backupDir != "" {
		return backupDir
	}
	return filepath.Join(filepath.Dir(logFile), "backups")
}
