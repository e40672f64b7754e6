package dietcheck

import (
	"fmt"

	"github.com/saadjs/dietcheck-cli/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage dietcheck configuration",
}

var (
	cfgSetBackend  string
	cfgSetLogPath  string
	cfgSetDBPath   string
	cfgSetFormat   string
	cfgSetLogLevel string
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set configuration values",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		next, err := config.LoadFile(path)
		if err != nil {
			return err
		}

		updates := 0
		set := func(flag string, dst *string, v string) {
			if cmd.Flags().Changed(flag) {
				*dst = v
				updates++
			}
		}
		set("backend", &next.Recorder.Backend, cfgSetBackend)
		set("log-path", &next.Recorder.LogPath, cfgSetLogPath)
		set("db-path", &next.Recorder.DBPath, cfgSetDBPath)
		set("format", &next.Output.Format, cfgSetFormat)
		set("log-level", &next.Logging.Level, cfgSetLogLevel)
		if updates == 0 {
			return fmt.Errorf("no config values provided")
		}
		if err := next.Validate(); err != nil {
			return err
		}
		if err := next.Save(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated %d config value(s) in %s\n", updates, path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configPathCmd, configSetCmd)

	configSetCmd.Flags().StringVar(&cfgSetBackend, "backend", "", "Recorder backend (csv|sqlite)")
	configSetCmd.Flags().StringVar(&cfgSetLogPath, "log-path", "", "Submission log CSV path")
	configSetCmd.Flags().StringVar(&cfgSetDBPath, "db-path", "", "SQLite database path")
	configSetCmd.Flags().StringVar(&cfgSetFormat, "format", "", "Default output format (styled|text|json)")
	configSetCmd.Flags().StringVar(&cfgSetLogLevel, "log-level", "", "Diagnostic log level (debug|info|warn|error)")
}
