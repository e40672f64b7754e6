package dietcheck

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/saadjs/dietcheck-cli/internal/app"
	"github.com/saadjs/dietcheck-cli/internal/config"
	"github.com/saadjs/dietcheck-cli/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath  string
	envFile     string
	logPath     string
	dbPath      string
	backendFlag string
	verbose     bool

	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "dietcheck",
	Short: "dietcheck gives lifestyle advice from a short questionnaire",
	Long: `dietcheck asks for basic body measurements and lifestyle habits, prints
advice grouped by category together with exercise and food suggestions for
your skeleton type, and appends every submission to a local log.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.yaml (default: user config dir)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Optional .env file with DIETCHECK_* variables")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "Path to the submission log CSV")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the SQLite database (sqlite backend)")
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "Recorder backend: csv or sqlite")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func setup() error {
	if err := config.LoadEnvFile(envFile); err != nil {
		return err
	}
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}
	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	if backendFlag != "" {
		loaded.Recorder.Backend = backendFlag
		if err := loaded.Validate(); err != nil {
			return err
		}
	}
	cfg = loaded

	l, err := logging.New(cfg.Logging.Level, verbose)
	if err != nil {
		return err
	}
	logger = l
	logger.Debug("config loaded", zap.String("path", path), zap.String("backend", cfg.Recorder.Backend))
	return nil
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return app.DefaultConfigPath()
}
