package dietcheck

import (
	"errors"
	"fmt"

	"github.com/saadjs/dietcheck-cli/internal/app"
	"github.com/saadjs/dietcheck-cli/internal/config"
	"github.com/saadjs/dietcheck-cli/internal/service"
)

// withRecorder opens the configured recorder, runs fn and closes it again.
func withRecorder(run func(service.Recorder) error) (err error) {
	rec, err := openRecorder()
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, rec.Close())
	}()
	return run(rec)
}

func openRecorder() (service.Recorder, error) {
	switch cfg.Recorder.Backend {
	case config.BackendSQLite:
		path, err := resolveDBPath()
		if err != nil {
			return nil, err
		}
		if err := app.EnsureParentDir(path); err != nil {
			return nil, err
		}
		return service.OpenSQLiteRecorder(path)
	case config.BackendCSV:
		path, err := resolveLogPath()
		if err != nil {
			return nil, err
		}
		if err := app.EnsureParentDir(path); err != nil {
			return nil, err
		}
		return service.OpenCSVRecorder(path)
	default:
		return nil, fmt.Errorf("unsupported recorder backend %q", cfg.Recorder.Backend)
	}
}

func resolveLogPath() (string, error) {
	if logPath != "" {
		return logPath, nil
	}
	if cfg.Recorder.LogPath != "" {
		return cfg.Recorder.LogPath, nil
	}
	return app.DefaultLogPath()
}

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if cfg.Recorder.DBPath != "" {
		return cfg.Recorder.DBPath, nil
	}
	return app.DefaultDBPath()
}

func storePath() (string, error) {
	if cfg.Recorder.Backend == config.BackendSQLite {
		return resolveDBPath()
	}
	return resolveLogPath()
}
