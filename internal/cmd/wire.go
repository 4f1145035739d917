package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/tradewatch/sentinel/internal/config"
	"github.com/tradewatch/sentinel/internal/logging"
	"github.com/tradewatch/sentinel/internal/perf"
	"github.com/tradewatch/sentinel/internal/pidfile"
	"github.com/tradewatch/sentinel/internal/supervisor"
)

// runtime bundles everything a command needs for one invocation.
type runtime struct {
	cfg *config.Config
	sup *supervisor.Supervisor
	log *logging.Logger
}

func (r *runtime) close() {
	if r.log != nil {
		_ = r.log.Close()
	}
}

// buildRuntime loads the configuration and wires the supervisor with its
// tmux backend, PID marker, performance reporter, and logger.
func buildRuntime() (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	installDir, err := resolveInstallDir(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve installation directory: %w", err)
	}

	log := logging.NopLogger()
	if cfg.Logging.Enabled {
		log, err = logging.NewLogger(cfg.Paths.ResolveDataDir(installDir), cfg.Logging.Level)
		if err != nil {
			// A broken log sink should not block supervision.
			log = logging.NopLogger()
		}
	}

	reporter := &perf.Runner{
		RecordPath: cfg.Paths.ResolvePerformanceFile(installDir),
		Command:    slices.Concat(cfg.Monitor.Command, cfg.Monitor.PerformanceArgs),
		Dir:        installDir,
	}

	sup := supervisor.New(
		supervisor.Options{
			SessionName:    cfg.Session.Name,
			MonitorWindow:  cfg.Session.MonitorWindow,
			LogsWindow:     cfg.Session.LogsWindow,
			WorkDir:        installDir,
			MonitorCommand: cfg.Monitor.Command,
			GracePeriod:    cfg.Supervisor.GracePeriod(),
		},
		supervisor.NewTmuxBackend(cfg.Session.Socket),
		pidfile.New(cfg.Paths.ResolvePIDFile(installDir)),
		reporter,
		log,
	)

	return &runtime{cfg: cfg, sup: sup, log: log}, nil
}

// resolveInstallDir locates the supervisor's installation directory so the
// monitor's relative data paths resolve regardless of the caller's cwd.
// An explicit paths.install_dir wins; otherwise the directory containing
// the sentinel binary is used, with the cwd as a last resort (go run).
func resolveInstallDir(cfg *config.Config) (string, error) {
	if cfg.Paths.InstallDir != "" {
		return filepath.Abs(cfg.Paths.InstallDir)
	}

	exe, err := os.Executable()
	if err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			return filepath.Dir(resolved), nil
		}
		return filepath.Dir(exe), nil
	}

	return os.Getwd()
}
