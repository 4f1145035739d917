package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/tradewatch/sentinel/internal/tmux"
)

// Config represents the complete Sentinel configuration
type Config struct {
	Session    SessionConfig    `mapstructure:"session"`
	Monitor    MonitorConfig    `mapstructure:"monitor"`
	Supervisor SupervisorConfig `mapstructure:"supervisor"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Paths      PathsConfig      `mapstructure:"paths"`
}

// SessionConfig identifies the tmux session the supervisor manages
type SessionConfig struct {
	// Name is the fixed session name (default: "alert-monitor")
	Name string `mapstructure:"name"`
	// Socket is the tmux socket name used for isolation (default: "sentinel")
	Socket string `mapstructure:"socket"`
	// MonitorWindow is the primary window running the monitor (default: "monitor")
	MonitorWindow string `mapstructure:"monitor_window"`
	// LogsWindow is the secondary window reserved for log inspection (default: "logs")
	LogsWindow string `mapstructure:"logs_window"`
}

// MonitorConfig describes the external monitor task's two entry points
type MonitorConfig struct {
	// Command launches the long-lived monitor, argv style
	// (default: ["python3", "alert_monitor.py"])
	Command []string `mapstructure:"command"`
	// PerformanceArgs are appended to Command for the reporting entry point
	// (default: ["--performance"])
	PerformanceArgs []string `mapstructure:"performance_args"`
}

// SupervisorConfig controls stop sequencing and the interactive attach offer
type SupervisorConfig struct {
	// GracePeriodSeconds is how long stop waits after the interrupt before
	// escalating to a forced kill (default: 2, minimum: 1)
	GracePeriodSeconds int `mapstructure:"grace_period_seconds"`
	// OfferAttach enables the interactive attach prompt after start when
	// stdin is a terminal (default: true)
	OfferAttach bool `mapstructure:"offer_attach"`
}

// LoggingConfig controls the supervisor's own structured log
type LoggingConfig struct {
	// Enabled turns the JSON log file on or off (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the minimum level to record: DEBUG, INFO, WARN, ERROR (default: INFO)
	Level string `mapstructure:"level"`
}

// PathsConfig locates the files shared with the monitor task
type PathsConfig struct {
	// InstallDir overrides the resolved installation directory. When empty
	// the directory containing the sentinel binary is used, so relative
	// paths resolve regardless of the caller's working directory.
	InstallDir string `mapstructure:"install_dir"`
	// DataDir is the state directory, relative to the install dir (default: "data")
	DataDir string `mapstructure:"data_dir"`
	// PIDFile is the monitor's PID marker, relative to DataDir (default: "alert_monitor.pid")
	PIDFile string `mapstructure:"pid_file"`
	// PerformanceFile is the monitor's performance record, relative to
	// DataDir (default: "signal_performance.json")
	PerformanceFile string `mapstructure:"performance_file"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Session: SessionConfig{
			Name:          "alert-monitor",
			Socket:        tmux.SocketName,
			MonitorWindow: "monitor",
			LogsWindow:    "logs",
		},
		Monitor: MonitorConfig{
			Command:         []string{"python3", "alert_monitor.py"},
			PerformanceArgs: []string{"--performance"},
		},
		Supervisor: SupervisorConfig{
			GracePeriodSeconds: 2,
			OfferAttach:        true,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "INFO",
		},
		Paths: PathsConfig{
			DataDir:         "data",
			PIDFile:         "alert_monitor.pid",
			PerformanceFile: "signal_performance.json",
		},
	}
}

// GracePeriod returns the stop grace interval as a time.Duration
func (c *SupervisorConfig) GracePeriod() time.Duration {
	return time.Duration(c.GracePeriodSeconds) * time.Second
}

// ResolveDataDir returns the absolute data directory under installDir
func (p *PathsConfig) ResolveDataDir(installDir string) string {
	if filepath.IsAbs(p.DataDir) {
		return p.DataDir
	}
	return filepath.Join(installDir, p.DataDir)
}

// ResolvePIDFile returns the absolute path of the PID marker
func (p *PathsConfig) ResolvePIDFile(installDir string) string {
	return filepath.Join(p.ResolveDataDir(installDir), p.PIDFile)
}

// ResolvePerformanceFile returns the absolute path of the performance record
func (p *PathsConfig) ResolvePerformanceFile(installDir string) string {
	return filepath.Join(p.ResolveDataDir(installDir), p.PerformanceFile)
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("session.name", defaults.Session.Name)
	viper.SetDefault("session.socket", defaults.Session.Socket)
	viper.SetDefault("session.monitor_window", defaults.Session.MonitorWindow)
	viper.SetDefault("session.logs_window", defaults.Session.LogsWindow)

	viper.SetDefault("monitor.command", defaults.Monitor.Command)
	viper.SetDefault("monitor.performance_args", defaults.Monitor.PerformanceArgs)

	viper.SetDefault("supervisor.grace_period_seconds", defaults.Supervisor.GracePeriodSeconds)
	viper.SetDefault("supervisor.offer_attach", defaults.Supervisor.OfferAttach)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)

	viper.SetDefault("paths.install_dir", defaults.Paths.InstallDir)
	viper.SetDefault("paths.data_dir", defaults.Paths.DataDir)
	viper.SetDefault("paths.pid_file", defaults.Paths.PIDFile)
	viper.SetDefault("paths.performance_file", defaults.Paths.PerformanceFile)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "sentinel")
	}
	// Fall back to ~/.config/sentinel
	home, err := os.UserHomeDir()
	if err != nil {
		return ".sentinel"
	}
	return filepath.Join(home, ".config", "sentinel")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
