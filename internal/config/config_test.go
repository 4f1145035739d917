package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tradewatch/sentinel/internal/tmux"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Session.Name != "alert-monitor" {
		t.Errorf("Session.Name = %q, want %q", cfg.Session.Name, "alert-monitor")
	}
	if cfg.Session.Socket != "sentinel" {
		t.Errorf("Session.Socket = %q, want %q", cfg.Session.Socket, "sentinel")
	}
	if cfg.Session.MonitorWindow == cfg.Session.LogsWindow {
		t.Error("monitor and logs windows must default to different names")
	}
	if cfg.Supervisor.GracePeriodSeconds != 2 {
		t.Errorf("GracePeriodSeconds = %d, want 2", cfg.Supervisor.GracePeriodSeconds)
	}
	if got := cfg.Supervisor.GracePeriod(); got != 2*time.Second {
		t.Errorf("GracePeriod() = %v, want 2s", got)
	}

	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("default config failed validation: %v", ValidationErrors(errs))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:      "session name with dot",
			mutate:    func(c *Config) { c.Session.Name = "alert.monitor" },
			wantField: "session.name",
		},
		{
			name:      "empty socket",
			mutate:    func(c *Config) { c.Session.Socket = "" },
			wantField: "session.socket",
		},
		{
			name:      "colliding window names",
			mutate:    func(c *Config) { c.Session.LogsWindow = c.Session.MonitorWindow },
			wantField: "session.logs_window",
		},
		{
			name:      "empty monitor command",
			mutate:    func(c *Config) { c.Monitor.Command = nil },
			wantField: "monitor.command",
		},
		{
			name:      "zero grace period",
			mutate:    func(c *Config) { c.Supervisor.GracePeriodSeconds = 0 },
			wantField: "supervisor.grace_period_seconds",
		},
		{
			name:      "negative grace period",
			mutate:    func(c *Config) { c.Supervisor.GracePeriodSeconds = -1 },
			wantField: "supervisor.grace_period_seconds",
		},
		{
			name:      "bogus log level",
			mutate:    func(c *Config) { c.Logging.Level = "LOUD" },
			wantField: "logging.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			errs := cfg.Validate()
			if len(errs) == 0 {
				t.Fatal("Validate() returned no errors")
			}

			found := false
			for _, err := range errs {
				if err.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("Validate() errors = %v, want error on field %q", errs, tt.wantField)
			}
		})
	}
}

func TestValidate_SharesTmuxNameRules(t *testing.T) {
	// Names the session layer would reject must never pass config
	// validation, or they would fail later as broken tmux targets.
	for _, name := range []string{"alert:monitor", "alert monitor", "", "a.b"} {
		if tmux.ValidateSessionName(name) == nil {
			t.Fatalf("ValidateSessionName(%q) = nil, fixture is stale", name)
		}

		cfg := Default()
		cfg.Session.Name = name
		found := false
		for _, err := range cfg.Validate() {
			if err.Field == "session.name" {
				found = true
			}
		}
		if !found {
			t.Errorf("Validate() accepted session name %q", name)
		}
	}
}

func TestValidate_LogLevelCaseInsensitive(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "debug"
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("lowercase level rejected: %v", ValidationErrors(errs))
	}
}

func TestValidationErrors_Message(t *testing.T) {
	errs := ValidationErrors{
		{Field: "supervisor.grace_period_seconds", Value: 0, Message: "must be at least 1"},
	}
	want := "supervisor.grace_period_seconds: must be at least 1 (got: 0)"
	if errs.Error() != want {
		t.Errorf("Error() = %q, want %q", errs.Error(), want)
	}

	errs = append(errs, ValidationError{Field: "session.name", Value: "a.b", Message: "bad"})
	if !strings.HasPrefix(errs.Error(), "2 validation errors:") {
		t.Errorf("Error() = %q, want multi-error header", errs.Error())
	}
}

func TestPathResolution(t *testing.T) {
	cfg := Default()
	install := filepath.Join("/opt", "sentinel")

	if got, want := cfg.Paths.ResolveDataDir(install), filepath.Join(install, "data"); got != want {
		t.Errorf("ResolveDataDir() = %q, want %q", got, want)
	}
	if got, want := cfg.Paths.ResolvePIDFile(install), filepath.Join(install, "data", "alert_monitor.pid"); got != want {
		t.Errorf("ResolvePIDFile() = %q, want %q", got, want)
	}
	if got, want := cfg.Paths.ResolvePerformanceFile(install), filepath.Join(install, "data", "signal_performance.json"); got != want {
		t.Errorf("ResolvePerformanceFile() = %q, want %q", got, want)
	}
}

func TestPathResolution_AbsoluteDataDir(t *testing.T) {
	cfg := Default()
	cfg.Paths.DataDir = "/var/lib/sentinel"

	if got := cfg.Paths.ResolveDataDir("/opt/sentinel"); got != "/var/lib/sentinel" {
		t.Errorf("ResolveDataDir() = %q, want absolute dir kept as-is", got)
	}
}

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := ConfigDir(); got != filepath.Join("/tmp/xdg", "sentinel") {
		t.Errorf("ConfigDir() = %q, want XDG path", got)
	}
}
