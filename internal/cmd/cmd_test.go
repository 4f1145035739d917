package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/tradewatch/sentinel/internal/config"
	"github.com/tradewatch/sentinel/internal/errors"
	"github.com/tradewatch/sentinel/internal/testutil"
)

func TestRootCommandRegistration(t *testing.T) {
	if rootCmd.Use != "sentinel" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "sentinel")
	}

	want := map[string]bool{"start": false, "stop": false, "status": false}
	for _, sub := range rootCmd.Commands() {
		name := strings.Fields(sub.Use)[0]
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestConfigFlagShowsDefaultPath(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("config")
	if flag == nil {
		t.Fatal("--config flag not registered")
	}
	if !strings.Contains(flag.Usage, config.ConfigFile()) {
		t.Errorf("flag usage = %q, want it to name %q", flag.Usage, config.ConfigFile())
	}
}

func TestToolingHint(t *testing.T) {
	if hint := toolingHint(errors.ErrTmuxNotFound); !strings.Contains(hint, "tmux") {
		t.Errorf("toolingHint(ErrTmuxNotFound) = %q, want install guidance", hint)
	}
	if hint := toolingHint(errors.Wrap(errors.ErrTmuxNotFound, "start")); hint == "" {
		t.Error("toolingHint() missed a wrapped tooling error")
	}
	if hint := toolingHint(nil); hint != "" {
		t.Errorf("toolingHint(nil) = %q, want empty", hint)
	}
	if hint := toolingHint(errors.New("boom")); hint != "" {
		t.Errorf("toolingHint(unrelated) = %q, want empty", hint)
	}
}

func TestTerminalConfirmer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes short", "y\n", true},
		{"yes long", "yes\n", true},
		{"yes uppercase", "Y\n", true},
		{"no", "n\n", false},
		{"empty line defaults to no", "\n", false},
		{"closed input defaults to no", "", false},
		{"garbage defaults to no", "sure\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c := &terminalConfirmer{in: strings.NewReader(tt.input), out: &out}
			if got := c.Confirm("Attach now?"); got != tt.want {
				t.Errorf("Confirm() = %v, want %v", got, tt.want)
			}
			if !strings.Contains(out.String(), "[y/N]") {
				t.Errorf("prompt = %q, want it to show the default", out.String())
			}
		})
	}
}

func TestNoConfirmer(t *testing.T) {
	if (noConfirmer{}).Confirm("anything") {
		t.Error("noConfirmer answered yes")
	}
}

func TestResolveInstallDir_Explicit(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Paths.InstallDir = dir

	got, err := resolveInstallDir(cfg)
	if err != nil {
		t.Fatalf("resolveInstallDir() error = %v", err)
	}
	if got != dir {
		t.Errorf("resolveInstallDir() = %q, want %q", got, dir)
	}
}

func TestBuildRuntime(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := testutil.SetupInstallDir(t)
	config.SetDefaults()
	viper.Set("paths.install_dir", dir)

	rt, err := buildRuntime()
	if err != nil {
		t.Fatalf("buildRuntime() error = %v", err)
	}
	defer rt.close()

	if rt.cfg.Session.Name != "alert-monitor" {
		t.Errorf("Session.Name = %q, want %q", rt.cfg.Session.Name, "alert-monitor")
	}
	if rt.sup == nil {
		t.Fatal("runtime has no supervisor")
	}
	if got := rt.sup.SessionName(); got != "alert-monitor" {
		t.Errorf("SessionName() = %q, want %q", got, "alert-monitor")
	}
}

func TestBuildRuntime_RejectsInvalidConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	config.SetDefaults()
	viper.Set("session.name", "bad name!")

	if _, err := buildRuntime(); err == nil {
		t.Fatal("buildRuntime() accepted an invalid session name")
	}
}
