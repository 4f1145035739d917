package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tradewatch/sentinel/internal/config"
	"github.com/tradewatch/sentinel/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:   "sentinel",
	Short: "Process supervisor for the alert monitor",
	Long: `Sentinel supervises the trading-signal alert monitor as a single named
tmux session. It exposes three idempotent operations: start launches the
monitor in a detached session, stop interrupts it and escalates to a
forced kill after a grace interval, and status reports whether the
session is active along with a best-effort performance summary.`,
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if hint := toolingHint(err); hint != "" {
		fmt.Fprintln(os.Stderr, hint)
	}
	return err
}

// toolingHint returns install guidance when an operation failed because
// tmux is absent. Every other failure already prints its own message.
func toolingHint(err error) string {
	if !errors.IsToolingMissing(err) {
		return ""
	}
	return hintStyle.Render("Sentinel requires tmux. Install it and try again.")
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "",
		fmt.Sprintf("config file (default is %s)", config.ConfigFile()))
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/sentinel")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("SENTINEL")
	// Replace dots with underscores for nested keys in env vars
	// e.g., SENTINEL_SUPERVISOR_GRACE_PERIOD_SECONDS for supervisor.grace_period_seconds
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
