package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tradewatch/sentinel/internal/supervisor"
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the alert monitor session",
	Long: `Stop the alert monitor session.

The monitor first receives Ctrl+C and the configured grace interval to
shut down on its own; if the session still exists afterwards it is
forcibly destroyed. The PID marker is cleaned up on every path. Stopping
when nothing is running is a no-op that still succeeds.`,
	RunE: runStop,
}

func init() {
	rootCmd.AddCommand(stopCmd)
}

func runStop(cmd *cobra.Command, args []string) error {
	rt, err := buildRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	res, err := rt.sup.Stop(cmd.Context())
	if err != nil {
		return err
	}

	if res.Performance.Available {
		fmt.Printf("%s\n%s\n\n", headerStyle.Render("Final performance snapshot"), res.Performance.Text)
	}

	switch res.Outcome {
	case supervisor.NotRunning:
		fmt.Printf("%s\n", inactiveStyle.Render(fmt.Sprintf("Session %q is not running.", rt.cfg.Session.Name)))
	case supervisor.StoppedGracefully:
		fmt.Printf("%s\n", activeStyle.Render("Monitor stopped gracefully."))
	case supervisor.StoppedForced:
		fmt.Printf("%s\n", warnStyle.Render(fmt.Sprintf(
			"Monitor did not stop within %s; session was force killed.", rt.cfg.Supervisor.GracePeriod())))
	}
	return nil
}
