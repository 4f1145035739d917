package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tradewatch/sentinel/internal/supervisor"
	"github.com/tradewatch/sentinel/internal/tmux"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the alert monitor session",
	Long: `Start the alert monitor in a detached tmux session.

If the session already exists this is a no-op: the running monitor is
left untouched and the attach command is printed instead. The launch is
fire-and-forget: start does not wait for the monitor to become ready.`,
	RunE: runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	rt, err := buildRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	res, err := rt.sup.Start(cmd.Context())
	if err != nil {
		return err
	}

	if res.Outcome == supervisor.AlreadyRunning {
		fmt.Printf("%s\n", warnStyle.Render(fmt.Sprintf("Session %q is already running.", rt.cfg.Session.Name)))
		fmt.Printf("  attach: %s\n", hintStyle.Render(res.AttachCommand))
		fmt.Printf("  stop:   %s\n", hintStyle.Render("sentinel stop"))
		return nil
	}

	fmt.Printf("%s\n", activeStyle.Render(fmt.Sprintf("Session %q started.", rt.cfg.Session.Name)))
	fmt.Printf("  attach: %s\n", hintStyle.Render(res.AttachCommand))

	if rt.cfg.Supervisor.OfferAttach && newConfirmer().Confirm("Attach to the session now?") {
		return attachSession(rt.cfg.Session.Socket, rt.cfg.Session.Name)
	}
	return nil
}

// attachSession blocks the caller's foreground on the tmux session. This
// is a terminal convenience outside the core contract; the session keeps
// running after detach.
func attachSession(socket, name string) error {
	attach := tmux.CommandWithSocket(socket, "attach-session", "-t", name)
	attach.Stdin = os.Stdin
	attach.Stdout = os.Stdout
	attach.Stderr = os.Stderr
	if err := attach.Run(); err != nil {
		return fmt.Errorf("failed to attach to session %s: %w", name, err)
	}
	return nil
}
