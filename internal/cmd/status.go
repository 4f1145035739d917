package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tradewatch/sentinel/internal/perf"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show alert monitor status",
	Long: `Display whether the alert monitor session is active, its windows,
whether the recorded monitor process still responds, and a best-effort
summary of recent signal performance. Status never changes any state.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	rt, err := buildRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	st, err := rt.sup.ObserveStatus(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", headerStyle.Render("Session:"), rt.cfg.Session.Name)

	if !st.Active {
		fmt.Printf("%s %s\n", headerStyle.Render("State:  "), inactiveStyle.Render("Inactive"))
		fmt.Printf("\n%s\n%s\n", headerStyle.Render("Performance"), perf.Describe(st.Performance))
		return nil
	}

	fmt.Printf("%s %s\n", headerStyle.Render("State:  "), activeStyle.Render("Active"))
	if len(st.Windows) > 0 {
		fmt.Printf("%s %s\n", headerStyle.Render("Windows:"), strings.Join(st.Windows, ", "))
	}

	switch {
	case !st.HasPID:
		fmt.Printf("%s %s\n", headerStyle.Render("Monitor:"), inactiveStyle.Render("no PID marker"))
	case st.Responsive:
		fmt.Printf("%s %s\n", headerStyle.Render("Monitor:"), activeStyle.Render(fmt.Sprintf("responsive (PID %d)", st.PID)))
	default:
		fmt.Printf("%s %s\n", headerStyle.Render("Monitor:"), warnStyle.Render(fmt.Sprintf("unresponsive (PID %d)", st.PID)))
	}

	fmt.Printf("  attach: %s\n", hintStyle.Render(rt.sup.AttachCommand()))
	fmt.Printf("\n%s\n%s\n", headerStyle.Render("Performance (last 7 periods)"), perf.Describe(st.Performance))
	return nil
}
