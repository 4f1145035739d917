// Package perf produces best-effort performance summaries of the monitored
// task. The performance record on disk is owned and written exclusively by
// the monitor; Sentinel never parses it. Instead it shells out to the
// monitor's own reporting entry point and relays the output.
//
// A summary is three-valued: data, no data yet, or a fatal error. Only
// context cancellation is fatal here; a missing record or a failing
// reporting command both degrade to "no data yet", never to a failure.
package perf

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"time"
)

// reportTimeout bounds the reporting subprocess. The monitor contract says
// --performance exits promptly; a monitor that hangs instead must not hang
// stop or status.
const reportTimeout = 15 * time.Second

// Summary is the outcome of a report attempt. Available distinguishes
// "here is the data" from "no data yet" without conflating the latter
// with a true failure.
type Summary struct {
	// Available is true when Text holds a report produced by the monitor.
	Available bool
	// Text is the monitor's human-readable report output.
	Text string
}

// Runner invokes the monitor's reporting command.
type Runner struct {
	// RecordPath is the performance record the monitor writes. If the
	// record does not exist there is nothing to report and the command
	// is not run at all.
	RecordPath string
	// Command is the monitor reporting invocation, argv style
	// (e.g. ["python3", "alert_monitor.py", "--performance"]).
	Command []string
	// Dir is the working directory for the reporting command, normally
	// the supervisor's installation directory.
	Dir string
}

// Report runs the monitor's reporting command and returns its output.
//
// Returns Summary{Available: false} when the record is missing, the
// command is not configured, or the command fails: the caller shows a
// "no data" message in all of those cases. The only returned error is
// the context's, so an in-flight stop is never failed by reporting.
func (r *Runner) Report(ctx context.Context) (Summary, error) {
	if r.RecordPath != "" {
		if _, err := os.Stat(r.RecordPath); err != nil {
			return Summary{}, nil
		}
	}
	if len(r.Command) == 0 {
		return Summary{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, reportTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.Command[0], r.Command[1:]...)
	cmd.Dir = r.Dir

	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		if cause := context.Cause(ctx); cause == context.Canceled {
			return Summary{}, cause
		}
		return Summary{}, nil
	}

	text := strings.TrimRight(out.String(), "\n")
	if text == "" {
		return Summary{}, nil
	}
	return Summary{Available: true, Text: text}, nil
}

// Describe renders a Summary for display, substituting the "no data"
// message when nothing is available.
func Describe(s Summary) string {
	if !s.Available {
		return "No performance data available yet."
	}
	return s.Text
}
