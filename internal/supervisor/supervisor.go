// Package supervisor implements the process-supervision contract for the
// alert monitor: exactly one named multiplexer session hosting the
// long-lived monitor task, with idempotent start, stop, and status
// operations.
//
// The session's existence is the single source of truth for whether the
// monitor is running. The PID marker the monitor writes is advisory and
// only feeds the responsive/unresponsive diagnostic in status output.
//
// The state machine is deliberately small:
//
//	NoSession --start--> SessionRunning
//	SessionRunning --start--> SessionRunning   (reports already running)
//	SessionRunning --stop--> NoSession         (graceful, or forced after the grace interval)
//	NoSession --stop--> NoSession              (reports not running)
//
// status observes {NoSession, SessionRunning} and never transitions state.
package supervisor

import (
	"context"
	"time"

	"github.com/kballard/go-shellquote"

	"github.com/tradewatch/sentinel/internal/errors"
	"github.com/tradewatch/sentinel/internal/logging"
	"github.com/tradewatch/sentinel/internal/perf"
	"github.com/tradewatch/sentinel/internal/pidfile"
)

// DefaultGracePeriod is how long stop waits after the interrupt before
// escalating to a forced kill, when no other interval is configured.
const DefaultGracePeriod = 2 * time.Second

// Reporter produces a best-effort performance summary of the monitored
// task. Implementations must degrade missing data or a failing reporting
// command to Summary{Available: false}, never to an error.
type Reporter interface {
	Report(ctx context.Context) (perf.Summary, error)
}

// Options configures a Supervisor.
type Options struct {
	// SessionName is the fixed name of the managed session.
	SessionName string
	// MonitorWindow is the primary window running the monitor task.
	MonitorWindow string
	// LogsWindow is the secondary window reserved for log inspection.
	LogsWindow string
	// WorkDir is the supervisor's resolved installation directory. The
	// session is rooted here so the monitor's relative paths resolve
	// regardless of the caller's working directory.
	WorkDir string
	// MonitorCommand launches the monitor task, argv style.
	MonitorCommand []string
	// GracePeriod is the bounded wait between the graceful interrupt and
	// the forced kill. Zero falls back to DefaultGracePeriod.
	GracePeriod time.Duration
}

// Supervisor manages the single named monitor session.
type Supervisor struct {
	opts     Options
	backend  Backend
	pid      *pidfile.File
	reporter Reporter
	log      *logging.Logger

	// sleep and alive are injected in tests so the grace interval and
	// PID liveness check run without real time or real processes.
	sleep func(time.Duration)
	alive func(pid int) bool
}

// New creates a Supervisor over the given backend. The reporter and
// logger may be nil; reporting then always yields "no data" and logging
// is discarded.
func New(opts Options, backend Backend, pid *pidfile.File, reporter Reporter, log *logging.Logger) *Supervisor {
	if opts.GracePeriod <= 0 {
		opts.GracePeriod = DefaultGracePeriod
	}
	if log == nil {
		log = logging.NopLogger()
	}
	return &Supervisor{
		opts:     opts,
		backend:  backend,
		pid:      pid,
		reporter: reporter,
		log:      log.WithSession(opts.SessionName),
		sleep:    time.Sleep,
		alive:    pidfile.Alive,
	}
}

// StartOutcome describes what start did.
type StartOutcome int

const (
	// StartedNew means a fresh session was created and the monitor launched.
	StartedNew StartOutcome = iota
	// AlreadyRunning means the session already existed; nothing was created.
	AlreadyRunning
)

// StartResult reports the outcome of Start along with the attach hint
// shown to the user.
type StartResult struct {
	Outcome       StartOutcome
	AttachCommand string
}

// Start creates the monitor session if it does not already exist.
//
// Starting an existing session is an idempotent no-op reported as
// AlreadyRunning. Start does not wait for the monitor to become ready:
// the launch is fire-and-forget, with lifecycle delegated to the
// multiplexer. The only error is a missing multiplexer or a failure to
// create the session and launch the monitor in it.
func (s *Supervisor) Start(ctx context.Context) (StartResult, error) {
	log := s.log.WithOperation("start")

	if err := s.backend.Available(); err != nil {
		return StartResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return StartResult{}, err
	}

	attach := s.backend.AttachCommand(s.opts.SessionName)

	if s.backend.HasSession(s.opts.SessionName) {
		log.Info("session already running")
		return StartResult{Outcome: AlreadyRunning, AttachCommand: attach}, nil
	}

	if err := s.backend.NewSession(s.opts.SessionName, s.opts.WorkDir, s.opts.MonitorWindow); err != nil {
		return StartResult{}, errors.NewSupervisorError("failed to create session", err).
			WithOperation("start").
			WithSession(s.opts.SessionName)
	}

	launch := shellquote.Join(s.opts.MonitorCommand...)
	if err := s.backend.SendKeys(s.opts.SessionName, s.opts.MonitorWindow, launch); err != nil {
		// A session without its monitor is worse than no session.
		_ = s.backend.KillSession(s.opts.SessionName)
		return StartResult{}, errors.NewSupervisorError("failed to launch monitor", err).
			WithOperation("start").
			WithSession(s.opts.SessionName).
			WithWindow(s.opts.MonitorWindow)
	}
	log.Info("monitor launched", "command", launch)

	// The logs window is a convenience shell, not part of the core
	// contract; its failure leaves the monitor running.
	if err := s.backend.NewWindow(s.opts.SessionName, s.opts.LogsWindow, s.opts.WorkDir); err != nil {
		log.Warn("failed to create logs window", "error", err.Error())
	} else {
		notice := shellquote.Join("echo",
			"This window is reserved for log inspection. Try: tail -f data/sentinel.log")
		if err := s.backend.SendKeys(s.opts.SessionName, s.opts.LogsWindow, notice); err != nil {
			log.Warn("failed to write logs window notice", "error", err.Error())
		}
	}

	if err := s.backend.SelectWindow(s.opts.SessionName, s.opts.MonitorWindow); err != nil {
		log.Warn("failed to select monitor window", "error", err.Error())
	}

	log.Info("session started")
	return StartResult{Outcome: StartedNew, AttachCommand: attach}, nil
}

// StopOutcome describes which path stop took.
type StopOutcome int

const (
	// StoppedGracefully means the monitor exited within the grace interval.
	StoppedGracefully StopOutcome = iota
	// StoppedForced means the session was destroyed after the monitor
	// ignored the interrupt for the whole grace interval.
	StoppedForced
	// NotRunning means no session existed; stop was a no-op.
	NotRunning
)

// StopResult reports the outcome of Stop along with the final performance
// snapshot captured before the monitor was interrupted.
type StopResult struct {
	Outcome     StopOutcome
	Performance perf.Summary
}

// Stop terminates the monitor session if one exists.
//
// The monitor first receives a graceful interrupt and the whole grace
// interval to act on it; only then is the session forcibly destroyed.
// The PID marker is removed unconditionally on every path, including the
// no-op path. Stop fails only when the multiplexer is unavailable; a
// monitor that refuses to die is escalated, not reported as failure.
func (s *Supervisor) Stop(ctx context.Context) (StopResult, error) {
	log := s.log.WithOperation("stop")

	if err := s.backend.Available(); err != nil {
		return StopResult{}, err
	}

	if !s.backend.HasSession(s.opts.SessionName) {
		log.Info("no session to stop")
		s.cleanupPIDMarker(log)
		return StopResult{Outcome: NotRunning}, nil
	}

	// Final snapshot before the monitor goes away. Failure to produce it
	// is swallowed: it must never block shutdown.
	var summary perf.Summary
	if s.reporter != nil {
		summary, _ = s.reporter.Report(ctx)
	}

	if err := s.backend.SendInterrupt(s.opts.SessionName, s.opts.MonitorWindow); err != nil {
		log.Warn("failed to send interrupt, will force kill", "error", err.Error())
	}

	// Single bounded delay, not a poll: the contract gives the monitor
	// the whole grace interval to shut down on its own.
	s.sleep(s.opts.GracePeriod)

	outcome := StoppedGracefully
	if s.backend.HasSession(s.opts.SessionName) {
		outcome = StoppedForced
		if err := s.backend.KillSession(s.opts.SessionName); err != nil {
			log.Warn("failed to kill session", "error", err.Error())
		}
		log.Info("session force killed", "grace_period", s.opts.GracePeriod.String())
	} else {
		log.Info("session stopped gracefully")
	}

	// Tear down the per-socket server so an empty tmux server is not
	// left orphaned behind the dedicated socket.
	if err := s.backend.KillServer(); err != nil {
		log.Debug("kill-server returned error", "error", err.Error())
	}

	s.cleanupPIDMarker(log)

	return StopResult{Outcome: outcome, Performance: summary}, nil
}

// cleanupPIDMarker removes the advisory PID file. Cleanup is unconditional
// and its failure never fails the surrounding operation.
func (s *Supervisor) cleanupPIDMarker(log *logging.Logger) {
	if s.pid == nil {
		return
	}
	if err := s.pid.Remove(); err != nil {
		log.Warn("failed to remove pid marker", "path", s.pid.Path(), "error", err.Error())
	}
}

// Status is a point-in-time observation of the managed session.
type Status struct {
	// Active is true when the session exists.
	Active bool
	// Windows enumerates the session's window names (active only).
	Windows []string
	// PID is the process id from the marker; HasPID is false when the
	// marker is absent or unreadable.
	PID    int
	HasPID bool
	// Responsive reports whether the marker's process id refers to a
	// live process. Meaningful only when HasPID is true.
	Responsive bool
	// Performance is the best-effort summary of recent monitor outcomes.
	Performance perf.Summary
}

// ObserveStatus inspects the session, the PID marker, and the performance
// record without mutating any of them.
//
// The PID marker is never removed here; only Stop deletes it. A missing
// or unreadable marker and a missing performance record degrade to
// absent fields, never to errors. The only error is a missing multiplexer.
func (s *Supervisor) ObserveStatus(ctx context.Context) (Status, error) {
	log := s.log.WithOperation("status")

	if err := s.backend.Available(); err != nil {
		return Status{}, err
	}

	st := Status{Active: s.backend.HasSession(s.opts.SessionName)}

	if st.Active {
		windows, err := s.backend.ListWindows(s.opts.SessionName)
		if err != nil {
			log.Warn("failed to list windows", "error", err.Error())
		}
		st.Windows = windows
	}

	if s.pid != nil {
		if pid, err := s.pid.Read(); err == nil {
			st.PID = pid
			st.HasPID = true
			st.Responsive = s.alive(pid)
		} else if !errors.Is(err, errors.ErrNoPIDFile) {
			log.Warn("failed to read pid marker", "error", err.Error())
		}
	}

	if s.reporter != nil {
		st.Performance, _ = s.reporter.Report(ctx)
	}

	return st, nil
}

// AttachCommand returns the command a user runs to attach to the session.
func (s *Supervisor) AttachCommand() string {
	return s.backend.AttachCommand(s.opts.SessionName)
}

// SessionName returns the fixed session name this supervisor manages.
func (s *Supervisor) SessionName() string {
	return s.opts.SessionName
}
