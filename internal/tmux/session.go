package tmux

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/tradewatch/sentinel/internal/errors"
)

// commandTimeout bounds every individual tmux invocation. None of the
// session operations block legitimately; a hung tmux server should not
// hang the supervisor.
const commandTimeout = 5 * time.Second

// validSessionNameRe validates session names before they reach tmux.
// Dots and colons make tmux target resolution fail silently, and shell
// metacharacters would corrupt the send-keys command line.
var validSessionNameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidateSessionName checks that a session name contains only safe characters.
func ValidateSessionName(name string) error {
	if name == "" || !validSessionNameRe.MatchString(name) {
		return errors.Wrapf(errors.ErrInvalidInput, "session name %q must match %s", name, validSessionNameRe.String())
	}
	return nil
}

// HasSession reports whether a session with the given name exists on the
// socket. tmux exits non-zero both when the session is absent and when no
// server is running; both mean "no session" here.
func HasSession(socket, name string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	return CommandContextWithSocket(ctx, socket, "has-session", "-t", name).Run() == nil
}

// NewSession creates a new detached session with the given name, working
// directory, and primary window name.
func NewSession(socket, name, workDir, windowName string) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	cmd := CommandContextWithSocket(ctx, socket,
		"new-session",
		"-d",
		"-s", name,
		"-n", windowName,
		"-c", workDir,
	)
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "failed to create session %s", name)
	}
	return nil
}

// NewWindow adds a window to an existing session. The window starts a
// plain shell in workDir.
func NewWindow(socket, session, windowName, workDir string) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	cmd := CommandContextWithSocket(ctx, socket,
		"new-window",
		"-t", session,
		"-n", windowName,
		"-c", workDir,
	)
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "failed to create window %s", windowName)
	}
	return nil
}

// SelectWindow gives a window focus within its session.
func SelectWindow(socket, session, windowName string) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	target := fmt.Sprintf("%s:%s", session, windowName)
	cmd := CommandContextWithSocket(ctx, socket, "select-window", "-t", target)
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "failed to select window %s", target)
	}
	return nil
}

// ListWindows returns the window names of a session in index order.
func ListWindows(socket, session string) ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	cmd := CommandContextWithSocket(ctx, socket, "list-windows", "-t", session, "-F", "#{window_name}")
	output, err := cmd.Output()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list windows for session %s", session)
	}

	var windows []string
	for _, line := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			windows = append(windows, line)
		}
	}
	return windows, nil
}

// SendKeys sends a literal command line to a window, followed by Enter.
func SendKeys(socket, session, windowName, commandLine string) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	target := fmt.Sprintf("%s:%s", session, windowName)
	cmd := CommandContextWithSocket(ctx, socket, "send-keys", "-t", target, commandLine, "Enter")
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "failed to send keys to %s", target)
	}
	return nil
}

// SendInterrupt sends Ctrl+C to a window's foreground process to request
// a graceful stop.
func SendInterrupt(socket, session, windowName string) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	target := fmt.Sprintf("%s:%s", session, windowName)
	cmd := CommandContextWithSocket(ctx, socket, "send-keys", "-t", target, "C-c")
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "failed to send interrupt to %s", target)
	}
	return nil
}

// KillSession destroys a session and everything in it. Killing a session
// that no longer exists is not an error: the monitor may have exited
// between the graceful interrupt and the kill.
func KillSession(socket, name string) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	cmd := CommandContextWithSocket(ctx, socket, "kill-session", "-t", name)
	if err := cmd.Run(); err != nil {
		if !IsSessionNotFoundError(err) && HasSession(socket, name) {
			return errors.Wrapf(err, "failed to kill session %s", name)
		}
	}
	return nil
}

// KillServer kills the tmux server for the given socket name. This is more
// thorough than kill-session: it terminates the server itself and all
// sessions within it, preventing orphaned per-socket servers.
func KillServer(socket string) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	return CommandContextWithSocket(ctx, socket, "kill-server").Run()
}

// AttachCommand returns the shell command a user can run to attach to the
// session in their own terminal.
func AttachCommand(socket, name string) string {
	return fmt.Sprintf("tmux -L %s attach -t %s", socket, name)
}

// IsSessionNotFoundError checks if the error indicates a tmux session was
// not found. This is expected when tearing down sessions that may have
// already exited.
func IsSessionNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "session not found") ||
		strings.Contains(errStr, "no server running") ||
		strings.Contains(errStr, "can't find session")
}
