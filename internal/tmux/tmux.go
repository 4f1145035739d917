// Package tmux provides centralized configuration and helpers for tmux
// operations.
//
// Sentinel scopes all of its tmux traffic to a dedicated socket so that the
// alert-monitor session cannot collide with (or be torn down by) a user's
// default tmux server. Every command takes the socket name explicitly;
// SocketName is the default when nothing else is configured.
package tmux

import (
	"context"
	"os/exec"

	"github.com/tradewatch/sentinel/internal/errors"
)

// SocketName is the default tmux socket name for Sentinel operations.
const SocketName = "sentinel"

// Available verifies that the tmux binary can be found on PATH.
// Returns ErrTmuxNotFound if it cannot; every supervisor operation
// treats that as a fatal precondition failure.
func Available() error {
	if _, err := exec.LookPath("tmux"); err != nil {
		return errors.ErrTmuxNotFound
	}
	return nil
}

// CommandWithSocket creates an exec.Cmd for tmux scoped to the given socket.
func CommandWithSocket(socket string, args ...string) *exec.Cmd {
	fullArgs := append([]string{"-L", socket}, args...)
	return exec.Command("tmux", fullArgs...)
}

// CommandContextWithSocket creates a context-aware exec.Cmd scoped to the
// given socket.
func CommandContextWithSocket(ctx context.Context, socket string, args ...string) *exec.Cmd {
	fullArgs := append([]string{"-L", socket}, args...)
	return exec.CommandContext(ctx, "tmux", fullArgs...)
}
