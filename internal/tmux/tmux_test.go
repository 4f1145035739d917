package tmux

import (
	"context"
	"testing"
)

func TestSocketName(t *testing.T) {
	if SocketName == "" {
		t.Error("SocketName should not be empty")
	}
	if SocketName != "sentinel" {
		t.Errorf("SocketName = %q, want %q", SocketName, "sentinel")
	}
}

func TestCommandWithSocket(t *testing.T) {
	cmd := CommandWithSocket("custom", "list-sessions")
	args := cmd.Args

	if len(args) < 4 {
		t.Fatalf("Expected at least 4 args, got %d: %v", len(args), args)
	}

	if args[0] != "tmux" {
		t.Errorf("args[0] = %q, want %q", args[0], "tmux")
	}
	if args[1] != "-L" {
		t.Errorf("args[1] = %q, want %q", args[1], "-L")
	}
	if args[2] != "custom" {
		t.Errorf("args[2] = %q, want %q", args[2], "custom")
	}
	if args[3] != "list-sessions" {
		t.Errorf("args[3] = %q, want %q", args[3], "list-sessions")
	}
}

func TestCommandContextWithSocket(t *testing.T) {
	ctx := context.Background()
	cmd := CommandContextWithSocket(ctx, SocketName, "has-session", "-t", "alert-monitor")
	args := cmd.Args

	if len(args) < 6 {
		t.Fatalf("Expected at least 6 args, got %d: %v", len(args), args)
	}

	if args[0] != "tmux" {
		t.Errorf("args[0] = %q, want %q", args[0], "tmux")
	}
	if args[2] != SocketName {
		t.Errorf("args[2] = %q, want %q", args[2], SocketName)
	}
	if args[3] != "has-session" {
		t.Errorf("args[3] = %q, want %q", args[3], "has-session")
	}
}
