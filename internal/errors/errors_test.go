package errors

import (
	"fmt"
	"testing"
)

func TestSupervisorError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *SupervisorError
		want string
	}{
		{
			name: "bare message",
			err:  NewSupervisorError("something broke", nil),
			want: "supervisor error: something broke",
		},
		{
			name: "with cause",
			err:  NewSupervisorError("could not create session", ErrTmuxNotFound),
			want: "supervisor error: could not create session: tmux not found on PATH",
		},
		{
			name: "with context",
			err: NewSupervisorError("send-keys failed", nil).
				WithOperation("stop").
				WithSession("alert-monitor").
				WithWindow("monitor"),
			want: "supervisor error [op=stop, session=alert-monitor, window=monitor]: send-keys failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSupervisorError_Unwrapping(t *testing.T) {
	err := NewSupervisorError("session check failed", ErrTmuxNotFound)

	if !Is(err, ErrTmuxNotFound) {
		t.Error("Is(err, ErrTmuxNotFound) = false, want true")
	}

	var supErr *SupervisorError
	if !As(err, &supErr) {
		t.Fatal("As(err, &supErr) = false, want true")
	}
	if supErr.Unwrap() != ErrTmuxNotFound {
		t.Errorf("Unwrap() = %v, want ErrTmuxNotFound", supErr.Unwrap())
	}
}

func TestSupervisorError_WrappedInChain(t *testing.T) {
	base := NewSupervisorError("create failed", ErrTmuxNotFound).WithOperation("start")
	wrapped := fmt.Errorf("start: %w", base)

	if !Is(wrapped, ErrTmuxNotFound) {
		t.Error("sentinel not found through wrapped chain")
	}
	if !IsToolingMissing(wrapped) {
		t.Error("IsToolingMissing(wrapped) = false, want true")
	}
}

func TestIsToolingMissing(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"tmux missing", ErrTmuxNotFound, true},
		{"wrapped tmux missing", Wrap(ErrTmuxNotFound, "status"), true},
		{"missing pid marker", ErrNoPIDFile, false},
		{"unrelated", New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsToolingMissing(tt.err); got != tt.want {
				t.Errorf("IsToolingMissing() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}

	err := Wrapf(ErrNoPIDFile, "reading %s", "alert_monitor.pid")
	want := "reading alert_monitor.pid: pid file not found"
	if err.Error() != want {
		t.Errorf("Wrapf() = %q, want %q", err.Error(), want)
	}
}
