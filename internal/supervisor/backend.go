package supervisor

import (
	"github.com/tradewatch/sentinel/internal/tmux"
)

// Backend is the session-multiplexer capability the supervisor runs
// against. The OS-level session table is authoritative external state, so
// implementations must query it fresh on every call rather than caching.
// Tests substitute a fake backend to drive the state machine without
// spawning real processes.
type Backend interface {
	// Available reports whether the multiplexer tooling can be used at
	// all. A non-nil error is fatal for every supervisor operation.
	Available() error

	// HasSession reports whether the named session currently exists.
	HasSession(name string) bool

	// NewSession creates a detached session whose primary window runs a
	// shell in workDir.
	NewSession(name, workDir, windowName string) error

	// NewWindow adds a shell window to an existing session.
	NewWindow(session, windowName, workDir string) error

	// SelectWindow returns focus to a window within the session.
	SelectWindow(session, windowName string) error

	// ListWindows enumerates the session's window names.
	ListWindows(session string) ([]string, error)

	// SendKeys types a command line into a window and presses Enter.
	SendKeys(session, windowName, commandLine string) error

	// SendInterrupt asks the window's foreground process to stop (Ctrl+C).
	SendInterrupt(session, windowName string) error

	// KillSession destroys the session. Destroying an absent session
	// must not be an error.
	KillSession(name string) error

	// KillServer tears down the multiplexer server backing this scope,
	// if one exists. Best-effort.
	KillServer() error

	// AttachCommand returns the shell command a user runs to attach to
	// the session from their own terminal.
	AttachCommand(name string) string
}

// TmuxBackend implements Backend against a socket-scoped tmux server.
type TmuxBackend struct {
	// Socket is the tmux socket name (-L) all commands are scoped to.
	Socket string
}

// NewTmuxBackend returns a Backend bound to the given tmux socket.
// An empty socket falls back to the default Sentinel socket.
func NewTmuxBackend(socket string) *TmuxBackend {
	if socket == "" {
		socket = tmux.SocketName
	}
	return &TmuxBackend{Socket: socket}
}

func (b *TmuxBackend) Available() error {
	return tmux.Available()
}

func (b *TmuxBackend) HasSession(name string) bool {
	return tmux.HasSession(b.Socket, name)
}

func (b *TmuxBackend) NewSession(name, workDir, windowName string) error {
	return tmux.NewSession(b.Socket, name, workDir, windowName)
}

func (b *TmuxBackend) NewWindow(session, windowName, workDir string) error {
	return tmux.NewWindow(b.Socket, session, windowName, workDir)
}

func (b *TmuxBackend) SelectWindow(session, windowName string) error {
	return tmux.SelectWindow(b.Socket, session, windowName)
}

func (b *TmuxBackend) ListWindows(session string) ([]string, error) {
	return tmux.ListWindows(b.Socket, session)
}

func (b *TmuxBackend) SendKeys(session, windowName, commandLine string) error {
	return tmux.SendKeys(b.Socket, session, windowName, commandLine)
}

func (b *TmuxBackend) SendInterrupt(session, windowName string) error {
	return tmux.SendInterrupt(b.Socket, session, windowName)
}

func (b *TmuxBackend) KillSession(name string) error {
	return tmux.KillSession(b.Socket, name)
}

func (b *TmuxBackend) KillServer() error {
	return tmux.KillServer(b.Socket)
}

func (b *TmuxBackend) AttachCommand(name string) string {
	return tmux.AttachCommand(b.Socket, name)
}

// Verify interface implementation at compile time.
var _ Backend = (*TmuxBackend)(nil)
