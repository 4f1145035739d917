// Package pidfile reads and removes the advisory PID marker written by the
// monitor process. The marker is best-effort only: session existence, not
// the marker, decides whether the monitor is running. The supervisor uses
// the marker solely to report whether the recorded process still responds.
package pidfile

import (
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/tradewatch/sentinel/internal/errors"
)

// File is a handle to a PID marker at a fixed path.
type File struct {
	path string
}

// New returns a handle for the PID marker at path. The file itself is
// created by the monitor process, never by the supervisor.
func New(path string) *File {
	return &File{path: path}
}

// Path returns the marker's filesystem path.
func (f *File) Path() string {
	return f.path
}

// Read returns the process id recorded in the marker.
// Returns ErrNoPIDFile if the marker does not exist, or ErrInvalidInput
// if the contents are not a decimal process id.
func (f *File) Read() (int, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, errors.ErrNoPIDFile
		}
		return 0, errors.Wrap(err, "failed to read pid file")
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return 0, errors.Wrapf(errors.ErrInvalidInput, "pid file %s contains %q", f.path, strings.TrimSpace(string(data)))
	}
	return pid, nil
}

// Remove deletes the marker. Removing an absent marker is not an error:
// stop performs this cleanup unconditionally.
func (f *File) Remove() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to remove pid file")
	}
	return nil
}

// Exists reports whether the marker is present.
func (f *File) Exists() bool {
	_, err := os.Stat(f.path)
	return err == nil
}

// Alive checks if a process with the given PID exists.
// Uses kill(pid, 0) which checks for process existence without sending a signal.
func Alive(pid int) bool {
	if pid <= 0 {
		return false
	}
	err := syscall.Kill(pid, 0)
	return err == nil
}
