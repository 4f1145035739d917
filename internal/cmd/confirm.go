package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Confirmer asks the user a yes/no question. The supervisor's attach
// offer is interactive-only, so the default answer is always "no":
// non-interactive callers (scripts, CI, tests) never block on a prompt.
type Confirmer interface {
	Confirm(prompt string) bool
}

// terminalConfirmer prompts on a real terminal and treats anything but an
// explicit "y"/"yes" as no.
type terminalConfirmer struct {
	in  io.Reader
	out io.Writer
}

func (c *terminalConfirmer) Confirm(prompt string) bool {
	fmt.Fprintf(c.out, "%s [y/N]: ", prompt)

	scanner := bufio.NewScanner(c.in)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}

// noConfirmer always answers no.
type noConfirmer struct{}

func (noConfirmer) Confirm(string) bool { return false }

// newConfirmer returns a terminal-backed confirmer when stdin is a
// terminal, and the always-no confirmer otherwise.
func newConfirmer() Confirmer {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return &terminalConfirmer{in: os.Stdin, out: os.Stdout}
	}
	return noConfirmer{}
}
