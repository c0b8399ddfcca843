// Package prompt asks the user for confirmation on the terminal.
package prompt

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"go.trai.ch/fclean/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

var _ ports.Confirmer = (*Confirmer)(nil)

// Confirmer implements ports.Confirmer with a y/N question.
type Confirmer struct {
	in          io.Reader
	out         io.Writer
	interactive func() bool
}

// New creates a Confirmer reading stdin and writing the question to stderr.
func New() *Confirmer {
	return NewWithIO(os.Stdin, os.Stderr, IsInteractive)
}

// NewWithIO creates a Confirmer with custom streams and interactivity check.
func NewWithIO(in io.Reader, out io.Writer, interactive func() bool) *Confirmer {
	return &Confirmer{in: in, out: out, interactive: interactive}
}

// IsInteractive reports whether stdin is a terminal outside CI.
func IsInteractive() bool {
	ci := os.Getenv("CI")
	if ci == "true" || ci == "1" {
		return false
	}
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Confirm writes question followed by " [y/N] " and reads one line.
// Only "y" and "yes" accept; a non-interactive input declines without reading.
func (c *Confirmer) Confirm(question string) (bool, error) {
	if !c.interactive() {
		return false, nil
	}

	if _, err := io.WriteString(c.out, question+" [y/N] "); err != nil {
		return false, zerr.Wrap(err, "failed to write prompt")
	}

	line, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, zerr.Wrap(err, "failed to read answer")
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
