// Package trash moves paths into the platform's recoverable trash.
package trash

import (
	"context"
	"os/exec"

	"go.trai.ch/fclean/internal/core/ports"
)

var _ ports.Trasher = (*Trash)(nil)

// Runner executes an external helper and returns its combined output.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// LookPath reports where an executable lives, or an error when it is not installed.
type LookPath func(file string) (string, error)

// Trash implements ports.Trasher with one strategy per operating system family.
type Trash struct {
	run      Runner
	lookPath LookPath
}

// New creates a Trash that shells out to the real platform helpers.
func New() *Trash {
	return NewWithRunner(execRunner, exec.LookPath)
}

// NewWithRunner creates a Trash with a substitute process runner.
func NewWithRunner(run Runner, lookPath LookPath) *Trash {
	return &Trash{run: run, lookPath: lookPath}
}

// MoveToTrash blocks until the platform facility has handled path.
func (t *Trash) MoveToTrash(ctx context.Context, path string) error {
	return t.moveToTrash(ctx, path)
}

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput() //nolint:gosec // helper names are fixed
}
