// Package main is the entry point for the fclean cache cleaner.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/grindlemire/graft"
	"go.trai.ch/fclean/cmd/fclean/commands"
	"go.trai.ch/fclean/internal/app"
	"go.trai.ch/fclean/internal/core/domain"
	_ "go.trai.ch/fclean/internal/wiring"
)

const shutdownTimeout = 2 * time.Second

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

// outputSetter is implemented by loggers that can be redirected.
type outputSetter interface {
	SetOutput(w io.Writer)
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, shutdownFor(c), err
	}))
}

// shutdownFor returns a cleanup that stops the tracer provider of c.
func shutdownFor(c *app.Components) func() {
	return func() {
		if c == nil || c.Shutdown == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = c.Shutdown(ctx)
	}
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	if cleanup != nil {
		defer cleanup()
	}

	if l, ok := components.Logger.(outputSetter); ok {
		l.SetOutput(stderr)
	}
	components.App.WithOutput(stdout)

	// Apply options
	for _, opt := range opts {
		opt(components.App)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		// The outcome already lists every failure.
		if errors.Is(err, domain.ErrCleanIncomplete) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
