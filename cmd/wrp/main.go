// Package main is the entry point for wrp.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/wrp/cmd/wrp/commands"
	"go.trai.ch/wrp/internal/app"
	"go.trai.ch/wrp/internal/core/domain"
	_ "go.trai.ch/wrp/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, error)

type shutdowner interface {
	Shutdown(ctx context.Context) error
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, err := provider(ctx)
	if err != nil {
		// The logger is not available if initialization failed.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	if s, ok := components.Tracer.(shutdowner); ok {
		defer func() { _ = s.Shutdown(context.Background()) }()
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		// Missing colors exit quietly; callers fall back to their own defaults.
		if errors.Is(err, domain.ErrNoColors) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
