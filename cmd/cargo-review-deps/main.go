// Package main is the entry point for the cargo-review-deps subcommand.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/reviewdeps/cmd/cargo-review-deps/commands"
	"go.trai.ch/reviewdeps/internal/app"
	_ "go.trai.ch/reviewdeps/internal/wiring"
)

// exitFailure is the exit status cargo uses for failed commands.
const exitFailure = 101

// subcommandName is the argument cargo inserts when invoking `cargo review-deps`.
const subcommandName = "review-deps"

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, error)

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

	if len(args) > 0 && args[0] == subcommandName {
		args = args[1:]
	}

	components, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "error: "+err.Error())
		return exitFailure
	}

	if l, ok := components.Logger.(interface{ SetOutput(io.Writer) }); ok {
		l.SetOutput(stderr)
	}
	components.App.WithOutput(stdout, stderr)

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return exitFailure
	}
	return 0
}
