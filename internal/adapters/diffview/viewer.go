// Package diffview runs an external tool to compare two source trees.
package diffview

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"go.trai.ch/reviewdeps/internal/core/domain"
	"go.trai.ch/reviewdeps/internal/core/ports"
	"go.trai.ch/zerr"
)

// exitDifferent is the exit status diff uses to report that the inputs differ.
const exitDifferent = 1

// Viewer implements ports.Viewer by running the configured comparison command.
type Viewer struct {
	runner   ports.CommandRunner
	command  []string
	lookPath func(string) (string, error)
	stdout   io.Writer
	stderr   io.Writer
}

// NewViewer creates a Viewer running cfg.DiffCommand with output on the process stdout.
func NewViewer(runner ports.CommandRunner, cfg *domain.Config) *Viewer {
	return &Viewer{
		runner:   runner,
		command:  cfg.DiffCommand,
		lookPath: exec.LookPath,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
}

// Compare runs the comparison command on a and b.
// Exit status 1 (differences found) counts as success.
func (v *Viewer) Compare(ctx context.Context, a, b string) error {
	name := v.command[0]
	if _, err := v.lookPath(name); err != nil {
		return zerr.With(domain.ErrDiffToolMissing, "command", name)
	}

	args := make([]string, 0, len(v.command)+1)
	args = append(args, v.command[1:]...)
	args = append(args, a, b)

	err := v.runner.Run(ctx, domain.Command{Name: name, Args: args}, v.stdout, v.stderr)
	if err == nil {
		return nil
	}

	var exitErr *domain.ExitError
	if errors.As(err, &exitErr) && exitErr.Code == exitDifferent {
		return nil
	}
	if errors.Is(err, exec.ErrNotFound) {
		return zerr.With(domain.ErrDiffToolMissing, "command", name)
	}

	return zerr.With(zerr.Wrap(err, domain.ErrDiffFailed.Error()), "command", name)
}
