// Package shell provides the process runner used for cargo and the diff tool.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/creack/pty"
	"go.trai.ch/reviewdeps/internal/core/domain"
	"go.trai.ch/reviewdeps/internal/ui/output"
	"go.trai.ch/zerr"
)

// Runner implements ports.CommandRunner using os/exec and pty.
type Runner struct {
	isTerminal func(io.Writer) bool
}

// NewRunner creates a new Runner.
func NewRunner() *Runner {
	return &Runner{isTerminal: output.IsTerminal}
}

// Run executes c and waits for it to exit, streaming its output.
// When stdout is a terminal the command runs in a PTY so that it keeps its colours.
func (r *Runner) Run(ctx context.Context, c domain.Command, stdout, stderr io.Writer) error {
	cmd := newCmd(ctx, c)

	var err error
	if r.isTerminal(stdout) {
		err = runPTY(cmd, stdout)
	} else {
		cmd.Stdout = stdout
		cmd.Stderr = stderr
		err = cmd.Run()
	}

	return commandError(c, err, "")
}

// Output executes c and returns its standard output.
func (r *Runner) Output(ctx context.Context, c domain.Command) ([]byte, error) {
	cmd := newCmd(ctx, c)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, commandError(c, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}

func newCmd(ctx context.Context, c domain.Command) *exec.Cmd {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...) //nolint:gosec // command comes from configuration
	cmd.Dir = c.Dir
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}
	return cmd
}

// runPTY starts cmd attached to a pseudo terminal and copies its merged output to w.
func runPTY(cmd *exec.Cmd, w io.Writer) error {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return err
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		// Reading the master returns EIO once the child side closes.
		_, _ = io.Copy(w, ptmx)
	}()

	err = cmd.Wait()
	<-ioDone
	_ = ptmx.Close()
	return err
}

func commandError(c domain.Command, err error, stderr string) error {
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		wrapped := zerr.Wrap(&domain.ExitError{Code: code, Stderr: stderr}, domain.ErrCommandFailed.Error())
		wrapped = zerr.With(wrapped, "command", c.Name)
		return zerr.With(wrapped, "exit_code", code)
	}

	return zerr.With(zerr.Wrap(err, domain.ErrCommandFailed.Error()), "command", c.Name)
}
