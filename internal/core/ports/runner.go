package ports

import (
	"context"
	"io"

	"go.trai.ch/reviewdeps/internal/core/domain"
)

// CommandRunner runs external processes.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run executes cmd, streaming its output to stdout and stderr, and waits
	// for it to exit. A non-zero exit is reported as an error wrapping
	// *domain.ExitError.
	Run(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) error

	// Output executes cmd and returns its standard output. Standard error is
	// attached to the returned error when the command fails.
	Output(ctx context.Context, cmd domain.Command) ([]byte, error)
}
