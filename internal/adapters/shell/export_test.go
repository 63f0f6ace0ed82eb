package shell

import "io"

// NewRunnerWithTerminal creates a Runner with a fixed terminal answer.
func NewRunnerWithTerminal(isTerminal bool) *Runner {
	return &Runner{isTerminal: func(io.Writer) bool { return isTerminal }}
}
