package domain

import "strconv"

// Command describes an external process invocation.
type Command struct {
	// Name is the executable name or path.
	Name string

	// Args are the arguments passed to the executable.
	Args []string

	// Dir is the working directory. Empty means the current directory.
	Dir string

	// Env holds extra "KEY=VALUE" pairs appended to the inherited environment.
	Env []string
}

// ExitError reports that a command ran but exited with a non-zero status.
type ExitError struct {
	Code int

	// Stderr holds the captured standard error, if it was captured.
	Stderr string
}

func (e *ExitError) Error() string {
	msg := "exit status " + strconv.Itoa(e.Code)
	if e.Stderr != "" {
		msg += "\n" + e.Stderr
	}
	return msg
}
