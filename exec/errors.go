package exec

import "fmt"

// ExitError reports a child that exited with a non-zero code. It is returned
// by Try.
type ExitError struct {
	// Command is the rendered command line.
	Command string

	// ExitCode is the child's exit code.
	ExitCode int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("command %q exited with status %d", e.Command, e.ExitCode)
}
