package spawn

import (
	"fmt"
	"io/fs"
	osexec "os/exec"

	"github.com/jmgilman/go/errors"
)

// ErrEmptyCommand is returned when an invocation has no command name.
var ErrEmptyCommand = errors.New(errors.CodeInvalidInput, "command name must not be empty")

// LaunchError represents a child process that could not be started.
// It implements errors.PlatformError.
type LaunchError struct {
	// Command is the command name that failed to start
	Command string

	// Args are the arguments it was called with
	Args []string

	// RunID identifies the run
	RunID string

	// Err is the underlying error from the operating system
	Err error
}

// Error implements the error interface.
func (e *LaunchError) Error() string {
	return fmt.Sprintf("[%s] %s: %v", e.Code(), e.Message(), e.Err)
}

// Code returns NOT_FOUND for unresolvable executables, INVALID_INPUT for an
// empty command name and EXECUTION_FAILED otherwise.
func (e *LaunchError) Code() errors.ErrorCode {
	switch {
	case errors.Is(e.Err, ErrEmptyCommand):
		return errors.CodeInvalidInput
	case errors.Is(e.Err, osexec.ErrNotFound), errors.Is(e.Err, fs.ErrNotExist):
		return errors.CodeNotFound
	default:
		return errors.CodeExecutionFailed
	}
}

// Classification returns ClassificationPermanent; launches are never retried.
func (e *LaunchError) Classification() errors.ErrorClassification {
	return errors.ClassificationPermanent
}

// Message returns the human readable part of the error.
func (e *LaunchError) Message() string {
	return fmt.Sprintf("failed to start %q", e.Command)
}

// Context returns the command, arguments and run id.
func (e *LaunchError) Context() map[string]interface{} {
	return map[string]interface{}{
		"command": e.Command,
		"args":    append([]string(nil), e.Args...),
		"run_id":  e.RunID,
	}
}

// Unwrap returns the underlying error.
func (e *LaunchError) Unwrap() error {
	return e.Err
}

// ProcessFailure represents a child that ran and exited non-zero without muting.
// Its message is the captured standard error, verbatim.
// It implements errors.PlatformError.
type ProcessFailure struct {
	// Command is the command name that was run
	Command string

	// Args are the arguments it was called with
	Args []string

	// RunID identifies the run
	RunID string

	// ExitCode is the exit code returned by the command
	ExitCode int

	// Stderr is the captured standard error
	Stderr string

	// Err is the error reported when waiting on the child
	Err error
}

// Error returns the captured standard error.
func (e *ProcessFailure) Error() string {
	return e.Stderr
}

// Code returns EXECUTION_FAILED.
func (e *ProcessFailure) Code() errors.ErrorCode {
	return errors.CodeExecutionFailed
}

// Classification returns ClassificationPermanent; failures are never retried.
func (e *ProcessFailure) Classification() errors.ErrorClassification {
	return errors.ClassificationPermanent
}

// Message returns the captured standard error.
func (e *ProcessFailure) Message() string {
	return e.Stderr
}

// Context returns the command, arguments, exit code and run id.
func (e *ProcessFailure) Context() map[string]interface{} {
	return map[string]interface{}{
		"command":   e.Command,
		"args":      append([]string(nil), e.Args...),
		"exit_code": e.ExitCode,
		"run_id":    e.RunID,
	}
}

// Unwrap returns the underlying wait error.
func (e *ProcessFailure) Unwrap() error {
	return e.Err
}

var (
	_ errors.PlatformError = (*LaunchError)(nil)
	_ errors.PlatformError = (*ProcessFailure)(nil)
)
