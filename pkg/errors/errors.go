// Package errors defines the sentinel errors of the counting engine and
// maps fatal errors to process exit codes for the CLI.
package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrDiscovery            = errors.New("discovery failed")
	ErrFileAccess           = errors.New("file access failed")
	ErrPipeline             = errors.New("pipeline failure")
)

// RunError attaches context to a sentinel while staying matchable with
// errors.Is.
type RunError struct {
	Err     error
	Message string
}

func (e *RunError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
}

func (e *RunError) Unwrap() error {
	return e.Err
}

func New(sentinel error, message string) *RunError {
	return &RunError{
		Err:     sentinel,
		Message: message,
	}
}

func Newf(sentinel error, format string, args ...any) *RunError {
	return &RunError{
		Err:     sentinel,
		Message: fmt.Sprintf(format, args...),
	}
}

// ExitCode maps a fatal error to the process exit code the CLI should
// terminate with. Per-file errors never reach this: they are logged and
// skipped inside the engine.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrInvalidConfiguration):
		return 2
	case errors.Is(err, ErrPipeline):
		return 3
	default:
		return 1
	}
}
