package cli

import "errors"

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: terminal errors, unexpected failures, or any error that
	// doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: invalid flag values or flag combinations.
	ExitUsage = 2

	// ExitDataErr indicates invalid or malformed data.
	// Use for: unreadable config files and unusable emoji lists.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: invalid palette colors or appearance values.
	ExitValidation = 5
)

// ExitErr carries an exit code alongside the error that caused it
type ExitErr struct {
	Code int
	Err  error
}

func (e *ExitErr) Error() string {
	return e.Err.Error()
}

func (e *ExitErr) Unwrap() error {
	return e.Err
}

// WithExitCode wraps err so that ExitCode reports code for it
func WithExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &ExitErr{Code: code, Err: err}
}

// ExitCode maps an error returned by a command to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitErr
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}
