package output

import "errors"

// Process exit statuses. Anything the user can correct (arguments, a missing
// export, an entry date that cannot be read) is ExitUserError; failures of the
// filesystem underneath the journal root are ExitSystemError.
const (
	ExitSuccess     = 0
	ExitUserError   = 1
	ExitSystemError = 2
)

// ExitError pairs the one-line message shown to the user with the process
// status and the error that caused it. Only Message is printed; Cause stays
// reachable through errors.Is and errors.As for logging.
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

func (e *ExitError) Error() string { return e.Message }

func (e *ExitError) Unwrap() error { return e.Cause }

func newExitError(code int, message string, cause error) *ExitError {
	return &ExitError{Code: code, Message: message, Cause: cause}
}

// NewUserError reports a problem the user can fix.
func NewUserError(message string) *ExitError {
	return newExitError(ExitUserError, message, nil)
}

// NewUserErrorWithCause is NewUserError keeping the underlying error.
func NewUserErrorWithCause(message string, cause error) *ExitError {
	return newExitError(ExitUserError, message, cause)
}

// NewSystemErrorWithCause reports a failure of the environment, such as an
// unwritable journal root.
func NewSystemErrorWithCause(message string, cause error) *ExitError {
	return newExitError(ExitSystemError, message, cause)
}

// ExitCode maps err to a process status. Errors that never passed through
// this package (cobra flag parsing, for one) count as user errors.
func ExitCode(err error) int {
	var exitErr *ExitError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &exitErr):
		return exitErr.Code
	default:
		return ExitUserError
	}
}
