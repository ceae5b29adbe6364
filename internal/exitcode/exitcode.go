// Package exitcode maps client errors to process exit codes so scripts can
// branch on failure class.
package exitcode

import (
	"os"

	uniErrors "github.com/unijobs/unijobs/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// AuthError indicates a missing, rejected, or expired session
	AuthError = 3

	// PermissionError indicates the role is not allowed to do that
	PermissionError = 4

	// NotFound indicates the requested record does not exist
	NotFound = 5

	// ValidationError indicates the backend rejected the submitted data
	ValidationError = 6

	// NetworkError indicates a network connectivity issue
	NetworkError = 7

	// Interrupted indicates the user cancelled the operation
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	Exit(DetermineExitCode(err))
}

// DetermineExitCode maps the error's code onto an exit code. Errors without
// a code fall back to the general error.
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	switch uniErrors.CodeOf(err) {
	case uniErrors.ErrCodeLoginRejected, uniErrors.ErrCodeSessionExpired, uniErrors.ErrCodeLoginRequired:
		return AuthError
	case uniErrors.ErrCodeForbidden, uniErrors.ErrCodeWrongRole:
		return PermissionError
	case uniErrors.ErrCodeNotFound:
		return NotFound
	case uniErrors.ErrCodeValidationFailed:
		return ValidationError
	case uniErrors.ErrCodeNetworkUnreachable, uniErrors.ErrCodeNetworkTimeout:
		return NetworkError
	default:
		return GeneralError
	}
}
