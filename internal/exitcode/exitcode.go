package exitcode

import (
	"os"
	"strings"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// AuthError indicates an authentication failure (missing or invalid session)
	AuthError = 3

	// ForbiddenError indicates the current role is not permitted the operation
	ForbiddenError = 4

	// NetworkError indicates a network connectivity issue
	NetworkError = 5

	// Interrupted indicates the process was cancelled by the user
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}

	Exit(DetermineExitCode(err))
}

// DetermineExitCode analyzes an error and returns the appropriate exit code
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	errMsg := strings.ToLower(err.Error())

	// Authorization errors
	if strings.Contains(errMsg, "not permitted") || strings.Contains(errMsg, "forbidden") {
		return ForbiddenError
	}

	// Authentication errors
	if strings.Contains(errMsg, "unauthorized") || strings.Contains(errMsg, "not logged in") {
		return AuthError
	}
	if strings.Contains(errMsg, "session") && strings.Contains(errMsg, "expired") {
		return AuthError
	}

	// Network errors
	if strings.Contains(errMsg, "connection") || strings.Contains(errMsg, "timeout") {
		return NetworkError
	}
	if strings.Contains(errMsg, "unreachable") {
		return NetworkError
	}

	// Usage errors
	if strings.Contains(errMsg, "unknown command") || strings.Contains(errMsg, "required flag") {
		return UsageError
	}
	if strings.Contains(errMsg, "invalid flag") || strings.Contains(errMsg, "missing argument") {
		return UsageError
	}

	return GeneralError
}

// Description returns a human-readable description of an exit code
func Description(code int) string {
	switch code {
	case Success:
		return "Success"
	case GeneralError:
		return "General error"
	case UsageError:
		return "Usage error (invalid flags or arguments)"
	case AuthError:
		return "Authentication error"
	case ForbiddenError:
		return "Operation not permitted for current role"
	case NetworkError:
		return "Network error"
	case Interrupted:
		return "Interrupted"
	default:
		return "Unknown error"
	}
}
