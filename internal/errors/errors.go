package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Session errors (SESSION-001 to SESSION-099)
	ErrCodeSessionNotFound ErrorCode = "SESSION-001"
	ErrCodeSessionInvalid  ErrorCode = "SESSION-002"
	ErrCodeSessionExpired  ErrorCode = "SESSION-003"
	ErrCodeSessionPersist  ErrorCode = "SESSION-004"
	ErrCodeSessionCorrupt  ErrorCode = "SESSION-005"

	// API errors (API-001 to API-099)
	ErrCodeAPIUnauthorized ErrorCode = "API-001"
	ErrCodeAPIRequest      ErrorCode = "API-002"
	ErrCodeAPIResponse     ErrorCode = "API-003"
	ErrCodeAPIServer       ErrorCode = "API-004"
	ErrCodeAPIValidation   ErrorCode = "API-005"

	// Role errors (ROLE-001 to ROLE-099)
	ErrCodeRoleUnknown    ErrorCode = "ROLE-001"
	ErrCodeRoleNotAllowed ErrorCode = "ROLE-002"

	// Route errors (ROUTE-001 to ROUTE-099)
	ErrCodeRouteUnknown ErrorCode = "ROUTE-001"

	// Notification errors (NOTIFY-001 to NOTIFY-099)
	ErrCodeNotifyFetch    ErrorCode = "NOTIFY-001"
	ErrCodeNotifyMarkRead ErrorCode = "NOTIFY-002"

	// Config errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigInvalid ErrorCode = "CONFIG-001"
	ErrCodeConfigRead    ErrorCode = "CONFIG-002"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileReadFailed  ErrorCode = "IO-001"
	ErrCodeFileWriteFailed ErrorCode = "IO-002"
	ErrCodeFileUnmarshal   ErrorCode = "IO-003"
)

// SabhaError represents an enhanced error with code, suggestions, and documentation
type SabhaError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	Cause       error
}

// Error implements the error interface
func (e *SabhaError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *SabhaError) Unwrap() error {
	return e.Cause
}

// New creates a new SabhaError
func New(code ErrorCode, message string) *SabhaError {
	return &SabhaError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new SabhaError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *SabhaError {
	return &SabhaError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *SabhaError) WithSuggestion(suggestion string) *SabhaError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *SabhaError) WithSuggestions(suggestions ...string) *SabhaError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// Common error constructors for frequently used errors

// NewNotLoggedInError creates an error for operations requiring a session
func NewNotLoggedInError() *SabhaError {
	return New(ErrCodeSessionNotFound, "not logged in").
		WithSuggestion("Run 'sabha login' to authenticate")
}

// NewSessionExpiredError creates an expired-session error
func NewSessionExpiredError() *SabhaError {
	return New(ErrCodeSessionExpired, "session has expired").
		WithSuggestion("Run 'sabha login' to re-authenticate")
}

// NewUnauthorizedError creates an error for a rejected token
func NewUnauthorizedError() *SabhaError {
	return New(ErrCodeAPIUnauthorized, "unauthorized: the server rejected the session token").
		WithSuggestion("Run 'sabha login' to re-authenticate")
}

// NewRoleNotAllowedError creates an error for a role/destination mismatch
func NewRoleNotAllowedError(role, destination string) *SabhaError {
	return New(ErrCodeRoleNotAllowed, fmt.Sprintf("role %s is not permitted to access %s", role, destination)).
		WithSuggestion("Ask an administrator if you believe you need access")
}

// NewRoleUnknownError creates an error for a role outside the enumeration
func NewRoleUnknownError(raw string) *SabhaError {
	return New(ErrCodeRoleUnknown, fmt.Sprintf("unrecognized role: %q", raw)).
		WithSuggestion("Log in again; if the problem persists contact an administrator")
}

// NewAPIRequestError creates an error for a failed outbound request
func NewAPIRequestError(cause error) *SabhaError {
	return Wrap(ErrCodeAPIRequest, "request failed", cause).
		WithSuggestion("Check your network connection").
		WithSuggestion("Verify the API URL with 'sabha config show'")
}

// NewAPIServerError creates an error for a non-2xx response
func NewAPIServerError(status int, body string) *SabhaError {
	msg := fmt.Sprintf("request failed with status %d", status)
	if body != "" {
		msg += ": " + body
	}
	return New(ErrCodeAPIServer, msg)
}

// NewConfigInvalidError creates a config validation error
func NewConfigInvalidError(details string) *SabhaError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", details)).
		WithSuggestion("Check ~/.sabha/config.yaml for syntax errors")
}

// NewFileUnmarshalError creates an unmarshal error
func NewFileUnmarshalError(path string, format string, cause error) *SabhaError {
	return Wrap(ErrCodeFileUnmarshal, fmt.Sprintf("failed to parse %s file: %s", format, path), cause).
		WithSuggestion("Check the file syntax and format").
		WithSuggestion(fmt.Sprintf("Ensure the file is valid %s", format))
}
