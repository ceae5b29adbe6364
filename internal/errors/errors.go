package errors

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Network errors (NET-001 to NET-099)
	ErrCodeNetworkUnreachable ErrorCode = "NET-001"
	ErrCodeNetworkTimeout     ErrorCode = "NET-002"

	// Auth errors (AUTH-001 to AUTH-099)
	ErrCodeLoginRejected  ErrorCode = "AUTH-001"
	ErrCodeSessionExpired ErrorCode = "AUTH-002"
	ErrCodeLoginRequired  ErrorCode = "AUTH-003"

	// Permission errors (PERM-001 to PERM-099)
	ErrCodeForbidden ErrorCode = "PERM-001"
	ErrCodeWrongRole ErrorCode = "PERM-002"

	// Resource errors (RES-001 to RES-099)
	ErrCodeNotFound ErrorCode = "RES-001"

	// Validation errors (VALID-001 to VALID-099)
	ErrCodeValidationFailed ErrorCode = "VALID-001"

	// Response errors (RESP-001 to RESP-099)
	ErrCodeBadResponse ErrorCode = "RESP-001"
	ErrCodeServerError ErrorCode = "RESP-002"

	// Storage errors (STORE-001 to STORE-099)
	ErrCodeStorageFailed ErrorCode = "STORE-001"
)

// ClientError represents an enhanced error with code, suggestions, and the
// redirect target the caller must navigate to before rendering anything else.
type ClientError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string

	// RedirectTo is set when the error demands a navigation side effect
	// (session expired, login required) instead of inline rendering.
	RedirectTo string

	// Fields carries field-keyed validation messages from the backend.
	Fields map[string][]string

	Cause error
}

// Error implements the error interface
func (e *ClientError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Fields) > 0 {
		names := make([]string, 0, len(e.Fields))
		for name := range e.Fields {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			b.WriteString(fmt.Sprintf("\n  %s: %s", name, strings.Join(e.Fields[name], "; ")))
		}
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
func (e *ClientError) Unwrap() error {
	return e.Cause
}

// New creates a new ClientError
func New(code ErrorCode, message string) *ClientError {
	return &ClientError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new ClientError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *ClientError {
	return &ClientError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *ClientError) WithSuggestion(suggestion string) *ClientError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithRedirect records the navigation target the error demands
func (e *ClientError) WithRedirect(target string) *ClientError {
	e.RedirectTo = target
	return e
}

// CodeOf extracts the error code from err, or "" when err carries none.
func CodeOf(err error) ErrorCode {
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// IsAuth reports whether err invalidates the session (login rejected, 401).
func IsAuth(err error) bool {
	switch CodeOf(err) {
	case ErrCodeLoginRejected, ErrCodeSessionExpired, ErrCodeLoginRequired:
		return true
	default:
		return false
	}
}

// IsNetwork reports whether err is a transport-level failure. Network errors
// are never fatal to a screen; they degrade to a retryable notice.
func IsNetwork(err error) bool {
	switch CodeOf(err) {
	case ErrCodeNetworkUnreachable, ErrCodeNetworkTimeout:
		return true
	default:
		return false
	}
}

// RedirectOf returns the navigation target carried by err, if any.
func RedirectOf(err error) (string, bool) {
	var ce *ClientError
	if errors.As(err, &ce) && ce.RedirectTo != "" {
		return ce.RedirectTo, true
	}
	return "", false
}

// Common error constructors for frequently used errors

// NewNetworkError creates a transport-level failure error
func NewNetworkError(cause error) *ClientError {
	return Wrap(ErrCodeNetworkUnreachable, "could not reach the job board server", cause).
		WithSuggestion("Check your network connection").
		WithSuggestion("Retry the request")
}

// NewTimeoutError creates a request timeout error
func NewTimeoutError(cause error) *ClientError {
	return Wrap(ErrCodeNetworkTimeout, "the server took too long to respond", cause).
		WithSuggestion("Retry the request").
		WithSuggestion("Increase the timeout in the config file if this keeps happening")
}

// NewLoginRejectedError creates a credential rejection error
func NewLoginRejectedError(message string) *ClientError {
	if message == "" {
		message = "login failed"
	}
	return New(ErrCodeLoginRejected, message).
		WithSuggestion("Check your username and password")
}

// NewSessionExpiredError creates a 401 error carrying the login redirect.
// The session has already been cleared by the time this error is returned.
func NewSessionExpiredError(redirect string) *ClientError {
	return New(ErrCodeSessionExpired, "your session is no longer valid").
		WithSuggestion("Run 'unijobs login' to sign in again").
		WithRedirect(redirect)
}

// NewForbiddenError creates a 403 error. The session is preserved; the
// message is rendered inline.
func NewForbiddenError(detail string) *ClientError {
	msg := "you do not have permission to do that"
	if detail != "" {
		msg = detail
	}
	return New(ErrCodeForbidden, msg)
}

// NewNotFoundError creates a 404 error with a contextual resource name
func NewNotFoundError(what string) *ClientError {
	return New(ErrCodeNotFound, fmt.Sprintf("%s not found", what)).
		WithSuggestion("It may have been removed or deactivated")
}

// NewValidationError creates a 4xx error with field-keyed messages.
// Every field's errors are surfaced; none are swallowed.
func NewValidationError(fields map[string][]string) *ClientError {
	err := New(ErrCodeValidationFailed, "the server rejected the submitted data")
	err.Fields = fields
	return err
}

// NewBadResponseError creates an error for unparseable server responses
func NewBadResponseError(cause error) *ClientError {
	return Wrap(ErrCodeBadResponse, "could not parse server response", cause)
}

// ClassifyTransport maps a fetch-level failure to a network or timeout error.
func ClassifyTransport(err error) *ClientError {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return NewTimeoutError(err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return NewTimeoutError(err)
	}
	return NewNetworkError(err)
}
