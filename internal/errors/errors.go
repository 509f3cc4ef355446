package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Gateway errors (API-001 to API-099)
	ErrCodeAPIConnectivity ErrorCode = "API-001"
	ErrCodeAPIRequest      ErrorCode = "API-002"
	ErrCodeAPIDecode       ErrorCode = "API-003"
	ErrCodeAPIBusiness     ErrorCode = "API-004"

	// Authentication errors (AUTH-001 to AUTH-099)
	ErrCodeAuthRequired      ErrorCode = "AUTH-001"
	ErrCodeAuthRejected      ErrorCode = "AUTH-002"
	ErrCodeAuthEmailRequired ErrorCode = "AUTH-003"
	ErrCodeAuthPasswordShort ErrorCode = "AUTH-004"
	ErrCodeAuthFieldRequired ErrorCode = "AUTH-005"
	ErrCodeAuthPasswordMatch ErrorCode = "AUTH-006"

	// Session errors (SESSION-001 to SESSION-099)
	ErrCodeSessionLoad  ErrorCode = "SESSION-001"
	ErrCodeSessionSave  ErrorCode = "SESSION-002"
	ErrCodeSessionClear ErrorCode = "SESSION-003"

	// Reaction errors (REACTION-001 to REACTION-099)
	ErrCodeReactionEdition  ErrorCode = "REACTION-001"
	ErrCodeReactionKind     ErrorCode = "REACTION-002"
	ErrCodeReactionInFlight ErrorCode = "REACTION-003"

	// Configuration errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigRead    ErrorCode = "CONFIG-001"
	ErrCodeConfigInvalid ErrorCode = "CONFIG-002"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileNotFound    ErrorCode = "IO-001"
	ErrCodeFileReadFailed  ErrorCode = "IO-002"
	ErrCodeFileWriteFailed ErrorCode = "IO-003"
)

// BinHarryError represents an enhanced error with code and suggestions
type BinHarryError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	Cause       error
}

// Error implements the error interface
func (e *BinHarryError) Error() string {
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
func (e *BinHarryError) Unwrap() error {
	return e.Cause
}

// New creates a new BinHarryError
func New(code ErrorCode, message string) *BinHarryError {
	return &BinHarryError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new BinHarryError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *BinHarryError {
	return &BinHarryError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *BinHarryError) WithSuggestion(suggestion string) *BinHarryError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *BinHarryError) WithSuggestions(suggestions ...string) *BinHarryError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// Code extracts the error code from an error, or "" if it is not a BinHarryError
func Code(err error) ErrorCode {
	var bhErr *BinHarryError
	if stderrors.As(err, &bhErr) {
		return bhErr.Code
	}
	return ""
}

// IsConnectivity reports whether the error is a transport-level failure
// (no response received). Always recoverable by retry.
func IsConnectivity(err error) bool {
	return Code(err) == ErrCodeAPIConnectivity
}

// IsAuthRejected reports whether the server rejected the caller's token.
// Callers must treat the session as torn down, not as a transient error.
func IsAuthRejected(err error) bool {
	return Code(err) == ErrCodeAuthRejected
}

// IsValidation reports whether the error was caught locally before any
// network call was made.
func IsValidation(err error) bool {
	switch Code(err) {
	case ErrCodeAuthEmailRequired, ErrCodeAuthPasswordShort,
		ErrCodeAuthFieldRequired, ErrCodeAuthPasswordMatch,
		ErrCodeReactionEdition, ErrCodeReactionKind:
		return true
	}
	return false
}

// IsBusiness reports whether the server executed the request but refused it.
func IsBusiness(err error) bool {
	return Code(err) == ErrCodeAPIBusiness
}

// Common error constructors for frequently used errors

// NewConnectivityError creates the generic "cannot reach server" error
func NewConnectivityError(cause error) *BinHarryError {
	return Wrap(ErrCodeAPIConnectivity, "cannot reach the BinHarry server", cause).
		WithSuggestion("Check your network connection").
		WithSuggestion("Verify the API URL in ~/.binharry/config.yaml or BINHARRY_API_URL")
}

// NewBusinessError surfaces a server-provided refusal message verbatim
func NewBusinessError(message string) *BinHarryError {
	return New(ErrCodeAPIBusiness, message)
}

// NewAuthRejectedError creates the error returned when a token is missing,
// expired, or carries an insufficient role
func NewAuthRejectedError() *BinHarryError {
	return New(ErrCodeAuthRejected, "session rejected by the server").
		WithSuggestion("Run 'binharry auth login' to authenticate again")
}

// NewAuthRequiredError creates the error for operations that need a session
func NewAuthRequiredError(operation string) *BinHarryError {
	return New(ErrCodeAuthRequired, fmt.Sprintf("%s requires an authenticated session", operation)).
		WithSuggestion("Run 'binharry auth login' first")
}

// NewPasswordTooShortError creates the local minimum-length validation error
func NewPasswordTooShortError(min int) *BinHarryError {
	return New(ErrCodeAuthPasswordShort, fmt.Sprintf("password must be at least %d characters", min)).
		WithSuggestion("Choose a longer password")
}

// NewFieldRequiredError creates a missing-field validation error
func NewFieldRequiredError(field string) *BinHarryError {
	return New(ErrCodeAuthFieldRequired, fmt.Sprintf("%s is required", field))
}

// NewPasswordMismatchError creates the confirm-password validation error.
// Caught by the form layer; never sent to the server.
func NewPasswordMismatchError() *BinHarryError {
	return New(ErrCodeAuthPasswordMatch, "passwords do not match").
		WithSuggestion("Retype the confirmation so it matches the password exactly")
}

// NewEditionRequiredError creates the empty-edition validation error
func NewEditionRequiredError() *BinHarryError {
	return New(ErrCodeReactionEdition, "edition key cannot be empty")
}

// NewReactionKindError creates the unknown-reaction-kind validation error
func NewReactionKindError(kind string) *BinHarryError {
	return New(ErrCodeReactionKind, fmt.Sprintf("unknown reaction kind: %s", kind)).
		WithSuggestion("Use one of: like, dislike, heart")
}

// NewReactionInFlightError signals that a toggle for the same (game, kind)
// pair is still outstanding and this one was suppressed locally
func NewReactionInFlightError(gameID, kind string) *BinHarryError {
	return New(ErrCodeReactionInFlight, fmt.Sprintf("a %s reaction for %s is already in flight", kind, gameID)).
		WithSuggestion("Wait for the pending reaction to resolve")
}

// NewConfigReadError creates a configuration file error
func NewConfigReadError(path string, cause error) *BinHarryError {
	return Wrap(ErrCodeConfigRead, fmt.Sprintf("failed to read config file: %s", path), cause).
		WithSuggestion("Check the file exists and is readable").
		WithSuggestion("Delete the file to fall back to defaults")
}
