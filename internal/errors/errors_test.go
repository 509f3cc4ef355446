package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeAuthRequired, "test error message")

	if err.Code != ErrCodeAuthRequired {
		t.Errorf("expected code %s, got %s", ErrCodeAuthRequired, err.Code)
	}

	if err.Message != "test error message" {
		t.Errorf("expected message 'test error message', got '%s'", err.Message)
	}

	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("underlying error")
	err := Wrap(ErrCodeFileReadFailed, "failed to read file", cause)

	if err.Code != ErrCodeFileReadFailed {
		t.Errorf("expected code %s, got %s", ErrCodeFileReadFailed, err.Code)
	}

	if err.Cause != cause {
		t.Errorf("expected cause to be set")
	}

	// Test unwrapping
	if !stderrors.Is(err, cause) {
		t.Errorf("Wrap should support errors.Is")
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name     string
		err      *BinHarryError
		wantCode string
		wantMsg  string
	}{
		{
			name:     "simple error",
			err:      New(ErrCodeReactionEdition, "edition key cannot be empty"),
			wantCode: "REACTION-001",
			wantMsg:  "edition key cannot be empty",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeFileReadFailed, "read failed", fmt.Errorf("permission denied")),
			wantCode: "IO-002",
			wantMsg:  "permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errStr := tt.err.Error()

			if !strings.Contains(errStr, tt.wantCode) {
				t.Errorf("error string should contain code %s, got: %s", tt.wantCode, errStr)
			}

			if !strings.Contains(errStr, tt.wantMsg) {
				t.Errorf("error string should contain message '%s', got: %s", tt.wantMsg, errStr)
			}
		})
	}
}

func TestWithSuggestion(t *testing.T) {
	err := New(ErrCodeAuthRejected, "session rejected").
		WithSuggestion("Login again")

	if len(err.Suggestions) != 1 {
		t.Errorf("expected 1 suggestion, got %d", len(err.Suggestions))
	}

	if err.Suggestions[0] != "Login again" {
		t.Errorf("unexpected suggestion: %s", err.Suggestions[0])
	}

	errStr := err.Error()
	if !strings.Contains(errStr, "Suggestions:") {
		t.Errorf("error string should contain suggestions section, got: %s", errStr)
	}
}

func TestCategoryPredicates(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		connectivity bool
		authRejected bool
		validation   bool
		business     bool
	}{
		{
			name:         "connectivity",
			err:          NewConnectivityError(fmt.Errorf("dial tcp: refused")),
			connectivity: true,
		},
		{
			name:         "auth rejected",
			err:          NewAuthRejectedError(),
			authRejected: true,
		},
		{
			name:       "password too short",
			err:        NewPasswordTooShortError(8),
			validation: true,
		},
		{
			name:       "password mismatch",
			err:        NewPasswordMismatchError(),
			validation: true,
		},
		{
			name:       "empty edition",
			err:        NewEditionRequiredError(),
			validation: true,
		},
		{
			name:     "business refusal",
			err:      NewBusinessError("Cet email est deja utilise"),
			business: true,
		},
		{
			name: "plain error",
			err:  fmt.Errorf("boom"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsConnectivity(tt.err); got != tt.connectivity {
				t.Errorf("IsConnectivity() = %v, want %v", got, tt.connectivity)
			}
			if got := IsAuthRejected(tt.err); got != tt.authRejected {
				t.Errorf("IsAuthRejected() = %v, want %v", got, tt.authRejected)
			}
			if got := IsValidation(tt.err); got != tt.validation {
				t.Errorf("IsValidation() = %v, want %v", got, tt.validation)
			}
			if got := IsBusiness(tt.err); got != tt.business {
				t.Errorf("IsBusiness() = %v, want %v", got, tt.business)
			}
		})
	}
}

func TestCodeOnWrappedError(t *testing.T) {
	inner := NewAuthRejectedError()
	outer := fmt.Errorf("loading mailbox: %w", inner)

	if Code(outer) != ErrCodeAuthRejected {
		t.Errorf("Code should see through fmt.Errorf wrapping, got %s", Code(outer))
	}
	if !IsAuthRejected(outer) {
		t.Error("IsAuthRejected should see through fmt.Errorf wrapping")
	}
}
