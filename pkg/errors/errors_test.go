package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidTemplate, "margins too large: %g mm", 120.0)

	if err.Code != ErrCodeInvalidTemplate {
		t.Errorf("Code = %s, want %s", err.Code, ErrCodeInvalidTemplate)
	}
	if err.Message != "margins too large: 120 mm" {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("Cause = %v, want nil", err.Cause)
	}
	want := "INVALID_TEMPLATE: margins too large: 120 mm"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := Wrap(ErrCodeInvalidPath, cause, "write %s", "out.pdf")

	if err.Cause != cause {
		t.Errorf("Cause not preserved")
	}
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is does not find the cause")
	}
	want := "INVALID_PATH: write out.pdf: permission denied"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeTemplateNotFound, "unknown template")

	if !Is(err, ErrCodeTemplateNotFound) {
		t.Error("Is failed for matching code")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is matched the wrong code")
	}
	if Is(stderrors.New("plain"), ErrCodeInternal) {
		t.Error("Is matched a plain error")
	}
	if Is(nil, ErrCodeInternal) {
		t.Error("Is matched nil")
	}

	// Codes survive fmt.Errorf wrapping.
	wrapped := fmt.Errorf("outer: %w", err)
	if !Is(wrapped, ErrCodeTemplateNotFound) {
		t.Error("Is failed through a %w wrapper")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidGrid, "x")); got != ErrCodeInvalidGrid {
		t.Errorf("GetCode = %s, want %s", got, ErrCodeInvalidGrid)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %s, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidInput, "page count must be >= 1")
	if got := UserMessage(err); got != "page count must be >= 1" {
		t.Errorf("UserMessage = %q", got)
	}
	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}

func TestIsRecoverable(t *testing.T) {
	tests := []struct {
		code Code
		want bool
	}{
		{ErrCodeInvalidInput, true},
		{ErrCodeInvalidCode, true},
		{ErrCodeInvalidTemplate, false},
		{ErrCodeInvalidGrid, false},
		{ErrCodeInvalidPath, false},
		{ErrCodeInternal, false},
	}
	for _, tt := range tests {
		if got := IsRecoverable(New(tt.code, "x")); got != tt.want {
			t.Errorf("IsRecoverable(%s) = %v, want %v", tt.code, got, tt.want)
		}
	}
}
