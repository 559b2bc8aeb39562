package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeNotFound, "not found")
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "not found" {
		t.Errorf("expected message 'not found', got %q", err.Message)
	}
}

func TestAppError_Error_Format(t *testing.T) {
	err := New(ErrCodeExhausted, "empty")
	if got := err.Error(); got != "EXHAUSTED: empty" {
		t.Errorf("unexpected error string %q", got)
	}

	err.WithCause(fmt.Errorf("boom"))
	if !strings.Contains(err.Error(), "cause: boom") {
		t.Errorf("expected cause in error string, got %q", err.Error())
	}
}

func TestAppError_Exhausted(t *testing.T) {
	err := Exhausted("first")
	if err.Code != ErrCodeExhausted {
		t.Errorf("expected EXHAUSTED, got %s", err.Code)
	}
	if err.Details["verb"] != "first" {
		t.Errorf("expected verb=first, got %v", err.Details["verb"])
	}
	if _, ok := Exhausted("").Details["verb"]; ok {
		t.Error("expected no verb detail when verb is empty")
	}
}

func TestAppError_NotFound_EmptyID(t *testing.T) {
	err := NotFound("value", "")
	if _, ok := err.Details["id"]; ok {
		t.Error("expected no 'id' key in details when id is empty")
	}
	err = NotFound("method", "Close")
	if err.Details["id"] != "Close" {
		t.Errorf("expected id=Close, got %v", err.Details["id"])
	}
}

func TestAppError_TypeDetails(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code ErrorCode
	}{
		{"not iterable", NotIterable(5), ErrCodeNotIterable},
		{"not numeric", NotNumeric("x"), ErrCodeNotNumeric},
		{"invalid callable", InvalidCallable(42), ErrCodeInvalidCallable},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Code != tc.code {
				t.Errorf("expected %s, got %s", tc.code, tc.err.Code)
			}
			if tc.err.Details["type"] == nil {
				t.Error("expected type detail")
			}
		})
	}
}

func TestAppError_Incomparable(t *testing.T) {
	err := Incomparable(1, "a")
	if err.Details["left"] != "int" || err.Details["right"] != "string" {
		t.Errorf("unexpected details %v", err.Details)
	}
}

func TestAppError_Is_MatchesCode(t *testing.T) {
	wrapped := fmt.Errorf("wrapped: %w", Exhausted("last"))
	if !stderrors.Is(wrapped, Exhausted("")) {
		t.Error("expected errors.Is to match by code")
	}
	if stderrors.Is(wrapped, NoCallable("map")) {
		t.Error("expected errors.Is to reject a different code")
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root")
	err := Internal(cause)
	if stderrors.Unwrap(err) != cause {
		t.Error("expected Unwrap to return cause")
	}
}

func TestAppError_WithDetails(t *testing.T) {
	err := New(ErrCodeInvalidInput, "bad").
		WithDetail("field", "n").
		WithDetails(map[string]any{"min": 1, "got": 0})
	if len(err.Details) != 3 {
		t.Fatalf("expected 3 details, got %d", len(err.Details))
	}
	if err.Details["field"] != "n" {
		t.Errorf("expected field=n, got %v", err.Details["field"])
	}
}

func TestInvalidInput(t *testing.T) {
	err := InvalidInput("n", "must be positive")
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", err.Code)
	}
	if err.Details["field"] != "n" {
		t.Errorf("expected field=n, got %v", err.Details["field"])
	}
	if !strings.Contains(err.Message, "must be positive") {
		t.Errorf("unexpected message %q", err.Message)
	}
	if _, ok := InvalidInput("", "x").Details["field"]; ok {
		t.Error("expected no field detail when field is empty")
	}
}

func TestAsAppError(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", SessionOpen())
	appErr, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to succeed")
	}
	if appErr.Code != ErrCodeSessionOpen {
		t.Errorf("expected SESSION_OPEN, got %s", appErr.Code)
	}

	if _, ok := AsAppError(fmt.Errorf("plain")); ok {
		t.Error("expected AsAppError to fail for a plain error")
	}
	if IsAppError(fmt.Errorf("plain")) {
		t.Error("expected IsAppError false for a plain error")
	}
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("ctx: %w", NotFound("snapshot", ""))
	if !HasCode(err, ErrCodeNotFound) {
		t.Error("expected HasCode to find NOT_FOUND")
	}
	if HasCode(err, ErrCodeExhausted) {
		t.Error("expected HasCode to reject EXHAUSTED")
	}
	if HasCode(nil, ErrCodeNotFound) {
		t.Error("expected HasCode false for nil")
	}
}

func TestIsDataCode(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want bool
	}{
		{ErrCodeExhausted, true},
		{ErrCodeNotIterable, true},
		{ErrCodeNotFound, true},
		{ErrCodeNoCallable, false},
		{ErrCodeSessionOpen, false},
		{ErrCodeInternal, false},
	}
	for _, tc := range tests {
		t.Run(string(tc.code), func(t *testing.T) {
			if got := IsDataCode(tc.code); got != tc.want {
				t.Errorf("IsDataCode(%s) = %v, want %v", tc.code, got, tc.want)
			}
		})
	}
}
