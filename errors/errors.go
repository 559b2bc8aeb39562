package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified knife error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// Is reports whether target is an AppError with the same code, so
// errors.Is(err, errors.Exhausted("")) matches any exhaustion error.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err is, or wraps, an AppError with the given code.
func HasCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

// --- Common Error Constructors ---

// Exhausted creates a new AppError for a verb that ran out of staged elements.
func Exhausted(verb string) *AppError {
	details := make(map[string]any)
	if verb != "" {
		details["verb"] = verb
	}
	return &AppError{
		Code: ErrCodeExhausted, Message: "no elements left to consume",
		Details: details,
	}
}

// NotIterable creates a new AppError for a value that cannot be expanded.
func NotIterable(value any) *AppError {
	return &AppError{
		Code: ErrCodeNotIterable, Message: fmt.Sprintf("%T is not iterable", value),
		Details: map[string]any{"type": fmt.Sprintf("%T", value)},
	}
}

// Incomparable creates a new AppError for two values with no ordering.
func Incomparable(a, b any) *AppError {
	return &AppError{
		Code: ErrCodeIncomparable, Message: fmt.Sprintf("cannot order %T against %T", a, b),
		Details: map[string]any{"left": fmt.Sprintf("%T", a), "right": fmt.Sprintf("%T", b)},
	}
}

// NotNumeric creates a new AppError for a non-numeric operand.
func NotNumeric(value any) *AppError {
	return &AppError{
		Code: ErrCodeNotNumeric, Message: fmt.Sprintf("%T is not a number", value),
		Details: map[string]any{"type": fmt.Sprintf("%T", value)},
	}
}

// NotFound creates a new AppError for a missing value, index or method.
func NotFound(resource, id string) *AppError {
	details := map[string]any{"resource": resource}
	if id != "" {
		details["id"] = id
	}
	return &AppError{
		Code: ErrCodeNotFound, Message: fmt.Sprintf("%s not found", resource),
		Details: details,
	}
}

// NoCallable creates a new AppError for a verb invoked without a tapped callable.
func NoCallable(verb string) *AppError {
	return &AppError{
		Code: ErrCodeNoCallable, Message: fmt.Sprintf("%s needs a tapped callable", verb),
		Details: map[string]any{"verb": verb},
	}
}

// InvalidCallable creates a new AppError for an unsupported callable shape.
func InvalidCallable(fn any) *AppError {
	return &AppError{
		Code: ErrCodeInvalidCallable, Message: fmt.Sprintf("unsupported callable %T", fn),
		Details: map[string]any{"type": fmt.Sprintf("%T", fn)},
	}
}

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("invalid input: %s", reason),
		Details: details,
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidInput, Message: message}
}

// SessionOpen creates a new AppError for a re-entrant verb invocation.
func SessionOpen() *AppError {
	return &AppError{
		Code: ErrCodeSessionOpen, Message: "a session is already open on this queue",
	}
}

// Internal creates a new AppError for a broken engine invariant.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "an unexpected engine error occurred",
		Cause: cause,
	}
}
