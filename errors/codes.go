package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Data errors
const (
	// ErrCodeExhausted indicates a verb needed at least one staged element and found none.
	ErrCodeExhausted ErrorCode = "EXHAUSTED"
	// ErrCodeNotIterable indicates a value was expected to be iterable and is not.
	ErrCodeNotIterable ErrorCode = "NOT_ITERABLE"
	// ErrCodeIncomparable indicates two elements have no defined ordering.
	ErrCodeIncomparable ErrorCode = "INCOMPARABLE"
	// ErrCodeNotNumeric indicates an arithmetic verb met a non-numeric element.
	ErrCodeNotNumeric ErrorCode = "NOT_NUMERIC"
	// ErrCodeNotFound indicates a value, index, method or snapshot does not exist.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Binding errors
const (
	// ErrCodeNoCallable indicates a verb requires a tapped callable and none is bound.
	ErrCodeNoCallable ErrorCode = "NO_CALLABLE"
	// ErrCodeInvalidCallable indicates the tapped value has an unsupported function shape.
	ErrCodeInvalidCallable ErrorCode = "INVALID_CALLABLE"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates a verb argument or configuration value is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Engine errors
const (
	// ErrCodeSessionOpen indicates a verb was invoked while another session was open.
	ErrCodeSessionOpen ErrorCode = "SESSION_OPEN"
	// ErrCodeInternal indicates a broken engine invariant.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var dataCodes = map[ErrorCode]bool{
	ErrCodeExhausted:    true,
	ErrCodeNotIterable:  true,
	ErrCodeIncomparable: true,
	ErrCodeNotNumeric:   true,
	ErrCodeNotFound:     true,
}

// IsDataCode returns true if the code describes a problem with the queued
// elements rather than with how the queue was driven.
func IsDataCode(code ErrorCode) bool {
	return dataCodes[code]
}
