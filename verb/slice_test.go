package verb

import (
	"testing"

	"github.com/kbukum/knife/errors"
)

func TestPositional(t *testing.T) {
	values := list(1, 2, 3, 4, 5)
	runCases(t, []verbCase{
		{name: "first", verb: First(0), values: values, want: list(1)},
		{name: "first n", verb: First(2), values: values, want: list(1, 2)},
		{name: "first past end", verb: First(9), values: list(1), want: list(1)},
		{name: "first empty", verb: First(0), code: errors.ErrCodeExhausted},
		{name: "last", verb: Last(0), values: values, want: list(5)},
		{name: "last n", verb: Last(2), values: values, want: list(4, 5)},
		{name: "last empty", verb: Last(0), code: errors.ErrCodeExhausted},
		{name: "nth", verb: Nth(1, "d"), values: values, want: list(2)},
		{name: "nth default", verb: Nth(9, "d"), values: values, want: list("d")},
		{name: "nth negative", verb: Nth(-1, nil), values: values, code: errors.ErrCodeInvalidInput},
		{name: "at", verb: At(2), values: values, want: list(3)},
		{name: "at from back", verb: At(-1), values: values, want: list(5)},
		{name: "at missing", verb: At(5), values: values, code: errors.ErrCodeNotFound},
		{name: "initial", verb: Initial(), values: values, want: list(1, 2, 3, 4)},
		{name: "initial empty", verb: Initial(), want: []any{}},
		{name: "rest", verb: Rest(), values: values, want: list(2, 3, 4, 5)},
		{name: "snatch", verb: Snatch(2), values: values, want: list(4, 5)},
		{name: "snatch zero", verb: Snatch(0), values: values, code: errors.ErrCodeInvalidInput},
	})
}

func TestSlice(t *testing.T) {
	values := list(1, 2, 3, 4, 5)
	runCases(t, []verbCase{
		{name: "unbounded", verb: Slice(1, -1, 1), values: values, want: list(2, 3, 4, 5)},
		{name: "stepped", verb: Slice(0, 4, 2), values: values, want: list(1, 3)},
		{name: "stop before start", verb: Slice(3, 1, 1), values: values, want: []any{}},
		{name: "zero step", verb: Slice(0, 4, 0), values: values, code: errors.ErrCodeInvalidInput},
		{name: "negative start", verb: Slice(-1, 4, 1), values: values, code: errors.ErrCodeInvalidInput},
	})
}
