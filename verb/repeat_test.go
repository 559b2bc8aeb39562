package verb

import (
	"testing"

	"github.com/kbukum/knife/errors"
)

func TestRepeat(t *testing.T) {
	runCases(t, []verbCase{
		{name: "repeat", verb: Repeat(2), values: list(1, 2), want: list(list(1, 2), list(1, 2))},
		{name: "repeat zero", verb: Repeat(0), values: list(1), want: []any{}},
		{name: "repeat negative", verb: Repeat(-1), values: list(1), code: errors.ErrCodeInvalidInput},
		{name: "product", verb: Product(1), values: list(list(1, 2), list("a")), want: list(list(1, "a"), list(2, "a"))},
		{name: "product repeated", verb: Product(2), values: list(list(0, 1)), want: list(list(0, 0), list(0, 1), list(1, 0), list(1, 1))},
		{name: "product zero", verb: Product(0), values: list(list(1)), code: errors.ErrCodeInvalidInput},
	})
}

func TestCombinatorics(t *testing.T) {
	runCases(t, []verbCase{
		{name: "combinations", verb: Combinations(2), values: list(1, 2, 3), want: list(list(1, 2), list(1, 3), list(2, 3))},
		{name: "combinations too long", verb: Combinations(4), values: list(1, 2, 3), want: []any{}},
		{name: "combinations empty tuple", verb: Combinations(0), values: list(1), want: list([]any{})},
		{name: "permutations", verb: Permutations(2), values: list(1, 2, 3), want: list(list(1, 2), list(1, 3), list(2, 1), list(2, 3), list(3, 1), list(3, 2))},
		{name: "permutations all", verb: Permutations(0), values: list("a", "b"), want: list(list("a", "b"), list("b", "a"))},
		{name: "permutations negative", verb: Permutations(-1), code: errors.ErrCodeInvalidInput},
	})
}

func TestSpan(t *testing.T) {
	runCases(t, []verbCase{
		{name: "up", verb: Span(0, 5, 2), want: list(0, 2, 4)},
		{name: "down", verb: Span(5, 0, -2), want: list(5, 3, 1)},
		{name: "replaces staging", verb: Span(1, 3, 1), values: list("x"), want: list(1, 2)},
		{name: "empty range", verb: Span(3, 3, 1), want: []any{}},
		{name: "zero step", verb: Span(0, 1, 0), code: errors.ErrCodeInvalidInput},
	})
}
