package util

import (
	"reflect"
	"slices"
	"testing"

	"github.com/kbukum/knife/errors"
	"github.com/kbukum/knife/pipeline"
)

func TestIterate(t *testing.T) {
	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	close(ch)

	tests := []struct {
		name string
		in   any
		want []any
	}{
		{"any slice", []any{1, "a"}, []any{1, "a"}},
		{"typed slice", []int{1, 2, 3}, []any{1, 2, 3}},
		{"array", [2]string{"x", "y"}, []any{"x", "y"}},
		{"string", "héllo", []any{"h", "é", "l", "l", "o"}},
		{"empty string", "", []any{}},
		{"map keys sorted", map[string]int{"b": 2, "a": 1}, []any{"a", "b"}},
		{"channel", ch, []any{1, 2}},
		{"seq", slices.Values([]any{3, 4}), []any{3, 4}},
		{"iterator", pipeline.FromSlice([]any{5}), []any{5}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			it, ok := Iterate(tc.in)
			if !ok {
				t.Fatalf("expected %T to be iterable", tc.in)
			}
			if got := pipeline.Collect(it); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIterate_NotIterable(t *testing.T) {
	for _, v := range []any{nil, 5, 2.5, true, struct{}{}, make(chan<- int)} {
		if _, ok := Iterate(v); ok {
			t.Errorf("expected %T not to be iterable", v)
		}
	}
}

func TestIterate_CopiesAnySlice(t *testing.T) {
	src := []any{1, 2}
	it, _ := Iterate(src)
	src[0] = 99
	if got := pipeline.Collect(it); got[0] != 1 {
		t.Errorf("expected iteration over a copy, got %v", got)
	}
}

func TestValues(t *testing.T) {
	got, err := Values([]int{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []any{1, 2}) {
		t.Errorf("got %v", got)
	}

	_, err = Values(42)
	if !errors.HasCode(err, errors.ErrCodeNotIterable) {
		t.Errorf("expected NOT_ITERABLE, got %v", err)
	}
}

func TestIsTuple(t *testing.T) {
	tests := []struct {
		in   any
		want bool
	}{
		{[]any{1}, true},
		{[]int{1}, true},
		{[1]int{1}, true},
		{"ab", false},
		{map[int]int{}, false},
		{nil, false},
	}
	for _, tc := range tests {
		if got := IsTuple(tc.in); got != tc.want {
			t.Errorf("IsTuple(%#v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
