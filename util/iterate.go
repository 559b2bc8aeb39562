package util

import (
	"iter"
	"reflect"
	"slices"

	"github.com/kbukum/knife/errors"
	"github.com/kbukum/knife/pipeline"
)

// Iterate expands v into an iterator over its elements. It reports false
// when v is not iterable.
func Iterate(v any) (pipeline.Iterator[any], bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case pipeline.Iterator[any]:
		return t, true
	case iter.Seq[any]:
		return pipeline.FromSeq(t), true
	case func(func(any) bool):
		return pipeline.FromSeq(iter.Seq[any](t)), true
	case []any:
		return pipeline.FromSlice(slices.Clone(t)), true
	case string:
		out := make([]any, 0, len(t))
		for _, r := range t {
			out = append(out, string(r))
		}
		return pipeline.FromSlice(out), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return pipeline.FromSlice(out), true
	case reflect.Map:
		return pipeline.FromSlice(mapKeys(rv)), true
	case reflect.Chan:
		if rv.Type().ChanDir()&reflect.RecvDir == 0 {
			return nil, false
		}
		return pipeline.FromFunc(func() (any, bool) {
			x, ok := rv.Recv()
			if !ok {
				return nil, false
			}
			return x.Interface(), true
		}), true
	}
	return nil, false
}

// Values expands v into a slice. A non-iterable value is a NOT_ITERABLE error.
func Values(v any) ([]any, error) {
	it, ok := Iterate(v)
	if !ok {
		return nil, errors.NotIterable(v)
	}
	return pipeline.Collect(it), nil
}

// IsTuple reports whether v is a slice or array, the shapes verbs emit as
// tuples and treat as nested sequences.
func IsTuple(v any) bool {
	if _, ok := v.([]any); ok {
		return true
	}
	if v == nil {
		return false
	}
	k := reflect.TypeOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

func mapKeys(rv reflect.Value) []any {
	keys := make([]any, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, k.Interface())
	}
	ordered := true
	slices.SortStableFunc(keys, func(a, b any) int {
		c, err := Compare(a, b)
		if err != nil {
			ordered = false
		}
		return c
	})
	if !ordered {
		slices.SortStableFunc(keys, func(a, b any) int {
			return compareRepr(a, b)
		})
	}
	return keys
}
