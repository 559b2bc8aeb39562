package util

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/kbukum/knife/errors"
)

// Truthy reports whether v counts as true: nil, false, zero numbers and
// empty strings, slices, maps and channels are false. Nil pointers,
// interfaces and funcs are false. Everything else is true.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.UnsafePointer:
		return !rv.IsNil()
	}
	return true
}

// Equal reports whether two elements are equal. Numbers compare by value
// across widths (1 == 1.0), tuples compare element-wise, everything else
// falls back to reflect.DeepEqual.
func Equal(a, b any) bool {
	if IsNumber(a) && IsNumber(b) {
		if x, ok := ToInt(a); ok {
			if y, ok := ToInt(b); ok {
				return x == y
			}
		}
		x, _ := ToFloat(a)
		y, _ := ToFloat(b)
		return x == y
	}
	if IsTuple(a) && IsTuple(b) {
		ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
		if ra.Len() != rb.Len() {
			return false
		}
		for i := 0; i < ra.Len(); i++ {
			if !Equal(ra.Index(i).Interface(), rb.Index(i).Interface()) {
				return false
			}
		}
		return true
	}
	return reflect.DeepEqual(a, b)
}

// Compare orders two elements, returning -1, 0 or +1. Numbers order
// numerically, strings lexically, booleans false before true and tuples
// lexicographically. Any other pairing is an INCOMPARABLE error.
func Compare(a, b any) (int, error) {
	switch {
	case IsNumber(a) && IsNumber(b):
		if x, ok := ToInt(a); ok {
			if y, ok := ToInt(b); ok {
				return cmp.Compare(x, y), nil
			}
		}
		x, _ := ToFloat(a)
		y, _ := ToFloat(b)
		return cmp.Compare(x, y), nil
	case IsTuple(a) && IsTuple(b):
		ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
		for i := 0; i < ra.Len() && i < rb.Len(); i++ {
			c, err := Compare(ra.Index(i).Interface(), rb.Index(i).Interface())
			if err != nil || c != 0 {
				return c, err
			}
		}
		return cmp.Compare(ra.Len(), rb.Len()), nil
	}

	if a == nil || b == nil {
		return 0, errors.Incomparable(a, b)
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Kind() != rb.Kind() {
		return 0, errors.Incomparable(a, b)
	}
	switch ra.Kind() {
	case reflect.String:
		return strings.Compare(ra.String(), rb.String()), nil
	case reflect.Bool:
		return cmp.Compare(boolRank(ra.Bool()), boolRank(rb.Bool())), nil
	}
	return 0, errors.Incomparable(a, b)
}

// reprKey is the hash key of a value that is not comparable at runtime.
type reprKey string

// HashKey returns a comparable map key for v such that Equal elements share
// a key. Integral floats hash like the matching int.
func HashKey(v any) any {
	if v == nil {
		return nil
	}
	if IsNumber(v) {
		if i, ok := ToInt(v); ok {
			return i
		}
		f, _ := ToFloat(v)
		if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			return int(f)
		}
		return f
	}
	if IsTuple(v) {
		rv := reflect.ValueOf(v)
		var b strings.Builder
		b.WriteByte('(')
		for i := 0; i < rv.Len(); i++ {
			if i > 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(&b, "%#v", HashKey(rv.Index(i).Interface()))
		}
		b.WriteByte(')')
		return reprKey(b.String())
	}
	if reflect.ValueOf(v).Comparable() {
		return v
	}
	return reprKey(fmt.Sprintf("%T:%#v", v, v))
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

func compareRepr(a, b any) int {
	return strings.Compare(fmt.Sprintf("%#v", a), fmt.Sprintf("%#v", b))
}
