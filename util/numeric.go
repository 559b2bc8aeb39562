package util

import (
	"math"
	"reflect"

	"github.com/kbukum/knife/errors"
)

// IsNumber reports whether v is an integer or float of any width.
// Booleans are not numbers.
func IsNumber(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// ToInt converts an integer of any width to int. Floats and values that do
// not fit are rejected.
func ToInt(v any) (int, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt {
			return 0, false
		}
		return int(u), true
	}
	return 0, false
}

// ToFloat converts any number to float64.
func ToFloat(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// Add sums two numbers. Two integers yield an int unless the sum
// overflows, in which case it and anything else yield a float64.
func Add(a, b any) (any, error) {
	if x, ok := ToInt(a); ok {
		if y, ok := ToInt(b); ok {
			if sum := x + y; (y >= 0) == (sum >= x) {
				return sum, nil
			}
			return float64(x) + float64(y), nil
		}
	}
	x, ok := ToFloat(a)
	if !ok {
		return nil, errors.NotNumeric(a)
	}
	y, ok := ToFloat(b)
	if !ok {
		return nil, errors.NotNumeric(b)
	}
	return x + y, nil
}

// Sub subtracts b from a with the same typing rule as Add.
func Sub(a, b any) (any, error) {
	if x, ok := ToInt(a); ok {
		if y, ok := ToInt(b); ok {
			if diff := x - y; (y >= 0) == (diff <= x) {
				return diff, nil
			}
			return float64(x) - float64(y), nil
		}
	}
	x, ok := ToFloat(a)
	if !ok {
		return nil, errors.NotNumeric(a)
	}
	y, ok := ToFloat(b)
	if !ok {
		return nil, errors.NotNumeric(b)
	}
	return x - y, nil
}

// Floats converts every value to float64, failing on the first non-number.
func Floats(values []any) ([]float64, error) {
	out := make([]float64, len(values))
	for i, v := range values {
		f, ok := ToFloat(v)
		if !ok {
			return nil, errors.NotNumeric(v)
		}
		out[i] = f
	}
	return out, nil
}

// FSum adds floats while tracking the lost low-order bits, so the result
// does not depend on the summation order for ordinary inputs.
func FSum(values []float64) float64 {
	var sum, c float64
	for _, v := range values {
		t := sum + v
		if math.Abs(sum) >= math.Abs(v) {
			c += (sum - t) + v
		} else {
			c += (v - t) + sum
		}
		sum = t
	}
	return sum + c
}
