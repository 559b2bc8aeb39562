package verb

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/kbukum/knife/engine"
	"github.com/kbukum/knife/errors"
	"github.com/kbukum/knife/util"
	"github.com/kbukum/knife/validation"
)

// Map calls the tapped callable on every element.
func Map() engine.Verb {
	return engine.NewVerb("map", func(_ context.Context, s *engine.Session) error {
		return mapValues(s, func(v any) (any, error) {
			return s.Binding().Call("map", v)
		})
	})
}

// StarMap unpacks every element into positional arguments for the
// callable.
func StarMap() engine.Verb {
	return engine.NewVerb("starmap", func(_ context.Context, s *engine.Session) error {
		return mapValues(s, func(v any) (any, error) {
			args, err := util.Values(v)
			if err != nil {
				return nil, err
			}
			return s.Binding().Call("starmap", args...)
		})
	})
}

// Each treats every element as an (args, kwargs) pair and calls the
// callable with it.
func Each() engine.Verb {
	return DelayEach(0)
}

// DelayEach is Each with a pause of d before every element.
func DelayEach(d time.Duration) engine.Verb {
	name := delayedName("each", d)
	return engine.NewVerb(name, func(ctx context.Context, s *engine.Session) error {
		if err := validation.New().NonNegativeDuration("delay", d).Validate(); err != nil {
			return err
		}
		fn := s.Binding().Func()
		if fn == nil {
			return errors.NoCallable(name)
		}
		return mapValues(s, func(v any) (any, error) {
			args, kwargs, err := unpackCall(v)
			if err != nil {
				return nil, err
			}
			if err := wait(ctx, d); err != nil {
				return nil, err
			}
			return fn(args, kwargs)
		})
	})
}

// DelayMap is Map with a pause of d before every element.
func DelayMap(d time.Duration) engine.Verb {
	name := delayedName("map", d)
	return engine.NewVerb(name, func(ctx context.Context, s *engine.Session) error {
		if err := validation.New().NonNegativeDuration("delay", d).Validate(); err != nil {
			return err
		}
		return mapValues(s, func(v any) (any, error) {
			if err := wait(ctx, d); err != nil {
				return nil, err
			}
			return s.Binding().Call(name, v)
		})
	})
}

// Invoke calls the named method on every element with the bound
// arguments. A method with no results, or a nil first result, yields the
// element itself.
func Invoke(method string) engine.Verb {
	return DelayInvoke(0, method)
}

// DelayInvoke is Invoke with a pause of d before every element.
func DelayInvoke(d time.Duration, method string) engine.Verb {
	name := delayedName("invoke", d)
	return engine.NewVerb(name, func(ctx context.Context, s *engine.Session) error {
		err := validation.New().
			Required("method", method).
			NonNegativeDuration("delay", d).
			Validate()
		if err != nil {
			return err
		}
		args, kwargs := s.Binding().Args(), s.Binding().Kwargs()
		return mapValues(s, func(v any) (any, error) {
			if err := wait(ctx, d); err != nil {
				return nil, err
			}
			return callMethod(v, method, args, kwargs)
		})
	})
}

// Times calls the callable n times with every staged element as a
// positional argument.
func Times(n int) engine.Verb {
	return engine.NewVerb("times", func(_ context.Context, s *engine.Session) error {
		if err := validation.New().Min("n", n, 0).Validate(); err != nil {
			return err
		}
		args := s.Values()
		out := make([]any, 0, n)
		for range n {
			r, err := s.Binding().Call("times", args...)
			if err != nil {
				return err
			}
			out = append(out, r)
		}
		s.ReplaceMany(out)
		return nil
	})
}

func delayedName(name string, d time.Duration) string {
	if d == 0 {
		return name
	}
	return "delay_" + name
}

// unpackCall splits an (args, kwargs) element. kwargs may be nil.
func unpackCall(v any) ([]any, map[string]any, error) {
	pair, ok := v.([]any)
	if !ok || len(pair) != 2 {
		return nil, nil, errors.InvalidInput("element", fmt.Sprintf("expected an (args, kwargs) pair, got %T", v))
	}
	args, err := util.Values(pair[0])
	if err != nil {
		return nil, nil, err
	}
	if pair[1] == nil {
		return args, nil, nil
	}
	kwargs, ok := pair[1].(map[string]any)
	if !ok {
		return nil, nil, errors.InvalidInput("kwargs", fmt.Sprintf("expected map[string]any, got %T", pair[1]))
	}
	return args, kwargs, nil
}

var (
	errorType  = reflect.TypeFor[error]()
	kwargsType = reflect.TypeFor[map[string]any]()
)

// callMethod invokes v's exported method by name.
func callMethod(v any, method string, args []any, kwargs map[string]any) (any, error) {
	if v == nil {
		return nil, errors.NotFound("method", method)
	}
	m := reflect.ValueOf(v).MethodByName(method)
	if !m.IsValid() {
		return nil, errors.NotFound("method", method).WithDetail("type", fmt.Sprintf("%T", v))
	}
	mt := m.Type()

	if len(kwargs) > 0 {
		n := mt.NumIn()
		if n == 0 || mt.In(n-1) != kwargsType || mt.IsVariadic() {
			return nil, errors.InvalidInput("kwargs", fmt.Sprintf("method %s takes no keyword arguments", method))
		}
		args = append(args[:len(args):len(args)], kwargs)
	}

	in, err := methodArgs(mt, method, args)
	if err != nil {
		return nil, err
	}
	out := m.Call(in)

	if n := len(out); n > 0 && out[n-1].Type() == errorType {
		if !out[n-1].IsNil() {
			return nil, out[n-1].Interface().(error)
		}
		out = out[:n-1]
	}
	if len(out) == 0 || isNil(out[0]) {
		return v, nil
	}
	return out[0].Interface(), nil
}

func methodArgs(mt reflect.Type, method string, args []any) ([]reflect.Value, error) {
	n := mt.NumIn()
	arity := validation.New()
	if mt.IsVariadic() {
		arity.Custom(len(args) >= n-1, "args", fmt.Sprintf("method %s takes at least %d argument(s), got %d", method, n-1, len(args)))
	} else {
		arity.Custom(len(args) == n, "args", fmt.Sprintf("method %s takes %d argument(s), got %d", method, n, len(args)))
	}
	if err := arity.Validate(); err != nil {
		return nil, err
	}

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		var pt reflect.Type
		if mt.IsVariadic() && i >= n-1 {
			pt = mt.In(n - 1).Elem()
		} else {
			pt = mt.In(i)
		}
		if a == nil {
			in[i] = reflect.Zero(pt)
			continue
		}
		av := reflect.ValueOf(a)
		switch {
		case av.Type().AssignableTo(pt):
			in[i] = av
		case util.IsNumber(a) && util.IsNumber(reflect.Zero(pt).Interface()):
			cv, ok := convertExact(av, pt)
			field := fmt.Sprintf("args[%d]", i)
			if err := validation.New().Custom(ok, field, fmt.Sprintf("%v does not fit %s in %s", a, pt, method)).Validate(); err != nil {
				return nil, err
			}
			in[i] = cv
		default:
			return nil, errors.InvalidInput("args", fmt.Sprintf("argument %d of %s: cannot use %T as %s", i, method, a, pt))
		}
	}
	return in, nil
}

// convertExact converts a number to pt only when the value survives the
// conversion unchanged.
func convertExact(av reflect.Value, pt reflect.Type) (reflect.Value, bool) {
	out := reflect.New(pt).Elem()
	switch av.Kind() {
	case reflect.Float32, reflect.Float64:
		f := av.Float()
		switch {
		case isFloatKind(pt.Kind()):
			if out.OverflowFloat(f) {
				return out, false
			}
			out.SetFloat(f)
			return out, true
		case f != math.Trunc(f) || math.IsInf(f, 0):
			return out, false
		case isSignedKind(pt.Kind()):
			if f < math.MinInt64 || f >= math.MaxInt64 || out.OverflowInt(int64(f)) {
				return out, false
			}
			out.SetInt(int64(f))
			return out, true
		default:
			if f < 0 || f >= math.MaxUint64 || out.OverflowUint(uint64(f)) {
				return out, false
			}
			out.SetUint(uint64(f))
			return out, true
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := av.Uint()
		switch {
		case isFloatKind(pt.Kind()):
			out.SetFloat(float64(u))
			f := out.Float()
			return out, f < math.MaxUint64 && uint64(f) == u
		case isSignedKind(pt.Kind()):
			if u > math.MaxInt64 || out.OverflowInt(int64(u)) {
				return out, false
			}
			out.SetInt(int64(u))
			return out, true
		default:
			if out.OverflowUint(u) {
				return out, false
			}
			out.SetUint(u)
			return out, true
		}
	default:
		n := av.Int()
		switch {
		case isFloatKind(pt.Kind()):
			out.SetFloat(float64(n))
			f := out.Float()
			return out, f < math.MaxInt64 && int64(f) == n
		case isSignedKind(pt.Kind()):
			if out.OverflowInt(n) {
				return out, false
			}
			out.SetInt(n)
			return out, true
		default:
			if n < 0 || out.OverflowUint(uint64(n)) {
				return out, false
			}
			out.SetUint(uint64(n))
			return out, true
		}
	}
}

func isFloatKind(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func isSignedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
