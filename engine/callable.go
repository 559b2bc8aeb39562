package engine

import (
	"fmt"

	"github.com/kbukum/knife/errors"
)

// Func is the normalised form of every tapped callable.
type Func func(args []any, kwargs map[string]any) (any, error)

// Callable converts a supported Go function into a Func. Fixed-arity
// shapes reject calls with the wrong number of arguments as INVALID_INPUT
// and ignore kwargs. Unsupported shapes are INVALID_CALLABLE.
func Callable(fn any) (Func, error) {
	switch f := fn.(type) {
	case nil:
		return nil, errors.InvalidCallable(fn)
	case Func:
		return f, nil
	case func([]any, map[string]any) (any, error):
		return f, nil
	case func(any) any:
		return unary(func(x any) (any, error) { return f(x), nil }), nil
	case func(any) bool:
		return unary(func(x any) (any, error) { return f(x), nil }), nil
	case func(any) (any, error):
		return unary(f), nil
	case func(any) (bool, error):
		return unary(func(x any) (any, error) {
			ok, err := f(x)
			return ok, err
		}), nil
	case func(any, any) any:
		return binary(func(x, y any) (any, error) { return f(x, y), nil }), nil
	case func(any, any) bool:
		return binary(func(x, y any) (any, error) { return f(x, y), nil }), nil
	case func(any, any) (any, error):
		return binary(f), nil
	case func(...any) (any, error):
		return func(args []any, kwargs map[string]any) (any, error) {
			if len(kwargs) > 0 {
				args = append(args[:len(args):len(args)], kwargs)
			}
			return f(args...)
		}, nil
	default:
		return nil, errors.InvalidCallable(fn)
	}
}

func unary(f func(any) (any, error)) Func {
	return func(args []any, _ map[string]any) (any, error) {
		if len(args) != 1 {
			return nil, arityError(1, len(args))
		}
		return f(args[0])
	}
}

func binary(f func(any, any) (any, error)) Func {
	return func(args []any, _ map[string]any) (any, error) {
		if len(args) != 2 {
			return nil, arityError(2, len(args))
		}
		return f(args[0], args[1])
	}
}

func arityError(want, got int) error {
	return errors.InvalidInput("args", fmt.Sprintf("callable takes %d argument(s), got %d", want, got))
}
