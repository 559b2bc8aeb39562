package engine

import (
	"maps"
	"slices"

	"github.com/kbukum/knife/errors"
	"github.com/kbukum/knife/util"
)

// Binding is the tapped callable plus the arguments bound for
// method-invoking verbs.
type Binding struct {
	fn     Func
	args   []any
	kwargs map[string]any
}

// Tap binds fn and resets the bound arguments. On error the binding is
// left unchanged.
func (b *Binding) Tap(fn any) error {
	f, err := Callable(fn)
	if err != nil {
		return err
	}
	b.fn = f
	b.args = nil
	b.kwargs = nil
	return nil
}

// SetArgs replaces the bound positional and keyword arguments.
func (b *Binding) SetArgs(args []any, kwargs map[string]any) {
	b.args = slices.Clone(args)
	b.kwargs = maps.Clone(kwargs)
}

// Clear drops the callable and every bound argument.
func (b *Binding) Clear() {
	b.fn = nil
	b.args = nil
	b.kwargs = nil
}

// Tapped reports whether a callable is bound.
func (b *Binding) Tapped() bool { return b.fn != nil }

// Func returns the bound callable, or nil.
func (b *Binding) Func() Func { return b.fn }

// Args returns a copy of the bound positional arguments.
func (b *Binding) Args() []any { return slices.Clone(b.args) }

// Kwargs returns a copy of the bound keyword arguments.
func (b *Binding) Kwargs() map[string]any { return maps.Clone(b.kwargs) }

// Call invokes the callable with args on behalf of verb. Without a
// callable it fails with NO_CALLABLE.
func (b *Binding) Call(verb string, args ...any) (any, error) {
	if b.fn == nil {
		return nil, errors.NoCallable(verb)
	}
	return b.fn(args, nil)
}

// Key maps v through the callable, or returns v itself when untapped.
func (b *Binding) Key(v any) (any, error) {
	if b.fn == nil {
		return v, nil
	}
	return b.fn([]any{v}, nil)
}

// Test reports whether v passes the callable, or whether v is truthy when
// untapped.
func (b *Binding) Test(v any) (bool, error) {
	k, err := b.Key(v)
	if err != nil {
		return false, err
	}
	return util.Truthy(k), nil
}
