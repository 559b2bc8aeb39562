package verb

import (
	"context"
	"reflect"

	"github.com/kbukum/knife/engine"
	"github.com/kbukum/knife/pipeline"
	"github.com/kbukum/knife/util"
)

// Filter keeps the elements that pass the tapped predicate, or the truthy
// ones when nothing is tapped.
func Filter() engine.Verb {
	return engine.NewVerb("filter", func(_ context.Context, s *engine.Session) error {
		return keepIf(s, true)
	})
}

// Reject drops the elements that pass the predicate.
func Reject() engine.Verb {
	return engine.NewVerb("reject", func(_ context.Context, s *engine.Session) error {
		return keepIf(s, false)
	})
}

func keepIf(s *engine.Session, want bool) error {
	out := make([]any, 0)
	err := eachValue(s, func(v any) error {
		ok, err := s.Binding().Test(v)
		if err != nil {
			return err
		}
		if ok == want {
			out = append(out, v)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.ReplaceMany(out)
	return nil
}

// Partition writes two tuples: the elements failing the predicate, then
// the ones passing it.
func Partition() engine.Verb {
	return engine.NewVerb("partition", func(_ context.Context, s *engine.Session) error {
		falsy, truthy := make([]any, 0), make([]any, 0)
		err := eachValue(s, func(v any) error {
			ok, err := s.Binding().Test(v)
			if err != nil {
				return err
			}
			if ok {
				truthy = append(truthy, v)
			} else {
				falsy = append(falsy, v)
			}
			return nil
		})
		if err != nil {
			return err
		}
		s.AppendOne(falsy)
		s.AppendOne(truthy)
		return nil
	})
}

// Compact drops falsy elements.
func Compact() engine.Verb {
	return engine.NewVerb("compact", func(_ context.Context, s *engine.Session) error {
		s.ReplaceManyLazy(pipeline.Filter(s.Iter(), util.Truthy))
		return nil
	})
}

// Without drops every element equal to one of values.
func Without(values ...any) engine.Verb {
	return engine.NewVerb("without", func(_ context.Context, s *engine.Session) error {
		s.ReplaceManyLazy(pipeline.Filter(s.Iter(), func(v any) bool {
			for _, x := range values {
				if util.Equal(v, x) {
					return false
				}
			}
			return true
		}))
		return nil
	})
}

// Pick reads exported struct fields or string map keys from every element.
// One name yields the value, several yield a tuple. Elements missing any
// name are dropped.
func Pick(names ...string) engine.Verb {
	return engine.NewVerb("pick", func(_ context.Context, s *engine.Session) error {
		s.ReplaceManyLazy(extract(s.Iter(), len(names), func(v any, i int) (any, bool) {
			return attr(v, names[i])
		}))
		return nil
	})
}

// Pluck reads map keys or slice indexes from every element, with the same
// shape and drop rules as Pick.
func Pluck(keys ...any) engine.Verb {
	return engine.NewVerb("pluck", func(_ context.Context, s *engine.Session) error {
		s.ReplaceManyLazy(extract(s.Iter(), len(keys), func(v any, i int) (any, bool) {
			return item(v, keys[i])
		}))
		return nil
	})
}

func extract(src pipeline.Iterator[any], n int, get func(v any, i int) (any, bool)) pipeline.Iterator[any] {
	return pipeline.FlatMap(src, func(v any) pipeline.Iterator[any] {
		if n == 0 {
			return pipeline.Empty[any]()
		}
		got := make([]any, n)
		for i := range n {
			x, ok := get(v, i)
			if !ok {
				return pipeline.Empty[any]()
			}
			got[i] = x
		}
		if n == 1 {
			return pipeline.Once(got[0])
		}
		return pipeline.Once[any](got)
	})
}

func attr(v any, name string) (any, bool) {
	rv := indirect(reflect.ValueOf(v))
	switch rv.Kind() {
	case reflect.Struct:
		f, ok := rv.Type().FieldByName(name)
		if !ok || !f.IsExported() {
			return nil, false
		}
		fv, err := rv.FieldByIndexErr(f.Index)
		if err != nil || !fv.CanInterface() {
			return nil, false
		}
		return fv.Interface(), true
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		return mapIndex(rv, name)
	}
	return nil, false
}

func item(v any, key any) (any, bool) {
	rv := indirect(reflect.ValueOf(v))
	switch rv.Kind() {
	case reflect.Map:
		return mapIndex(rv, key)
	case reflect.Slice, reflect.Array:
		i, ok := util.ToInt(key)
		if !ok {
			return nil, false
		}
		if i < 0 {
			i += rv.Len()
		}
		if i < 0 || i >= rv.Len() {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	}
	return nil, false
}

func mapIndex(rv reflect.Value, key any) (any, bool) {
	if key == nil {
		return nil, false
	}
	kv := reflect.ValueOf(key)
	kt := rv.Type().Key()
	if !kv.Type().AssignableTo(kt) {
		if !kv.Type().ConvertibleTo(kt) || kv.Kind() != kt.Kind() {
			return nil, false
		}
		kv = kv.Convert(kt)
	}
	x := rv.MapIndex(kv)
	if !x.IsValid() {
		return nil, false
	}
	return x.Interface(), true
}

func indirect(rv reflect.Value) reflect.Value {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

// Members lists the exported fields each struct element declares as
// (name, value) pairs. An embedded struct is one member.
func Members() engine.Verb {
	return engine.NewVerb("members", func(_ context.Context, s *engine.Session) error {
		return members(s, "members", false)
	})
}

// DeepMembers is Members including the fields promoted from embedded
// structs.
func DeepMembers() engine.Verb {
	return engine.NewVerb("deepmembers", func(_ context.Context, s *engine.Session) error {
		return members(s, "deepmembers", true)
	})
}

func members(s *engine.Session, name string, deep bool) error {
	b := s.Binding()
	out := make([]any, 0)
	err := eachValue(s, func(v any) error {
		rv := indirect(reflect.ValueOf(v))
		if rv.Kind() != reflect.Struct {
			return nil
		}
		var fields []reflect.StructField
		if deep {
			fields = reflect.VisibleFields(rv.Type())
		} else {
			for i := range rv.NumField() {
				fields = append(fields, rv.Type().Field(i))
			}
		}
		for _, f := range fields {
			if !f.IsExported() {
				continue
			}
			fv, err := rv.FieldByIndexErr(f.Index)
			if err != nil || !fv.CanInterface() {
				continue
			}
			value := fv.Interface()
			if b.Tapped() {
				keep, err := b.Call(name, f.Name, value)
				if err != nil {
					return err
				}
				if !util.Truthy(keep) {
					continue
				}
			}
			out = append(out, []any{f.Name, value})
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.ReplaceMany(out)
	return nil
}
