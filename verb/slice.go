package verb

import (
	"context"
	"fmt"

	"github.com/kbukum/knife/engine"
	"github.com/kbukum/knife/errors"
	"github.com/kbukum/knife/pipeline"
	"github.com/kbukum/knife/validation"
)

// First writes the first element, or the first n elements when n > 0.
func First(n int) engine.Verb {
	return engine.NewVerb("first", func(_ context.Context, s *engine.Session) error {
		if err := validation.New().Min("n", n, 0).Validate(); err != nil {
			return err
		}
		if n > 0 {
			s.ReplaceManyLazy(pipeline.Take(s.Iter(), n))
			return nil
		}
		it := s.Iter()
		defer it.Close()
		v, ok := it.Next()
		if !ok {
			return errors.Exhausted("first")
		}
		s.AppendOne(v)
		return nil
	})
}

// Last writes the last element, or the last n elements when n > 0.
func Last(n int) engine.Verb {
	return engine.NewVerb("last", func(_ context.Context, s *engine.Session) error {
		if err := validation.New().Min("n", n, 0).Validate(); err != nil {
			return err
		}
		values := s.Values()
		if n > 0 {
			s.ReplaceMany(values[max(0, len(values)-n):])
			return nil
		}
		if len(values) == 0 {
			return errors.Exhausted("last")
		}
		s.AppendOne(values[len(values)-1])
		return nil
	})
}

// Nth writes the element at index i, or def when there is none.
func Nth(i int, def any) engine.Verb {
	return engine.NewVerb("nth", func(_ context.Context, s *engine.Session) error {
		if err := validation.New().Min("i", i, 0).Validate(); err != nil {
			return err
		}
		it := pipeline.Skip(s.Iter(), i)
		defer it.Close()
		if v, ok := it.Next(); ok {
			s.AppendOne(v)
		} else {
			s.AppendOne(def)
		}
		return nil
	})
}

// At writes the element at index i. Negative indexes count from the back;
// a missing index is NOT_FOUND.
func At(i int) engine.Verb {
	return engine.NewVerb("at", func(_ context.Context, s *engine.Session) error {
		values := s.Values()
		j := i
		if j < 0 {
			j += len(values)
		}
		if j < 0 || j >= len(values) {
			return errors.NotFound("index", fmt.Sprint(i))
		}
		s.AppendOne(values[j])
		return nil
	})
}

// Initial writes every element but the last.
func Initial() engine.Verb {
	return engine.NewVerb("initial", func(_ context.Context, s *engine.Session) error {
		values := s.Values()
		s.ReplaceMany(values[:max(0, len(values)-1)])
		return nil
	})
}

// Rest writes every element but the first.
func Rest() engine.Verb {
	return engine.NewVerb("rest", func(_ context.Context, s *engine.Session) error {
		s.ReplaceManyLazy(pipeline.Skip(s.Iter(), 1))
		return nil
	})
}

// Snatch writes the last n elements as a sequence.
func Snatch(n int) engine.Verb {
	return engine.NewVerb("snatch", func(_ context.Context, s *engine.Session) error {
		if err := validation.New().Min("n", n, 1).Validate(); err != nil {
			return err
		}
		values := s.Values()
		s.ReplaceMany(values[max(0, len(values)-n):])
		return nil
	})
}

// Slice writes the elements from start up to stop, taking every step-th.
// A negative stop means no upper bound.
func Slice(start, stop, step int) engine.Verb {
	return engine.NewVerb("slice", func(_ context.Context, s *engine.Session) error {
		err := validation.New().
			Min("start", start, 0).
			Min("step", step, 1).
			Validate()
		if err != nil {
			return err
		}
		it := pipeline.Skip(s.Iter(), start)
		if stop >= 0 {
			it = pipeline.Take(it, max(0, stop-start))
		}
		s.ReplaceManyLazy(pipeline.Stride(it, step))
		return nil
	})
}
