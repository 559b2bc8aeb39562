package verb

import (
	"context"

	"github.com/kbukum/knife/engine"
	"github.com/kbukum/knife/errors"
	"github.com/kbukum/knife/pipeline"
	"github.com/kbukum/knife/util"
	"github.com/kbukum/knife/validation"
)

// Reduce folds the elements left to right through the callable, starting
// from the optional seed.
func Reduce(seed ...any) engine.Verb {
	return fold("reduce", false, seed)
}

// ReduceRight folds like Reduce with the callable's arguments swapped, so
// the accumulator is passed second.
func ReduceRight(seed ...any) engine.Verb {
	return fold("reduce_right", true, seed)
}

func fold(name string, right bool, seed []any) engine.Verb {
	return engine.NewVerb(name, func(_ context.Context, s *engine.Session) error {
		if err := validation.New().Max("seed", len(seed), 1).Validate(); err != nil {
			return err
		}
		b := s.Binding()
		if !b.Tapped() {
			return errors.NoCallable(name)
		}
		it := s.Iter()
		defer it.Close()

		var acc any
		if len(seed) == 1 {
			acc = seed[0]
		} else {
			first, ok := it.Next()
			if !ok {
				return errors.Exhausted(name)
			}
			acc = first
		}
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			var err error
			if right {
				acc, err = b.Call(name, v, acc)
			} else {
				acc, err = b.Call(name, acc, v)
			}
			if err != nil {
				return err
			}
		}
		s.AppendOne(acc)
		return nil
	})
}

// Flatten removes one level of nesting. Non-iterable elements pass through.
func Flatten() engine.Verb {
	return engine.NewVerb("flatten", func(_ context.Context, s *engine.Session) error {
		s.ReplaceManyLazy(pipeline.FlatMap(s.Iter(), func(v any) pipeline.Iterator[any] {
			if it, ok := util.Iterate(v); ok {
				return it
			}
			return pipeline.Once(v)
		}))
		return nil
	})
}

// Smash removes every level of nesting. Strings and byte slices stay whole.
func Smash() engine.Verb {
	return engine.NewVerb("smash", func(_ context.Context, s *engine.Session) error {
		s.ReplaceManyLazy(pipeline.FlatMap(s.Iter(), smash))
		return nil
	})
}

func smash(v any) pipeline.Iterator[any] {
	switch v.(type) {
	case string, []byte:
		return pipeline.Once(v)
	}
	it, ok := util.Iterate(v)
	if !ok {
		return pipeline.Once(v)
	}
	return pipeline.FlatMap(it, smash)
}

// Merge combines already sorted element sequences into one sorted
// sequence. Equal heads are taken from the earlier sequence first.
func Merge() engine.Verb {
	return engine.NewVerb("merge", func(_ context.Context, s *engine.Session) error {
		runs, err := tuples(s.Values())
		if err != nil {
			return err
		}
		total := 0
		for _, r := range runs {
			total += len(r)
		}
		out := make([]any, 0, total)
		heads := make([]int, len(runs))
		for len(out) < total {
			best := -1
			for i, r := range runs {
				if heads[i] == len(r) {
					continue
				}
				if best < 0 {
					best = i
					continue
				}
				c, err := util.Compare(r[heads[i]], runs[best][heads[best]])
				if err != nil {
					return err
				}
				if c < 0 {
					best = i
				}
			}
			out = append(out, runs[best][heads[best]])
			heads[best]++
		}
		s.ReplaceMany(out)
		return nil
	})
}

// Pairwise yields each adjacent pair of elements.
func Pairwise() engine.Verb {
	return engine.NewVerb("pairwise", func(_ context.Context, s *engine.Session) error {
		s.ReplaceManyLazy(asAny(pipeline.Window(s.Iter(), 2)))
		return nil
	})
}

// RoundRobin interleaves the element sequences one value at a time,
// skipping the exhausted ones.
func RoundRobin() engine.Verb {
	return engine.NewVerb("roundrobin", func(_ context.Context, s *engine.Session) error {
		values := s.Values()
		iters := make([]pipeline.Iterator[any], len(values))
		for i, v := range values {
			it, ok := util.Iterate(v)
			if !ok {
				for _, prev := range iters[:i] {
					_ = prev.Close()
				}
				return errors.NotIterable(v)
			}
			iters[i] = it
		}
		s.ReplaceManyLazy(pipeline.Interleave(iters...))
		return nil
	})
}

// Zip yields tuples of the i-th value of every element sequence, stopping
// at the shortest.
func Zip() engine.Verb {
	return engine.NewVerb("zip", func(_ context.Context, s *engine.Session) error {
		seqs, err := tuples(s.Values())
		if err != nil {
			return err
		}
		out := make([]any, 0)
		if len(seqs) == 0 {
			s.ReplaceMany(out)
			return nil
		}
		shortest := len(seqs[0])
		for _, seq := range seqs[1:] {
			shortest = min(shortest, len(seq))
		}
		for i := range shortest {
			row := make([]any, len(seqs))
			for j, seq := range seqs {
				row[j] = seq[i]
			}
			out = append(out, row)
		}
		s.ReplaceMany(out)
		return nil
	})
}
