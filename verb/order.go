package verb

import (
	"context"
	"math/rand/v2"

	"github.com/kbukum/knife/engine"
	"github.com/kbukum/knife/errors"
	"github.com/kbukum/knife/pipeline"
	"github.com/kbukum/knife/util"
	"github.com/kbukum/knife/validation"
)

// Sort orders the elements stably, by key when a callable is tapped.
func Sort() engine.Verb {
	return engine.NewVerb("sort", func(_ context.Context, s *engine.Session) error {
		values := s.Values()
		ks, err := keys(s, values)
		if err != nil {
			return err
		}
		sorted, err := sortedByKey(values, ks)
		if err != nil {
			return err
		}
		s.ReplaceMany(sorted)
		return nil
	})
}

// Reverse yields the elements back to front.
func Reverse() engine.Verb {
	return engine.NewVerb("reverse", func(_ context.Context, s *engine.Session) error {
		s.ReplaceManyLazy(pipeline.Reverse(s.Iter()))
		return nil
	})
}

// Group writes a (key, members) pair for every run of consecutive
// elements sharing a key. It does not regroup runs that are apart.
func Group() engine.Verb {
	return engine.NewVerb("group", func(_ context.Context, s *engine.Session) error {
		out := make([]any, 0)
		var (
			key     any
			members []any
		)
		flush := func() {
			if members != nil {
				out = append(out, []any{key, members})
			}
		}
		err := eachValue(s, func(v any) error {
			k, err := s.Binding().Key(v)
			if err != nil {
				return err
			}
			if members != nil && util.Equal(k, key) {
				members = append(members, v)
				return nil
			}
			flush()
			key, members = k, []any{v}
			return nil
		})
		if err != nil {
			return err
		}
		flush()
		s.ReplaceMany(out)
		return nil
	})
}

// Grouper splits the elements into tuples of n, padding the last with fill.
func Grouper(n int, fill any) engine.Verb {
	return engine.NewVerb("grouper", func(_ context.Context, s *engine.Session) error {
		if err := validation.New().Min("n", n, 1).Validate(); err != nil {
			return err
		}
		s.ReplaceManyLazy(asAny(pipeline.Chunk(s.Iter(), n, true, fill)))
		return nil
	})
}

// Shuffle reorders the elements at random. A nil r uses the global source.
func Shuffle(r *rand.Rand) engine.Verb {
	return engine.NewVerb("shuffle", func(_ context.Context, s *engine.Session) error {
		values := s.Values()
		shuffle(r, len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })
		s.ReplaceMany(values)
		return nil
	})
}

// Sample draws n distinct positions at random.
func Sample(n int, r *rand.Rand) engine.Verb {
	return engine.NewVerb("sample", func(_ context.Context, s *engine.Session) error {
		values := s.Values()
		if err := validation.New().Range("n", n, 0, len(values)).Validate(); err != nil {
			return err
		}
		out := make([]any, n)
		for i, p := range perm(r, len(values))[:n] {
			out[i] = values[p]
		}
		s.ReplaceMany(out)
		return nil
	})
}

// Choice draws one element at random.
func Choice(r *rand.Rand) engine.Verb {
	return engine.NewVerb("choice", func(_ context.Context, s *engine.Session) error {
		values := s.Values()
		if len(values) == 0 {
			return errors.Exhausted("choice")
		}
		s.AppendOne(values[intN(r, len(values))])
		return nil
	})
}

func shuffle(r *rand.Rand, n int, swap func(i, j int)) {
	if r == nil {
		rand.Shuffle(n, swap)
		return
	}
	r.Shuffle(n, swap)
}

func perm(r *rand.Rand, n int) []int {
	if r == nil {
		return rand.Perm(n)
	}
	return r.Perm(n)
}

func intN(r *rand.Rand, n int) int {
	if r == nil {
		return rand.IntN(n)
	}
	return r.IntN(n)
}
