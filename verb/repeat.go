package verb

import (
	"context"
	"slices"

	"github.com/kbukum/knife/engine"
	"github.com/kbukum/knife/pipeline"
	"github.com/kbukum/knife/validation"
)

// Repeat writes the staged elements as one tuple, n times.
func Repeat(n int) engine.Verb {
	return engine.NewVerb("repeat", func(_ context.Context, s *engine.Session) error {
		if err := validation.New().Min("n", n, 0).Validate(); err != nil {
			return err
		}
		values := s.Values()
		out := make([]any, n)
		for i := range out {
			out[i] = slices.Clone(values)
		}
		s.ReplaceMany(out)
		return nil
	})
}

// Product yields the Cartesian product of the element sequences, the
// whole list of sequences repeated n times.
func Product(n int) engine.Verb {
	return engine.NewVerb("product", func(_ context.Context, s *engine.Session) error {
		if err := validation.New().Min("n", n, 1).Validate(); err != nil {
			return err
		}
		seqs, err := tuples(s.Values())
		if err != nil {
			return err
		}
		pools := make([][]any, 0, len(seqs)*n)
		for range n {
			pools = append(pools, seqs...)
		}
		rows := [][]any{{}}
		for _, pool := range pools {
			next := make([][]any, 0, len(rows)*len(pool))
			for _, row := range rows {
				for _, v := range pool {
					next = append(next, append(slices.Clip(row), v))
				}
			}
			rows = next
		}
		out := make([]any, len(rows))
		for i, row := range rows {
			out[i] = row
		}
		s.ReplaceMany(out)
		return nil
	})
}

// Combinations yields every r-length tuple of elements in positional order.
func Combinations(r int) engine.Verb {
	return engine.NewVerb("combinations", func(_ context.Context, s *engine.Session) error {
		if err := validation.New().Min("r", r, 0).Validate(); err != nil {
			return err
		}
		pool := s.Values()
		out := make([]any, 0)
		if r > len(pool) {
			s.ReplaceMany(out)
			return nil
		}
		idx := make([]int, r)
		for i := range idx {
			idx[i] = i
		}
		for {
			out = append(out, pick(pool, idx))
			i := r - 1
			for i >= 0 && idx[i] == i+len(pool)-r {
				i--
			}
			if i < 0 {
				break
			}
			idx[i]++
			for j := i + 1; j < r; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
		s.ReplaceMany(out)
		return nil
	})
}

// Permutations yields every r-length ordering of elements. r of 0 means
// all of them.
func Permutations(r int) engine.Verb {
	return engine.NewVerb("permutations", func(_ context.Context, s *engine.Session) error {
		if err := validation.New().Min("r", r, 0).Validate(); err != nil {
			return err
		}
		pool := s.Values()
		if r == 0 {
			r = len(pool)
		}
		out := make([]any, 0)
		if r > len(pool) {
			s.ReplaceMany(out)
			return nil
		}
		used := make([]bool, len(pool))
		idx := make([]int, 0, r)
		var walk func()
		walk = func() {
			if len(idx) == r {
				out = append(out, pick(pool, idx))
				return
			}
			for i := range pool {
				if used[i] {
					continue
				}
				used[i] = true
				idx = append(idx, i)
				walk()
				idx = idx[:len(idx)-1]
				used[i] = false
			}
		}
		walk()
		s.ReplaceMany(out)
		return nil
	})
}

func pick(pool []any, idx []int) []any {
	row := make([]any, len(idx))
	for i, j := range idx {
		row[i] = pool[j]
	}
	return row
}

// Span replaces the elements with the integers from start up to, not
// including, stop in steps of step.
func Span(start, stop, step int) engine.Verb {
	return engine.NewVerb("span", func(_ context.Context, s *engine.Session) error {
		if err := validation.New().NonZero("step", step).Validate(); err != nil {
			return err
		}
		next := start
		s.ReplaceManyLazy(pipeline.FromFunc(func() (any, bool) {
			if (step > 0 && next >= stop) || (step < 0 && next <= stop) {
				return nil, false
			}
			v := next
			next += step
			return v, true
		}))
		return nil
	})
}
