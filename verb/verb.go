package verb

import (
	"context"
	"slices"
	"time"

	"github.com/kbukum/knife/engine"
	"github.com/kbukum/knife/pipeline"
	"github.com/kbukum/knife/util"
)

// Identity copies Staging into Pending unchanged. The queue's sync and
// shift rotations run it.
func Identity() engine.Verb {
	return engine.NewVerb("identity", func(_ context.Context, s *engine.Session) error {
		s.ReplaceManyLazy(s.Iter())
		return nil
	})
}

// Pack writes every staged element as one tuple.
func Pack() engine.Verb {
	return engine.NewVerb("pack", func(_ context.Context, s *engine.Session) error {
		s.AppendOne(s.Values())
		return nil
	})
}

// eachValue calls fn for every staged element, stopping at the first error.
func eachValue(s *engine.Session, fn func(v any) error) error {
	return pipeline.ForEach(s.Iter(), fn)
}

// mapValues applies fn to every staged element and replaces Pending with
// the results.
func mapValues(s *engine.Session, fn func(v any) (any, error)) error {
	out := make([]any, 0)
	err := eachValue(s, func(v any) error {
		r, err := fn(v)
		if err != nil {
			return err
		}
		out = append(out, r)
		return nil
	})
	if err != nil {
		return err
	}
	s.ReplaceMany(out)
	return nil
}

// keys maps every staged element through the binding's key function.
func keys(s *engine.Session, values []any) ([]any, error) {
	b := s.Binding()
	out := make([]any, len(values))
	for i, v := range values {
		k, err := b.Key(v)
		if err != nil {
			return nil, err
		}
		out[i] = k
	}
	return out, nil
}

// sortedByKey returns values stably ordered by their keys.
func sortedByKey(values, keys []any) ([]any, error) {
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	var cmpErr error
	slices.SortStableFunc(idx, func(a, b int) int {
		c, err := util.Compare(keys[a], keys[b])
		if err != nil && cmpErr == nil {
			cmpErr = err
		}
		return c
	})
	if cmpErr != nil {
		return nil, cmpErr
	}
	out := make([]any, len(values))
	for i, j := range idx {
		out[i] = values[j]
	}
	return out, nil
}

// tuples expands every staged element into its values.
func tuples(values []any) ([][]any, error) {
	out := make([][]any, len(values))
	for i, v := range values {
		vals, err := util.Values(v)
		if err != nil {
			return nil, err
		}
		out[i] = vals
	}
	return out, nil
}

// wait blocks for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// asAny widens a pipeline of tuples to a pipeline of elements.
func asAny(it pipeline.Iterator[[]any]) pipeline.Iterator[any] {
	return pipeline.Map(it, func(t []any) any { return t })
}
