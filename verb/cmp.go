package verb

import (
	"context"

	"github.com/kbukum/knife/engine"
	"github.com/kbukum/knife/errors"
	"github.com/kbukum/knife/util"
)

// All writes whether every element passes the predicate.
func All() engine.Verb {
	return engine.NewVerb("all", func(_ context.Context, s *engine.Session) error {
		return quantify(s, true)
	})
}

// Any writes whether at least one element passes the predicate.
func Any() engine.Verb {
	return engine.NewVerb("any", func(_ context.Context, s *engine.Session) error {
		return quantify(s, false)
	})
}

func quantify(s *engine.Session, all bool) error {
	it := s.Iter()
	defer it.Close()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		pass, err := s.Binding().Test(v)
		if err != nil {
			return err
		}
		if pass != all {
			s.AppendOne(!all)
			return nil
		}
	}
	s.AppendOne(all)
	return nil
}

// Unique drops repeated elements, or elements with a repeated key, keeping
// the first occurrence.
func Unique() engine.Verb {
	return engine.NewVerb("unique", func(_ context.Context, s *engine.Session) error {
		seen := make(map[any]struct{})
		out := make([]any, 0)
		err := eachValue(s, func(v any) error {
			k, err := s.Binding().Key(v)
			if err != nil {
				return err
			}
			hk := util.HashKey(k)
			if _, dup := seen[hk]; dup {
				return nil
			}
			seen[hk] = struct{}{}
			out = append(out, v)
			return nil
		})
		if err != nil {
			return err
		}
		s.ReplaceMany(out)
		return nil
	})
}

// set is an insertion-ordered set of elements.
type set struct {
	keys  map[any]struct{}
	items []any
}

func newSet(values []any) *set {
	st := &set{keys: make(map[any]struct{})}
	for _, v := range values {
		st.add(v)
	}
	return st
}

func (st *set) add(v any) {
	k := util.HashKey(v)
	if _, ok := st.keys[k]; ok {
		return
	}
	st.keys[k] = struct{}{}
	st.items = append(st.items, v)
}

func (st *set) has(v any) bool {
	_, ok := st.keys[util.HashKey(v)]
	return ok
}

func (st *set) filter(keep func(v any) bool) *set {
	out := newSet(nil)
	for _, v := range st.items {
		if keep(v) {
			out.add(v)
		}
	}
	return out
}

func (st *set) values() []any {
	if st.items == nil {
		return []any{}
	}
	return st.items
}

// stagedSets reads every element as a set. An empty Staging is EXHAUSTED.
func stagedSets(s *engine.Session, name string) ([]*set, error) {
	groups, err := tuples(s.Values())
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, errors.Exhausted(name)
	}
	sets := make([]*set, len(groups))
	for i, g := range groups {
		sets[i] = newSet(g)
	}
	return sets, nil
}

// foldSets reduces the staged sets left to right and writes the result as
// one tuple.
func foldSets(name string, step func(acc, next *set) *set) engine.Verb {
	return engine.NewVerb(name, func(_ context.Context, s *engine.Session) error {
		sets, err := stagedSets(s, name)
		if err != nil {
			return err
		}
		acc := sets[0]
		for _, next := range sets[1:] {
			acc = step(acc, next)
		}
		s.AppendOne(acc.values())
		return nil
	})
}

// Difference writes the elements of the first set found in no other.
func Difference() engine.Verb {
	return foldSets("difference", func(acc, next *set) *set {
		return acc.filter(func(v any) bool { return !next.has(v) })
	})
}

// Intersection writes the elements common to every set.
func Intersection() engine.Verb {
	return foldSets("intersection", func(acc, next *set) *set {
		return acc.filter(next.has)
	})
}

// Union writes every distinct element in first-seen order.
func Union() engine.Verb {
	return foldSets("union", func(acc, next *set) *set {
		out := newSet(acc.items)
		for _, v := range next.items {
			out.add(v)
		}
		return out
	})
}

// SymmetricDifference writes the elements found in an odd number of sets.
func SymmetricDifference() engine.Verb {
	return foldSets("symmetric_difference", func(acc, next *set) *set {
		out := acc.filter(func(v any) bool { return !next.has(v) })
		for _, v := range next.items {
			if !acc.has(v) {
				out.add(v)
			}
		}
		return out
	})
}

// relate compares the first set against every other one and writes
// whether the relation held for all of them.
func relate(name string, rel func(first, other *set) bool) engine.Verb {
	return engine.NewVerb(name, func(_ context.Context, s *engine.Session) error {
		sets, err := stagedSets(s, name)
		if err != nil {
			return err
		}
		for _, other := range sets[1:] {
			if !rel(sets[0], other) {
				s.AppendOne(false)
				return nil
			}
		}
		s.AppendOne(true)
		return nil
	})
}

// Disjointed writes whether the first set shares no element with the others.
func Disjointed() engine.Verb {
	return relate("disjointed", func(first, other *set) bool {
		for _, v := range first.items {
			if other.has(v) {
				return false
			}
		}
		return true
	})
}

// Subset writes whether the first set is contained in every other.
func Subset() engine.Verb {
	return relate("subset", contains(false))
}

// Superset writes whether the first set contains every other.
func Superset() engine.Verb {
	return relate("superset", contains(true))
}

func contains(outer bool) func(first, other *set) bool {
	return func(first, other *set) bool {
		small, big := first, other
		if outer {
			small, big = other, first
		}
		for _, v := range small.items {
			if !big.has(v) {
				return false
			}
		}
		return true
	}
}
