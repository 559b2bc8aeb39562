package verb

import (
	"context"
	"slices"

	"github.com/kbukum/knife/engine"
	"github.com/kbukum/knife/errors"
	"github.com/kbukum/knife/util"
)

// Sum writes start plus every element. Integers stay int; any float makes
// the total a float64.
func Sum(start any) engine.Verb {
	return engine.NewVerb("sum", func(_ context.Context, s *engine.Session) error {
		total := start
		if total == nil {
			total = 0
		}
		if !util.IsNumber(total) {
			return errors.NotNumeric(total)
		}
		err := eachValue(s, func(v any) error {
			var err error
			total, err = util.Add(total, v)
			return err
		})
		if err != nil {
			return err
		}
		s.AppendOne(total)
		return nil
	})
}

// FSum writes the float64 sum of every element with compensated rounding.
func FSum() engine.Verb {
	return engine.NewVerb("fsum", func(_ context.Context, s *engine.Session) error {
		fs, err := util.Floats(s.Values())
		if err != nil {
			return err
		}
		s.AppendOne(util.FSum(fs))
		return nil
	})
}

// Average writes the arithmetic mean as a float64.
func Average() engine.Verb {
	return engine.NewVerb("average", func(_ context.Context, s *engine.Session) error {
		fs, err := util.Floats(s.Values())
		if err != nil {
			return err
		}
		if len(fs) == 0 {
			return errors.Exhausted("average")
		}
		s.AppendOne(util.FSum(fs) / float64(len(fs)))
		return nil
	})
}

// Min writes the smallest element, by key when a callable is tapped.
func Min() engine.Verb {
	return engine.NewVerb("min", func(_ context.Context, s *engine.Session) error {
		lo, _, err := extremes(s, "min")
		if err != nil {
			return err
		}
		s.AppendOne(lo)
		return nil
	})
}

// Max writes the largest element, by key when a callable is tapped.
func Max() engine.Verb {
	return engine.NewVerb("max", func(_ context.Context, s *engine.Session) error {
		_, hi, err := extremes(s, "max")
		if err != nil {
			return err
		}
		s.AppendOne(hi)
		return nil
	})
}

// MinMax writes the smallest and then the largest element.
func MinMax() engine.Verb {
	return engine.NewVerb("minmax", func(_ context.Context, s *engine.Session) error {
		lo, hi, err := extremes(s, "minmax")
		if err != nil {
			return err
		}
		s.AppendOne(lo)
		s.AppendOne(hi)
		return nil
	})
}

// Range writes the spread between the largest and smallest element.
func Range() engine.Verb {
	return engine.NewVerb("range", func(_ context.Context, s *engine.Session) error {
		lo, hi, err := extremes(s, "range")
		if err != nil {
			return err
		}
		spread, err := util.Sub(hi, lo)
		if err != nil {
			return err
		}
		s.AppendOne(spread)
		return nil
	})
}

// extremes finds the first smallest and first largest element by key.
func extremes(s *engine.Session, name string) (lo, hi any, err error) {
	values := s.Values()
	if len(values) == 0 {
		return nil, nil, errors.Exhausted(name)
	}
	ks, err := keys(s, values)
	if err != nil {
		return nil, nil, err
	}
	li, hiIdx := 0, 0
	for i := 1; i < len(values); i++ {
		c, err := util.Compare(ks[i], ks[li])
		if err != nil {
			return nil, nil, err
		}
		if c < 0 {
			li = i
		}
		c, err = util.Compare(ks[i], ks[hiIdx])
		if err != nil {
			return nil, nil, err
		}
		if c > 0 {
			hiIdx = i
		}
	}
	return values[li], values[hiIdx], nil
}

// Median writes the middle element of the sorted values, or the mean of
// the two middle ones for an even count.
func Median() engine.Verb {
	return engine.NewVerb("median", func(_ context.Context, s *engine.Session) error {
		values := s.Values()
		n := len(values)
		if n == 0 {
			return errors.Exhausted("median")
		}
		sorted, err := sortedByKey(values, values)
		if err != nil {
			return err
		}
		if n%2 == 1 {
			s.AppendOne(sorted[n/2])
			return nil
		}
		fs, err := util.Floats(sorted[n/2-1 : n/2+1])
		if err != nil {
			return err
		}
		s.AppendOne((fs[0] + fs[1]) / 2)
		return nil
	})
}

// counted is one row of a frequency table.
type counted struct {
	value any
	count int
}

// frequencies ranks the staged elements by descending count, ties in
// first-seen order.
func frequencies(values []any) []counted {
	index := make(map[any]int)
	var table []counted
	for _, v := range values {
		k := util.HashKey(v)
		if i, ok := index[k]; ok {
			table[i].count++
			continue
		}
		index[k] = len(table)
		table = append(table, counted{value: v, count: 1})
	}
	slices.SortStableFunc(table, func(a, b counted) int { return b.count - a.count })
	return table
}

// Mode writes the most common element.
func Mode() engine.Verb {
	return engine.NewVerb("mode", func(_ context.Context, s *engine.Session) error {
		table := frequencies(s.Values())
		if len(table) == 0 {
			return errors.Exhausted("mode")
		}
		s.AppendOne(table[0].value)
		return nil
	})
}

// Uncommon writes the least common element, the last one ranked.
func Uncommon() engine.Verb {
	return engine.NewVerb("uncommon", func(_ context.Context, s *engine.Session) error {
		table := frequencies(s.Values())
		if len(table) == 0 {
			return errors.Exhausted("uncommon")
		}
		s.AppendOne(table[len(table)-1].value)
		return nil
	})
}

// Frequency writes a (value, count) pair per distinct element, most
// common first.
func Frequency() engine.Verb {
	return engine.NewVerb("frequency", func(_ context.Context, s *engine.Session) error {
		table := frequencies(s.Values())
		out := make([]any, len(table))
		for i, row := range table {
			out[i] = []any{row.value, row.count}
		}
		s.ReplaceMany(out)
		return nil
	})
}
