package queue

import (
	"time"

	"github.com/kbukum/knife/validation"
	"github.com/kbukum/knife/verb"
)

// Each unpacks every element into an (args, kwargs) pair, calls the
// callable with it and writes the results.
func (q *Queue) Each() *Queue { return q.Run(verb.Each()) }

// Invoke calls the named method on every element. A method returning
// nothing yields the element itself.
func (q *Queue) Invoke(method string) *Queue { return q.Run(verb.Invoke(method)) }

// Map replaces every element with the callable's result.
func (q *Queue) Map() *Queue { return q.Run(verb.Map()) }

// StarMap calls the callable with each element's values as arguments.
func (q *Queue) StarMap() *Queue { return q.Run(verb.StarMap()) }

// DelayEach is Each with a pause before every element.
func (q *Queue) DelayEach(d time.Duration) *Queue { return q.Run(verb.DelayEach(d)) }

// DelayMap is Map with a pause before every element.
func (q *Queue) DelayMap(d time.Duration) *Queue { return q.Run(verb.DelayMap(d)) }

// DelayInvoke is Invoke with a pause before every element.
func (q *Queue) DelayInvoke(d time.Duration, method string) *Queue {
	return q.Run(verb.DelayInvoke(d, method))
}

// Times calls the callable n times with the elements as arguments.
func (q *Queue) Times(n int) *Queue { return q.Run(verb.Times(n)) }

// Filter keeps the elements passing the predicate.
func (q *Queue) Filter() *Queue { return q.Run(verb.Filter()) }

// Reject drops the elements passing the predicate.
func (q *Queue) Reject() *Queue { return q.Run(verb.Reject()) }

// Partition splits the elements into passing and failing tuples.
func (q *Queue) Partition() *Queue { return q.Run(verb.Partition()) }

// Compact drops falsy elements.
func (q *Queue) Compact() *Queue { return q.Run(verb.Compact()) }

// Without drops the elements equal to any of values.
func (q *Queue) Without(values ...any) *Queue { return q.Run(verb.Without(values...)) }

// Pick reads the named fields or entries of every element.
func (q *Queue) Pick(names ...string) *Queue { return q.Run(verb.Pick(names...)) }

// Pluck reads the given keys or indexes of every element.
func (q *Queue) Pluck(keys ...any) *Queue { return q.Run(verb.Pluck(keys...)) }

// Members lists the (name, value) pairs of every element's own fields.
func (q *Queue) Members() *Queue { return q.Run(verb.Members()) }

// DeepMembers lists the (name, value) pairs of every visible field,
// promoted ones included.
func (q *Queue) DeepMembers() *Queue { return q.Run(verb.DeepMembers()) }

// All writes whether every element passes the predicate.
func (q *Queue) All() *Queue { return q.Run(verb.All()) }

// Any writes whether some element passes the predicate.
func (q *Queue) Any() *Queue { return q.Run(verb.Any()) }

// Unique drops repeated elements.
func (q *Queue) Unique() *Queue { return q.Run(verb.Unique()) }

// Difference writes the values of the first element found in no other.
func (q *Queue) Difference() *Queue { return q.Run(verb.Difference()) }

// Intersection writes the values common to every element.
func (q *Queue) Intersection() *Queue { return q.Run(verb.Intersection()) }

// Union writes every distinct value of every element.
func (q *Queue) Union() *Queue { return q.Run(verb.Union()) }

// SymmetricDifference writes the values found in an odd number of elements.
func (q *Queue) SymmetricDifference() *Queue { return q.Run(verb.SymmetricDifference()) }

// Disjointed writes whether the first element shares no value with the others.
func (q *Queue) Disjointed() *Queue { return q.Run(verb.Disjointed()) }

// Subset writes whether the first element is contained in every other.
func (q *Queue) Subset() *Queue { return q.Run(verb.Subset()) }

// Superset writes whether the first element contains every other.
func (q *Queue) Superset() *Queue { return q.Run(verb.Superset()) }

// Sum adds the elements to an optional start value, 0 by default.
func (q *Queue) Sum(start ...any) *Queue {
	if err := validation.New().Max("start", len(start), 1).Validate(); err != nil {
		return q.halt(err)
	}
	var s any = 0
	if len(start) == 1 {
		s = start[0]
	}
	return q.Run(verb.Sum(s))
}

// FSum adds the elements as floats with compensated rounding.
func (q *Queue) FSum() *Queue { return q.Run(verb.FSum()) }

// Average writes the arithmetic mean.
func (q *Queue) Average() *Queue { return q.Run(verb.Average()) }

// Min writes the smallest element.
func (q *Queue) Min() *Queue { return q.Run(verb.Min()) }

// Max writes the largest element.
func (q *Queue) Max() *Queue { return q.Run(verb.Max()) }

// MinMax writes the smallest and largest element.
func (q *Queue) MinMax() *Queue { return q.Run(verb.MinMax()) }

// Median writes the middle element.
func (q *Queue) Median() *Queue { return q.Run(verb.Median()) }

// Mode writes the most common element.
func (q *Queue) Mode() *Queue { return q.Run(verb.Mode()) }

// Uncommon writes the least common element.
func (q *Queue) Uncommon() *Queue { return q.Run(verb.Uncommon()) }

// Frequency writes (value, count) pairs, most common first.
func (q *Queue) Frequency() *Queue { return q.Run(verb.Frequency()) }

// Range writes the spread between the largest and smallest element.
func (q *Queue) Range() *Queue { return q.Run(verb.Range()) }

// Sort orders the elements.
func (q *Queue) Sort() *Queue { return q.Run(verb.Sort()) }

// Reverse reverses the elements.
func (q *Queue) Reverse() *Queue { return q.Run(verb.Reverse()) }

// Group writes (key, members) pairs for runs of equal keys.
func (q *Queue) Group() *Queue { return q.Run(verb.Group()) }

// Grouper splits the elements into tuples of n padded with fill.
func (q *Queue) Grouper(n int, fill any) *Queue { return q.Run(verb.Grouper(n, fill)) }

// Shuffle reorders the elements at random.
func (q *Queue) Shuffle() *Queue { return q.Run(verb.Shuffle(q.opts.Rand)) }

// Sample draws n elements at random.
func (q *Queue) Sample(n int) *Queue { return q.Run(verb.Sample(n, q.opts.Rand)) }

// Choice draws one element at random.
func (q *Queue) Choice() *Queue { return q.Run(verb.Choice(q.opts.Rand)) }

// Reduce folds the elements through the callable from an optional seed.
func (q *Queue) Reduce(seed ...any) *Queue { return q.Run(verb.Reduce(seed...)) }

// ReduceRight folds like Reduce with the accumulator passed second.
func (q *Queue) ReduceRight(seed ...any) *Queue { return q.Run(verb.ReduceRight(seed...)) }

// Flatten removes one level of nesting.
func (q *Queue) Flatten() *Queue { return q.Run(verb.Flatten()) }

// Smash removes every level of nesting.
func (q *Queue) Smash() *Queue { return q.Run(verb.Smash()) }

// Merge combines sorted element sequences into one sorted sequence.
func (q *Queue) Merge() *Queue { return q.Run(verb.Merge()) }

// Pairwise writes every adjacent pair.
func (q *Queue) Pairwise() *Queue { return q.Run(verb.Pairwise()) }

// RoundRobin interleaves the element sequences.
func (q *Queue) RoundRobin() *Queue { return q.Run(verb.RoundRobin()) }

// Zip writes tuples of the i-th values of every element sequence.
func (q *Queue) Zip() *Queue { return q.Run(verb.Zip()) }

// Repeat writes the elements as a tuple n times.
func (q *Queue) Repeat(n int) *Queue { return q.Run(verb.Repeat(n)) }

// Product writes the Cartesian product of the element sequences.
func (q *Queue) Product(n int) *Queue { return q.Run(verb.Product(n)) }

// Combinations writes every r-length combination.
func (q *Queue) Combinations(r int) *Queue { return q.Run(verb.Combinations(r)) }

// Permutations writes every r-length permutation; 0 means full length.
func (q *Queue) Permutations(r int) *Queue { return q.Run(verb.Permutations(r)) }

// Span writes the integers from start up to stop in steps of step.
func (q *Queue) Span(start, stop, step int) *Queue { return q.Run(verb.Span(start, stop, step)) }

// First writes the first element, or the first n.
func (q *Queue) First(n ...int) *Queue {
	k, err := count(n)
	if err != nil {
		return q.halt(err)
	}
	return q.Run(verb.First(k))
}

// Last writes the last element, or the last n.
func (q *Queue) Last(n ...int) *Queue {
	k, err := count(n)
	if err != nil {
		return q.halt(err)
	}
	return q.Run(verb.Last(k))
}

func count(n []int) (int, error) {
	if err := validation.New().Max("n", len(n), 1).Validate(); err != nil {
		return 0, err
	}
	if len(n) == 0 {
		return 0, nil
	}
	return n[0], nil
}

// Nth writes the element at index i, or def when there is none.
func (q *Queue) Nth(i int, def any) *Queue { return q.Run(verb.Nth(i, def)) }

// At writes the element at index i, counting from the back when negative.
func (q *Queue) At(i int) *Queue { return q.Run(verb.At(i)) }

// Initial writes every element but the last.
func (q *Queue) Initial() *Queue { return q.Run(verb.Initial()) }

// Rest writes every element but the first.
func (q *Queue) Rest() *Queue { return q.Run(verb.Rest()) }

// Snatch writes the last n elements.
func (q *Queue) Snatch(n int) *Queue { return q.Run(verb.Snatch(n)) }

// Slice writes the elements from start up to stop, every step-th. A
// negative stop means no bound.
func (q *Queue) Slice(start, stop, step int) *Queue { return q.Run(verb.Slice(start, stop, step)) }

func (q *Queue) halt(err error) *Queue {
	if q.err == nil {
		q.fail(err)
	}
	return q
}
