package pipeline

import "iter"

// Iterator provides pull-based sequential access to a stream of values.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false) when exhausted.
	Next() (T, bool)
	// Close releases any resources held by the iterator.
	Close() error
}

// --- Constructors ---

// Empty returns an exhausted iterator.
func Empty[T any]() Iterator[T] {
	return &sliceIter[T]{}
}

// FromSlice creates an iterator over a slice of values.
// The slice is read in place; callers must not mutate it while iterating.
func FromSlice[T any](items []T) Iterator[T] {
	return &sliceIter[T]{items: items}
}

// Once creates an iterator yielding a single value.
func Once[T any](v T) Iterator[T] {
	return &sliceIter[T]{items: []T{v}}
}

// FromFunc creates an iterator from a next function.
func FromFunc[T any](next func() (T, bool)) Iterator[T] {
	return &funcIter[T]{next: next}
}

// FromSeq adapts a range-over-func sequence. The sequence is pulled one
// value at a time and stopped on exhaustion or Close.
func FromSeq[T any](seq iter.Seq[T]) Iterator[T] {
	return &seqIter[T]{seq: seq}
}

// --- Terminals ---

// Collect pulls all values into a slice and closes the iterator.
func Collect[T any](it Iterator[T]) []T {
	defer it.Close()
	result := make([]T, 0)
	for {
		val, ok := it.Next()
		if !ok {
			return result
		}
		result = append(result, val)
	}
}

// Count pulls all values, returning how many there were, and closes the iterator.
func Count[T any](it Iterator[T]) int {
	defer it.Close()
	n := 0
	for {
		if _, ok := it.Next(); !ok {
			return n
		}
		n++
	}
}

// ForEach pulls all values and calls fn for each, stopping at the first error.
func ForEach[T any](it Iterator[T], fn func(T) error) error {
	defer it.Close()
	for {
		val, ok := it.Next()
		if !ok {
			return nil
		}
		if err := fn(val); err != nil {
			return err
		}
	}
}

// Seq exposes the iterator as a range-over-func sequence. The iterator is
// closed when the loop finishes or breaks.
func Seq[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		defer it.Close()
		for {
			val, ok := it.Next()
			if !ok || !yield(val) {
				return
			}
		}
	}
}

// --- Internal iterators ---

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next() (T, bool) {
	if it.index >= len(it.items) {
		var zero T
		return zero, false
	}
	val := it.items[it.index]
	it.index++
	return val, true
}

func (it *sliceIter[T]) Close() error { return nil }

type funcIter[T any] struct {
	next func() (T, bool)
	done bool
}

func (it *funcIter[T]) Next() (T, bool) {
	if it.done {
		var zero T
		return zero, false
	}
	val, ok := it.next()
	if !ok {
		it.done = true
	}
	return val, ok
}

func (it *funcIter[T]) Close() error {
	it.done = true
	return nil
}

type seqIter[T any] struct {
	seq  iter.Seq[T]
	next func() (T, bool)
	stop func()
	done bool
}

func (it *seqIter[T]) Next() (T, bool) {
	var zero T
	if it.done {
		return zero, false
	}
	if it.next == nil {
		it.next, it.stop = iter.Pull(it.seq)
	}
	val, ok := it.next()
	if !ok {
		it.Close()
		return zero, false
	}
	return val, true
}

func (it *seqIter[T]) Close() error {
	it.done = true
	if it.stop != nil {
		it.stop()
		it.stop = nil
	}
	return nil
}
