package pipeline

// Map transforms each value using fn.
func Map[I, O any](source Iterator[I], fn func(I) O) Iterator[O] {
	return &mapIter[I, O]{source: source, fn: fn}
}

// FlatMap transforms each value into an iterator and flattens the results.
func FlatMap[I, O any](source Iterator[I], fn func(I) Iterator[O]) Iterator[O] {
	return &flatMapIter[I, O]{source: source, fn: fn}
}

// Filter keeps only values that satisfy the predicate.
func Filter[T any](source Iterator[T], fn func(T) bool) Iterator[T] {
	return &filterIter[T]{source: source, fn: fn}
}

// Concat joins multiple iterators sequentially.
// All values from the first iterator are yielded before the second, etc.
func Concat[T any](iters ...Iterator[T]) Iterator[T] {
	return &concatIter[T]{iters: iters}
}

// Take yields at most n values.
func Take[T any](source Iterator[T], n int) Iterator[T] {
	return &takeIter[T]{source: source, left: n}
}

// Skip drops the first n values.
func Skip[T any](source Iterator[T], n int) Iterator[T] {
	return &skipIter[T]{source: source, skip: n}
}

// Stride yields every step-th value starting with the first one.
// A step below 1 is treated as 1.
func Stride[T any](source Iterator[T], step int) Iterator[T] {
	if step < 1 {
		step = 1
	}
	return &strideIter[T]{source: source, step: step}
}

// Chunk groups values into fixed-size slices. When pad is true the final
// short chunk is padded with fill, otherwise it is emitted short.
func Chunk[T any](source Iterator[T], size int, pad bool, fill T) Iterator[[]T] {
	if size < 1 {
		size = 1
	}
	return &chunkIter[T]{source: source, size: size, pad: pad, fill: fill}
}

// Window emits overlapping windows of width size, advancing one value at
// a time. Sources shorter than size yield nothing.
func Window[T any](source Iterator[T], size int) Iterator[[]T] {
	if size < 1 {
		size = 1
	}
	return &windowIter[T]{source: source, size: size}
}

// Interleave takes one value from each iterator in turn, skipping the
// exhausted ones, until all are exhausted.
func Interleave[T any](iters ...Iterator[T]) Iterator[T] {
	live := make([]Iterator[T], len(iters))
	copy(live, iters)
	return &interleaveIter[T]{iters: live}
}

// Reverse yields the source values back to front. The source is drained
// on the first call to Next.
func Reverse[T any](source Iterator[T]) Iterator[T] {
	return &reverseIter[T]{source: source}
}

// --- Iterator implementations ---

type mapIter[I, O any] struct {
	source Iterator[I]
	fn     func(I) O
}

func (it *mapIter[I, O]) Next() (O, bool) {
	val, ok := it.source.Next()
	if !ok {
		var zero O
		return zero, false
	}
	return it.fn(val), true
}

func (it *mapIter[I, O]) Close() error { return it.source.Close() }

type flatMapIter[I, O any] struct {
	source  Iterator[I]
	fn      func(I) Iterator[O]
	current Iterator[O]
}

func (it *flatMapIter[I, O]) Next() (O, bool) {
	for {
		if it.current != nil {
			val, ok := it.current.Next()
			if ok {
				return val, true
			}
			_ = it.current.Close()
			it.current = nil
		}
		in, ok := it.source.Next()
		if !ok {
			var zero O
			return zero, false
		}
		it.current = it.fn(in)
	}
}

func (it *flatMapIter[I, O]) Close() error {
	if it.current != nil {
		_ = it.current.Close()
		it.current = nil
	}
	return it.source.Close()
}

type filterIter[T any] struct {
	source Iterator[T]
	fn     func(T) bool
}

func (it *filterIter[T]) Next() (T, bool) {
	for {
		val, ok := it.source.Next()
		if !ok {
			return val, false
		}
		if it.fn(val) {
			return val, true
		}
	}
}

func (it *filterIter[T]) Close() error { return it.source.Close() }

type concatIter[T any] struct {
	iters []Iterator[T]
	index int
}

func (it *concatIter[T]) Next() (T, bool) {
	for it.index < len(it.iters) {
		val, ok := it.iters[it.index].Next()
		if ok {
			return val, true
		}
		_ = it.iters[it.index].Close()
		it.index++
	}
	var zero T
	return zero, false
}

func (it *concatIter[T]) Close() error {
	var firstErr error
	for _, iter := range it.iters[it.index:] {
		if err := iter.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	it.index = len(it.iters)
	return firstErr
}

type takeIter[T any] struct {
	source Iterator[T]
	left   int
}

func (it *takeIter[T]) Next() (T, bool) {
	if it.left <= 0 {
		var zero T
		return zero, false
	}
	it.left--
	return it.source.Next()
}

func (it *takeIter[T]) Close() error { return it.source.Close() }

type skipIter[T any] struct {
	source Iterator[T]
	skip   int
}

func (it *skipIter[T]) Next() (T, bool) {
	for ; it.skip > 0; it.skip-- {
		if val, ok := it.source.Next(); !ok {
			return val, false
		}
	}
	return it.source.Next()
}

func (it *skipIter[T]) Close() error { return it.source.Close() }

type strideIter[T any] struct {
	source  Iterator[T]
	step    int
	started bool
}

func (it *strideIter[T]) Next() (T, bool) {
	if it.started {
		for i := 1; i < it.step; i++ {
			if val, ok := it.source.Next(); !ok {
				return val, false
			}
		}
	}
	it.started = true
	return it.source.Next()
}

func (it *strideIter[T]) Close() error { return it.source.Close() }

type chunkIter[T any] struct {
	source Iterator[T]
	size   int
	pad    bool
	fill   T
	done   bool
}

func (it *chunkIter[T]) Next() ([]T, bool) {
	if it.done {
		return nil, false
	}
	chunk := make([]T, 0, it.size)
	for len(chunk) < it.size {
		val, ok := it.source.Next()
		if !ok {
			it.done = true
			break
		}
		chunk = append(chunk, val)
	}
	if len(chunk) == 0 {
		return nil, false
	}
	for it.pad && len(chunk) < it.size {
		chunk = append(chunk, it.fill)
	}
	return chunk, true
}

func (it *chunkIter[T]) Close() error { return it.source.Close() }

type windowIter[T any] struct {
	source Iterator[T]
	size   int
	window []T
}

func (it *windowIter[T]) Next() ([]T, bool) {
	if len(it.window) == it.size {
		it.window = it.window[1:]
	}
	for len(it.window) < it.size {
		val, ok := it.source.Next()
		if !ok {
			return nil, false
		}
		it.window = append(it.window, val)
	}
	out := make([]T, it.size)
	copy(out, it.window)
	return out, true
}

func (it *windowIter[T]) Close() error { return it.source.Close() }

type interleaveIter[T any] struct {
	iters []Iterator[T]
	index int
}

func (it *interleaveIter[T]) Next() (T, bool) {
	for len(it.iters) > 0 {
		if it.index >= len(it.iters) {
			it.index = 0
		}
		current := it.iters[it.index]
		val, ok := current.Next()
		if ok {
			it.index++
			return val, true
		}
		_ = current.Close()
		it.iters = append(it.iters[:it.index], it.iters[it.index+1:]...)
	}
	var zero T
	return zero, false
}

func (it *interleaveIter[T]) Close() error {
	var firstErr error
	for _, iter := range it.iters {
		if err := iter.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	it.iters = nil
	return firstErr
}

type reverseIter[T any] struct {
	source Iterator[T]
	items  []T
	loaded bool
}

func (it *reverseIter[T]) Next() (T, bool) {
	if !it.loaded {
		it.items = Collect(it.source)
		it.loaded = true
	}
	n := len(it.items)
	if n == 0 {
		var zero T
		return zero, false
	}
	val := it.items[n-1]
	it.items = it.items[:n-1]
	return val, true
}

func (it *reverseIter[T]) Close() error {
	it.items = nil
	if !it.loaded {
		it.loaded = true
		return it.source.Close()
	}
	return nil
}
