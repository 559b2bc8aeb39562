package buffer

import (
	"slices"

	"github.com/kbukum/knife/errors"
	"github.com/kbukum/knife/pipeline"
	"github.com/kbukum/knife/util"
)

// Lazy is a deferred buffer over a tee cursor. Nothing is pulled from the
// underlying iterators until the contents are read.
type Lazy struct {
	cur *cursor
}

// NewLazy creates an empty lazy buffer, optionally over the given iterators.
func NewLazy(sources ...pipeline.Iterator[any]) *Lazy {
	l := &Lazy{}
	for _, src := range sources {
		l.Extend(src)
	}
	return l
}

func (l *Lazy) Kind() Kind { return KindLazy }

func (l *Lazy) Len() int {
	if l.cur == nil {
		return 0
	}
	return pipeline.Count[any](l.cur.fork())
}

func (l *Lazy) Append(v any) {
	l.Extend(pipeline.Once(v))
}

func (l *Lazy) AppendLeft(v any) {
	l.prepend(pipeline.Once(v))
}

func (l *Lazy) Extend(it pipeline.Iterator[any]) {
	if l.cur == nil {
		l.cur = newCursor(it)
		return
	}
	l.cur = newCursor(pipeline.Concat[any](l.cur, it))
}

func (l *Lazy) ExtendLeft(it pipeline.Iterator[any]) {
	values := pipeline.Collect(it)
	slices.Reverse(values)
	l.prepend(pipeline.FromSlice(values))
}

func (l *Lazy) Reset(it pipeline.Iterator[any]) {
	l.Clear()
	l.cur = newCursor(it)
}

func (l *Lazy) Pop() (any, error) {
	values := l.materialize()
	if len(values) == 0 {
		return nil, errors.Exhausted("pop")
	}
	last := values[len(values)-1]
	l.rebuild(values[:len(values)-1])
	return last, nil
}

func (l *Lazy) PopLeft() (any, error) {
	if l.cur != nil {
		if v, ok := l.cur.Next(); ok {
			return v, nil
		}
	}
	return nil, errors.Exhausted("popleft")
}

func (l *Lazy) Insert(i int, v any) {
	values := l.materialize()
	values = slices.Insert(values, clampIndex(i, len(values)), v)
	l.rebuild(values)
}

func (l *Lazy) Delete(i int) error {
	values := l.materialize()
	idx := normIndex(i, len(values))
	if idx < 0 || idx >= len(values) {
		l.rebuild(values)
		return indexError(i)
	}
	l.rebuild(slices.Delete(values, idx, idx+1))
	return nil
}

func (l *Lazy) Remove(v any) error {
	i := l.Index(v)
	if i < 0 {
		return errors.NotFound("value", "")
	}
	return l.Delete(i)
}

func (l *Lazy) Index(v any) int {
	if l.cur == nil {
		return -1
	}
	it := l.cur.fork()
	defer it.Close()
	for i := 0; ; i++ {
		x, ok := it.Next()
		if !ok {
			return -1
		}
		if util.Equal(x, v) {
			return i
		}
	}
}

func (l *Lazy) Clear() {
	if l.cur != nil {
		_ = l.cur.Close()
		l.cur = nil
	}
}

func (l *Lazy) Fork() Buffer {
	if l.cur == nil {
		return NewLazy()
	}
	return &Lazy{cur: l.cur.fork()}
}

func (l *Lazy) Iter() pipeline.Iterator[any] {
	if l.cur == nil {
		return pipeline.Empty[any]()
	}
	return l.cur.fork()
}

func (l *Lazy) Drain() pipeline.Iterator[any] {
	if l.cur == nil {
		return pipeline.Empty[any]()
	}
	it := l.cur
	l.cur = nil
	return it
}

func (l *Lazy) Values() []any {
	return pipeline.Collect(l.Iter())
}

func (l *Lazy) prepend(head pipeline.Iterator[any]) {
	if l.cur == nil {
		l.cur = newCursor(head)
		return
	}
	l.cur = newCursor(pipeline.Concat[any](head, l.cur))
}

func (l *Lazy) materialize() []any {
	return pipeline.Collect(l.Drain())
}

func (l *Lazy) rebuild(values []any) {
	l.Clear()
	l.cur = newCursor(pipeline.FromSlice(values))
}
