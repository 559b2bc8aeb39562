package buffer

import (
	"github.com/kbukum/knife/errors"
	"github.com/kbukum/knife/pipeline"
	"github.com/kbukum/knife/util"
)

type node struct {
	value any
	prev  *node
	next  *node
}

// Eager is a doubly linked deque.
type Eager struct {
	head *node
	tail *node
	size int
}

// NewEager creates an empty deque, optionally seeded with values.
func NewEager(values ...any) *Eager {
	d := &Eager{}
	for _, v := range values {
		d.Append(v)
	}
	return d
}

func (d *Eager) Kind() Kind { return KindEager }

func (d *Eager) Len() int { return d.size }

func (d *Eager) Append(v any) {
	n := &node{value: v, prev: d.tail}
	if d.tail == nil {
		d.head = n
	} else {
		d.tail.next = n
	}
	d.tail = n
	d.size++
}

func (d *Eager) AppendLeft(v any) {
	n := &node{value: v, next: d.head}
	if d.head == nil {
		d.tail = n
	} else {
		d.head.prev = n
	}
	d.head = n
	d.size++
}

func (d *Eager) Extend(it pipeline.Iterator[any]) {
	_ = pipeline.ForEach(it, func(v any) error {
		d.Append(v)
		return nil
	})
}

func (d *Eager) ExtendLeft(it pipeline.Iterator[any]) {
	_ = pipeline.ForEach(it, func(v any) error {
		d.AppendLeft(v)
		return nil
	})
}

func (d *Eager) Reset(it pipeline.Iterator[any]) {
	d.Clear()
	d.Extend(it)
}

func (d *Eager) Pop() (any, error) {
	if d.tail == nil {
		return nil, errors.Exhausted("pop")
	}
	n := d.tail
	d.unlink(n)
	return n.value, nil
}

func (d *Eager) PopLeft() (any, error) {
	if d.head == nil {
		return nil, errors.Exhausted("popleft")
	}
	n := d.head
	d.unlink(n)
	return n.value, nil
}

// Rotate moves n elements from the back to the front. A negative n moves
// elements from the front to the back.
func (d *Eager) Rotate(n int) {
	if d.size < 2 {
		return
	}
	n %= d.size
	for ; n > 0; n-- {
		v, _ := d.Pop()
		d.AppendLeft(v)
	}
	for ; n < 0; n++ {
		v, _ := d.PopLeft()
		d.Append(v)
	}
}

func (d *Eager) Insert(i int, v any) {
	i = clampIndex(i, d.size)
	d.Rotate(-i)
	d.AppendLeft(v)
	d.Rotate(i)
}

func (d *Eager) Delete(i int) error {
	idx := normIndex(i, d.size)
	if idx < 0 || idx >= d.size {
		return indexError(i)
	}
	d.Rotate(-idx)
	_, _ = d.PopLeft()
	d.Rotate(idx)
	return nil
}

func (d *Eager) Remove(v any) error {
	i := d.Index(v)
	if i < 0 {
		return errors.NotFound("value", "")
	}
	return d.Delete(i)
}

func (d *Eager) Index(v any) int {
	i := 0
	for n := d.head; n != nil; n = n.next {
		if util.Equal(n.value, v) {
			return i
		}
		i++
	}
	return -1
}

func (d *Eager) Clear() {
	d.head, d.tail, d.size = nil, nil, 0
}

func (d *Eager) Fork() Buffer {
	return NewEager(d.Values()...)
}

func (d *Eager) Iter() pipeline.Iterator[any] {
	return pipeline.FromSlice(d.Values())
}

func (d *Eager) Drain() pipeline.Iterator[any] {
	values := d.Values()
	d.Clear()
	return pipeline.FromSlice(values)
}

func (d *Eager) Values() []any {
	out := make([]any, 0, d.size)
	for n := d.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

func (d *Eager) unlink(n *node) {
	if n.prev == nil {
		d.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		d.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.prev, n.next = nil, nil
	d.size--
}
