package buffer

import (
	"fmt"
	"strings"

	"github.com/kbukum/knife/errors"
	"github.com/kbukum/knife/pipeline"
)

// Kind names a buffer backend.
type Kind int

const (
	// KindEager is the mutable deque backend.
	KindEager Kind = iota
	// KindLazy is the forkable, deferred iterator backend.
	KindLazy
)

// String returns the configuration name of the backend.
func (k Kind) String() string {
	switch k {
	case KindEager:
		return "eager"
	case KindLazy:
		return "lazy"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind resolves a backend from its configuration name.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "eager":
		return KindEager, nil
	case "lazy":
		return KindLazy, nil
	default:
		return KindEager, errors.InvalidInput("backend", fmt.Sprintf("unknown backend %q", s))
	}
}

// Buffer is an ordered sequence of opaque elements.
type Buffer interface {
	// Kind reports the backend.
	Kind() Kind
	// Len counts the elements without consuming them.
	Len() int

	// Append adds v at the back.
	Append(v any)
	// AppendLeft adds v at the front.
	AppendLeft(v any)
	// Extend adds every value of it at the back, in order, and closes it.
	Extend(it pipeline.Iterator[any])
	// ExtendLeft adds every value of it at the front one at a time, so the
	// values end up reversed.
	ExtendLeft(it pipeline.Iterator[any])
	// Reset replaces the contents with it.
	Reset(it pipeline.Iterator[any])

	// Pop removes and returns the last element, EXHAUSTED when empty.
	Pop() (any, error)
	// PopLeft removes and returns the first element, EXHAUSTED when empty.
	PopLeft() (any, error)
	// Insert places v before index i. Negative indexes count from the back
	// and out-of-range indexes clamp to the nearest end.
	Insert(i int, v any)
	// Delete removes the element at index i. Negative indexes count from
	// the back; an out-of-range index is NOT_FOUND.
	Delete(i int) error
	// Remove deletes the first element equal to v, NOT_FOUND when absent.
	Remove(v any) error
	// Index returns the position of the first element equal to v, or -1.
	Index(v any) int
	// Clear empties the buffer.
	Clear()

	// Fork returns an independent buffer with the same contents.
	Fork() Buffer
	// Iter returns an iterator over the contents, leaving the buffer as is.
	Iter() pipeline.Iterator[any]
	// Drain returns an iterator over the contents and empties the buffer.
	Drain() pipeline.Iterator[any]
	// Values copies the contents into a slice, leaving the buffer as is.
	Values() []any
}

// New creates an empty buffer of the given kind.
func New(kind Kind) Buffer {
	if kind == KindLazy {
		return NewLazy()
	}
	return NewEager()
}

// normIndex resolves a possibly negative index against length n.
func normIndex(i, n int) int {
	if i < 0 {
		i += n
	}
	return i
}

// clampIndex resolves an insertion point the way list insertion does.
func clampIndex(i, n int) int {
	i = normIndex(i, n)
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

func indexError(i int) error {
	return errors.NotFound("index", fmt.Sprint(i))
}
