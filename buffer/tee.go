package buffer

import "github.com/kbukum/knife/pipeline"

// teeLink is one slot of the shared chain. A link is filled by whichever
// cursor reaches it first and read by all the others.
type teeLink struct {
	value  any
	next   *teeLink
	filled bool
}

// teeShared owns the underlying iterator for every cursor forked from it.
type teeShared struct {
	src  pipeline.Iterator[any]
	done bool
	refs int
}

func (s *teeShared) finish() {
	if !s.done {
		s.done = true
		_ = s.src.Close()
	}
}

// cursor reads a tee chain at its own pace. It implements
// pipeline.Iterator[any]; Close releases its reference.
type cursor struct {
	shared *teeShared
	at     *teeLink
	closed bool
}

func newCursor(src pipeline.Iterator[any]) *cursor {
	return &cursor{
		shared: &teeShared{src: src, refs: 1},
		at:     &teeLink{},
	}
}

func (c *cursor) Next() (any, bool) {
	if c.closed {
		return nil, false
	}
	if !c.at.filled {
		if c.shared.done {
			return nil, false
		}
		v, ok := c.shared.src.Next()
		if !ok {
			c.shared.finish()
			return nil, false
		}
		c.at.value, c.at.next, c.at.filled = v, &teeLink{}, true
	}
	v := c.at.value
	c.at = c.at.next
	return v, true
}

func (c *cursor) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.at = nil
	c.shared.refs--
	if c.shared.refs == 0 {
		c.shared.finish()
	}
	return nil
}

// fork returns a second cursor positioned where c is.
func (c *cursor) fork() *cursor {
	if c.closed {
		return newCursor(pipeline.Empty[any]())
	}
	c.shared.refs++
	return &cursor{shared: c.shared, at: c.at}
}
