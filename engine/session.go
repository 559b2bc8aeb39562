package engine

import (
	"context"
	"iter"

	"github.com/kbukum/knife/buffer"
	"github.com/kbukum/knife/errors"
	"github.com/kbukum/knife/pipeline"
)

// Session is one verb invocation over a State. A verb reads Staging
// through Iter, Seq, Values and Len and writes Pending through
// ReplaceMany, ReplaceManyLazy or AppendOne. Nothing reaches Result until
// Commit.
type Session struct {
	state    *State
	rotation Rotation
	closed   bool
}

// Open starts a session: the rotation's From role is forked into Staging
// and Pending is cleared. Only one session may be open per State.
func Open(state *State, rotation Rotation) (*Session, error) {
	if state.open {
		return nil, errors.SessionOpen()
	}
	state.open = true
	state.buffers[Staging].Reset(state.buffers[rotation.From].Iter())
	state.buffers[Pending].Clear()
	return &Session{state: state, rotation: rotation}, nil
}

// Run opens a session, applies v and commits only when v returns nil.
// The session is released on every path, including a panic in v.
func Run(ctx context.Context, state *State, rotation Rotation, v Verb) error {
	sess, err := Open(state, rotation)
	if err != nil {
		return err
	}
	defer sess.Release()

	if err := v.Apply(ctx, sess); err != nil {
		return err
	}
	return sess.Commit()
}

// Rotation reports the rotation this session runs under.
func (s *Session) Rotation() Rotation { return s.rotation }

// Binding returns the state's operation binding.
func (s *Session) Binding() *Binding { return &s.state.binding }

// Kind reports the buffer backend.
func (s *Session) Kind() buffer.Kind { return s.state.kind }

// Iter returns an independent iterator over Staging.
func (s *Session) Iter() pipeline.Iterator[any] {
	return s.staging().Iter()
}

// Seq returns Staging as a single-use sequence.
func (s *Session) Seq() iter.Seq[any] {
	return pipeline.Seq(s.Iter())
}

// Values copies Staging into a slice.
func (s *Session) Values() []any {
	return s.staging().Values()
}

// Len counts Staging without consuming it.
func (s *Session) Len() int {
	return s.staging().Len()
}

// ReplaceMany sets Pending to values.
func (s *Session) ReplaceMany(values []any) {
	s.pending().Reset(pipeline.FromSlice(values))
}

// ReplaceManyLazy sets Pending to it. A lazy backend keeps it unevaluated.
func (s *Session) ReplaceManyLazy(it pipeline.Iterator[any]) {
	s.pending().Reset(it)
}

// AppendOne adds v to Pending as a single element.
func (s *Session) AppendOne(v any) {
	s.pending().Append(v)
}

// Commit moves Pending into the rotation's To role and applies the
// balancing policy when the rotation asks for it.
func (s *Session) Commit() error {
	if s.closed {
		return errors.Internal(nil).WithDetail("reason", "commit on a released session")
	}
	st := s.state
	if s.rotation.Clear {
		st.Swap(Pending, s.rotation.To)
		st.buffers[Pending].Clear()
	} else {
		st.buffers[s.rotation.To].Extend(st.buffers[Pending].Drain())
	}
	if s.rotation.Balance {
		st.balance()
	}
	return nil
}

// Release clears Staging and Pending and closes the session. It is safe to
// call more than once.
func (s *Session) Release() {
	if s.closed {
		return
	}
	s.closed = true
	s.state.buffers[Staging].Clear()
	s.state.buffers[Pending].Clear()
	s.state.open = false
}

func (s *Session) staging() buffer.Buffer { return s.state.buffers[Staging] }

func (s *Session) pending() buffer.Buffer { return s.state.buffers[Pending] }

// pendingCount counts Pending for metrics. Lazy output is not forced and
// reports -1.
func (s *Session) pendingCount() int {
	if s.state.kind == buffer.KindLazy {
		return -1
	}
	return s.pending().Len()
}
