package engine

import (
	"github.com/kbukum/knife/buffer"
	"github.com/kbukum/knife/pipeline"
)

// Collapse unwraps a single value and returns anything else as the slice
// itself. An empty slice stays an empty slice.
func Collapse(values []any) any {
	if len(values) == 1 {
		return values[0]
	}
	if values == nil {
		return []any{}
	}
	return values
}

// Value extracts Result under the collapse rule and retires the state.
// Unless the policy is Manual the neutral rotation is restored first.
func (s *State) Value() any {
	if s.policy != Manual {
		s.rotation = Neutral
	}
	out := Collapse(pipeline.Collect(s.buffers[Result].Drain()))
	s.Retire()
	return out
}

// End extracts like Value, then resets every buffer and the binding.
func (s *State) End() any {
	out := s.Value()
	s.Reset()
	return out
}

// Peek returns Result under the collapse rule without clearing it.
func (s *State) Peek() any {
	return Collapse(s.buffers[Result].Values())
}

// Restore replaces Source with the contents of b.
func (s *State) Restore(b buffer.Buffer) {
	s.buffers[Source].Reset(b.Iter())
}
