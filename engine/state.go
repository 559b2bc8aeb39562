package engine

import (
	"github.com/kbukum/knife/buffer"
	"github.com/kbukum/knife/pipeline"
)

// State is the per-queue engine state: four role-bound buffers, the
// operation binding, the balancing policy and the default rotation. It is
// not safe for concurrent use.
type State struct {
	buffers  [numRoles]buffer.Buffer
	kind     buffer.Kind
	policy   Policy
	rotation Rotation
	binding  Binding
	open     bool
}

// NewState creates a State whose buffers all use the given backend.
func NewState(kind buffer.Kind, policy Policy) *State {
	s := &State{kind: kind, policy: policy, rotation: Neutral}
	for i := range s.buffers {
		s.buffers[i] = buffer.New(kind)
	}
	return s
}

// Kind reports the buffer backend.
func (s *State) Kind() buffer.Kind { return s.kind }

// Policy reports the balancing policy.
func (s *State) Policy() Policy { return s.policy }

// Rotation reports the rotation verbs run under.
func (s *State) Rotation() Rotation { return s.rotation }

// SetRotation changes the rotation verbs run under.
func (s *State) SetRotation(r Rotation) { s.rotation = r }

// Binding returns the operation binding.
func (s *State) Binding() *Binding { return &s.binding }

// Buffer returns the buffer currently bound to role.
func (s *State) Buffer(role Role) buffer.Buffer { return s.buffers[role] }

// Swap exchanges the buffers bound to two roles.
func (s *State) Swap(a, b Role) {
	s.buffers[a], s.buffers[b] = s.buffers[b], s.buffers[a]
}

// Open reports whether a session is in progress.
func (s *State) Open() bool { return s.open }

// Balanced reports whether Result and Source hold the same number of
// elements.
func (s *State) Balanced() bool {
	return s.buffers[Result].Len() == s.buffers[Source].Len()
}

// Load appends values to Source.
func (s *State) Load(it pipeline.Iterator[any]) {
	s.buffers[Source].Extend(it)
}

// Retire clears Result and Pending and resets the binding.
func (s *State) Retire() {
	s.buffers[Result].Clear()
	s.buffers[Pending].Clear()
	s.binding.Clear()
}

// Reset clears every buffer and the binding and restores the neutral
// rotation.
func (s *State) Reset() {
	for _, b := range s.buffers {
		b.Clear()
	}
	s.binding.Clear()
	s.rotation = Neutral
}

// balance applies the policy after a commit.
func (s *State) balance() {
	src, res := s.buffers[Source], s.buffers[Result]
	switch s.policy {
	case Replace:
		src.Reset(res.Iter())
	case Accumulate:
		src.Extend(res.Iter())
	}
}
