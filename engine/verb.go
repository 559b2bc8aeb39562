package engine

import (
	"context"
	"sort"
)

// Verb is one named transformation. Apply reads the session's Staging
// view and writes Pending; it must not keep state between calls.
type Verb interface {
	Name() string
	Apply(ctx context.Context, s *Session) error
}

// ApplyFunc is the body of a verb built with NewVerb.
type ApplyFunc func(ctx context.Context, s *Session) error

// NewVerb builds a Verb from a name and a body.
func NewVerb(name string, apply ApplyFunc) Verb {
	return &funcVerb{name: name, apply: apply}
}

type funcVerb struct {
	name  string
	apply ApplyFunc
}

func (v *funcVerb) Name() string { return v.name }

func (v *funcVerb) Apply(ctx context.Context, s *Session) error {
	return v.apply(ctx, s)
}

// Registry provides named verb lookup.
type Registry struct {
	verbs map[string]Verb
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{verbs: make(map[string]Verb)}
}

// Register adds v under its name, replacing any earlier verb.
func (r *Registry) Register(v Verb) {
	r.verbs[v.Name()] = v
}

// Get retrieves a verb by name.
func (r *Registry) Get(name string) (Verb, bool) {
	v, ok := r.verbs[name]
	return v, ok
}

// List returns sorted names of all registered verbs.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.verbs))
	for name := range r.verbs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
