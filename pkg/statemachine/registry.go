package statemachine

import "slices"

// Registry owns exactly one state instance per kind.
// The zero value is not usable; create one with NewRegistry.
type Registry struct {
	states map[Kind]State
	order  []Kind
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		states: make(map[Kind]State),
	}
}

// Register builds an instance with factory and stores it under kind.
// Hooks of the new instance are not invoked. A kind that is already present
// yields ErrDuplicateRegistration and leaves the registry untouched.
func (r *Registry) Register(kind Kind, factory Factory) (State, error) {
	if kind == "" {
		return nil, ErrInvalidKind
	}
	if factory == nil {
		return nil, ErrInvalidState
	}
	if _, ok := r.states[kind]; ok {
		return nil, NewErrDuplicateRegistration(kind)
	}

	state := factory()
	if state == nil {
		return nil, ErrInvalidState
	}

	r.states[kind] = state
	r.order = append(r.order, kind)
	return state, nil
}

// Lookup returns the instance registered for kind.
func (r *Registry) Lookup(kind Kind) (State, bool) {
	state, ok := r.states[kind]
	return state, ok
}

// Has reports whether kind is registered.
func (r *Registry) Has(kind Kind) bool {
	_, ok := r.states[kind]
	return ok
}

// Unregister drops the instance stored for kind and reports whether it existed.
func (r *Registry) Unregister(kind Kind) bool {
	if _, ok := r.states[kind]; !ok {
		return false
	}
	delete(r.states, kind)
	r.order = slices.DeleteFunc(r.order, func(k Kind) bool { return k == kind })
	return true
}

// Kinds returns registered kinds in registration order.
func (r *Registry) Kinds() []Kind {
	return slices.Clone(r.order)
}

func (r *Registry) Len() int {
	return len(r.states)
}
