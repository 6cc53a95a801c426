package statemachine

import (
	"github.com/google/uuid"
)

// Kind identifies the category of a state, e.g. "walking".
// A machine holds at most one instance per kind.
type Kind string

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// State is the capability set every state must satisfy.
type State interface {
	// OnEnter runs after the machine has switched to this state.
	OnEnter()
	// OnExit runs after the machine has switched away from this state.
	OnExit()
}

// Factory builds the instance owned by the registry for a kind.
// It is called exactly once, at registration time.
type Factory func() State

// Listener is notified synchronously after every successful transition.
// It reads the new current/previous pair through the machine.
type Listener func(m *Machine)

// SubscriptionID identifies a registered listener.
type SubscriptionID uuid.UUID

// String implements fmt.Stringer.
func (id SubscriptionID) String() string {
	return uuid.UUID(id).String()
}

// StateDef pairs a kind with the factory that builds its instance.
type StateDef struct {
	Kind    Kind
	Factory Factory
}

// Hooks adapts plain functions to the State interface.
// Nil functions are skipped. Use it by pointer so instances keep their identity.
type Hooks struct {
	Enter func()
	Exit  func()
}

func (h *Hooks) OnEnter() {
	if h.Enter != nil {
		h.Enter()
	}
}

func (h *Hooks) OnExit() {
	if h.Exit != nil {
		h.Exit()
	}
}

// Nop is a State with empty hooks.
type Nop struct{}

func (Nop) OnEnter() {}
func (Nop) OnExit()  {}

// Of returns a Factory that always yields s.
// Useful when the caller already owns a prebuilt instance.
func Of(s State) Factory {
	return func() State { return s }
}
