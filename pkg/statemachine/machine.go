package statemachine

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/dmitrymomot/statekit/pkg/logger"
)

// Machine mediates transitions between the states held by its registry.
//
// Machine is not safe for concurrent use. Callers sharing a machine across
// goroutines must serialize Register, Change and the read accessors themselves.
type Machine struct {
	name     string
	registry *Registry
	logger   *slog.Logger

	current  slot
	previous slot

	listeners   []subscription
	transitions uint64
	changing    bool
}

type slot struct {
	kind  Kind
	state State
	set   bool
}

type subscription struct {
	id SubscriptionID
	fn Listener
}

// New creates a machine whose current state is initial, identified by kind.
// The initial state does not have to be registered and none of its hooks run.
func New(kind Kind, initial State, opts ...Option) (*Machine, error) {
	if kind == "" {
		return nil, ErrInvalidKind
	}
	if initial == nil {
		return nil, ErrInvalidState
	}

	m := &Machine{
		registry: NewRegistry(),
		logger:   slog.New(slog.DiscardHandler),
		current:  slot{kind: kind, state: initial, set: true},
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// MustNew is like New but panics on error.
func MustNew(kind Kind, initial State, opts ...Option) *Machine {
	m, err := New(kind, initial, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create state machine: %v", err))
	}
	return m
}

// Register builds the instance for kind and adds it to the registry.
func (m *Machine) Register(kind Kind, factory Factory) error {
	if _, err := m.registry.Register(kind, factory); err != nil {
		m.logger.Warn("state registration rejected",
			logger.Component(component),
			logger.Machine(m.name),
			logger.State(string(kind)),
			logger.Error(err),
		)
		return err
	}
	return nil
}

// MustRegister is like Register but panics on error.
// Registration collisions are programming errors.
func (m *Machine) MustRegister(kind Kind, factory Factory) {
	if err := m.Register(kind, factory); err != nil {
		panic(fmt.Sprintf("failed to register state: %v", err))
	}
}

// Unregister removes kind from the registry. The current kind cannot be removed.
func (m *Machine) Unregister(kind Kind) error {
	if m.current.kind == kind && m.registry.Has(kind) {
		return NewErrStateActive(kind)
	}
	if !m.registry.Unregister(kind) {
		return NewErrUnregisteredTarget(kind)
	}
	return nil
}

// TryGet returns the registered instance for kind without affecting the current state.
func (m *Machine) TryGet(kind Kind) (State, bool) {
	return m.registry.Lookup(kind)
}

// Change transitions to the state registered for kind.
//
// The current/previous pair is swapped first, then OnExit runs on the old state,
// OnEnter on the new one, and finally every listener is notified in subscription
// order. Changing to the kind that is already current exits and re-enters it.
// An unknown kind returns ErrUnregisteredTarget and leaves the machine untouched;
// calling Change from a hook or listener returns ErrReentrantChange.
func (m *Machine) Change(kind Kind) error {
	if m.changing {
		m.logger.Warn("reentrant state change rejected",
			logger.Component(component),
			logger.Machine(m.name),
			logger.FromState(string(m.current.kind)),
			logger.ToState(string(kind)),
		)
		return ErrReentrantChange
	}

	target, ok := m.registry.Lookup(kind)
	if !ok {
		err := NewErrUnregisteredTarget(kind)
		m.logger.Warn("state change rejected",
			logger.Component(component),
			logger.Machine(m.name),
			logger.FromState(string(m.current.kind)),
			logger.ToState(string(kind)),
			logger.Error(err),
		)
		return err
	}

	m.changing = true
	defer func() { m.changing = false }()

	m.previous = m.current
	m.current = slot{kind: kind, state: target, set: true}
	m.transitions++

	m.previous.state.OnExit()
	m.current.state.OnEnter()

	m.logger.Debug("state changed",
		logger.Component(component),
		logger.Machine(m.name),
		logger.FromState(string(m.previous.kind)),
		logger.ToState(string(kind)),
	)

	// Snapshot so listeners may subscribe or unsubscribe while being notified.
	for _, sub := range slices.Clone(m.listeners) {
		sub.fn(m)
	}

	return nil
}

// IsIn reports whether the current state is identified by kind.
func (m *Machine) IsIn(kind Kind) bool {
	return m.current.kind == kind
}

// Current returns the active state instance.
func (m *Machine) Current() State {
	return m.current.state
}

// CurrentKind returns the kind of the active state.
func (m *Machine) CurrentKind() Kind {
	return m.current.kind
}

// Previous returns the state that was active before the last transition,
// or nil if no transition has happened yet.
func (m *Machine) Previous() State {
	return m.previous.state
}

// PreviousKind returns the kind of the previous state. The boolean is false
// until the first successful transition.
func (m *Machine) PreviousKind() (Kind, bool) {
	return m.previous.kind, m.previous.set
}

// Transitions returns the number of successful transitions.
func (m *Machine) Transitions() uint64 {
	return m.transitions
}

// Kinds returns the registered kinds in registration order.
func (m *Machine) Kinds() []Kind {
	return m.registry.Kinds()
}

func (m *Machine) Name() string {
	return m.name
}

// Subscribe adds fn to the change notification list.
// Listeners run in subscription order; nil listeners are ignored and get a zero id.
func (m *Machine) Subscribe(fn Listener) SubscriptionID {
	if fn == nil {
		return SubscriptionID{}
	}
	id := SubscriptionID(uuid.New())
	m.listeners = append(m.listeners, subscription{id: id, fn: fn})
	return id
}

// Unsubscribe removes the listener registered under id and reports whether it existed.
func (m *Machine) Unsubscribe(id SubscriptionID) bool {
	n := len(m.listeners)
	m.listeners = slices.DeleteFunc(m.listeners, func(s subscription) bool { return s.id == id })
	return len(m.listeners) != n
}

const component = "statemachine"
