// Package statemachine provides a minimal finite-state machine: a registry
// holding one instance per state kind, explicit transitions with enter/exit
// hooks, current/previous tracking and change notifications.
//
// A state is anything with OnEnter and OnExit methods. States are identified
// by a Kind tag and built by a Factory at registration time, so the registry
// owns every instance it hands out.
//
// # Architecture
//
// Machine keeps the current and previous (Kind, State) pairs next to a
// Registry. Change looks the target up, swaps the pair, calls OnExit on the
// old state, OnEnter on the new one and then notifies listeners in the order
// they subscribed. A failed lookup leaves the machine exactly as it was.
//
// The default state passed to New is current until the first transition and
// does not need to be registered. No hook runs for it at construction.
//
// # Usage
//
//	const (
//	    Idle    = statemachine.Kind("idle")
//	    Walking = statemachine.Kind("walking")
//	)
//
//	m := statemachine.MustNew(Idle, &IdleState{},
//	    statemachine.WithState(Walking, func() statemachine.State { return &WalkingState{} }),
//	)
//
//	id := m.Subscribe(func(m *statemachine.Machine) {
//	    prev, _ := m.PreviousKind()
//	    fmt.Println(prev, "->", m.CurrentKind())
//	})
//	defer m.Unsubscribe(id)
//
//	if err := m.Change(Walking); err != nil {
//	    // only ErrUnregisteredTarget or ErrReentrantChange
//	}
//
// Changing to the kind that is already current is not a no-op: the state is
// exited, re-entered and listeners are notified.
//
// # Error Handling
//
// Registration and transition failures are programming errors and are
// returned immediately:
//
//	if statemachine.IsDuplicateRegistrationError(err) { /* ... */ }
//	if statemachine.IsUnregisteredTargetError(err)    { /* ... */ }
//
// MustNew, MustRegister and Builder.MustBuild panic instead.
//
// # Concurrency
//
// Machine is synchronous and has no internal locking. Hooks and listeners run
// on the goroutine calling Change; calling Change from one of them returns
// ErrReentrantChange. Serialize access externally when sharing a machine.
// Relay and Watch forward transitions to a broadcast.Broadcaster for consumers
// on other goroutines.
package statemachine
