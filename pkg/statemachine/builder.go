package statemachine

import (
	"errors"
	"log/slog"
)

// Builder provides a fluent API for assembling a machine.
// Registration errors are collected and reported together by Build.
type Builder struct {
	kind      Kind
	initial   State
	name      string
	logger    *slog.Logger
	states    []StateDef
	listeners []Listener
}

// NewBuilder starts a machine whose default state is initial, identified by kind.
func NewBuilder(kind Kind, initial State) *Builder {
	return &Builder{
		kind:    kind,
		initial: initial,
	}
}

// State queues a registration.
func (b *Builder) State(kind Kind, factory Factory) *Builder {
	b.states = append(b.states, StateDef{Kind: kind, Factory: factory})
	return b
}

// Listener queues a change listener.
func (b *Builder) Listener(fn Listener) *Builder {
	b.listeners = append(b.listeners, fn)
	return b
}

func (b *Builder) Name(name string) *Builder {
	b.name = name
	return b
}

func (b *Builder) Logger(l *slog.Logger) *Builder {
	b.logger = l
	return b
}

// Build creates the machine. Every failed registration is reported;
// no machine is returned when any of them fails.
func (b *Builder) Build() (*Machine, error) {
	m, err := New(b.kind, b.initial, WithName(b.name), WithLogger(b.logger))
	if err != nil {
		return nil, err
	}

	var errs []error
	for _, d := range b.states {
		if err := m.Register(d.Kind, d.Factory); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	for _, fn := range b.listeners {
		m.Subscribe(fn)
	}
	return m, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Machine {
	m, err := b.Build()
	if err != nil {
		panic("failed to build state machine: " + err.Error())
	}
	return m
}
