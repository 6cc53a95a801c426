package statemachine

import (
	"fmt"
	"log/slog"
)

// Option configures a state machine during construction.
type Option func(*Machine) error

// WithName labels the machine in logs and relayed transitions.
func WithName(name string) Option {
	return func(m *Machine) error {
		m.name = name
		return nil
	}
}

// WithLogger sets the logger used for transition diagnostics.
// Nil loggers are ignored and the machine keeps discarding output.
func WithLogger(l *slog.Logger) Option {
	return func(m *Machine) error {
		if l != nil {
			m.logger = l
		}
		return nil
	}
}

// WithState registers a single state during construction.
func WithState(kind Kind, factory Factory) Option {
	return func(m *Machine) error {
		return m.Register(kind, factory)
	}
}

// WithStates registers several states at once, in order.
func WithStates(defs ...StateDef) Option {
	return func(m *Machine) error {
		for i, d := range defs {
			if err := m.Register(d.Kind, d.Factory); err != nil {
				kind := string(d.Kind)
				if kind == "" {
					kind = "<empty>"
				}
				return fmt.Errorf("failed to register state[%d] %s: %w", i, kind, err)
			}
		}
		return nil
	}
}

// WithListener subscribes fn before the machine is returned.
// Use Subscribe instead when the listener must be removed later.
func WithListener(fn Listener) Option {
	return func(m *Machine) error {
		m.Subscribe(fn)
		return nil
	}
}
