package statemachine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidKind     = errors.New("invalid kind: kind cannot be empty")
	ErrInvalidState    = errors.New("invalid state: state and factory result cannot be nil")
	ErrReentrantChange = errors.New("reentrant change: a transition is already in progress")
)

// ErrDuplicateRegistration indicates the kind already has a registered instance.
type ErrDuplicateRegistration struct {
	Kind Kind
}

func (e *ErrDuplicateRegistration) Error() string {
	return fmt.Sprintf("state kind '%s' is already registered", e.Kind)
}

func NewErrDuplicateRegistration(kind Kind) *ErrDuplicateRegistration {
	return &ErrDuplicateRegistration{Kind: kind}
}

// ErrUnregisteredTarget indicates the requested kind was never registered.
type ErrUnregisteredTarget struct {
	Kind Kind
}

func (e *ErrUnregisteredTarget) Error() string {
	return fmt.Sprintf("state kind '%s' is not registered", e.Kind)
}

func NewErrUnregisteredTarget(kind Kind) *ErrUnregisteredTarget {
	return &ErrUnregisteredTarget{Kind: kind}
}

// ErrStateActive indicates an operation needs the kind to be inactive.
type ErrStateActive struct {
	Kind Kind
}

func (e *ErrStateActive) Error() string {
	return fmt.Sprintf("state kind '%s' is the current state", e.Kind)
}

func NewErrStateActive(kind Kind) *ErrStateActive {
	return &ErrStateActive{Kind: kind}
}

func IsDuplicateRegistrationError(err error) bool {
	var e *ErrDuplicateRegistration
	return errors.As(err, &e)
}

func IsUnregisteredTargetError(err error) bool {
	var e *ErrUnregisteredTarget
	return errors.As(err, &e)
}

func IsStateActiveError(err error) bool {
	var e *ErrStateActive
	return errors.As(err, &e)
}
