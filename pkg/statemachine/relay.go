package statemachine

import (
	"context"
	"time"

	"github.com/dmitrymomot/statekit/pkg/broadcast"
	"github.com/dmitrymomot/statekit/pkg/logger"
)

// Transition is a detached record of one successful change.
// Unlike a Listener, a receiver of Transition values may run on another goroutine.
type Transition struct {
	Machine string
	From    Kind
	To      Kind
	Seq     uint64
	At      time.Time
}

// TransitionOf captures the transition the machine has just completed.
// It is meant to be called from a Listener.
func TransitionOf(m *Machine) Transition {
	from, _ := m.PreviousKind()
	return Transition{
		Machine: m.Name(),
		From:    from,
		To:      m.CurrentKind(),
		Seq:     m.Transitions(),
		At:      time.Now(),
	}
}

// Relay publishes every transition of m to b until ctx is done.
//
// The listener is removed on the first transition after ctx is cancelled, since
// the machine is not safe for concurrent use and cannot be touched from a watcher
// goroutine. Call Unsubscribe with the returned id to remove it immediately.
func Relay(ctx context.Context, m *Machine, b broadcast.Broadcaster[Transition]) SubscriptionID {
	var id SubscriptionID
	id = m.Subscribe(func(m *Machine) {
		if ctx.Err() != nil {
			m.Unsubscribe(id)
			return
		}
		if err := b.Broadcast(ctx, broadcast.Message[Transition]{Data: TransitionOf(m)}); err != nil {
			m.logger.Warn("transition relay failed",
				logger.Component(component),
				logger.Machine(m.name),
				logger.Error(err),
			)
		}
	})
	return id
}

// Watch returns a subscriber receiving the transitions of m through a private
// in-memory broadcaster holding up to buffer undelivered transitions. The
// subscriber is closed once ctx is cancelled.
func Watch(ctx context.Context, m *Machine, buffer int) broadcast.Subscriber[Transition] {
	b := broadcast.NewMemory[Transition](buffer)
	sub := b.Subscribe(ctx)
	Relay(ctx, m, b)
	return sub
}
