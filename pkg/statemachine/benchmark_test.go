package statemachine_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/dmitrymomot/statekit/pkg/broadcast"
	"github.com/dmitrymomot/statekit/pkg/statemachine"
)

func BenchmarkMachine_Change(b *testing.B) {
	m := statemachine.MustNew(Idle, statemachine.Nop{},
		statemachine.WithState(Walking, statemachine.Of(statemachine.Nop{})),
		statemachine.WithState(Jumping, statemachine.Of(statemachine.Nop{})),
	)

	b.ResetTimer()

	for b.Loop() {
		_ = m.Change(Walking)
		_ = m.Change(Jumping)
	}
}

func BenchmarkMachine_ChangeWithListeners(b *testing.B) {
	m := statemachine.MustNew(Idle, statemachine.Nop{},
		statemachine.WithState(Walking, statemachine.Of(statemachine.Nop{})),
		statemachine.WithState(Jumping, statemachine.Of(statemachine.Nop{})),
	)
	for range 4 {
		m.Subscribe(func(*statemachine.Machine) {})
	}

	b.ResetTimer()

	for b.Loop() {
		_ = m.Change(Walking)
		_ = m.Change(Jumping)
	}
}

func BenchmarkMachine_ChangeUnregistered(b *testing.B) {
	m := statemachine.MustNew(Idle, statemachine.Nop{})

	b.ResetTimer()

	for b.Loop() {
		_ = m.Change(Flying)
	}
}

func BenchmarkMachine_IsIn(b *testing.B) {
	m := statemachine.MustNew(Idle, statemachine.Nop{},
		statemachine.WithState(Walking, statemachine.Of(statemachine.Nop{})),
	)
	_ = m.Change(Walking)

	b.ResetTimer()

	for b.Loop() {
		_ = m.IsIn(Walking)
		_ = m.IsIn(Idle)
	}
}

func BenchmarkMachine_ManyStates(b *testing.B) {
	kinds := make([]statemachine.Kind, 64)
	defs := make([]statemachine.StateDef, len(kinds))
	for i := range kinds {
		kinds[i] = statemachine.Kind(fmt.Sprintf("state%d", i))
		defs[i] = statemachine.StateDef{Kind: kinds[i], Factory: statemachine.Of(statemachine.Nop{})}
	}
	m := statemachine.MustNew(Idle, statemachine.Nop{}, statemachine.WithStates(defs...))

	b.ResetTimer()

	i := 0
	for b.Loop() {
		_ = m.Change(kinds[i%len(kinds)])
		i++
	}
}

func BenchmarkMachine_Relay(b *testing.B) {
	m := statemachine.MustNew(Idle, statemachine.Nop{},
		statemachine.WithState(Walking, statemachine.Of(statemachine.Nop{})),
		statemachine.WithState(Jumping, statemachine.Of(statemachine.Nop{})),
	)
	bc := broadcast.NewMemory[statemachine.Transition](1)
	defer bc.Close()
	_ = bc.Subscribe(context.Background())
	statemachine.Relay(context.Background(), m, bc)

	b.ResetTimer()

	for b.Loop() {
		_ = m.Change(Walking)
		_ = m.Change(Jumping)
	}
}

func BenchmarkBuilder_Build(b *testing.B) {
	for b.Loop() {
		_ = statemachine.NewBuilder(Idle, statemachine.Nop{}).
			State(Walking, statemachine.Of(statemachine.Nop{})).
			State(Jumping, statemachine.Of(statemachine.Nop{})).
			MustBuild()
	}
}
