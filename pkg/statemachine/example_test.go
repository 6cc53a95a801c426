package statemachine_test

import (
	"fmt"

	"github.com/dmitrymomot/statekit/pkg/statemachine"
)

type door struct {
	name string
}

func (d *door) OnEnter() { fmt.Println("enter", d.name) }
func (d *door) OnExit()  { fmt.Println("exit", d.name) }

func ExampleMachine_Change() {
	const (
		Closed = statemachine.Kind("closed")
		Open   = statemachine.Kind("open")
		Locked = statemachine.Kind("locked")
	)

	m := statemachine.MustNew(Closed, &door{name: "closed"},
		statemachine.WithState(Open, func() statemachine.State { return &door{name: "open"} }),
	)
	m.Subscribe(func(m *statemachine.Machine) {
		prev, _ := m.PreviousKind()
		fmt.Printf("changed %s -> %s\n", prev, m.CurrentKind())
	})

	if err := m.Change(Open); err != nil {
		fmt.Println(err)
	}
	if err := m.Change(Locked); err != nil {
		fmt.Println(err)
	}
	fmt.Println("open:", m.IsIn(Open))

	// Output:
	// exit closed
	// enter open
	// changed closed -> open
	// state kind 'locked' is not registered
	// open: true
}

func ExampleBuilder() {
	m := statemachine.NewBuilder("idle", statemachine.Nop{}).
		State("walking", statemachine.Of(&statemachine.Hooks{
			Enter: func() { fmt.Println("start walking") },
			Exit:  func() { fmt.Println("stop walking") },
		})).
		State("jumping", statemachine.Of(statemachine.Nop{})).
		MustBuild()

	_ = m.Change("walking")
	_ = m.Change("jumping")
	fmt.Println(m.CurrentKind(), m.Transitions())

	// Output:
	// start walking
	// stop walking
	// jumping 2
}
