package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/statekit/pkg/logger"
	"github.com/dmitrymomot/statekit/pkg/statemachine"
)

// Result summarizes a scenario run.
type Result struct {
	Final       statemachine.Kind
	Applied     int
	Rejected    []statemachine.Kind
	Transitions []statemachine.Transition
}

// Run builds the machine described by sc and applies every step. Rejected
// steps are logged and recorded; they never abort the run.
func Run(ctx context.Context, log *slog.Logger, sc Scenario) (Result, error) {
	b := statemachine.NewBuilder(sc.Initial, newPose(ctx, sc.Initial, log)).
		Name(sc.Name).
		Logger(log)
	for _, k := range sc.States {
		b.State(k, poseFactory(ctx, k, log))
	}
	m, err := b.Build()
	if err != nil {
		return Result{}, fmt.Errorf("build machine: %w", err)
	}

	var res Result
	id := m.Subscribe(func(m *statemachine.Machine) {
		res.Transitions = append(res.Transitions, statemachine.TransitionOf(m))
	})
	defer m.Unsubscribe(id)

	for i, step := range sc.Steps {
		if err := m.Change(step); err != nil {
			log.WarnContext(ctx, "step rejected", logger.Step(i), logger.ToState(step.String()), logger.Error(err))
			res.Rejected = append(res.Rejected, step)
			continue
		}
		res.Applied++
		log.InfoContext(ctx, "step applied", logger.Step(i), logger.State(m.CurrentKind().String()))
	}

	res.Final = m.CurrentKind()
	return res, nil
}
