package main

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/statekit/pkg/logger"
	"github.com/dmitrymomot/statekit/pkg/statemachine"
)

const (
	Idle    = statemachine.Kind("idle")
	Walking = statemachine.Kind("walking")
	Jumping = statemachine.Kind("jumping")
	Flying  = statemachine.Kind("flying")
)

// catalog lists the states the demo knows how to build. Flying is known but
// the default scenario never registers it.
var catalog = map[statemachine.Kind]struct{}{
	Idle:    {},
	Walking: {},
	Jumping: {},
	Flying:  {},
}

// pose is the demo state: it logs its hooks and counts how often it was entered.
type pose struct {
	ctx     context.Context
	kind    statemachine.Kind
	log     *slog.Logger
	entered int
}

func (p *pose) OnEnter() {
	p.entered++
	p.log.DebugContext(p.ctx, "enter", logger.State(p.kind.String()), slog.Int("entered", p.entered))
}

func (p *pose) OnExit() {
	p.log.DebugContext(p.ctx, "exit", logger.State(p.kind.String()))
}

func newPose(ctx context.Context, kind statemachine.Kind, log *slog.Logger) *pose {
	return &pose{ctx: ctx, kind: kind, log: log}
}

func poseFactory(ctx context.Context, kind statemachine.Kind, log *slog.Logger) statemachine.Factory {
	return func() statemachine.State { return newPose(ctx, kind, log) }
}
