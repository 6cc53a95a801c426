package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrymomot/statekit/pkg/config"
	"github.com/dmitrymomot/statekit/pkg/environment"
	"github.com/dmitrymomot/statekit/pkg/logger"
)

// Config is read from the environment (and ./.env when present).
type Config struct {
	Env      string `env:"STATEDEMO_ENV" envDefault:"development"`
	Service  string `env:"STATEDEMO_SERVICE" envDefault:"statedemo"`
	LogLevel string `env:"STATEDEMO_LOG_LEVEL" envDefault:"debug"`
	Scenario string `env:"STATEDEMO_SCENARIO"`
}

type scenarioKey struct{}

func main() {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Invalid STATEDEMO_LOG_LEVEL: %v", err)
	}

	l := logger.New(
		logger.WithEnvironment(environment.Parse(cfg.Env).String(), cfg.Service),
		logger.WithLevel(level),
		logger.WithOutput(os.Stderr),
		logger.WithContextValue("scenario", scenarioKey{}),
	)
	logger.SetAsDefault(l)

	sc, err := LoadScenario(cfg.Scenario)
	if err != nil {
		log.Fatalf("Failed to load scenario: %v", err)
	}
	ctx := context.WithValue(context.Background(), scenarioKey{}, sc.Name)

	res, err := Run(ctx, l, sc)
	if err != nil {
		log.Fatalf("Scenario failed: %v", err)
	}

	for _, tr := range res.Transitions {
		fmt.Printf("#%d %s -> %s\n", tr.Seq, tr.From, tr.To)
	}
	fmt.Printf("final state: %s (applied %d, rejected %d)\n", res.Final, res.Applied, len(res.Rejected))
}
