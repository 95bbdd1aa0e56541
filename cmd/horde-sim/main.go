package main

import (
	"flag"
	"log"
	"os"

	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/scenario"
	"github.com/milk9111/horde/sim"
)

func main() {
	ticks := flag.Int("ticks", 600, "number of fixed steps to run")
	seed := flag.Uint64("seed", 0, "random seed (0 uses simulation.yaml)")
	scenarioName := flag.String("scenario", "basic", "tengo scenario in scenario/scripts (empty for none)")
	physics := flag.Bool("physics", false, "use Chipmunk bodies for movement and contacts")
	debug := flag.Bool("debug", false, "log spawn and damage decisions inside systems")
	quiet := flag.Bool("q", false, "only print the final summary")
	flag.Parse()

	logger := log.New(os.Stderr, "horde-sim: ", log.Lmicroseconds)

	cfg, clock, err := sim.DefaultConfig()
	if err != nil {
		logger.Fatal(err)
	}
	if *seed != 0 {
		cfg.Random = common.NewRand(*seed)
	}
	cfg.Physics = *physics
	cfg.Logger = logger
	if *debug {
		cfg.Settings.Debug = true
	}

	s, err := sim.New(cfg)
	if err != nil {
		logger.Fatal(err)
	}

	var runner *scenario.Runner
	if *scenarioName != "" {
		runner, err = scenario.Load(*scenarioName)
		if err != nil {
			logger.Fatal(err)
		}
	}

	for i := 0; i < *ticks; i++ {
		if runner != nil && runner.Stopped() {
			break
		}
		clock.Tick()
		if err := runner.Update(s); err != nil {
			logger.Fatal(err)
		}
		if err := s.Step(); err != nil {
			logger.Fatal(err)
		}
		if !*quiet {
			logEvents(logger, s)
		}
	}

	logger.Printf("done: steps=%d elapsed=%v health=%d alive=%d spawned=%d",
		s.Steps(), s.Elapsed(), s.TargetHealth(), len(s.Enemies()), len(s.Spawned()))
}

func logEvents(logger *log.Logger, s *sim.Simulation) {
	for _, evt := range s.DrainEvents() {
		switch data := evt.Data.(type) {
		case ecs.SpawnEvent:
			logger.Printf("t=%v spawn %s at (%.1f, %.1f)", s.Elapsed(), data.Entity, data.Position.X, data.Position.Y)
		case ecs.DamageEvent:
			logger.Printf("t=%v damage %d from %s, health %d", s.Elapsed(), data.Amount, data.Enemy, data.Health)
		case ecs.DespawnEvent:
			logger.Printf("t=%v despawn %s", s.Elapsed(), data.Entity)
		}
	}
}
