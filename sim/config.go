package sim

import (
	"log"

	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/prefabs"
)

// Config wires a Simulation to its collaborators and specs.
type Config struct {
	Clock  common.Clock
	Random common.RandomSource

	// Contacts is the manual contact bus. It is always drained after the
	// physics contacts, so scripted contacts work in both modes. A nil
	// queue is created by New.
	Contacts *ecs.ContactQueue
	// Physics attaches the Chipmunk integrator and contact source.
	Physics bool

	Settings prefabs.SimulationSpec
	Spawner  prefabs.SpawnerSpec
	Enemy    prefabs.EnemySpec
	Target   prefabs.TargetSpec

	Logger *log.Logger
}

// ConfigFromBundle fills the spec fields of a Config. Clock and Random are
// left to the caller.
func ConfigFromBundle(b *prefabs.Bundle) Config {
	if b == nil {
		return Config{}
	}
	return Config{
		Settings: b.Simulation,
		Spawner:  b.Spawner,
		Enemy:    b.Enemy,
		Target:   b.Target,
	}
}

// DefaultConfig loads the prefab bundle and attaches a fixed clock at the
// configured tick rate and a random source seeded from simulation.yaml.
func DefaultConfig() (Config, *common.FixedClock, error) {
	bundle, err := prefabs.LoadBundle()
	if err != nil {
		return Config{}, nil, err
	}
	cfg := ConfigFromBundle(bundle)
	clock := common.NewFixedClockTPS(bundle.Simulation.TickRate)
	cfg.Clock = clock
	cfg.Random = common.NewRand(bundle.Simulation.Seed)
	return cfg, clock, nil
}
