package prefabs

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSpec is wrapped by every validation failure.
var ErrInvalidSpec = errors.New("prefabs: invalid spec")

// Validator is implemented by specs that can reject bad values after decoding.
type Validator interface {
	Validate() error
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	spec, err := ParseSpec[T](data)
	if err != nil {
		return zero, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return spec, nil
}

// ParseSpec decodes a YAML document and validates it when T supports it.
func ParseSpec[T any](data []byte) (T, error) {
	var zero T
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("unmarshal: %w", err)
	}
	if v, ok := any(&spec).(Validator); ok {
		if err := v.Validate(); err != nil {
			return zero, err
		}
	}
	return spec, nil
}

// SimulationSpec holds the run-wide settings.
type SimulationSpec struct {
	TickRate int    `yaml:"tick_rate"`
	Seed     uint64 `yaml:"seed"`
	// LenientContacts turns contacts with unknown entities into logged
	// warnings instead of fatal errors.
	LenientContacts bool `yaml:"lenient_contacts"`
	Debug           bool `yaml:"debug"`
}

func (s *SimulationSpec) Validate() error {
	if s.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalidSpec, s.TickRate)
	}
	return nil
}

func LoadSimulationSpec() (*SimulationSpec, error) {
	spec, err := LoadSpec[SimulationSpec]("simulation.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type SpawnerSpec struct {
	Interval time.Duration `yaml:"interval"`
	Base     float64       `yaml:"base"`
	Spread   float64       `yaml:"spread"`
	FirstRun bool          `yaml:"first_run"`
	// MaxAlive caps the number of live enemies; zero means unlimited.
	MaxAlive int `yaml:"max_alive"`
}

func (s *SpawnerSpec) Validate() error {
	if s.Interval <= 0 {
		return fmt.Errorf("%w: spawner interval must be positive, got %v", ErrInvalidSpec, s.Interval)
	}
	if s.Spread < 0 {
		return fmt.Errorf("%w: spawner spread must not be negative, got %v", ErrInvalidSpec, s.Spread)
	}
	if s.MaxAlive < 0 {
		return fmt.Errorf("%w: max_alive must not be negative, got %d", ErrInvalidSpec, s.MaxAlive)
	}
	return nil
}

func LoadSpawnerSpec() (*SpawnerSpec, error) {
	spec, err := LoadSpec[SpawnerSpec]("spawner.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type EnemySpec struct {
	Name         string        `yaml:"name"`
	Speed        float64       `yaml:"speed"`
	Damage       int           `yaml:"damage"`
	Health       int           `yaml:"health"`
	AttackPeriod time.Duration `yaml:"attack_period"`
	Radius       float64       `yaml:"radius"`
	Mass         float64       `yaml:"mass"`
}

func (s *EnemySpec) Validate() error {
	if s.AttackPeriod <= 0 {
		return fmt.Errorf("%w: enemy attack_period must be positive, got %v", ErrInvalidSpec, s.AttackPeriod)
	}
	if s.Health <= 0 {
		return fmt.Errorf("%w: enemy health must be positive, got %d", ErrInvalidSpec, s.Health)
	}
	if s.Speed < 0 {
		return fmt.Errorf("%w: enemy speed must not be negative, got %v", ErrInvalidSpec, s.Speed)
	}
	return nil
}

func LoadEnemySpec() (*EnemySpec, error) {
	spec, err := LoadSpec[EnemySpec]("enemy.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type TargetSpec struct {
	Name      string        `yaml:"name"`
	Speed     float64       `yaml:"speed"`
	Health    int           `yaml:"health"`
	Radius    float64       `yaml:"radius"`
	Transform TransformSpec `yaml:"transform"`
}

func (s *TargetSpec) Validate() error {
	if s.Health <= 0 {
		return fmt.Errorf("%w: target health must be positive, got %d", ErrInvalidSpec, s.Health)
	}
	return nil
}

func LoadTargetSpec() (*TargetSpec, error) {
	spec, err := LoadSpec[TargetSpec]("target.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type TransformSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Bundle groups every spec the simulation needs.
type Bundle struct {
	Simulation SimulationSpec
	Spawner    SpawnerSpec
	Enemy      EnemySpec
	Target     TargetSpec
}

// LoadBundle loads all specs, preferring files under prefabs/ on disk.
func LoadBundle() (*Bundle, error) {
	simSpec, err := LoadSimulationSpec()
	if err != nil {
		return nil, err
	}
	spawnerSpec, err := LoadSpawnerSpec()
	if err != nil {
		return nil, err
	}
	enemySpec, err := LoadEnemySpec()
	if err != nil {
		return nil, err
	}
	targetSpec, err := LoadTargetSpec()
	if err != nil {
		return nil, err
	}
	return &Bundle{
		Simulation: *simSpec,
		Spawner:    *spawnerSpec,
		Enemy:      *enemySpec,
		Target:     *targetSpec,
	}, nil
}
