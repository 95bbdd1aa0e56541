package scenario

import (
	"errors"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/sim"
)

// ErrEnemyIndex is returned when a script names an enemy that was never
// spawned.
var ErrEnemyIndex = errors.New("scenario: enemy index out of range")

const dispatchScript = `
update(__engine, __state)
`

// Runner drives a simulation from a tengo script. The script defines
// update(engine, state), which is called once per tick before the step.
type Runner struct {
	name     string
	compiled *tengo.Compiled
	state    *tengo.Map
	stopped  bool
}

// Load compiles the named script from disk or the embedded set.
func Load(name string) (*Runner, error) {
	src, err := LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("scenario: load %s: %w", name, err)
	}
	return New(name, src)
}

func New(name string, src []byte) (*Runner, error) {
	full := append(append([]byte{}, src...), []byte("\n"+dispatchScript)...)
	script := tengo.NewScript(full)
	if err := script.Add("__engine", map[string]any{}); err != nil {
		return nil, fmt.Errorf("scenario: %s: add engine: %w", name, err)
	}
	if err := script.Add("__state", map[string]any{}); err != nil {
		return nil, fmt.Errorf("scenario: %s: add state: %w", name, err)
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("scenario: compile %s: %w", name, err)
	}
	return &Runner{
		name:     name,
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
	}, nil
}

func (r *Runner) Name() string {
	return r.name
}

// Stopped reports whether the script called stop().
func (r *Runner) Stopped() bool {
	return r.stopped
}

// Update runs the script's update for the tick about to be stepped. The
// caller ticks the clock first so elapsed matches the coming step.
func (r *Runner) Update(s *sim.Simulation) error {
	if r == nil || r.stopped {
		return nil
	}
	if err := r.compiled.Set("__engine", r.engine(s)); err != nil {
		return err
	}
	if err := r.compiled.Set("__state", r.state); err != nil {
		return err
	}
	if err := r.compiled.Run(); err != nil {
		return fmt.Errorf("scenario: %s: %w", r.name, err)
	}
	return nil
}

func (r *Runner) engine(s *sim.Simulation) *tengo.ImmutableMap {
	values := map[string]tengo.Object{
		"tick":    &tengo.Int{Value: int64(s.Steps() + 1)},
		"elapsed": &tengo.Float{Value: s.Elapsed().Seconds()},
		"health":  &tengo.Int{Value: int64(s.TargetHealth())},
		"enemies": &tengo.Int{Value: int64(len(s.Spawned()))},
		"alive":   &tengo.Int{Value: int64(len(s.Enemies()))},
	}

	values["begin"] = &tengo.UserFunction{Name: "begin", Value: func(args ...tengo.Object) (tengo.Object, error) {
		e, err := enemyArg(s, args)
		if err != nil {
			return nil, err
		}
		s.Contacts().Begin(s.Target(), e)
		return tengo.TrueValue, nil
	}}

	values["end"] = &tengo.UserFunction{Name: "end", Value: func(args ...tengo.Object) (tengo.Object, error) {
		e, err := enemyArg(s, args)
		if err != nil {
			return nil, err
		}
		s.Contacts().End(s.Target(), e)
		return tengo.TrueValue, nil
	}}

	values["move"] = &tengo.UserFunction{Name: "move", Value: func(args ...tengo.Object) (tengo.Object, error) {
		pos, err := vectorArgs(args)
		if err != nil {
			return nil, err
		}
		s.SetTargetPosition(pos)
		return tengo.TrueValue, nil
	}}

	values["spawn"] = &tengo.UserFunction{Name: "spawn", Value: func(args ...tengo.Object) (tengo.Object, error) {
		pos, err := vectorArgs(args)
		if err != nil {
			return nil, err
		}
		if _, err := s.SpawnEnemy(pos); err != nil {
			return nil, err
		}
		return &tengo.Int{Value: int64(len(s.Spawned()) - 1)}, nil
	}}

	values["stop"] = &tengo.UserFunction{Name: "stop", Value: func(args ...tengo.Object) (tengo.Object, error) {
		r.stopped = true
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func enemyArg(s *sim.Simulation, args []tengo.Object) (ecs.Entity, error) {
	if len(args) != 1 {
		return 0, tengo.ErrWrongNumArguments
	}
	i, ok := tengo.ToInt(args[0])
	if !ok {
		return 0, tengo.ErrInvalidArgumentType{Name: "index", Expected: "int", Found: args[0].TypeName()}
	}
	spawned := s.Spawned()
	if i < 0 || i >= len(spawned) {
		return 0, fmt.Errorf("%w: %d of %d", ErrEnemyIndex, i, len(spawned))
	}
	return spawned[i], nil
}

func vectorArgs(args []tengo.Object) (cp.Vector, error) {
	if len(args) != 2 {
		return cp.Vector{}, tengo.ErrWrongNumArguments
	}
	x, ok := tengo.ToFloat64(args[0])
	if !ok {
		return cp.Vector{}, tengo.ErrInvalidArgumentType{Name: "x", Expected: "number", Found: args[0].TypeName()}
	}
	y, ok := tengo.ToFloat64(args[1])
	if !ok {
		return cp.Vector{}, tengo.ErrInvalidArgumentType{Name: "y", Expected: "number", Found: args[1].TypeName()}
	}
	return cp.Vector{X: x, Y: y}, nil
}
