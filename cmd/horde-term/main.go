package main

import (
	"flag"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
	"github.com/milk9111/horde/scenario"
	"github.com/milk9111/horde/sim"
)

const (
	// terminal cells are roughly twice as tall as they are wide
	cellsPerUnitX = 0.25
	cellsPerUnitY = 0.125

	moveStep   = 8.0
	sampleRate = beep.SampleRate(44100)
)

type options struct {
	physics  bool
	scenario string
}

type viewer struct {
	screen tcell.Screen
	sim    *sim.Simulation
	clock  *common.FixedClock
	runner *scenario.Runner
	tps    int

	audioInit bool
	audioErr  error
}

// newSimulation builds the simulation the viewer steps. With physics off the
// scenario is the only contact source.
func newSimulation(opts options, logger *log.Logger) (*sim.Simulation, *common.FixedClock, *scenario.Runner, error) {
	cfg, clock, err := sim.DefaultConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	cfg.Physics = opts.physics
	cfg.Logger = logger

	s, err := sim.New(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	var runner *scenario.Runner
	if opts.scenario != "" {
		runner, err = scenario.Load(opts.scenario)
		if err != nil {
			return nil, nil, nil, err
		}
	}
	return s, clock, runner, nil
}

func newViewer(opts options, logger *log.Logger) (*viewer, error) {
	s, clock, runner, err := newSimulation(opts, logger)
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	v := &viewer{
		screen: screen,
		sim:    s,
		clock:  clock,
		runner: runner,
		tps:    int(time.Second / clock.Delta()),
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		// reported after the screen is released
		v.audioErr = err
	} else {
		v.audioInit = true
	}
	return v, nil
}

func (v *viewer) playHitSound() {
	if !v.audioInit {
		return
	}
	sine, err := generators.SineTone(sampleRate, 440)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(60*time.Millisecond), sine))
}

// handleInput returns false when the viewer should exit.
func (v *viewer) handleInput(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		if _, resized := ev.(*tcell.EventResize); resized {
			v.screen.Sync()
		}
		return true
	}
	if key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC {
		return false
	}
	if key.Key() != tcell.KeyRune {
		return true
	}

	var dir cp.Vector
	switch key.Rune() {
	case 'q':
		return false
	case 'w':
		dir.Y = -1
	case 's':
		dir.Y = 1
	case 'a':
		dir.X = -1
	case 'd':
		dir.X = 1
	case 'k':
		if e, ok := v.sim.NearestEnemy(v.sim.TargetPosition()); ok {
			_ = v.sim.Kill(e)
		}
	}
	if dir.X != 0 || dir.Y != 0 {
		v.sim.SetTargetPosition(v.sim.TargetPosition().Add(dir.Mult(moveStep)))
	}
	return true
}

func (v *viewer) step() error {
	v.clock.Tick()
	if err := v.runner.Update(v.sim); err != nil {
		return err
	}
	if err := v.sim.Step(); err != nil {
		return err
	}
	for _, evt := range v.sim.DrainEvents() {
		if evt.Type == ecs.EventDamage {
			v.playHitSound()
		}
	}
	return nil
}

func (v *viewer) draw() {
	v.screen.Clear()
	width, height := v.screen.Size()
	camera := v.sim.TargetPosition()

	toCell := func(p cp.Vector) (int, int) {
		return int((p.X-camera.X)*cellsPerUnitX) + width/2, int((p.Y-camera.Y)*cellsPerUnitY) + height/2
	}

	enemyStyle := tcell.StyleDefault.Foreground(tcell.ColorRed)
	activeStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	ecs.ForEach2(v.sim.World(), component.TransformComponent.Kind(), component.AttackTimerComponent.Kind(), func(_ ecs.Entity, t *component.Transform, timer *component.AttackTimer) {
		x, y := toCell(t.Vector())
		if x < 0 || y < 1 || x >= width || y >= height {
			return
		}
		style := enemyStyle
		if timer.Active() {
			style = activeStyle
		}
		v.screen.SetContent(x, y, 'e', nil, style)
	})

	x, y := toCell(camera)
	v.screen.SetContent(x, y, '@', nil, tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true))

	status := []rune(
		"health " + strconv.Itoa(v.sim.TargetHealth()) +
			"  enemies " + strconv.Itoa(len(v.sim.Enemies())) +
			"  wasd move  k kill  q quit",
	)
	for i, r := range status {
		if i >= width {
			break
		}
		v.screen.SetContent(i, 0, r, nil, tcell.StyleDefault.Reverse(true))
	}
	v.screen.Show()
}

func (v *viewer) run() error {
	ticker := time.NewTicker(time.Second / time.Duration(v.tps))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !v.handleInput(ev) {
				return nil
			}
		case <-ticker.C:
			if err := v.step(); err != nil {
				return err
			}
			v.draw()
		}
	}
}

func (v *viewer) cleanup() {
	if v.audioInit {
		speaker.Close()
	}
	v.screen.Fini()
}

// openLog returns the logger used while tcell owns the terminal.
func openLog(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard, "", 0), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return log.New(f, "horde-term: ", log.LstdFlags), f, nil
}

func main() {
	physics := flag.Bool("physics", true, "use Chipmunk bodies for movement and contacts")
	scenarioName := flag.String("scenario", "", "tengo scenario in scenario/scripts (empty for none)")
	logPath := flag.String("log", "", "append simulation logs to this file")
	flag.Parse()

	logger, logFile, err := openLog(*logPath)
	if err != nil {
		log.Fatal(err)
	}
	defer logFile.Close()

	v, err := newViewer(options{physics: *physics, scenario: *scenarioName}, logger)
	if err != nil {
		log.Fatal(err)
	}

	runErr := v.run()
	v.cleanup()
	if v.audioErr != nil {
		log.Printf("audio disabled: %v", v.audioErr)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
	log.Printf("final health %d after %v", v.sim.TargetHealth(), v.sim.Elapsed())
}
