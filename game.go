package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
	"github.com/milk9111/horde/prefabs"
	"github.com/milk9111/horde/sim"
	"golang.org/x/image/colornames"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	// pixels per world unit
	worldScale     = 2.0
	hitFlashFrames = 8
)

type Game struct {
	frames int

	physics bool
	debug   bool

	bundle  *prefabs.Bundle
	clock   *common.FixedClock
	sim     *sim.Simulation
	watcher *prefabs.Watcher

	ui       *ebitenui.UI
	paused   bool
	showBody bool
	quit     bool
	defeated bool
	flash    int
}

func NewGame(physics, debug, watch bool) (*Game, error) {
	bundle, err := prefabs.LoadBundle()
	if err != nil {
		return nil, fmt.Errorf("game: load prefabs: %w", err)
	}
	if debug {
		bundle.Simulation.Debug = true
	}

	g := &Game{physics: physics, debug: debug, bundle: bundle}
	if err := g.reset(); err != nil {
		return nil, err
	}
	ebiten.SetTPS(bundle.Simulation.TickRate)

	if watch {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("game: prefab hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.ui = NewPauseUI(g)
	return g, nil
}

// reset starts a fresh simulation from the current specs.
func (g *Game) reset() error {
	cfg := sim.ConfigFromBundle(g.bundle)
	g.clock = common.NewFixedClockTPS(g.bundle.Simulation.TickRate)
	cfg.Clock = g.clock
	cfg.Random = common.NewRand(g.bundle.Simulation.Seed)
	cfg.Physics = g.physics

	s, err := sim.New(cfg)
	if err != nil {
		return fmt.Errorf("game: new simulation: %w", err)
	}
	g.sim = s
	g.defeated = false
	g.flash = 0
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++
	if g.quit {
		return ebiten.Termination
	}
	g.pollReload()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showBody = !g.showBody
	}
	if g.paused {
		g.ui.Update()
		return nil
	}

	if g.defeated {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			return g.reset()
		}
		return nil
	}

	g.moveTarget()
	if inpututil.IsKeyJustPressed(ebiten.KeyK) {
		if e, ok := g.sim.NearestEnemy(g.sim.TargetPosition()); ok {
			if err := g.sim.Kill(e); err != nil {
				log.Printf("game: kill %s: %v", e, err)
			}
		}
	}

	g.clock.Tick()
	if err := g.sim.Step(); err != nil {
		return err
	}

	for _, evt := range g.sim.DrainEvents() {
		if evt.Type == ecs.EventDamage {
			g.flash = hitFlashFrames
		}
	}
	if g.flash > 0 {
		g.flash--
	}
	if g.sim.TargetHealth() <= 0 {
		g.defeated = true
	}
	return nil
}

func (g *Game) moveTarget() {
	var dir cp.Vector
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dir.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dir.Y++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dir.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dir.X++
	}
	if dir.X == 0 && dir.Y == 0 {
		return
	}

	step := g.bundle.Target.Speed * g.clock.Step().Seconds()
	g.sim.SetTargetPosition(g.sim.TargetPosition().Add(dir.Normalize().Mult(step)))
}

func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if ok && err != nil {
				log.Printf("game: prefab watcher: %v", err)
			}
		default:
			return
		}
	}
}

// reload applies an edited prefab. Enemy and spawner changes affect
// spawns from now on; target changes only affect movement speed.
func (g *Game) reload(name string) {
	switch name {
	case "enemy.yaml":
		spec, err := prefabs.LoadEnemySpec()
		if err != nil {
			log.Printf("game: reload %s: %v", name, err)
			return
		}
		g.bundle.Enemy = *spec
		g.sim.SetEnemySpec(*spec)
	case "spawner.yaml":
		spec, err := prefabs.LoadSpawnerSpec()
		if err != nil {
			log.Printf("game: reload %s: %v", name, err)
			return
		}
		g.bundle.Spawner = *spec
		g.sim.SetSpawnerSpec(*spec)
	case "target.yaml":
		spec, err := prefabs.LoadTargetSpec()
		if err != nil {
			log.Printf("game: reload %s: %v", name, err)
			return
		}
		g.bundle.Target.Speed = spec.Speed
	default:
		return
	}
	log.Printf("game: reloaded %s", name)
}

// worldToScreen maps a world position to screen pixels with camera at the
// center of the screen.
func worldToScreen(p, camera cp.Vector) (float32, float32) {
	return float32((p.X-camera.X)*worldScale + baseWidth/2), float32((p.Y-camera.Y)*worldScale + baseHeight/2)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)

	w := g.sim.World()
	camera := g.sim.TargetPosition()
	g.drawGrid(screen, camera)

	ecs.ForEach3(w, component.EnemyTagComponent.Kind(), component.TransformComponent.Kind(), component.AttackTimerComponent.Kind(), func(_ ecs.Entity, _ *component.EnemyTag, t *component.Transform, timer *component.AttackTimer) {
		x, y := worldToScreen(t.Vector(), camera)
		r := float32(g.bundle.Enemy.Radius * worldScale)
		clr := color.Color(colornames.Crimson)
		if timer.Active() {
			clr = colornames.Orange
		}
		vector.FillCircle(screen, x, y, r, clr, true)
	})

	x, y := worldToScreen(camera, camera)
	targetColor := color.Color(colornames.Dodgerblue)
	if g.flash > 0 {
		targetColor = colornames.White
	}
	vector.FillCircle(screen, x, y, float32(g.bundle.Target.Radius*worldScale), targetColor, true)

	if g.showBody {
		if ps := g.sim.Physics(); ps != nil {
			drawPhysicsDebug(ps.Space(), screen, camera)
		}
	}
	g.drawHealthBar(screen)

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"Health: %d    Enemies: %d    TPS: %.1f    Time: %.1fs\nWASD move  K kill nearest  F1 bodies  Esc pause",
		g.sim.TargetHealth(), len(g.sim.Enemies()), ebiten.ActualTPS(), g.sim.Elapsed().Seconds(),
	))
	if g.defeated {
		ebitenutil.DebugPrintAt(screen, "Overrun. Press R to restart.", baseWidth/2-90, baseHeight/2-60)
	}

	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) drawGrid(screen *ebiten.Image, camera cp.Vector) {
	const cell = 50.0
	clr := colornames.Darkslategray
	startX := float64(int(camera.X/cell)-20) * cell
	startY := float64(int(camera.Y/cell)-20) * cell
	for i := 0; i <= 40; i++ {
		x, _ := worldToScreen(cp.Vector{X: startX + float64(i)*cell}, camera)
		vector.StrokeLine(screen, x, 0, x, baseHeight, 1, clr, false)
		_, y := worldToScreen(cp.Vector{Y: startY + float64(i)*cell}, camera)
		vector.StrokeLine(screen, 0, y, baseWidth, y, 1, clr, false)
	}
}

func (g *Game) drawHealthBar(screen *ebiten.Image) {
	const (
		barW = 200
		barH = 10
	)
	maxHealth := g.bundle.Target.Health
	ratio := 0.0
	if maxHealth > 0 {
		ratio = common.Clamp(float64(g.sim.TargetHealth())/float64(maxHealth), 0, 1)
	}
	vector.FillRect(screen, baseWidth-barW-20, 20, barW, barH, colornames.Dimgray, false)
	vector.FillRect(screen, baseWidth-barW-20, 20, float32(barW*ratio), barH, colornames.Limegreen, false)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
