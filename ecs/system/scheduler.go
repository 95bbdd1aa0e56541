package system

import "github.com/milk9111/horde/ecs"

// System is one stage of the fixed step.
type System interface {
	Update(w *ecs.World, ctx *Context) error
}

// Scheduler runs systems in registration order and stops at the first
// error.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(w *ecs.World, ctx *Context) error {
	for _, system := range s.systems {
		if err := system.Update(w, ctx); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}

// CombatStage drains every contact source in order, applies the contacts
// and then the damage ticks, as one scheduler stage.
type CombatStage struct {
	Combat  *CombatSystem
	Sources []ContactSource
}

func (c *CombatStage) Update(w *ecs.World, ctx *Context) error {
	var events []ecs.ContactEvent
	for _, src := range c.Sources {
		events = append(events, src.Drain()...)
	}
	if err := c.Combat.ApplyContactEvents(w, ctx, events); err != nil {
		return err
	}
	return c.Combat.ApplyDamageTicks(w, ctx)
}
