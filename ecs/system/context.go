package system

import (
	"fmt"
	"log"
	"time"

	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

// Context carries the per-step inputs every system reads.
type Context struct {
	// Delta is the duration of the current step.
	Delta time.Duration
	// Now is the monotonic time at the end of the current step.
	Now time.Duration
	// Target is the injected handle of the controlled actor.
	Target ecs.Entity
	Logger *log.Logger
	Debug  bool
}

func (c *Context) logf(format string, args ...any) {
	if c == nil {
		return
	}
	logger := c.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Printf(format, args...)
}

func (c *Context) debugf(format string, args ...any) {
	if c == nil || !c.Debug {
		return
	}
	c.logf(format, args...)
}

// ResolveTarget returns the target entity after checking that exactly one
// exists and that it matches the injected handle.
func ResolveTarget(w *ecs.World, ctx *Context) (ecs.Entity, error) {
	target, err := ecs.Unique(w, component.TargetTagComponent.Kind())
	if err != nil {
		return 0, fmt.Errorf("resolve target: %w", err)
	}
	if ctx != nil && ctx.Target.Valid() && ctx.Target != target {
		return 0, fmt.Errorf("%w: have %s, world has %s", ErrTargetMismatch, ctx.Target, target)
	}
	return target, nil
}
