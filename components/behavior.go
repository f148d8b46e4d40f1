package components

import (
	"math"
	"time"

	"github.com/lunamare/inkslime/core"
	"github.com/lunamare/inkslime/engine"
)

// Pattern selects a steering behavior.
type Pattern uint8

const (
	PatternIdle Pattern = iota
	// PatternPatrol moves horizontally and turns at the world edges (ships).
	PatternPatrol
	// PatternDefensive drifts slowly back and forth (turtles).
	PatternDefensive
	// PatternWander changes heading at a fixed interval (bonus fish).
	PatternWander
)

// Behavior steers the owner's transform according to its pattern. The wander
// heading comes from a per-instance linear congruential sequence seeded at
// construction, so a replay wanders identically.
type Behavior struct {
	engine.BaseComponent

	Pattern   Pattern
	Speed     float64
	Direction float64 // +1 right, -1 left

	// World bounds the patrol and wander patterns stay inside.
	World core.Rect

	// WanderInterval is how often the wander pattern picks a new heading.
	WanderInterval time.Duration

	wanderTimer time.Duration
	rngState    uint64
}

func NewBehavior(pattern Pattern, speed float64, world core.Rect) *Behavior {
	return &Behavior{
		Pattern:        pattern,
		Speed:          speed,
		Direction:      1,
		World:          world,
		WanderInterval: 1500 * time.Millisecond,
		rngState:       0x9E3779B97F4A7C15,
	}
}

// Seed fixes the wander sequence; callers seed from the entity id.
func (b *Behavior) Seed(seed uint64) {
	if seed == 0 {
		seed = 1
	}
	b.rngState = seed
}

func (b *Behavior) Kind() engine.Kind { return engine.KindBehavior }

func (b *Behavior) Update(dt time.Duration) {
	t := transformOf(b.Owner())
	if t == nil {
		return
	}
	switch b.Pattern {
	case PatternPatrol:
		b.patrol(t)
	case PatternDefensive:
		b.defensive(t)
	case PatternWander:
		b.wander(t, dt)
	}
}

// patrol holds a horizontal course and turns around at the world edges.
func (b *Behavior) patrol(t *Transform) {
	if t.Position.X <= b.World.MinX() && b.Direction < 0 {
		b.Direction = 1
	} else if t.Position.X >= b.World.MaxX() && b.Direction > 0 {
		b.Direction = -1
	}
	t.Velocity = core.Vec2{X: b.Direction * b.Speed}
}

// defensive is a slow patrol at a fraction of full speed.
func (b *Behavior) defensive(t *Transform) {
	if t.Position.X <= b.World.MinX() && b.Direction < 0 {
		b.Direction = 1
	} else if t.Position.X >= b.World.MaxX() && b.Direction > 0 {
		b.Direction = -1
	}
	t.Velocity = core.Vec2{X: b.Direction * b.Speed * 0.4}
}

func (b *Behavior) wander(t *Transform, dt time.Duration) {
	b.wanderTimer -= dt
	if b.wanderTimer <= 0 {
		b.wanderTimer = b.WanderInterval
		angle := b.nextFloat() * 2 * math.Pi
		t.Velocity = core.Vec2{
			X: math.Cos(angle) * b.Speed,
			Y: math.Sin(angle) * b.Speed,
		}
	}
	// Steer back toward the interior when leaving the world rect.
	if t.Position.X < b.World.MinX() || t.Position.X > b.World.MaxX() {
		t.Velocity.X = -t.Velocity.X
	}
	if t.Position.Y < b.World.MinY() || t.Position.Y > b.World.MaxY() {
		t.Velocity.Y = -t.Velocity.Y
	}
}

// nextFloat yields the next value in [0,1) from the LCG sequence.
func (b *Behavior) nextFloat() float64 {
	b.rngState = b.rngState*6364136223846793005 + 1442695040888963407
	return float64(b.rngState>>11) / float64(1<<53)
}

func (b *Behavior) Reset() {
	b.wanderTimer = 0
	b.Direction = 1
}
