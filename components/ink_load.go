package components

import (
	"time"

	"github.com/lunamare/inkslime/engine"
)

// InkLoad tracks how much ink a ship has absorbed. Ships ride lower in the
// water as the load grows and sink outright at capacity: steering is
// disabled, motion is damped, and after SinkDuration the entity is
// destroyed.
type InkLoad struct {
	engine.BaseComponent

	Current int
	Max     int

	// SinkLevel is Current/Max in [0,1], driving the visual offset.
	SinkLevel float64
	// MaxSinkOffset is the vertical visual displacement at full load.
	MaxSinkOffset float64

	SinkDuration time.Duration
	sinking      bool
	sinkTimer    time.Duration
}

func NewInkLoad(max int) *InkLoad {
	return &InkLoad{
		Max:           max,
		MaxSinkOffset: 20,
		SinkDuration:  2 * time.Second,
	}
}

func (l *InkLoad) Kind() engine.Kind { return engine.KindInkLoad }

func (l *InkLoad) Sinking() bool { return l.sinking }

// SinkOffset is the current visual displacement for the sprite.
func (l *InkLoad) SinkOffset() float64 { return l.SinkLevel * l.MaxSinkOffset }

func (l *InkLoad) Update(dt time.Duration) {
	if !l.sinking {
		return
	}
	l.sinkTimer += dt
	if l.sinkTimer >= l.SinkDuration {
		if owner := l.Owner(); owner != nil {
			owner.Destroy()
		}
	}
}

// AddInk absorbs a hit. ctx may be nil when called outside collision
// dispatch (tests, scripted damage).
func (l *InkLoad) AddInk(color string, amount int, ctx *engine.CollisionContext) {
	if amount <= 0 || l.sinking {
		return
	}
	l.Current += amount
	if l.Current > l.Max {
		l.Current = l.Max
	}
	l.SinkLevel = float64(l.Current) / float64(l.Max)

	if l.Current >= l.Max {
		l.startSinking(ctx)
	}
}

func (l *InkLoad) startSinking(ctx *engine.CollisionContext) {
	l.sinking = true
	l.sinkTimer = 0

	owner := l.Owner()
	if owner == nil {
		return
	}
	// A sinking ship stops steering and coasts to a crawl.
	if c, ok := owner.Component(engine.KindBehavior); ok {
		if b, ok := c.(*Behavior); ok {
			b.SetEnabled(false)
		}
	}
	if t := transformOf(owner); t != nil {
		t.Velocity = t.Velocity.Scale(0.1)
	}
	if ctx != nil {
		x, y := 0.0, 0.0
		if t := transformOf(owner); t != nil {
			x, y = t.Position.X, t.Position.Y
		}
		ctx.Effects.PlayEffect("ship_sinking", x, y)
		ctx.Effects.PlaySound("ship_sunk")
	}
}

func (l *InkLoad) Reset() {
	l.Current = 0
	l.SinkLevel = 0
	l.sinking = false
	l.sinkTimer = 0
}
