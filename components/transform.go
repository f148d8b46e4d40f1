package components

import (
	"time"

	"github.com/lunamare/inkslime/core"
	"github.com/lunamare/inkslime/engine"
	"github.com/lunamare/inkslime/physics"
)

// Transform carries position and motion state. Position is the entity's
// center in world units. Update integrates velocity, applies friction, and
// advances rotation by angular velocity.
type Transform struct {
	engine.BaseComponent

	Position core.Vec2
	Velocity core.Vec2

	// MaxSpeed caps velocity magnitude after integration. Zero = unlimited.
	MaxSpeed float64

	Rotation        float64 // radians
	AngularVelocity float64 // radians per second

	// Friction is a per-second decay coefficient in (0,1); values outside
	// that range disable friction.
	Friction      float64
	ApplyFriction bool
}

func NewTransform(x, y float64) *Transform {
	return &Transform{Position: core.Vec2{X: x, Y: y}}
}

func (t *Transform) Kind() engine.Kind { return engine.KindTransform }

func (t *Transform) Update(dt time.Duration) {
	sec := dt.Seconds()
	if t.ApplyFriction {
		t.Velocity = physics.ApplyFriction(t.Velocity, t.Friction, sec)
	}
	t.Velocity = physics.ClampMagnitude(t.Velocity, t.MaxSpeed)
	t.Position = physics.Integrate(t.Position, t.Velocity, sec)
	if t.AngularVelocity != 0 {
		t.Rotation += t.AngularVelocity * sec
	}
}

// Reset parks the instance far off-world with no motion, the inert state a
// pooled projectile waits in.
func (t *Transform) Reset() {
	t.Position = core.Vec2{X: -1000, Y: -1000}
	t.Velocity = core.Vec2{}
	t.Rotation = 0
	t.AngularVelocity = 0
}
