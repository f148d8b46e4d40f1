package components

import (
	"time"

	"github.com/lunamare/inkslime/engine"
)

// Contact makes enemy touches hurt the owner. Overlap persists across
// ticks while the entities interpenetrate, so damage is gated by an
// interval instead of landing every tick.
type Contact struct {
	engine.BaseComponent

	Damage   float64
	Interval time.Duration

	timer time.Duration
}

func NewContact(damage float64, interval time.Duration) *Contact {
	return &Contact{Damage: damage, Interval: interval}
}

func (c *Contact) Kind() engine.Kind { return engine.KindContact }

func (c *Contact) Update(dt time.Duration) {
	if c.timer > 0 {
		c.timer -= dt
	}
}

func (c *Contact) OnCollision(other *engine.Entity, ctx *engine.CollisionContext) {
	if c.timer > 0 || other == nil || !other.HasTag(TagEnemy) {
		return
	}
	owner := c.Owner()
	if owner == nil {
		return
	}
	if hc, ok := owner.Component(engine.KindHealth); ok {
		if h, ok := hc.(*Health); ok {
			h.Damage(c.Damage)
		}
	}
	ctx.Effects.PlaySound("hit")
	c.timer = c.Interval
}

func (c *Contact) Reset() {
	c.timer = 0
}
