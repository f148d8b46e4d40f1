package components

import (
	"github.com/lunamare/inkslime/engine"
)

// Pickup marks a collectible. Touching the player consumes the owner,
// feeds the collector's health, and requests the pickup sound.
type Pickup struct {
	engine.BaseComponent

	// Heal is the health restored to the collector, if it has health.
	Heal float64

	collected bool
}

func NewPickup(heal float64) *Pickup {
	return &Pickup{Heal: heal}
}

func (p *Pickup) Kind() engine.Kind { return engine.KindPickup }

func (p *Pickup) OnCollision(other *engine.Entity, ctx *engine.CollisionContext) {
	if p.collected || other == nil || !other.HasTag(TagPlayer) {
		return
	}
	p.collected = true

	if c, ok := other.Component(engine.KindHealth); ok {
		if h, ok := c.(*Health); ok {
			h.Heal(p.Heal)
		}
	}
	if t := transformOf(p.Owner()); t != nil {
		ctx.Effects.PlayEffect("pickup", t.Position.X, t.Position.Y)
	}
	ctx.Effects.PlaySound("pickup")

	if owner := p.Owner(); owner != nil {
		owner.Destroy()
	}
}

func (p *Pickup) Reset() {
	p.collected = false
}
