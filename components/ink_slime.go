package components

import (
	"github.com/lunamare/inkslime/engine"
)

// Tags used by collision handlers to classify the other participant.
const (
	TagShip       = "ship"
	TagEnemy      = "enemy"
	TagPlayer     = "player"
	TagProjectile = "projectile"
	TagPickup     = "pickup"
)

// InkSlime is the projectile payload. On hitting a ship it transfers its ink
// into the ship's load, requests a splatter effect and splat sound, and
// destroys itself; the destruction commits at the next tick boundary.
type InkSlime struct {
	engine.BaseComponent

	Color string
	// Damage is the ink load added per hit, already scaled by the firing
	// arm's multiplier.
	Damage int
	// BaseDamage is the unscaled per-color value restored on pool reset.
	BaseDamage int
}

func NewInkSlime(color string, damage int) *InkSlime {
	return &InkSlime{Color: color, Damage: damage, BaseDamage: damage}
}

func (s *InkSlime) Kind() engine.Kind { return engine.KindInkSlime }

// SplatterEffect is the symbolic effect name for this ink color.
func (s *InkSlime) SplatterEffect() string {
	return "splatter_" + s.Color
}

func (s *InkSlime) OnCollision(other *engine.Entity, ctx *engine.CollisionContext) {
	owner := s.Owner()
	if owner == nil || other == nil {
		return
	}

	switch {
	case other.HasTag(TagShip):
		// A raised shield soaks the hit; no ink lands.
		if !shieldRaised(other) {
			if c, ok := other.Component(engine.KindInkLoad); ok {
				if load, ok := c.(*InkLoad); ok {
					load.AddInk(s.Color, s.Damage, ctx)
				}
			}
		}
	case other.HasTag(TagEnemy):
		// Non-ship enemies just splatter the projectile.
	default:
		return // ships and enemies only; everything else passes through
	}

	s.splatter(ctx)
	owner.Destroy()
}

func shieldRaised(e *engine.Entity) bool {
	c, ok := e.Component(engine.KindShield)
	if !ok {
		return false
	}
	sh, ok := c.(*Shield)
	return ok && sh.Raised && sh.Strength > 0
}

func (s *InkSlime) splatter(ctx *engine.CollisionContext) {
	x, y := 0.0, 0.0
	if t := transformOf(s.Owner()); t != nil {
		x, y = t.Position.X, t.Position.Y
	}
	ctx.Effects.PlayEffect(s.SplatterEffect(), x, y)
	ctx.Effects.PlaySound("splat")
}

func (s *InkSlime) Reset() {
	s.Damage = s.BaseDamage
}
