package components

import (
	"github.com/lunamare/inkslime/engine"
)

// Shield absorbs projectile hits while raised. Each deflection costs
// strength; at zero strength the shield drops until reset.
type Shield struct {
	engine.BaseComponent

	Raised   bool
	Strength float64
	Max      float64
	// DrainPerHit is the strength cost of one deflection.
	DrainPerHit float64
}

func NewShield(max float64) *Shield {
	return &Shield{
		Strength:    max,
		Max:         max,
		DrainPerHit: 10,
	}
}

func (s *Shield) Kind() engine.Kind { return engine.KindShield }

func (s *Shield) OnCollision(other *engine.Entity, ctx *engine.CollisionContext) {
	if !s.Raised || s.Strength <= 0 {
		return
	}
	if other == nil || !other.HasTag(TagProjectile) {
		return
	}
	s.Strength -= s.DrainPerHit
	if s.Strength < 0 {
		s.Strength = 0
	}
	if s.Strength == 0 {
		s.Raised = false
	}
	if t := transformOf(s.Owner()); t != nil {
		ctx.Effects.PlayEffect("shield_deflect", t.Position.X, t.Position.Y)
	}
	ctx.Effects.PlaySound("shield_block")
}

func (s *Shield) Reset() {
	s.Strength = s.Max
	s.Raised = false
}
