package components

import (
	"github.com/lunamare/inkslime/core"
	"github.com/lunamare/inkslime/engine"
)

// Collider declares collision extent and category. Bounds are centered on
// the owner's transform position. Implements engine.BoundsProvider.
type Collider struct {
	engine.BaseComponent

	Width, Height float64

	// CollisionGroup is the category this entity belongs to.
	CollisionGroup engine.Group
	// CollisionMask selects the groups this entity reacts to.
	CollisionMask engine.Group

	// RotationSensitive requests the oriented narrow-phase test whenever the
	// owner's rotation is non-zero.
	RotationSensitive bool
}

func NewCollider(w, h float64, group, mask engine.Group) *Collider {
	return &Collider{
		Width:          w,
		Height:         h,
		CollisionGroup: group,
		CollisionMask:  mask,
	}
}

func (c *Collider) Kind() engine.Kind { return engine.KindCollider }

func (c *Collider) Group() engine.Group        { return c.CollisionGroup }
func (c *Collider) CollidesWith() engine.Group { return c.CollisionMask }
func (c *Collider) RotationAware() bool        { return c.RotationSensitive }

// Bounds derives the axis-aligned box from the owner's transform. Without a
// transform the collider reports an empty rect, which overlaps nothing.
func (c *Collider) Bounds() core.Rect {
	t := transformOf(c.Owner())
	if t == nil {
		return core.Rect{}
	}
	return core.RectAround(t.Position, c.Width, c.Height)
}

func (c *Collider) Rotation() float64 {
	if t := transformOf(c.Owner()); t != nil {
		return t.Rotation
	}
	return 0
}

// transformOf fetches the owner's transform, nil when absent or detached.
func transformOf(e *engine.Entity) *Transform {
	if e == nil {
		return nil
	}
	c, ok := e.Component(engine.KindTransform)
	if !ok {
		return nil
	}
	t, ok := c.(*Transform)
	if !ok {
		return nil
	}
	return t
}
