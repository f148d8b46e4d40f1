package engine

import (
	"time"

	"github.com/lunamare/inkslime/core"
)

// stubComponent counts updates and resets for a chosen kind slot.
type stubComponent struct {
	BaseComponent
	kind    Kind
	updates int
	resets  int
}

func (c *stubComponent) Kind() Kind           { return c.kind }
func (c *stubComponent) Update(time.Duration) { c.updates++ }
func (c *stubComponent) Reset()               { c.resets++ }

// stubCollider is a fixed-bounds collider with configurable filtering.
type stubCollider struct {
	BaseComponent
	bounds   core.Rect
	group    Group
	mask     Group
	rotAware bool
	rotation float64
}

func (c *stubCollider) Kind() Kind          { return KindCollider }
func (c *stubCollider) Bounds() core.Rect   { return c.bounds }
func (c *stubCollider) Group() Group        { return c.group }
func (c *stubCollider) CollidesWith() Group { return c.mask }
func (c *stubCollider) RotationAware() bool { return c.rotAware }
func (c *stubCollider) Rotation() float64   { return c.rotation }

// stubReactor records collision callbacks, optionally destroying its owner.
type stubReactor struct {
	BaseComponent
	kind         Kind
	hits         []core.EntityID
	destroyOnHit bool
}

func (r *stubReactor) Kind() Kind { return r.kind }

func (r *stubReactor) OnCollision(other *Entity, _ *CollisionContext) {
	r.hits = append(r.hits, other.ID())
	if r.destroyOnHit {
		r.Owner().Destroy()
	}
}

func mustAdd(e *Entity, c Component) {
	if _, err := e.AddComponent(c); err != nil {
		panic(err)
	}
}

// newBoxEntity builds an entity with a square collider centered at (x, y).
func newBoxEntity(m *Manager, name string, x, y, size float64, group, mask Group) (*Entity, *stubCollider) {
	e := NewEntity(m.NewID(), name)
	col := &stubCollider{
		bounds: core.RectAround(core.Vec2{X: x, Y: y}, size, size),
		group:  group,
		mask:   mask,
	}
	mustAdd(e, col)
	return e, col
}
