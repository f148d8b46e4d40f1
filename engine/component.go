package engine

import (
	"time"

	"github.com/lunamare/inkslime/core"
)

// Kind identifies a component slot. The set is closed at compile time: an
// entity carries at most one component per Kind, and lookup is an array index
// instead of a string key.
type Kind uint8

const (
	KindTransform Kind = iota
	KindCollider
	KindHealth
	KindBehavior
	KindWeapon
	KindLifetime
	KindInkSlime
	KindInkLoad
	KindShield
	KindSprite
	KindPickup
	KindContact

	kindCount // sentinel, keep last
)

func (k Kind) String() string {
	switch k {
	case KindTransform:
		return "transform"
	case KindCollider:
		return "collider"
	case KindHealth:
		return "health"
	case KindBehavior:
		return "behavior"
	case KindWeapon:
		return "weapon"
	case KindLifetime:
		return "lifetime"
	case KindInkSlime:
		return "ink_slime"
	case KindInkLoad:
		return "ink_load"
	case KindShield:
		return "shield"
	case KindSprite:
		return "sprite"
	case KindPickup:
		return "pickup"
	case KindContact:
		return "contact"
	default:
		return "unknown"
	}
}

// Component is a typed behavior/data unit owned by exactly one entity.
// Attach and Detach are invoked exactly once each by the entity container.
type Component interface {
	Kind() Kind
	Update(dt time.Duration)
	Attach(owner *Entity)
	Detach()
	Enabled() bool
}

// Resettable components restore their mutable state to documented defaults
// when the owning entity returns to the object pool.
type Resettable interface {
	Reset()
}

// CollisionReactor components receive a callback for every confirmed overlap
// involving their owner. Handlers may request destruction or pool-return via
// the context; the request is deferred to the next manager commit.
type CollisionReactor interface {
	Component
	OnCollision(other *Entity, ctx *CollisionContext)
}

// BoundsProvider is implemented by the collider component. The collision
// pipeline only sees this interface, keeping concrete components out of the
// engine package.
type BoundsProvider interface {
	Component
	Bounds() core.Rect
	Group() Group
	CollidesWith() Group
	// RotationAware reports that narrow-phase must use the oriented test
	// when the current rotation is non-zero.
	RotationAware() bool
	Rotation() float64
}

// Renderable components draw their owner onto a surface. The core never
// draws; a rendering collaborator calls Manager.Render once per frame after
// the tick commits.
type Renderable interface {
	Component
	Render(s Surface)
}

// Surface is the drawing target handed to renderable components.
// Coordinates are world units; the implementation projects them.
type Surface interface {
	Draw(x, y float64, glyph rune)
}

// BaseComponent carries the owner back-reference and the enabled flag.
// Concrete components embed it and override what they need. A component that
// overrides Attach must call the embedded method to keep the back-reference
// invariant.
type BaseComponent struct {
	owner    *Entity
	disabled bool
}

func (b *BaseComponent) Attach(owner *Entity) { b.owner = owner }
func (b *BaseComponent) Detach()              { b.owner = nil }

// Owner returns the owning entity, nil while detached.
func (b *BaseComponent) Owner() *Entity { return b.owner }

func (b *BaseComponent) Enabled() bool { return !b.disabled }

// SetEnabled toggles update participation. Disabled components stay attached.
func (b *BaseComponent) SetEnabled(on bool) { b.disabled = !on }

func (b *BaseComponent) Update(time.Duration) {}
