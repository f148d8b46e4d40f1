package physics

import (
	"math"

	"github.com/lunamare/inkslime/core"
)

// Integrate advances a position by velocity over dt seconds.
func Integrate(pos, vel core.Vec2, dt float64) core.Vec2 {
	return core.Vec2{
		X: pos.X + vel.X*dt,
		Y: pos.Y + vel.Y*dt,
	}
}

// ApplyFriction decays velocity by coeff^dt, the frame-rate independent form
// of a per-second friction coefficient in (0, 1].
func ApplyFriction(vel core.Vec2, coeff, dt float64) core.Vec2 {
	if coeff <= 0 || coeff >= 1 {
		return vel
	}
	f := math.Pow(coeff, dt)
	return core.Vec2{X: vel.X * f, Y: vel.Y * f}
}

// ClampMagnitude limits a velocity to a maximum speed. Zero or negative max
// means unlimited.
func ClampMagnitude(v core.Vec2, max float64) core.Vec2 {
	if max <= 0 {
		return v
	}
	l := v.Len()
	if l <= max {
		return v
	}
	return v.Scale(max / l)
}
