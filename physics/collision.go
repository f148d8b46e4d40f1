package physics

import (
	"math"

	"github.com/lunamare/inkslime/core"
)

// Overlap is the default narrow-phase test: axis-aligned box intersection.
func Overlap(a, b core.Rect) bool {
	return a.Intersects(b)
}

// OverlapRotated runs a separating-axis test between two possibly rotated
// boxes. Rotation is in radians around each rect's center. With both
// rotations zero it degenerates to the AABB test.
func OverlapRotated(a core.Rect, rotA float64, b core.Rect, rotB float64) bool {
	if rotA == 0 && rotB == 0 {
		return Overlap(a, b)
	}

	cornersA := corners(a, rotA)
	cornersB := corners(b, rotB)

	// Each box contributes two potential separating axes (its edge normals).
	axes := [4]core.Vec2{
		edgeNormal(cornersA[0], cornersA[1]),
		edgeNormal(cornersA[1], cornersA[2]),
		edgeNormal(cornersB[0], cornersB[1]),
		edgeNormal(cornersB[1], cornersB[2]),
	}

	for _, axis := range axes {
		minA, maxA := project(cornersA, axis)
		minB, maxB := project(cornersB, axis)
		if maxA <= minB || maxB <= minA {
			return false // found a separating axis
		}
	}
	return true
}

// corners returns the four corners of r rotated around its center.
func corners(r core.Rect, rot float64) [4]core.Vec2 {
	c := r.Center()
	hw, hh := r.W/2, r.H/2
	sin, cos := math.Sincos(rot)

	local := [4]core.Vec2{
		{X: -hw, Y: -hh},
		{X: hw, Y: -hh},
		{X: hw, Y: hh},
		{X: -hw, Y: hh},
	}
	var out [4]core.Vec2
	for i, p := range local {
		out[i] = core.Vec2{
			X: c.X + p.X*cos - p.Y*sin,
			Y: c.Y + p.X*sin + p.Y*cos,
		}
	}
	return out
}

func edgeNormal(a, b core.Vec2) core.Vec2 {
	e := b.Sub(a)
	return core.Vec2{X: -e.Y, Y: e.X}
}

func project(pts [4]core.Vec2, axis core.Vec2) (min, max float64) {
	min = math.Inf(1)
	max = math.Inf(-1)
	for _, p := range pts {
		d := p.X*axis.X + p.Y*axis.Y
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return
}
