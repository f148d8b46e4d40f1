package core

import "math"

// Rect is an axis-aligned box. X,Y is the top-left corner in world units.
type Rect struct {
	X, Y, W, H float64
}

// RectAround builds a Rect of the given extent centered on a point.
// Entity positions are centers; collision bounds are derived this way.
func RectAround(center Vec2, w, h float64) Rect {
	return Rect{X: center.X - w/2, Y: center.Y - h/2, W: w, H: h}
}

func (r Rect) MinX() float64 { return r.X }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxX() float64 { return r.X + r.W }
func (r Rect) MaxY() float64 { return r.Y + r.H }

func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// Intersects reports AABB overlap. Touching edges do not count as overlap,
// matching the half-open cell ranges used by the spatial grid.
func (r Rect) Intersects(o Rect) bool {
	return r.MinX() < o.MaxX() && o.MinX() < r.MaxX() &&
		r.MinY() < o.MaxY() && o.MinY() < r.MaxY()
}

// CellRange returns the inclusive range of grid cells the rect covers for a
// given cell size. Negative coordinates floor toward negative infinity so
// that cell boundaries stay uniform across the origin.
func (r Rect) CellRange(cellSize float64) (minCX, minCY, maxCX, maxCY int) {
	minCX = int(math.Floor(r.MinX() / cellSize))
	minCY = int(math.Floor(r.MinY() / cellSize))
	maxCX = int(math.Floor(r.MaxX() / cellSize))
	maxCY = int(math.Floor(r.MaxY() / cellSize))
	return
}
