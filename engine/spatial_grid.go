package engine

import (
	"math"

	"github.com/lunamare/inkslime/core"
)

type cellKey struct {
	cx, cy int
}

// GridEntry pairs an entity with its bounds for a rebuild pass.
type GridEntry struct {
	ID     core.EntityID
	Bounds core.Rect
}

// GridStats describes occupancy after the latest rebuild.
type GridStats struct {
	Cells    int
	Entities int
}

// SpatialGrid partitions world space into uniform cells. An entity occupies
// every cell its bounding box covers, so the broad-phase only has to look at
// co-resident cells instead of the full pairwise set. Cell size should sit
// close to the median entity extent: too fine spreads entities over many
// cells, too coarse degrades toward brute force.
type SpatialGrid struct {
	cellSize   float64
	cells      map[cellKey]map[core.EntityID]struct{}
	membership map[core.EntityID][]cellKey
}

func NewSpatialGrid(cellSize float64) *SpatialGrid {
	if cellSize <= 0 {
		cellSize = 64
	}
	return &SpatialGrid{
		cellSize:   cellSize,
		cells:      make(map[cellKey]map[core.EntityID]struct{}),
		membership: make(map[core.EntityID][]cellKey),
	}
}

func (g *SpatialGrid) CellSize() float64 { return g.cellSize }

// Insert records membership in every cell covered by bounds. Re-inserting an
// id replaces its previous membership.
func (g *SpatialGrid) Insert(id core.EntityID, bounds core.Rect) {
	if _, ok := g.membership[id]; ok {
		g.Remove(id)
	}
	minCX, minCY, maxCX, maxCY := bounds.CellRange(g.cellSize)
	keys := make([]cellKey, 0, (maxCX-minCX+1)*(maxCY-minCY+1))
	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			k := cellKey{cx, cy}
			cell := g.cells[k]
			if cell == nil {
				cell = make(map[core.EntityID]struct{}, 4)
				g.cells[k] = cell
			}
			cell[id] = struct{}{}
			keys = append(keys, k)
		}
	}
	g.membership[id] = keys
}

// Remove clears all recorded memberships for id.
func (g *SpatialGrid) Remove(id core.EntityID) {
	for _, k := range g.membership[id] {
		if cell, ok := g.cells[k]; ok {
			delete(cell, id)
			if len(cell) == 0 {
				delete(g.cells, k)
			}
		}
	}
	delete(g.membership, id)
}

// Clear empties every cell.
func (g *SpatialGrid) Clear() {
	g.cells = make(map[cellKey]map[core.EntityID]struct{})
	g.membership = make(map[core.EntityID][]cellKey)
}

// Rebuild clears the grid and re-inserts every entry with its fresh bounds.
// Run once per tick after motion update. A full rebuild beats incremental
// diffing here because most entities move every tick.
func (g *SpatialGrid) Rebuild(entries []GridEntry) {
	g.Clear()
	for _, en := range entries {
		g.Insert(en.ID, en.Bounds)
	}
}

// Neighbors returns every entity sharing at least one cell with id, excluding
// id itself and without duplicates when either entity spans multiple cells.
func (g *SpatialGrid) Neighbors(id core.EntityID) []core.EntityID {
	keys, ok := g.membership[id]
	if !ok {
		return nil
	}
	seen := make(map[core.EntityID]struct{}, 8)
	var out []core.EntityID
	for _, k := range keys {
		for other := range g.cells[k] {
			if other == id {
				continue
			}
			if _, dup := seen[other]; dup {
				continue
			}
			seen[other] = struct{}{}
			out = append(out, other)
		}
	}
	return out
}

// NearbyPoint returns entities whose cell coverage intersects the circle
// around (x, y). Coarse cell-level containment; callers do exact filtering.
func (g *SpatialGrid) NearbyPoint(x, y, radius float64) []core.EntityID {
	area := core.Rect{X: x - radius, Y: y - radius, W: 2 * radius, H: 2 * radius}
	minCX, minCY, maxCX, maxCY := area.CellRange(g.cellSize)
	seen := make(map[core.EntityID]struct{}, 8)
	var out []core.EntityID
	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			for id := range g.cells[cellKey{cx, cy}] {
				if _, dup := seen[id]; dup {
					continue
				}
				seen[id] = struct{}{}
				out = append(out, id)
			}
		}
	}
	return out
}

// Contains reports whether id currently has any cell membership.
func (g *SpatialGrid) Contains(id core.EntityID) bool {
	_, ok := g.membership[id]
	return ok
}

// Stats reports current occupancy.
func (g *SpatialGrid) Stats() GridStats {
	return GridStats{
		Cells:    len(g.cells),
		Entities: len(g.membership),
	}
}

// CellOf returns the cell coordinate containing a point.
func (g *SpatialGrid) CellOf(x, y float64) (int, int) {
	return int(math.Floor(x / g.cellSize)), int(math.Floor(y / g.cellSize))
}
