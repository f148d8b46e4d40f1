package engine

import (
	"sort"

	"go.uber.org/zap"

	"github.com/lunamare/inkslime/core"
	"github.com/lunamare/inkslime/physics"
)

// Group is a collision category bitmask. A pair is tested only when at least
// one participant's mask includes the other's group.
type Group uint8

const (
	GroupPlayer Group = 1 << iota
	GroupEnemy
	GroupProjectile
	GroupObstacle
	GroupPickup
)

// GroupAll matches every category.
const GroupAll = Group(0xFF)

// EffectSink receives fire-and-forget effect and sound requests from
// collision handlers. Implementations must return immediately; the tick is
// never blocked on playback.
type EffectSink interface {
	PlayEffect(name string, x, y float64)
	PlaySound(name string)
}

// NopEffectSink discards all requests.
type NopEffectSink struct{}

func (NopEffectSink) PlayEffect(string, float64, float64) {}
func (NopEffectSink) PlaySound(string)                    {}

// CollisionContext is handed to reactor components during dispatch. Mutation
// requests made through the manager are staged until the next commit.
type CollisionContext struct {
	Manager *Manager
	Effects EffectSink
}

// CollisionStats counts work done by the latest Step.
type CollisionStats struct {
	CandidatePairs int // broad-phase pairs after dedup and mask filter
	Tested         int // narrow-phase tests run
	Confirmed      int // overlaps dispatched
}

type pairKey struct {
	lo, hi core.EntityID
}

func makePairKey(a, b core.EntityID) pairKey {
	if a < b {
		return pairKey{a, b}
	}
	return pairKey{b, a}
}

type candidate struct {
	key  pairKey
	a, b *Entity
	ca   BoundsProvider
	cb   BoundsProvider
}

// CollisionPipeline runs broad-phase candidate generation against the
// spatial grid, exact narrow-phase tests, and response dispatch, in that
// order, once per tick.
type CollisionPipeline struct {
	manager *Manager
	grid    *SpatialGrid
	log     *zap.Logger
	ctx     CollisionContext
	stats   CollisionStats
}

func NewCollisionPipeline(m *Manager, g *SpatialGrid, effects EffectSink, log *zap.Logger) *CollisionPipeline {
	if log == nil {
		log = zap.NewNop()
	}
	if effects == nil {
		effects = NopEffectSink{}
	}
	return &CollisionPipeline{
		manager: m,
		grid:    g,
		log:     log,
		ctx:     CollisionContext{Manager: m, Effects: effects},
	}
}

// Rebuild refreshes the grid from the manager's live set. Inactive entities
// are excluded here, before broad-phase, not merely skipped at narrow-phase.
func (p *CollisionPipeline) Rebuild() {
	entities := p.manager.orderedEntities()
	entries := make([]GridEntry, 0, len(entities))
	for _, e := range entities {
		if !e.Active() {
			continue
		}
		if bp := colliderOf(e); bp != nil && bp.Enabled() {
			entries = append(entries, GridEntry{ID: e.ID(), Bounds: bp.Bounds()})
		}
	}
	p.grid.Rebuild(entries)
}

// Step generates candidate pairs, narrow-phase tests them, and invokes the
// collision reactors of both participants. Symmetric pairs are deduplicated
// at generation time, so a mutual-destruction pair is processed exactly once.
func (p *CollisionPipeline) Step() {
	p.stats = CollisionStats{}

	seen := make(map[pairKey]struct{}, 64)
	var candidates []candidate

	for _, a := range p.manager.orderedEntities() {
		if !a.Active() {
			continue
		}
		ca := colliderOf(a)
		if ca == nil || !ca.Enabled() {
			continue
		}
		for _, otherID := range p.grid.Neighbors(a.ID()) {
			if otherID == a.ID() {
				p.log.DPanic("self pair from broad-phase",
					zap.Uint64("id", uint64(a.ID())))
				continue
			}
			key := makePairKey(a.ID(), otherID)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			b, ok := p.manager.Entity(otherID)
			if !ok || !b.Active() {
				continue
			}
			cb := colliderOf(b)
			if cb == nil || !cb.Enabled() {
				continue
			}
			if ca.CollidesWith()&cb.Group() == 0 && cb.CollidesWith()&ca.Group() == 0 {
				continue
			}
			candidates = append(candidates, candidate{key: key, a: a, b: b, ca: ca, cb: cb})
		}
	}
	p.stats.CandidatePairs = len(candidates)

	// Grid cell iteration order is not stable; sort so a replay dispatches
	// the same pairs in the same order.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].key.lo != candidates[j].key.lo {
			return candidates[i].key.lo < candidates[j].key.lo
		}
		return candidates[i].key.hi < candidates[j].key.hi
	})

	for _, c := range candidates {
		p.stats.Tested++
		if !p.overlaps(c.ca, c.cb) {
			continue
		}
		p.stats.Confirmed++
		dispatch(c.a, c.b, &p.ctx)
		dispatch(c.b, c.a, &p.ctx)
	}
}

// overlaps picks the narrow-phase test: AABB by default, the oriented
// separating-axis test when either participant declares rotation-sensitive
// bounds with a live rotation.
func (p *CollisionPipeline) overlaps(ca, cb BoundsProvider) bool {
	ra, rb := ca.Bounds(), cb.Bounds()
	rotA, rotB := 0.0, 0.0
	if ca.RotationAware() {
		rotA = ca.Rotation()
	}
	if cb.RotationAware() {
		rotB = cb.Rotation()
	}
	if rotA != 0 || rotB != 0 {
		return physics.OverlapRotated(ra, rotA, rb, rotB)
	}
	return physics.Overlap(ra, rb)
}

// Stats returns the counters from the latest Step.
func (p *CollisionPipeline) Stats() CollisionStats { return p.stats }

// dispatch invokes every collision-reactive component of e with the other
// participant. Destruction requests made by handlers stay pending until the
// next manager commit.
func dispatch(e, other *Entity, ctx *CollisionContext) {
	for _, c := range e.comps {
		if c == nil || !c.Enabled() {
			continue
		}
		if r, ok := c.(CollisionReactor); ok {
			r.OnCollision(other, ctx)
		}
	}
}

func colliderOf(e *Entity) BoundsProvider {
	c, ok := e.Component(KindCollider)
	if !ok {
		return nil
	}
	bp, ok := c.(BoundsProvider)
	if !ok {
		return nil
	}
	return bp
}
