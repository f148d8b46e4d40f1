package engine

import (
	"go.uber.org/zap"
)

// PoolStats tracks reuse behavior for one free list.
type PoolStats struct {
	Hits     int // Acquire served from the free list
	Misses   int // Acquire found the list empty
	Released int
	Dropped  int // releases evicted by the retention cap
	Peak     int // high-water mark of the free list
}

// Pool recycles short-lived entity instances (projectiles, effects) keyed by
// archetype. Free lists are unbounded by default, favoring memory over
// allocation churn; SetCap bounds retention per key.
type Pool struct {
	log    *zap.Logger
	free   map[string][]*Entity
	caps   map[string]int
	stats  map[string]*PoolStats
	member map[*Entity]struct{} // double-release guard
}

func NewPool(log *zap.Logger) *Pool {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pool{
		log:    log,
		free:   make(map[string][]*Entity),
		caps:   make(map[string]int),
		stats:  make(map[string]*PoolStats),
		member: make(map[*Entity]struct{}),
	}
}

// SetCap bounds the free list for key. Zero or negative means unbounded.
func (p *Pool) SetCap(key string, max int) {
	p.caps[key] = max
}

// Acquire returns a reset instance for key with a fresh generation, or false
// when none is available so the caller constructs fresh.
func (p *Pool) Acquire(key string) (*Entity, bool) {
	list := p.free[key]
	if len(list) == 0 {
		p.stat(key).Misses++
		return nil, false
	}
	e := list[len(list)-1]
	p.free[key] = list[:len(list)-1]
	delete(p.member, e)
	p.stat(key).Hits++

	// A reused slot must never alias its previous life.
	e.id = e.id.NextGeneration()
	return e, true
}

// Release resets the instance and appends it to its archetype free list. An
// instance still attached to a manager is detached first; releasing the same
// instance twice is an invariant violation.
func (p *Pool) Release(e *Entity) {
	key := e.PoolKey()
	if key == "" {
		return
	}
	if _, dup := p.member[e]; dup {
		p.log.DPanic("double release into pool",
			zap.Uint64("id", uint64(e.ID())), zap.String("key", key))
		return
	}
	if e.manager != nil {
		// Defensive: a released instance must not remain in any index.
		e.manager.detachEntity(e)
	}

	p.reset(e)

	st := p.stat(key)
	st.Released++
	if limit := p.caps[key]; limit > 0 && len(p.free[key]) >= limit {
		st.Dropped++
		return
	}
	p.free[key] = append(p.free[key], e)
	p.member[e] = struct{}{}
	if n := len(p.free[key]); n > st.Peak {
		st.Peak = n
	}
}

// reset restores the instance to inert defaults: inactive, not pending
// destroy, every resettable component back to its documented zero state.
func (p *Pool) reset(e *Entity) {
	e.pendingDestroy = false
	e.active = false
	e.eachComponent(func(c Component) {
		if r, ok := c.(Resettable); ok {
			r.Reset()
		}
	})
}

// FreeLen reports the current free-list length for key.
func (p *Pool) FreeLen(key string) int {
	return len(p.free[key])
}

// Stats returns a copy of the counters for key.
func (p *Pool) Stats(key string) PoolStats {
	if st, ok := p.stats[key]; ok {
		return *st
	}
	return PoolStats{}
}

// Clear drops every free list and all counters.
func (p *Pool) Clear() {
	p.free = make(map[string][]*Entity)
	p.stats = make(map[string]*PoolStats)
	p.member = make(map[*Entity]struct{})
}

func (p *Pool) stat(key string) *PoolStats {
	st, ok := p.stats[key]
	if !ok {
		st = &PoolStats{}
		p.stats[key] = st
	}
	return st
}
