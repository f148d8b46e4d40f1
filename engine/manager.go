package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/lunamare/inkslime/core"
)

// Manager tracks all live entities and owns them exclusively. Additions and
// removals are staged in pending queues and applied only by CommitPending at
// the tick boundary, so iteration during update and collision phases never
// observes a mutating collection.
type Manager struct {
	log *zap.Logger

	entities map[core.EntityID]*Entity
	order    []core.EntityID // insertion order, the deterministic update order

	pendingAdd    []*Entity
	pendingIDs    map[core.EntityID]struct{}
	pendingRemove []core.EntityID

	tagIndex  map[string]map[core.EntityID]struct{}
	kindIndex [kindCount]map[core.EntityID]struct{}

	pool      *Pool
	nextIndex uint32
}

func NewManager(log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	m := &Manager{
		log:        log,
		entities:   make(map[core.EntityID]*Entity, 256),
		pendingIDs: make(map[core.EntityID]struct{}),
		tagIndex:   make(map[string]map[core.EntityID]struct{}),
	}
	for k := range m.kindIndex {
		m.kindIndex[k] = make(map[core.EntityID]struct{})
	}
	return m
}

// SetPool wires the object pool that reusable instances return to on removal.
func (m *Manager) SetPool(p *Pool) { m.pool = p }

// NewID hands out a never-before-used id. Pool reuse bumps the generation
// instead, so both paths yield fresh identities.
func (m *Manager) NewID() core.EntityID {
	m.nextIndex++
	return core.NewEntityID(m.nextIndex, 0)
}

// AddEntity enqueues e for addition at the next commit. The id must be unique
// among live and pending entities.
func (m *Manager) AddEntity(e *Entity) error {
	id := e.ID()
	if _, live := m.entities[id]; live {
		return ErrDuplicateID
	}
	if _, queued := m.pendingIDs[id]; queued {
		return ErrDuplicateID
	}
	m.pendingAdd = append(m.pendingAdd, e)
	m.pendingIDs[id] = struct{}{}
	return nil
}

// RemoveEntity enqueues id for removal at the next commit. Unknown ids are
// ignored, so destruction requests are idempotent.
func (m *Manager) RemoveEntity(id core.EntityID) {
	m.pendingRemove = append(m.pendingRemove, id)
}

// Entity returns the live entity for id. Pending-removed entities are still
// returned until the removal commits.
func (m *Manager) Entity(id core.EntityID) (*Entity, bool) {
	e, ok := m.entities[id]
	return e, ok
}

// CommitPending applies queued adds then queued removes. Invoked once at the
// start of each tick, before any update, so an add followed by a remove in
// the same tick cancels out without the entity ever appearing in an index.
func (m *Manager) CommitPending() {
	adds := m.pendingAdd
	m.pendingAdd = nil
	for _, e := range adds {
		delete(m.pendingIDs, e.ID())
		m.commitAdd(e)
	}

	removes := m.pendingRemove
	m.pendingRemove = nil
	for _, id := range removes {
		m.commitRemove(id)
	}
}

func (m *Manager) commitAdd(e *Entity) {
	id := e.ID()
	if _, exists := m.entities[id]; exists {
		m.log.DPanic("commit of duplicate entity id",
			zap.Uint64("id", uint64(id)), zap.String("name", e.Name()))
		return
	}
	m.entities[id] = e
	m.order = append(m.order, id)
	e.manager = m

	for _, tag := range e.Tags() {
		m.indexTag(id, tag)
	}
	e.eachComponent(func(c Component) {
		m.indexComponent(id, c.Kind())
	})
}

func (m *Manager) commitRemove(id core.EntityID) {
	e, ok := m.entities[id]
	if !ok {
		return // already removed or never lived, idempotent
	}
	m.detachEntity(e)
	if m.pool != nil && e.PoolKey() != "" {
		m.pool.Release(e)
	}
}

// detachEntity removes e from the primary mapping and every index, and clears
// the manager back-reference. Component and tag state stay on the instance
// for possible pool reuse.
func (m *Manager) detachEntity(e *Entity) {
	id := e.ID()
	delete(m.entities, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	for _, tag := range e.Tags() {
		m.unindexTag(id, tag)
	}
	e.eachComponent(func(c Component) {
		m.unindexComponent(id, c.Kind())
	})
	e.manager = nil
}

// Update advances every active live entity in insertion order. Entities that
// flagged themselves for destruction during the pass are enqueued for the
// next commit, never removed mid-iteration.
func (m *Manager) Update(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	snapshot := make([]core.EntityID, len(m.order))
	copy(snapshot, m.order)

	for _, id := range snapshot {
		e, ok := m.entities[id]
		if !ok {
			continue
		}
		if e.Active() && !e.PendingDestroy() {
			e.Update(dt)
		}
		if e.PendingDestroy() {
			m.RemoveEntity(id)
		}
	}
}

// SweepDestroyed enqueues removal for every live entity flagged for
// destruction. Runs after the collision phase so a destruction requested by a
// collision handler commits at the very next tick boundary, not one later.
func (m *Manager) SweepDestroyed() {
	for _, id := range m.order {
		if e, ok := m.entities[id]; ok && e.PendingDestroy() {
			m.RemoveEntity(id)
		}
	}
}

// Render walks active live entities in update order and invokes their render
// point. Called by the rendering collaborator after the tick commits.
func (m *Manager) Render(s Surface) {
	for _, id := range m.order {
		if e, ok := m.entities[id]; ok {
			e.Render(s)
		}
	}
}

// EntitiesWithTag returns a stable snapshot of live entities carrying tag.
// Pending mutations within the same tick do not affect the result.
func (m *Manager) EntitiesWithTag(tag string) []*Entity {
	return m.collect(m.tagIndex[tag])
}

// EntitiesWithKind returns a stable snapshot of live entities holding a
// component of kind k.
func (m *Manager) EntitiesWithKind(k Kind) []*Entity {
	return m.collect(m.kindIndex[k])
}

// EntitiesWith returns live entities that carry all given tags and hold all
// given component kinds. Seeding from the smallest index keeps the
// intersection cheap.
func (m *Manager) EntitiesWith(tags []string, kinds []Kind) []*Entity {
	var seed map[core.EntityID]struct{}
	for _, tag := range tags {
		idx := m.tagIndex[tag]
		if seed == nil || len(idx) < len(seed) {
			seed = idx
		}
	}
	for _, k := range kinds {
		idx := m.kindIndex[k]
		if seed == nil || len(idx) < len(seed) {
			seed = idx
		}
	}
	if seed == nil {
		return nil
	}

	out := make([]*Entity, 0, len(seed))
	for id := range seed {
		e, ok := m.entities[id]
		if !ok {
			m.log.DPanic("index references id absent from live mapping",
				zap.Uint64("id", uint64(id)))
			continue
		}
		match := true
		for _, tag := range tags {
			if !e.HasTag(tag) {
				match = false
				break
			}
		}
		if match {
			for _, k := range kinds {
				if !e.HasComponent(k) {
					match = false
					break
				}
			}
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}

func (m *Manager) collect(idx map[core.EntityID]struct{}) []*Entity {
	if len(idx) == 0 {
		return nil
	}
	out := make([]*Entity, 0, len(idx))
	for _, id := range m.order {
		if _, ok := idx[id]; !ok {
			continue
		}
		e, ok := m.entities[id]
		if !ok {
			m.log.DPanic("index references id absent from live mapping",
				zap.Uint64("id", uint64(id)))
			continue
		}
		out = append(out, e)
	}
	return out
}

// Clear empties all live and pending state. Nothing is pool-returned; this is
// a full teardown, used when a scene is torn down.
func (m *Manager) Clear() {
	for _, e := range m.entities {
		e.manager = nil
	}
	m.entities = make(map[core.EntityID]*Entity, 256)
	m.order = m.order[:0]
	m.pendingAdd = nil
	m.pendingRemove = nil
	m.pendingIDs = make(map[core.EntityID]struct{})
	m.tagIndex = make(map[string]map[core.EntityID]struct{})
	for k := range m.kindIndex {
		m.kindIndex[k] = make(map[core.EntityID]struct{})
	}
}

// Len counts live entities. Pending adds are not included.
func (m *Manager) Len() int { return len(m.entities) }

// ActiveCount counts live entities currently flagged active.
func (m *Manager) ActiveCount() int {
	n := 0
	for _, e := range m.entities {
		if e.Active() {
			n++
		}
	}
	return n
}

// orderedEntities hands the collision pipeline the live set in update order.
func (m *Manager) orderedEntities() []*Entity {
	out := make([]*Entity, 0, len(m.order))
	for _, id := range m.order {
		if e, ok := m.entities[id]; ok {
			out = append(out, e)
		}
	}
	return out
}

func (m *Manager) indexTag(id core.EntityID, tag string) {
	set := m.tagIndex[tag]
	if set == nil {
		set = make(map[core.EntityID]struct{})
		m.tagIndex[tag] = set
	}
	set[id] = struct{}{}
}

func (m *Manager) unindexTag(id core.EntityID, tag string) {
	if set, ok := m.tagIndex[tag]; ok {
		delete(set, id)
		if len(set) == 0 {
			delete(m.tagIndex, tag)
		}
	}
}

func (m *Manager) indexComponent(id core.EntityID, k Kind) {
	m.kindIndex[k][id] = struct{}{}
}

func (m *Manager) unindexComponent(id core.EntityID, k Kind) {
	delete(m.kindIndex[k], id)
}
