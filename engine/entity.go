package engine

import (
	"fmt"
	"time"

	"github.com/lunamare/inkslime/core"
)

// Entity is an identity-bearing container of components. Behavior comes
// entirely from the attached components; the container owns lifecycle flags,
// tags, and the per-kind component slots.
type Entity struct {
	id   core.EntityID
	name string

	active         bool
	pendingDestroy bool

	// poolKey selects the free list this instance returns to on destroy.
	// Empty means the instance is discarded instead of recycled.
	poolKey string

	tags  map[string]struct{}
	comps [kindCount]Component

	// manager is set while the entity is live so tag and component changes
	// keep the secondary indices consistent.
	manager *Manager
}

// NewEntity creates a detached entity. Entities start active and become live
// only after Manager.AddEntity plus the next commit.
func NewEntity(id core.EntityID, name string) *Entity {
	return &Entity{
		id:     id,
		name:   name,
		active: true,
		tags:   make(map[string]struct{}, 4),
	}
}

func (e *Entity) ID() core.EntityID { return e.id }

// Name is a debug label only, never an identity.
func (e *Entity) Name() string { return e.name }

func (e *Entity) Active() bool { return e.active }

// SetActive toggles participation in update, render, and broad-phase.
// Inactive entities remain tracked by the manager.
func (e *Entity) SetActive(active bool) { e.active = active }

func (e *Entity) PendingDestroy() bool { return e.pendingDestroy }

// Destroy marks the entity for removal at the next manager commit and
// deactivates it immediately so it drops out of collision broad-phase.
func (e *Entity) Destroy() {
	e.pendingDestroy = true
	e.active = false
}

func (e *Entity) PoolKey() string       { return e.poolKey }
func (e *Entity) SetPoolKey(key string) { e.poolKey = key }

// AddComponent attaches c and invokes its attach hook. A second component of
// the same kind is rejected with ErrDuplicateComponentKind and the entity is
// left unchanged.
func (e *Entity) AddComponent(c Component) (Component, error) {
	k := c.Kind()
	if e.comps[k] != nil {
		return nil, fmt.Errorf("add %s to %q: %w", k, e.name, ErrDuplicateComponentKind)
	}
	e.comps[k] = c
	c.Attach(e)
	if e.manager != nil {
		e.manager.indexComponent(e.id, k)
	}
	return c, nil
}

// Component returns the component of the given kind. A miss is an expected
// outcome of speculative queries, not an error.
func (e *Entity) Component(k Kind) (Component, bool) {
	c := e.comps[k]
	return c, c != nil
}

func (e *Entity) HasComponent(k Kind) bool {
	return e.comps[k] != nil
}

// RemoveComponent detaches and returns the component of the given kind,
// invoking its detach hook. Returns false if none is attached.
func (e *Entity) RemoveComponent(k Kind) (Component, bool) {
	c := e.comps[k]
	if c == nil {
		return nil, false
	}
	e.comps[k] = nil
	c.Detach()
	if e.manager != nil {
		e.manager.unindexComponent(e.id, k)
	}
	return c, true
}

// AddTag adds a coarse category label. Adding a duplicate is a no-op.
func (e *Entity) AddTag(tag string) {
	if _, ok := e.tags[tag]; ok {
		return
	}
	e.tags[tag] = struct{}{}
	if e.manager != nil {
		e.manager.indexTag(e.id, tag)
	}
}

// RemoveTag removes a label. Removing an absent tag is a no-op.
func (e *Entity) RemoveTag(tag string) {
	if _, ok := e.tags[tag]; !ok {
		return
	}
	delete(e.tags, tag)
	if e.manager != nil {
		e.manager.unindexTag(e.id, tag)
	}
}

func (e *Entity) HasTag(tag string) bool {
	_, ok := e.tags[tag]
	return ok
}

// Tags returns the current tag set. Order is unspecified.
func (e *Entity) Tags() []string {
	out := make([]string, 0, len(e.tags))
	for t := range e.tags {
		out = append(out, t)
	}
	return out
}

// Update advances all enabled components in kind order. Kind order is fixed,
// so a replay of the same inputs walks components identically.
func (e *Entity) Update(dt time.Duration) {
	if !e.active {
		return
	}
	for _, c := range e.comps {
		if c != nil && c.Enabled() {
			c.Update(dt)
		}
	}
}

// Render invokes every enabled renderable component. Called by the rendering
// collaborator once per frame; the core makes no drawing calls itself.
func (e *Entity) Render(s Surface) {
	if !e.active {
		return
	}
	for _, c := range e.comps {
		if c == nil || !c.Enabled() {
			continue
		}
		if r, ok := c.(Renderable); ok {
			r.Render(s)
		}
	}
}

// eachComponent visits attached components in kind order.
func (e *Entity) eachComponent(fn func(Component)) {
	for _, c := range e.comps {
		if c != nil {
			fn(c)
		}
	}
}
