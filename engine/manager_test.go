package engine

import (
	"errors"
	"testing"
	"time"
)

// TestManagerDeferredAdd verifies entities stay invisible until commit.
func TestManagerDeferredAdd(t *testing.T) {
	m := NewManager(nil)
	e := NewEntity(m.NewID(), "ship")

	if err := m.AddEntity(e); err != nil {
		t.Fatalf("AddEntity: %v", err)
	}
	if m.Len() != 0 {
		t.Errorf("pending add already live: Len = %d, want 0", m.Len())
	}

	m.CommitPending()
	if m.Len() != 1 {
		t.Errorf("after commit: Len = %d, want 1", m.Len())
	}
	if _, ok := m.Entity(e.ID()); !ok {
		t.Error("committed entity not retrievable")
	}
}

// TestManagerDuplicateID verifies both live and pending ids are rejected.
func TestManagerDuplicateID(t *testing.T) {
	m := NewManager(nil)
	id := m.NewID()

	if err := m.AddEntity(NewEntity(id, "first")); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := m.AddEntity(NewEntity(id, "second")); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("duplicate pending id: err = %v, want ErrDuplicateID", err)
	}

	m.CommitPending()
	if err := m.AddEntity(NewEntity(id, "third")); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("duplicate live id: err = %v, want ErrDuplicateID", err)
	}
}

// TestManagerAddRemoveSameTick verifies an add followed by a remove in the
// same tick cancels out at commit.
func TestManagerAddRemoveSameTick(t *testing.T) {
	m := NewManager(nil)
	e := NewEntity(m.NewID(), "ephemeral")

	if err := m.AddEntity(e); err != nil {
		t.Fatalf("AddEntity: %v", err)
	}
	m.RemoveEntity(e.ID())
	m.CommitPending()

	if m.Len() != 0 {
		t.Errorf("Len = %d, want 0 after add+remove in one tick", m.Len())
	}
	if _, ok := m.Entity(e.ID()); ok {
		t.Error("cancelled entity still retrievable")
	}
}

// TestManagerRemoveIdempotent verifies unknown and repeated removals are
// silently ignored.
func TestManagerRemoveIdempotent(t *testing.T) {
	m := NewManager(nil)
	e := NewEntity(m.NewID(), "ship")
	if err := m.AddEntity(e); err != nil {
		t.Fatalf("AddEntity: %v", err)
	}
	m.CommitPending()

	m.RemoveEntity(e.ID())
	m.RemoveEntity(e.ID())
	m.RemoveEntity(m.NewID()) // never lived
	m.CommitPending()

	if m.Len() != 0 {
		t.Errorf("Len = %d, want 0", m.Len())
	}
}

// TestManagerDestroyDuringUpdate verifies an entity destroyed mid-update
// survives until the next commit and is removed then.
func TestManagerDestroyDuringUpdate(t *testing.T) {
	m := NewManager(nil)
	e := NewEntity(m.NewID(), "ship")
	mustAdd(e, &stubComponent{kind: KindHealth})
	if err := m.AddEntity(e); err != nil {
		t.Fatalf("AddEntity: %v", err)
	}
	m.CommitPending()

	e.Destroy()
	m.Update(16 * time.Millisecond)

	// Still live: removal is staged, not applied.
	if _, ok := m.Entity(e.ID()); !ok {
		t.Fatal("destroyed entity vanished before commit")
	}

	m.CommitPending()
	if _, ok := m.Entity(e.ID()); ok {
		t.Error("destroyed entity survived the commit")
	}
}

// TestManagerUpdateSkipsInactive verifies inactive entities do not update.
func TestManagerUpdateSkipsInactive(t *testing.T) {
	m := NewManager(nil)
	e := NewEntity(m.NewID(), "ship")
	c := &stubComponent{kind: KindHealth}
	mustAdd(e, c)
	if err := m.AddEntity(e); err != nil {
		t.Fatalf("AddEntity: %v", err)
	}
	m.CommitPending()

	e.SetActive(false)
	m.Update(16 * time.Millisecond)
	if c.updates != 0 {
		t.Errorf("inactive entity updated %d times, want 0", c.updates)
	}

	e.SetActive(true)
	m.Update(16 * time.Millisecond)
	if c.updates != 1 {
		t.Errorf("active entity updated %d times, want 1", c.updates)
	}
}

// TestManagerTagIndex verifies tag queries track live entities and later
// tag mutations.
func TestManagerTagIndex(t *testing.T) {
	m := NewManager(nil)

	a := NewEntity(m.NewID(), "a")
	a.AddTag("enemy")
	b := NewEntity(m.NewID(), "b")
	b.AddTag("enemy")
	b.AddTag("ship")
	for _, e := range []*Entity{a, b} {
		if err := m.AddEntity(e); err != nil {
			t.Fatalf("AddEntity: %v", err)
		}
	}
	m.CommitPending()

	if got := m.EntitiesWithTag("enemy"); len(got) != 2 {
		t.Errorf("enemy count = %d, want 2", len(got))
	}
	if got := m.EntitiesWithTag("ship"); len(got) != 1 || got[0] != b {
		t.Errorf("ship query = %v, want [b]", got)
	}

	// Mutating tags on a live entity updates the index immediately.
	a.RemoveTag("enemy")
	if got := m.EntitiesWithTag("enemy"); len(got) != 1 {
		t.Errorf("enemy count after untag = %d, want 1", len(got))
	}
}

// TestManagerKindIndex verifies component-kind queries.
func TestManagerKindIndex(t *testing.T) {
	m := NewManager(nil)

	a := NewEntity(m.NewID(), "a")
	mustAdd(a, &stubComponent{kind: KindHealth})
	b := NewEntity(m.NewID(), "b")
	mustAdd(b, &stubComponent{kind: KindShield})
	for _, e := range []*Entity{a, b} {
		if err := m.AddEntity(e); err != nil {
			t.Fatalf("AddEntity: %v", err)
		}
	}
	m.CommitPending()

	if got := m.EntitiesWithKind(KindHealth); len(got) != 1 || got[0] != a {
		t.Errorf("KindHealth query = %v, want [a]", got)
	}
	if got := m.EntitiesWithKind(KindWeapon); got != nil {
		t.Errorf("KindWeapon query = %v, want nil", got)
	}
}

// TestManagerEntitiesWith verifies the combined tag and kind intersection.
func TestManagerEntitiesWith(t *testing.T) {
	m := NewManager(nil)

	a := NewEntity(m.NewID(), "a")
	a.AddTag("enemy")
	mustAdd(a, &stubComponent{kind: KindHealth})
	b := NewEntity(m.NewID(), "b")
	b.AddTag("enemy")
	for _, e := range []*Entity{a, b} {
		if err := m.AddEntity(e); err != nil {
			t.Fatalf("AddEntity: %v", err)
		}
	}
	m.CommitPending()

	got := m.EntitiesWith([]string{"enemy"}, []Kind{KindHealth})
	if len(got) != 1 || got[0] != a {
		t.Errorf("EntitiesWith = %v, want [a]", got)
	}
}

// TestManagerOrderDeterministic verifies update order follows insertion order.
func TestManagerOrderDeterministic(t *testing.T) {
	m := NewManager(nil)
	names := []string{"first", "second", "third"}
	for _, name := range names {
		if err := m.AddEntity(NewEntity(m.NewID(), name)); err != nil {
			t.Fatalf("AddEntity: %v", err)
		}
	}
	m.CommitPending()

	got := m.orderedEntities()
	if len(got) != len(names) {
		t.Fatalf("ordered count = %d, want %d", len(got), len(names))
	}
	for i, e := range got {
		if e.Name() != names[i] {
			t.Errorf("position %d = %q, want %q", i, e.Name(), names[i])
		}
	}
}

// TestManagerClear verifies a full teardown of live and pending state.
func TestManagerClear(t *testing.T) {
	m := NewManager(nil)
	live := NewEntity(m.NewID(), "live")
	live.AddTag("enemy")
	if err := m.AddEntity(live); err != nil {
		t.Fatalf("AddEntity: %v", err)
	}
	m.CommitPending()
	if err := m.AddEntity(NewEntity(m.NewID(), "pending")); err != nil {
		t.Fatalf("AddEntity: %v", err)
	}

	m.Clear()

	if m.Len() != 0 {
		t.Errorf("Len = %d, want 0", m.Len())
	}
	m.CommitPending()
	if m.Len() != 0 {
		t.Errorf("pending add survived Clear: Len = %d", m.Len())
	}
	if got := m.EntitiesWithTag("enemy"); got != nil {
		t.Errorf("tag index survived Clear: %v", got)
	}
}
