package content

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lunamare/inkslime/components"
	"github.com/lunamare/inkslime/core"
	"github.com/lunamare/inkslime/engine"
)

// Ship size classes.
const (
	ShipSmall  = "small"
	ShipMedium = "medium"
	ShipLarge  = "large"
)

const (
	projectileLifetime = 5 * time.Second
	inkLoadMax         = 100
)

// slimePoolKey is the pool archetype for a projectile color.
func slimePoolKey(color string) string { return "ink_slime_" + color }

// Factory builds the game's entity archetypes. Spawned entities are
// handed to the manager's pending queue and become live on the next
// commit.
type Factory struct {
	manager *engine.Manager
	pool    *engine.Pool
	world   core.Rect
	log     *zap.Logger
}

func NewFactory(m *engine.Manager, p *engine.Pool, world core.Rect, log *zap.Logger) *Factory {
	if log == nil {
		log = zap.NewNop()
	}
	return &Factory{manager: m, pool: p, world: world, log: log}
}

// CreatePlayer assembles the octopus: a ten arm ink weapon with the
// spawner wired back into this factory.
func (f *Factory) CreatePlayer(x, y float64) (*engine.Entity, error) {
	e := engine.NewEntity(f.manager.NewID(), "octopus")
	e.AddTag(components.TagPlayer)

	t := components.NewTransform(x, y)
	t.MaxSpeed = 200
	if _, err := e.AddComponent(t); err != nil {
		return nil, err
	}
	col := components.NewCollider(48, 48, engine.GroupPlayer, engine.GroupEnemy|engine.GroupPickup)
	if _, err := e.AddComponent(col); err != nil {
		return nil, err
	}
	if _, err := e.AddComponent(components.NewHealth(100)); err != nil {
		return nil, err
	}
	if _, err := e.AddComponent(components.NewContact(10, time.Second)); err != nil {
		return nil, err
	}
	w := components.NewWeapon(10, 250*time.Millisecond)
	w.Spawner = f.SpawnInkSlime
	if _, err := e.AddComponent(w); err != nil {
		return nil, err
	}
	if _, err := e.AddComponent(components.NewSprite('@', 10)); err != nil {
		return nil, err
	}

	if err := f.manager.AddEntity(e); err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}
	return e, nil
}

// CreateShip spawns a pirate ship of the given size class. Ships patrol
// horizontally and sink once their ink load fills.
func (f *Factory) CreateShip(size string, x, y float64) (*engine.Entity, error) {
	var (
		w, h   float64
		speed  float64
		loadHP int
		glyph  rune
	)
	switch size {
	case ShipSmall:
		w, h, speed, loadHP, glyph = 40, 20, 90, 60, 's'
	case ShipLarge:
		w, h, speed, loadHP, glyph = 80, 40, 40, 160, 'S'
	default:
		size = ShipMedium
		w, h, speed, loadHP, glyph = 60, 30, 60, inkLoadMax, 'M'
	}

	e := engine.NewEntity(f.manager.NewID(), "ship_"+size)
	e.AddTag(components.TagShip)
	e.AddTag(components.TagEnemy)

	if _, err := e.AddComponent(components.NewTransform(x, y)); err != nil {
		return nil, err
	}
	col := components.NewCollider(w, h, engine.GroupEnemy, engine.GroupPlayer|engine.GroupProjectile)
	if _, err := e.AddComponent(col); err != nil {
		return nil, err
	}
	b := components.NewBehavior(components.PatternPatrol, speed, f.world)
	b.Seed(uint64(e.ID()))
	if _, err := e.AddComponent(b); err != nil {
		return nil, err
	}
	load := components.NewInkLoad(loadHP)
	if _, err := e.AddComponent(load); err != nil {
		return nil, err
	}
	if _, err := e.AddComponent(components.NewSprite(glyph, 5)); err != nil {
		return nil, err
	}

	if err := f.manager.AddEntity(e); err != nil {
		return nil, fmt.Errorf("create ship: %w", err)
	}
	return e, nil
}

// CreateCaptain spawns the pirate captain: a fast elite ship that also
// carries a raised shield, so it deflects ink until the shield drains.
func (f *Factory) CreateCaptain(x, y float64) (*engine.Entity, error) {
	e := engine.NewEntity(f.manager.NewID(), "captain")
	e.AddTag(components.TagShip)
	e.AddTag(components.TagEnemy)

	if _, err := e.AddComponent(components.NewTransform(x, y)); err != nil {
		return nil, err
	}
	col := components.NewCollider(70, 34, engine.GroupEnemy, engine.GroupPlayer|engine.GroupProjectile)
	if _, err := e.AddComponent(col); err != nil {
		return nil, err
	}
	b := components.NewBehavior(components.PatternPatrol, 110, f.world)
	b.Seed(uint64(e.ID()))
	if _, err := e.AddComponent(b); err != nil {
		return nil, err
	}
	if _, err := e.AddComponent(components.NewInkLoad(200)); err != nil {
		return nil, err
	}
	sh := components.NewShield(60)
	sh.Raised = true
	if _, err := e.AddComponent(sh); err != nil {
		return nil, err
	}
	if _, err := e.AddComponent(components.NewSprite('C', 6)); err != nil {
		return nil, err
	}

	if err := f.manager.AddEntity(e); err != nil {
		return nil, fmt.Errorf("create captain: %w", err)
	}
	return e, nil
}

// CreateTurtle spawns a shelled defender. The shield deflects ink while
// raised, so turtles soak shots that would otherwise land on ships.
func (f *Factory) CreateTurtle(x, y float64) (*engine.Entity, error) {
	e := engine.NewEntity(f.manager.NewID(), "turtle")
	e.AddTag(components.TagEnemy)

	if _, err := e.AddComponent(components.NewTransform(x, y)); err != nil {
		return nil, err
	}
	col := components.NewCollider(28, 20, engine.GroupEnemy, engine.GroupPlayer|engine.GroupProjectile)
	if _, err := e.AddComponent(col); err != nil {
		return nil, err
	}
	b := components.NewBehavior(components.PatternDefensive, 50, f.world)
	b.Seed(uint64(e.ID()))
	if _, err := e.AddComponent(b); err != nil {
		return nil, err
	}
	sh := components.NewShield(40)
	sh.Raised = true
	if _, err := e.AddComponent(sh); err != nil {
		return nil, err
	}
	if _, err := e.AddComponent(components.NewHealth(30)); err != nil {
		return nil, err
	}
	if _, err := e.AddComponent(components.NewSprite('t', 5)); err != nil {
		return nil, err
	}

	if err := f.manager.AddEntity(e); err != nil {
		return nil, fmt.Errorf("create turtle: %w", err)
	}
	return e, nil
}

// CreateFish spawns a wandering fish the octopus can eat for health.
func (f *Factory) CreateFish(x, y float64) (*engine.Entity, error) {
	e := engine.NewEntity(f.manager.NewID(), "fish")
	e.AddTag(components.TagPickup)

	if _, err := e.AddComponent(components.NewTransform(x, y)); err != nil {
		return nil, err
	}
	col := components.NewCollider(12, 8, engine.GroupPickup, engine.GroupPlayer)
	if _, err := e.AddComponent(col); err != nil {
		return nil, err
	}
	if _, err := e.AddComponent(components.NewPickup(15)); err != nil {
		return nil, err
	}
	b := components.NewBehavior(components.PatternWander, 70, f.world)
	b.Seed(uint64(e.ID()))
	if _, err := e.AddComponent(b); err != nil {
		return nil, err
	}
	if _, err := e.AddComponent(components.NewSprite('~', 3)); err != nil {
		return nil, err
	}

	if err := f.manager.AddEntity(e); err != nil {
		return nil, fmt.Errorf("create fish: %w", err)
	}
	return e, nil
}

// SpawnInkSlime launches an ink projectile, reusing a pooled entity when
// one is free for the color. Matches the ProjectileSpawner signature on
// the weapon component.
func (f *Factory) SpawnInkSlime(x, y float64, dir core.Vec2, color string, damage int) {
	color = NormalizeInkColor(color)
	key := slimePoolKey(color)

	var e *engine.Entity
	if f.pool != nil {
		if pooled, ok := f.pool.Acquire(key); ok {
			e = pooled
		}
	}
	if e == nil {
		var err error
		e, err = f.buildInkSlime(key, color)
		if err != nil {
			f.log.Error("build ink slime", zap.String("color", color), zap.Error(err))
			return
		}
	}

	t, _ := e.Component(engine.KindTransform)
	tr := t.(*components.Transform)
	tr.Position = core.Vec2{X: x, Y: y}
	// dir arrives pre-scaled by the weapon's projectile speed.
	tr.Velocity = dir

	s, _ := e.Component(engine.KindInkSlime)
	slime := s.(*components.InkSlime)
	slime.Color = color
	slime.Damage = damage
	slime.BaseDamage = damage

	e.SetActive(true)
	if err := f.manager.AddEntity(e); err != nil {
		f.log.Error("spawn ink slime", zap.Error(err))
	}
}

func (f *Factory) buildInkSlime(key, color string) (*engine.Entity, error) {
	e := engine.NewEntity(f.manager.NewID(), key)
	e.SetPoolKey(key)
	e.AddTag(components.TagProjectile)

	if _, err := e.AddComponent(components.NewTransform(0, 0)); err != nil {
		return nil, err
	}
	col := components.NewCollider(6, 6, engine.GroupProjectile, engine.GroupEnemy)
	if _, err := e.AddComponent(col); err != nil {
		return nil, err
	}
	if _, err := e.AddComponent(components.NewInkSlime(color, InkDamage(color))); err != nil {
		return nil, err
	}
	if _, err := e.AddComponent(components.NewLifetime(projectileLifetime)); err != nil {
		return nil, err
	}
	if _, err := e.AddComponent(components.NewSprite('*', 8)); err != nil {
		return nil, err
	}
	return e, nil
}
