package components

import (
	"math"
	"time"

	"github.com/lunamare/inkslime/core"
	"github.com/lunamare/inkslime/engine"
)

// ProjectileSpawner is the factory callback the weapon fires through. The
// weapon never constructs entities itself; the content collaborator decides
// whether to pull from the pool or build fresh.
type ProjectileSpawner func(x, y float64, dir core.Vec2, color string, damage int)

// Arm is one firing arm on the ring.
type Arm struct {
	Angle    float64 // fixed position on the ring, radians
	Cooldown time.Duration
}

// Weapon implements the octopus firing system: a ring of arms with three
// active at a time (the selected arm plus its two neighbors). The center arm
// fires at 1.5x base damage, the side arms at 0.8x, both multiplicative on
// the base ink damage. The ring rotates manually with its own cooldown.
type Weapon struct {
	engine.BaseComponent

	Arms        []Arm
	ActiveIndex int

	BaseCooldown    time.Duration
	ArmLength       float64
	ProjectileSpeed float64
	BaseDamage      int
	InkColor        string

	CenterMultiplier float64
	SideMultiplier   float64

	RotateCooldown time.Duration
	rotateTimer    time.Duration

	// Continuous fire: while firing, TryShoot runs every FireInterval.
	FireInterval time.Duration
	firing       bool
	fireTimer    time.Duration

	Spawner ProjectileSpawner
}

// NewWeapon builds a ring of armCount arms evenly distributed on the circle.
func NewWeapon(armCount int, baseCooldown time.Duration) *Weapon {
	w := &Weapon{
		BaseCooldown:     baseCooldown,
		ArmLength:        50,
		ProjectileSpeed:  300,
		BaseDamage:       10,
		InkColor:         "dark_blue",
		CenterMultiplier: 1.5,
		SideMultiplier:   0.8,
		RotateCooldown:   100 * time.Millisecond,
		FireInterval:     100 * time.Millisecond,
	}
	w.Arms = make([]Arm, armCount)
	for i := range w.Arms {
		w.Arms[i].Angle = float64(i) / float64(armCount) * 2 * math.Pi
	}
	return w
}

func (w *Weapon) Kind() engine.Kind { return engine.KindWeapon }

func (w *Weapon) Update(dt time.Duration) {
	for i := range w.Arms {
		if w.Arms[i].Cooldown > 0 {
			w.Arms[i].Cooldown -= dt
		}
	}
	if w.rotateTimer > 0 {
		w.rotateTimer -= dt
	}
	if w.firing {
		w.fireTimer -= dt
		if w.fireTimer <= 0 {
			w.TryShoot()
			w.fireTimer = w.FireInterval
		}
	}
}

// StartFiring enters continuous fire; the first shot is immediate.
func (w *Weapon) StartFiring() {
	w.firing = true
	w.fireTimer = 0
}

func (w *Weapon) StopFiring() { w.firing = false }

// Rotate shifts the active arm by delta ring positions, gated by the
// rotation cooldown. Returns false while on cooldown.
func (w *Weapon) Rotate(delta int) bool {
	if w.rotateTimer > 0 || len(w.Arms) == 0 {
		return false
	}
	n := len(w.Arms)
	w.ActiveIndex = ((w.ActiveIndex+delta)%n + n) % n
	w.rotateTimer = w.RotateCooldown
	return true
}

// ActiveArms returns the indices of the three firing arms: left neighbor,
// center, right neighbor.
func (w *Weapon) ActiveArms() [3]int {
	n := len(w.Arms)
	return [3]int{
		(w.ActiveIndex - 1 + n) % n,
		w.ActiveIndex,
		(w.ActiveIndex + 1) % n,
	}
}

// TryShoot fires from every active arm that is off cooldown. Returns true
// when at least one shot left an arm.
func (w *Weapon) TryShoot() bool {
	if w.Spawner == nil || len(w.Arms) < 3 {
		return false
	}
	t := transformOf(w.Owner())
	if t == nil {
		return false
	}

	fired := false
	for slot, armIdx := range w.ActiveArms() {
		arm := &w.Arms[armIdx]
		if arm.Cooldown > 0 {
			continue
		}
		mult := w.SideMultiplier
		if slot == 1 { // center slot
			mult = w.CenterMultiplier
		}
		dir := core.Vec2{X: math.Cos(arm.Angle), Y: math.Sin(arm.Angle)}
		muzzle := t.Position.Add(dir.Scale(w.ArmLength))
		damage := int(float64(w.BaseDamage) * mult)

		w.Spawner(muzzle.X, muzzle.Y, dir.Scale(w.ProjectileSpeed), w.InkColor, damage)
		arm.Cooldown = w.BaseCooldown
		fired = true
	}
	return fired
}

func (w *Weapon) Reset() {
	for i := range w.Arms {
		w.Arms[i].Cooldown = 0
	}
	w.ActiveIndex = 0
	w.firing = false
	w.fireTimer = 0
	w.rotateTimer = 0
}
