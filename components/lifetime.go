package components

import (
	"time"

	"github.com/lunamare/inkslime/engine"
)

// Lifetime destroys the owner once its time runs out. Projectiles and
// transient effects carry one so misses never accumulate.
type Lifetime struct {
	engine.BaseComponent

	Total     time.Duration
	Remaining time.Duration
}

func NewLifetime(total time.Duration) *Lifetime {
	return &Lifetime{Total: total, Remaining: total}
}

func (l *Lifetime) Kind() engine.Kind { return engine.KindLifetime }

func (l *Lifetime) Update(dt time.Duration) {
	l.Remaining -= dt
	if l.Remaining <= 0 {
		if owner := l.Owner(); owner != nil {
			owner.Destroy()
		}
	}
}

func (l *Lifetime) Reset() {
	l.Remaining = l.Total
}
