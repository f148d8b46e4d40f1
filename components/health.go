package components

import "github.com/lunamare/inkslime/engine"

// Health tracks hit points. Reaching zero destroys the owner at the next
// manager commit.
type Health struct {
	engine.BaseComponent

	Current float64
	Max     float64
}

func NewHealth(max float64) *Health {
	return &Health{Current: max, Max: max}
}

func (h *Health) Kind() engine.Kind { return engine.KindHealth }

func (h *Health) Damage(amount float64) {
	if amount <= 0 {
		return
	}
	h.Current -= amount
	if h.Current <= 0 {
		h.Current = 0
		if owner := h.Owner(); owner != nil {
			owner.Destroy()
		}
	}
}

func (h *Health) Heal(amount float64) {
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

func (h *Health) Dead() bool { return h.Current <= 0 }

func (h *Health) Reset() {
	h.Current = h.Max
}
